// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"cogentcore.org/demos3d/base/fsx"
	"github.com/fsnotify/fsnotify"
)

// WatchDelay is how long Watch waits after the last change of the file
// before reloading it, as editors often write a file in several steps.
var WatchDelay = 100 * time.Millisecond

// Watch calls fn with the newly opened config each time the given
// config file changes, until ctx is done. The directory is watched
// rather than the file, so that editors that save by renaming a new
// file into place are followed. A file that fails to open is logged
// and skipped. Watch returns nil when ctx is done.
func Watch(ctx context.Context, filename string, fn func(c *Config)) error {
	file, err := filepath.Abs(fsx.ExpandHome(filename))
	if err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Add(filepath.Dir(file)); err != nil {
		return err
	}

	timer := time.NewTimer(WatchDelay)
	timer.Stop()
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != file || !event.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			timer.Reset(WatchDelay)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("config watcher error", "file", file, "err", err)
		case <-timer.C:
			c, err := Open(file)
			if err != nil {
				slog.Error("config reload failed", "file", file, "err", err)
				continue
			}
			slog.Info("config reloaded", "file", file)
			fn(c)
		}
	}
}
