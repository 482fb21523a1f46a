// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"errors"
	"log/slog"

	"cogentcore.org/demos3d/config"
)

// Watch writes the mesh for the given config file, and then again each
// time the file changes, until ctx is done. Flag settings over the file
// apply only to the first mesh.
func Watch(ctx context.Context, c *config.Config, file string) error {
	if file == "" {
		return errors.New("watch: a config file is required")
	}
	if err := Mesh(c); err != nil {
		return err
	}
	return config.Watch(ctx, file, func(nc *config.Config) {
		if err := nc.Validate(); err != nil {
			slog.Error("invalid config", "file", file, "err", err)
			return
		}
		if err := Mesh(nc); err != nil {
			slog.Error("mesh update failed", "file", file, "err", err)
		}
	})
}
