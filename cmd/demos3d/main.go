// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command demos3d generates the meshes of the 3D demos (the
// superellipsoid surface, the box fractal and the projectile trail),
// and serves them to a browser for live preview.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newApp().root().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
