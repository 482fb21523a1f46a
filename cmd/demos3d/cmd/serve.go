// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"

	"cogentcore.org/demos3d/config"
	"cogentcore.org/demos3d/fractal"
	"cogentcore.org/demos3d/scene"
	"cogentcore.org/demos3d/server"
)

// Serve runs the live preview server until ctx is done. The scene
// holds the configured surface, and the fractal if its depth is above 0.
func Serve(ctx context.Context, c *config.Config) error {
	sc, err := scene.New(c.Shape, c.Grid)
	if err != nil {
		return err
	}
	if c.Fractal.Depth > 0 {
		tr, err := fractal.Build(c.Fractal)
		if err != nil {
			return err
		}
		sc.SetMesh("fractal", tr.Geometry())
	}
	s := server.New(sc, c.Server.MaxSteps)
	s.Preview = previewOptions(c)
	return s.ListenAndServe(ctx, c.Server.Addr)
}
