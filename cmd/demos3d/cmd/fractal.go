// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"log/slog"

	"cogentcore.org/demos3d/config"
	"cogentcore.org/demos3d/fractal"
)

// Fractal builds the box fractal and writes it to the configured output.
func Fractal(c *config.Config) error {
	tr, err := fractal.Build(c.Fractal)
	if err != nil {
		return err
	}
	g := tr.Geometry()
	slog.Info("built fractal", "depth", c.Fractal.Depth, "nodes", tr.Len(), "vertices", g.NumVertex())
	return writeGeometry(c, g)
}
