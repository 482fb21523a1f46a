// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd contains the commands of the demos3d tool.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"cogentcore.org/demos3d/config"
	"cogentcore.org/demos3d/math32"
	"cogentcore.org/demos3d/meshio"
	"cogentcore.org/demos3d/preview"
	"cogentcore.org/demos3d/shape"
)

// Stdout is where output named "-" is written.
var Stdout io.Writer = os.Stdout

// Mesh generates the superellipsoid surface and writes it to the
// configured output, along with a preview image if configured.
func Mesh(c *config.Config) error {
	if err := c.Shape.Validate(); err != nil {
		// the mesh is still well defined, just not renderable
		slog.Warn("non-finite shape parameter", "err", err)
	}
	if err := c.Grid.Validate(); err != nil {
		return err
	}
	g := shape.Generate(c.Shape, c.Grid)
	slog.Info("generated mesh", "params", c.Shape.String(), "vertices", g.NumVertex(), "triangles", g.NumTriangle())
	return writeGeometry(c, g)
}

// writeGeometry writes the geometry to the configured output and preview.
func writeGeometry(c *config.Config, g *shape.Geometry) error {
	f, err := c.MeshFormat()
	if err != nil {
		return err
	}
	if err := writeOutput(c.Output, func(w io.Writer) error { return meshio.Write(w, f, g) }); err != nil {
		return fmt.Errorf("writing %s: %w", c.Output, err)
	}
	slog.Info("wrote mesh", "file", c.Output, "format", f.String())
	if c.Preview.File == "" {
		return nil
	}
	if err := preview.Save(g, previewOptions(c), c.Preview.File); err != nil {
		return fmt.Errorf("writing preview %s: %w", c.Preview.File, err)
	}
	slog.Info("wrote preview", "file", c.Preview.File)
	return nil
}

// writeOutput calls fn with the named file, or [Stdout] for "-".
func writeOutput(fname string, fn func(w io.Writer) error) error {
	if fname == "-" {
		return fn(Stdout)
	}
	fp, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := fn(fp); err != nil {
		fp.Close()
		return err
	}
	return fp.Close()
}

func previewOptions(c *config.Config) preview.Options {
	opts := preview.DefaultOptions()
	opts.Width = c.Preview.Width
	opts.Height = c.Preview.Height
	opts.Rotation = math32.Vec2(c.Preview.Pitch, c.Preview.Yaw)
	return opts
}
