// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package preview renders a flat-shaded software preview image of a
// [shape.Geometry], for checking meshes without a GPU.
package preview

import (
	"image"
	"image/color"
	"image/draw"
	"io"
	"slices"

	"cogentcore.org/demos3d/base/iox/imagex"
	"cogentcore.org/demos3d/math32"
	"cogentcore.org/demos3d/math32/minmax"
	"cogentcore.org/demos3d/shape"
	"golang.org/x/image/vector"
)

// Options are the preview rendering options.
type Options struct {

	// image size in pixels
	Width  int `default:"256"`
	Height int `default:"256"`

	// rotation of the view in degrees: X is the pitch about the
	// horizontal axis and Y is the yaw about the vertical axis
	Rotation math32.Vector2

	// fraction of the image filled by the mesh
	Fill float32 `default:"0.9"`

	// ambient light level, 0-1
	Ambient float32 `default:"0.25"`

	// direction toward the light
	Light math32.Vector3

	// color of meshes without vertex colors
	Color color.RGBA

	Background color.RGBA
}

// DefaultOptions returns the default options: a 256x256 view from
// above at an angle, similar to the browser demo camera.
func DefaultOptions() Options {
	return Options{
		Width:      256,
		Height:     256,
		Rotation:   math32.Vec2(-60, 30),
		Fill:       0.9,
		Ambient:    0.25,
		Light:      math32.Vec3(0.3, 0.5, 1),
		Color:      color.RGBA{0x00, 0xaa, 0xff, 0xff},
		Background: color.RGBA{0x20, 0x20, 0x20, 0xff},
	}
}

// face is a projected triangle ready to fill.
type face struct {
	pts   [3]math32.Vector3
	depth float32
	color color.RGBA
}

// Render draws the geometry with an orthographic projection fitted to
// its extent, filling whole triangles back to front with Lambert
// shading from a directional light. Triangles with non-finite
// vertices are skipped. Faces are lit on both sides, as the surface
// is open.
func Render(g *shape.Geometry, opts Options) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, max(opts.Width, 1), max(opts.Height, 1)))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	yaw := math32.DegToRad(opts.Rotation.Y)
	pitch := math32.DegToRad(opts.Rotation.X)
	center := g.BBox.Center()
	view := func(v math32.Vector3) math32.Vector3 {
		return v.Sub(center).RotateY(yaw).RotateX(pitch)
	}
	light := opts.Light.Normal()

	nt := g.NumTriangle()
	faces := make([]face, 0, nt)
	var ext, depth minmax.F32
	ext.SetInfinity()
	depth.SetInfinity()
	for i := 0; i < nt; i++ {
		a, b, c := g.TriangleIndexes(i)
		f := face{}
		ok := true
		for k, ix := range [3]uint32{a, b, c} {
			p := view(g.VertexAt(int(ix)))
			if !p.IsFinite() {
				ok = false
				break
			}
			f.pts[k] = p
		}
		if !ok {
			continue
		}
		n := math32.Normal(f.pts[0], f.pts[1], f.pts[2])
		lum := opts.Ambient + (1-opts.Ambient)*math32.Abs(n.Dot(light))
		f.color = shade(faceColor(g, opts.Color, a, b, c), lum)
		f.depth = (f.pts[0].Z + f.pts[1].Z + f.pts[2].Z) / 3
		depth.FitValInRange(f.depth)
		for _, p := range f.pts {
			ext.FitValInRange(math32.Abs(p.X))
			ext.FitValInRange(math32.Abs(p.Y))
		}
		faces = append(faces, f)
	}
	if len(faces) == 0 {
		return img
	}
	// the camera looks down -Z, so the largest Z is nearest
	slices.SortStableFunc(faces, func(x, y face) int {
		switch {
		case x.depth < y.depth:
			return -1
		case x.depth > y.depth:
			return 1
		}
		return 0
	})

	w, h := float32(img.Bounds().Dx()), float32(img.Bounds().Dy())
	scale := float32(1)
	if ext.Max > 0 {
		scale = opts.Fill * 0.5 * math32.Min(w, h) / ext.Max
	}
	toPixel := func(p math32.Vector3) (float32, float32) {
		return w/2 + p.X*scale, h/2 - p.Y*scale
	}

	var rz vector.Rasterizer
	for _, f := range faces {
		if depth.Range() > 0 {
			// far faces are dimmed slightly
			f.color = shade(f.color, 0.7+0.3*depth.NormValue(f.depth))
		}
		var xs, ys [3]float32
		for k, p := range f.pts {
			xs[k], ys[k] = toPixel(p)
		}
		r := image.Rect(
			int(math32.Min(xs[0], math32.Min(xs[1], xs[2])))-1,
			int(math32.Min(ys[0], math32.Min(ys[1], ys[2])))-1,
			int(math32.Max(xs[0], math32.Max(xs[1], xs[2])))+2,
			int(math32.Max(ys[0], math32.Max(ys[1], ys[2])))+2,
		).Intersect(img.Bounds())
		if r.Empty() {
			continue
		}
		ox, oy := float32(r.Min.X), float32(r.Min.Y)
		rz.Reset(r.Dx(), r.Dy())
		rz.MoveTo(xs[0]-ox, ys[0]-oy)
		rz.LineTo(xs[1]-ox, ys[1]-oy)
		rz.LineTo(xs[2]-ox, ys[2]-oy)
		rz.ClosePath()
		rz.Draw(img, r, image.NewUniform(f.color), image.Point{})
	}
	return img
}

// faceColor returns the mean vertex color of a triangle, or base
// for a geometry without colors.
func faceColor(g *shape.Geometry, base color.RGBA, a, b, c uint32) color.RGBA {
	if !g.HasColor() {
		return base
	}
	var sum [4]float32
	for _, ix := range [3]uint32{a, b, c} {
		cv := g.ColorAt(int(ix))
		for k := range sum {
			sum[k] += cv[k] / 3
		}
	}
	return color.RGBA{unit8(sum[0]), unit8(sum[1]), unit8(sum[2]), 0xff}
}

// shade scales the color channels by lum, clamped to the valid range.
func shade(c color.RGBA, lum float32) color.RGBA {
	return color.RGBA{
		unit8(float32(c.R) / 255 * lum),
		unit8(float32(c.G) / 255 * lum),
		unit8(float32(c.B) / 255 * lum),
		c.A,
	}
}

// unit8 converts a 0-1 value to 0-255.
func unit8(v float32) uint8 {
	return uint8(math32.Clamp(v, 0, 1)*255 + 0.5)
}

// WritePNG renders the geometry and writes it to w as a PNG image.
func WritePNG(w io.Writer, g *shape.Geometry, opts Options) error {
	return imagex.Write(Render(g, opts), w, imagex.PNG)
}

// Save renders the geometry and saves it to the given file, in the
// image format given by its extension.
func Save(g *shape.Geometry, opts Options, filename string) error {
	return imagex.Save(Render(g, opts), filename)
}
