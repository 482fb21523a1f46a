// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package preview

import (
	"bytes"
	"image/color"
	"image/png"
	"math"
	"path/filepath"
	"testing"

	"cogentcore.org/demos3d/base/iox/imagex"
	"cogentcore.org/demos3d/math32"
	"cogentcore.org/demos3d/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderBox(t *testing.T) {
	opts := DefaultOptions()
	opts.Width, opts.Height = 64, 48
	opts.Rotation = math32.Vector2{}
	opts.Light = math32.Vec3(0, 0, 1)
	opts.Ambient = 0
	g := shape.NewGeometry("box", shape.NewBox(2, 2, 2))
	img := Render(g, opts)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 48, img.Bounds().Dy())

	// the front face is lit head-on; sample away from its diagonals
	c := img.RGBAAt(20, 30)
	assert.Equal(t, opts.Color, c)
	// corners stay background
	assert.Equal(t, opts.Background, img.RGBAAt(0, 0))
	assert.Equal(t, opts.Background, img.RGBAAt(63, 47))
	// the box fills 90% of the height
	assert.Equal(t, opts.Color, img.RGBAAt(32, 4))
	assert.Equal(t, opts.Background, img.RGBAAt(32, 1))
}

func TestRenderColors(t *testing.T) {
	opts := DefaultOptions()
	opts.Rotation = math32.Vector2{}
	opts.Light = math32.Vec3(0, 0, 1)
	opts.Ambient = 0
	red := color.RGBA{255, 0, 0, 255}
	g := shape.NewGeometry("cube", shape.NewCube(1, math32.Vector3{}, red))
	img := Render(g, opts)
	assert.Equal(t, red, img.RGBAAt(100, 150))
}

func TestRenderSurface(t *testing.T) {
	g := shape.Generate(shape.DefaultParams(), shape.Grid{PhiSteps: 16, ThetaSteps: 16})
	img := Render(g, DefaultOptions())
	bg := DefaultOptions().Background
	drawn := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) != bg {
				drawn++
			}
		}
	}
	assert.Greater(t, drawn, b.Dx()*b.Dy()/10)
	assert.Less(t, drawn, b.Dx()*b.Dy())
}

func TestRenderNonFinite(t *testing.T) {
	p := shape.DefaultParams()
	p.C = math.Inf(1)
	g := shape.Generate(p, shape.Grid{PhiSteps: 4, ThetaSteps: 4})
	opts := DefaultOptions()
	img := Render(g, opts)
	require.NotNil(t, img)

	empty := Render(&shape.Geometry{}, opts)
	assert.Equal(t, opts.Background, empty.RGBAAt(10, 10))
}

func TestWritePNG(t *testing.T) {
	g := shape.NewGeometry("box", shape.NewBox(1, 1, 1))
	opts := DefaultOptions()
	opts.Width, opts.Height = 32, 32
	var b bytes.Buffer
	require.NoError(t, WritePNG(&b, g, opts))
	im, err := png.Decode(&b)
	require.NoError(t, err)
	assert.Equal(t, 32, im.Bounds().Dx())

	fn := filepath.Join(t.TempDir(), "box.png")
	require.NoError(t, Save(g, opts, fn))
	sv, _, err := imagex.Open(fn)
	require.NoError(t, err)
	assert.Equal(t, imagex.AsRGBA(Render(g, opts)).Pix, imagex.AsRGBA(sv).Pix)
}

func TestRenderImages(t *testing.T) {
	opts := DefaultOptions()
	opts.Width, opts.Height = 128, 128
	grid := shape.Grid{PhiSteps: 24, ThetaSteps: 24}
	for name, p := range map[string]shape.SuperParams{
		"sphere":   {A: 1, B: 1, C: 1, N: 1, M: 1},
		"rounded":  {A: 2, B: 2, C: 2, N: 0.3, M: 0.3},
		"pinched":  {A: 2, B: 1, C: 1.5, N: 2.5, M: 2.5},
		"defaults": shape.DefaultParams(),
	} {
		imagex.Assert(t, Render(shape.Generate(p, grid), opts), "surface-"+name)
	}
	imagex.Assert(t, Render(shape.NewGeometry("box", shape.NewBox(2, 1, 1)), opts), "box")
}
