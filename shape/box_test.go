// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"image/color"
	"testing"

	"cogentcore.org/demos3d/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBox(t *testing.T) {
	bx := NewBox(2, 4, 6)
	bx.Pos = math32.Vec3(1, 1, 1)
	g := NewGeometry("box", bx)
	require.NoError(t, g.Validate())
	assert.Equal(t, BoxNVertex, g.NumVertex())
	assert.Equal(t, 12, g.NumTriangle())
	assert.False(t, g.HasColor())
	assert.Equal(t, math32.Vec3(0, -1, -2), g.BBox.Min)
	assert.Equal(t, math32.Vec3(2, 3, 4), g.BBox.Max)

	for i := 0; i < g.NumTriangle(); i++ {
		tri := g.Triangle(i)
		a, _, _ := g.TriangleIndexes(i)
		n := g.Normal.Vector3At(int(a))
		// counter-clockwise seen from outside
		assert.InDelta(t, 1, tri.Normal().Dot(n), 1e-6, "triangle %d", i)
		assert.Greater(t, tri.Midpoint().Sub(bx.Pos).Dot(n), float32(0))
	}
}

func TestBoxColor(t *testing.T) {
	bx := NewCube(1, math32.Vector3{}, color.RGBA{255, 0, 0, 255})
	g := NewGeometry("cube", bx)
	require.True(t, g.HasColor())
	assert.Len(t, g.Color, BoxNVertex*4)
	assert.Equal(t, [4]float32{1, 0, 0, 1}, g.ColorAt(BoxNVertex-1))

	plain := NewGeometry("plain", NewBox(1, 1, 1))
	assert.Equal(t, [4]float32{1, 1, 1, 1}, plain.ColorAt(0))
}

func TestGroupColor(t *testing.T) {
	grp := NewGroup()
	grp.Add(NewCube(1, math32.Vec3(-2, 0, 0), nil), NewCube(1, math32.Vec3(2, 0, 0), color.RGBA{0, 0, 255, 255}))
	nv, ni, hc := grp.MeshSize()
	assert.Equal(t, 2*BoxNVertex, nv)
	assert.Equal(t, 2*BoxNIndex, ni)
	assert.True(t, hc)

	g := NewGeometry("pair", grp)
	require.NoError(t, g.Validate())
	assert.Equal(t, [4]float32{1, 1, 1, 1}, g.ColorAt(0))
	assert.Equal(t, [4]float32{0, 0, 1, 1}, g.ColorAt(BoxNVertex))
	assert.Equal(t, math32.Vec3(-2.5, -0.5, -0.5), g.BBox.Min)
	assert.Equal(t, math32.Vec3(2.5, 0.5, 0.5), g.BBox.Max)
}

func TestGroupColorSurface(t *testing.T) {
	grid := Grid{PhiSteps: 3, ThetaSteps: 2}
	se := NewSuperellipsoid(DefaultParams(), grid)
	grp := NewGroup(NewCube(1, math32.Vec3(4, 0, 0), color.RGBA{255, 0, 0, 255}), se)
	g := NewGeometry("mixed", grp)
	require.True(t, g.HasColor())
	nv, _ := SuperellipsoidN(grid)
	assert.Len(t, g.Color, (BoxNVertex+nv)*4)
	assert.Equal(t, [4]float32{1, 0, 0, 1}, g.ColorAt(0))
	for i := BoxNVertex; i < BoxNVertex+nv; i++ {
		assert.Equal(t, [4]float32{1, 1, 1, 1}, g.ColorAt(i), i)
	}

	// alone, the surface has no colors
	assert.False(t, Generate(DefaultParams(), grid).HasColor())
}

func TestGeometryValidate(t *testing.T) {
	g := NewGeometry("box", NewBox(1, 1, 1))
	c := g.Clone()
	c.Index[5] = 99
	assert.ErrorIs(t, c.Validate(), ErrIndexRange)
	assert.NoError(t, g.Validate())

	c.Index = c.Index[:4]
	assert.Error(t, c.Validate())
}
