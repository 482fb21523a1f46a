// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"math"
	"testing"

	"cogentcore.org/demos3d/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDefault(t *testing.T) {
	g := Generate(DefaultParams(), DefaultGrid())
	assert.Equal(t, 1089, g.NumVertex())
	assert.Equal(t, 2*32*32+2*32, g.NumTriangle())
	assert.NoError(t, g.Validate())

	g2 := Generate(DefaultParams(), DefaultGrid())
	assert.Equal(t, g, g2)
	assert.NotSame(t, &g.Vertex[0], &g2.Vertex[0])
}

func TestGenerateCounts(t *testing.T) {
	for _, grid := range []Grid{{1, 1, false}, {1, 5, false}, {3, 1, false}, {7, 4, false}, {16, 9, false}, {5, 5, true}} {
		g := Generate(SuperParams{A: 1, B: 2, C: 3, N: 0.5, M: 3}, grid)
		assert.Equal(t, (grid.PhiSteps+1)*(grid.ThetaSteps+1), g.NumVertex(), "%+v", grid)
		ntri := 2*grid.PhiSteps*grid.ThetaSteps + 2*grid.PhiSteps
		if grid.CleanSeam {
			ntri = 2 * grid.PhiSteps * grid.ThetaSteps
		}
		assert.Equal(t, ntri, g.NumTriangle(), "%+v", grid)
		assert.NoError(t, g.Validate(), "%+v", grid)
		nv, ni := SuperellipsoidN(grid)
		assert.Equal(t, nv*3, len(g.Vertex))
		assert.Equal(t, ni, len(g.Index))
	}
}

func TestTriangulationSmallest(t *testing.T) {
	g := Generate(DefaultParams(), Grid{PhiSteps: 1, ThetaSteps: 1})
	want := math32.ArrayU32{
		0, 2, 1, 2, 3, 1,
		1, 3, 1, 3, 3, 1,
	}
	assert.Equal(t, want, g.Index)
}

func TestTriangulationOrder(t *testing.T) {
	grid := Grid{PhiSteps: 2, ThetaSteps: 3}
	g := Generate(DefaultParams(), grid)
	stride := uint32(grid.ThetaSteps + 1)
	// second ring, first cell
	a, b, c := g.TriangleIndexes(8)
	assert.Equal(t, [3]uint32{stride, 2 * stride, stride + 1}, [3]uint32{a, b, c})
	// first ring seam pair follows its last cell
	a, b, c = g.TriangleIndexes(6)
	assert.Equal(t, [3]uint32{3, 7, 1}, [3]uint32{a, b, c})
	a, b, c = g.TriangleIndexes(7)
	assert.Equal(t, [3]uint32{7, 5, 1}, [3]uint32{a, b, c})
}

func TestEllipsoidReduction(t *testing.T) {
	p := SuperParams{A: 3, B: 4, C: 5, N: 1, M: 1}
	grid := Grid{PhiSteps: 8, ThetaSteps: 8}
	g := Generate(p, grid)

	assert.Equal(t, math32.Vec3(3, 0, 0), g.VertexAt(0))

	top := g.VertexAt(grid.ThetaSteps / 2)
	assert.InDelta(t, 0, top.X, 1e-6)
	assert.InDelta(t, 0, top.Y, 1e-6)
	assert.InDelta(t, 5, top.Z, 1e-6)

	// u = π/2 on the equator lands on the Y axis
	v := g.VertexAt((grid.PhiSteps / 4) * (grid.ThetaSteps + 1))
	assert.InDelta(t, 0, v.X, 1e-6)
	assert.InDelta(t, 4, v.Y, 1e-6)

	for i := 0; i < g.NumVertex(); i++ {
		pt := g.VertexAt(i)
		r := float64(pt.X*pt.X/9 + pt.Y*pt.Y/16 + pt.Z*pt.Z/25)
		assert.InDelta(t, 1, r, 1e-5, "vertex %d", i)
	}
}

func TestSignZero(t *testing.T) {
	assert.Equal(t, 0.0, sign(0))
	assert.Equal(t, -1.0, sign(-1e-300))
	assert.Equal(t, 1.0, sign(7))
	assert.True(t, math.IsNaN(sign(math.NaN())))

	// sin(0) is exactly 0, so with m = 0 only sign(0) = 0 keeps y at 0
	x, y, _ := SuperPoint(SuperParams{A: 1, B: 1, C: 1, N: 1, M: 0}, 0, 0)
	assert.Equal(t, 1.0, x)
	assert.Equal(t, 0.0, y)

	for _, u := range []float64{0, 0.3, 1, 2.5, math.Pi, 5} {
		x, y, z := SuperPoint(DefaultParams(), u, math.Pi/2)
		assert.InDelta(t, 0, x, 1e-12)
		assert.InDelta(t, 0, y, 1e-12)
		assert.InDelta(t, 2, z, 1e-12)
	}

	g := Generate(DefaultParams(), Grid{PhiSteps: 4, ThetaSteps: 6})
	for theta := 0; theta <= 6; theta++ {
		assert.Equal(t, float32(0), g.VertexAt(theta).Y)
	}
}

func TestNonFinite(t *testing.T) {
	p := SuperParams{A: math.Inf(1), B: 1, C: 1, N: 2, M: 2}
	assert.ErrorIs(t, p.Validate(), ErrNonFinite)
	g := Generate(p, Grid{PhiSteps: 4, ThetaSteps: 4})
	assert.Equal(t, 25, g.NumVertex())
	assert.True(t, math32.IsInf(g.VertexAt(0).X, 1))
	assert.NoError(t, g.Validate())

	p = SuperParams{A: 1, B: 1, C: 1, N: -1, M: 1}
	assert.NoError(t, p.Validate())
	g = Generate(p, Grid{PhiSteps: 4, ThetaSteps: 4})
	// sin(0)^-1 is infinite and sign(0) * Inf is NaN
	assert.True(t, math32.IsNaN(g.VertexAt(0).Z))
	assert.NoError(t, g.Validate())

	assert.ErrorIs(t, Grid{PhiSteps: 0, ThetaSteps: 3}.Validate(), ErrInvalidGrid)
	assert.NoError(t, DefaultGrid().Validate())
	assert.ErrorIs(t, SuperParams{A: math.NaN()}.Validate(), ErrNonFinite)
}

func TestSuperellipsoidNormals(t *testing.T) {
	g := Generate(SuperParams{A: 1, B: 1, C: 1, N: 1, M: 1}, Grid{PhiSteps: 24, ThetaSteps: 24})
	i := 5*25 + 6
	pt := g.VertexAt(i)
	n := g.Normal.Vector3At(i)
	assert.InDelta(t, 1, n.Length(), 1e-5)
	assert.Greater(t, n.Dot(pt.Normal()), float32(0.95))
}

func TestSuperellipsoidTexCoord(t *testing.T) {
	grid := Grid{PhiSteps: 4, ThetaSteps: 2}
	g := Generate(DefaultParams(), grid)
	last := g.NumVertex() - 1
	assert.Equal(t, float32(1), g.TexCoord[last*2])
	assert.Equal(t, float32(1), g.TexCoord[last*2+1])
	assert.Equal(t, float32(0.25), g.TexCoord[3*2])
	assert.Equal(t, float32(0), g.TexCoord[3*2+1])
}

func TestSuperellipsoidBBox(t *testing.T) {
	g := Generate(SuperParams{A: 3, B: 2, C: 1, N: 1, M: 1}, Grid{PhiSteps: 8, ThetaSteps: 8})
	assert.InDelta(t, 3, g.BBox.Max.X, 1e-6)
	assert.InDelta(t, -3, g.BBox.Min.X, 1e-6)
	assert.InDelta(t, 2, g.BBox.Max.Y, 1e-6)
	assert.InDelta(t, 1, g.BBox.Max.Z, 1e-6)
	// v only spans 0..π, so the surface stays at z >= 0
	assert.InDelta(t, 0, g.BBox.Min.Z, 1e-6)
}

func TestSuperellipsoidOffset(t *testing.T) {
	se := NewSuperellipsoid(DefaultParams(), Grid{PhiSteps: 3, ThetaSteps: 3})
	se.Pos = math32.Vec3(10, 0, 0)
	grp := NewGroup(NewCube(1, math32.Vec3(0, 0, 0), nil), se)
	g := NewGeometry("group", grp)
	require.NoError(t, g.Validate())
	assert.Equal(t, BoxNVertex+16, g.NumVertex())
	assert.Equal(t, uint32(BoxNVertex), g.Index[BoxNIndex])
	assert.InDelta(t, 12, g.VertexAt(BoxNVertex).X, 1e-6)
	assert.InDelta(t, 12, g.BBox.Max.X, 1e-6)
	assert.InDelta(t, -0.5, g.BBox.Min.X, 1e-6)
}
