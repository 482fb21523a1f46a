// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"errors"
	"fmt"
	"slices"

	"cogentcore.org/demos3d/math32"
)

// ErrIndexRange is returned by [Geometry.Validate] for an index
// that does not refer to a vertex.
var ErrIndexRange = errors.New("shape: triangle index out of vertex range")

// Geometry holds the complete buffer data for a [Mesh]:
// vertex positions and normals (stride 3), texture coordinates (stride 2),
// optional colors (stride 4) and a flat triangle index list (stride 3).
// A Geometry is not modified once built; regenerating a shape
// makes a new Geometry.
type Geometry struct {

	// Name identifies the geometry in a scene
	Name string

	Vertex   math32.ArrayF32
	Normal   math32.ArrayF32
	TexCoord math32.ArrayF32

	// Color is nil unless the mesh has per-vertex color
	Color math32.ArrayF32

	Index math32.ArrayU32

	// BBox is the bounding box of all finite vertices
	BBox math32.Box3
}

// NewGeometry allocates arrays sized for the given mesh,
// sets its data at offset 0, and returns the result.
func NewGeometry(name string, ms Mesh) *Geometry {
	nv, ni, hc := ms.MeshSize()
	g := &Geometry{Name: name}
	g.Vertex = math32.NewArrayF32(nv*3, nv*3)
	g.Normal = math32.NewArrayF32(nv*3, nv*3)
	g.TexCoord = math32.NewArrayF32(nv*2, nv*2)
	if hc {
		g.Color = math32.NewArrayF32(nv*4, nv*4)
	}
	g.Index = math32.NewArrayU32(ni, ni)
	ms.SetOffsets(0, 0)
	ms.Set(g.Vertex, g.Normal, g.TexCoord, g.Color, g.Index)
	g.BBox = ms.BBox()
	return g
}

// NumVertex returns the number of vertex points.
func (g *Geometry) NumVertex() int {
	return len(g.Vertex) / 3
}

// NumTriangle returns the number of triangles.
func (g *Geometry) NumTriangle() int {
	return len(g.Index) / 3
}

// HasColor returns whether the geometry has per-vertex colors.
func (g *Geometry) HasColor() bool {
	return g.Color != nil
}

// VertexAt returns the position of vertex i.
func (g *Geometry) VertexAt(i int) math32.Vector3 {
	return g.Vertex.Vector3At(i)
}

// TriangleIndexes returns the three vertex indexes of triangle i,
// in winding order.
func (g *Geometry) TriangleIndexes(i int) (a, b, c uint32) {
	return g.Index[i*3], g.Index[i*3+1], g.Index[i*3+2]
}

// Triangle returns the vertex positions of triangle i.
func (g *Geometry) Triangle(i int) math32.Triangle {
	a, b, c := g.TriangleIndexes(i)
	return math32.NewTriangle(g.VertexAt(int(a)), g.VertexAt(int(b)), g.VertexAt(int(c)))
}

// ColorAt returns the RGBA color of vertex i in 0-1 units,
// or opaque white if the geometry has no colors.
func (g *Geometry) ColorAt(i int) [4]float32 {
	if g.Color == nil {
		return [4]float32{1, 1, 1, 1}
	}
	return [4]float32(g.Color[i*4 : i*4+4])
}

// Validate checks that the index list is a whole number of triangles
// and that every index refers to a vertex.
func (g *Geometry) Validate() error {
	if len(g.Index)%3 != 0 {
		return fmt.Errorf("shape: %s: index count %d is not a multiple of 3", g.Name, len(g.Index))
	}
	nv := uint32(g.NumVertex())
	for i, ix := range g.Index {
		if ix >= nv {
			return fmt.Errorf("%s: index %d = %d, vertex count %d: %w", g.Name, i, ix, nv, ErrIndexRange)
		}
	}
	return nil
}

// Clone returns a deep copy of the geometry.
func (g *Geometry) Clone() *Geometry {
	ng := *g
	ng.Vertex = slices.Clone(g.Vertex)
	ng.Normal = slices.Clone(g.Normal)
	ng.TexCoord = slices.Clone(g.TexCoord)
	ng.Color = slices.Clone(g.Color)
	ng.Index = slices.Clone(g.Index)
	return &ng
}
