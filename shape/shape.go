// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape provides mesh-constructing shape elements that write
// indexed triangle data (vertex, normal, texture coordinate, color, index)
// into flat arrays, suitable for direct upload as render buffers.
// The superellipsoid generator lives here, along with boxes and groups
// of shapes.
package shape

import (
	"image/color"

	"cogentcore.org/demos3d/math32"
)

// Mesh is an interface for all shape-constructing elements.
// All Meshes must know in advance the number of vertex and index points
// they require, and the Set method writes the mesh data to arrays of
// appropriate size, starting at the offsets given by SetOffsets.
type Mesh interface {
	// MeshSize returns number of vertex, index points in this shape element,
	// and whether it has per-vertex color values.
	MeshSize() (numVertex, numIndex int, hasColor bool)

	// Offsets returns starting offset for vertices, indexes in full shape array,
	// in terms of points, not floats.
	Offsets() (vertexOffset, indexOffset int)

	// SetOffsets sets starting offset for vertices, indexes in full shape array,
	// in terms of points, not floats.
	SetOffsets(vertexOffset, indexOffset int)

	// Set sets points in given allocated arrays.
	// The clrs array is nil when no shape in the arrays has color;
	// otherwise shapes without a color of their own write opaque white.
	Set(vertex, normal, texcoord, clrs math32.ArrayF32, index math32.ArrayU32)

	// BBox returns the bounding box for the shape, typically centered around 0.
	// This is only valid after Set has been called.
	BBox() math32.Box3
}

// ShapeBase is the base shape element
type ShapeBase struct {

	// vertex offset, in points
	VertexOffset int

	// index offset, in points
	IndexOffset int

	// cubic bounding box in local coords
	CBBox math32.Box3

	// all shapes take a 3D position offset to enable composition
	Pos math32.Vector3
}

// Offsets returns starting offset for vertices, indexes in full shape array,
// in terms of points, not floats
func (sb *ShapeBase) Offsets() (vertexOffset, indexOffset int) {
	vertexOffset, indexOffset = sb.VertexOffset, sb.IndexOffset
	return
}

// SetOffsets sets starting offsets for vertices, indexes in full shape array
func (sb *ShapeBase) SetOffsets(vertexOffset, indexOffset int) {
	sb.VertexOffset, sb.IndexOffset = vertexOffset, indexOffset
}

// BBox returns the bounding box for the shape, typically centered around 0
// This is only valid after Set has been called.
func (sb *ShapeBase) BBox() math32.Box3 {
	return sb.CBBox
}

// SetColor sets color for given range of vertex indexes
func SetColor(clrs math32.ArrayF32, vertexOffset int, numVertex int, clr color.Color) {
	if clrs == nil {
		return
	}
	r, g, b, a := clr.RGBA()
	cv := [4]float32{float32(r) / 0xffff, float32(g) / 0xffff, float32(b) / 0xffff, float32(a) / 0xffff}
	cidx := vertexOffset * 4
	for vi := 0; vi < numVertex; vi++ {
		clrs.Set(cidx+vi*4, cv[:]...)
	}
}

// BBoxFromVtxs returns the bounding box updated from the range of vertex points
func BBoxFromVtxs(vertex math32.ArrayF32, vertexOffset int, numVertex int) math32.Box3 {
	bb := math32.B3Empty()
	vidx := vertexOffset * 3
	var vtx math32.Vector3
	for vi := 0; vi < numVertex; vi++ {
		vertex.GetVector3(vidx+vi*3, &vtx)
		bb.ExpandByPoint(vtx)
	}
	return bb
}
