// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "cogentcore.org/demos3d/math32"

// Group is a group of shapes, written contiguously into
// the same arrays. Returns summary data for shape elements.
type Group struct {
	ShapeBase

	// list of shapes in group
	Shapes []Mesh
}

// NewGroup returns a Group of the given shapes.
func NewGroup(shapes ...Mesh) *Group {
	return &Group{Shapes: shapes}
}

// Add appends shapes to the group.
func (sb *Group) Add(shapes ...Mesh) {
	sb.Shapes = append(sb.Shapes, shapes...)
}

// MeshSize returns number of vertex, index points in this shape element.
func (sb *Group) MeshSize() (numVertex, numIndex int, hasColor bool) {
	for _, sh := range sb.Shapes {
		nv, ni, hc := sh.MeshSize()
		numVertex += nv
		numIndex += ni
		hasColor = hasColor || hc
	}
	return
}

// Set sets points in given allocated arrays, also updates offsets.
// Shape indexes are absolute, so the group can be drawn with one call.
func (sb *Group) Set(vertex, normal, texcoord, clrs math32.ArrayF32, index math32.ArrayU32) {
	vo := sb.VertexOffset
	io := sb.IndexOffset
	sb.CBBox.SetEmpty()
	for _, sh := range sb.Shapes {
		sh.SetOffsets(vo, io)
		sh.Set(vertex, normal, texcoord, clrs, index)
		sb.CBBox.ExpandByBox(sh.BBox())
		nv, ni, _ := sh.MeshSize()
		vo += nv
		io += ni
	}
}
