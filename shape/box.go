// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"image/color"

	"cogentcore.org/demos3d/math32"
)

// Box is a rectangular-shaped solid (cuboid), with one quad per face.
type Box struct {
	ShapeBase

	// size along each dimension
	Size math32.Vector3

	// Color is the per-vertex color; nil means white,
	// and no colors when no other shape has any.
	Color color.Color
}

// NewBox returns a Box shape with given size
func NewBox(width, height, depth float32) *Box {
	bx := &Box{}
	bx.Defaults()
	bx.Size.Set(width, height, depth)
	return bx
}

// NewCube returns a Box with all sides of the given size, centered at pos.
func NewCube(size float32, pos math32.Vector3, clr color.Color) *Box {
	bx := NewBox(size, size, size)
	bx.Pos = pos
	bx.Color = clr
	return bx
}

func (bx *Box) Defaults() {
	bx.Size.Set(1, 1, 1)
}

// Number of vertex and index points in a [Box].
const (
	BoxNVertex = 24
	BoxNIndex  = 36
)

func (bx *Box) MeshSize() (numVertex, numIndex int, hasColor bool) {
	return BoxNVertex, BoxNIndex, bx.Color != nil
}

// boxFaces lists normal, u and v axes per face, with u x v = normal
// so that the face winding is counter-clockwise seen from outside.
var boxFaces = [6][3]math32.Vector3{
	{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
	{{-1, 0, 0}, {0, 0, 1}, {0, 1, 0}},
	{{0, 1, 0}, {0, 0, 1}, {1, 0, 0}},
	{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}},
	{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}},
	{{0, 0, -1}, {0, 1, 0}, {1, 0, 0}},
}

var quadCorners = [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}

// Set sets points in given allocated arrays
func (bx *Box) Set(vertex, normal, texcoord, clrs math32.ArrayF32, index math32.ArrayU32) {
	hSz := SetBox(vertex, normal, texcoord, index, bx.VertexOffset, bx.IndexOffset, bx.Size, bx.Pos)
	clr := bx.Color
	if clr == nil {
		clr = color.White
	}
	SetColor(clrs, bx.VertexOffset, BoxNVertex, clr)
	bx.CBBox.Min = bx.Pos.Sub(hSz)
	bx.CBBox.Max = bx.Pos.Add(hSz)
}

// SetBox sets box vertex, norm, tex, index data at
// given starting *vertex* index (i.e., multiply this *3 to get
// actual float offset in Vtx array), and starting Index index.
// pos is an arbitrary offset (for composing shapes).
// Returns the half-size of the box.
func SetBox(vertex, normal, texcoord math32.ArrayF32, index math32.ArrayU32, vertexOffset, indexOffset int, size, pos math32.Vector3) math32.Vector3 {
	hSz := size.MulScalar(0.5)
	vi := vertexOffset
	ii := indexOffset
	for _, f := range boxFaces {
		n, u, v := f[0], f[1], f[2]
		ctr := pos.Add(n.Mul(hSz))
		base := uint32(vi)
		for _, c := range quadCorners {
			pt := ctr.Add(u.Mul(hSz).MulScalar(c[0])).Add(v.Mul(hSz).MulScalar(c[1]))
			vertex.SetVector3(vi*3, pt)
			normal.SetVector3(vi*3, n)
			texcoord.Set(vi*2, (c[0]+1)/2, (c[1]+1)/2)
			vi++
		}
		index.Set(ii, base, base+1, base+2, base, base+2, base+3)
		ii += 6
	}
	return hSz
}
