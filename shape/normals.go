// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "cogentcore.org/demos3d/math32"

// ComputeNormals sets per-vertex normals for the given vertex range
// from the triangles in the given index range, as the area-weighted sum
// of the adjacent face normals. Each face normal is oriented away from
// center before summing, so surfaces that are covered twice with opposite
// windings (or have overlapping seam triangles) still get outward normals.
// Vertices with no usable faces get the direction from center, or zero.
func ComputeNormals(vertex, normal math32.ArrayF32, index math32.ArrayU32, vertexOffset, numVertex, indexOffset, numIndex int, center math32.Vector3) {
	acc := make([]math32.Vector3, numVertex)
	var tri math32.Triangle
	for ii := indexOffset; ii+2 < indexOffset+numIndex; ii += 3 {
		a, b, c := int(index[ii]), int(index[ii+1]), int(index[ii+2])
		tri.A = vertex.Vector3At(a)
		tri.B = vertex.Vector3At(b)
		tri.C = vertex.Vector3At(c)
		fn := tri.Cross()
		if !fn.IsFinite() {
			continue
		}
		if fn.Dot(tri.Midpoint().Sub(center)) < 0 {
			fn = fn.Negate()
		}
		for _, vi := range [3]int{a, b, c} {
			li := vi - vertexOffset
			if li >= 0 && li < numVertex {
				acc[li].SetAdd(fn)
			}
		}
	}
	for li, n := range acc {
		vi := vertexOffset + li
		if n.LengthSquared() == 0 {
			n = vertex.Vector3At(vi).Sub(center)
			if !n.IsFinite() {
				n = math32.Vector3{}
			}
		}
		normal.SetVector3(vi*3, n.Normal())
	}
}
