// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshio

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"cogentcore.org/demos3d/math32"
	"cogentcore.org/demos3d/shape"
)

// stlHeaderSize is the size of the binary STL header, which must
// not begin with "solid".
const stlHeaderSize = 80

// faceNormal returns the unit normal of triangle i, or zero for a
// degenerate or non-finite triangle.
func faceNormal(g *shape.Geometry, i int) math32.Vector3 {
	tri := g.Triangle(i)
	n := tri.Normal()
	if !n.IsFinite() {
		return math32.Vector3{}
	}
	return n
}

// WriteSTL writes the geometry in the binary STL format, with
// face normals computed from the triangle winding.
func WriteSTL(w io.Writer, g *shape.Geometry) error {
	bw := bufio.NewWriter(w)
	var hdr [stlHeaderSize]byte
	copy(hdr[:], "demos3d binary stl: "+g.Name)
	bw.Write(hdr[:])
	nt := g.NumTriangle()
	var cnt [4]byte
	binary.LittleEndian.PutUint32(cnt[:], uint32(nt))
	bw.Write(cnt[:])

	var rec [50]byte
	put := func(off int, v math32.Vector3) {
		binary.LittleEndian.PutUint32(rec[off:], math.Float32bits(v.X))
		binary.LittleEndian.PutUint32(rec[off+4:], math.Float32bits(v.Y))
		binary.LittleEndian.PutUint32(rec[off+8:], math.Float32bits(v.Z))
	}
	for i := 0; i < nt; i++ {
		tri := g.Triangle(i)
		put(0, faceNormal(g, i))
		put(12, tri.A)
		put(24, tri.B)
		put(36, tri.C)
		// attribute byte count is always zero
		if _, err := bw.Write(rec[:]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteSTLASCII writes the geometry in the ASCII STL format.
func WriteSTLASCII(w io.Writer, g *shape.Geometry) error {
	bw := bufio.NewWriter(w)
	name := objName(g.Name)
	fmt.Fprintf(bw, "solid %s\n", name)
	vec := func(v math32.Vector3) string {
		return ftoa(v.X) + " " + ftoa(v.Y) + " " + ftoa(v.Z)
	}
	nt := g.NumTriangle()
	for i := 0; i < nt; i++ {
		tri := g.Triangle(i)
		bw.WriteString("  facet normal " + vec(faceNormal(g, i)) + "\n")
		bw.WriteString("    outer loop\n")
		bw.WriteString("      vertex " + vec(tri.A) + "\n")
		bw.WriteString("      vertex " + vec(tri.B) + "\n")
		bw.WriteString("      vertex " + vec(tri.C) + "\n")
		bw.WriteString("    endloop\n")
		bw.WriteString("  endfacet\n")
	}
	fmt.Fprintf(bw, "endsolid %s\n", name)
	return bw.Flush()
}
