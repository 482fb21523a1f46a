// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"cogentcore.org/demos3d/shape"
)

// WriteOBJ writes the geometry as a Wavefront OBJ object with
// positions, and texture coordinates and normals when the geometry has
// them for every vertex. Vertex colors, if any, are written as the
// common r g b extension of the v lines. Faces use the shared 1-based
// indexes v/vt/vn, v/vt, v//vn or v.
func WriteOBJ(w io.Writer, g *shape.Geometry) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# demos3d %s: %d vertices, %d triangles\n", g.Name, g.NumVertex(), g.NumTriangle())
	fmt.Fprintf(bw, "o %s\n", objName(g.Name))
	nv := g.NumVertex()
	hasColor := len(g.Color) >= nv*4
	for i := 0; i < nv; i++ {
		v := g.VertexAt(i)
		bw.WriteString("v " + ftoa(v.X) + " " + ftoa(v.Y) + " " + ftoa(v.Z))
		if hasColor {
			c := g.ColorAt(i)
			bw.WriteString(" " + ftoa(c[0]) + " " + ftoa(c[1]) + " " + ftoa(c[2]))
		}
		bw.WriteByte('\n')
	}
	hasUV := len(g.TexCoord) >= nv*2
	hasNorm := len(g.Normal) >= nv*3
	for i := 0; hasUV && i < nv; i++ {
		bw.WriteString("vt " + ftoa(g.TexCoord[i*2]) + " " + ftoa(g.TexCoord[i*2+1]) + "\n")
	}
	for i := 0; hasNorm && i < nv; i++ {
		n := g.Normal.Vector3At(i)
		bw.WriteString("vn " + ftoa(n.X) + " " + ftoa(n.Y) + " " + ftoa(n.Z) + "\n")
	}
	nt := g.NumTriangle()
	for i := 0; i < nt; i++ {
		a, b, c := g.TriangleIndexes(i)
		bw.WriteString("f " + objRef(a, hasUV, hasNorm) + " " + objRef(b, hasUV, hasNorm) + " " + objRef(c, hasUV, hasNorm) + "\n")
	}
	return bw.Flush()
}

func objRef(ix uint32, uv, norm bool) string {
	s := strconv.FormatUint(uint64(ix)+1, 10)
	switch {
	case uv && norm:
		return s + "/" + s + "/" + s
	case uv:
		return s + "/" + s
	case norm:
		return s + "//" + s
	}
	return s
}

// objName returns a name without whitespace, defaulting to "mesh".
func objName(name string) string {
	if name == "" {
		return "mesh"
	}
	rs := []rune(name)
	for i, r := range rs {
		if r == ' ' || r == '\t' || r == '\n' {
			rs[i] = '_'
		}
	}
	return string(rs)
}

// ftoa formats a float32 with the fewest digits that read back exactly.
func ftoa(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}
