// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshio

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"image/color"
	"math"
	"strings"
	"testing"

	"cogentcore.org/demos3d/math32"
	"cogentcore.org/demos3d/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSurface() *shape.Geometry {
	return shape.Generate(shape.DefaultParams(), shape.Grid{PhiSteps: 3, ThetaSteps: 2})
}

func TestFormats(t *testing.T) {
	for _, tc := range []struct {
		name string
		want Format
	}{
		{"mesh.json", JSON}, {"out/a.OBJ", OBJ}, {"x.stl", STL}, {"x.stla", STLASCII},
	} {
		f, err := FormatFromName(tc.name)
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.want, f, tc.name)
	}
	_, err := FormatFromName("mesh")
	assert.ErrorIs(t, err, ErrUnknownFormat)
	_, err = FormatFromName("mesh.glb")
	assert.ErrorIs(t, err, ErrUnknownFormat)

	f, err := ParseFormat("stl-ascii")
	require.NoError(t, err)
	assert.Equal(t, STLASCII, f)
	assert.Equal(t, "obj", OBJ.String())
	assert.Equal(t, ".stl", STLASCII.Ext())
	assert.Equal(t, "application/json", JSON.ContentType())
	assert.ErrorIs(t, Write(&bytes.Buffer{}, Format(9), testSurface()), ErrUnknownFormat)
}

func TestOBJ(t *testing.T) {
	g := testSurface()
	var b bytes.Buffer
	require.NoError(t, Write(&b, OBJ, g))
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	count := map[string]int{}
	for _, ln := range lines {
		count[strings.Fields(ln)[0]]++
	}
	assert.Equal(t, g.NumVertex(), count["v"])
	assert.Equal(t, g.NumVertex(), count["vt"])
	assert.Equal(t, g.NumVertex(), count["vn"])
	assert.Equal(t, g.NumTriangle(), count["f"])
	assert.Equal(t, "o superellipsoid", lines[1])
	// vertex 0 is at u = 0, v = 0
	assert.Equal(t, "v 2 0 0", lines[2])
	assert.Contains(t, b.String(), "\nf 1/1/1 4/4/4 2/2/2\n")
}

func TestOBJColor(t *testing.T) {
	g := shape.NewGeometry("red box", shape.NewCube(2, math32.Vector3{}, color.RGBA{255, 0, 0, 255}))
	var b bytes.Buffer
	require.NoError(t, WriteOBJ(&b, g))
	assert.Contains(t, b.String(), "o red_box\n")
	assert.Contains(t, b.String(), " 1 0 0\n")
}

func TestOBJPositionsOnly(t *testing.T) {
	const js = `{"data":{"attributes":{"position":{"itemSize":3,"type":"Float32Array","array":[0,0,0,1,0,0,0,1,0]}},"index":{"type":"Uint32Array","array":[0,1,2]}}}`
	g, err := ReadJSON(strings.NewReader(js))
	require.NoError(t, err)
	assert.Nil(t, g.Normal)
	assert.Nil(t, g.TexCoord)

	var b bytes.Buffer
	require.NotPanics(t, func() { require.NoError(t, Write(&b, OBJ, g)) })
	s := b.String()
	assert.NotContains(t, s, "\nvt ")
	assert.NotContains(t, s, "\nvn ")
	assert.Contains(t, s, "\nv 1 0 0\n")
	assert.True(t, strings.HasSuffix(s, "\nf 1 2 3\n"))

	// normals without texture coordinates
	g.Normal = math32.ArrayF32{0, 0, 1, 0, 0, 1, 0, 0, 1}
	b.Reset()
	require.NoError(t, WriteOBJ(&b, g))
	assert.Equal(t, 3, strings.Count(b.String(), "\nvn "))
	assert.True(t, strings.HasSuffix(b.String(), "\nf 1//1 2//2 3//3\n"))

	// the JSON form keeps the missing attributes missing
	jb, err := MarshalJSON(&shape.Geometry{Vertex: g.Vertex, Index: g.Index})
	require.NoError(t, err)
	assert.NotContains(t, string(jb), `"normal"`)
	assert.NotContains(t, string(jb), `"uv"`)
}

func TestSTL(t *testing.T) {
	g := testSurface()
	var b bytes.Buffer
	require.NoError(t, WriteSTL(&b, g))
	data := b.Bytes()
	nt := g.NumTriangle()
	require.Len(t, data, 84+50*nt)
	assert.False(t, bytes.HasPrefix(data, []byte("solid")))
	assert.Equal(t, uint32(nt), binary.LittleEndian.Uint32(data[80:]))

	f32 := func(off int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(data[off:]))
	}
	tri := g.Triangle(0)
	assert.Equal(t, tri.A.X, f32(84+12))
	assert.Equal(t, tri.B.Y, f32(84+28))
	assert.Equal(t, tri.C.Z, f32(84+44))
	n := math32.Vec3(f32(84), f32(88), f32(92))
	assert.InDelta(t, 1, n.Length(), 1e-5)
}

func TestSTLASCII(t *testing.T) {
	g := shape.NewGeometry("box", shape.NewBox(1, 1, 1))
	var b bytes.Buffer
	require.NoError(t, WriteSTLASCII(&b, g))
	s := b.String()
	assert.True(t, strings.HasPrefix(s, "solid box\n"))
	assert.True(t, strings.HasSuffix(s, "endsolid box\n"))
	assert.Equal(t, 12, strings.Count(s, "facet normal"))
	assert.Equal(t, 36, strings.Count(s, "vertex "))
}

func TestJSON(t *testing.T) {
	g := testSurface()
	var b bytes.Buffer
	require.NoError(t, WriteJSON(&b, g))

	var raw map[string]any
	require.NoError(t, json.Unmarshal(b.Bytes(), &raw))
	assert.Equal(t, "BufferGeometry", raw["type"])
	md := raw["metadata"].(map[string]any)
	assert.Equal(t, 4.5, md["version"])
	attrs := raw["data"].(map[string]any)["attributes"].(map[string]any)
	pos := attrs["position"].(map[string]any)
	assert.Equal(t, float64(3), pos["itemSize"])
	assert.Len(t, pos["array"], g.NumVertex()*3)
	assert.NotContains(t, attrs, "color")

	rg, err := ReadJSON(&b)
	require.NoError(t, err)
	assert.Equal(t, g.Vertex, rg.Vertex)
	assert.Equal(t, g.Normal, rg.Normal)
	assert.Equal(t, g.TexCoord, rg.TexCoord)
	assert.Equal(t, g.Index, rg.Index)
	assert.Nil(t, rg.Color)
}

func TestJSONNonFinite(t *testing.T) {
	p := shape.DefaultParams()
	p.A = math.NaN()
	g := shape.Generate(p, shape.Grid{PhiSteps: 2, ThetaSteps: 2})
	b, err := MarshalJSON(g)
	require.NoError(t, err)
	assert.Contains(t, string(b), "null")

	rg, err := ReadJSON(bytes.NewReader(b))
	require.NoError(t, err)
	assert.True(t, math32.IsNaN(rg.Vertex[0]))
	assert.Equal(t, g.Vertex[2], rg.Vertex[2])
}
