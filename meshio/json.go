// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"cogentcore.org/demos3d/math32"
	"cogentcore.org/demos3d/shape"
)

// BufferGeometry is the three.js JSON object format (version 4) for
// a BufferGeometry, which three.js BufferGeometryLoader reads
// directly into position, normal, uv and color attributes.
type BufferGeometry struct {
	Metadata Metadata `json:"metadata"`
	Type     string   `json:"type"`
	Name     string   `json:"name,omitempty"`
	Data     Data     `json:"data"`
}

// Metadata is the three.js JSON metadata header.
type Metadata struct {
	Version   float64 `json:"version"`
	Type      string  `json:"type"`
	Generator string  `json:"generator"`
}

// Data holds the buffers of a [BufferGeometry].
type Data struct {
	Attributes     map[string]Attribute `json:"attributes"`
	Index          *Index               `json:"index,omitempty"`
	BoundingSphere *Sphere              `json:"boundingSphere,omitempty"`
}

// Attribute is one per-vertex buffer attribute.
type Attribute struct {
	ItemSize   int        `json:"itemSize"`
	Type       string     `json:"type"`
	Array      FloatArray `json:"array"`
	Normalized bool       `json:"normalized"`
}

// Index is the triangle index buffer.
type Index struct {
	Type  string   `json:"type"`
	Array []uint32 `json:"array"`
}

// Sphere is a bounding sphere.
type Sphere struct {
	Center FloatArray `json:"center"`
	Radius float32    `json:"radius"`
}

// FloatArray is a float32 array encoded as a JSON number array, with
// null standing in for NaN and infinite values, which JSON cannot represent.
type FloatArray []float32

func (fa FloatArray) MarshalJSON() ([]byte, error) {
	b := make([]byte, 0, 2+len(fa)*8)
	b = append(b, '[')
	for i, v := range fa {
		if i > 0 {
			b = append(b, ',')
		}
		if !math32.IsFinite(v) {
			b = append(b, "null"...)
			continue
		}
		b = strconv.AppendFloat(b, float64(v), 'g', -1, 32)
	}
	return append(b, ']'), nil
}

func (fa *FloatArray) UnmarshalJSON(b []byte) error {
	var vals []*float64
	if err := json.Unmarshal(b, &vals); err != nil {
		return err
	}
	*fa = make(FloatArray, len(vals))
	for i, v := range vals {
		if v == nil {
			(*fa)[i] = float32(math.NaN())
			continue
		}
		(*fa)[i] = float32(*v)
	}
	return nil
}

// NewBufferGeometry returns the three.js JSON form of the geometry.
func NewBufferGeometry(g *shape.Geometry) *BufferGeometry {
	bg := &BufferGeometry{
		Metadata: Metadata{Version: 4.5, Type: "BufferGeometry", Generator: "demos3d"},
		Type:     "BufferGeometry",
		Name:     g.Name,
	}
	attr := func(size int, vals math32.ArrayF32) Attribute {
		return Attribute{ItemSize: size, Type: "Float32Array", Array: FloatArray(vals)}
	}
	bg.Data.Attributes = map[string]Attribute{"position": attr(3, g.Vertex)}
	if len(g.Normal) > 0 {
		bg.Data.Attributes["normal"] = attr(3, g.Normal)
	}
	if len(g.TexCoord) > 0 {
		bg.Data.Attributes["uv"] = attr(2, g.TexCoord)
	}
	if g.HasColor() {
		bg.Data.Attributes["color"] = attr(4, g.Color)
	}
	bg.Data.Index = &Index{Type: "Uint32Array", Array: []uint32(g.Index)}
	if !g.BBox.IsEmpty() {
		c := g.BBox.Center()
		bg.Data.BoundingSphere = &Sphere{Center: FloatArray{c.X, c.Y, c.Z}, Radius: g.BBox.Size().Length() / 2}
	}
	return bg
}

// Geometry returns the geometry held in the three.js JSON form.
// Missing normal and uv attributes are left nil.
func (bg *BufferGeometry) Geometry() (*shape.Geometry, error) {
	pos, ok := bg.Data.Attributes["position"]
	if !ok || pos.ItemSize != 3 {
		return nil, fmt.Errorf("meshio: BufferGeometry %q has no 3D position attribute", bg.Name)
	}
	g := &shape.Geometry{Name: bg.Name, Vertex: math32.ArrayF32(pos.Array)}
	g.Normal = math32.ArrayF32(bg.Data.Attributes["normal"].Array)
	g.TexCoord = math32.ArrayF32(bg.Data.Attributes["uv"].Array)
	if c, ok := bg.Data.Attributes["color"]; ok {
		g.Color = math32.ArrayF32(c.Array)
	}
	if bg.Data.Index != nil {
		g.Index = math32.ArrayU32(bg.Data.Index.Array)
	}
	g.BBox = shape.BBoxFromVtxs(g.Vertex, 0, g.NumVertex())
	return g, g.Validate()
}

// WriteJSON writes the geometry as three.js BufferGeometry JSON.
func WriteJSON(w io.Writer, g *shape.Geometry) error {
	return json.NewEncoder(w).Encode(NewBufferGeometry(g))
}

// ReadJSON reads a geometry written by [WriteJSON].
func ReadJSON(r io.Reader) (*shape.Geometry, error) {
	bg := &BufferGeometry{}
	if err := json.NewDecoder(r).Decode(bg); err != nil {
		return nil, err
	}
	return bg.Geometry()
}

// MarshalJSON returns the three.js JSON bytes for the geometry.
func MarshalJSON(g *shape.Geometry) ([]byte, error) {
	var b bytes.Buffer
	err := WriteJSON(&b, g)
	return b.Bytes(), err
}
