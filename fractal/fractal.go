// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fractal builds the box fractal: a cube with six half-size
// cubes attached along each axis, repeated to a given depth.
// The tree is built breadth-first into a flat arena of nodes, so the
// depth is not limited by the call stack.
package fractal

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"cogentcore.org/demos3d/base/randx"
	"cogentcore.org/demos3d/math32"
	"cogentcore.org/demos3d/shape"
)

// MaxDepth is the largest accepted depth; node count grows as 6^depth.
const MaxDepth = 8

// ErrDepth is returned for a depth outside 0..MaxDepth.
var ErrDepth = errors.New("fractal: depth out of range")

// Params are the parameters of a fractal.
type Params struct {

	// depth of subdivision; 0 gives an empty tree
	Depth int `default:"3" min:"0" max:"8" json:"depth" toml:"depth" yaml:"depth"`

	// edge length of the root cube
	Size float32 `default:"10" json:"size" toml:"size" yaml:"size"`

	// base color of the root cube, as #rrggbb
	Color string `default:"#ff8800" json:"color" toml:"color" yaml:"color"`

	// random seed for the per-node blend colors
	Seed int64 `default:"1" json:"seed" toml:"seed" yaml:"seed"`
}

// Validate checks the depth range and color syntax.
func (p *Params) Validate() error {
	if p.Depth < 0 || p.Depth > MaxDepth {
		return fmt.Errorf("depth %d not in 0..%d: %w", p.Depth, MaxDepth, ErrDepth)
	}
	_, err := ParseHex(p.Color)
	return err
}

// Node is one cube in the fractal [Tree].
type Node struct {

	// index of the parent node, -1 for the root
	Parent int

	// indexes of the child nodes, in +x, -x, +y, -y, +z, -z order
	Children []int

	// level in the tree, 0 for the root
	Level int

	// edge length of the cube
	Size float32

	// center of the cube
	Pos math32.Vector3

	Color color.RGBA
}

// Tree is a fractal, with all nodes in one slice. Node 0 is the root.
type Tree struct {
	Nodes []Node
}

// childDirs are the child placement directions, in order.
var childDirs = [6]math32.Vector3{
	{1, 0, 0}, {-1, 0, 0},
	{0, 1, 0}, {0, -1, 0},
	{0, 0, 1}, {0, 0, -1},
}

// NodeCount returns the number of nodes in a tree of the given depth.
func NodeCount(depth int) int {
	n, lv := 0, 1
	for i := 0; i < depth; i++ {
		n += lv
		lv *= 6
	}
	return n
}

// Build builds the fractal tree for the given parameters.
// Each child is half the size of its parent, centered 1.5 parent sizes
// away along one axis. Each node draws one random color, and all of its
// children get the even blend of its own color with that random color.
func Build(p Params) (*Tree, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	tr := &Tree{}
	if p.Depth == 0 {
		return tr, nil
	}
	base, _ := ParseHex(p.Color)
	rnd := randx.NewSysRand(p.Seed)
	tr.Nodes = make([]Node, 0, NodeCount(p.Depth))
	tr.Nodes = append(tr.Nodes, Node{Parent: -1, Size: p.Size, Color: base})
	for i := 0; i < len(tr.Nodes); i++ {
		nd := &tr.Nodes[i]
		levelColor := randomColor(rnd)
		if nd.Level+1 >= p.Depth {
			continue
		}
		childColor := Lerp(nd.Color, levelColor, 0.5)
		offset := nd.Size * 1.5
		csize := nd.Size * 0.5
		level, pos := nd.Level+1, nd.Pos
		for _, d := range childDirs {
			ci := len(tr.Nodes)
			tr.Nodes = append(tr.Nodes, Node{Parent: i, Level: level, Size: csize, Pos: pos.Add(d.MulScalar(offset)), Color: childColor})
			tr.Nodes[i].Children = append(tr.Nodes[i].Children, ci)
		}
	}
	return tr, nil
}

// Len returns the number of nodes.
func (tr *Tree) Len() int {
	return len(tr.Nodes)
}

// Levels returns the number of nodes at each level.
func (tr *Tree) Levels() []int {
	var lv []int
	for _, nd := range tr.Nodes {
		for len(lv) <= nd.Level {
			lv = append(lv, 0)
		}
		lv[nd.Level]++
	}
	return lv
}

// Mesh returns a [shape.Group] with one colored cube per node.
func (tr *Tree) Mesh() *shape.Group {
	grp := shape.NewGroup()
	for _, nd := range tr.Nodes {
		grp.Add(shape.NewCube(nd.Size, nd.Pos, nd.Color))
	}
	return grp
}

// Geometry returns the complete buffer data for the tree.
func (tr *Tree) Geometry() *shape.Geometry {
	return shape.NewGeometry("fractal", tr.Mesh())
}

func randomColor(rnd randx.Rand) color.RGBA {
	return HexColor(uint32(rnd.Intn(0xffffff)))
}

// HexColor returns the opaque color for the given 0xrrggbb value.
func HexColor(hex uint32) color.RGBA {
	return color.RGBA{uint8(hex >> 16), uint8(hex >> 8), uint8(hex), 0xff}
}

// ParseHex parses a #rrggbb (or rrggbb) color.
func ParseHex(s string) (color.RGBA, error) {
	hs := strings.TrimPrefix(s, "#")
	if len(hs) != 6 {
		return color.RGBA{}, fmt.Errorf("fractal: color %q is not of the form #rrggbb", s)
	}
	v, err := strconv.ParseUint(hs, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("fractal: color %q: %w", s, err)
	}
	return HexColor(uint32(v)), nil
}

// Lerp blends a toward b by t in 0-1 color units per channel,
// truncating back to 8 bits. The result is opaque.
func Lerp(a, b color.RGBA, t float32) color.RGBA {
	ch := func(x, y uint8) uint8 {
		fx, fy := float32(x)/255, float32(y)/255
		return uint8(math32.Lerp(fx, fy, t) * 255)
	}
	return color.RGBA{ch(a.R, b.R), ch(a.G, b.G), ch(a.B, b.B), 0xff}
}
