// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"cogentcore.org/demos3d/math32"
)

var (
	// ErrInvalidGrid is returned by [Grid.Validate] for step counts below 1.
	ErrInvalidGrid = errors.New("shape: grid steps must be at least 1")

	// ErrNonFinite is returned by [SuperParams.Validate] for NaN or infinite values.
	ErrNonFinite = errors.New("shape: parameter is not a finite number")
)

// SuperParams are the shape parameters of a superellipsoid:
// A, B, C scale the X, Y, Z axes, and N, M are the exponents
// controlling the "squareness" in latitude and longitude.
// Any finite values are accepted; negative or zero values give
// degenerate but well-defined surfaces.
type SuperParams struct {

	// X dimension
	A float64 `default:"2" json:"A" toml:"A" yaml:"A"`

	// Y dimension
	B float64 `default:"2" json:"B" toml:"B" yaml:"B"`

	// Z dimension
	C float64 `default:"2" json:"C" toml:"C" yaml:"C"`

	// shape control exponent on the latitude (v) terms
	N float64 `default:"2" json:"n" toml:"n" yaml:"n"`

	// shape control exponent on the longitude (u) terms
	M float64 `default:"2" json:"m" toml:"m" yaml:"m"`
}

// DefaultParams returns the default superellipsoid parameters,
// restored by a reset.
func DefaultParams() SuperParams {
	return SuperParams{A: 2, B: 2, C: 2, N: 2, M: 2}
}

// Validate returns an error wrapping [ErrNonFinite] if any parameter is NaN or infinite.
// [Generate] itself never rejects parameters; this is for call-site checks.
func (p SuperParams) Validate() error {
	vals := [5]float64{p.A, p.B, p.C, p.N, p.M}
	names := [5]string{"A", "B", "C", "n", "m"}
	for i, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s = %v: %w", names[i], v, ErrNonFinite)
		}
	}
	return nil
}

func (p SuperParams) String() string {
	return fmt.Sprintf("A=%g B=%g C=%g n=%g m=%g", p.A, p.B, p.C, p.N, p.M)
}

// Grid is the angular sampling resolution of a superellipsoid.
type Grid struct {

	// number of longitude steps (u in 0..2π)
	PhiSteps int `default:"32" min:"1" json:"phiSteps" toml:"phiSteps" yaml:"phiSteps"`

	// number of latitude steps (v in 0..π)
	ThetaSteps int `default:"32" min:"1" json:"thetaSteps" toml:"thetaSteps" yaml:"thetaSteps"`

	// CleanSeam omits the extra pair of seam triangles emitted at the last
	// cell of each ring, which otherwise overlap existing coverage.
	CleanSeam bool `json:"cleanSeam" toml:"cleanSeam" yaml:"cleanSeam"`
}

// DefaultGrid returns the default 32 x 32 sampling grid.
func DefaultGrid() Grid {
	return Grid{PhiSteps: 32, ThetaSteps: 32}
}

// Validate returns an error wrapping [ErrInvalidGrid] if either step count is below 1.
func (g Grid) Validate() error {
	if g.PhiSteps < 1 || g.ThetaSteps < 1 {
		return fmt.Errorf("phiSteps = %d, thetaSteps = %d: %w", g.PhiSteps, g.ThetaSteps, ErrInvalidGrid)
	}
	return nil
}

// Superellipsoid is a superellipsoid surface mesh, sampled over
// a longitude / latitude grid.
type Superellipsoid struct {
	ShapeBase

	// shape parameters
	Params SuperParams

	// sampling grid
	Grid Grid
}

// NewSuperellipsoid returns a Superellipsoid mesh with the given
// parameters and sampling grid.
func NewSuperellipsoid(params SuperParams, grid Grid) *Superellipsoid {
	se := &Superellipsoid{}
	se.Params = params
	se.Grid = grid
	return se
}

func (se *Superellipsoid) Defaults() {
	se.Params = DefaultParams()
	se.Grid = DefaultGrid()
}

func (se *Superellipsoid) MeshSize() (numVertex, numIndex int, hasColor bool) {
	numVertex, numIndex = SuperellipsoidN(se.Grid)
	return
}

// Set sets points for the superellipsoid in given allocated arrays
func (se *Superellipsoid) Set(vertex, normal, texcoord, clrs math32.ArrayF32, index math32.ArrayU32) {
	se.CBBox = SetSuperellipsoid(vertex, normal, texcoord, index, se.VertexOffset, se.IndexOffset, se.Params, se.Grid, se.Pos)
	nVtx, _ := SuperellipsoidN(se.Grid)
	SetColor(clrs, se.VertexOffset, nVtx, color.White)
}

// SuperellipsoidN returns the number of vertex and index points
// for a superellipsoid sampled on the given grid.
func SuperellipsoidN(grid Grid) (numVertex, numIndex int) {
	numVertex = (grid.PhiSteps + 1) * (grid.ThetaSteps + 1)
	numIndex = 6 * grid.PhiSteps * grid.ThetaSteps
	if !grid.CleanSeam {
		numIndex += 6 * grid.PhiSteps
	}
	return
}

// sign returns -1, 0 or 1 for negative, zero and positive x,
// and NaN for NaN.
func sign(x float64) float64 {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return x
}

// spow returns sign(x) * |x|^e.
func spow(x, e float64) float64 {
	return sign(x) * math.Pow(math.Abs(x), e)
}

// SuperPoint returns the superellipsoid surface point for the
// longitude angle u and latitude angle v, in radians.
func SuperPoint(p SuperParams, u, v float64) (x, y, z float64) {
	cv := spow(math.Cos(v), p.N)
	x = p.A * cv * spow(math.Cos(u), p.M)
	y = p.B * cv * spow(math.Sin(u), p.M)
	z = p.C * spow(math.Sin(v), p.N)
	return
}

// SetSuperellipsoid sets superellipsoid vertex, norm, tex, index data
// at given starting *vertex* index (i.e., multiply this *3 to get
// actual float offset in Vtx array), and starting Index index,
// with the given shape parameters and sampling grid.
// Vertices are written ring by ring: an outer loop over longitude
// steps and an inner loop over latitude steps, both inclusive, so the
// first and last ring coincide. Coordinates are computed in float64.
// pos is an arbitrary offset (for composing shapes),
// returns bounding box.
func SetSuperellipsoid(vertex, normal, texcoord math32.ArrayF32, index math32.ArrayU32, vertexOffset, indexOffset int, params SuperParams, grid Grid, pos math32.Vector3) math32.Box3 {
	phiSteps, thetaSteps := grid.PhiSteps, grid.ThetaSteps
	vidx := vertexOffset * 3
	tidx := vertexOffset * 2

	bb := math32.B3Empty()
	idx := 0
	for phi := 0; phi <= phiSteps; phi++ {
		u := (float64(phi) / float64(phiSteps)) * math.Pi * 2
		for theta := 0; theta <= thetaSteps; theta++ {
			v := (float64(theta) / float64(thetaSteps)) * math.Pi
			x, y, z := SuperPoint(params, u, v)
			pt := math32.Vec3(float32(x), float32(y), float32(z))
			pt.SetAdd(pos)
			vertex.SetVector3(vidx+idx*3, pt)
			if texcoord != nil {
				texcoord.Set(tidx+idx*2, float32(phi)/float32(phiSteps), float32(theta)/float32(thetaSteps))
			}
			bb.ExpandByPoint(pt)
			idx++
		}
	}

	vOff := uint32(vertexOffset)
	stride := thetaSteps + 1
	ii := indexOffset
	for phi := 0; phi < phiSteps; phi++ {
		for theta := 0; theta < thetaSteps; theta++ {
			current := uint32(phi*stride + theta)
			next := current + uint32(stride)
			index.Set(ii, vOff+current, vOff+next, vOff+current+1, vOff+next, vOff+next+1, vOff+current+1)
			ii += 6
			if theta == thetaSteps-1 && !grid.CleanSeam {
				// ring end back toward its start; current+2 >= thetaSteps always holds here
				start := current + 2 - uint32(thetaSteps)
				nstart := next + 2 - uint32(thetaSteps)
				index.Set(ii, vOff+current+1, vOff+next+1, vOff+start, vOff+next+1, vOff+nstart, vOff+start)
				ii += 6
			}
		}
	}

	if normal != nil {
		nVtx, nIdx := SuperellipsoidN(grid)
		ComputeNormals(vertex, normal, index, vertexOffset, nVtx, indexOffset, nIdx, pos)
	}
	return bb
}

// Generate returns a new superellipsoid [Geometry] for the given
// parameters and sampling grid. It is a pure function: the result is
// deterministic and never shared. Non-finite parameters give non-finite
// vertex coordinates rather than an error. Grid steps must be at least 1.
func Generate(params SuperParams, grid Grid) *Geometry {
	return NewGeometry("superellipsoid", NewSuperellipsoid(params, grid))
}
