// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectile

import (
	"context"
	"testing"

	"cogentcore.org/demos3d/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	sm := NewSim(math32.Vec3(1, 2, 3))
	assert.Equal(t, math32.Vec2(0.5, 0.1), sm.Vel)
	assert.Equal(t, float32(0.2), sm.Gravity)
	assert.Equal(t, sm.Start, sm.Pos)
	assert.Empty(t, sm.Trail())
}

func TestStep(t *testing.T) {
	sm := NewSim(math32.Vector3{})
	sm.Step(1)
	assert.InDelta(t, 0.5, sm.Pos.X, 1e-6)
	assert.InDelta(t, 0.1, sm.Pos.Y, 1e-6)
	assert.InDelta(t, -0.1, sm.Vel.Y, 1e-6)
	sm.Step(1)
	assert.InDelta(t, 1.0, sm.Pos.X, 1e-6)
	assert.InDelta(t, 0.0, sm.Pos.Y, 1e-6)
	assert.Equal(t, float32(0), sm.Pos.Z)
	assert.Len(t, sm.Trail(), 2)
	assert.InDelta(t, 2, sm.Time, 1e-6)
}

func TestThrow(t *testing.T) {
	sm := NewSim(math32.Vec3(0, 1, 0))
	sm.Step(0.5)
	sm.Step(0.5)
	sm.Throw(50, 90)
	assert.Equal(t, math32.Vec3(0, 1, 0), sm.Pos)
	assert.Empty(t, sm.Trail())
	assert.Equal(t, float32(0), sm.Time)
	assert.InDelta(t, 0, sm.Vel.X, 1e-6)
	assert.InDelta(t, 1, sm.Vel.Y, 1e-6)

	sm.Throw(100, 45)
	assert.InDelta(t, 1.41421356, sm.Vel.X, 1e-5)
	assert.InDelta(t, 1.41421356, sm.Vel.Y, 1e-5)
}

func TestRun(t *testing.T) {
	sm := NewSim(math32.Vector3{})
	sm.Throw(50, 45)
	n, err := sm.Run(context.Background(), 0.1, 200)
	require.NoError(t, err)
	assert.Equal(t, 200, n)
	assert.True(t, sm.Landed())

	tr := sm.Trail()
	require.Len(t, tr, 200)
	// the peak is near vy^2 / 2g, plus the Euler step overshoot
	var top float32
	for _, p := range tr {
		top = max(top, p.Y)
	}
	assert.InDelta(t, 1.2856, top, 0.001)

	// Trail returns a copy
	tr[0].X = 99
	assert.NotEqual(t, float32(99), sm.Trail()[0].X)

	ln := sm.TrailLine()
	require.Equal(t, 600, ln.Len())
	assert.Equal(t, sm.Trail()[199], ln.Vector3At(199))
}

func TestRunCancel(t *testing.T) {
	sm := NewSim(math32.Vector3{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n, err := sm.Run(ctx, 0.1, 10)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, n)
	assert.Empty(t, sm.Trail())
}
