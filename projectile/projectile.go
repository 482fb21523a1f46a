// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package projectile integrates the motion of a thrown object
// under constant gravity, recording the trail of positions.
package projectile

import (
	"context"

	"cogentcore.org/demos3d/math32"
)

// Default simulation values.
const (
	Gravity    = 0.2
	DefaultVX  = 0.5
	DefaultVY  = 0.1
	SpeedScale = 50
)

// Sim is a projectile simulation in the XY plane.
// Z is carried through from the start position unchanged.
// It is not safe for concurrent use.
type Sim struct {

	// position that [Sim.Throw] resets to
	Start math32.Vector3

	// current position
	Pos math32.Vector3

	// current X and Y velocity
	Vel math32.Vector2

	// downward acceleration
	Gravity float32

	// elapsed simulated time since the last throw
	Time float32

	trail []math32.Vector3
}

// NewSim returns a new Sim at the given start position, moving with the
// default initial velocity.
func NewSim(start math32.Vector3) *Sim {
	sm := &Sim{Start: start, Pos: start, Gravity: Gravity}
	sm.Vel = math32.Vec2(DefaultVX, DefaultVY)
	return sm
}

// Throw resets the position to the start and clears the trail, with
// a new velocity from the given speed input and launch angle in degrees.
// The speed input is divided by [SpeedScale].
func (sm *Sim) Throw(speed, angleDeg float32) {
	s := speed / SpeedScale
	a := math32.DegToRad(angleDeg)
	sm.Vel = math32.Vec2(s*math32.Cos(a), s*math32.Sin(a))
	sm.Pos = sm.Start
	sm.Time = 0
	sm.trail = sm.trail[:0]
}

// Step advances the simulation by dt: position moves by the current
// velocity, then gravity reduces the Y velocity. The new position is
// appended to the trail.
func (sm *Sim) Step(dt float32) {
	sm.Pos.X += sm.Vel.X * dt
	sm.Pos.Y += sm.Vel.Y * dt
	sm.Vel.Y -= sm.Gravity * dt
	sm.Time += dt
	sm.trail = append(sm.trail, sm.Pos)
}

// Run takes up to steps steps of dt, stopping early with the context
// error if ctx is done. It returns the number of steps taken.
func (sm *Sim) Run(ctx context.Context, dt float32, steps int) (int, error) {
	for i := 0; i < steps; i++ {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		sm.Step(dt)
	}
	return steps, nil
}

// Landed reports whether the object is below its start height and falling.
func (sm *Sim) Landed() bool {
	return sm.Pos.Y < sm.Start.Y && sm.Vel.Y < 0
}

// Trail returns a copy of the trail positions since the last throw.
func (sm *Sim) Trail() []math32.Vector3 {
	tr := make([]math32.Vector3, len(sm.trail))
	copy(tr, sm.trail)
	return tr
}

// TrailLine returns the trail as a flat line strip buffer, with
// 3 floats per point.
func (sm *Sim) TrailLine() math32.ArrayF32 {
	ln := math32.NewArrayF32(0, len(sm.trail)*3)
	for _, p := range sm.trail {
		ln.AppendVector3(p)
	}
	return ln
}
