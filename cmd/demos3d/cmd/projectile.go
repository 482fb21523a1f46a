// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"

	"cogentcore.org/demos3d/config"
	"cogentcore.org/demos3d/math32"
	"cogentcore.org/demos3d/projectile"
)

// Projectile throws the projectile with the configured speed and angle
// and writes the trail to the output as lines of "t x y z".
func Projectile(ctx context.Context, c *config.Config) error {
	pc := c.Projectile
	if pc.Dt <= 0 || pc.Steps < 0 {
		return fmt.Errorf("projectile: dt %g must be positive and steps %d not negative", pc.Dt, pc.Steps)
	}
	sm := projectile.NewSim(math32.Vector3{})
	sm.Throw(pc.Speed, pc.Angle)
	n, err := sm.Run(ctx, pc.Dt, pc.Steps)
	if err != nil {
		return err
	}
	slog.Info("simulated projectile", "steps", n, "landed", sm.Landed(), "x", sm.Pos.X)
	return writeOutput(c.Output, func(w io.Writer) error {
		bw := bufio.NewWriter(w)
		for i, p := range sm.Trail() {
			fmt.Fprintf(bw, "%g %g %g %g\n", float32(i+1)*pc.Dt, p.X, p.Y, p.Z)
		}
		return bw.Flush()
	})
}
