// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"

	"cogentcore.org/demos3d/base/fsx"
	"cogentcore.org/demos3d/base/logx"
	"cogentcore.org/demos3d/cmd/demos3d/cmd"
	"cogentcore.org/demos3d/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// configPaths are searched for a default config file.
var configPaths = []string{".", "~/.config/demos3d"}

// configNames are the default config file names, in order of preference.
var configNames = []string{"demos3d.toml", "demos3d.yaml", "demos3d.yml"}

// App holds the config shared by all commands. Settings come from
// the `default:` tags, then the config file, then the flags.
type App struct {
	Config *config.Config

	// config file given with -c, or found on configPaths
	File string

	vv, v, q bool
}

func newApp() *App {
	return &App{Config: config.New()}
}

func (a *App) root() *cobra.Command {
	root := &cobra.Command{
		Use:           "demos3d",
		Short:         "Generate and preview the meshes of the 3D demos",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&a.File, "config", "c", "", "config file (.toml or .yaml)")
	pf.BoolVar(&a.vv, "vv", false, "very verbose: log debug messages")
	pf.BoolVarP(&a.v, "verbose", "v", false, "verbose: log info messages")
	pf.BoolVarP(&a.q, "quiet", "q", false, "quiet: log only errors")
	pf.StringVarP(&a.Config.Output, "output", "o", a.Config.Output, "output file, - for stdout")
	pf.StringVarP(&a.Config.Format, "format", "f", a.Config.Format, "mesh format: json, obj, stl, stla (default from output extension)")
	pf.StringVar(&a.Config.Preview.File, "preview", a.Config.Preview.File, "also write a preview image to this file")
	root.PersistentPreRunE = a.setup

	root.AddCommand(a.meshCmd(), a.fractalCmd(), a.projectileCmd(), a.serveCmd(), a.watchCmd(), a.pushCmd())
	return root
}

// setup loads the config file under the flags given, and sets up logging.
func (a *App) setup(c *cobra.Command, args []string) error {
	// flags given on the command line are set again after the file
	changed := map[string]string{}
	c.Flags().Visit(func(f *pflag.Flag) {
		changed[f.Name] = f.Value.String()
	})
	if a.File == "" {
		for _, nm := range configNames {
			if fs := fsx.FindFilesOnPaths(configPaths, nm); len(fs) > 0 {
				a.File = fs[0]
				break
			}
		}
	}
	if a.File != "" {
		if err := a.Config.OpenFile(a.File); err != nil {
			return err
		}
	}
	for name, val := range changed {
		if err := c.Flags().Set(name, val); err != nil {
			return fmt.Errorf("flag --%s: %w", name, err)
		}
	}

	logx.UserLevel = logx.LevelFromString(a.Config.Log.Level)
	if a.vv || a.v || a.q {
		logx.UserLevel = logx.LevelFromFlags(a.vv, a.v, a.q)
	}
	logx.SetDefaultLogger()
	if a.File != "" {
		slog.Debug("loaded config", "file", a.File)
	}
	return a.Config.Validate()
}

func (a *App) meshCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "mesh",
		Short: "Write the superellipsoid surface mesh",
		RunE: func(*cobra.Command, []string) error {
			return cmd.Mesh(a.Config)
		},
	}
	a.surfaceFlags(c.Flags())
	return c
}

// surfaceFlags adds the surface parameter and grid flags.
func (a *App) surfaceFlags(fs *pflag.FlagSet) {
	cfg := a.Config
	fs.Float64VarP(&cfg.Shape.A, "A", "A", cfg.Shape.A, "X dimension")
	fs.Float64VarP(&cfg.Shape.B, "B", "B", cfg.Shape.B, "Y dimension")
	fs.Float64VarP(&cfg.Shape.C, "C", "C", cfg.Shape.C, "Z dimension")
	fs.Float64VarP(&cfg.Shape.N, "n", "n", cfg.Shape.N, "latitude shape exponent")
	fs.Float64VarP(&cfg.Shape.M, "m", "m", cfg.Shape.M, "longitude shape exponent")
	fs.IntVar(&cfg.Grid.PhiSteps, "phi-steps", cfg.Grid.PhiSteps, "longitude steps")
	fs.IntVar(&cfg.Grid.ThetaSteps, "theta-steps", cfg.Grid.ThetaSteps, "latitude steps")
	fs.BoolVar(&cfg.Grid.CleanSeam, "clean-seam", cfg.Grid.CleanSeam, "omit the overlapping seam triangles")
}

func (a *App) fractalCmd() *cobra.Command {
	cfg := a.Config
	c := &cobra.Command{
		Use:   "fractal",
		Short: "Write the box fractal mesh",
		RunE: func(*cobra.Command, []string) error {
			return cmd.Fractal(cfg)
		},
	}
	fs := c.Flags()
	fs.IntVar(&cfg.Fractal.Depth, "depth", cfg.Fractal.Depth, "depth of subdivision")
	fs.Float32Var(&cfg.Fractal.Size, "size", cfg.Fractal.Size, "edge length of the root cube")
	fs.StringVar(&cfg.Fractal.Color, "color", cfg.Fractal.Color, "root cube color as #rrggbb")
	fs.Int64Var(&cfg.Fractal.Seed, "seed", cfg.Fractal.Seed, "random seed for the colors")
	return c
}

func (a *App) projectileCmd() *cobra.Command {
	cfg := a.Config
	c := &cobra.Command{
		Use:   "projectile",
		Short: "Simulate a throw and write the trail as t x y z lines",
		RunE: func(c *cobra.Command, _ []string) error {
			return cmd.Projectile(c.Context(), cfg)
		},
	}
	fs := c.Flags()
	fs.Float32Var(&cfg.Projectile.Speed, "speed", cfg.Projectile.Speed, "speed input, divided by 50")
	fs.Float32Var(&cfg.Projectile.Angle, "angle", cfg.Projectile.Angle, "launch angle in degrees")
	fs.Float32Var(&cfg.Projectile.Dt, "dt", cfg.Projectile.Dt, "time step")
	fs.IntVar(&cfg.Projectile.Steps, "steps", cfg.Projectile.Steps, "number of steps")
	return c
}

func (a *App) serveCmd() *cobra.Command {
	cfg := a.Config
	c := &cobra.Command{
		Use:   "serve",
		Short: "Run the live preview server",
		RunE: func(c *cobra.Command, _ []string) error {
			return cmd.Serve(c.Context(), cfg)
		},
	}
	a.surfaceFlags(c.Flags())
	c.Flags().StringVar(&cfg.Server.Addr, "addr", cfg.Server.Addr, "address to listen on")
	return c
}

func (a *App) watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Rewrite the surface mesh each time the config file changes",
		RunE: func(c *cobra.Command, _ []string) error {
			return cmd.Watch(c.Context(), a.Config, a.File)
		},
	}
}

func (a *App) pushCmd() *cobra.Command {
	cfg := a.Config
	c := &cobra.Command{
		Use:   "push",
		Short: "Send surface parameters to a running preview server",
		RunE: func(c *cobra.Command, _ []string) error {
			return cmd.Push(c.Context(), cfg)
		},
	}
	a.surfaceFlags(c.Flags())
	c.Flags().StringVar(&cfg.Server.Addr, "addr", cfg.Server.Addr, "address of the server")
	return c
}
