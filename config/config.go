// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config provides the demos3d configuration, read from
// TOML or YAML files on top of `default:` struct tag values.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"cogentcore.org/demos3d/base/errors"
	"cogentcore.org/demos3d/base/fsx"
	"cogentcore.org/demos3d/base/iox/tomlx"
	"cogentcore.org/demos3d/base/iox/yamlx"
	"cogentcore.org/demos3d/base/reflectx"
	"cogentcore.org/demos3d/fractal"
	"cogentcore.org/demos3d/meshio"
	"cogentcore.org/demos3d/shape"
	"github.com/jinzhu/copier"
)

// ErrFileType is returned for a config file that is neither TOML nor YAML.
var ErrFileType = errors.New("config: file must have a .toml, .yaml or .yml extension")

// maxIncludeDepth bounds include nesting, which also stops include cycles.
const maxIncludeDepth = 8

// Config is the complete demos3d configuration.
type Config struct {

	// other config files to apply before this one, relative to this
	// file; settings in this file take precedence
	Includes []string `json:"includes,omitempty" toml:"includes,omitempty" yaml:"includes,omitempty"`

	// superellipsoid shape parameters
	Shape shape.SuperParams `json:"shape" toml:"shape" yaml:"shape"`

	// superellipsoid sampling grid
	Grid shape.Grid `json:"grid" toml:"grid" yaml:"grid"`

	// the file to write meshes to
	Output string `default:"superellipsoid.obj" json:"output" toml:"output" yaml:"output"`

	// mesh format (json, obj, stl, stla); empty to use the Output extension
	Format string `json:"format" toml:"format" yaml:"format"`

	Preview Preview `json:"preview" toml:"preview" yaml:"preview"`

	Server Server `json:"server" toml:"server" yaml:"server"`

	Log Log `json:"log" toml:"log" yaml:"log"`

	Fractal fractal.Params `json:"fractal" toml:"fractal" yaml:"fractal"`

	Projectile Projectile `json:"projectile" toml:"projectile" yaml:"projectile"`
}

// Preview is the configuration of preview images.
type Preview struct {

	// preview image file to write along with each mesh; empty for none
	File string `json:"file" toml:"file" yaml:"file"`

	Width  int `default:"256" json:"width" toml:"width" yaml:"width"`
	Height int `default:"256" json:"height" toml:"height" yaml:"height"`

	// view rotation about the horizontal axis, in degrees
	Pitch float32 `default:"-60" json:"pitch" toml:"pitch" yaml:"pitch"`

	// view rotation about the vertical axis, in degrees
	Yaw float32 `default:"30" json:"yaw" toml:"yaw" yaml:"yaw"`
}

// Server is the configuration of the live preview server.
type Server struct {

	// address to listen on
	Addr string `default:"localhost:8080" json:"addr" toml:"addr" yaml:"addr"`

	// largest accepted grid step count in requests
	MaxSteps int `default:"512" json:"maxSteps" toml:"maxSteps" yaml:"maxSteps"`
}

// Log is the logging configuration.
type Log struct {

	// level name: debug, info, warn or error
	Level string `default:"info" json:"level" toml:"level" yaml:"level"`
}

// Projectile is the configuration of the projectile simulation.
type Projectile struct {

	// speed input, divided by 50 to give the launch speed
	Speed float32 `default:"25" json:"speed" toml:"speed" yaml:"speed"`

	// launch angle in degrees
	Angle float32 `default:"45" json:"angle" toml:"angle" yaml:"angle"`

	// time step
	Dt float32 `default:"0.016" json:"dt" toml:"dt" yaml:"dt"`

	// number of steps to simulate
	Steps int `default:"300" json:"steps" toml:"steps" yaml:"steps"`
}

// New returns a new Config with all default values set.
func New() *Config {
	c := &Config{}
	c.Defaults()
	return c
}

// Defaults sets all fields to their default values.
func (c *Config) Defaults() {
	*c = Config{}
	errors.Log(reflectx.SetFromDefaultTags(c))
}

// Open returns the defaults overridden by the given config file.
func Open(filename string) (*Config, error) {
	c := New()
	if err := c.OpenFile(filename); err != nil {
		return nil, err
	}
	return c, nil
}

// OpenFile reads the given config file into c, which should already
// hold defaults. A leading ~ is expanded to the home directory.
// Included files are read first, so that includers overwrite
// included settings.
func (c *Config) OpenFile(filename string) error {
	return c.openIncludes(fsx.ExpandHome(filename), 0)
}

func (c *Config) openIncludes(file string, depth int) error {
	if depth > maxIncludeDepth {
		return fmt.Errorf("config: includes nested deeper than %d at %q", maxIncludeDepth, file)
	}
	if err := openFile(c, file); err != nil {
		return err
	}
	incs := c.Includes
	if len(incs) == 0 {
		return nil
	}
	paths := []string{filepath.Dir(file), "."}
	for _, inc := range incs {
		files := fsx.FindFilesOnPaths(paths, inc)
		if len(files) == 0 {
			return fmt.Errorf("config: %q: include %q not found", file, inc)
		}
		c.Includes = nil
		if err := c.openIncludes(files[0], depth+1); err != nil {
			return err
		}
	}
	// reopen original
	if err := openFile(c, file); err != nil {
		return err
	}
	c.Includes = incs
	return nil
}

func openFile(c *Config, file string) error {
	var err error
	switch strings.ToLower(filepath.Ext(file)) {
	case ".toml":
		err = tomlx.Open(c, file)
	case ".yaml", ".yml":
		err = yamlx.Open(c, file)
	default:
		return fmt.Errorf("%q: %w", file, ErrFileType)
	}
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Save writes the config to the given file, as TOML or YAML
// depending on the extension.
func (c *Config) Save(filename string) error {
	filename = fsx.ExpandHome(filename)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return tomlx.Save(c, filename)
	case ".yaml", ".yml":
		return yamlx.Save(c, filename)
	}
	return fmt.Errorf("%q: %w", filename, ErrFileType)
}

// Clone returns a deep copy of the config.
func (c *Config) Clone() *Config {
	cp := &Config{}
	if err := copier.CopyWithOption(cp, c, copier.Option{DeepCopy: true}); err != nil {
		panic(err)
	}
	return cp
}

// MeshFormat returns the configured mesh format, from Format if set
// and otherwise from the Output extension.
func (c *Config) MeshFormat() (meshio.Format, error) {
	if c.Format != "" {
		return meshio.ParseFormat(c.Format)
	}
	return meshio.FormatFromName(c.Output)
}

// Validate checks the config for values that cannot be used.
func (c *Config) Validate() error {
	var errs []error
	errs = append(errs, c.Shape.Validate(), c.Grid.Validate(), c.Fractal.Validate())
	if _, err := c.MeshFormat(); err != nil {
		errs = append(errs, err)
	}
	if c.Grid.PhiSteps > c.Server.MaxSteps || c.Grid.ThetaSteps > c.Server.MaxSteps {
		errs = append(errs, fmt.Errorf("config: grid %dx%d exceeds server.maxSteps %d", c.Grid.PhiSteps, c.Grid.ThetaSteps, c.Server.MaxSteps))
	}
	if c.Preview.Width < 1 || c.Preview.Height < 1 {
		errs = append(errs, fmt.Errorf("config: preview size %dx%d must be positive", c.Preview.Width, c.Preview.Height))
	}
	return errors.Join(errs...)
}
