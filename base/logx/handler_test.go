// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandler(t *testing.T) {
	UseColor = false
	defer func() { UseColor = true }()
	var buf bytes.Buffer
	lg := slog.New(NewHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	lg.Debug("hidden")
	lg.With("mesh", "superellipsoid").WithGroup("grid").Info("generated", "phi", 32)
	lg.Warn("careful", slog.Group("params", "A", 2.0))
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "INFO generated mesh=superellipsoid grid.phi=32\n")
	assert.Contains(t, out, "WARN careful params.A=2\n")
}

func TestLevels(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, true))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, false))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))

	assert.Equal(t, slog.LevelDebug, LevelFromString("debug"))
	assert.Equal(t, slog.LevelError, LevelFromString("ERROR"))
	assert.Equal(t, UserLevel, LevelFromString("loud"))
}

func TestDefaultLogger(t *testing.T) {
	UserLevel = slog.LevelDebug
	defer func() { UserLevel = slog.LevelInfo }()
	SetDefaultLogger()

	slog.Debug("this is debug")
	slog.Info("this is info")
	slog.Warn("this is warn")
}
