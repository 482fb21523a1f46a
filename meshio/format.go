// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package meshio writes [shape.Geometry] meshes in common
// interchange formats: Wavefront OBJ, STL (binary and ASCII)
// and three.js BufferGeometry JSON.
package meshio

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"cogentcore.org/demos3d/shape"
)

// ErrUnknownFormat is returned for an unrecognized format name.
var ErrUnknownFormat = errors.New("meshio: unknown format")

// Format is a mesh file format.
type Format int32

const (
	// JSON is the three.js BufferGeometry JSON format.
	JSON Format = iota

	// OBJ is the Wavefront OBJ text format.
	OBJ

	// STL is the binary STL format.
	STL

	// STLASCII is the ASCII STL format.
	STLASCII
)

var formatNames = [...]string{"json", "obj", "stl", "stla"}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int32(f))
	}
	return formatNames[f]
}

// ContentType returns the MIME type for the format.
func (f Format) ContentType() string {
	switch f {
	case JSON:
		return "application/json"
	case OBJ:
		return "model/obj"
	}
	return "model/stl"
}

// Ext returns the file extension for the format, including the dot.
func (f Format) Ext() string {
	switch f {
	case JSON:
		return ".json"
	case OBJ:
		return ".obj"
	}
	return ".stl"
}

// ParseFormat returns the format with the given name, ignoring case.
// "stl-ascii" is accepted for [STLASCII].
func ParseFormat(name string) (Format, error) {
	nm := strings.ToLower(name)
	if nm == "stl-ascii" {
		return STLASCII, nil
	}
	for i, fn := range formatNames {
		if fn == nm {
			return Format(i), nil
		}
	}
	return JSON, fmt.Errorf("%q: %w", name, ErrUnknownFormat)
}

// FormatFromName returns the format for the extension of the given
// file name. The .stl extension gives binary [STL].
func FormatFromName(fname string) (Format, error) {
	ext := filepath.Ext(fname)
	if ext == "" {
		return JSON, fmt.Errorf("%q has no extension: %w", fname, ErrUnknownFormat)
	}
	return ParseFormat(ext[1:])
}

// Write writes the geometry to w in the given format.
func Write(w io.Writer, format Format, g *shape.Geometry) error {
	switch format {
	case JSON:
		return WriteJSON(w, g)
	case OBJ:
		return WriteOBJ(w, g)
	case STL:
		return WriteSTL(w, g)
	case STLASCII:
		return WriteSTLASCII(w, g)
	}
	return fmt.Errorf("%v: %w", format, ErrUnknownFormat)
}
