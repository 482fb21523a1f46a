// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fsx

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFilesOnPaths(t *testing.T) {
	d1, d2 := t.TempDir(), t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(d2, "demos3d.toml"), []byte("A = 1\n"), 0o644))

	got := FindFilesOnPaths([]string{d1, d2}, "demos3d.toml")
	require.Len(t, got, 1)
	assert.True(t, strings.HasSuffix(got[0], "demos3d.toml"))

	assert.Equal(t, got, FindFilesOnPaths(nil, got[0]))
	assert.Empty(t, FindFilesOnPaths([]string{d1}, "missing.toml"))

	ok, err := FileExists(d1)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestDirFS(t *testing.T) {
	d := t.TempDir()
	fn := filepath.Join(d, "a.txt")
	require.NoError(t, os.WriteFile(fn, []byte("hi"), 0o644))
	fsys, name, err := DirFS(fn)
	require.NoError(t, err)
	b, err := fs.ReadFile(fsys, name)
	require.NoError(t, err)
	assert.Equal(t, "hi", string(b))
}

func TestExpandHome(t *testing.T) {
	assert.Equal(t, "/abs/path", ExpandHome("/abs/path"))
	assert.False(t, strings.HasPrefix(ExpandHome("~/x"), "~"))
}
