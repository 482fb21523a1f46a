// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtToFormat(t *testing.T) {
	f, err := ExtToFormat(".PNG")
	assert.NoError(t, err)
	assert.Equal(t, PNG, f)
	f, err = ExtToFormat("jpg")
	assert.NoError(t, err)
	assert.Equal(t, JPEG, f)
	_, err = ExtToFormat("")
	assert.Error(t, err)
	_, err = ExtToFormat(".obj")
	assert.Error(t, err)
	assert.Equal(t, "bmp", BMP.String())
}

func TestSaveOpen(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	img.Set(1, 2, color.RGBA{200, 10, 10, 255})
	for _, ext := range []string{".png", ".bmp", ".tiff"} {
		fn := filepath.Join(t.TempDir(), "img"+ext)
		require.NoError(t, Save(img, fn))
		got, _, err := Open(fn)
		require.NoError(t, err)
		assert.True(t, CompareColors(color.RGBA{200, 10, 10, 255}, AsRGBA(got).RGBAAt(1, 2), 0), ext)
	}
}

type recordT struct {
	errs []string
}

func (r *recordT) Helper() {}

func (r *recordT) Errorf(format string, args ...any) {
	r.errs = append(r.errs, fmt.Sprintf(format, args...))
}

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

func TestAssert(t *testing.T) {
	t.Chdir(t.TempDir())
	gray := solid(8, 8, color.RGBA{100, 100, 100, 255})

	rt := &recordT{}
	Assert(rt, gray, "sub/gray")
	assert.Empty(t, rt.errs)
	assert.FileExists(t, filepath.Join("testdata", "sub", "gray.png"))

	// within tolerance
	near := solid(8, 8, color.RGBA{105, 95, 100, 255})
	Assert(rt, near, "sub/gray")
	assert.Empty(t, rt.errs)

	far := solid(8, 8, color.RGBA{100, 100, 100, 255})
	far.SetRGBA(3, 5, color.RGBA{200, 100, 100, 255})
	Assert(rt, far, "sub/gray")
	require.Len(t, rt.errs, 1)
	assert.Contains(t, rt.errs[0], "(3,5)")
	assert.FileExists(t, filepath.Join("testdata", "sub", "gray.fail.png"))
	assert.FileExists(t, filepath.Join("testdata", "sub", "gray.diff.png"))

	// a match removes the fail and diff images
	rt = &recordT{}
	Assert(rt, gray, "sub/gray")
	assert.Empty(t, rt.errs)
	assert.NoFileExists(t, filepath.Join("testdata", "sub", "gray.fail.png"))
	assert.NoFileExists(t, filepath.Join("testdata", "sub", "gray.diff.png"))

	Assert(rt, solid(4, 8, color.RGBA{100, 100, 100, 255}), "sub/gray")
	require.Len(t, rt.errs, 1)
	assert.Contains(t, rt.errs[0], "bounds")
}

func TestDiffImage(t *testing.T) {
	a := solid(2, 2, color.RGBA{10, 200, 30, 255})
	b := solid(2, 2, color.RGBA{20, 150, 30, 255})
	d := DiffImage(a, b)
	assert.Equal(t, color.RGBA{10, 50, 0, 255}, d.RGBAAt(1, 1))

	_, ok := FirstDiff(a, b, 50)
	assert.False(t, ok)
	pt, ok := FirstDiff(a, b, 20)
	assert.True(t, ok)
	assert.Equal(t, image.Pt(0, 0), pt)
	assert.True(t, CompareUint8(0, 10, 10))
	assert.False(t, CompareUint8(0, 11, 10))
}
