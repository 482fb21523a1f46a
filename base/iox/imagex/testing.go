// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"errors"
	"image"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// TestingT is the subset of *testing.T used by [Assert].
type TestingT interface {
	Helper()
	Errorf(format string, args ...any)
}

// UpdateTestImages makes [Assert] overwrite the saved golden images
// with the images it is given. It is set when the environment variable
// DEMOS3D_UPDATE_TESTDATA is "true", which should only be done once
// after an intended change in rendering.
var UpdateTestImages = os.Getenv("DEMOS3D_UPDATE_TESTDATA") == "true"

// Tolerance is the largest per-channel difference [Assert] accepts.
var Tolerance = 10

// CompareUint8 returns whether a and b differ by at most tol.
func CompareUint8(a, b uint8, tol int) bool {
	d := int(a) - int(b)
	return d >= -tol && d <= tol
}

// CompareColors returns whether every channel of a and b differs by at most tol.
func CompareColors(a, b color.RGBA, tol int) bool {
	return CompareUint8(a.R, b.R, tol) && CompareUint8(a.G, b.G, tol) &&
		CompareUint8(a.B, b.B, tol) && CompareUint8(a.A, b.A, tol)
}

func rgbaAt(im image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(im.At(x, y)).(color.RGBA)
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

// DiffImage returns an opaque image of the per-channel absolute
// differences of a and b, over the bounds of a.
func DiffImage(a, b image.Image) *image.RGBA {
	ab := a.Bounds()
	di := image.NewRGBA(ab)
	for y := ab.Min.Y; y < ab.Max.Y; y++ {
		for x := ab.Min.X; x < ab.Max.X; x++ {
			ac, bc := rgbaAt(a, x, y), rgbaAt(b, x, y)
			di.SetRGBA(x, y, color.RGBA{absDiff(ac.R, bc.R), absDiff(ac.G, bc.G), absDiff(ac.B, bc.B), 255})
		}
	}
	return di
}

// FirstDiff returns the first pixel, in row order, at which a and b
// differ by more than tol. ok is false if there is none. The images
// must have the same bounds.
func FirstDiff(a, b image.Image, tol int) (pt image.Point, ok bool) {
	ab := a.Bounds()
	for y := ab.Min.Y; y < ab.Max.Y; y++ {
		for x := ab.Min.X; x < ab.Max.X; x++ {
			if !CompareColors(rgbaAt(a, x, y), rgbaAt(b, x, y), tol) {
				return image.Pt(x, y), true
			}
		}
	}
	return image.Point{}, false
}

// goldenFiles returns the golden, fail and diff file names for a test image
// name, under testdata and with .png added if there is no extension.
func goldenFiles(name string) (golden, fail, diff string) {
	golden = filepath.Join("testdata", filepath.FromSlash(name))
	ext := filepath.Ext(golden)
	if ext == "" {
		ext = ".png"
		golden += ext
	}
	base := strings.TrimSuffix(golden, ext)
	return golden, base + ".fail" + ext, base + ".diff" + ext
}

// Assert checks img against the golden image testdata/name (".png" is
// added without an extension), within [Tolerance] per channel. A missing
// golden image is created. On a mismatch the test fails and the image
// and its difference are saved next to the golden one as name.fail.png
// and name.diff.png, which are removed again once the image matches.
func Assert(t TestingT, img image.Image, name string) {
	t.Helper()
	golden, fail, diff := goldenFiles(name)
	if err := os.MkdirAll(filepath.Dir(golden), 0750); err != nil {
		t.Errorf("imagex.Assert: %v", err)
		return
	}
	clean := func() {
		os.Remove(fail)
		os.Remove(diff)
	}
	if UpdateTestImages {
		if err := Save(img, golden); err != nil {
			t.Errorf("imagex.Assert: saving updated %s: %v", golden, err)
		}
		clean()
		return
	}

	want, _, err := Open(golden)
	if errors.Is(err, fs.ErrNotExist) {
		if err := Save(img, golden); err != nil {
			t.Errorf("imagex.Assert: saving new %s: %v", golden, err)
		}
		return
	}
	if err != nil {
		t.Errorf("imagex.Assert: opening %s: %v", golden, err)
		return
	}

	switch ib, wb := img.Bounds(), want.Bounds(); {
	case ib != wb:
		t.Errorf("imagex.Assert: %s: bounds are %v, want %v; see %s", golden, ib, wb, fail)
	default:
		pt, bad := FirstDiff(img, want, Tolerance)
		if !bad {
			clean()
			return
		}
		t.Errorf("imagex.Assert: %s: color at %v is %v, want %v; see %s", golden, pt, rgbaAt(img, pt.X, pt.Y), rgbaAt(want, pt.X, pt.Y), fail)
		if err := Save(DiffImage(img, want), diff); err != nil {
			t.Errorf("imagex.Assert: saving %s: %v", diff, err)
		}
	}
	if err := Save(img, fail); err != nil {
		t.Errorf("imagex.Assert: saving %s: %v", fail, err)
	}
}
