// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSysRandSeeded(t *testing.T) {
	a := NewSysRand(42)
	b := NewSysRand(42)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
	a.Seed(7)
	b.Seed(7)
	assert.Equal(t, a.Float64(), b.Float64())
	assert.Equal(t, a.Uint32(), b.Uint32())
}

func TestGlobalRand(t *testing.T) {
	var r Rand = NewGlobalRand()
	for i := 0; i < 100; i++ {
		f := r.Float32()
		assert.GreaterOrEqual(t, f, float32(0))
		assert.Less(t, f, float32(1))
	}
	g := NewGlobalRand()
	g.Seed(3)
	assert.NotNil(t, g.Rand)
}
