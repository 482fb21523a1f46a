// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

type defaultsInner struct {
	Steps int     `default:"32"`
	Scale float32 `default:"0.5"`
}

type defaultsOuter struct {
	Name    string   `default:"superellipsoid"`
	On      bool     `default:"true"`
	A       float64  `default:"2"`
	Seed    uint64   `default:"0x10"`
	Formats []string `default:"obj, stl"`
	Inner   defaultsInner
	Plain   int
	hidden  int `default:"3"`
}

func TestSetFromDefaultTags(t *testing.T) {
	v := &defaultsOuter{Plain: 7}
	assert.NoError(t, SetFromDefaultTags(v))
	assert.Equal(t, "superellipsoid", v.Name)
	assert.True(t, v.On)
	assert.Equal(t, 2.0, v.A)
	assert.Equal(t, uint64(16), v.Seed)
	assert.Equal(t, []string{"obj", "stl"}, v.Formats)
	assert.Equal(t, 32, v.Inner.Steps)
	assert.Equal(t, float32(0.5), v.Inner.Scale)
	assert.Equal(t, 7, v.Plain)
	assert.Equal(t, 0, v.hidden)
}

func TestSetFromDefaultTagsErrors(t *testing.T) {
	assert.Error(t, SetFromDefaultTags(defaultsOuter{}))
	n := 3
	assert.Error(t, SetFromDefaultTags(&n))

	type bad struct {
		N int `default:"many"`
	}
	assert.Error(t, SetFromDefaultTags(&bad{}))
}

func TestSetFromString(t *testing.T) {
	var f float32
	assert.NoError(t, SetFromString(reflect.ValueOf(&f).Elem(), "1.5"))
	assert.Equal(t, float32(1.5), f)
	var m map[string]int
	assert.Error(t, SetFromString(reflect.ValueOf(&m).Elem(), "x"))
}
