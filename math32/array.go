// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// ArrayF32 is a slice of float32 with additional convenience methods
// for reading and writing vectors at index positions.
type ArrayF32 []float32

// NewArrayF32 creates and returns a slice of float32 values
// with the specified initial size and capacity.
func NewArrayF32(size, capacity int) ArrayF32 {
	return make([]float32, size, capacity)
}

// Bytes returns the size of the array in bytes.
func (a *ArrayF32) Bytes() int {
	return len(*a) * 4
}

// Size returns the number of float32 elements in the array.
func (a *ArrayF32) Size() int {
	return len(*a)
}

// Len returns the number of float32 elements in the array.
// It is equivalent to Size().
func (a *ArrayF32) Len() int {
	return len(*a)
}

// Append appends any number of values to the array.
func (a *ArrayF32) Append(v ...float32) {
	*a = append(*a, v...)
}

// AppendVector3 appends any number of Vector3 to the array.
func (a *ArrayF32) AppendVector3(v ...Vector3) {
	for i := 0; i < len(v); i++ {
		*a = append(*a, v[i].X, v[i].Y, v[i].Z)
	}
}

// AppendVector2 appends any number of Vector2 to the array.
func (a *ArrayF32) AppendVector2(v ...Vector2) {
	for i := 0; i < len(v); i++ {
		*a = append(*a, v[i].X, v[i].Y)
	}
}

// Set sets the values of the array starting at the specified pos
// from the specified values.
func (a ArrayF32) Set(pos int, v ...float32) {
	for i := 0; i < len(v); i++ {
		a[pos+i] = v[i]
	}
}

// SetVector2 sets the values of the array at the specified pos
// from the XY values of the specified Vector2.
func (a ArrayF32) SetVector2(pos int, v Vector2) {
	a[pos] = v.X
	a[pos+1] = v.Y
}

// SetVector3 sets the values of the array at the specified pos
// from the XYZ values of the specified Vector3.
func (a ArrayF32) SetVector3(pos int, v Vector3) {
	a[pos] = v.X
	a[pos+1] = v.Y
	a[pos+2] = v.Z
}

// GetVector3 stores in the specified Vector3 the
// values from the array starting at the specified pos.
func (a ArrayF32) GetVector3(pos int, v *Vector3) {
	v.X = a[pos]
	v.Y = a[pos+1]
	v.Z = a[pos+2]
}

// Vector3At returns the Vector3 at vertex index i of a stride-3 array.
func (a ArrayF32) Vector3At(i int) Vector3 {
	return Vec3(a[i*3], a[i*3+1], a[i*3+2])
}

// ArrayU32 is a slice of uint32 with additional convenience methods.
type ArrayU32 []uint32

// NewArrayU32 creates and returns a slice of uint32 values
// with the specified initial size and capacity.
func NewArrayU32(size, capacity int) ArrayU32 {
	return make([]uint32, size, capacity)
}

// Bytes returns the size of the array in bytes.
func (a *ArrayU32) Bytes() int {
	return len(*a) * 4
}

// Size returns the number of uint32 elements in the array.
func (a *ArrayU32) Size() int {
	return len(*a)
}

// Len returns the number of uint32 elements in the array.
func (a *ArrayU32) Len() int {
	return len(*a)
}

// Append appends n elements to the array updating the slice if necessary
func (a *ArrayU32) Append(v ...uint32) {
	*a = append(*a, v...)
}

// Set sets the values of the array starting at the specified pos
// from the specified values.
func (a ArrayU32) Set(pos int, v ...uint32) {
	for i := 0; i < len(v); i++ {
		a[pos+i] = v[i]
	}
}
