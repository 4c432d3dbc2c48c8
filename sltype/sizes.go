// Copyright (c) 2022, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sltype

// ScalarSize is the byte size of every struct-capable scalar.
const ScalarSize = 4

// NaturalSize returns the tightly packed size of t in bytes.
func NaturalSize(t Type) int {
	return ScalarSize * t.Components()
}

// GPUAlign returns the std430 base alignment of t in bytes.
// Matrices align to their column vector. Matrices of integer kinds have
// no shading language type and are stored as plain scalar arrays.
func GPUAlign(t Type) int {
	switch t := t.(type) {
	case Vector:
		if t.N == 2 {
			return 2 * ScalarSize
		}
		return 4 * ScalarSize
	case Matrix:
		if t.Kind != Float32 {
			return ScalarSize
		}
		return GPUAlign(Vector{t.Kind, t.Rows})
	}
	return ScalarSize
}

// GPUSize returns the std430 size of t in bytes, which is also its
// array stride: a vec3 occupies 16 bytes, and a matrix occupies
// one aligned column vector per column.
func GPUSize(t Type) int {
	switch t := t.(type) {
	case Vector:
		return GPUAlign(t)
	case Matrix:
		if t.Kind != Float32 {
			return NaturalSize(t)
		}
		return t.Cols * ColumnStride(t)
	}
	return ScalarSize
}

// ColumnStride returns the std430 byte stride between matrix columns.
func ColumnStride(m Matrix) int {
	if m.Kind != Float32 {
		return m.Rows * ScalarSize
	}
	return GPUAlign(Vector{m.Kind, m.Rows})
}
