// Copyright (c) 2022, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sltype

import "fmt"

// Type is the shape of a struct field: a Scalar, a Vector, or a Matrix.
// The set of implementations is closed.
type Type interface {
	// Elem returns the scalar kind of the components.
	Elem() Kind

	// Components returns the number of scalar components.
	Components() int

	String() string

	isType()
}

// Scalar is a single value of the given kind.
type Scalar struct {
	Kind Kind
}

// Vector is a vector of N components, N in [2,4].
type Vector struct {
	Kind Kind
	N    int
}

// Matrix is a column-major matrix with Rows x Cols components,
// both in [2,4].
type Matrix struct {
	Kind Kind
	Rows int
	Cols int
}

func (t Scalar) Elem() Kind { return t.Kind }
func (t Vector) Elem() Kind { return t.Kind }
func (t Matrix) Elem() Kind { return t.Kind }

func (t Scalar) Components() int { return 1 }
func (t Vector) Components() int { return t.N }
func (t Matrix) Components() int { return t.Rows * t.Cols }

func (t Scalar) String() string { return t.Kind.String() }
func (t Vector) String() string { return fmt.Sprintf("%s x%d", t.Kind, t.N) }
func (t Matrix) String() string { return fmt.Sprintf("%s %dx%d", t.Kind, t.Rows, t.Cols) }

func (Scalar) isType() {}
func (Vector) isType() {}
func (Matrix) isType() {}

// FromDim decodes the compact shape encoding used by model tables:
// 1 is a scalar, 2..4 a vector, and a two digit code RC a matrix of
// R rows and C columns.
func FromDim(k Kind, dim int) (Type, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("sltype: invalid kind %d", int32(k))
	}
	switch {
	case dim == 1:
		return Scalar{k}, nil
	case dim >= 2 && dim <= 4:
		return Vector{k, dim}, nil
	case dim >= 22 && dim <= 44:
		r, c := dim/10, dim%10
		if c >= 2 && c <= 4 {
			return Matrix{k, r, c}, nil
		}
	}
	return nil, fmt.Errorf("sltype: invalid shape code %d", dim)
}

// Dim is the inverse of FromDim.
func Dim(t Type) int {
	switch t := t.(type) {
	case Vector:
		return t.N
	case Matrix:
		return t.Rows*10 + t.Cols
	}
	return 1
}

// Validate reports whether the shape dimensions are within range.
func Validate(t Type) error {
	if t == nil {
		return fmt.Errorf("sltype: nil type")
	}
	if !t.Elem().Valid() {
		return fmt.Errorf("sltype: invalid kind %d", int32(t.Elem()))
	}
	switch t := t.(type) {
	case Vector:
		if t.N < 2 || t.N > 4 {
			return fmt.Errorf("sltype: vector width %d out of range [2,4]", t.N)
		}
	case Matrix:
		if t.Rows < 2 || t.Rows > 4 || t.Cols < 2 || t.Cols > 4 {
			return fmt.Errorf("sltype: matrix %dx%d out of range [2,4]", t.Rows, t.Cols)
		}
	}
	return nil
}
