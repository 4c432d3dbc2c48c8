// Copyright (c) 2022, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sltype

import "fmt"

// Lang is a target language of the generator.
type Lang int32 //enums:enum

const (
	// C is the host header language.
	C Lang = iota

	// GLSL is the shading language.
	GLSL

	// Go is the Go host language.
	Go
)

// Name returns the native name of t in the given language. It returns
// false when the language has no such type, in which case the caller
// must fall back to a fixed-size array of the scalar type.
func Name(lang Lang, t Type) (string, bool) {
	switch t := t.(type) {
	case Scalar:
		return scalarName(lang, t.Kind)
	case Vector:
		if lang != GLSL {
			return "", false
		}
		switch t.Kind {
		case Float32:
			return fmt.Sprintf("vec%d", t.N), true
		case Int32:
			return fmt.Sprintf("ivec%d", t.N), true
		case Uint32:
			return fmt.Sprintf("uvec%d", t.N), true
		}
	case Matrix:
		if lang != GLSL || t.Kind != Float32 {
			return "", false
		}
		if t.Rows == t.Cols {
			return fmt.Sprintf("mat%d", t.Cols), true
		}
		return fmt.Sprintf("mat%dx%d", t.Cols, t.Rows), true
	}
	return "", false
}

func scalarName(lang Lang, k Kind) (string, bool) {
	switch lang {
	case C:
		switch k {
		case Float32:
			return "float", true
		case Int32:
			return "int32_t", true
		case Uint32:
			return "uint32_t", true
		}
	case GLSL:
		switch k {
		case Float32:
			return "float", true
		case Int32:
			return "int", true
		case Uint32:
			return "uint", true
		}
	case Go:
		switch k {
		case Float32:
			return "float32", true
		case Int32:
			return "int32", true
		case Uint32:
			return "uint32", true
		}
	}
	return "", false
}
