// Copyright (c) 2022, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sldecl

import (
	"cogentcore.org/core/base/errors"
	"goki.dev/shgen/sltype"
)

//go:generate core generate

// ErrModel is wrapped by every error caused by a malformed model.
var ErrModel = errors.New("model error")

// Field is one member of a Struct.
type Field struct {
	Type sltype.Type
	Name string

	// Count is the repeat count, at least 1 once resolved.
	Count int

	// CountExpr, if set, is an expression over integer constants
	// that Model.Resolve evaluates into Count.
	CountExpr string
}

// Layout is the memory layout policy of a Struct.
type Layout int32 //enums:enum -trim-prefix Layout -transform lower

const (
	// LayoutNone places fields back to back at their natural size.
	LayoutNone Layout = iota

	// Std430 places fields by std430 alignment with explicit pads.
	Std430

	// Std140 leaves placement to the declarer and only validates size.
	Std140
)

// Break is the policy for repeated composite fields.
type Break int32 //enums:enum -transform kebab

const (
	// KeepComposite keeps native vector types on both sides.
	KeepComposite Break = iota

	// FlattenHost rewrites repeated vectors as scalar arrays on the
	// host side only; the GPU side keeps its native array.
	FlattenHost

	// AlwaysFlatten rewrites repeated fields as scalar arrays of
	// length align4(count*width) on both sides.
	AlwaysFlatten
)

// Struct is an ordered field list; field order is byte order.
type Struct struct {
	Name   string
	Fields []Field
	Layout Layout
	Break  Break

	// GPUOnly structs are not emitted for host languages.
	GPUOnly bool
}

// Buffer is a GLSL interface block exposing one instance of a Struct,
// or a runtime-sized array of it.
type Buffer struct {
	// Struct is the block member type. For a runtime array of a scalar
	// it may be a GLSL scalar name such as "uint".
	Struct string

	// Block is the interface block name, e.g. "GlobalUniform_BT".
	Block string

	// Instance is the member name visible to shaders.
	Instance string

	// DescSet is the macro holding the descriptor set index; the block
	// is only declared when the macro is defined.
	DescSet string

	// Binding is the constant holding the binding index.
	Binding string

	// Uniform selects a uniform block instead of a storage buffer.
	Uniform bool

	// Writable drops the readonly qualifier.
	Writable bool

	// WritableMacro, if set, drops readonly only when that macro is
	// defined by the including shader.
	WritableMacro string

	// RuntimeArray declares Instance as an unsized array.
	RuntimeArray bool
}

// Getter requests variable-stride accessors for the repeated vector
// fields of Struct, reached through Instance. Strides are read from
// StrideInstance.<field>Stride.
type Getter struct {
	Struct         string
	Instance       string
	StrideInstance string
}

// Model is the complete input of one generation run.
type Model struct {
	Consts  ConstTable
	Structs []*Struct
	Buffers []Buffer
	Getters []Getter

	// Framebuffers are the render targets, in binding order.
	Framebuffers []Resource

	// FramebufDescSet guards the GLSL framebuffer declarations.
	FramebufDescSet string

	// Checks must hold once the constants are resolved.
	Checks []Check
}

// StructByName returns the named struct, or nil.
func (m *Model) StructByName(name string) *Struct {
	for _, st := range m.Structs {
		if st.Name == name {
			return st
		}
	}
	return nil
}
