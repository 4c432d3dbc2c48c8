// Copyright (c) 2022, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sltype

//go:generate core generate

// Kind is a scalar element kind.
type Kind int32 //enums:enum -transform lower

const (
	// Float32 is a 32-bit float.
	Float32 Kind = iota

	// Int32 is a 32-bit signed integer.
	Int32

	// Uint32 is a 32-bit unsigned integer.
	Uint32

	// image-only kinds, never valid in a struct field

	// Unorm8 is an 8-bit normalized channel.
	Unorm8

	// Uint16 is a 16-bit unsigned integer channel.
	Uint16

	// Float16 is a half float channel.
	Float16

	// Packed111110 packs three float channels into 11, 11 and 10 bits.
	Packed111110

	// PackedSharedExp packs three float channels with a shared exponent.
	PackedSharedExp
)

// kindAliases are the GLSL scalar names accepted by ParseKind.
var kindAliases = map[string]Kind{
	"float": Float32,
	"int":   Int32,
	"uint":  Uint32,
}

// StructCapable reports whether the kind may appear in a struct field:
// only 32-bit float, signed and unsigned integers can.
func (k Kind) StructCapable() bool {
	return k == Float32 || k == Int32 || k == Uint32
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k >= 0 && k < KindN
}

// ParseKind returns the kind with the given name, as printed by String.
// The GLSL names "float", "int" and "uint" are accepted as aliases.
func ParseKind(s string) (Kind, error) {
	if k, ok := kindAliases[s]; ok {
		return k, nil
	}
	var k Kind
	err := k.SetString(s)
	return k, err
}
