// Copyright (c) 2022, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alignsl

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"goki.dev/shgen/sldecl"
	"goki.dev/shgen/sltype"
)

// ErrLayout is wrapped by internal consistency failures of a layout,
// which point at a type table mismatch rather than at the model.
var ErrLayout = errors.New("layout invariant violated")

// Repr is the spelling of a field in one language: a type, which is
// a native aggregate when the language has one and a scalar otherwise,
// and array dimensions, outermost first.
type Repr struct {
	Type sltype.Type
	Dims []int
}

// Words returns the number of 32-bit words spelled by r, ignoring any
// GPU padding between array elements.
func (r Repr) Words() int {
	n := r.Type.Components()
	for _, d := range r.Dims {
		n *= d
	}
	return n
}

// Entry is one member of a laid out struct: a declared field or an
// explicit 32-bit pad.
type Entry struct {
	// Name is the field name, or __padN for pads.
	Name string

	// Field is the declared field, nil for pads.
	Field *sldecl.Field

	// Offset is the byte offset, identical on both sides.
	Offset int

	// Size is the number of bytes occupied, identical on both sides.
	Size int

	GPU  Repr
	Host Repr

	// PadWords is the number of padding words folded into Host, for
	// vector arrays and matrix columns widened to their GPU stride.
	PadWords int

	// Flattened is set when the field was rewritten as a scalar array
	// on both sides.
	Flattened bool
}

// IsPad reports whether e is a pad member.
func (e *Entry) IsPad() bool { return e.Field == nil }

// Plan is the placement of every member of one struct.
type Plan struct {
	Struct  *sldecl.Struct
	Entries []Entry

	// Size is the total size in bytes, including trailing pads.
	Size int

	// Pads is the number of explicit pad members.
	Pads int

	// Warnings are non-fatal problems for the caller to report.
	Warnings []string
}

// Fields returns the non-pad entries.
func (p *Plan) Fields() []*Entry {
	var fs []*Entry
	for i := range p.Entries {
		if !p.Entries[i].IsPad() {
			fs = append(fs, &p.Entries[i])
		}
	}
	return fs
}

// Entry returns the entry for the named field, or nil.
func (p *Plan) Entry(name string) *Entry {
	for i := range p.Entries {
		if p.Entries[i].Name == name {
			return &p.Entries[i]
		}
	}
	return nil
}

// FlatLen is the scalar array length of a flattened field: the
// smallest multiple of 4 not below count*width.
func FlatLen(count, width int) int {
	return alignUp(count*width, 4)
}

func alignUp(n, align int) int {
	return (n + align - 1) / align * align
}

func scalarOf(t sltype.Type) sltype.Type {
	return sltype.Scalar{Kind: t.Elem()}
}

// placer accumulates the entries of one struct. The pad counter is
// local to it so that structs are laid out independently.
type placer struct {
	plan *Plan
	cur  int
}

func (pl *placer) pad(words int) {
	u := sltype.Scalar{Kind: sltype.Uint32}
	for i := 0; i < words; i++ {
		pl.plan.Entries = append(pl.plan.Entries, Entry{
			Name:   fmt.Sprintf("__pad%d", pl.plan.Pads),
			Offset: pl.cur,
			Size:   sltype.ScalarSize,
			GPU:    Repr{Type: u},
			Host:   Repr{Type: u},
		})
		pl.plan.Pads++
		pl.cur += sltype.ScalarSize
	}
}

func (pl *placer) place(e Entry) {
	e.Offset = pl.cur
	pl.plan.Entries = append(pl.plan.Entries, e)
	pl.cur += e.Size
}
