// Copyright (c) 2022, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alignsl

import (
	"fmt"

	"goki.dev/shgen/sldecl"
	"goki.dev/shgen/sltype"
)

// HostStd140Warning is reported for std140 structs that are also
// emitted for a host language.
const HostStd140Warning = "host layout of std140 struct is not verified"

// Compute lays out st under its layout and break policies.
// Model errors wrap sldecl.ErrModel and consistency failures wrap
// ErrLayout; in both cases no plan is returned.
func Compute(st *sldecl.Struct) (*Plan, error) {
	if err := st.Validate(); err != nil {
		return nil, err
	}
	pl := &placer{plan: &Plan{Struct: st}}
	for i := range st.Fields {
		f := &st.Fields[i]
		e, align, trail := fieldEntry(st, f)
		if st.Layout == sldecl.Std430 {
			if gap := alignUp(pl.cur, align) - pl.cur; gap > 0 {
				pl.pad(gap / sltype.ScalarSize)
			}
		}
		pl.place(e)
		if st.Layout == sldecl.Std430 {
			pl.pad(trail)
		}
		if pl.cur%sltype.ScalarSize != 0 {
			return nil, fmt.Errorf("%w: %s: offset %d after %s is not a multiple of 4", ErrLayout, st.Name, pl.cur, f.Name)
		}
	}

	switch st.Layout {
	case sldecl.Std430:
		if rem := pl.cur % 16; rem != 0 {
			if rem%sltype.ScalarSize != 0 {
				return nil, fmt.Errorf("%w: %s: size %d is not 4-byte aligned", ErrLayout, st.Name, pl.cur)
			}
			pl.pad((16 - rem) / sltype.ScalarSize)
		}
	case sldecl.Std140:
		if pl.cur%16 != 0 {
			return nil, fmt.Errorf("%w: %s: std140 size %d is not a multiple of 16; add explicit pad fields", ErrLayout, st.Name, pl.cur)
		}
		if !st.GPUOnly {
			pl.plan.Warnings = append(pl.plan.Warnings, fmt.Sprintf("%s: %s", st.Name, HostStd140Warning))
		}
	}
	pl.plan.Size = pl.cur
	return pl.plan, nil
}

// fieldEntry returns the entry for f, its alignment, and the number of
// trailing pad words it needs under std430.
func fieldEntry(st *sldecl.Struct, f *sldecl.Field) (e Entry, align, trail int) {
	std430 := st.Layout == sldecl.Std430
	e = Entry{Name: f.Name, Field: f}
	t, c := f.Type, f.Count
	sc := scalarOf(t)
	align = sltype.ScalarSize

	if c > 1 && st.Break == sldecl.AlwaysFlatten {
		n := FlatLen(c, t.Components())
		e.GPU = Repr{Type: sc, Dims: []int{n}}
		e.Host = e.GPU
		e.Size = n * sltype.ScalarSize
		e.Flattened = true
		return
	}

	switch t := t.(type) {
	case sltype.Scalar:
		e.GPU = Repr{Type: t}
		if c > 1 {
			e.GPU.Dims = []int{c}
		}
		e.Host = e.GPU
		e.Size = c * sltype.ScalarSize

	case sltype.Vector:
		stride := sltype.NaturalSize(t)
		if std430 {
			align = sltype.GPUAlign(t)
			if c > 1 {
				stride = sltype.GPUSize(t)
			}
		}
		sw := stride / sltype.ScalarSize
		if c == 1 {
			e.GPU = Repr{Type: t}
			e.Host = Repr{Type: sc, Dims: []int{t.N}}
			if std430 {
				trail = (sltype.GPUSize(t) - sltype.NaturalSize(t)) / sltype.ScalarSize
			}
		} else {
			e.GPU = Repr{Type: t, Dims: []int{c}}
			if st.Break == sldecl.FlattenHost {
				e.Host = Repr{Type: sc, Dims: []int{c * sw}}
			} else {
				e.Host = Repr{Type: sc, Dims: []int{c, sw}}
			}
			e.PadWords = c * (sw - t.N)
		}
		e.Size = c * stride

	case sltype.Matrix:
		// repeated matrices only pass validation flattened, above
		_, native := sltype.Name(sltype.GLSL, t)
		size := sltype.NaturalSize(t)
		if std430 && native {
			align = sltype.GPUAlign(t)
			size = sltype.GPUSize(t)
		}
		sw := size / sltype.ScalarSize
		if native {
			e.GPU = Repr{Type: t}
		} else {
			e.GPU = Repr{Type: sc, Dims: []int{sw}}
		}
		e.Host = Repr{Type: sc, Dims: []int{sw}}
		e.PadWords = sw - t.Components()
		e.Size = size
	}
	return
}
