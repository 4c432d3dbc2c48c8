// Copyright (c) 2022, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sldecl

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"goki.dev/shgen/sltype"
)

// Resolve runs the constant derivation pass, evaluates field count
// expressions against the resolved constants, and validates the result.
func (m *Model) Resolve(derivers map[string]DeriveFunc) error {
	if err := m.Consts.Resolve(derivers); err != nil {
		return err
	}
	env := m.Consts.Env()
	var errs []error
	for _, st := range m.Structs {
		for i := range st.Fields {
			f := &st.Fields[i]
			if f.CountExpr == "" {
				continue
			}
			n, err := Eval(f.CountExpr, env)
			if err != nil {
				errs = append(errs, fmt.Errorf("%w: %s.%s count: %w", ErrModel, st.Name, f.Name, err))
				continue
			}
			f.Count = int(n)
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return m.Validate()
}

// Validate checks the model for authoring mistakes. All problems are
// reported together.
func (m *Model) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrModel}, args...)...))
	}

	if pend := m.Consts.Pending(); len(pend) > 0 {
		errs = append(errs, fmt.Errorf("%w: %v", ErrUnresolved, pend))
	} else {
		errs = append(errs, m.checkConsts()...)
	}
	seen := map[string]bool{}
	for _, c := range m.Consts {
		if c.Name == "" {
			add("constant with empty name")
		}
		if seen[c.Name] {
			add("duplicate constant %s", c.Name)
		}
		seen[c.Name] = true
	}

	structs := map[string]*Struct{}
	for _, st := range m.Structs {
		if st.Name == "" {
			add("struct with empty name")
			continue
		}
		if structs[st.Name] != nil {
			add("duplicate struct %s", st.Name)
		}
		structs[st.Name] = st
		if err := st.Validate(); err != nil {
			errs = append(errs, err)
		}
	}

	instances := map[string]*Struct{}
	for _, b := range m.Buffers {
		st := structs[b.Struct]
		if st == nil && !(b.RuntimeArray && isScalarName(b.Struct)) {
			add("buffer %s: unknown struct %s", b.Block, b.Struct)
		}
		if _, ok := m.Consts.Lookup(b.Binding); !ok {
			add("buffer %s: unknown binding constant %s", b.Block, b.Binding)
		}
		if b.Block == "" || b.Instance == "" || b.DescSet == "" {
			add("buffer for %s: block, instance and desc set are required", b.Struct)
		}
		if b.Uniform && b.RuntimeArray {
			add("buffer %s: uniform blocks cannot hold runtime arrays", b.Block)
		}
		instances[b.Instance] = st
	}

	for _, g := range m.Getters {
		st := structs[g.Struct]
		if st == nil {
			add("getter %s: unknown struct %s", g.Instance, g.Struct)
			continue
		}
		if st.Break != AlwaysFlatten {
			add("getter %s: struct %s must use the always-flatten policy", g.Instance, st.Name)
		}
		stride := instances[g.StrideInstance]
		if stride == nil {
			add("getter %s: unknown stride instance %s", g.Instance, g.StrideInstance)
			continue
		}
		for _, f := range st.Fields {
			if !HasVariableStride(f) {
				continue
			}
			if _, ok := f.Type.(sltype.Vector); !ok {
				add("getter %s: field %s is not a vector", g.Instance, f.Name)
				continue
			}
			if stride.FieldByName(f.Name+"Stride") == nil {
				add("getter %s: %s has no field %sStride", g.Instance, stride.Name, f.Name)
			}
		}
	}

	fbs := map[string]bool{}
	for i := range m.Framebuffers {
		r := &m.Framebuffers[i]
		if err := r.validate(); err != nil {
			errs = append(errs, err)
		}
		if fbs[r.Name] {
			add("duplicate framebuffer %s", r.Name)
		}
		fbs[r.Name] = true
	}
	if len(m.Framebuffers) > 0 && m.FramebufDescSet == "" {
		add("framebuffers declared without a descriptor set macro")
	}
	return errors.Join(errs...)
}

// Validate checks field shapes and counts.
func (st *Struct) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s: "+format, append([]any{ErrModel, st.Name}, args...)...))
	}
	if len(st.Fields) == 0 {
		add("no fields")
	}
	names := map[string]bool{}
	for _, f := range st.Fields {
		if f.Name == "" {
			add("field with empty name")
		}
		if names[f.Name] {
			add("duplicate field %s", f.Name)
		}
		names[f.Name] = true
		if err := sltype.Validate(f.Type); err != nil {
			add("field %s: %v", f.Name, err)
			continue
		}
		if !f.Type.Elem().StructCapable() {
			add("field %s: kind %s cannot be used in a struct", f.Name, f.Type.Elem())
		}
		if f.Count < 1 {
			add("field %s: count %d < 1", f.Name, f.Count)
		}
		if _, isMat := f.Type.(sltype.Matrix); isMat && f.Count > 1 && st.Break != AlwaysFlatten {
			add("field %s: repeated matrix requires the always-flatten policy", f.Name)
		}
	}
	return errors.Join(errs...)
}

// FieldByName returns the named field, or nil.
func (st *Struct) FieldByName(name string) *Field {
	for i := range st.Fields {
		if st.Fields[i].Name == name {
			return &st.Fields[i]
		}
	}
	return nil
}

// HasVariableStride reports whether f is accessed through a runtime
// stride: a repeated vector or matrix.
func HasVariableStride(f Field) bool {
	_, isScalar := f.Type.(sltype.Scalar)
	return f.Count > 1 && !isScalar
}

func isScalarName(s string) bool {
	switch s {
	case "float", "int", "uint":
		return true
	}
	return false
}
