// Copyright (c) 2022, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slgen

import (
	"bytes"
	"fmt"
	"strings"

	"goki.dev/shgen/alignsl"
	"goki.dev/shgen/slbind"
	"goki.dev/shgen/sldecl"
	"goki.dev/shgen/sltype"
)

const tab = "    "

// banner is the first line of every generated file.
const banner = "// Code generated by \"shgen\"; DO NOT EDIT."

// State is a resolved model with its layouts and bindings, computed
// once and shared by every emitter.
type State struct {
	Model *sldecl.Model

	// Plans holds one layout per struct, in model order.
	Plans []*alignsl.Plan

	Bindings *slbind.Table

	GetSet bool
}

// NewState lays out every struct and assigns framebuffer bindings.
// The model must already be resolved.
func NewState(m *sldecl.Model, getset bool) (*State, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	s := &State{Model: m, GetSet: getset}
	for _, st := range m.Structs {
		p, err := alignsl.Compute(st)
		if err != nil {
			return nil, err
		}
		s.Plans = append(s.Plans, p)
	}
	tb, err := slbind.Assign(m.Framebuffers)
	if err != nil {
		return nil, err
	}
	s.Bindings = tb
	return s, nil
}

// Warnings returns the layout warnings of all plans.
func (s *State) Warnings() []string {
	var ws []string
	for _, p := range s.Plans {
		ws = append(ws, p.Warnings...)
	}
	return ws
}

// Plan returns the plan of the named struct, or nil.
func (s *State) Plan(name string) *alignsl.Plan {
	for _, p := range s.Plans {
		if p.Struct.Name == name {
			return p
		}
	}
	return nil
}

// declare spells a member of type r named name, C style.
func declare(lang sltype.Lang, r alignsl.Repr, name string) string {
	tn, ok := sltype.Name(lang, r.Type)
	if !ok {
		// Compute only emits native types or scalars
		panic(fmt.Sprintf("slgen: no %s name for %s", lang, r.Type))
	}
	var b strings.Builder
	b.WriteString(tn)
	b.WriteString(" ")
	b.WriteString(name)
	for _, d := range r.Dims {
		fmt.Fprintf(&b, "[%d]", d)
	}
	return b.String()
}

// Consts renders the constant table as #define lines.
// GPU-only constants are included only for the shading language.
func Consts(ct sldecl.ConstTable, lang sltype.Lang) ([]byte, error) {
	if pend := ct.Pending(); len(pend) > 0 {
		return nil, fmt.Errorf("%w: %s", sldecl.ErrUnresolved, strings.Join(pend, ", "))
	}
	var b bytes.Buffer
	for _, c := range ct {
		if c.GPUOnly && lang != sltype.GLSL {
			continue
		}
		fmt.Fprintf(&b, "#define %s (%s)\n", c.Name, c.Value)
	}
	return b.Bytes(), nil
}

// Struct renders the declaration of one laid out struct.
func Struct(p *alignsl.Plan, lang sltype.Lang) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "struct %s\n{\n", p.Struct.Name)
	for i := range p.Entries {
		e := &p.Entries[i]
		r := e.Host
		if lang == sltype.GLSL {
			r = e.GPU
		}
		fmt.Fprintf(&b, "%s%s;\n", tab, declare(lang, r, e.Name))
	}
	b.WriteString("};\n")
	return b.Bytes()
}

// HeaderC renders the host C header.
func (s *State) HeaderC() ([]byte, error) {
	var b bytes.Buffer
	b.WriteString(banner + "\n\n")
	b.WriteString("#pragma once\n")
	b.WriteString("#include <stdint.h>\n\n")
	cs, err := Consts(s.Model.Consts, sltype.C)
	if err != nil {
		return nil, err
	}
	b.Write(cs)
	for _, p := range s.Plans {
		if p.Struct.GPUOnly {
			continue
		}
		b.WriteString("\n")
		b.Write(Struct(p, sltype.C))
	}
	return b.Bytes(), nil
}

// HeaderGLSL renders the shading language header.
func (s *State) HeaderGLSL() ([]byte, error) {
	var b bytes.Buffer
	b.WriteString(banner + "\n\n")
	cs, err := Consts(s.Model.Consts, sltype.GLSL)
	if err != nil {
		return nil, err
	}
	b.Write(cs)
	for _, p := range s.Plans {
		b.WriteString("\n")
		b.Write(Struct(p, sltype.GLSL))
	}
	b.Write(s.Buffers())
	if s.GetSet {
		gs, err := s.Accessors()
		if err != nil {
			return nil, err
		}
		b.Write(gs)
	}
	b.Write(s.FramebufGLSL())
	return b.Bytes(), nil
}
