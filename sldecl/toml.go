// Copyright (c) 2022, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sldecl

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"goki.dev/shgen/sltype"
)

// Enum valued keys are decoded as strings and set with SetString, so
// that unknown names are model errors.

type tomlField struct {
	Kind      string `toml:"kind"`
	Dim       int    `toml:"dim"`
	Name      string `toml:"name"`
	Count     *int   `toml:"count"`
	CountExpr string `toml:"count_expr"`
}

type tomlStruct struct {
	Name    string      `toml:"name"`
	Layout  string      `toml:"layout"`
	Break   string      `toml:"break"`
	GPUOnly bool        `toml:"gpu_only"`
	Fields  []tomlField `toml:"fields"`
}

type tomlConst struct {
	Name    string `toml:"name"`
	Value   string `toml:"value"`
	Derive  string `toml:"derive"`
	Pending bool   `toml:"pending"`
	GPUOnly bool   `toml:"gpu_only"`
}

type tomlBuffer struct {
	Struct        string `toml:"struct"`
	Block         string `toml:"block"`
	Instance      string `toml:"instance"`
	DescSet       string `toml:"desc_set"`
	Binding       string `toml:"binding"`
	Uniform       bool   `toml:"uniform"`
	Writable      bool   `toml:"writable"`
	WritableMacro string `toml:"writable_macro"`
	RuntimeArray  bool   `toml:"runtime_array"`
}

type tomlGetter struct {
	Struct         string `toml:"struct"`
	Instance       string `toml:"instance"`
	StrideInstance string `toml:"stride_instance"`
}

type tomlResource struct {
	Name     string `toml:"name"`
	Kind     string `toml:"kind"`
	Channels string `toml:"channels"`
	Flags    string `toml:"flags"`
}

type tomlCheck struct {
	Expr    string `toml:"expr"`
	Message string `toml:"message"`
}

type tomlModel struct {
	Consts          []tomlConst    `toml:"consts"`
	Structs         []tomlStruct   `toml:"structs"`
	Buffers         []tomlBuffer   `toml:"buffers"`
	Getters         []tomlGetter   `toml:"getters"`
	Framebuffers    []tomlResource `toml:"framebuffers"`
	Checks          []tomlCheck    `toml:"checks"`
	FramebufDescSet string         `toml:"framebuf_desc_set"`
}

// LoadTOML reads a model from a TOML file. The model is not resolved.
func LoadTOML(filename string) (*Model, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	m, err := ParseTOML(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return m, nil
}

// ParseTOML decodes a model from TOML text. A missing dim means a
// scalar, and a missing count means 1 unless count_expr is given.
// An explicit count is kept as written, so count = 0 fails validation.
func ParseTOML(data []byte) (*Model, error) {
	var tm tomlModel
	if err := toml.Unmarshal(data, &tm); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrModel, err)
	}
	m := &Model{FramebufDescSet: tm.FramebufDescSet}
	for _, c := range tm.Consts {
		m.Consts = append(m.Consts, Const(c))
	}
	for _, ts := range tm.Structs {
		st, err := ts.toStruct()
		if err != nil {
			return nil, err
		}
		m.Structs = append(m.Structs, st)
	}
	for _, b := range tm.Buffers {
		m.Buffers = append(m.Buffers, Buffer(b))
	}
	for _, g := range tm.Getters {
		m.Getters = append(m.Getters, Getter(g))
	}
	for _, tr := range tm.Framebuffers {
		r, err := tr.toResource()
		if err != nil {
			return nil, err
		}
		m.Framebuffers = append(m.Framebuffers, r)
	}
	for _, c := range tm.Checks {
		m.Checks = append(m.Checks, Check(c))
	}
	return m, nil
}

func (ts *tomlStruct) toStruct() (*Struct, error) {
	st := &Struct{Name: ts.Name, GPUOnly: ts.GPUOnly}
	if ts.Layout != "" {
		if err := st.Layout.SetString(ts.Layout); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrModel, ts.Name, err)
		}
	}
	if ts.Break != "" {
		if err := st.Break.SetString(ts.Break); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrModel, ts.Name, err)
		}
	}
	for _, tf := range ts.Fields {
		kind, err := sltype.ParseKind(tf.Kind)
		if err != nil {
			return nil, fmt.Errorf("%w: %s.%s: %w", ErrModel, ts.Name, tf.Name, err)
		}
		if tf.Dim == 0 {
			tf.Dim = 1
		}
		typ, err := sltype.FromDim(kind, tf.Dim)
		if err != nil {
			return nil, fmt.Errorf("%w: %s.%s: %w", ErrModel, ts.Name, tf.Name, err)
		}
		f := Field{Type: typ, Name: tf.Name, CountExpr: tf.CountExpr}
		switch {
		case tf.Count != nil:
			f.Count = *tf.Count
		case tf.CountExpr == "":
			f.Count = 1
		}
		st.Fields = append(st.Fields, f)
	}
	return st, nil
}

func (tr *tomlResource) toResource() (Resource, error) {
	r := Resource{Name: tr.Name}
	var err error
	if r.Kind, err = sltype.ParseKind(tr.Kind); err != nil {
		return r, fmt.Errorf("%w: framebuffer %s: %w", ErrModel, tr.Name, err)
	}
	if err := r.Channels.SetString(strings.ToLower(tr.Channels)); err != nil {
		return r, fmt.Errorf("%w: framebuffer %s: %w", ErrModel, tr.Name, err)
	}
	flags := strings.ReplaceAll(tr.Flags, " ", "")
	if err := r.Flags.SetString(flags); err != nil {
		return r, fmt.Errorf("%w: framebuffer %s: %w", ErrModel, tr.Name, err)
	}
	return r, nil
}
