// Copyright (c) 2022, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sldecl

import (
	"testing"

	"cogentcore.org/core/base/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"goki.dev/shgen/sltype"
)

func TestIntValue(t *testing.T) {
	tests := map[string]int64{
		"0":         0,
		"42":        42,
		"0x10":      16,
		"1 << 22":   1 << 22,
		"(1 << 4)":  16,
		"3 * 4 + 1": 13,
	}
	for in, want := range tests {
		got, err := IntValue(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := IntValue("1.5")
	assert.Error(t, err)
	_, err = IntValue("FOO")
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	ct := ConstTable{
		{Name: "MAX_VERTEX_COUNT", Value: "1 << 21"},
		{Name: "MAX_INDEX_COUNT", Pending: true, Derive: "MAX_TRIANGLE_COUNT * 3"},
		{Name: "MAX_TRIANGLE_COUNT", Pending: true, Derive: "MAX_VERTEX_COUNT / 3"},
		{Name: "LIGHT_GRID_CELLS", Pending: true},
	}
	derivers := map[string]DeriveFunc{
		"LIGHT_GRID_CELLS": func(env map[string]int64) (int64, error) {
			return 16 * 16 * 8, nil
		},
	}
	require.NoError(t, ct.Resolve(derivers))
	assert.Empty(t, ct.Pending())

	c, ok := ct.Lookup("MAX_TRIANGLE_COUNT")
	require.True(t, ok)
	assert.Equal(t, "699050", c.Value)
	c, _ = ct.Lookup("MAX_INDEX_COUNT")
	assert.Equal(t, "2097150", c.Value)
	c, _ = ct.Lookup("LIGHT_GRID_CELLS")
	assert.Equal(t, "2048", c.Value)
}

func TestResolveShift(t *testing.T) {
	ct := ConstTable{
		{Name: "N", Value: "4"},
		{Name: "M", Pending: true, Derive: "1 << N"},
		{Name: "BIG", Value: "1 << 60"},
		{Name: "Q", Pending: true, Derive: "(BIG + 1) / 3"},
		{Name: "NEG", Pending: true, Derive: "-7 / 2"},
	}
	require.NoError(t, ct.Resolve(nil))
	c, _ := ct.Lookup("M")
	assert.Equal(t, "16", c.Value)
	c, _ = ct.Lookup("Q")
	assert.Equal(t, "384307168202282325", c.Value)
	c, _ = ct.Lookup("NEG")
	assert.Equal(t, "-3", c.Value)
}

func TestEval(t *testing.T) {
	env := map[string]int64{"A": 10, "B": 3}
	v, err := Eval("A / B", env)
	require.NoError(t, err)
	assert.Equal(t, int64(3), v)
	v, err = Eval("A << B | 1", env)
	require.NoError(t, err)
	assert.Equal(t, int64(81), v)
	_, err = Eval("A / 0", env)
	assert.Error(t, err)
	_, err = Eval("C + 1", env)
	assert.Error(t, err)
	_, err = Eval("1 << 63", nil)
	assert.Error(t, err)
}

func TestChecks(t *testing.T) {
	m := testModel()
	m.Checks = []Check{
		{Expr: "MAX_COUNT >= 1024 && BINDING_VERTICES == BINDING_UNIFORM"},
		{Expr: "MAX_COUNT % 3 == 0", Message: "MAX_COUNT must split into triangles"},
		{Expr: "MISSING > 0"},
	}
	err := m.Resolve(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrModel))
	msg := err.Error()
	assert.NotContains(t, msg, "BINDING_VERTICES")
	assert.Contains(t, msg, "MAX_COUNT must split into triangles")
	assert.Contains(t, msg, "MISSING")

	m = testModel()
	m.Checks = []Check{{Expr: "MAX_COUNT > 512 and BINDING_UNIFORM == 0"}}
	assert.NoError(t, m.Resolve(nil))
}

func TestResolveUnresolved(t *testing.T) {
	ct := ConstTable{
		{Name: "A", Value: "1"},
		{Name: "B", Pending: true},
		{Name: "C", Pending: true, Derive: "B + A"},
	}
	err := ct.Resolve(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnresolved))
	assert.Contains(t, err.Error(), "B")
	assert.Contains(t, err.Error(), "C")

	// nothing silently defaulted
	c, _ := ct.Lookup("C")
	assert.True(t, c.Pending)
	assert.Empty(t, c.Value)
}

func testModel() *Model {
	vec3, _ := sltype.FromDim(sltype.Float32, 3)
	return &Model{
		Consts: ConstTable{
			{Name: "MAX_COUNT", Value: "1 << 10"},
			{Name: "BINDING_VERTICES", Value: "0"},
			{Name: "BINDING_UNIFORM", Value: "0"},
		},
		Structs: []*Struct{
			{Name: "Vertices", Layout: Std430, Break: AlwaysFlatten, Fields: []Field{
				{Type: vec3, Name: "positions", CountExpr: "MAX_COUNT / 2"},
			}},
			{Name: "Uniform", Layout: Std430, Fields: []Field{
				{Type: sltype.Scalar{Kind: sltype.Uint32}, Name: "positionsStride", Count: 1},
			}},
		},
		Buffers: []Buffer{
			{Struct: "Vertices", Block: "Vertices_BT", Instance: "vertices", DescSet: "DESC_SET_VERTEX_DATA", Binding: "BINDING_VERTICES"},
			{Struct: "Uniform", Block: "Uniform_BT", Instance: "uniform", DescSet: "DESC_SET_UNIFORM", Binding: "BINDING_UNIFORM", Uniform: true},
		},
		Getters: []Getter{{Struct: "Vertices", Instance: "vertices", StrideInstance: "uniform"}},
	}
}

func TestModelResolve(t *testing.T) {
	m := testModel()
	require.NoError(t, m.Resolve(nil))
	assert.Equal(t, 512, m.StructByName("Vertices").Fields[0].Count)
}

func TestValidate(t *testing.T) {
	m := testModel()
	m.Structs[0].Fields[0].CountExpr = ""
	m.Structs[0].Fields[0].Count = 0
	m.Structs = append(m.Structs, &Struct{Name: "Bad", Fields: []Field{
		{Type: sltype.Scalar{Kind: sltype.Float16}, Name: "h", Count: 1},
		{Type: sltype.Matrix{Kind: sltype.Float32, Rows: 3, Cols: 3}, Name: "m", Count: 2},
	}})
	m.Getters[0].StrideInstance = "nope"
	err := m.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrModel))
	msg := err.Error()
	assert.Contains(t, msg, "positions: count 0 < 1")
	assert.Contains(t, msg, "kind float16 cannot be used")
	assert.Contains(t, msg, "repeated matrix requires the always-flatten policy")
	assert.Contains(t, msg, "unknown stride instance nope")
}

func TestValidateGetterStride(t *testing.T) {
	m := testModel()
	m.Structs[1].Fields[0].Name = "normalsStride"
	require.NoError(t, m.Consts.Resolve(nil))
	m.Structs[0].Fields[0].Count = 10
	err := m.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Uniform has no field positionsStride")
}

const testTOML = `
framebuf_desc_set = "DESC_SET_FRAMEBUFFERS"

[[consts]]
name = "MAX_COUNT"
value = "1 << 4"

[[consts]]
name = "HALF_COUNT"
pending = true
derive = "MAX_COUNT / 2"

[[structs]]
name = "Thing"
layout = "std430"
break = "always-flatten"
fields = [
	{ kind = "float", dim = 3, name = "pos", count_expr = "HALF_COUNT" },
	{ kind = "uint", name = "flags" },
	{ kind = "float", dim = 44, name = "model" },
]

[[framebuffers]]
name = "Albedo"
kind = "float16"
channels = "rgba"
flags = "StorePrev | BilinearSampler"

[[checks]]
expr = "HALF_COUNT * 2 == MAX_COUNT"
`

func TestParseTOML(t *testing.T) {
	m, err := ParseTOML([]byte(testTOML))
	require.NoError(t, err)
	require.NoError(t, m.Resolve(nil))

	st := m.StructByName("Thing")
	require.NotNil(t, st)
	assert.Equal(t, Std430, st.Layout)
	assert.Equal(t, AlwaysFlatten, st.Break)
	require.Len(t, st.Fields, 3)
	assert.Equal(t, sltype.Vector{Kind: sltype.Float32, N: 3}, st.Fields[0].Type)
	assert.Equal(t, 8, st.Fields[0].Count)
	assert.Equal(t, sltype.Scalar{Kind: sltype.Uint32}, st.Fields[1].Type)
	assert.Equal(t, 1, st.Fields[1].Count)
	assert.Equal(t, sltype.Matrix{Kind: sltype.Float32, Rows: 4, Cols: 4}, st.Fields[2].Type)

	require.Len(t, m.Framebuffers, 1)
	fb := m.Framebuffers[0]
	assert.Equal(t, sltype.Float16, fb.Kind)
	assert.Equal(t, RGBA, fb.Channels)
	assert.True(t, fb.Flags.HasFlag(StorePrev))
	assert.True(t, fb.Flags.HasFlag(BilinearSampler))
	assert.False(t, fb.Flags.HasFlag(NoSampler))
	assert.Equal(t, Flags(StorePrev, BilinearSampler), fb.Flags)
	assert.Equal(t, "StorePrev|BilinearSampler", fb.Flags.String())

	require.Len(t, m.Checks, 1)
}

func TestParseTOMLErrors(t *testing.T) {
	tests := map[string]string{
		"layout":   "[[structs]]\nname = \"X\"\nlayout = \"std999\"\n",
		"break":    "[[structs]]\nname = \"X\"\nbreak = \"flatten\"\n",
		"dim":      "[[structs]]\nname = \"X\"\nfields = [{ kind = \"float\", dim = 5, name = \"v\" }]\n",
		"kind":     "[[structs]]\nname = \"X\"\nfields = [{ kind = \"double\", name = \"v\" }]\n",
		"channels": "[[framebuffers]]\nname = \"A\"\nkind = \"float16\"\nchannels = \"rgbx\"\n",
		"flags":    "[[framebuffers]]\nname = \"A\"\nkind = \"float16\"\nchannels = \"r\"\nflags = \"StorePrev|Bogus\"\n",
	}
	for name, src := range tests {
		_, err := ParseTOML([]byte(src))
		assert.True(t, errors.Is(err, ErrModel), name)
	}
}

func TestParseTOMLCount(t *testing.T) {
	m, err := ParseTOML([]byte("[[structs]]\nname = \"X\"\nfields = [{ kind = \"float\", name = \"a\", count = 0 }]\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, m.Structs[0].Fields[0].Count)
	err = m.Resolve(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrModel))
	assert.Contains(t, err.Error(), "a: count 0 < 1")

	m, err = ParseTOML([]byte("[[structs]]\nname = \"X\"\nfields = [{ kind = \"float\", name = \"a\" }]\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, m.Structs[0].Fields[0].Count)
	require.NoError(t, m.Resolve(nil))
}

func TestEnumText(t *testing.T) {
	var l Layout
	require.NoError(t, l.SetString("std140"))
	assert.Equal(t, Std140, l)
	assert.Equal(t, "none", LayoutNone.String())
	assert.Equal(t, "always-flatten", AlwaysFlatten.String())
	assert.Error(t, l.SetString("std999"))

	var c Channels
	require.NoError(t, c.SetString("rgb"))
	assert.Equal(t, RGB, c)
	assert.Len(t, ChannelsValues(), 4)

	fl := Flags(NoSampler, UsageTransfer)
	assert.Equal(t, "NoSampler|UsageTransfer", fl.String())
	b, err := fl.MarshalText()
	require.NoError(t, err)
	var back ResourceFlags
	require.NoError(t, back.SetString(string(b)))
	assert.Equal(t, fl, back)
	assert.Equal(t, int64(1<<1|1<<8), back.Int64())
}
