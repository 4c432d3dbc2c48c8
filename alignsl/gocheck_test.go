// Copyright (c) 2022, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alignsl

import (
	"testing"

	"cogentcore.org/core/base/errors"
	"github.com/iancoleman/strcase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"goki.dev/shgen/sldecl"
)

const goSrc = `package shcommon

const MAX_COUNT = 1 << 4

type Light struct {
	Radius   float32
	_        uint32
	_        uint32
	_        uint32
	Position [3]float32
	_        uint32
}

type Bad struct {
	A float64
	B [2]int8
}
`

func TestCheckGoSource(t *testing.T) {
	res, err := CheckGoSource("shcommon.go", []byte(goSrc))
	require.NoError(t, err)

	light := res["Light"]
	require.NotNil(t, light)
	assert.Equal(t, int64(32), light.Size)
	assert.Equal(t, int64(16), light.Offsets["Position"])
	assert.Empty(t, light.Problems)

	bad := res["Bad"]
	require.NotNil(t, bad)
	assert.Len(t, bad.Problems, 2)

	st := &sldecl.Struct{Name: "Light", Layout: sldecl.Std430, Fields: []sldecl.Field{
		{Type: float, Name: "radius", Count: 1},
		{Type: vec3, Name: "position", Count: 1},
	}}
	p, err := Compute(st)
	require.NoError(t, err)
	assert.NoError(t, Verify(p, light, strcase.ToCamel))

	st.Fields = append(st.Fields, st.Fields[0])
	st.Fields[2].Name = "extra"
	p, err = Compute(st)
	require.NoError(t, err)
	err = Verify(p, light, strcase.ToCamel)
	assert.True(t, errors.Is(err, ErrLayout))
}

func TestCheckGoSourceSyntax(t *testing.T) {
	_, err := CheckGoSource("x.go", []byte("package x\ntype T struct {"))
	assert.Error(t, err)
}
