// Copyright (c) 2022, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sltype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromDim(t *testing.T) {
	tests := []struct {
		dim  int
		want Type
	}{
		{1, Scalar{Float32}},
		{2, Vector{Float32, 2}},
		{4, Vector{Float32, 4}},
		{33, Matrix{Float32, 3, 3}},
		{34, Matrix{Float32, 3, 4}},
		{42, Matrix{Float32, 4, 2}},
	}
	for _, tt := range tests {
		got, err := FromDim(Float32, tt.dim)
		require.NoError(t, err, tt.dim)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, tt.dim, Dim(got))
	}
	for _, bad := range []int{0, 5, 12, 21, 25, 45, 51} {
		_, err := FromDim(Float32, bad)
		assert.Error(t, err, bad)
	}
}

func TestSizes(t *testing.T) {
	tests := []struct {
		t       Type
		natural int
		gpu     int
		align   int
	}{
		{Scalar{Float32}, 4, 4, 4},
		{Scalar{Uint32}, 4, 4, 4},
		{Vector{Float32, 2}, 8, 8, 8},
		{Vector{Float32, 3}, 12, 16, 16},
		{Vector{Int32, 4}, 16, 16, 16},
		{Matrix{Float32, 2, 2}, 16, 16, 8},
		{Matrix{Float32, 3, 3}, 36, 48, 16},
		{Matrix{Float32, 4, 4}, 64, 64, 16},
		{Matrix{Float32, 3, 4}, 48, 64, 16},
		{Matrix{Float32, 4, 3}, 48, 48, 16},
		{Matrix{Int32, 3, 3}, 36, 36, 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.natural, NaturalSize(tt.t), tt.t.String())
		assert.Equal(t, tt.gpu, GPUSize(tt.t), tt.t.String())
		assert.Equal(t, tt.align, GPUAlign(tt.t), tt.t.String())
		assert.GreaterOrEqual(t, GPUSize(tt.t), NaturalSize(tt.t))
		assert.Zero(t, (GPUSize(tt.t)-NaturalSize(tt.t))%ScalarSize)
	}
}

func TestNames(t *testing.T) {
	nm, ok := Name(GLSL, Vector{Float32, 3})
	assert.True(t, ok)
	assert.Equal(t, "vec3", nm)

	nm, ok = Name(GLSL, Vector{Uint32, 2})
	assert.True(t, ok)
	assert.Equal(t, "uvec2", nm)

	nm, ok = Name(GLSL, Matrix{Float32, 3, 4})
	assert.True(t, ok)
	assert.Equal(t, "mat4x3", nm)

	nm, ok = Name(GLSL, Matrix{Float32, 4, 4})
	assert.True(t, ok)
	assert.Equal(t, "mat4", nm)

	_, ok = Name(GLSL, Matrix{Int32, 3, 3})
	assert.False(t, ok)

	_, ok = Name(C, Vector{Float32, 3})
	assert.False(t, ok)

	nm, ok = Name(C, Scalar{Int32})
	assert.True(t, ok)
	assert.Equal(t, "int32_t", nm)

	nm, ok = Name(Go, Scalar{Uint32})
	assert.True(t, ok)
	assert.Equal(t, "uint32", nm)

	_, ok = Name(C, Scalar{Float16})
	assert.False(t, ok)
}

func TestKind(t *testing.T) {
	assert.True(t, Float32.StructCapable())
	assert.False(t, Unorm8.StructCapable())
	k, err := ParseKind("uint")
	require.NoError(t, err)
	assert.Equal(t, Uint32, k)
	k, err = ParseKind("packed111110")
	require.NoError(t, err)
	assert.Equal(t, Packed111110, k)
	_, err = ParseKind("double")
	assert.Error(t, err)

	var u Kind
	require.NoError(t, u.UnmarshalText([]byte("float16")))
	assert.Equal(t, Float16, u)
	assert.Equal(t, "packedsharedexp", PackedSharedExp.String())
	assert.True(t, PackedSharedExp.Valid())
	assert.False(t, KindN.Valid())
	assert.Len(t, KindValues(), int(KindN))

	assert.Equal(t, "GLSL", GLSL.String())
	var l Lang
	require.NoError(t, l.SetString("Go"))
	assert.Equal(t, Go, l)
}
