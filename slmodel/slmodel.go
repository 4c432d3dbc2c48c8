// Copyright (c) 2022, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package slmodel provides the built-in shader-common model of the
// path tracer: its constants, shared structs, buffer blocks and
// framebuffers.
package slmodel

import (
	"goki.dev/shgen/sldecl"
	"goki.dev/shgen/sltype"
)

// Default returns a fresh, unresolved copy of the built-in model.
// Call Resolve on it before generating.
func Default() *sldecl.Model {
	return &sldecl.Model{
		Consts:          Consts(),
		Structs:         Structs(),
		Buffers:         Buffers(),
		Getters:         Getters(),
		Framebuffers:    Framebuffers(),
		FramebufDescSet: "DESC_SET_FRAMEBUFFERS",
		Checks:          Checks(),
	}
}

// Checks returns the relations the constant table must satisfy.
func Checks() []sldecl.Check {
	return []sldecl.Check{
		{Expr: "MAX_STATIC_TRIANGLE_COUNT * 3 <= MAX_STATIC_VERTEX_COUNT",
			Message: "static triangles exceed the vertex buffer"},
		{Expr: "MAX_DYNAMIC_TRIANGLE_COUNT * 3 <= MAX_DYNAMIC_VERTEX_COUNT",
			Message: "dynamic triangles exceed the vertex buffer"},
		{Expr: "FRAMEBUFFERS_HISTORY_LENGTH == 2",
			Message: "framebuffer bindings swap between exactly two frames"},
	}
}

// Consts returns the constant table.
func Consts() sldecl.ConstTable {
	return sldecl.ConstTable{
		{Name: "MAX_STATIC_VERTEX_COUNT", Value: "1 << 22"},
		{Name: "MAX_DYNAMIC_VERTEX_COUNT", Value: "1 << 21"},
		{Name: "MAX_STATIC_TRIANGLE_COUNT", Pending: true, Derive: "MAX_STATIC_VERTEX_COUNT / 3"},
		{Name: "MAX_DYNAMIC_TRIANGLE_COUNT", Pending: true, Derive: "MAX_DYNAMIC_VERTEX_COUNT / 3"},
		{Name: "MAX_VERTEX_COLLECTOR_INDEX_COUNT", Value: "1 << 22"},
		{Name: "MAX_VERTEX_COLLECTOR_TRANSFORMS_COUNT", Value: "1 << 18"},
		{Name: "MAX_VERTEX_COLLECTOR_GEOM_INFOS_COUNT", Value: "1 << 18"},
		{Name: "MAX_TOP_LEVEL_INSTANCE_COUNT", Value: "1 << 12"},
		{Name: "FRAMEBUFFERS_HISTORY_LENGTH", Value: "2"},
		{Name: "BINDING_VERTEX_BUFFER_STATIC", Value: "0"},
		{Name: "BINDING_VERTEX_BUFFER_DYNAMIC", Value: "1"},
		{Name: "BINDING_INDEX_BUFFER_STATIC", Value: "2"},
		{Name: "BINDING_INDEX_BUFFER_DYNAMIC", Value: "3"},
		{Name: "BINDING_GEOMETRY_INSTANCES_STATIC", Value: "4"},
		{Name: "BINDING_GEOMETRY_INSTANCES_DYNAMIC", Value: "5"},
		{Name: "BINDING_GLOBAL_UNIFORM", Value: "0"},
		{Name: "BINDING_ACCELERATION_STRUCTURE", Value: "0"},
		{Name: "BINDING_STORAGE_IMAGE", Value: "0"},
		{Name: "BINDING_TEXTURES", Value: "0"},
		{Name: "INSTANCE_CUSTOM_INDEX_FLAG_DYNAMIC", Value: "1 << 0"},
		{Name: "INSTANCE_MASK_ALL", Value: "0xFF"},
		{Name: "UINT32_MAX", Value: "0xFFFFFFFF", GPUOnly: true},
	}
}

func scalar(k sltype.Kind) sltype.Type { return sltype.Scalar{Kind: k} }

func vec(k sltype.Kind, n int) sltype.Type { return sltype.Vector{Kind: k, N: n} }

func mat(rows, cols int) sltype.Type {
	return sltype.Matrix{Kind: sltype.Float32, Rows: rows, Cols: cols}
}

func vertexBuffer(name, maxCount string) *sldecl.Struct {
	return &sldecl.Struct{
		Name:   name,
		Layout: sldecl.Std430,
		Break:  sldecl.AlwaysFlatten,
		Fields: []sldecl.Field{
			{Type: vec(sltype.Float32, 3), Name: "positions", CountExpr: maxCount},
			{Type: vec(sltype.Float32, 3), Name: "normals", CountExpr: maxCount},
			{Type: vec(sltype.Float32, 2), Name: "texCoords", CountExpr: maxCount},
			{Type: scalar(sltype.Uint32), Name: "colors", CountExpr: maxCount},
			{Type: scalar(sltype.Uint32), Name: "materialIds", CountExpr: maxCount + " / 3"},
		},
	}
}

// Structs returns the shared struct declarations.
func Structs() []*sldecl.Struct {
	return []*sldecl.Struct{
		vertexBuffer("ShVertexBufferStatic", "MAX_STATIC_VERTEX_COUNT"),
		vertexBuffer("ShVertexBufferDynamic", "MAX_DYNAMIC_VERTEX_COUNT"),
		{
			Name:    "ShTriangle",
			Layout:  sldecl.Std430,
			GPUOnly: true,
			Fields: []sldecl.Field{
				{Type: mat(3, 3), Name: "positions", Count: 1},
				{Type: mat(3, 3), Name: "normals", Count: 1},
				{Type: mat(3, 2), Name: "textureCoords", Count: 1},
				{Type: vec(sltype.Float32, 3), Name: "tangent", Count: 1},
				{Type: vec(sltype.Uint32, 3), Name: "materialIds", Count: 1},
			},
		},
		{
			Name:   "ShGlobalUniform",
			Layout: sldecl.Std140,
			Fields: []sldecl.Field{
				{Type: mat(4, 4), Name: "view", Count: 1},
				{Type: mat(4, 4), Name: "invView", Count: 1},
				{Type: mat(4, 4), Name: "viewPrev", Count: 1},
				{Type: mat(4, 4), Name: "projection", Count: 1},
				{Type: mat(4, 4), Name: "invProjection", Count: 1},
				{Type: mat(4, 4), Name: "projectionPrev", Count: 1},
				{Type: scalar(sltype.Uint32), Name: "positionsStride", Count: 1},
				{Type: scalar(sltype.Uint32), Name: "normalsStride", Count: 1},
				{Type: scalar(sltype.Uint32), Name: "texCoordsStride", Count: 1},
				{Type: scalar(sltype.Uint32), Name: "colorsStride", Count: 1},
			},
		},
		{
			Name:   "ShGeometryInstance",
			Layout: sldecl.Std430,
			Fields: []sldecl.Field{
				{Type: mat(4, 4), Name: "model", Count: 1},
				{Type: vec(sltype.Uint32, 4), Name: "materials", Count: 3},
				{Type: scalar(sltype.Uint32), Name: "baseVertexIndex", Count: 1},
				{Type: scalar(sltype.Uint32), Name: "baseIndexIndex", Count: 1},
				{Type: scalar(sltype.Uint32), Name: "primitiveCount", Count: 1},
			},
		},
	}
}

// Buffers returns the GLSL buffer block declarations.
func Buffers() []sldecl.Buffer {
	const vertexData = "DESC_SET_VERTEX_DATA"
	const writable = "VERTEX_BUFFER_WRITEABLE"
	return []sldecl.Buffer{
		{Struct: "ShGlobalUniform", Block: "GlobalUniform_BT", Instance: "globalUniform",
			DescSet: "DESC_SET_GLOBAL_UNIFORM", Binding: "BINDING_GLOBAL_UNIFORM", Uniform: true},
		{Struct: "ShVertexBufferStatic", Block: "VertexBufferStatic_BT", Instance: "staticVertices",
			DescSet: vertexData, Binding: "BINDING_VERTEX_BUFFER_STATIC", WritableMacro: writable},
		{Struct: "ShVertexBufferDynamic", Block: "VertexBufferDynamic_BT", Instance: "dynamicVertices",
			DescSet: vertexData, Binding: "BINDING_VERTEX_BUFFER_DYNAMIC", WritableMacro: writable},
		{Struct: "uint", Block: "IndexBufferStatic_BT", Instance: "staticIndices",
			DescSet: vertexData, Binding: "BINDING_INDEX_BUFFER_STATIC", RuntimeArray: true},
		{Struct: "uint", Block: "IndexBufferDynamic_BT", Instance: "dynamicIndices",
			DescSet: vertexData, Binding: "BINDING_INDEX_BUFFER_DYNAMIC", RuntimeArray: true},
		{Struct: "ShGeometryInstance", Block: "GeometryInstancesStatic_BT", Instance: "geometryInstancesStatic",
			DescSet: vertexData, Binding: "BINDING_GEOMETRY_INSTANCES_STATIC", RuntimeArray: true},
		{Struct: "ShGeometryInstance", Block: "GeometryInstancesDynamic_BT", Instance: "geometryInstancesDynamic",
			DescSet: vertexData, Binding: "BINDING_GEOMETRY_INSTANCES_DYNAMIC", RuntimeArray: true},
	}
}

// Getters returns the variable-stride accessor requests.
func Getters() []sldecl.Getter {
	return []sldecl.Getter{
		{Struct: "ShVertexBufferStatic", Instance: "staticVertices", StrideInstance: "globalUniform"},
		{Struct: "ShVertexBufferDynamic", Instance: "dynamicVertices", StrideInstance: "globalUniform"},
	}
}

// Framebuffers returns the render targets in binding order.
func Framebuffers() []sldecl.Resource {
	const (
		f32  = sltype.Float32
		f16  = sltype.Float16
		u32  = sltype.Uint32
		u8   = sltype.Unorm8
		p111 = sltype.Packed111110
		sexp = sltype.PackedSharedExp
	)
	prev := sldecl.Flags(sldecl.StorePrev)
	prevNoSampler := sldecl.Flags(sldecl.StorePrev, sldecl.NoSampler)
	bloom := sldecl.Flags(sldecl.ForceSizeBloom, sldecl.BilinearSampler)
	upscaled := sldecl.Flags(sldecl.UpscaledSize, sldecl.IsAttachment, sldecl.UsageTransfer)
	return []sldecl.Resource{
		{Name: "Albedo", Kind: f16, Channels: sldecl.RGBA},
		{Name: "Normal", Kind: u32, Channels: sldecl.R, Flags: prev},
		{Name: "NormalGeometry", Kind: u32, Channels: sldecl.R, Flags: prev},
		{Name: "MetallicRoughness", Kind: u8, Channels: sldecl.RG, Flags: prev},
		{Name: "DepthWorld", Kind: f32, Channels: sldecl.R, Flags: prev},
		{Name: "DepthNdc", Kind: f32, Channels: sldecl.R},
		{Name: "DepthGrad", Kind: f16, Channels: sldecl.RG},
		{Name: "Motion", Kind: f16, Channels: sldecl.RGBA},
		{Name: "SurfacePosition", Kind: f32, Channels: sldecl.RGBA, Flags: prev},
		{Name: "ViewDirection", Kind: f16, Channels: sldecl.RGBA},
		{Name: "RandomSeed", Kind: u32, Channels: sldecl.R, Flags: prevNoSampler},
		{Name: "Throughput", Kind: f16, Channels: sldecl.RGBA},
		{Name: "ScreenEmission", Kind: p111, Channels: sldecl.RGB},
		{Name: "DiffAccumColor", Kind: p111, Channels: sldecl.RGB, Flags: prev},
		{Name: "DiffAccumMoments", Kind: f16, Channels: sldecl.RG, Flags: prev},
		{Name: "SpecAccumColor", Kind: sexp, Channels: sldecl.RGB, Flags: prevNoSampler},
		{Name: "AccumHistoryLength", Kind: f16, Channels: sldecl.RGBA, Flags: prev},
		{Name: "PreFinal", Kind: f16, Channels: sldecl.RGBA},
		{Name: "Final", Kind: f16, Channels: sldecl.RGBA, Flags: sldecl.Flags(sldecl.IsAttachment, sldecl.UsageTransfer)},
		{Name: "UpscaledPing", Kind: f16, Channels: sldecl.RGBA, Flags: upscaled},
		{Name: "UpscaledPong", Kind: f16, Channels: sldecl.RGBA, Flags: upscaled},
		{Name: "HistogramInput", Kind: f16, Channels: sldecl.RGBA, Flags: sldecl.Flags(sldecl.ForceSize13)},
		{Name: "BloomMip1", Kind: p111, Channels: sldecl.RGB, Flags: bloom},
		{Name: "BloomMip2", Kind: p111, Channels: sldecl.RGB, Flags: bloom},
		{Name: "BloomMip3", Kind: p111, Channels: sldecl.RGB, Flags: bloom},
		{Name: "Exposure", Kind: f32, Channels: sldecl.R, Flags: sldecl.Flags(sldecl.SinglePixelSize)},
		{Name: "WipeEffectSource", Kind: u8, Channels: sldecl.RGBA, Flags: sldecl.Flags(sldecl.UsageTransfer)},
	}
}
