// Copyright (c) 2022, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package sldecl holds the declarative model consumed by the shader-common
generator: struct field lists, constant tables, GPU buffer blocks,
variable-stride accessors and framebuffer resources.

The types here are plain data. Layout is computed by package alignsl,
binding numbers by package slbind, and text by package slgen, so every
stage can be tested against a Model directly.

A Model is normally taken from slmodel.Default, or loaded from a TOML
file with LoadTOML:

	[[consts]]
	name = "MAX_STATIC_VERTEX_COUNT"
	value = "1 << 22"

	[[structs]]
	name = "ShVertexBufferStatic"
	layout = "std430"
	break = "always-flatten"
	fields = [
		{ kind = "float", dim = 3, name = "positions", count_expr = "MAX_STATIC_VERTEX_COUNT" },
	]

	[[framebuffers]]
	name = "DepthWorld"
	kind = "float32"
	channels = "r"
	flags = "StorePrev|BilinearSampler"

	[[checks]]
	expr = "MAX_STATIC_VERTEX_COUNT % 64 == 0"
	message = "vertex count must be a multiple of the workgroup size"
*/
package sldecl
