// Copyright (c) 2022, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
shgen generates the declarations that a renderer and its shaders must
agree on byte for byte: constants, buffer structs and the framebuffer
binding tables. One declarative model drives every output, so the host
and shader sides cannot drift apart.

Usage:

	shgen [flags]

The flags are:

	-o, -out, -output dir
		Write the generated files into dir (default "Generated").
	-getset
		Emit GLSL getter and setter functions for the repeated vector
		members of flattened vertex buffers, whose stride is read from
		a uniform at run time.
	-m, -model file
		Use the TOML model in file instead of the built-in one.
	-go-package name
		Package name of the generated Go file (default "shcommon").
	-no-go
		Do not write the Go file.

The generated files are:

	ShaderCommonC.h            constants and host structs for C
	ShaderCommonGLSL.h         constants, structs, buffer blocks, accessors
	                           and framebuffer images for GLSL
	ShaderCommonCFramebuf.h    framebuffer slot enum and table declarations
	ShaderCommonCFramebuf.cpp  framebuffer format, flag and binding tables
	<go-package>.go            constants, host structs and binding tables for Go

Every struct is laid out with the std430 or std140 rules. Members that
GLSL would pad are given explicit __pad words on both sides, and host
structs are checked against the go/types layout of the generated Go
file before anything is written. Files whose content did not change
are not rewritten.

Nothing is written when the model is invalid, for example when a
derived constant cannot be resolved or a field has a zero count.

The companion command slbuild (in cmd/slbuild) compiles shaders that
include these headers incrementally, and can run shgen first with -g.
*/
package main
