// Copyright (c) 2022, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slgen

// Output file names, relative to Config.Output.
const (
	FileC           = "ShaderCommonC.h"
	FileGLSL        = "ShaderCommonGLSL.h"
	FileFramebufH   = "ShaderCommonCFramebuf.h"
	FileFramebufCpp = "ShaderCommonCFramebuf.cpp"
)

// Config is the configuration of the generator.
type Config struct {

	// Output is the directory the generated files are written to.
	Output string `default:"Generated" flag:"o,out,output"`

	// GetSet emits variable-stride getter and setter functions for the
	// repeated vector members of flattened buffers.
	GetSet bool `flag:"getset"`

	// Model is a TOML model file to use instead of the built-in model.
	Model string `flag:"m,model"`

	// GoPackage is the package name of the generated Go file, which is
	// written as <GoPackage>.go.
	GoPackage string `default:"shcommon"`

	// NoGo skips the Go host file.
	NoGo bool `flag:"no-go"`
}

// GoFile returns the name of the generated Go file.
func (c *Config) GoFile() string {
	return c.GoPackage + ".go"
}
