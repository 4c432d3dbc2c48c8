// Copyright (c) 2022, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slbuild

import (
	"os/exec"
)

// Compiler compiles one shader. Any diagnostic output means the
// build failed, even when the returned error is nil.
type Compiler interface {
	Compile(src, out string, includeDirs []string) (diag []byte, err error)
}

// GLSLC runs the glslc command line compiler.
type GLSLC struct {
	Path      string
	TargetEnv string
}

// Args returns the compiler arguments for src.
func (g *GLSLC) Args(src, out string, includeDirs []string) []string {
	args := []string{"--target-env=" + g.TargetEnv}
	for _, d := range includeDirs {
		args = append(args, "-I", d)
	}
	return append(args, src, "-o", out)
}

// Compile runs glslc and returns its combined stdout and stderr.
func (g *GLSLC) Compile(src, out string, includeDirs []string) ([]byte, error) {
	cmd := exec.Command(g.Path, g.Args(src, out, includeDirs)...)
	return cmd.CombinedOutput()
}
