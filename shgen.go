// Copyright (c) 2022, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"log/slog"
	"os"

	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/cli"
	"goki.dev/shgen/slgen"
)

func main() {
	opts := cli.DefaultOptions("shgen", "Shgen generates the C, GLSL and Go declarations shared by the renderer and its shaders.")
	opts.Fatal = true
	cli.Run(opts, &slgen.Config{}, generate)
}

func generate(c *slgen.Config) error {
	setLogLevel()
	return slgen.Generate(c)
}

// setLogLevel applies the level set by the -v and -q flags.
func setLogLevel() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logx.UserLevel})))
}
