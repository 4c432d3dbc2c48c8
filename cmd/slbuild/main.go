// Copyright (c) 2022, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command slbuild compiles the shaders of a folder whose sources or
// included files changed since the last build.
package main

import (
	"log/slog"
	"os"

	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/cli"
	"goki.dev/shgen/slbuild"
)

func main() {
	opts := cli.DefaultOptions("slbuild", "Slbuild incrementally compiles shaders with glslc.")
	cli.Run(opts, &slbuild.Config{}, build)
}

func build(c *slbuild.Config) error {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logx.UserLevel})))
	return slbuild.Build(c)
}
