// Copyright (c) 2022, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slbuild

import (
	"path/filepath"
	"strings"
)

// Defaults for the list options of Config.
var (
	DefaultIncludeDirs = []string{".", "../Generated"}
	DefaultIgnoreDirs  = []string{".vscode"}
	DefaultIgnoreFiles = []string{"BlueNoiseFileNames.h", "ShaderCommonC.h", "ShaderCommonCFramebuf.h"}
	DefaultExts        = []string{".comp", ".vert", ".frag", ".rgen", ".rahit", ".rchit", ".rmiss"}
	DefaultDepExts     = []string{".h", ".inl"}
)

// Config is the configuration of the shader build driver.
// Relative paths are relative to Dir.
type Config struct {

	// Dir is the shader folder; every shader directly in it is compiled.
	Dir string `default:"." posarg:"0" required:"-"`

	// IncludeDirs are searched, with all their subfolders, for included
	// files. Defaults to DefaultIncludeDirs.
	IncludeDirs []string `flag:"I,include"`

	// IgnoreDirs are include subfolders that are not searched, in
	// addition to CacheDir. Defaults to DefaultIgnoreDirs.
	IgnoreDirs []string

	// IgnoreFiles are include file names that are not tracked.
	// Defaults to DefaultIgnoreFiles.
	IgnoreFiles []string

	// Exts are the shader file extensions. Defaults to DefaultExts.
	Exts []string

	// DepExts are the include file extensions. Defaults to DefaultDepExts.
	DepExts []string

	// CacheDir holds the build cache file.
	CacheDir string `default:"Build"`

	CacheFile string `default:"GenerateShadersCache.txt"`

	// OutDir receives the compiled <shader>.spv files.
	OutDir string `default:"../../Build"`

	// Compiler is the glslc executable.
	Compiler string `default:"glslc"`

	// TargetEnv is passed to the compiler as --target-env.
	TargetEnv string `default:"vulkan1.2"`

	// GenDir is the output folder of the header generator run by GenComm.
	GenDir string `default:"../Generated"`

	// GenModel is a TOML model for the header generator; the built-in
	// model is used when empty.
	GenModel string

	// Rebuild ignores the cache and rebuilds every shader.
	Rebuild bool `flag:"r,rebuild"`

	// GenComm regenerates the shader common headers before building.
	GenComm bool `flag:"g,gencomm"`

	// PSOut prints diagnostics and the summary in color.
	PSOut bool `flag:"ps,psout"`

	// Watch keeps running and rebuilds whenever a tracked file changes.
	Watch bool `flag:"w,watch"`
}

func orDefault(v, def []string) []string {
	if len(v) == 0 {
		return def
	}
	return v
}

func (c *Config) path(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Dir, p)
}

// CachePath returns the path of the cache file.
func (c *Config) CachePath() string {
	return filepath.Join(c.path(c.CacheDir), c.CacheFile)
}

func hasExt(fn string, exts []string) bool {
	for _, ext := range exts {
		if strings.HasSuffix(fn, ext) {
			return true
		}
	}
	return false
}

// IsShader reports whether fn has a shader extension.
func (c *Config) IsShader(fn string) bool {
	return hasExt(fn, orDefault(c.Exts, DefaultExts))
}

// IsDependency reports whether fn is a tracked include file.
func (c *Config) IsDependency(fn string) bool {
	base := filepath.Base(fn)
	for _, ig := range orDefault(c.IgnoreFiles, DefaultIgnoreFiles) {
		if base == ig {
			return false
		}
	}
	return hasExt(fn, orDefault(c.DepExts, DefaultDepExts))
}
