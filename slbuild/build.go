// Copyright (c) 2022, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package slbuild incrementally compiles a folder of shaders. A shader
// is compiled when it, or any file it transitively includes, changed
// since the last clean build recorded in the build cache.
package slbuild

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/muesli/termenv"
	"goki.dev/shgen/slcache"
	"goki.dev/shgen/slgen"
)

// Summary counts the shaders compiled by one run.
type Summary struct {
	Built  int
	Failed int
}

// Line returns the one line status printed at the end of a run.
func (s *Summary) Line() string {
	switch {
	case s.Failed == 1:
		return "> 1 shader build failed."
	case s.Failed > 1:
		return fmt.Sprintf("> %d shader builds failed.", s.Failed)
	case s.Built == 0:
		return "> Everything is up-to-date."
	}
	return "> Done."
}

// Builder runs builds for one Config.
type Builder struct {
	Config   *Config
	Compiler Compiler

	// Out receives the progress lines, diagnostics and summary.
	Out io.Writer

	term *termenv.Output
}

// NewBuilder returns a Builder that compiles with glslc and prints to
// standard output.
func NewBuilder(c *Config) *Builder {
	return &Builder{
		Config:   c,
		Compiler: &GLSLC{Path: c.Compiler, TargetEnv: c.TargetEnv},
		Out:      os.Stdout,
	}
}

// Build is the command of the build driver. Compiler diagnostics are
// reported and counted but are not errors.
func Build(c *Config) error {
	b := NewBuilder(c)
	if c.Watch {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return b.Watch(ctx)
	}
	_, err := b.Run()
	return err
}

func (b *Builder) printf(format string, args ...any) {
	fmt.Fprintf(b.Out, format, args...)
}

// colored prints s in the given ANSI color when PSOut is set.
func (b *Builder) colored(s string, c termenv.ANSIColor) {
	if !b.Config.PSOut {
		fmt.Fprintln(b.Out, s)
		return
	}
	if b.term == nil {
		b.term = termenv.NewOutput(b.Out)
	}
	fmt.Fprintln(b.Out, b.term.String(s).Foreground(c).String())
}

// IncludeDirs returns the include folders with all their subfolders,
// except for the ignored ones and the cache folder.
func (b *Builder) IncludeDirs() []string {
	c := b.Config
	ignore := map[string]bool{slcache.Path(c.path(c.CacheDir)): true}
	for _, d := range orDefault(c.IgnoreDirs, DefaultIgnoreDirs) {
		ignore[slcache.Path(c.path(d))] = true
	}
	var dirs []string
	seen := map[string]bool{}
	for _, root := range orDefault(c.IncludeDirs, DefaultIncludeDirs) {
		root = c.path(root)
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() {
				return nil
			}
			p := slcache.Path(path)
			if ignore[p] {
				return filepath.SkipDir
			}
			if !seen[p] {
				seen[p] = true
				dirs = append(dirs, p)
			}
			return nil
		})
		if err != nil {
			slog.Debug("include folder not searched", "dir", root, "err", err)
		}
	}
	return dirs
}

// Run performs one incremental build and prints its summary line.
// Errors are returned only for failures that stop the whole build.
func (b *Builder) Run() (*Summary, error) {
	c := b.Config
	if c.GenComm {
		gc := &slgen.Config{Output: c.path(c.GenDir), Model: c.GenModel, GoPackage: "shcommon"}
		if err := slgen.Generate(gc); err != nil {
			return nil, fmt.Errorf("generating shader common headers: %w", err)
		}
	}

	dirs := b.IncludeDirs()

	if err := os.MkdirAll(c.path(c.CacheDir), 0755); err != nil {
		b.printf("> Couldn't create cache folder\n")
		return nil, err
	}
	outDir := c.path(c.OutDir)
	if err := os.MkdirAll(outDir, 0755); err != nil {
		b.printf("> Couldn't create output folder\n")
		return nil, err
	}

	cache := slcache.New()
	if !c.Rebuild {
		cache = slcache.Load(c.CachePath(), slcache.Exists)
	}

	modified := b.refreshDependencies(cache, dirs)

	sum := &Summary{}
	ents, err := os.ReadDir(c.Dir)
	if err != nil {
		return nil, err
	}
	for _, e := range ents {
		if e.IsDir() || !c.IsShader(e.Name()) {
			continue
		}
		fn := slcache.Path(filepath.Join(c.Dir, e.Name()))
		if strings.Contains(fn, " ") {
			b.printf("> File %q has spaces in its name. Skipping.\n", fn)
			continue
		}
		_, mtime, err := cache.Refresh(fn, dirs, false)
		if err != nil {
			slog.Warn("cannot read shader", "file", fn, "err", err)
			continue
		}
		st := cache.State(fn, mtime, modified)
		slog.Debug("shader", "file", fn, "state", st)
		if st == slcache.Fresh {
			continue
		}
		b.compile(cache, fn, mtime, filepath.Join(outDir, e.Name()+".spv"), dirs, sum)
	}

	serr := cache.Save(c.CachePath())
	if sum.Failed > 0 {
		b.colored(sum.Line(), termenv.ANSIRed)
	} else {
		b.colored(sum.Line(), termenv.ANSIGreen)
	}
	if serr != nil {
		return sum, fmt.Errorf("saving build cache: %w", serr)
	}
	return sum, nil
}

// refreshDependencies records the include files of every include
// folder and returns the ones that are new or changed.
func (b *Builder) refreshDependencies(cache *slcache.Cache, dirs []string) map[string]bool {
	c := b.Config
	modified := map[string]bool{}
	for _, dir := range dirs {
		slog.Debug("checking dependency files", "dir", dir)
		ents, err := os.ReadDir(dir)
		if err != nil {
			slog.Warn("cannot list include folder", "dir", dir, "err", err)
			continue
		}
		for _, e := range ents {
			if e.IsDir() || !c.IsDependency(e.Name()) {
				continue
			}
			fn := slcache.Path(filepath.Join(dir, e.Name()))
			if strings.Contains(fn, " ") {
				b.printf("> File %q has spaces in its path. Skipping.\n", fn)
				continue
			}
			changed, _, err := cache.Refresh(fn, dirs, true)
			if err != nil {
				slog.Warn("cannot read dependency", "file", fn, "err", err)
				continue
			}
			if changed {
				modified[fn] = true
			}
		}
	}
	return modified
}

// compile builds one shader. Clean builds record the shader time;
// failed builds evict it so that it is retried by every run.
func (b *Builder) compile(cache *slcache.Cache, fn string, mtime int64, out string, dirs []string, sum *Summary) {
	b.printf("> Building %s\n", filepath.Base(fn))
	sum.Built++
	diag, err := b.Compiler.Compile(fn, out, dirs)
	if err != nil && len(diag) == 0 {
		diag = []byte(err.Error())
	}
	if len(diag) == 0 {
		cache.Times[fn] = mtime
		return
	}
	if err != nil {
		slog.Debug("compiler failed", "file", fn, "err", err)
	}
	b.colored(strings.TrimRight(string(diag), "\n"), termenv.ANSIRed)
	sum.Failed++
	cache.Evict(fn)
}
