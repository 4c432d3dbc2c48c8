// Copyright (c) 2022, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package slcache is the persistent state of the incremental shader
// build: the last seen modification time of every tracked file, and
// the files each tracked file directly includes.
//
// The cache file has two sections separated by a line holding only
// Separator:
//
//	/abs/path/a.comp 1700000000
//	/abs/path/b.h 1700000000
//	DEPENDENCY
//	/abs/path/a.comp /abs/path/b.h
//	/abs/path/b.h
package slcache

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"cogentcore.org/core/base/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Separator is the line between the time and the dependency sections.
const Separator = "DEPENDENCY"

// Cache maps tracked files to their modification time (Unix seconds)
// and direct includes. Paths are absolute with forward slashes.
type Cache struct {
	Times map[string]int64
	Deps  map[string][]string
}

// New returns an empty cache.
func New() *Cache {
	return &Cache{Times: map[string]int64{}, Deps: map[string][]string{}}
}

// Read parses a cache file. Dependencies for which exists returns
// false are dropped. A nil exists keeps all of them.
func Read(r io.Reader, exists func(string) bool) (*Cache, error) {
	c := New()
	deps := false
	sc := bufio.NewScanner(r)
	sc.Buffer(nil, 1<<20)
	ln := 0
	for sc.Scan() {
		ln++
		line := sc.Text()
		if strings.TrimSpace(line) == Separator {
			deps = true
			continue
		}
		words := strings.Fields(line)
		if len(words) == 0 {
			continue
		}
		if !deps {
			if len(words) < 2 {
				continue
			}
			t, err := strconv.ParseInt(words[1], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", ln, err)
			}
			c.Times[words[0]] = t
			continue
		}
		var ds []string
		for _, d := range words[1:] {
			if slices.Contains(ds, d) || (exists != nil && !exists(d)) {
				continue
			}
			ds = append(ds, d)
		}
		c.Deps[words[0]] = ds
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return c, nil
}

// Write writes c in the cache file format, sorted by path.
func (c *Cache) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	nms := maps.Keys(c.Times)
	slices.Sort(nms)
	for _, nm := range nms {
		fmt.Fprintf(bw, "%s %d\n", nm, c.Times[nm])
	}
	bw.WriteString(Separator + "\n")
	nms = maps.Keys(c.Deps)
	slices.Sort(nms)
	for _, nm := range nms {
		ds := slices.Clone(c.Deps[nm])
		slices.Sort(ds)
		bw.WriteString(nm)
		for _, d := range ds {
			bw.WriteString(" " + d)
		}
		bw.WriteString("\n")
	}
	return bw.Flush()
}

// Load reads the cache file at path. A missing or unreadable file
// gives an empty cache, which rebuilds everything.
func Load(path string, exists func(string) bool) *Cache {
	f, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			errors.Log(fmt.Errorf("cannot read build cache: %w", err))
		}
		return New()
	}
	defer f.Close()
	c, err := Read(f, exists)
	if err != nil {
		errors.Log(fmt.Errorf("discarding build cache %s: %w", path, err))
		return New()
	}
	return c
}

// Save replaces the cache file at path with c. The new content is
// written to a temporary file first, so an interrupted save leaves the
// previous cache in place.
func (c *Cache) Save(path string) error {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	f, err := os.CreateTemp(dir, base+".*.tmp")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if err := c.Write(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// Evict forgets the modification time of file, so that it is rebuilt
// by the next run. Its includes are kept.
func (c *Cache) Evict(file string) {
	delete(c.Times, file)
}
