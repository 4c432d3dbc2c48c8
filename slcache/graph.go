// Copyright (c) 2022, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slcache

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/exp/slices"
)

//go:generate core generate

// State is the freshness of a tracked file.
type State int32 //enums:enum -transform lower

const (
	// Unknown files have no cache entry.
	Unknown State = iota

	// Fresh files match their cached time, and so do all the files
	// they transitively include.
	Fresh

	// Stale files changed, or include a file that changed or is unknown.
	Stale
)

// Path returns the absolute, slash separated form of fn used as a
// cache key.
func Path(fn string) string {
	if abs, err := filepath.Abs(fn); err == nil {
		fn = abs
	}
	return filepath.ToSlash(fn)
}

// ModTime returns the modification time of fn in Unix seconds.
func ModTime(fn string) (int64, error) {
	st, err := os.Stat(fn)
	if err != nil {
		return 0, err
	}
	return st.ModTime().Unix(), nil
}

// Exists reports whether fn can be stat'ed.
func Exists(fn string) bool {
	_, err := os.Stat(fn)
	return err == nil
}

// ScanIncludes returns the files that fn includes with #include "x",
// resolved against each of dirs. Every dir holding x contributes a
// dependency. Names not found in any dir and fn itself are skipped.
func ScanIncludes(fn string, dirs []string) ([]string, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	self := Path(fn)
	var deps []string
	sc := bufio.NewScanner(f)
	sc.Buffer(nil, 1<<20)
	for sc.Scan() {
		ln := sc.Text()
		if !strings.Contains(ln, "#include") {
			continue
		}
		parts := strings.Split(ln, "\"")
		if len(parts) < 3 {
			continue
		}
		for _, dir := range dirs {
			dep := Path(filepath.Join(dir, parts[1]))
			if dep == self || slices.Contains(deps, dep) || !Exists(dep) {
				continue
			}
			deps = append(deps, dep)
		}
	}
	return deps, sc.Err()
}

// Refresh records the current modification time of file and rescans
// its includes when they are unknown or the file changed. It reports
// whether the file is new or changed since the cached time. The time
// is recorded only when record is set; shaders are recorded after they
// compile cleanly.
func (c *Cache) Refresh(file string, dirs []string, record bool) (changed bool, mtime int64, err error) {
	mtime, err = ModTime(file)
	if err != nil {
		return false, 0, err
	}
	t, cached := c.Times[file]
	outdated := cached && t != mtime
	if _, has := c.Deps[file]; !has || outdated {
		deps, err := ScanIncludes(file, dirs)
		if err != nil {
			return false, 0, err
		}
		c.Deps[file] = deps
	}
	if record {
		c.Times[file] = mtime
	}
	return !cached || outdated, mtime, nil
}

// State returns the freshness of file given its current modification
// time, and the set of included files known to have changed in this
// run.
func (c *Cache) State(file string, mtime int64, modified map[string]bool) State {
	t, ok := c.Times[file]
	switch {
	case !ok:
		return Unknown
	case t != mtime:
		return Stale
	case c.includesChanged(file, modified, map[string]bool{}):
		return Stale
	}
	return Fresh
}

// includesChanged walks the include graph below file. The visited set
// bounds the walk on include cycles.
func (c *Cache) includesChanged(file string, modified, visited map[string]bool) bool {
	for _, d := range c.Deps[file] {
		if _, ok := c.Times[d]; !ok || modified[d] {
			return true
		}
		if visited[d] {
			continue
		}
		visited[d] = true
		if c.includesChanged(d, modified, visited) {
			return true
		}
	}
	return false
}
