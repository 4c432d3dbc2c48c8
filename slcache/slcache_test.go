// Copyright (c) 2022, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slcache

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	c := New()
	c.Times["/s/b.h"] = 20
	c.Times["/s/a.comp"] = 10
	c.Deps["/s/a.comp"] = []string{"/s/c.h", "/s/b.h"}
	c.Deps["/s/b.h"] = nil
	var b bytes.Buffer
	require.NoError(t, c.Write(&b))
	assert.Equal(t, `/s/a.comp 10
/s/b.h 20
DEPENDENCY
/s/a.comp /s/b.h /s/c.h
/s/b.h
`, b.String())
	assert.Equal(t, []string{"/s/c.h", "/s/b.h"}, c.Deps["/s/a.comp"], "Write must not reorder")
}

func TestRead(t *testing.T) {
	src := `/s/a.comp 10
/s/b.h 20
/s/short
DEPENDENCY
/s/a.comp /s/b.h /s/gone.h /s/b.h
/s/b.h
`
	exists := func(fn string) bool { return fn != "/s/gone.h" }
	c, err := Read(strings.NewReader(src), exists)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"/s/a.comp": 10, "/s/b.h": 20}, c.Times)
	assert.Equal(t, []string{"/s/b.h"}, c.Deps["/s/a.comp"])
	deps, has := c.Deps["/s/b.h"]
	assert.True(t, has)
	assert.Empty(t, deps)

	_, err = Read(strings.NewReader("/s/a.comp ten\n"), nil)
	assert.Error(t, err)
}

func TestLoadSave(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "cache.txt")

	c := Load(fn, nil)
	assert.Empty(t, c.Times)
	assert.Empty(t, c.Deps)

	c.Times["/s/a.comp"] = 5
	c.Deps["/s/a.comp"] = []string{"/s/b.h"}
	require.NoError(t, c.Save(fn))
	ents, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, ents, 1, "temporary file left behind")

	got := Load(fn, nil)
	assert.Equal(t, c.Times, got.Times)
	assert.Equal(t, c.Deps, got.Deps)

	require.NoError(t, os.WriteFile(fn, []byte("garbage here\n"), 0644))
	got = Load(fn, nil)
	assert.Empty(t, got.Times)
}

func writeFile(t *testing.T, fn, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(fn), 0755))
	require.NoError(t, os.WriteFile(fn, []byte(content), 0644))
	return Path(fn)
}

func TestScanIncludes(t *testing.T) {
	dir := t.TempDir()
	gen := filepath.Join(dir, "Generated")
	b := writeFile(t, filepath.Join(dir, "b.h"), "")
	g := writeFile(t, filepath.Join(gen, "ShaderCommonGLSL.h"), "")
	a := writeFile(t, filepath.Join(dir, "a.comp"), `#version 460
#include "b.h"
#include "ShaderCommonGLSL.h"
#include "missing.h"
#include <system.h>
#include "a.comp"
`)
	deps, err := ScanIncludes(a, []string{dir, gen})
	require.NoError(t, err)
	assert.Equal(t, []string{b, g}, deps)

	_, err = ScanIncludes(filepath.Join(dir, "none.comp"), []string{dir})
	assert.Error(t, err)
}

// graphFixture builds a.comp -> b.h -> c.h and d.comp -> e.h, and a
// cache in which every file is fresh.
func graphFixture(t *testing.T) (dir string, c *Cache, fs map[string]string) {
	dir = t.TempDir()
	fs = map[string]string{
		"c.h":    writeFile(t, filepath.Join(dir, "c.h"), ""),
		"b.h":    writeFile(t, filepath.Join(dir, "b.h"), "#include \"c.h\"\n"),
		"e.h":    writeFile(t, filepath.Join(dir, "e.h"), ""),
		"a.comp": writeFile(t, filepath.Join(dir, "a.comp"), "#include \"b.h\"\n"),
		"d.comp": writeFile(t, filepath.Join(dir, "d.comp"), "#include \"e.h\"\n"),
	}
	past := time.Now().Add(-time.Hour).Truncate(time.Second)
	for _, fn := range fs {
		require.NoError(t, os.Chtimes(fn, past, past))
	}
	c = New()
	for _, nm := range []string{"c.h", "b.h", "e.h", "a.comp", "d.comp"} {
		changed, _, err := c.Refresh(fs[nm], []string{dir}, true)
		require.NoError(t, err)
		assert.True(t, changed, nm)
	}
	return dir, c, fs
}

func refreshHeaders(t *testing.T, dir string, c *Cache, fs map[string]string) map[string]bool {
	modified := map[string]bool{}
	for _, nm := range []string{"c.h", "b.h", "e.h"} {
		changed, _, err := c.Refresh(fs[nm], []string{dir}, true)
		require.NoError(t, err)
		if changed {
			modified[fs[nm]] = true
		}
	}
	return modified
}

func state(t *testing.T, c *Cache, fn string, modified map[string]bool) State {
	mt, err := ModTime(fn)
	require.NoError(t, err)
	return c.State(fn, mt, modified)
}

func TestFreshnessMonotonic(t *testing.T) {
	dir, c, fs := graphFixture(t)
	assert.Equal(t, []string{fs["b.h"]}, c.Deps[fs["a.comp"]])

	modified := refreshHeaders(t, dir, c, fs)
	assert.Empty(t, modified)
	for nm, fn := range fs {
		assert.Equal(t, Fresh, state(t, c, fn, modified), nm)
	}

	now := time.Now()
	require.NoError(t, os.Chtimes(fs["c.h"], now, now))
	modified = refreshHeaders(t, dir, c, fs)
	assert.Equal(t, map[string]bool{fs["c.h"]: true}, modified)

	assert.Equal(t, Stale, state(t, c, fs["a.comp"], modified))
	assert.Equal(t, Stale, state(t, c, fs["b.h"], modified))
	assert.Equal(t, Fresh, state(t, c, fs["d.comp"], modified))
	assert.Equal(t, Fresh, state(t, c, fs["e.h"], modified))

	// the next run sees the recorded header time
	modified = refreshHeaders(t, dir, c, fs)
	assert.Empty(t, modified)
	assert.Equal(t, Fresh, state(t, c, fs["a.comp"], modified))
}

func TestStateRules(t *testing.T) {
	_, c, fs := graphFixture(t)

	a := fs["a.comp"]
	mt, err := ModTime(a)
	require.NoError(t, err)
	assert.Equal(t, Stale, c.State(a, mt+1, nil), "own time changed")

	c.Evict(fs["c.h"])
	assert.Equal(t, Stale, c.State(a, mt, nil), "unknown include")

	c.Evict(a)
	assert.Equal(t, Unknown, c.State(a, mt, nil))
	assert.Equal(t, "unknown", Unknown.String())
}

func TestIncludeCycle(t *testing.T) {
	c := New()
	c.Times["/s/x.h"] = 1
	c.Times["/s/y.h"] = 1
	c.Times["/s/m.comp"] = 1
	c.Deps["/s/m.comp"] = []string{"/s/x.h"}
	c.Deps["/s/x.h"] = []string{"/s/y.h"}
	c.Deps["/s/y.h"] = []string{"/s/x.h"}
	assert.Equal(t, Fresh, c.State("/s/m.comp", 1, nil))
	assert.Equal(t, Stale, c.State("/s/m.comp", 1, map[string]bool{"/s/y.h": true}))
}

func TestRefreshRescan(t *testing.T) {
	dir, c, fs := graphFixture(t)
	a := fs["a.comp"]
	writeFile(t, a, "#include \"e.h\"\n")
	later := time.Now()
	require.NoError(t, os.Chtimes(a, later, later))

	changed, mt, err := c.Refresh(a, []string{dir}, false)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, []string{fs["e.h"]}, c.Deps[a])
	assert.NotEqual(t, mt, c.Times[a], "time is recorded only when asked")
	assert.Equal(t, Stale, c.State(a, mt, nil))
}
