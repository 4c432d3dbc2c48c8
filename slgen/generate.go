// Copyright (c) 2022, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slgen

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"goki.dev/shgen/alignsl"
	"goki.dev/shgen/sldecl"
	"goki.dev/shgen/slmodel"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Generate loads, resolves and renders the model selected by c, and
// writes the generated files into c.Output. Nothing is written unless
// every output rendered without error.
func Generate(c *Config) error {
	m, err := LoadModel(c)
	if err != nil {
		return err
	}
	return GenerateModel(c, m, nil)
}

// LoadModel returns the TOML model named by c.Model, or the built-in
// model when it is empty.
func LoadModel(c *Config) (*sldecl.Model, error) {
	if c.Model == "" {
		return slmodel.Default(), nil
	}
	return sldecl.LoadTOML(c.Model)
}

// GenerateModel resolves m with the given derivers and writes its
// outputs as Generate does.
func GenerateModel(c *Config, m *sldecl.Model, derivers map[string]sldecl.DeriveFunc) error {
	if err := m.Resolve(derivers); err != nil {
		return err
	}
	s, err := NewState(m, c.GetSet)
	if err != nil {
		return err
	}
	for _, w := range s.Warnings() {
		slog.Warn(w)
	}
	out, err := s.Render(c)
	if err != nil {
		return err
	}
	return WriteFiles(c.Output, out)
}

// Render renders every output file into memory, keyed by file name.
// The Go file, if any, is type checked against the layout plans.
func (s *State) Render(c *Config) (map[string][]byte, error) {
	out := map[string][]byte{}
	h, err := s.HeaderC()
	if err != nil {
		return nil, err
	}
	out[FileC] = h

	g, err := s.HeaderGLSL()
	if err != nil {
		return nil, err
	}
	out[FileGLSL] = g

	if s.Bindings.Count() > 0 {
		fh, fc, err := s.FramebufC()
		if err != nil {
			return nil, err
		}
		out[FileFramebufH] = fh
		out[FileFramebufCpp] = fc
	}

	if !c.NoGo {
		src, err := s.GoFile(c.GoPackage)
		if err != nil {
			return nil, fmt.Errorf("formatting %s: %w", c.GoFile(), err)
		}
		if err := s.VerifyGo(c.GoFile(), src); err != nil {
			return nil, err
		}
		out[c.GoFile()] = src
	}
	return out, nil
}

// VerifyGo type checks a rendered Go file and verifies that the size
// and field offsets of each host struct match its plan.
func (s *State) VerifyGo(filename string, src []byte) error {
	res, err := alignsl.CheckGoSource(filename, src)
	if err != nil {
		return err
	}
	for _, p := range s.Plans {
		if p.Struct.GPUOnly {
			continue
		}
		gs := res[p.Struct.Name]
		if gs == nil {
			return fmt.Errorf("%w: %s: missing from %s", alignsl.ErrLayout, p.Struct.Name, filename)
		}
		if err := alignsl.Verify(p, gs, GoName); err != nil {
			return err
		}
	}
	return nil
}

// WriteFiles writes out into dir, creating it if needed. Files whose
// content is unchanged are left alone, so their modification times do
// not trigger shader rebuilds.
func WriteFiles(dir string, out map[string][]byte) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	names := maps.Keys(out)
	slices.Sort(names)
	for _, nm := range names {
		fn := filepath.Join(dir, nm)
		if cur, err := os.ReadFile(fn); err == nil && bytes.Equal(cur, out[nm]) {
			slog.Debug("unchanged", "file", fn)
			continue
		}
		if err := os.WriteFile(fn, out[nm], 0644); err != nil {
			return err
		}
		slog.Info("wrote", "file", fn)
	}
	return nil
}
