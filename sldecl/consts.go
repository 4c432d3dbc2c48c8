// Copyright (c) 2022, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sldecl

import (
	"fmt"
	"go/constant"
	"go/token"
	"go/types"
	"strconv"
	"strings"

	"cogentcore.org/core/base/errors"
)

// ErrUnresolved is wrapped by the error of a resolve pass that left
// pending constants behind.
var ErrUnresolved = errors.New("unresolved constant")

// Const is one named constant. Value is emitted verbatim in every
// target language, so it must be a literal or an expression valid in
// all of them, such as "1 << 22".
type Const struct {
	Name  string
	Value string

	// Derive is an expression over other integer constants, evaluated
	// by Resolve when Pending is set, e.g. "MAX_VERTEX_COUNT / 3" or
	// "1 << LOG2_CELLS". It uses the same syntax as Value.
	Derive string

	// Pending marks a placeholder whose Value must be computed by
	// Resolve before emission.
	Pending bool

	// GPUOnly constants are emitted into the shading language only.
	GPUOnly bool
}

// DeriveFunc computes a pending constant from the integer values of
// the constants resolved so far.
type DeriveFunc func(env map[string]int64) (int64, error)

// ConstTable is an ordered constant table.
type ConstTable []Const

// Lookup returns the constant with the given name.
func (ct ConstTable) Lookup(name string) (*Const, bool) {
	for i := range ct {
		if ct[i].Name == name {
			return &ct[i], true
		}
	}
	return nil, false
}

// Pending returns the names of constants still marked pending.
func (ct ConstTable) Pending() []string {
	var nms []string
	for _, c := range ct {
		if c.Pending {
			nms = append(nms, c.Name)
		}
	}
	return nms
}

// Env returns the integer values of all resolved constants whose
// value is a constant integer expression.
func (ct ConstTable) Env() map[string]int64 {
	env := make(map[string]int64, len(ct))
	for _, c := range ct {
		if c.Pending {
			continue
		}
		if v, err := IntValue(c.Value); err == nil {
			env[c.Name] = v
		}
	}
	return env
}

// Resolve runs the derivation pass: every pending constant is computed
// from its Derive expression, or from derivers[name] when it has none.
// Constants may depend on other derived constants in any order. It
// fails with ErrUnresolved, naming every constant that is still
// pending, rather than leaving a default value behind.
func (ct ConstTable) Resolve(derivers map[string]DeriveFunc) error {
	var errs []error
	for {
		progress := false
		env := ct.Env()
		for i := range ct {
			c := &ct[i]
			if !c.Pending {
				continue
			}
			v, ok, err := derive(c, env, derivers)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			if !ok {
				continue
			}
			c.Value = strconv.FormatInt(v, 10)
			c.Pending = false
			env[c.Name] = v
			progress = true
		}
		if !progress {
			break
		}
		errs = errs[:0]
	}
	if pend := ct.Pending(); len(pend) > 0 {
		errs = append(errs, fmt.Errorf("%w: %s", ErrUnresolved, strings.Join(pend, ", ")))
		return errors.Join(errs...)
	}
	return nil
}

// derive returns ok == false when an input of c is not yet available.
func derive(c *Const, env map[string]int64, derivers map[string]DeriveFunc) (int64, bool, error) {
	if c.Derive == "" {
		fn, has := derivers[c.Name]
		if !has {
			return 0, false, nil
		}
		v, err := fn(env)
		if err != nil {
			return 0, false, fmt.Errorf("derive %s: %w", c.Name, err)
		}
		return v, true, nil
	}
	v, err := Eval(c.Derive, env)
	if err != nil {
		// inputs may still be pending; the final Pending check reports it
		return 0, false, fmt.Errorf("derive %s: %w", c.Name, err)
	}
	return v, true, nil
}

// Eval evaluates an integer expression over the given constants, in
// the syntax shared by the target languages, e.g. "1 << N" or
// "MAX_VERTEX_COUNT / 3". Arithmetic is exact; division truncates
// toward zero, as it does in C and GLSL.
func Eval(src string, env map[string]int64) (int64, error) {
	pkg := types.NewPackage("consts", "consts")
	for name, v := range env {
		pkg.Scope().Insert(types.NewConst(token.NoPos, pkg, name, types.Typ[types.UntypedInt], constant.MakeInt64(v)))
	}
	tv, err := types.Eval(token.NewFileSet(), pkg, token.NoPos, src)
	if err != nil {
		return 0, err
	}
	if tv.Value == nil || tv.Value.Kind() != constant.Int {
		return 0, fmt.Errorf("%q is not an integer constant", src)
	}
	v, exact := constant.Int64Val(tv.Value)
	if !exact {
		return 0, fmt.Errorf("%q overflows int64", src)
	}
	return v, nil
}

// IntValue returns the value of a constant integer expression written
// in the syntax shared by the target languages, e.g. "1 << 22" or "0x10".
func IntValue(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if v, err := strconv.ParseInt(s, 0, 64); err == nil {
		return v, nil
	}
	return Eval(s, nil)
}
