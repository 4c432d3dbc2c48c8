// Copyright (c) 2022, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sldecl

import (
	"fmt"

	"github.com/expr-lang/expr"
)

// Check is a relation between resolved constants that must hold,
// e.g. "MAX_STATIC_TRIANGLE_COUNT * 3 <= MAX_STATIC_VERTEX_COUNT".
// Expr may use comparison and logical operators as well as arithmetic.
type Check struct {
	Expr string

	// Message is reported when the check fails.
	Message string
}

// Eval reports whether the check holds for the given constants.
func (c *Check) Eval(env map[string]int64) (bool, error) {
	vars := make(map[string]any, len(env))
	for k, v := range env {
		vars[k] = int(v)
	}
	prog, err := expr.Compile(c.Expr, expr.Env(vars), expr.AsBool())
	if err != nil {
		return false, err
	}
	out, err := expr.Run(prog, vars)
	if err != nil {
		return false, err
	}
	return out.(bool), nil
}

// checkConsts evaluates every check of m against its resolved constants.
func (m *Model) checkConsts() []error {
	if len(m.Checks) == 0 {
		return nil
	}
	env := m.Consts.Env()
	var errs []error
	for i := range m.Checks {
		c := &m.Checks[i]
		ok, err := c.Eval(env)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("%w: check %q: %w", ErrModel, c.Expr, err))
		case !ok && c.Message != "":
			errs = append(errs, fmt.Errorf("%w: check %q failed: %s", ErrModel, c.Expr, c.Message))
		case !ok:
			errs = append(errs, fmt.Errorf("%w: check %q failed", ErrModel, c.Expr))
		}
	}
	return errs
}
