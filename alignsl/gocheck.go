// Copyright (c) 2022, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alignsl

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"

	"cogentcore.org/core/base/errors"
)

// Sizes are the sizes used to check generated Go structs.
var Sizes = types.SizesFor("gc", "amd64")

// GoStruct is the layout of one Go struct as computed by go/types.
type GoStruct struct {
	Name    string
	Size    int64
	Offsets map[string]int64

	// Problems lists fields that are not 32-bit scalars or arrays of them.
	Problems []string
}

// CheckStruct computes the layout of st and reports fields that are
// not [U]Int32 or Float32, or arrays of them.
func CheckStruct(name string, st *types.Struct) *GoStruct {
	gs := &GoStruct{Name: name, Offsets: map[string]int64{}}
	nf := st.NumFields()
	if nf == 0 {
		return gs
	}
	var flds []*types.Var
	for i := 0; i < nf; i++ {
		fl := st.Field(i)
		flds = append(flds, fl)
		ut := fl.Type().Underlying()
		for {
			at, isArray := ut.(*types.Array)
			if !isArray {
				break
			}
			ut = at.Elem().Underlying()
		}
		if bt, isBasic := ut.(*types.Basic); isBasic {
			kind := bt.Kind()
			if !(kind == types.Uint32 || kind == types.Int32 || kind == types.Float32) {
				gs.Problems = append(gs.Problems, fmt.Sprintf("%s: basic type != [U]Int32 or Float32: %s", fl.Name(), bt.String()))
			}
		} else {
			gs.Problems = append(gs.Problems, fmt.Sprintf("%s: unsupported type: %s", fl.Name(), fl.Type().String()))
		}
	}
	offs := Sizes.Offsetsof(flds)
	for i, fl := range flds {
		if fl.Name() != "_" {
			gs.Offsets[fl.Name()] = offs[i]
		}
	}
	gs.Size = Sizes.Sizeof(st)
	return gs
}

// CheckScope checks every named struct type in sc.
func CheckScope(sc *types.Scope) map[string]*GoStruct {
	res := map[string]*GoStruct{}
	for _, nm := range sc.Names() {
		tp := sc.Lookup(nm).Type()
		nt, is := tp.(*types.Named)
		if !is {
			continue
		}
		if st, is := nt.Underlying().(*types.Struct); is {
			res[nm] = CheckStruct(nm, st)
		}
	}
	return res
}

// CheckGoSource type checks a generated Go file and returns the layout
// of each struct it declares, keyed by type name.
func CheckGoSource(filename string, src []byte) (map[string]*GoStruct, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, filename, src, 0)
	if err != nil {
		return nil, err
	}
	conf := types.Config{Sizes: Sizes}
	pkg, err := conf.Check(f.Name.Name, fset, []*ast.File{f}, nil)
	if err != nil {
		return nil, err
	}
	return CheckScope(pkg.Scope()), nil
}

// Verify checks that the Go layout gs agrees with plan p: same total
// size and same offset for every field.
func Verify(p *Plan, gs *GoStruct, goName func(string) string) error {
	var errs []error
	if gs.Size != int64(p.Size) {
		errs = append(errs, fmt.Errorf("%w: %s: Go size %d != %d", ErrLayout, p.Struct.Name, gs.Size, p.Size))
	}
	for _, e := range p.Fields() {
		off, ok := gs.Offsets[goName(e.Name)]
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s: Go struct has no field for %s", ErrLayout, p.Struct.Name, e.Name))
			continue
		}
		if off != int64(e.Offset) {
			errs = append(errs, fmt.Errorf("%w: %s.%s: Go offset %d != %d", ErrLayout, p.Struct.Name, e.Name, off, e.Offset))
		}
	}
	for _, pr := range gs.Problems {
		errs = append(errs, fmt.Errorf("%w: %s.%s", ErrLayout, p.Struct.Name, pr))
	}
	return errors.Join(errs...)
}
