// Copyright (c) 2022, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slgen

import (
	"bytes"
	"fmt"

	"github.com/iancoleman/strcase"
	"goki.dev/shgen/sldecl"
	"goki.dev/shgen/sltype"
)

// Accessors renders the getter and setter functions of every Getter.
// Elements of the flattened members are index * stride apart, where
// the stride is read at run time from <StrideInstance>.<member>Stride.
// Setters are only emitted for blocks that can be written.
func (s *State) Accessors() ([]byte, error) {
	var b bytes.Buffer
	for _, g := range s.Model.Getters {
		st := s.Model.StructByName(g.Struct)
		if st == nil {
			return nil, fmt.Errorf("%w: getter %s: unknown struct %s", sldecl.ErrModel, g.Instance, g.Struct)
		}
		buf, ok := s.bufferByInstance(g.Instance)
		if !ok {
			return nil, fmt.Errorf("%w: getter %s: no buffer exposes it", sldecl.ErrModel, g.Instance)
		}
		strideBuf, ok := s.bufferByInstance(g.StrideInstance)
		if !ok {
			return nil, fmt.Errorf("%w: getter %s: no buffer exposes %s", sldecl.ErrModel, g.Instance, g.StrideInstance)
		}

		var gets, sets bytes.Buffer
		for _, f := range st.Fields {
			if !sldecl.HasVariableStride(f) {
				continue
			}
			v, ok := f.Type.(sltype.Vector)
			if !ok {
				return nil, fmt.Errorf("%w: getter %s: %s is not a vector", sldecl.ErrModel, g.Instance, f.Name)
			}
			getter(&gets, g, f.Name, v)
			setter(&sets, g, f.Name, v)
		}
		if gets.Len() == 0 {
			continue
		}

		fmt.Fprintf(&b, "\n#if defined(%s) && defined(%s)\n", buf.DescSet, strideBuf.DescSet)
		b.Write(gets.Bytes())
		switch {
		case buf.Uniform:
		case buf.Writable:
			b.Write(sets.Bytes())
		case buf.WritableMacro != "":
			fmt.Fprintf(&b, "\n#ifdef %s", buf.WritableMacro)
			b.Write(sets.Bytes())
			fmt.Fprintf(&b, "#endif // %s\n", buf.WritableMacro)
		}
		b.WriteString("#endif\n")
	}
	return b.Bytes(), nil
}

func accessorName(g sldecl.Getter, field string) string {
	return strcase.ToCamel(g.Instance) + strcase.ToCamel(field)
}

func element(g sldecl.Getter, field string, i int) string {
	return fmt.Sprintf("%s.%s[index * %s.%sStride + %d]", g.Instance, field, g.StrideInstance, field, i)
}

func getter(b *bytes.Buffer, g sldecl.Getter, field string, v sltype.Vector) {
	tn, _ := sltype.Name(sltype.GLSL, v)
	fmt.Fprintf(b, "\n%s get%s(uint index)\n{\n", tn, accessorName(g, field))
	fmt.Fprintf(b, "%sreturn %s(", tab, tn)
	for i := 0; i < v.N; i++ {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(b, "\n%s%s%s", tab, tab, element(g, field, i))
	}
	b.WriteString(");\n}\n")
}

func setter(b *bytes.Buffer, g sldecl.Getter, field string, v sltype.Vector) {
	tn, _ := sltype.Name(sltype.GLSL, v)
	fmt.Fprintf(b, "\nvoid set%s(uint index, %s value)\n{\n", accessorName(g, field), tn)
	for i := 0; i < v.N; i++ {
		fmt.Fprintf(b, "%s%s = value[%d];\n", tab, element(g, field, i), i)
	}
	b.WriteString("}\n")
}
