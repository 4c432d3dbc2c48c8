// Copyright (c) 2022, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slgen

import (
	"bytes"
	"fmt"

	"github.com/iancoleman/strcase"
	"goki.dev/shgen/alignsl"
	"goki.dev/shgen/slbind"
	"goki.dev/shgen/sltype"
	"golang.org/x/tools/imports"
)

// GoName returns the exported Go name of a struct member.
func GoName(field string) string {
	return strcase.ToCamel(field)
}

func goType(r alignsl.Repr) string {
	tn, ok := sltype.Name(sltype.Go, r.Type)
	if !ok {
		panic(fmt.Sprintf("slgen: no Go name for %s", r.Type))
	}
	var dims string
	for _, d := range r.Dims {
		dims += fmt.Sprintf("[%d]", d)
	}
	return dims + tn
}

// GoFile renders the Go host file of package pkg: the host constants,
// the host structs with blank pad fields, and the framebuffer binding
// tables. The output is gofmt formatted.
func (s *State) GoFile(pkg string) ([]byte, error) {
	var b bytes.Buffer
	b.WriteString(banner + "\n\n")
	fmt.Fprintf(&b, "package %s\n", pkg)

	b.WriteString("\nconst (\n")
	for _, c := range s.Model.Consts {
		if c.GPUOnly {
			continue
		}
		fmt.Fprintf(&b, "\t%s = %s\n", c.Name, c.Value)
	}
	b.WriteString(")\n")

	for _, p := range s.Plans {
		st := p.Struct
		if st.GPUOnly {
			continue
		}
		fmt.Fprintf(&b, "\n// %s has the %s layout of its shader declaration, %d bytes.\n", st.Name, st.Layout, p.Size)
		fmt.Fprintf(&b, "type %s struct {\n", st.Name)
		for i := range p.Entries {
			e := &p.Entries[i]
			nm := "_"
			if !e.IsPad() {
				nm = GoName(e.Name)
			}
			fmt.Fprintf(&b, "\t%s %s\n", nm, goType(e.Host))
		}
		b.WriteString("}\n")
	}

	if tb := s.Bindings; tb.Count() > 0 {
		b.WriteString("\n// Framebuffer image slots, indexes into the Framebuf tables.\nconst (\n")
		for i := range tb.Slots {
			fmt.Fprintf(&b, "\t%s = %d\n", tb.Slots[i].IndexName(), i)
		}
		fmt.Fprintf(&b, "\n\tFramebufCount = %d\n\n", tb.Count())
		for _, fd := range flagDefs() {
			fmt.Fprintf(&b, "\t%s = %#x\n", fd.Name, fd.Value)
		}
		fmt.Fprintf(&b, "\n\tFB_SAMPLER_INVALID_BINDING = 0x%X\n)\n", slbind.InvalidBinding)
		writeGoArray(&b, "FramebufBindings", "uint32", tb.Count(), func(i int) string { return fmt.Sprint(tb.Slots[i].Binding) })
		writeGoArray(&b, "FramebufBindingsSwapped", "uint32", tb.Count(), func(i int) string { return fmt.Sprint(tb.Slots[i].BindingSwapped) })
		writeGoArray(&b, "FramebufSamplerBindings", "uint32", tb.Count(), func(i int) string { return samplerExpr(tb.Slots[i].SamplerBinding) })
		writeGoArray(&b, "FramebufSamplerBindingsSwapped", "uint32", tb.Count(), func(i int) string { return samplerExpr(tb.Slots[i].SamplerBindingSwapped) })
		writeGoArray(&b, "FramebufFormats", "string", tb.Count(), func(i int) string { return fmt.Sprintf("%q", tb.Slots[i].Format.Vulkan) })
		writeGoArray(&b, "FramebufFlags", "uint32", tb.Count(), func(i int) string { return flagsExpr(tb.Slots[i].Flags) })
		writeGoArray(&b, "FramebufDebugNames", "string", tb.Count(), func(i int) string { return fmt.Sprintf("%q", tb.Slots[i].DebugName()) })
	}

	return imports.Process(pkg+".go", b.Bytes(), nil)
}

func writeGoArray(b *bytes.Buffer, name, typ string, n int, elem func(i int) string) {
	fmt.Fprintf(b, "\nvar %s = [FramebufCount]%s{\n", name, typ)
	for i := 0; i < n; i++ {
		fmt.Fprintf(b, "\t%s,\n", elem(i))
	}
	b.WriteString("}\n")
}
