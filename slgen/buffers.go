// Copyright (c) 2022, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slgen

import (
	"bytes"
	"fmt"

	"goki.dev/shgen/sldecl"
)

// Buffers renders the interface block declarations, each group of
// blocks guarded by its descriptor set macro.
func (s *State) Buffers() []byte {
	var b bytes.Buffer
	var sets []string
	bySet := map[string][]sldecl.Buffer{}
	for _, buf := range s.Model.Buffers {
		if _, has := bySet[buf.DescSet]; !has {
			sets = append(sets, buf.DescSet)
		}
		bySet[buf.DescSet] = append(bySet[buf.DescSet], buf)
	}
	for _, set := range sets {
		fmt.Fprintf(&b, "\n#ifdef %s\n", set)
		for i, buf := range bySet[set] {
			if i > 0 {
				b.WriteString("\n")
			}
			writeBlock(&b, buf)
		}
		fmt.Fprintf(&b, "#endif // %s\n", set)
	}
	return b.Bytes()
}

func writeBlock(b *bytes.Buffer, buf sldecl.Buffer) {
	fmt.Fprintf(b, "layout(\n%sset = %s,\n%sbinding = %s)\n", tab, buf.DescSet, tab, buf.Binding)
	switch {
	case buf.Uniform:
		fmt.Fprintf(b, "%suniform %s\n", tab, buf.Block)
	case buf.Writable:
		fmt.Fprintf(b, "%sbuffer %s\n", tab, buf.Block)
	case buf.WritableMacro != "":
		fmt.Fprintf(b, "#ifndef %s\n%sreadonly\n#endif\n", buf.WritableMacro, tab)
		fmt.Fprintf(b, "%sbuffer %s\n", tab, buf.Block)
	default:
		fmt.Fprintf(b, "%sreadonly buffer %s\n", tab, buf.Block)
	}
	arr := ""
	if buf.RuntimeArray {
		arr = "[]"
	}
	fmt.Fprintf(b, "{\n%s%s %s%s;\n};\n", tab, buf.Struct, buf.Instance, arr)
}

// bufferByInstance returns the block exposing the given instance.
func (s *State) bufferByInstance(inst string) (sldecl.Buffer, bool) {
	for _, buf := range s.Model.Buffers {
		if buf.Instance == inst {
			return buf, true
		}
	}
	return sldecl.Buffer{}, false
}
