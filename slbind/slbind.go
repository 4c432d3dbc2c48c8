// Copyright (c) 2022, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package slbind assigns descriptor bindings to framebuffer images.
//
// Each resource takes one slot, and a resource that keeps its previous
// frame takes a second slot right after it. Storage image bindings are
// the slot numbers. The swapped order exchanges the bindings of each
// current/previous pair, so that alternating frames can ping-pong
// between the two images without branching in shaders. Sampler
// bindings repeat the same numbering offset by the slot count, or are
// InvalidBinding for resources without a sampler.
//
// A Table is computed once and every emitter reads from it, so the
// shader declarations and the host arrays cannot diverge.
package slbind

import (
	"fmt"
	"regexp"

	"github.com/iancoleman/strcase"
	"goki.dev/shgen/sldecl"
)

// InvalidBinding marks a sampler binding that does not exist.
const InvalidBinding uint32 = 0xFFFFFFFF

// PrevSuffix is appended to the name of previous-frame slots.
const PrevSuffix = "Prev"

// Slot is one physical framebuffer image.
type Slot struct {
	// Name is the CamelCase slot name, e.g. "DepthWorldPrev".
	Name string

	// Resource is the index of the declaring resource.
	Resource int

	// Prev is set for the previous-frame copy.
	Prev bool

	Format Format
	Flags  sldecl.ResourceFlags

	Binding        uint32
	BindingSwapped uint32

	SamplerBinding        uint32
	SamplerBindingSwapped uint32
}

// HasSampler reports whether the slot has a sampler view.
func (s *Slot) HasSampler() bool { return s.SamplerBinding != InvalidBinding }

// digitWord matches the separator strcase puts before a number.
var digitWord = regexp.MustCompile(`_([0-9])`)

// IndexName is the enum name of the slot, e.g. FB_IMAGE_INDEX_DEPTH_WORLD_PREV.
// Numbers stay attached to the preceding word: BloomMip1 is
// FB_IMAGE_INDEX_BLOOM_MIP1.
func (s *Slot) IndexName() string {
	return "FB_IMAGE_INDEX_" + digitWord.ReplaceAllString(strcase.ToScreamingSnake(s.Name), "$1")
}

// DebugName is the human readable slot name.
func (s *Slot) DebugName() string {
	if s.Prev {
		return "Framebuf " + s.baseName() + " Prev"
	}
	return "Framebuf " + s.Name
}

// VarName is the shader variable of the storage image, e.g.
// framebufDepthWorld_Prev.
func (s *Slot) VarName() string {
	if s.Prev {
		return "framebuf" + s.baseName() + "_Prev"
	}
	return "framebuf" + s.Name
}

// SamplerVarName is the shader variable of the sampler view.
func (s *Slot) SamplerVarName() string {
	return s.VarName() + "_Sampler"
}

func (s *Slot) baseName() string {
	if s.Prev {
		return s.Name[:len(s.Name)-len(PrevSuffix)]
	}
	return s.Name
}

// Table is the binding assignment for an ordered resource list.
type Table struct {
	Resources []sldecl.Resource
	Slots     []Slot
}

// Count returns the number of slots.
func (t *Table) Count() int { return len(t.Slots) }

// Assign numbers the slots of resources. Resources whose format has no
// storage image equivalent are model errors.
func Assign(resources []sldecl.Resource) (*Table, error) {
	t := &Table{Resources: resources}
	for i, r := range resources {
		f, err := FormatOf(r.Kind, r.Channels)
		if err != nil {
			return nil, fmt.Errorf("%w: framebuffer %s: %w", sldecl.ErrModel, r.Name, err)
		}
		cur := Slot{Name: r.Name, Resource: i, Format: f, Flags: r.Flags}
		t.Slots = append(t.Slots, cur)
		if r.Flags.HasFlag(sldecl.StorePrev) {
			prev := cur
			prev.Name = r.Name + PrevSuffix
			prev.Prev = true
			t.Slots = append(t.Slots, prev)
		}
	}

	n := uint32(len(t.Slots))
	for i := 0; i < len(t.Slots); {
		s := &t.Slots[i]
		b := uint32(i)
		paired := !s.Prev && i+1 < len(t.Slots) && t.Slots[i+1].Prev
		if paired {
			p := &t.Slots[i+1]
			s.Binding, s.BindingSwapped = b, b+1
			p.Binding, p.BindingSwapped = b+1, b
			setSampler(s, n)
			setSampler(p, n)
			i += 2
			continue
		}
		s.Binding, s.BindingSwapped = b, b
		setSampler(s, n)
		i++
	}
	return t, nil
}

func setSampler(s *Slot, offset uint32) {
	if s.Flags.HasFlag(sldecl.NoSampler) {
		s.SamplerBinding, s.SamplerBindingSwapped = InvalidBinding, InvalidBinding
		return
	}
	s.SamplerBinding = s.Binding + offset
	s.SamplerBindingSwapped = s.BindingSwapped + offset
}

// Bindings returns the storage image bindings in slot order, in the
// current-first or swapped order.
func (t *Table) Bindings(swapped bool) []uint32 {
	bs := make([]uint32, len(t.Slots))
	for i := range t.Slots {
		if swapped {
			bs[i] = t.Slots[i].BindingSwapped
		} else {
			bs[i] = t.Slots[i].Binding
		}
	}
	return bs
}

// SamplerBindings returns the sampler bindings in slot order.
func (t *Table) SamplerBindings(swapped bool) []uint32 {
	bs := make([]uint32, len(t.Slots))
	for i := range t.Slots {
		if swapped {
			bs[i] = t.Slots[i].SamplerBindingSwapped
		} else {
			bs[i] = t.Slots[i].SamplerBinding
		}
	}
	return bs
}
