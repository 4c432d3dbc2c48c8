// Copyright (c) 2022, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sldecl

import (
	"fmt"

	"goki.dev/shgen/sltype"
)

// Channels is the channel layout of an image resource.
type Channels int32 //enums:enum -transform lower

const (
	// R is a single channel.
	R Channels = iota + 1

	// RG is two channels.
	RG

	// RGB is three channels.
	RGB

	// RGBA is four channels.
	RGBA
)

// ResourceFlags is the flag set of a framebuffer resource.
// The constants are bit indices.
type ResourceFlags int64 //enums:bitflag

const (
	// StorePrev keeps a copy of the previous frame in a second slot.
	StorePrev ResourceFlags = iota

	// NoSampler omits the sampler view.
	NoSampler

	// ForceSize13 forces a third of the render resolution.
	ForceSize13

	// ForceSizeBloom forces the bloom chain resolution.
	ForceSizeBloom

	// UpscaledSize uses the upscaled output resolution.
	UpscaledSize

	// SinglePixelSize makes a 1x1 image.
	SinglePixelSize

	// BilinearSampler samples with linear filtering.
	BilinearSampler

	// IsAttachment allows use as a render pass attachment.
	IsAttachment

	// UsageTransfer allows use as a transfer destination.
	UsageTransfer
)

// Flags returns the flag set with each of fs on.
func Flags(fs ...ResourceFlags) ResourceFlags {
	var fl ResourceFlags
	for _, f := range fs {
		fl.SetFlag(true, f)
	}
	return fl
}

// Resource is one framebuffer image.
type Resource struct {
	// Name is CamelCase, e.g. "DepthWorld".
	Name     string
	Kind     sltype.Kind
	Channels Channels
	Flags    ResourceFlags
}

func (r *Resource) validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: framebuffer with empty name", ErrModel)
	}
	if !r.Kind.Valid() {
		return fmt.Errorf("%w: framebuffer %s: invalid kind", ErrModel, r.Name)
	}
	if r.Channels < R || r.Channels > RGBA {
		return fmt.Errorf("%w: framebuffer %s: invalid channel layout", ErrModel, r.Name)
	}
	if r.Flags>>ResourceFlagsN != 0 {
		return fmt.Errorf("%w: framebuffer %s: unknown flag bits %#x", ErrModel, r.Name, r.Flags.Int64())
	}
	return nil
}
