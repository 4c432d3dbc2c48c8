// Copyright (c) 2022, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slbind

import (
	"fmt"

	"goki.dev/shgen/sldecl"
	"goki.dev/shgen/sltype"
)

// Format is the image format of a slot in both languages.
type Format struct {
	// Vulkan is the VkFormat enumerant, e.g. VK_FORMAT_R16G16B16A16_SFLOAT.
	Vulkan string

	// Qualifier is the GLSL image format layout qualifier, e.g. rgba16f.
	Qualifier string

	// Image and Sampler are the GLSL types of the two views.
	Image   string
	Sampler string
}

type chanFormat struct {
	vk   string
	qual string
}

type kindFormats struct {
	image, sampler string
	byChan         map[sldecl.Channels]chanFormat
}

var formats = map[sltype.Kind]kindFormats{
	sltype.Float32: {"image2D", "sampler2D", map[sldecl.Channels]chanFormat{
		sldecl.R:    {"R32_SFLOAT", "r32f"},
		sldecl.RG:   {"R32G32_SFLOAT", "rg32f"},
		sldecl.RGBA: {"R32G32B32A32_SFLOAT", "rgba32f"},
	}},
	sltype.Float16: {"image2D", "sampler2D", map[sldecl.Channels]chanFormat{
		sldecl.R:    {"R16_SFLOAT", "r16f"},
		sldecl.RG:   {"R16G16_SFLOAT", "rg16f"},
		sldecl.RGBA: {"R16G16B16A16_SFLOAT", "rgba16f"},
	}},
	sltype.Uint32: {"uimage2D", "usampler2D", map[sldecl.Channels]chanFormat{
		sldecl.R:    {"R32_UINT", "r32ui"},
		sldecl.RG:   {"R32G32_UINT", "rg32ui"},
		sldecl.RGBA: {"R32G32B32A32_UINT", "rgba32ui"},
	}},
	sltype.Int32: {"iimage2D", "isampler2D", map[sldecl.Channels]chanFormat{
		sldecl.R:    {"R32_SINT", "r32i"},
		sldecl.RG:   {"R32G32_SINT", "rg32i"},
		sldecl.RGBA: {"R32G32B32A32_SINT", "rgba32i"},
	}},
	sltype.Uint16: {"uimage2D", "usampler2D", map[sldecl.Channels]chanFormat{
		sldecl.R:    {"R16_UINT", "r16ui"},
		sldecl.RG:   {"R16G16_UINT", "rg16ui"},
		sldecl.RGBA: {"R16G16B16A16_UINT", "rgba16ui"},
	}},
	sltype.Unorm8: {"image2D", "sampler2D", map[sldecl.Channels]chanFormat{
		sldecl.R:    {"R8_UNORM", "r8"},
		sldecl.RG:   {"R8G8_UNORM", "rg8"},
		sldecl.RGBA: {"R8G8B8A8_UNORM", "rgba8"},
	}},
	sltype.Packed111110: {"image2D", "sampler2D", map[sldecl.Channels]chanFormat{
		sldecl.RGB: {"B10G11R11_UFLOAT_PACK32", "r11f_g11f_b10f"},
	}},
	// shared exponent images are written as raw words and sampled as floats
	sltype.PackedSharedExp: {"uimage2D", "sampler2D", map[sldecl.Channels]chanFormat{
		sldecl.RGB: {"E5B9G9R9_UFLOAT_PACK32", "r32ui"},
	}},
}

// FormatOf returns the format for an image of the given kind and
// channel layout. Three channels are only available for packed kinds.
func FormatOf(k sltype.Kind, ch sldecl.Channels) (Format, error) {
	kf, ok := formats[k]
	if !ok {
		return Format{}, fmt.Errorf("no image format for kind %s", k)
	}
	cf, ok := kf.byChan[ch]
	if !ok {
		return Format{}, fmt.Errorf("no image format for %s with %s channels", k, ch)
	}
	return Format{
		Vulkan:    "VK_FORMAT_" + cf.vk,
		Qualifier: cf.qual,
		Image:     kf.image,
		Sampler:   kf.sampler,
	}, nil
}
