// Copyright (c) 2022, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slgen

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"goki.dev/shgen/slbind"
	"goki.dev/shgen/sldecl"
)

// FlagPrefix prefixes the emitted framebuffer flag names.
const FlagPrefix = "FB_IMAGE_FLAGS_FRAMEBUF_FLAGS_"

// flagMacros are the header spellings of the resource flags.
var flagMacros = map[sldecl.ResourceFlags]string{
	sldecl.StorePrev:       "STORE_PREV",
	sldecl.NoSampler:       "NO_SAMPLER",
	sldecl.ForceSize13:     "FORCE_SIZE_1_3",
	sldecl.ForceSizeBloom:  "FORCE_SIZE_BLOOM",
	sldecl.UpscaledSize:    "UPSCALED_SIZE",
	sldecl.SinglePixelSize: "SINGLE_PIXEL_SIZE",
	sldecl.BilinearSampler: "BILINEAR_SAMPLER",
	sldecl.IsAttachment:    "IS_ATTACHMENT",
	sldecl.UsageTransfer:   "USAGE_TRANSFER",
}

func flagsExpr(fl sldecl.ResourceFlags) string {
	var nms []string
	for _, f := range sldecl.ResourceFlagsValues() {
		if fl.HasFlag(f) {
			nms = append(nms, FlagPrefix+flagMacros[f])
		}
	}
	if len(nms) == 0 {
		return "0"
	}
	return strings.Join(nms, " | ")
}

func samplerExpr(b uint32) string {
	if b == slbind.InvalidBinding {
		return "FB_SAMPLER_INVALID_BINDING"
	}
	return fmt.Sprint(b)
}

type flagDef struct {
	Name  string
	Value uint32
}

func flagDefs() []flagDef {
	vals := sldecl.ResourceFlagsValues()
	fds := make([]flagDef, len(vals))
	for i, f := range vals {
		fds[i] = flagDef{FlagPrefix + flagMacros[f], uint32(1) << f}
	}
	return fds
}

var framebufTpl = template.Must(template.New("").Funcs(template.FuncMap{
	"flags":   flagsExpr,
	"sampler": samplerExpr,
}).Parse(`
{{- define "header" -}}
` + banner + `

#pragma once

#include <stdint.h>
#include <vulkan/vulkan.h>

#define FB_SAMPLER_INVALID_BINDING ({{ printf "0x%X" .Invalid }})

enum FramebufferImageIndex
{
{{- range $i, $s := .Table.Slots }}
    {{ $s.IndexName }} = {{ $i }},
{{- end }}
};

enum FramebufferImageFlagBits
{
{{- range .Flags }}
    {{ .Name }} = {{ .Value }},
{{- end }}
};
typedef uint32_t FramebufferImageFlags;

extern const uint32_t ShFramebuffers_Count;
extern const VkFormat ShFramebuffers_Formats[];
extern const FramebufferImageFlags ShFramebuffers_Flags[];
extern const uint32_t ShFramebuffers_Bindings[];
extern const uint32_t ShFramebuffers_BindingsSwapped[];
extern const uint32_t ShFramebuffers_Sampler_Bindings[];
extern const uint32_t ShFramebuffers_Sampler_BindingsSwapped[];
extern const char *const ShFramebuffers_DebugNames[];
{{ end }}

{{- define "source" -}}
` + banner + `

#include "{{ .Header }}"

const uint32_t ShFramebuffers_Count = {{ .Table.Count }};

const VkFormat ShFramebuffers_Formats[] =
{
{{- range .Table.Slots }}
    {{ .Format.Vulkan }},
{{- end }}
};

const FramebufferImageFlags ShFramebuffers_Flags[] =
{
{{- range .Table.Slots }}
    {{ flags .Flags }},
{{- end }}
};

const uint32_t ShFramebuffers_Bindings[] =
{
{{- range .Table.Slots }}
    {{ .Binding }},
{{- end }}
};

const uint32_t ShFramebuffers_BindingsSwapped[] =
{
{{- range .Table.Slots }}
    {{ .BindingSwapped }},
{{- end }}
};

const uint32_t ShFramebuffers_Sampler_Bindings[] =
{
{{- range .Table.Slots }}
    {{ sampler .SamplerBinding }},
{{- end }}
};

const uint32_t ShFramebuffers_Sampler_BindingsSwapped[] =
{
{{- range .Table.Slots }}
    {{ sampler .SamplerBindingSwapped }},
{{- end }}
};

const char *const ShFramebuffers_DebugNames[] =
{
{{- range .Table.Slots }}
    "{{ .DebugName }}",
{{- end }}
};
{{ end }}

{{- define "glsl" }}
#ifdef {{ .DescSet }}
{{- range .Table.Slots }}
layout(set = {{ $.DescSet }}, binding = {{ .Binding }}, {{ .Format.Qualifier }}) uniform {{ .Format.Image }} {{ .VarName }};
{{- end }}
{{ range .Table.Slots }}
{{- if .HasSampler }}
layout(set = {{ $.DescSet }}, binding = {{ .SamplerBinding }}) uniform {{ .Format.Sampler }} {{ .SamplerVarName }};
{{- end }}
{{- end }}
#endif // {{ .DescSet }}
{{ end }}
`))

type framebufParams struct {
	Table   *slbind.Table
	Flags   []flagDef
	Invalid uint32
	Header  string
	DescSet string
}

func (s *State) framebufParams() *framebufParams {
	return &framebufParams{
		Table:   s.Bindings,
		Flags:   flagDefs(),
		Invalid: slbind.InvalidBinding,
		Header:  FileFramebufH,
		DescSet: s.Model.FramebufDescSet,
	}
}

// FramebufC renders the host framebuffer header and source, which
// hold the binding tables as parallel arrays indexed by
// FramebufferImageIndex.
func (s *State) FramebufC() (header, source []byte, err error) {
	var h, c bytes.Buffer
	p := s.framebufParams()
	if err := framebufTpl.ExecuteTemplate(&h, "header", p); err != nil {
		return nil, nil, err
	}
	if err := framebufTpl.ExecuteTemplate(&c, "source", p); err != nil {
		return nil, nil, err
	}
	return h.Bytes(), c.Bytes(), nil
}

// FramebufGLSL renders the storage image and sampler declarations,
// guarded by the framebuffer descriptor set macro. Bindings are the
// current-first order; the host swaps descriptor sets between frames.
func (s *State) FramebufGLSL() []byte {
	if s.Bindings.Count() == 0 {
		return nil
	}
	var b bytes.Buffer
	if err := framebufTpl.ExecuteTemplate(&b, "glsl", s.framebufParams()); err != nil {
		// the template is fixed and its data always complete
		panic(err)
	}
	return b.Bytes()
}
