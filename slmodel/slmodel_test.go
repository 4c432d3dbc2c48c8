// Copyright (c) 2022, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	m := Default()
	require.NoError(t, m.Resolve(nil))
	assert.Empty(t, m.Consts.Pending())

	c, ok := m.Consts.Lookup("MAX_STATIC_TRIANGLE_COUNT")
	require.True(t, ok)
	assert.Equal(t, "1398101", c.Value)

	st := m.StructByName("ShVertexBufferStatic")
	require.NotNil(t, st)
	assert.Equal(t, 1<<22, st.Fields[0].Count)
	assert.Equal(t, (1<<22)/3, st.Fields[4].Count)
}

func TestDefaultIsFresh(t *testing.T) {
	a := Default()
	require.NoError(t, a.Resolve(nil))
	b := Default()
	assert.NotEmpty(t, b.Consts.Pending())
	assert.Zero(t, b.StructByName("ShVertexBufferStatic").Fields[0].Count)
}
