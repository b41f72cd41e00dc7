// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tolassert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type mockT struct {
	failed bool
}

func (m *mockT) Errorf(format string, args ...any) {
	m.failed = true
}

func TestEqual(t *testing.T) {
	Equal(t, float32(3.1415), 3.1416)
	EqualTol(t, 0.2, 0.2000001, 1e-6)

	mt := &mockT{}
	assert.False(t, EqualTol(mt, float32(1), 1.5, 0.1))
	assert.True(t, mt.failed)
}
