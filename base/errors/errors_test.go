// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLog(t *testing.T) {
	assert.NoError(t, Log(nil))
	err := New("scene file missing")
	assert.Equal(t, err, Log(err))

	assert.Equal(t, 12, Log1(strconv.Atoi("12")))
	assert.Equal(t, 0, Log1(strconv.Atoi("twelve")))
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(New("bad")) })
	assert.Equal(t, 3, Must1(strconv.Atoi("3")))
	assert.Panics(t, func() { Must1(strconv.Atoi("x")) })
	assert.Equal(t, 0, Ignore1(strconv.Atoi("x")))
}

func TestWrapped(t *testing.T) {
	base := New("base")
	err := fmt.Errorf("loading: %w", base)
	assert.True(t, Is(err, base))
	assert.Equal(t, base, Unwrap(err))
}
