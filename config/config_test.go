// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/xyznav/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testOrbit struct {
	Speed   float32 `default:"0.8"`
	Enabled bool    `default:"true"`
}

type testConfig struct {
	Name     string         `default:"gallery"`
	Speed    float32        `default:"0.2"`
	Steps    int            `default:"12"`
	Marker   time.Duration  `default:"3s"`
	Camera   math32.Vector3 `default:"0 0 -5"`
	Orbit    testOrbit
	NoTag    float32
	internal int
}

func TestSetFromDefaults(t *testing.T) {
	cfg := &testConfig{}
	require.NoError(t, SetFromDefaults(cfg))
	assert.Equal(t, "gallery", cfg.Name)
	assert.Equal(t, float32(0.2), cfg.Speed)
	assert.Equal(t, 12, cfg.Steps)
	assert.Equal(t, 3*time.Second, cfg.Marker)
	assert.Equal(t, math32.Vec3(0, 0, -5), cfg.Camera)
	assert.Equal(t, float32(0.8), cfg.Orbit.Speed)
	assert.True(t, cfg.Orbit.Enabled)
	assert.Zero(t, cfg.NoTag)
	assert.Zero(t, cfg.internal)

	assert.Error(t, SetFromDefaults(testConfig{}))

	type bad struct {
		Speed float32 `default:"fast"`
	}
	assert.Error(t, SetFromDefaults(&bad{}))
}

func TestOpenSave(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "xyznav.toml")
	require.NoError(t, os.WriteFile(fn, []byte(`
Speed = 0.5
Camera = "1 2 3"

[Orbit]
Enabled = false
`), 0666))

	cfg := &testConfig{}
	require.NoError(t, SetFromDefaults(cfg))
	require.NoError(t, Open(cfg, fn))
	assert.Equal(t, float32(0.5), cfg.Speed)
	assert.Equal(t, math32.Vec3(1, 2, 3), cfg.Camera)
	assert.False(t, cfg.Orbit.Enabled)
	assert.Equal(t, float32(0.8), cfg.Orbit.Speed)
	assert.Equal(t, "gallery", cfg.Name)

	out := filepath.Join(dir, "saved.toml")
	require.NoError(t, Save(cfg, out))
	re := &testConfig{}
	require.NoError(t, Open(re, out))
	assert.Equal(t, *cfg, *re)

	assert.ErrorContains(t, Save(make(chan int), out), "config.Save")
	assert.Error(t, Save(cfg, filepath.Join(dir, "missing", "saved.toml")))

	assert.Error(t, Open(cfg, filepath.Join(dir, "missing.toml")))
	require.NoError(t, os.WriteFile(fn, []byte("Speed = [oops"), 0666))
	assert.Error(t, Open(cfg, fn))
}
