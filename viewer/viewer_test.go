// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewer

import (
	"image"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/xyznav/base/tolassert"
	"cogentcore.org/xyznav/config"
	"cogentcore.org/xyznav/events"
	"cogentcore.org/xyznav/events/key"
	"cogentcore.org/xyznav/math32"
	"cogentcore.org/xyznav/picker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertVector(t *testing.T, expected, actual math32.Vector3, tol float32) {
	t.Helper()
	tolassert.EqualTol(t, expected.X, actual.X, tol)
	tolassert.EqualTol(t, expected.Y, actual.Y, tol)
	tolassert.EqualTol(t, expected.Z, actual.Z, tol)
}

const wallModel = `
meshes:
  - name: wall
    type: plane
    normal: z
    negative: true
    size: [20, 20]
objects:
  - name: wall
    mesh: wall
    position: [0, 0, 1]
`

func TestConfig(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, config.SetFromDefaults(cfg))
	assert.Equal(t, float32(0.2), cfg.MoveSpeed)
	assert.Equal(t, float32(0.05), cfg.SlowSpeed)
	assert.Equal(t, float32(5), cfg.LookAhead)
	assert.Equal(t, math32.Vec3(0, 0, -5), cfg.Camera.Position)
	assert.Equal(t, float32(60), cfg.Camera.FOV)
	assert.Equal(t, float32(500), cfg.Orbit.MaxDistance)
	assert.Equal(t, 3*time.Second, cfg.Marker.Duration)
	assert.Equal(t, math32.Vec3(0, -2, 0), cfg.ModelPosition)

	fn := filepath.Join(t.TempDir(), "viewer.toml")
	cfg.MoveSpeed = 0.5
	cfg.Camera.Position = math32.Vec3(1, 2, 3)
	require.NoError(t, config.Save(cfg, fn))
	back := &Config{}
	require.NoError(t, config.Open(back, fn))
	assert.Equal(t, cfg, back)
}

func TestNew(t *testing.T) {
	v := New(nil)
	cm := &v.Scene.Camera
	assert.Equal(t, math32.Vec3(0, 0, -5), cm.Position())
	assert.Equal(t, float32(60), cm.FOV)
	assertVector(t, math32.Vec3(0, 0, 1), cm.Forward(), 1e-6)
	assert.Equal(t, math32.Vector3Scalar(0.8), v.Model.Pose.Scale)
	tolassert.EqualTol(t, math32.Pi, v.Orbit.MaxPolarAngle, 1e-6)
	assert.Contains(t, v.Scene.SavedCams, "default")
}

func TestWalk(t *testing.T) {
	v := New(nil)
	sc := v.Scene
	now := time.Now()

	// nothing held: the orbit keeps the camera still
	v.Frame(now)
	assertVector(t, math32.Vec3(0, 0, -5), sc.Camera.Position(), 1e-4)

	w := events.NewKey(events.KeyDown, "w", 0)
	sc.Send(w)
	v.Frame(now)
	assert.True(t, w.IsHandled())
	assertVector(t, math32.Vec3(0, 0, -4.8), sc.Camera.Position(), 1e-4)
	assertVector(t, math32.Vec3(0, 0, 0.2), v.Orbit.Target, 1e-4)

	sc.Send(events.NewKey(events.KeyDown, "Shift", 0))
	v.Frame(now)
	assertVector(t, math32.Vec3(0, 0, -4.75), sc.Camera.Position(), 1e-4)

	sc.Send(events.NewKey(events.KeyUp, "w", 0))
	sc.Send(events.NewKey(events.KeyUp, "Shift", 0))
	v.Frame(now)
	assertVector(t, math32.Vec3(0, 0, -4.75), sc.Camera.Position(), 1e-4)
	assert.False(t, v.Input.IsAnyMovementKeyPressed())

	sc.Send(events.NewKey(events.KeyDown, "Escape", 0))
	v.Frame(now)
	assertVector(t, math32.Vec3(0, 0, -5), sc.Camera.Position(), 1e-4)
}

func TestPickerMode(t *testing.T) {
	v := New(nil)
	fn := filepath.Join(t.TempDir(), "model.yaml")
	require.NoError(t, os.WriteFile(fn, []byte(wallModel), 0666))
	require.NoError(t, v.LoadModel(fn))
	assert.Equal(t, 1, v.ModelInfo().Solids)
	assert.Len(t, v.VisiblePlacements(), 6)
	assert.Len(t, v.PlacementPoses(), 6)

	var picked []picker.Result
	v.OnCoordinatePicked(func(res picker.Result) { picked = append(picked, res) })
	center := image.Pt(640, 360)
	now := time.Now()

	v.Scene.Send(events.NewClick(center, 0))
	v.Frame(now)
	assert.Empty(t, picked)

	assert.True(t, v.TogglePickerMode())
	assert.True(t, v.PickerActive())
	assert.Empty(t, v.VisiblePlacements())
	v.Scene.Send(events.NewClick(center, 0))
	v.Frame(now)
	require.Len(t, picked, 1)
	assertVector(t, math32.Vec3(0, 0, 0.8), picked[0].Position, 1e-4)
	assertVector(t, math32.Vec3(0, 0, -1), picked[0].Normal, 1e-5)

	assert.False(t, v.TogglePickerMode())
	v.Scene.Send(events.NewClick(center, 0))
	v.Frame(now)
	assert.Len(t, picked, 1)
	assert.Len(t, v.VisiblePlacements(), 6)

	assert.Error(t, v.LoadModel(filepath.Join(t.TempDir(), "missing.yaml")))
}

func TestRestoreView(t *testing.T) {
	v := New(nil)
	sc := v.Scene
	cm := &sc.Camera
	now := time.Now()

	sc.Send(events.NewKey(events.KeyDown, "d", 0))
	sc.Send(events.NewKey(events.KeyDown, "r", 0))
	for i := 0; i < 30; i++ {
		v.Frame(now)
	}
	sc.Send(events.NewKey(events.KeyUp, "d", 0))
	sc.Send(events.NewKey(events.KeyUp, "r", 0))
	v.Frame(now)
	assert.NotEqual(t, math32.Vector3{}, v.Orbit.Target)

	sc.Send(events.NewKey(events.KeyDown, "Escape", 0))
	v.Frame(now)
	v.Frame(now)
	assertVector(t, math32.Vec3(0, 0, -5), cm.Position(), 1e-4)
	assertVector(t, math32.Vec3(0, 0, 1), cm.Forward(), 1e-4)
	assertVector(t, math32.Vec3(0, 0, 0), v.Orbit.Target, 1e-4)

	// panning moves the view without turning it
	pan := events.NewKey(events.KeyDown, "RightArrow", key.Shift)
	sc.Send(pan)
	v.Frame(now)
	v.Frame(now)
	assert.True(t, pan.IsHandled())
	tolassert.EqualTol(t, 0.2, math32.Abs(cm.Position().X), 1e-4)
	assertVector(t, math32.Vec3(0, 0, 1), cm.Forward(), 1e-4)
	tolassert.EqualTol(t, cm.Position().X, v.Orbit.Target.X, 1e-4)

	sc.Send(events.NewKey(events.KeyDown, "Escape", 0))
	v.Frame(now)
	assertVector(t, math32.Vec3(0, 0, -5), cm.Position(), 1e-4)
	assertVector(t, math32.Vec3(0, 0, 1), cm.Forward(), 1e-4)
}
