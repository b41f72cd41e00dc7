// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image"
	"testing"

	"cogentcore.org/xyznav/base/tolassert"
	"cogentcore.org/xyznav/events"
	"cogentcore.org/xyznav/events/key"
	"cogentcore.org/xyznav/math32"
	"github.com/stretchr/testify/assert"
)

func TestOrbitUpdate(t *testing.T) {
	sc := NewScene("test")
	oc := NewOrbitControls(&sc.Camera)
	assert.False(t, oc.Update(), "nothing to do")
	assertVector(t, math32.Vec3(0, 0, 10), sc.Camera.Position(), 1e-4)

	oc.SetEnabled(false)
	oc.Rotate(math32.Pi/2, 0)
	before := sc.Camera.Position()
	assert.False(t, oc.Update())
	assert.Equal(t, before, sc.Camera.Position())

	oc.SetEnabled(true)
	assert.True(t, oc.Update())
	assertVector(t, math32.Vec3(10, 0, 0), sc.Camera.Position(), 1e-4)
	assertVector(t, math32.Vec3(-1, 0, 0), sc.Camera.Forward(), 1e-4)

	oc.Zoom(1)
	assert.True(t, oc.Update())
	tolassert.EqualTol(t, 9.5, sc.Camera.Position().Length(), 1e-4)

	oc.MaxDistance = 5
	oc.Update()
	tolassert.EqualTol(t, 5, sc.Camera.Position().Length(), 1e-4)

	oc.MaxPolarAngle = math32.Pi / 4
	oc.Update()
	pos := sc.Camera.Position()
	tolassert.EqualTol(t, 5*math32.Cos(math32.Pi/4), pos.Y, 1e-4)

	target := math32.Vec3(1, 0, 0)
	dist := sc.Camera.DistanceTo(target)
	oc.SetTarget(target)
	oc.Update()
	assertVector(t, target, sc.Camera.Target, 0)
	tolassert.EqualTol(t, dist, sc.Camera.DistanceTo(target), 1e-4)
}

func TestOrbitPan(t *testing.T) {
	sc := NewScene("test")
	oc := NewOrbitControls(&sc.Camera)
	oc.Pan(2, 1)
	oc.Update()
	assertVector(t, math32.Vec3(2, 1, 0), oc.Target, 1e-5)
	assertVector(t, math32.Vec3(2, 1, 10), sc.Camera.Position(), 1e-4)
	assertVector(t, math32.Vec3(0, 0, -1), sc.Camera.Forward(), 1e-5)
}

func TestOrbitEvents(t *testing.T) {
	sc := NewScene("test")
	oc := NewOrbitControls(&sc.Camera)
	oc.Listen(sc)

	drag := events.NewMouseDrag(events.Left, image.Pt(110, 100), image.Pt(100, 100), image.Pt(90, 100), 0)
	sc.HandleEvent(drag)
	assert.True(t, drag.IsHandled())
	assert.True(t, oc.Update())
	pos := sc.Camera.Position()
	tolassert.EqualTol(t, 10, pos.Length(), 1e-4)
	assert.Less(t, pos.X, float32(0), "dragging right orbits the camera left")

	pan := events.NewMouseDrag(events.Left, image.Pt(110, 100), image.Pt(100, 100), image.Pt(90, 100), key.Shift)
	sc.HandleEvent(pan)
	assert.True(t, oc.Update())
	assert.Greater(t, oc.Target.Length(), float32(0))

	dist := sc.Camera.DistanceTo(oc.Target)
	sc.HandleEvent(events.NewScroll(image.Pt(100, 100), math32.Vec2(0, -100), 0))
	oc.Update()
	tolassert.EqualTol(t, dist*0.95, sc.Camera.DistanceTo(oc.Target), 1e-3)

	oc.SetEnabled(false)
	drag = events.NewMouseDrag(events.Left, image.Pt(110, 100), image.Pt(100, 100), image.Pt(90, 100), 0)
	sc.HandleEvent(drag)
	assert.False(t, drag.IsHandled())

	oc.SetEnabled(true)
	oc.Unlisten(sc)
	assert.Equal(t, 0, sc.Events.Len(events.MouseDrag))
	assert.Equal(t, 0, sc.Events.Len(events.Scroll))
}
