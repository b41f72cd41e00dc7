// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nav

import (
	"testing"

	"cogentcore.org/xyznav/base/tolassert"
	"cogentcore.org/xyznav/events"
	"cogentcore.org/xyznav/events/key"
	"cogentcore.org/xyznav/math32"
	"cogentcore.org/xyznav/xyz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertVector(t *testing.T, expected, actual math32.Vector3, tol float32) {
	t.Helper()
	tolassert.EqualTol(t, expected.X, actual.X, tol)
	tolassert.EqualTol(t, expected.Y, actual.Y, tol)
	tolassert.EqualTol(t, expected.Z, actual.Z, tol)
}

// testCamera is a camera at the origin looking down -Z that records
// the orbit enabled state whenever it is turned.
type testCamera struct {
	pos   math32.Vector3
	quat  math32.Quat
	orbit *testOrbit
	turns []bool
}

func newTestCamera() *testCamera {
	return &testCamera{quat: math32.NewQuatIdentity()}
}

func (tc *testCamera) Position() math32.Vector3       { return tc.pos }
func (tc *testCamera) SetPosition(pos math32.Vector3) { tc.pos = pos }
func (tc *testCamera) Orientation() math32.Quat       { return tc.quat }

func (tc *testCamera) LookAt(target, up math32.Vector3) {
	tc.quat.SetFromRotationMatrix(math32.NewLookAt(tc.pos, target, up))
	if tc.orbit != nil {
		tc.turns = append(tc.turns, tc.orbit.enabled)
	}
}

type testOrbit struct {
	enabled bool
	target  math32.Vector3
	calls   []string
}

func (to *testOrbit) SetEnabled(on bool) {
	to.enabled = on
	if on {
		to.calls = append(to.calls, "enable")
	} else {
		to.calls = append(to.calls, "disable")
	}
}

func (to *testOrbit) SetTarget(target math32.Vector3) {
	to.target = target
	to.calls = append(to.calls, "target")
}

func (to *testOrbit) Update() bool {
	to.calls = append(to.calls, "update")
	return true
}

func TestInputState(t *testing.T) {
	var is InputState
	assert.False(t, is.IsAnyMovementKeyPressed())
	is.SetKey("Forward", true)
	assert.True(t, is.IsPressed("forward"))
	assert.True(t, is.IsPressed("FORWARD"))
	assert.True(t, is.Pressed(Forward))
	assert.True(t, is.IsAnyMovementKeyPressed())

	is.SetKey("jump", true)
	assert.False(t, is.IsPressed("jump"))

	is.SetKey("forward", false)
	assert.False(t, is.IsAnyMovementKeyPressed())
	is.SetKey("yaw-right", true)
	assert.True(t, is.IsAnyMovementKeyPressed())
	is.SetKey("yaw-right", false)

	is.SetKey("slow", true)
	assert.True(t, is.Slow())
	assert.True(t, is.IsPressed("slow"))
	assert.False(t, is.IsAnyMovementKeyPressed(), "slow alone does not move")

	k, ok := KeyFromName("Yaw-Left")
	assert.True(t, ok)
	assert.Equal(t, YawLeft, k)
	assert.Equal(t, "yaw-left", k.String())
	assert.Equal(t, "unknown", KeysN.String())
}

func TestHandleKey(t *testing.T) {
	var is InputState
	assert.True(t, is.HandleKey(events.NewKey(events.KeyDown, "W", key.Shift)))
	assert.True(t, is.Pressed(Forward))
	assert.True(t, is.HandleKey(events.NewKey(events.KeyDown, "Shift", key.Shift)))
	assert.True(t, is.Slow())
	assert.False(t, is.HandleKey(events.NewKey(events.KeyDown, "x", 0)))
	assert.True(t, is.HandleKey(events.NewKey(events.KeyUp, "w", 0)))
	assert.False(t, is.Pressed(Forward))

	var ls events.Listeners
	is.Listen(&ls)
	ev := events.NewKey(events.KeyDown, "q", 0)
	ls.Call(ev)
	assert.True(t, ev.IsHandled())
	assert.True(t, is.Pressed(YawLeft))
	ev = events.NewKey(events.KeyDown, "Escape", 0)
	ls.Call(ev)
	assert.False(t, ev.IsHandled())
}

func TestForwardTick(t *testing.T) {
	var is InputState
	rg := NewRig(&is, nil)
	cam := newTestCamera()
	assert.False(t, rg.Update(cam), "no keys, no motion")
	assert.Equal(t, math32.Vector3{}, cam.pos)

	is.Set(Forward, true)
	assert.True(t, rg.Update(cam))
	assertVector(t, math32.Vec3(0, 0, -0.2), cam.pos, 1e-6)

	is.SetSlow(true)
	cam.pos = math32.Vector3{}
	rg.Update(cam)
	assertVector(t, math32.Vec3(0, 0, -0.05), cam.pos, 1e-6)
}

func TestAdditiveMoves(t *testing.T) {
	sin30, cos30 := math32.Sin(math32.Pi/6), math32.Cos(math32.Pi/6)
	orients := []struct {
		name           string
		quat           math32.Quat
		forward, right math32.Vector3
	}{
		{"identity", math32.NewQuatIdentity(), math32.Vec3(0, 0, -1), math32.Vec3(1, 0, 0)},
		{"yawed", math32.NewQuatAxisAngle(math32.Vec3(0, 1, 0), math32.Pi/2), math32.Vec3(-1, 0, 0), math32.Vec3(0, 0, -1)},
		// up and down stay on world Y even when pitched
		{"pitched", math32.NewQuatAxisAngle(math32.Vec3(1, 0, 0), math32.Pi/6), math32.Vec3(0, sin30, -cos30), math32.Vec3(1, 0, 0)},
	}
	for _, or := range orients {
		t.Run(or.name, func(t *testing.T) {
			dirs := [...]math32.Vector3{
				Forward: or.forward,
				Back:    or.forward.Negate(),
				Left:    or.right.Negate(),
				Right:   or.right,
				Up:      math32.Vec3(0, 1, 0),
				Down:    math32.Vec3(0, -1, 0),
			}
			for _, slow := range []bool{false, true} {
				for set := 1; set < 1<<6; set++ {
					var is InputState
					is.SetSlow(slow)
					rg := NewRig(&is, nil)
					speed := rg.Speed(slow)
					var want math32.Vector3
					for k := Forward; k <= Down; k++ {
						if set&(1<<k) != 0 {
							is.Set(k, true)
							want.SetAdd(dirs[k].MulScalar(speed))
						}
					}
					cam := newTestCamera()
					cam.quat = or.quat
					cam.pos = math32.Vec3(1, 2, 3)
					rg.Update(cam)
					assertVector(t, math32.Vec3(1, 2, 3).Add(want), cam.pos, 1e-5)
				}
			}
		})
	}
}

func TestOppositeKeysCancel(t *testing.T) {
	var is InputState
	to := &testOrbit{enabled: true}
	rg := NewRig(&is, NewOrbitBridge(to))
	is.SetKey("left", true)
	is.SetKey("right", true)
	cam := newTestCamera()
	assert.True(t, rg.Update(cam))
	assertVector(t, math32.Vector3{}, cam.pos, 1e-6)
	// still moving, so the target is pushed
	assert.Equal(t, []string{"target", "update"}, to.calls)
	assertVector(t, math32.Vec3(0, 0, -5), to.target, 1e-5)
}

func TestSlowRatio(t *testing.T) {
	var sp Speeds
	sp.Defaults()
	tolassert.EqualTol(t, 0.25, sp.Speed(true)/sp.Speed(false), 1e-6)
}

func TestYaw(t *testing.T) {
	var is InputState
	to := &testOrbit{enabled: true}
	rg := NewRig(&is, NewOrbitBridge(to))
	cam := newTestCamera()
	cam.orbit = to

	is.Set(YawLeft, true)
	require.True(t, rg.Update(cam))
	assert.Equal(t, []string{"disable", "enable", "target", "update"}, to.calls)
	assert.Equal(t, []bool{false}, cam.turns, "orbit is disabled while turning")
	assert.True(t, to.enabled)

	angle := float32(0.2 * 0.3)
	fwd := math32.Vec3(0, 0, -1).MulQuat(cam.quat)
	assertVector(t, math32.Vec3(-math32.Sin(angle), 0, -math32.Cos(angle)), fwd, 1e-5)
	assertVector(t, fwd.MulScalar(5), to.target, 1e-4)
	assertVector(t, math32.Vector3{}, cam.pos, 0)

	// both yaw keys turn and return
	is.Set(YawRight, true)
	to.calls = nil
	rg.Update(cam)
	assert.Equal(t, []string{"disable", "enable", "disable", "enable", "target", "update"}, to.calls)
	assertVector(t, fwd, math32.Vec3(0, 0, -1).MulQuat(cam.quat), 1e-5)
}

func TestNilOrbit(t *testing.T) {
	var ob *OrbitBridge
	ran := false
	ob.Rotate(func() { ran = true })
	assert.True(t, ran)
	ob.SetTarget(math32.Vec3(1, 2, 3))
	ob.Refresh()
	NewOrbitBridge(nil).Refresh()
}

func TestRigWithOrbitControls(t *testing.T) {
	sc := xyz.NewScene("test")
	cam := &sc.Camera
	cam.SetPosition(math32.Vec3(0, 0, -5))
	cam.LookAtOrigin()
	oc := xyz.NewOrbitControls(cam)

	var is InputState
	rg := NewRig(&is, NewOrbitBridge(oc))
	is.Set(Forward, true)
	is.Set(YawRight, true)
	for i := 0; i < 10; i++ {
		rg.Update(cam)
		oc.Update()
	}
	assert.True(t, oc.Enabled)
	pos := cam.Position()
	tolassert.EqualTol(t, 5, oc.Target.Sub(pos).Length(), 1e-3)
	tolassert.EqualTol(t, 0, pos.Y, 1e-4)
	fwd := cam.Forward()
	assertVector(t, oc.Target, pos.Add(fwd.MulScalar(5)), 1e-3)
	assert.Greater(t, pos.Z, float32(-4), "moved forward")
}
