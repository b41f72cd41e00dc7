// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nav

import (
	"log/slog"

	"cogentcore.org/xyznav/math32"
)

// Camera is the camera moved by a [Rig], such as [xyz.Camera].
type Camera interface {
	Position() math32.Vector3
	SetPosition(pos math32.Vector3)
	Orientation() math32.Quat

	// LookAt turns the camera to look at the target, with the given up direction.
	LookAt(target, up math32.Vector3)
}

// Speeds are the movement parameters of a [Rig].
type Speeds struct {

	// MoveSpeed is the distance moved per frame.
	MoveSpeed float32 `default:"0.2"`

	// SlowSpeed is the distance moved per frame while the slow modifier is held.
	SlowSpeed float32 `default:"0.05"`

	// RotationFactor converts the current speed into the yaw angle
	// per frame, in radians.
	RotationFactor float32 `default:"0.3"`

	// LookAhead is the distance in front of the camera
	// of the orbit target while moving.
	LookAhead float32 `default:"5"`
}

// Defaults sets the default speeds.
func (sp *Speeds) Defaults() {
	sp.MoveSpeed = 0.2
	sp.SlowSpeed = 0.05
	sp.RotationFactor = 0.3
	sp.LookAhead = 5
}

// Speed returns the movement speed for the given slow state.
func (sp *Speeds) Speed(slow bool) float32 {
	if slow {
		return sp.SlowSpeed
	}
	return sp.MoveSpeed
}

// Rig moves a camera each frame according to the held keys in its Input,
// keeping the Orbit target in front of the camera while moving.
type Rig struct {
	Speeds

	// Input is the key state, which is only read.
	Input *InputState

	// Orbit is the bridge to the orbit component, which may be nil.
	Orbit *OrbitBridge

	slow bool
}

// NewRig returns a new rig with default speeds.
func NewRig(in *InputState, orbit *OrbitBridge) *Rig {
	rg := &Rig{Input: in, Orbit: orbit}
	rg.Defaults()
	return rg
}

var worldUp = math32.Vec3(0, 1, 0)

// Update moves the camera for one frame, returning whether any
// navigation key is held. Translation is the sum of the moves for
// each held key along the camera forward and right directions and
// the world up, so opposite keys cancel. Each held yaw key then turns
// the camera around the world up axis, with the orbit disabled.
// Finally the orbit target is placed LookAhead in front of the camera.
func (rg *Rig) Update(cam Camera) bool {
	in := rg.Input
	if in == nil || !in.IsAnyMovementKeyPressed() {
		return false
	}
	if in.Slow() != rg.slow {
		rg.slow = in.Slow()
		slog.Debug("navigation speed", "slow", rg.slow, "speed", rg.Speed(rg.slow))
	}
	speed := rg.Speed(in.Slow())

	q := cam.Orientation()
	fwd := math32.Vec3(0, 0, -1).MulQuat(q)
	right := math32.Vec3(1, 0, 0).MulQuat(q)

	var del math32.Vector3
	add := func(k Keys, dir math32.Vector3, sign float32) {
		if in.Pressed(k) {
			del.SetAdd(dir.MulScalar(sign * speed))
		}
	}
	add(Forward, fwd, 1)
	add(Back, fwd, -1)
	add(Left, right, -1)
	add(Right, right, 1)
	add(Up, worldUp, 1)
	add(Down, worldUp, -1)
	pos := cam.Position()
	if !del.IsNil() {
		pos.SetAdd(del)
		cam.SetPosition(pos)
	}

	angle := speed * rg.RotationFactor
	if in.Pressed(YawLeft) {
		rg.Orbit.Rotate(func() { yaw(cam, angle) })
	}
	if in.Pressed(YawRight) {
		rg.Orbit.Rotate(func() { yaw(cam, -angle) })
	}

	fwd = math32.Vec3(0, 0, -1).MulQuat(cam.Orientation())
	rg.Orbit.SetTarget(cam.Position().Add(fwd.MulScalar(rg.LookAhead)))
	rg.Orbit.Refresh()
	return true
}

// yaw turns the camera by the given angle in radians
// around the world up axis at its position.
func yaw(cam Camera, angle float32) {
	var rot math32.Matrix4
	rot.SetRotationY(angle)
	fwd := math32.Vec3(0, 0, -1).MulQuat(cam.Orientation()).MulMatrix4AsVector4(&rot, 0)
	pos := cam.Position()
	cam.LookAt(pos.Add(fwd), worldUp)
}
