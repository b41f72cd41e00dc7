// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/xyznav/events"
	"cogentcore.org/xyznav/events/key"
	"cogentcore.org/xyznav/math32"
)

// orbitEps keeps the polar angle off the poles, and is the
// minimum squared movement that counts as a change.
const orbitEps = 0.000001

// OrbitControls rotates, pans and zooms a [Camera] around a Target point,
// driven by mouse drag and scroll events. The camera up direction is
// the world Y axis. Changes accumulate from events and are applied
// to the camera by [OrbitControls.Update], which the host calls once
// per frame.
type OrbitControls struct {
	// Camera is the camera being controlled.
	Camera *Camera

	// Target is the point the camera orbits around and looks at.
	Target math32.Vector3

	// Enabled turns all control on or off. While disabled, Update
	// does nothing and events are not handled.
	Enabled bool

	// EnableZoom, EnablePan and EnableRotate switch each kind of movement.
	EnableZoom   bool
	EnablePan    bool
	EnableRotate bool

	// ZoomSpeed scales the zoom for each scroll step.
	ZoomSpeed float32 `default:"1"`

	// PanSpeed scales panning movement.
	PanSpeed float32 `default:"1"`

	// RotateSpeed scales rotation movement.
	RotateSpeed float32 `default:"1"`

	// MinDistance and MaxDistance limit the distance from the Target.
	MinDistance float32
	MaxDistance float32

	// MinPolarAngle and MaxPolarAngle limit the angle from the
	// world up axis, in radians.
	MinPolarAngle float32
	MaxPolarAngle float32

	// deltas accumulated since the last Update
	dTheta, dPhi float32
	scale        float32
	panOffset    math32.Vector3

	listeners []events.ListenerID
}

// NewOrbitControls returns new controls for the given camera,
// targeting the current camera target.
func NewOrbitControls(cam *Camera) *OrbitControls {
	oc := &OrbitControls{Camera: cam}
	oc.Defaults()
	cam.CamMu.RLock()
	oc.Target = cam.Target
	cam.CamMu.RUnlock()
	return oc
}

// Defaults enables everything with unit speeds and no limits.
func (oc *OrbitControls) Defaults() {
	oc.Enabled = true
	oc.EnableZoom = true
	oc.EnablePan = true
	oc.EnableRotate = true
	oc.ZoomSpeed = 1
	oc.PanSpeed = 1
	oc.RotateSpeed = 1
	oc.MinDistance = 0
	oc.MaxDistance = math32.Infinity
	oc.MinPolarAngle = 0
	oc.MaxPolarAngle = math32.Pi
	oc.scale = 1
}

// SetEnabled sets whether the controls are active.
func (oc *OrbitControls) SetEnabled(on bool) {
	oc.Enabled = on
}

// SetTarget sets the orbit target. It takes effect on the next Update.
func (oc *OrbitControls) SetTarget(target math32.Vector3) {
	oc.Target = target
}

// Rotate adds a rotation by the given angles in radians:
// theta around the up axis and phi toward it.
func (oc *OrbitControls) Rotate(theta, phi float32) {
	oc.dTheta += theta
	oc.dPhi += phi
}

// RotatePixels rotates for a drag of dx, dy pixels in a view
// of the given height, where a full height drag is a full turn.
func (oc *OrbitControls) RotatePixels(dx, dy, height float32) {
	if height <= 0 {
		return
	}
	oc.Rotate(-2*math32.Pi*dx/height*oc.RotateSpeed, -2*math32.Pi*dy/height*oc.RotateSpeed)
}

// Pan moves the target (and camera) by the given world distance
// along the camera right and up directions.
func (oc *OrbitControls) Pan(right, up float32) {
	q := oc.Camera.Orientation()
	oc.panOffset.SetAdd(math32.Vec3(1, 0, 0).MulQuat(q).MulScalar(right))
	oc.panOffset.SetAdd(math32.Vec3(0, 1, 0).MulQuat(q).MulScalar(up))
}

// PanPixels pans for a drag of dx, dy pixels in a view of the given
// height, so that points at the target distance follow the pointer.
func (oc *OrbitControls) PanPixels(dx, dy, height float32) {
	if height <= 0 {
		return
	}
	cm := oc.Camera
	cm.CamMu.RLock()
	dist := cm.Pose.Pos.Sub(oc.Target).Length()
	if cm.Ortho {
		dist = cm.Far
	}
	dist *= math32.Tan(math32.DegToRad(cm.FOV / 2))
	cm.CamMu.RUnlock()
	oc.Pan(-2*dx*dist/height*oc.PanSpeed, 2*dy*dist/height*oc.PanSpeed)
}

// ZoomScale returns the distance scale for one zoom step.
func (oc *OrbitControls) ZoomScale() float32 {
	return math32.Pow(0.95, oc.ZoomSpeed)
}

// Zoom zooms in (steps > 0) or out (steps < 0) by the given
// number of zoom steps.
func (oc *OrbitControls) Zoom(steps float32) {
	oc.scale *= math32.Pow(oc.ZoomScale(), steps)
}

// Update applies the accumulated movement to the camera within the
// distance and angle limits, and points it at the Target. It returns
// false without doing anything if the controls are disabled, and
// otherwise whether the camera moved.
func (oc *OrbitControls) Update() bool {
	if !oc.Enabled {
		return false
	}
	cm := oc.Camera
	pos := cm.Position()
	prevQuat := cm.Orientation()
	offset := pos.Sub(oc.Target)

	radius := offset.Length()
	if radius > 0 {
		theta := math32.Atan2(offset.X, offset.Z) + oc.dTheta
		phi := math32.Acos(math32.Clamp(offset.Y/radius, -1, 1)) + oc.dPhi
		phi = math32.Clamp(phi, oc.MinPolarAngle, oc.MaxPolarAngle)
		phi = math32.Clamp(phi, orbitEps, math32.Pi-orbitEps)
		radius = math32.Clamp(radius*oc.scale, oc.MinDistance, oc.MaxDistance)
		sp := math32.Sin(phi)
		offset = math32.Vec3(radius*sp*math32.Sin(theta), radius*math32.Cos(phi), radius*sp*math32.Cos(theta))
	}
	oc.Target.SetAdd(oc.panOffset)
	npos := oc.Target.Add(offset)

	oc.dTheta, oc.dPhi = 0, 0
	oc.scale = 1
	oc.panOffset.SetZero()

	cm.SetPosition(npos)
	cm.LookAt(oc.Target, math32.Vec3(0, 1, 0))
	q := cm.Orientation()
	return npos.DistanceToSquared(pos) > orbitEps || 8*(1-math32.Abs(prevQuat.Dot(q))) > orbitEps
}

// Listen adds the event listeners to the given scene so that
// mouse drag orbits the camera (Shift or right button pans)
// and scrolling zooms.
func (oc *OrbitControls) Listen(sc *Scene) {
	oc.listeners = append(oc.listeners,
		sc.Events.Add(events.MouseDrag, func(e events.Event) {
			if !oc.Enabled {
				return
			}
			me := e.(*events.Mouse)
			del := me.PrevDelta()
			h := float32(sc.Size.Y)
			if me.Button == events.Right || me.HasAnyModifier(key.Shift) {
				if !oc.EnablePan {
					return
				}
				oc.PanPixels(float32(del.X), float32(del.Y), h)
			} else {
				if !oc.EnableRotate {
					return
				}
				oc.RotatePixels(float32(del.X), float32(del.Y), h)
			}
			e.SetHandled()
		}),
		sc.Events.Add(events.Scroll, func(e events.Event) {
			if !oc.Enabled || !oc.EnableZoom {
				return
			}
			se := e.(*events.MouseScroll)
			switch {
			case se.Delta.Y < 0:
				oc.Zoom(1)
			case se.Delta.Y > 0:
				oc.Zoom(-1)
			}
			e.SetHandled()
		}))
}

// Unlisten removes the event listeners added by Listen.
func (oc *OrbitControls) Unlisten(sc *Scene) {
	for _, id := range oc.listeners {
		sc.Events.Remove(id)
	}
	oc.listeners = nil
}
