// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nav

import "cogentcore.org/xyznav/math32"

// Orbit is an orbit component that rotates a camera around a target,
// such as [xyz.OrbitControls].
type Orbit interface {
	SetEnabled(on bool)
	SetTarget(target math32.Vector3)
	Update() bool
}

// OrbitBridge keeps an [Orbit] in step with the [Rig] moving the same
// camera. A nil bridge, or one without an Orbit, does nothing.
type OrbitBridge struct {
	Orbit Orbit
}

// NewOrbitBridge returns a bridge for the given orbit component, which may be nil.
func NewOrbitBridge(orb Orbit) *OrbitBridge {
	return &OrbitBridge{Orbit: orb}
}

func (ob *OrbitBridge) active() bool {
	return ob != nil && ob.Orbit != nil
}

// SetTarget sets the orbit target.
func (ob *OrbitBridge) SetTarget(target math32.Vector3) {
	if ob.active() {
		ob.Orbit.SetTarget(target)
	}
}

// SetEnabled enables or disables the orbit component.
func (ob *OrbitBridge) SetEnabled(on bool) {
	if ob.active() {
		ob.Orbit.SetEnabled(on)
	}
}

// Refresh has the orbit component apply its state to the camera now.
func (ob *OrbitBridge) Refresh() {
	if ob.active() {
		ob.Orbit.Update()
	}
}

// Rotate calls the given function with the orbit component disabled,
// enabling it again afterwards.
func (ob *OrbitBridge) Rotate(fun func()) {
	ob.SetEnabled(false)
	fun()
	ob.SetEnabled(true)
}
