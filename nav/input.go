// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package nav provides free-flight keyboard navigation of a 3D camera
// that cooperates with an orbit component driving the same camera.
package nav

import (
	"strings"

	"cogentcore.org/xyznav/events"
)

// Keys are the logical navigation keys.
type Keys int32

const (
	Forward Keys = iota
	Back
	Left
	Right
	Up
	Down
	YawLeft
	YawRight

	// KeysN is the number of navigation keys.
	KeysN
)

// SlowName is the name of the slow movement modifier in [InputState.SetKey].
const SlowName = "slow"

var keyNames = [KeysN]string{"forward", "back", "left", "right", "up", "down", "yaw-left", "yaw-right"}

func (k Keys) String() string {
	if k < 0 || k >= KeysN {
		return "unknown"
	}
	return keyNames[k]
}

// KeyFromName returns the key with the given logical name,
// case insensitively, and whether there is one.
func KeyFromName(name string) (Keys, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, nm := range keyNames {
		if nm == name {
			return Keys(k), true
		}
	}
	return 0, false
}

// InputState records which navigation keys and the slow modifier
// are held down. The zero value has nothing held.
type InputState struct {
	pressed [KeysN]bool
	slow    bool
}

// SetKey records the logical key of the given name as pressed or released.
// The name [SlowName] sets the slow modifier. Unknown names are ignored.
func (is *InputState) SetKey(name string, pressed bool) {
	if strings.EqualFold(strings.TrimSpace(name), SlowName) {
		is.slow = pressed
		return
	}
	if k, ok := KeyFromName(name); ok {
		is.pressed[k] = pressed
	}
}

// Set records the given key as pressed or released.
func (is *InputState) Set(k Keys, pressed bool) {
	if k >= 0 && k < KeysN {
		is.pressed[k] = pressed
	}
}

// SetSlow sets the slow modifier.
func (is *InputState) SetSlow(slow bool) {
	is.slow = slow
}

// IsPressed returns whether the logical key of the given name is held.
// Unknown names are never pressed.
func (is *InputState) IsPressed(name string) bool {
	if strings.EqualFold(strings.TrimSpace(name), SlowName) {
		return is.slow
	}
	k, ok := KeyFromName(name)
	return ok && is.pressed[k]
}

// Pressed returns whether the given key is held.
func (is *InputState) Pressed(k Keys) bool {
	return k >= 0 && k < KeysN && is.pressed[k]
}

// Slow returns whether the slow modifier is held.
func (is *InputState) Slow() bool {
	return is.slow
}

// IsAnyMovementKeyPressed returns whether any translation or yaw key is held.
func (is *InputState) IsAnyMovementKeyPressed() bool {
	for _, p := range is.pressed {
		if p {
			return true
		}
	}
	return false
}

// Bindings maps physical key codes, in lower case, to logical key names.
var Bindings = map[string]string{
	"w":     "forward",
	"s":     "back",
	"a":     "left",
	"d":     "right",
	"r":     "up",
	"f":     "down",
	"q":     "yaw-left",
	"e":     "yaw-right",
	"shift": SlowName,
}

// HandleKey updates the state from the given KeyDown or KeyUp event
// through [Bindings], returning whether the key is bound. Bound keys
// should be marked as handled so that they have no other effect.
func (is *InputState) HandleKey(ev *events.Key) bool {
	name, ok := Bindings[strings.ToLower(ev.Code)]
	if !ok {
		return false
	}
	switch ev.Type() {
	case events.KeyDown:
		is.SetKey(name, true)
	case events.KeyUp:
		is.SetKey(name, false)
	default:
		return false
	}
	return true
}

// Listen adds listeners for key events to the given listeners,
// marking bound keys as handled.
func (is *InputState) Listen(ls *events.Listeners) {
	fun := func(e events.Event) {
		if is.HandleKey(e.(*events.Key)) {
			e.SetHandled()
		}
	}
	ls.Add(events.KeyDown, fun)
	ls.Add(events.KeyUp, fun)
}
