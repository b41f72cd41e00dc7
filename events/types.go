// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the input events delivered by a scene host
// to navigation and picking components, and the listener registry
// used to dispatch them.
package events

// Types determines the type of input event, and also the
// level at which one can select which events to listen to.
// The standard
// [JavaScript Event](https://developer.mozilla.org/en-US/docs/Web/Events)
// provide the basis for most of the event type names.
type Types int32

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// MouseDown happens when a mouse button is pressed down. See Button for which.
	MouseDown

	// MouseUp happens when a mouse button is released. See Button for which.
	MouseUp

	// MouseDrag is sent when the mouse is moving and there
	// is a button down. Prev holds the previous position
	// and Start the position where the button was first pressed.
	MouseDrag

	// Click represents a MouseDown followed by MouseUp in sequence,
	// with the same button. See Button for which.
	Click

	// Scroll is for scroll wheel or other scrolling events (gestures).
	Scroll

	// KeyDown is when a key is pressed down.
	KeyDown

	// KeyUp is when a key is released.
	KeyUp

	// TypesN is the number of event types.
	TypesN
)

var typesNames = [...]string{"UnknownType", "MouseDown", "MouseUp", "MouseDrag", "Click", "Scroll", "KeyDown", "KeyUp"}

// String returns the name of the event type.
func (tp Types) String() string {
	if tp < 0 || tp >= TypesN {
		return "UnknownType"
	}
	return typesNames[tp]
}
