// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"image"
	"time"

	"cogentcore.org/xyznav/events/key"
)

// Event is the interface for all input events.
type Event interface {
	// Type returns the type of event.
	Type() Types

	// Time returns the time at which the event was generated.
	Time() time.Time

	// Pos returns the position of the event in scene pixels,
	// for events that have one.
	Pos() image.Point

	// Modifiers returns the modifier keys held during the event.
	Modifiers() key.Modifiers

	// IsHandled returns whether this event has already been processed.
	IsHandled() bool

	// SetHandled marks the event as handled, so that
	// no further listeners receive it.
	SetHandled()
}

// Base is the base type for events.
// It provides the common fields and methods of [Event].
type Base struct {

	// Typ is the type of event
	Typ Types

	// Handled records whether the event has been processed
	Handled bool

	// GenTime records the time when the event was first generated
	GenTime time.Time

	// Where is the event location in scene pixels
	Where image.Point

	// Mods are the modifier keys present at time of event
	Mods key.Modifiers
}

// Init sets the type and generation time of the event.
func (ev *Base) Init(typ Types) {
	ev.Typ = typ
	ev.GenTime = time.Now()
}

func (ev *Base) Type() Types {
	return ev.Typ
}

func (ev *Base) Time() time.Time {
	return ev.GenTime
}

func (ev *Base) Pos() image.Point {
	return ev.Where
}

func (ev *Base) Modifiers() key.Modifiers {
	return ev.Mods
}

func (ev *Base) IsHandled() bool {
	return ev.Handled
}

func (ev *Base) SetHandled() {
	ev.Handled = true
}

// HasAnyModifier returns whether any of the given modifiers were held.
func (ev *Base) HasAnyModifier(mods ...key.Modifiers) bool {
	return ev.Mods.HasAny(mods...)
}
