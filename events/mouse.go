// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"image"

	"cogentcore.org/xyznav/events/key"
	"cogentcore.org/xyznav/math32"
)

// Buttons is a mouse button.
type Buttons int32

const (
	NoButton Buttons = iota
	Left
	Middle
	Right
)

func (bt Buttons) String() string {
	switch bt {
	case Left:
		return "Left"
	case Middle:
		return "Middle"
	case Right:
		return "Right"
	}
	return "NoButton"
}

// Mouse is a basic mouse event for all mouse events except Scroll
type Mouse struct {
	Base

	// Button is the mouse button being pressed or released
	Button Buttons

	// Prev is the previous position for MouseDrag events
	Prev image.Point

	// Start is where the button was first pressed for MouseDrag events
	Start image.Point
}

// NewMouse returns a new mouse event of the given type.
func NewMouse(typ Types, but Buttons, where image.Point, mods key.Modifiers) *Mouse {
	ev := &Mouse{Button: but}
	ev.Init(typ)
	ev.Where = where
	ev.Mods = mods
	return ev
}

func (ev *Mouse) String() string {
	return fmt.Sprintf("%v{Button: %v, Pos: %v, Mods: %v}", ev.Type(), ev.Button, ev.Where, ev.Mods)
}

// NewClick returns a new Click event with the left button.
func NewClick(where image.Point, mods key.Modifiers) *Mouse {
	return NewMouse(Click, Left, where, mods)
}

// NewMouseDrag returns a new MouseDrag event.
func NewMouseDrag(but Buttons, where, prev, start image.Point, mods key.Modifiers) *Mouse {
	ev := NewMouse(MouseDrag, but, where, mods)
	ev.Prev = prev
	ev.Start = start
	return ev
}

// PrevDelta returns the amount moved since the previous position.
func (ev *Mouse) PrevDelta() image.Point {
	return ev.Where.Sub(ev.Prev)
}

// MouseScroll is for mouse scrolling, recording the delta of the scroll
type MouseScroll struct {
	Mouse

	// Delta is the amount of scrolling in each axis, in pixel units.
	// Positive Y scrolls down.
	Delta math32.Vector2
}

func (ev *MouseScroll) String() string {
	return fmt.Sprintf("%v{Delta: %v, Pos: %v, Mods: %v}", ev.Type(), ev.Delta, ev.Where, ev.Mods)
}

// NewScroll returns a new Scroll event.
func NewScroll(where image.Point, delta math32.Vector2, mods key.Modifiers) *MouseScroll {
	ev := &MouseScroll{}
	ev.Init(Scroll)
	ev.Where = where
	ev.Delta = delta
	ev.Mods = mods
	return ev
}
