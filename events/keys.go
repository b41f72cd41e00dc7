// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"

	"cogentcore.org/xyznav/events/key"
)

// Key is a low-level keyboard event for the KeyDown and KeyUp types.
type Key struct {
	Base

	// Code is the name of the physical key as reported by the host,
	// such as "w", "W", "Shift" or "Escape".
	Code string
}

// NewKey returns a new key event of the given type for the given key code.
func NewKey(typ Types, code string, mods key.Modifiers) *Key {
	ev := &Key{Code: code}
	ev.Init(typ)
	ev.Mods = mods
	return ev
}

func (ev *Key) String() string {
	return fmt.Sprintf("%v{Code: %q, Mods: %v}", ev.Type(), ev.Code, ev.Mods)
}

// Chord returns the key code prefixed by any held modifiers,
// as in "Shift+UpArrow".
func (ev *Key) Chord() string {
	if ev.Mods == 0 {
		return ev.Code
	}
	return ev.Mods.String() + "+" + ev.Code
}
