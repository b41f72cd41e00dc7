// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package key defines keyboard modifier flags for input events.
package key

import "strings"

// Modifiers are used as bitflags representing a set of modifier keys.
type Modifiers int64

const (
	// Shift is the Shift key.
	Shift Modifiers = 1 << iota

	// Control is the Control (Ctrl) key.
	Control

	// Alt is the Alt key (Option on Mac).
	Alt

	// Meta is the system meta key (Command on Mac, Windows key on Windows).
	Meta
)

var modifierNames = []struct {
	mod  Modifiers
	name string
}{{Shift, "Shift"}, {Control, "Control"}, {Alt, "Alt"}, {Meta, "Meta"}}

// HasFlag returns whether the given modifier is set.
func (mods Modifiers) HasFlag(mod Modifiers) bool {
	return mods&mod != 0
}

// HasAny returns whether any of the given modifiers are set.
func (mods Modifiers) HasAny(ms ...Modifiers) bool {
	for _, m := range ms {
		if mods.HasFlag(m) {
			return true
		}
	}
	return false
}

// String returns the set modifiers joined with "+", as in "Shift+Control".
func (mods Modifiers) String() string {
	var nms []string
	for _, mn := range modifierNames {
		if mods.HasFlag(mn.mod) {
			nms = append(nms, mn.name)
		}
	}
	return strings.Join(nms, "+")
}

// ModifierFromName returns the modifier for the given key name,
// case insensitively, and whether it is a modifier key at all.
func ModifierFromName(name string) (Modifiers, bool) {
	for _, mn := range modifierNames {
		if strings.EqualFold(mn.name, name) {
			return mn.mod, true
		}
	}
	switch strings.ToLower(name) {
	case "ctrl":
		return Control, true
	case "option":
		return Alt, true
	case "command", "cmd":
		return Meta, true
	}
	return 0, false
}
