// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "sync/atomic"

// ListenerID identifies a registered listener so it can be removed.
// The zero value is never a valid id.
type ListenerID uint64

var lastListenerID atomic.Uint64

type listener struct {
	id  ListenerID
	fun func(ev Event)
}

// Listeners registers lists of event listener functions
// to receive different event types.
// Listeners are closure methods with all context captured.
type Listeners map[Types][]listener

// Init ensures that map is constructed
func (ls *Listeners) Init() {
	if *ls != nil {
		return
	}
	*ls = make(map[Types][]listener)
}

// Add adds a function for given type, returning an id that
// can be passed to [Listeners.Remove].
func (ls *Listeners) Add(typ Types, fun func(Event)) ListenerID {
	ls.Init()
	id := ListenerID(lastListenerID.Add(1))
	(*ls)[typ] = append((*ls)[typ], listener{id: id, fun: fun})
	return id
}

// Remove removes the listener with the given id,
// returning whether it was found.
func (ls *Listeners) Remove(id ListenerID) bool {
	for typ, ets := range *ls {
		for i, l := range ets {
			if l.id != id {
				continue
			}
			nets := make([]listener, 0, len(ets)-1)
			nets = append(nets, ets[:i]...)
			(*ls)[typ] = append(nets, ets[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of listeners registered for the given type.
func (ls *Listeners) Len(typ Types) int {
	return len((*ls)[typ])
}

// Call calls all functions for given event.
// It goes in _reverse_ order so the last functions added are the first called
// and it stops when the event is marked as Handled.  This allows for a natural
// and optional override behavior, as compared to requiring more complex
// priority-based mechanisms.
func (ls *Listeners) Call(ev Event) {
	if ev.IsHandled() {
		return
	}
	ets := (*ls)[ev.Type()]
	for i := len(ets) - 1; i >= 0; i-- {
		ets[i].fun(ev)
		if ev.IsHandled() {
			break
		}
	}
}
