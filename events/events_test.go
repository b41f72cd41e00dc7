// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"image"
	"sync"
	"testing"

	"cogentcore.org/xyznav/events/key"
	"cogentcore.org/xyznav/math32"
	"github.com/stretchr/testify/assert"
)

func TestListeners(t *testing.T) {
	var ls Listeners
	var calls []string
	ls.Add(Click, func(ev Event) { calls = append(calls, "first") })
	id := ls.Add(Click, func(ev Event) { calls = append(calls, "second") })
	ls.Add(KeyDown, func(ev Event) { calls = append(calls, "key") })
	assert.Equal(t, 2, ls.Len(Click))

	ls.Call(NewClick(image.Pt(1, 2), 0))
	assert.Equal(t, []string{"second", "first"}, calls)

	calls = nil
	assert.True(t, ls.Remove(id))
	assert.False(t, ls.Remove(id))
	assert.Equal(t, 1, ls.Len(Click))
	ls.Call(NewClick(image.Pt(1, 2), 0))
	assert.Equal(t, []string{"first"}, calls)

	// handled events stop propagation
	calls = nil
	ls.Add(Click, func(ev Event) {
		calls = append(calls, "handler")
		ev.SetHandled()
	})
	ev := NewClick(image.Pt(1, 2), 0)
	ls.Call(ev)
	assert.Equal(t, []string{"handler"}, calls)
	assert.True(t, ev.IsHandled())

	calls = nil
	ls.Call(ev)
	assert.Nil(t, calls)
}

func TestListenersRemoveDuringCall(t *testing.T) {
	var ls Listeners
	n := 0
	var id ListenerID
	ls.Add(Click, func(ev Event) { n++ })
	id = ls.Add(Click, func(ev Event) {
		n++
		ls.Remove(id)
	})
	ls.Call(NewClick(image.Point{}, 0))
	assert.Equal(t, 2, n)
	ls.Call(NewClick(image.Point{}, 0))
	assert.Equal(t, 3, n)
}

func TestEvents(t *testing.T) {
	k := NewKey(KeyDown, "W", key.Shift)
	assert.Equal(t, KeyDown, k.Type())
	assert.True(t, k.HasAnyModifier(key.Shift))
	assert.False(t, k.Time().IsZero())
	assert.Equal(t, `KeyDown{Code: "W", Mods: Shift}`, k.String())

	d := NewMouseDrag(Left, image.Pt(10, 5), image.Pt(4, 7), image.Pt(0, 0), 0)
	assert.Equal(t, image.Pt(6, -2), d.PrevDelta())
	assert.Equal(t, MouseDrag, d.Type())
	assert.Equal(t, image.Pt(10, 5), d.Pos())

	s := NewScroll(image.Pt(3, 3), math32.Vec2(0, 120), 0)
	assert.Equal(t, Scroll, s.Type())
	assert.Equal(t, float32(120), s.Delta.Y)

	assert.Equal(t, "Click", Click.String())
	assert.Equal(t, "UnknownType", Types(99).String())
}

func TestQueue(t *testing.T) {
	var q Queue
	q.Init()
	assert.Nil(t, q.NextEvent())

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				q.Send(NewKey(KeyDown, "w", 0))
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, uint64(100), q.Len())

	n := 0
	q.Drain(func(ev Event) { n++ })
	assert.Equal(t, 100, n)
	assert.Equal(t, uint64(0), q.Len())

	q.Send(NewKey(KeyDown, "a", 0))
	q.Send(NewKey(KeyUp, "a", 0))
	assert.Equal(t, KeyDown, q.NextEvent().Type())
	assert.Equal(t, KeyUp, q.NextEvent().Type())
	assert.Nil(t, q.NextEvent())
}
