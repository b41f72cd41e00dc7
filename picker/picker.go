// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package picker picks points on the surfaces of a 3D scene
// by casting a ray from the camera through a pointer position.
package picker

import (
	"image"
	"log/slog"
	"time"

	"cogentcore.org/xyznav/events"
	"cogentcore.org/xyznav/math32"
	"cogentcore.org/xyznav/xyz"
)

// FallbackNormal is reported when the surface normal at a hit is unknown.
var FallbackNormal = math32.Vec3(0, 0, 1)

// Result is a picked point on a surface, in world coordinates.
type Result struct {
	Position math32.Vector3
	Normal   math32.Vector3
}

// RayCaster returns the world-space ray through a point in
// normalized device coordinates, such as [xyz.Camera].
type RayCaster interface {
	RayFromNDC(ndc math32.Vector2) math32.Ray
}

// Pick returns the closest surface point on the pickable solids
// under root along the camera ray through ndc, and whether there
// is one. The world matrices under root must be current.
func Pick(ndc math32.Vector2, cam RayCaster, root *xyz.Group) (Result, bool) {
	if root == nil {
		return Result{}, false
	}
	hits := root.RayIntersections(cam.RayFromNDC(ndc))
	if len(hits) == 0 {
		return Result{}, false
	}
	h := hits[0]
	res := Result{Position: h.Point, Normal: FallbackNormal}
	if h.HasNormal {
		res.Normal = h.Normal
	}
	return res, true
}

// Picker picks points in a scene on left clicks while it is active,
// showing a temporary marker at each picked point.
type Picker struct {
	// Scene is the scene to pick in, which sends the click events.
	Scene *xyz.Scene

	// Root is the group to pick within, which defaults to the whole scene.
	Root *xyz.Group

	// MarkerRadius is the radius of the marker sphere.
	MarkerRadius float32 `default:"0.05"`

	// MarkerDuration is how long the marker is shown.
	MarkerDuration time.Duration `default:"3s"`

	active   bool
	listener events.ListenerID
	onPicked []func(res Result)
}

// New returns a new inactive picker for the given scene.
func New(sc *xyz.Scene) *Picker {
	return &Picker{Scene: sc, MarkerRadius: 0.05, MarkerDuration: 3 * time.Second}
}

// Active returns whether picking is on.
func (pk *Picker) Active() bool {
	return pk.active
}

// SetActive turns picking on or off, adding or removing the
// click listener on the scene. It does nothing if already in
// the given state.
func (pk *Picker) SetActive(on bool) {
	if on == pk.active {
		return
	}
	pk.active = on
	if on {
		pk.listener = pk.Scene.Events.Add(events.Click, pk.handleClick)
		return
	}
	pk.Scene.Events.Remove(pk.listener)
	pk.listener = 0
}

// Toggle switches picking on or off, returning the new state.
func (pk *Picker) Toggle() bool {
	pk.SetActive(!pk.active)
	return pk.active
}

// OnPicked adds a function called with each picked point.
func (pk *Picker) OnPicked(fun func(res Result)) {
	pk.onPicked = append(pk.onPicked, fun)
}

func (pk *Picker) handleClick(e events.Event) {
	if me, ok := e.(*events.Mouse); ok && me.Button != events.Left {
		return
	}
	e.SetHandled()
	now := pk.Scene.FrameTime
	if now.IsZero() {
		now = e.Time()
	}
	pk.PickAt(e.Pos(), now)
}

// PickAt picks at the given pixel position in the scene. If there is
// a hit, it adds a marker that expires MarkerDuration after now and
// calls the OnPicked functions.
func (pk *Picker) PickAt(pos image.Point, now time.Time) (Result, bool) {
	root := pk.Root
	if root == nil {
		root = &pk.Scene.Group
	}
	res, ok := Pick(pk.Scene.NDC(pos), &pk.Scene.Camera, root)
	if !ok {
		slog.Debug("nothing to pick", "pos", pos)
		return res, false
	}
	slog.Info("picked", "position", res.Position, "normal", res.Normal)
	pk.Scene.AddMarker(res.Position, pk.MarkerRadius, pk.MarkerDuration, now)
	for _, fun := range pk.onPicked {
		fun(res)
	}
	return res, true
}
