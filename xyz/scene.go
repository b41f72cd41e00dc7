// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	"cogentcore.org/xyznav/base/errors"
	"cogentcore.org/xyznav/events"
	"cogentcore.org/xyznav/math32"
	"github.com/jinzhu/copier"
)

// Scene is the overall scenegraph containing nodes as children.
// It is driven by its host through [Scene.RenderFrame], which processes
// queued events, runs the frame hooks, and updates all the matrices
// used for picking.
//
// There is default navigation event processing (disabled by setting NoNav)
// where arrow keys do Orbit, Pan, PanAxis with key modifiers.
// Spacebar or Escape restores original "default" camera, and numbers save (1st time)
// or restore (subsequently) camera views (Control = always save)
type Scene struct {
	Group

	// Size is the size of the view in pixels.
	Size image.Point

	// camera determines view onto scene
	Camera Camera `set:"-"`

	// meshes -- holds all the mesh data
	Meshes map[string]Mesh `set:"-"`

	// don't activate the standard navigation keyboard event processing to move around the camera in the scene
	NoNav bool

	// saved cameras -- can Save and Set these to view the scene from different angles
	SavedCams map[string]*Camera `set:"-"`

	// Events has the listeners for events sent to the scene,
	// called in reverse order of addition.
	Events events.Listeners `set:"-"`

	// Frame is the number of frames rendered so far.
	Frame int `set:"-"`

	// FrameTime is the time of the frame being rendered, or
	// the last one rendered. Timed effects such as markers use it.
	FrameTime time.Time `set:"-"`

	queue      events.Queue
	frameHooks []func(now time.Time)
	markers    *Group
	expire     map[*Solid]time.Time
}

// Defaults sets default scene params
func (sc *Scene) Defaults() {
	sc.Pose.Defaults()
	sc.Camera.Defaults()
	if sc.Size == (image.Point{}) {
		sc.SetSize(image.Pt(1280, 720))
	}
}

// NewScene creates a new Scene to contain a 3D scenegraph.
func NewScene(name string) *Scene {
	sc := &Scene{}
	sc.Name = name
	sc.queue.Init()
	sc.Defaults()
	return sc
}

// SetSize sets the size of the view in pixels,
// updating the camera aspect ratio.
func (sc *Scene) SetSize(sz image.Point) *Scene {
	if sz.X <= 0 || sz.Y <= 0 {
		return sc
	}
	sc.Size = sz
	sc.Camera.CamMu.Lock()
	sc.Camera.Aspect = float32(sz.X) / float32(sz.Y)
	sc.Camera.CamMu.Unlock()
	sc.Camera.UpdateMatrix()
	return sc
}

// NDC returns the normalized device coordinates of the given
// pixel position in the view, with Y pointing up.
func (sc *Scene) NDC(pos image.Point) math32.Vector2 {
	return math32.Vec2(2*float32(pos.X)/float32(sc.Size.X)-1, 1-2*float32(pos.Y)/float32(sc.Size.Y))
}

// Validate checks all the solids have valid meshes.
func (sc *Scene) Validate() error {
	var errs []error
	sc.WalkDown(func(n Node) bool {
		if sld := n.AsSolid(); sld != nil {
			if err := sld.Validate(); err != nil {
				errs = append(errs, err)
			}
		}
		return Continue
	})
	return errors.Join(errs...)
}

// UpdateWorldAll updates all the world matrices and bounding boxes,
// and the camera matrices.
func (sc *Scene) UpdateWorldAll() {
	sc.UpdateWorld(nil)
	sc.Camera.UpdateMatrix()
}

////////////////////////////////////////////////////////////////////////
// Frames and events

// AddFrameHook adds a function that is called on every frame,
// after queued events are processed. Hooks are called in the
// order they are added.
func (sc *Scene) AddFrameHook(fun func(now time.Time)) {
	sc.frameHooks = append(sc.frameHooks, fun)
}

// Send queues the given event for processing on the next frame.
// It is safe to call from any goroutine.
func (sc *Scene) Send(ev events.Event) {
	sc.queue.Send(ev)
}

// RenderFrame advances the scene by one frame: it handles the
// queued events, runs the frame hooks, removes expired markers,
// and updates all the world and camera matrices.
func (sc *Scene) RenderFrame(now time.Time) {
	sc.FrameTime = now
	sc.queue.Drain(sc.HandleEvent)
	for _, fun := range sc.frameHooks {
		fun(now)
	}
	sc.expireMarkers(now)
	sc.UpdateWorldAll()
	sc.Frame++
}

// HandleEvent sends the given event to the scene listeners,
// and then to the standard navigation if not handled.
// World matrices are updated first so that pointer
// events see the current geometry.
func (sc *Scene) HandleEvent(ev events.Event) {
	sc.UpdateWorldAll()
	sc.Events.Call(ev)
	if ev.IsHandled() || sc.NoNav {
		return
	}
	if kt, ok := ev.(*events.Key); ok && kt.Type() == events.KeyDown {
		sc.NavKeyEvents(kt)
	}
}

////////////////////////////////////////////////////////////////////////
// Cameras

// SaveCamera saves the current camera with given name -- can be restored later with SetCamera.
// "default" is a special name that is automatically saved on first render, and
// restored with the spacebar under default NavEvents.
// Numbers are saved using the number keys.
func (sc *Scene) SaveCamera(name string) {
	if sc.SavedCams == nil {
		sc.SavedCams = make(map[string]*Camera)
	}
	sc.SavedCams[name] = sc.Camera.Copy()
}

// SetCamera sets the current camera to that of given name -- error if not found.
// "default" is a special name that is automatically saved on first render, and
// restored with the spacebar under default NavEvents.
// Numbers are saved using the number keys.
func (sc *Scene) SetCamera(name string) error {
	cam, ok := sc.SavedCams[name]
	if !ok {
		return fmt.Errorf("xyz.Scene: %q saved camera of name: %v not found", sc.Name, name)
	}
	sc.Camera.CamMu.Lock()
	copyCamera(&sc.Camera, cam)
	sc.Camera.CamMu.Unlock()
	sc.Camera.UpdateMatrix()
	return nil
}

// copyCamera deep copies the camera data, skipping the mutex.
func copyCamera(to, from *Camera) {
	errors.Log(copier.CopyWithOption(to, from, copier.Option{DeepCopy: true}))
}

////////////////////////////////////////////////////////////////////////
// Markers

// AddMarker adds a small sphere at the given world position that is
// removed on the first frame at or after now + dur.
// Markers are never picked.
func (sc *Scene) AddMarker(pos math32.Vector3, radius float32, dur time.Duration, now time.Time) *Solid {
	if sc.markers == nil {
		sc.markers = NewGroup(&sc.Group, "markers")
		sc.markers.NoPick = true
		sc.expire = make(map[*Solid]time.Time)
	}
	nm := fmt.Sprintf("marker-%g", radius)
	ms, err := sc.MeshByName(nm)
	if err != nil {
		ms = NewSphere(sc, nm, radius, 16)
	}
	mk := NewSolid(sc.markers, fmt.Sprintf("marker-%d", sc.Frame), ms)
	mk.Pose.Pos = pos
	mk.NoPick = true
	sc.expire[mk] = now.Add(dur)
	slog.Debug("added marker", "pos", pos, "expires", sc.expire[mk])
	return mk
}

// Markers returns the number of markers currently shown.
func (sc *Scene) Markers() int {
	if sc.markers == nil {
		return 0
	}
	return len(sc.markers.Children)
}

func (sc *Scene) expireMarkers(now time.Time) {
	for mk, at := range sc.expire {
		if now.Before(at) {
			continue
		}
		sc.markers.DeleteChild(mk)
		delete(sc.expire, mk)
	}
}
