// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package viewer puts together a 3D scene with keyboard and mouse
// navigation, coordinate picking, and a gallery of placements.
package viewer

import (
	"image"
	"log/slog"
	"time"

	"cogentcore.org/xyznav/config"
	"cogentcore.org/xyznav/gallery"
	"cogentcore.org/xyznav/math32"
	"cogentcore.org/xyznav/nav"
	"cogentcore.org/xyznav/picker"
	"cogentcore.org/xyznav/xyz"
	"cogentcore.org/xyznav/xyz/xyzfile"
)

// Viewer is an interactive 3D model viewer.
type Viewer struct {
	Config Config

	// Scene is the scene being viewed.
	Scene *xyz.Scene

	// Model is the group holding the loaded model.
	Model *xyz.Group

	// Input is the keyboard navigation state.
	Input nav.InputState

	// Rig moves the camera from the Input.
	Rig *nav.Rig

	// Orbit moves the camera from the mouse.
	Orbit *xyz.OrbitControls

	// Picker picks coordinates on the model while active.
	Picker *picker.Picker

	// Gallery has the image placements.
	Gallery *gallery.Gallery
}

// New returns a new viewer with the given config, which is
// filled from its defaults if nil.
func New(cfg *Config) *Viewer {
	if cfg == nil {
		cfg = &Config{}
		config.SetFromDefaults(cfg)
	}
	v := &Viewer{Config: *cfg}
	cfg = &v.Config
	sc := xyz.NewScene("viewer")
	v.Scene = sc
	sc.SetSize(image.Pt(cfg.Width, cfg.Height))

	cm := &sc.Camera
	cm.CamMu.Lock()
	cm.FOV = cfg.Camera.FOV
	cm.Near = cfg.Camera.Near
	cm.Far = cfg.Camera.Far
	cm.Pose.Pos = cfg.Camera.Position
	cm.CamMu.Unlock()
	cm.LookAt(cfg.Camera.Target, math32.Vec3(0, 1, 0))
	sc.SaveCamera("default")

	v.Model = xyz.NewGroup(&sc.Group, "model")
	v.Model.Pose.Pos = cfg.ModelPosition
	v.Model.Pose.Scale = math32.Vector3Scalar(cfg.ModelScale)

	oc := xyz.NewOrbitControls(cm)
	oc.ZoomSpeed = cfg.Orbit.ZoomSpeed
	oc.PanSpeed = cfg.Orbit.PanSpeed
	oc.RotateSpeed = cfg.Orbit.RotateSpeed
	oc.MinDistance = cfg.Orbit.MinDistance
	oc.MaxDistance = cfg.Orbit.MaxDistance
	oc.MaxPolarAngle = math32.DegToRad(cfg.Orbit.MaxPolarAngle)
	oc.Listen(sc)
	v.Orbit = oc

	v.Input.Listen(&sc.Events)
	v.Rig = nav.NewRig(&v.Input, nav.NewOrbitBridge(oc))
	v.Rig.Speeds = cfg.Speeds

	v.Picker = picker.New(sc)
	v.Picker.Root = v.Model
	v.Picker.MarkerRadius = cfg.Marker.Radius
	v.Picker.MarkerDuration = cfg.Marker.Duration
	v.Picker.OnPicked(func(res picker.Result) {
		slog.Info("picked coordinates\n" + gallery.FormatPick(res.Position, res.Normal))
	})

	v.Gallery = gallery.New(gallery.DefaultPlacements())

	// navigation keys handled by the scene move the camera target
	// directly, so the orbit follows it before the rig and orbit run.
	sc.AddFrameHook(func(now time.Time) {
		v.syncOrbitTarget()
	})
	// the rig runs first, so that the orbit sees its target
	sc.AddFrameHook(func(now time.Time) {
		v.Rig.Update(cm)
	})
	sc.AddFrameHook(func(now time.Time) {
		v.Orbit.Update()
	})
	return v
}

// syncOrbitTarget sets the orbit target to the camera target
// if something other than the orbit has changed it.
func (v *Viewer) syncOrbitTarget() {
	cm := &v.Scene.Camera
	cm.CamMu.RLock()
	target := cm.Target
	cm.CamMu.RUnlock()
	if target != v.Orbit.Target {
		v.Orbit.SetTarget(target)
	}
}

// LoadModel loads the model from the given scene file,
// replacing any current model.
func (v *Viewer) LoadModel(filename string) error {
	f, err := xyzfile.Load(filename)
	if err != nil {
		return err
	}
	v.Model.DeleteChildren()
	if err := f.ApplyTo(v.Scene, v.Model); err != nil {
		return err
	}
	if f.Camera != nil {
		v.Orbit.SetTarget(v.Scene.Camera.Target)
		v.Scene.SaveCamera("default")
	}
	mi := v.ModelInfo()
	slog.Info("loaded model", "file", filename, "bounds", mi.Bounds, "size", mi.Size, "solids", mi.Solids)
	return nil
}

// ModelInfo returns the geometry summary of the model.
func (v *Viewer) ModelInfo() xyz.ModelInfo {
	v.Scene.UpdateWorldAll()
	return v.Model.Info()
}

// Frame advances the viewer by one frame.
func (v *Viewer) Frame(now time.Time) {
	v.Scene.RenderFrame(now)
}

// TogglePickerMode switches coordinate picking on or off,
// returning the new state.
func (v *Viewer) TogglePickerMode() bool {
	on := v.Picker.Toggle()
	slog.Debug("picker mode", "active", on)
	return on
}

// PickerActive returns whether coordinate picking is on.
func (v *Viewer) PickerActive() bool {
	return v.Picker.Active()
}

// OnCoordinatePicked adds a function called with each picked point,
// at most once per click while picking is on.
func (v *Viewer) OnCoordinatePicked(fun func(res picker.Result)) {
	v.Picker.OnPicked(fun)
}

// VisiblePlacements returns the placements to show, which are
// hidden while picking so they do not get in the way.
func (v *Viewer) VisiblePlacements() []gallery.Placement {
	if v.PickerActive() {
		return nil
	}
	return v.Gallery.Placements()
}

// PlacementPoses returns the display transforms of the visible placements.
func (v *Viewer) PlacementPoses() []xyz.Pose {
	pls := v.VisiblePlacements()
	poses := make([]xyz.Pose, len(pls))
	for i := range pls {
		poses[i] = pls[i].Pose(v.Config.PlacementOffset)
	}
	return poses
}
