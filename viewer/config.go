// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewer

import (
	"time"

	"cogentcore.org/xyznav/math32"
	"cogentcore.org/xyznav/nav"
)

// Config has the settings for a [Viewer].
type Config struct {

	// Speeds are the keyboard navigation speeds.
	nav.Speeds

	// Width and Height are the size of the view in pixels.
	Width  int `default:"1280"`
	Height int `default:"720"`

	// Camera has the initial camera settings.
	Camera CameraConfig

	// Orbit has the mouse orbit settings.
	Orbit OrbitConfig

	// Marker has the settings for the marker shown at picked points.
	Marker MarkerConfig

	// ModelScale is the uniform scale applied to the model.
	ModelScale float32 `default:"0.8"`

	// ModelPosition is where the model is placed.
	ModelPosition math32.Vector3 `default:"0 -2 0"`

	// PlacementOffset is the distance gallery images are
	// placed off the surface.
	PlacementOffset float32 `default:"0.02"`
}

// CameraConfig has the initial camera settings.
type CameraConfig struct {
	Position math32.Vector3 `default:"0 0 -5"`
	Target   math32.Vector3 `default:"0 0 0"`

	// FOV is the vertical field of view in degrees.
	FOV  float32 `default:"60"`
	Near float32 `default:"0.1"`
	Far  float32 `default:"10000"`
}

// OrbitConfig has the mouse orbit settings.
type OrbitConfig struct {
	ZoomSpeed   float32 `default:"0.8"`
	PanSpeed    float32 `default:"0.8"`
	RotateSpeed float32 `default:"0.8"`
	MinDistance float32 `default:"0.1"`
	MaxDistance float32 `default:"500"`

	// MaxPolarAngle is the largest angle from straight up, in degrees.
	MaxPolarAngle float32 `default:"180"`
}

// MarkerConfig has the settings for the marker shown at picked points.
type MarkerConfig struct {
	Radius   float32       `default:"0.05"`
	Duration time.Duration `default:"3s"`
}
