// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gallery places flat images on the surfaces of a 3D model,
// at points authored with the coordinate picker.
package gallery

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"cogentcore.org/xyznav/math32"
	"cogentcore.org/xyznav/xyz"
	"gopkg.in/yaml.v3"
)

// DefaultOffset is the distance a placement is moved off
// the surface along its normal, so it does not clip into it.
const DefaultOffset = 0.02

// Placement is an image shown on a surface.
type Placement struct {
	// Position is the point on the surface, in world coordinates.
	Position math32.Vector3

	// Normal is the direction the image faces.
	Normal math32.Vector3

	// ImageURL is the location of the image.
	ImageURL string

	// Title is shown with the image.
	Title string
}

// Pose returns the display transform for the placement: moved by
// offset times the normal as given, so longer normals stand further
// off the surface, and rotated so that +Z faces along the normal.
// A zero normal faces +Z.
func (pl *Placement) Pose(offset float32) xyz.Pose {
	front := math32.Vec3(0, 0, 1)
	n := pl.Normal.Normal()
	if n.IsNil() {
		n = front
	}
	var ps xyz.Pose
	ps.Defaults()
	ps.Pos = pl.Position.Add(pl.Normal.MulScalar(offset))
	ps.Quat.SetFromUnitVectors(front, n)
	ps.UpdateMatrix()
	return ps
}

// DefaultPlacements returns the standard set of placements around the model.
func DefaultPlacements() []Placement {
	return []Placement{
		{math32.Vec3(0, 0, 1), math32.Vec3(0, 0, -1), "/assets/gallery/images/2.png", "Center"},
		{math32.Vec3(3, 1, 3), math32.Vec3(-1, 0, -1), "/assets/gallery/images/1.png", "Right"},
		{math32.Vec3(-3, 1, 3), math32.Vec3(1, 0, -1), "/assets/gallery/images/2.png", "Left"},
		{math32.Vec3(0, 4, 0), math32.Vec3(0, -1, 0), "/assets/gallery/images/1.png", "Top"},
		{math32.Vec3(0, -4, 0), math32.Vec3(0, 1, 0), "/assets/gallery/images/2.png", "Bottom"},
		{math32.Vec3(10, 10, -10), math32.Vec3(-0.5, -0.5, 0.5), "/assets/gallery/images/2.png", "Far away"},
	}
}

// FormatPick formats a picked point as the position and normal
// fields of a placement, with 3 decimals.
func FormatPick(pos, normal math32.Vector3) string {
	return fmt.Sprintf("position: [%.3f, %.3f, %.3f]\nnormal: [%.3f, %.3f, %.3f]\n",
		pos.X, pos.Y, pos.Z, normal.X, normal.Y, normal.Z)
}

// placementFile is the file format of a [Placement].
type placementFile struct {
	Position [3]float32 `yaml:"position"`
	Normal   [3]float32 `yaml:"normal"`
	ImageURL string     `yaml:"image_url"`
	Title    string     `yaml:"title"`
}

// Load reads the placements file of the given name.
func Load(filename string) ([]Placement, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	pls, err := Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("gallery: %s: %w", filename, err)
	}
	return pls, nil
}

// Decode decodes a YAML list of placements from the given reader.
// Every placement must have a non-zero normal.
func Decode(r io.Reader) ([]Placement, error) {
	var pfs []placementFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&pfs); err != nil && err != io.EOF {
		return nil, err
	}
	pls := make([]Placement, len(pfs))
	var errs []error
	for i, pf := range pfs {
		pl := Placement{
			Position: math32.Vec3(pf.Position[0], pf.Position[1], pf.Position[2]),
			Normal:   math32.Vec3(pf.Normal[0], pf.Normal[1], pf.Normal[2]),
			ImageURL: pf.ImageURL,
			Title:    pf.Title,
		}
		if pl.Normal.IsNil() {
			errs = append(errs, fmt.Errorf("placement %d %q: zero normal", i, pl.Title))
		}
		pls[i] = pl
	}
	return pls, errors.Join(errs...)
}

// Encode writes the placements as YAML.
func Encode(w io.Writer, pls []Placement) error {
	pfs := make([]placementFile, len(pls))
	for i, pl := range pls {
		pfs[i] = placementFile{
			Position: [3]float32{pl.Position.X, pl.Position.Y, pl.Position.Z},
			Normal:   [3]float32{pl.Normal.X, pl.Normal.Y, pl.Normal.Z},
			ImageURL: pl.ImageURL,
			Title:    pl.Title,
		}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(pfs); err != nil {
		return err
	}
	return enc.Close()
}

// Gallery holds the current placements, which may be replaced
// from another goroutine while being read.
type Gallery struct {
	mu         sync.RWMutex
	placements []Placement
}

// New returns a gallery with the given placements.
func New(pls []Placement) *Gallery {
	return &Gallery{placements: pls}
}

// Placements returns the current placements.
func (gl *Gallery) Placements() []Placement {
	gl.mu.RLock()
	defer gl.mu.RUnlock()
	return gl.placements
}

// SetPlacements replaces the placements.
func (gl *Gallery) SetPlacements(pls []Placement) {
	gl.mu.Lock()
	gl.placements = pls
	gl.mu.Unlock()
}
