// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xyzfile loads [xyz.Scene] content from YAML scene files,
// which list meshes by shape parameters and a tree of objects
// that use them.
package xyzfile

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"cogentcore.org/xyznav/math32"
	"cogentcore.org/xyznav/xyz"
	"gopkg.in/yaml.v3"
)

// File is the top-level structure of a scene file.
type File struct {
	Meshes  []Mesh   `yaml:"meshes"`
	Objects []Object `yaml:"objects"`
	Camera  *Camera  `yaml:"camera"`
}

// Mesh describes a mesh shape.
type Mesh struct {
	Name string `yaml:"name"`

	// Type is plane, box or sphere.
	Type string `yaml:"type"`

	// Size is [width, height] for a plane and [x, y, z] for a box.
	Size []float32 `yaml:"size"`

	// Normal is the normal axis of a plane: x, y (default) or z.
	Normal string `yaml:"normal"`

	// Negative makes a plane face the negative normal axis.
	Negative bool `yaml:"negative"`

	// Offset of a plane along its normal.
	Offset float32 `yaml:"offset"`

	Radius   float32 `yaml:"radius"`
	Segments int     `yaml:"segments"`
}

// Rotation is an axis and angle in degrees.
type Rotation struct {
	Axis  [3]float32 `yaml:"axis"`
	Angle float32    `yaml:"angle"`
}

// Object is a group or, if it names a mesh, a solid.
type Object struct {
	Name        string      `yaml:"name"`
	Mesh        string      `yaml:"mesh"`
	Position    [3]float32  `yaml:"position"`
	Scale       *[3]float32 `yaml:"scale"`
	Rotation    *Rotation   `yaml:"rotation"`
	DoubleSided bool        `yaml:"double_sided"`
	Invisible   bool        `yaml:"invisible"`
	NoPick      bool        `yaml:"no_pick"`
	Children    []Object    `yaml:"children"`
}

// Camera sets the scene camera.
type Camera struct {
	Position [3]float32  `yaml:"position"`
	Target   *[3]float32 `yaml:"target"`
	FOV      float32     `yaml:"fov"`
	Near     float32     `yaml:"near"`
	Far      float32     `yaml:"far"`
}

func vec3(v [3]float32) math32.Vector3 {
	return math32.Vec3(v[0], v[1], v[2])
}

// Open loads the scene file of the given name into the given scene.
func Open(sc *xyz.Scene, filename string) error {
	f, err := Load(filename)
	if err != nil {
		return err
	}
	if err := f.Apply(sc); err != nil {
		return fmt.Errorf("xyzfile: %s: %w", filename, err)
	}
	return nil
}

// Load decodes the scene file of the given name.
func Load(filename string) (*File, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	f, err := Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("xyzfile: %s: %w", filename, err)
	}
	return f, nil
}

// Read loads scene file data from the given reader into the given scene.
// Unknown fields are an error.
func Read(sc *xyz.Scene, r io.Reader) error {
	f, err := Decode(r)
	if err != nil {
		return err
	}
	return f.Apply(sc)
}

// Decode decodes a [File] from the given reader.
func Decode(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	f := &File{}
	if err := dec.Decode(f); err != nil && err != io.EOF {
		return nil, err
	}
	return f, nil
}

// Apply adds the meshes and objects to the given scene,
// and sets the camera if specified.
func (f *File) Apply(sc *xyz.Scene) error {
	return f.ApplyTo(sc, &sc.Group)
}

// ApplyTo adds the meshes to the given scene and the objects
// to the given parent group within it, and sets the camera
// if specified.
func (f *File) ApplyTo(sc *xyz.Scene, parent *xyz.Group) error {
	for i := range f.Meshes {
		ms, err := f.Meshes[i].New()
		if err != nil {
			return err
		}
		sc.AddMeshUnique(ms)
	}
	for i := range f.Objects {
		if err := f.Objects[i].add(sc, parent); err != nil {
			return err
		}
	}
	if err := sc.Validate(); err != nil {
		return err
	}
	if cm := f.Camera; cm != nil {
		cam := &sc.Camera
		cam.CamMu.Lock()
		if cm.FOV > 0 {
			cam.FOV = cm.FOV
		}
		if cm.Near > 0 {
			cam.Near = cm.Near
		}
		if cm.Far > 0 {
			cam.Far = cm.Far
		}
		cam.Pose.Pos = vec3(cm.Position)
		target := cam.Target
		cam.CamMu.Unlock()
		if cm.Target != nil {
			target = vec3(*cm.Target)
		}
		cam.LookAt(target, math32.Vec3(0, 1, 0))
	}
	sc.UpdateWorldAll()
	return nil
}

// New returns a new mesh from the description.
func (m *Mesh) New() (xyz.Mesh, error) {
	size := func(n int, def float32) []float32 {
		sz := make([]float32, n)
		for i := range sz {
			sz[i] = def
			if i < len(m.Size) {
				sz[i] = m.Size[i]
			}
		}
		return sz
	}
	switch strings.ToLower(m.Type) {
	case "plane":
		pl := &xyz.Plane{NormNeg: m.Negative, Offset: m.Offset}
		pl.Name = m.Name
		sz := size(2, 1)
		pl.Size = math32.Vec2(sz[0], sz[1])
		switch strings.ToLower(m.Normal) {
		case "x":
			pl.NormAxis = math32.X
		case "", "y":
			pl.NormAxis = math32.Y
		case "z":
			pl.NormAxis = math32.Z
		default:
			return nil, fmt.Errorf("mesh %q: unknown normal axis %q", m.Name, m.Normal)
		}
		return pl, nil
	case "box":
		bx := &xyz.Box{}
		bx.Name = m.Name
		sz := size(3, 1)
		bx.Size = math32.Vec3(sz[0], sz[1], sz[2])
		return bx, nil
	case "sphere":
		sp := &xyz.Sphere{Radius: m.Radius, WidthSegs: m.Segments, HeightSegs: m.Segments}
		sp.Name = m.Name
		if sp.Radius <= 0 {
			sp.Radius = 1
		}
		if m.Segments <= 0 {
			sp.WidthSegs, sp.HeightSegs = 32, 32
		}
		return sp, nil
	}
	return nil, fmt.Errorf("mesh %q: unknown type %q", m.Name, m.Type)
}

func (o *Object) add(sc *xyz.Scene, parent *xyz.Group) error {
	var nb *xyz.NodeBase
	var gp *xyz.Group
	if o.Mesh != "" {
		ms, err := sc.MeshByName(o.Mesh)
		if err != nil {
			return fmt.Errorf("object %q: %w", o.Name, err)
		}
		if len(o.Children) > 0 {
			return fmt.Errorf("object %q: a solid cannot have children", o.Name)
		}
		sld := xyz.NewSolid(parent, o.Name, ms)
		sld.DoubleSided = o.DoubleSided
		nb = sld.AsNodeBase()
	} else {
		gp = xyz.NewGroup(parent, o.Name)
		nb = gp.AsNodeBase()
	}
	nb.Pose.Pos = vec3(o.Position)
	if o.Scale != nil {
		nb.Pose.Scale = vec3(*o.Scale)
	}
	if r := o.Rotation; r != nil {
		nb.SetAxisRotation(r.Axis[0], r.Axis[1], r.Axis[2], r.Angle)
	}
	nb.Invisible = o.Invisible
	nb.NoPick = o.NoPick
	for i := range o.Children {
		if err := o.Children[i].add(sc, gp); err != nil {
			return err
		}
	}
	return nil
}
