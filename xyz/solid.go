// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"

	"cogentcore.org/xyznav/math32"
)

// Solid represents an individual 3D solid element.
// It has its own unique spatial transforms and a [Mesh] defining its shape.
type Solid struct {
	NodeBase

	// Mesh defines the shape of the solid.
	Mesh Mesh `set:"-"`

	// DoubleSided solids can be picked from both sides of each face.
	// Otherwise faces pointing away from the ray are skipped.
	DoubleSided bool
}

// NewSolid adds a new solid with the given name and mesh to the given parent.
func NewSolid(parent *Group, name string, ms Mesh) *Solid {
	sld := &Solid{Mesh: ms}
	sld.Name = name
	sld.Pose.Defaults()
	if parent != nil {
		parent.Add(sld)
	}
	return sld
}

func (sld *Solid) IsSolid() bool {
	return true
}

func (sld *Solid) AsSolid() *Solid {
	return sld
}

// SetMeshName sets mesh to given mesh name, from the given scene.
func (sld *Solid) SetMeshName(sc *Scene, meshName string) error {
	if meshName == "" {
		return nil
	}
	ms, err := sc.MeshByName(meshName)
	if err != nil {
		return err
	}
	sld.Mesh = ms
	return nil
}

// Validate checks that solid has a valid mesh
func (sld *Solid) Validate() error {
	if sld.Mesh == nil {
		return fmt.Errorf("xyz.Solid: %q Mesh is nil", sld.Name)
	}
	return sld.Mesh.AsMeshBase().Validate()
}

func (sld *Solid) UpdateWorld(parWorld *math32.Matrix4) {
	sld.Pose.UpdateMatrix()
	sld.Pose.UpdateWorldMatrix(parWorld)
	if sld.Mesh == nil {
		sld.WorldBBox.SetEmpty()
		return
	}
	sld.WorldBBox = sld.Mesh.AsMeshBase().BBox.MulMatrix4(&sld.Pose.WorldMatrix)
}

// test for impl
var _ Node = &Solid{}
