// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"

	"cogentcore.org/xyznav/math32"
)

// Mesh parametrizes the mesh-based shape of a [Solid].
// Only indexed triangle meshes are supported.
// The Set method generates the vertex and index data from
// the mesh parameters, and must be called after changing them.
type Mesh interface {
	// AsMeshBase returns the [MeshBase] for this Mesh,
	// which holds the generated triangle data.
	AsMeshBase() *MeshBase

	// Set generates the vertex and index data, and bounding box.
	Set()
}

// MeshBase provides the core implementation of the [Mesh] interface.
type MeshBase struct {
	// Name is the name of the mesh. [Mesh]es are linked to [Solid]s
	// by name so this matters.
	Name string

	// Vertex has the vertex positions, in local coordinates.
	Vertex []math32.Vector3

	// Normal has the optional per-vertex normals. When present, the
	// surface normal at a point is interpolated from them; otherwise
	// the face normal (by counter-clockwise winding) is used.
	Normal []math32.Vector3

	// Index has three vertex indexes per triangle.
	Index []uint32

	// BBox is the bounding box of the vertex positions.
	BBox math32.Box3
}

func (ms *MeshBase) AsMeshBase() *MeshBase {
	return ms
}

// Set for a MeshBase just updates the bounding box,
// as the data is set directly.
func (ms *MeshBase) Set() {
	ms.UpdateBBox()
}

// UpdateBBox updates the bounding box from the vertex positions.
func (ms *MeshBase) UpdateBBox() {
	ms.BBox.SetFromPoints(ms.Vertex)
}

// Reset removes all vertex and index data.
func (ms *MeshBase) Reset() {
	ms.Vertex = ms.Vertex[:0]
	ms.Normal = ms.Normal[:0]
	ms.Index = ms.Index[:0]
}

// NumTriangles returns the number of triangles in the mesh.
func (ms *MeshBase) NumTriangles() int {
	return len(ms.Index) / 3
}

// Triangle returns the vertex indexes of the given triangle.
func (ms *MeshBase) Triangle(i int) (ia, ib, ic uint32) {
	return ms.Index[3*i], ms.Index[3*i+1], ms.Index[3*i+2]
}

// Validate returns an error if any index is out of range or
// the normals do not match the vertexes.
func (ms *MeshBase) Validate() error {
	if len(ms.Index)%3 != 0 {
		return fmt.Errorf("xyz.Mesh %q: number of indexes %d is not a multiple of 3", ms.Name, len(ms.Index))
	}
	if len(ms.Normal) > 0 && len(ms.Normal) != len(ms.Vertex) {
		return fmt.Errorf("xyz.Mesh %q: %d normals for %d vertexes", ms.Name, len(ms.Normal), len(ms.Vertex))
	}
	nv := uint32(len(ms.Vertex))
	for _, ix := range ms.Index {
		if ix >= nv {
			return fmt.Errorf("xyz.Mesh %q: index %d out of range for %d vertexes", ms.Name, ix, nv)
		}
	}
	return nil
}

// AddVertex adds a vertex with the given position and normal,
// returning its index. A zero normal is stored as is: where the
// interpolated vertex normal is zero, picking uses the face normal.
func (ms *MeshBase) AddVertex(pos, norm math32.Vector3) uint32 {
	idx := uint32(len(ms.Vertex))
	ms.Vertex = append(ms.Vertex, pos)
	ms.Normal = append(ms.Normal, norm)
	return idx
}

// AddTriangle adds a triangle with the given vertex indexes,
// ordering them so that its face normal points along facing.
// Degenerate triangles are skipped.
func (ms *MeshBase) AddTriangle(ia, ib, ic uint32, facing math32.Vector3) {
	n := math32.Normal(ms.Vertex[ia], ms.Vertex[ib], ms.Vertex[ic])
	if n.IsNil() {
		return
	}
	if n.Dot(facing) < 0 {
		ib, ic = ic, ib
	}
	ms.Index = append(ms.Index, ia, ib, ic)
}

////////////////////////////////////////////////////////////////////////
// Scene management

// SetMesh sets / updates the given mesh, updating any existing
// mesh of the same name. The mesh data is generated by calling Set.
// See NewX for convenience methods to add specific shapes.
func (sc *Scene) SetMesh(ms Mesh) {
	ms.Set()
	if sc.Meshes == nil {
		sc.Meshes = make(map[string]Mesh)
	}
	sc.Meshes[ms.AsMeshBase().Name] = ms
}

// AddMeshUnique adds given mesh, ensuring that it has
// a unique name if one already exists.
// This is used e.g., in loading external files which may not
// obey this constraint.
func (sc *Scene) AddMeshUnique(ms Mesh) {
	mb := ms.AsMeshBase()
	if _, err := sc.MeshByName(mb.Name); err == nil {
		mb.Name += fmt.Sprintf("_%d", len(sc.Meshes))
	}
	sc.SetMesh(ms)
}

// MeshByName looks for mesh by name, returning error if not found.
func (sc *Scene) MeshByName(nm string) (Mesh, error) {
	ms, ok := sc.Meshes[nm]
	if ok {
		return ms, nil
	}
	return nil, fmt.Errorf("Mesh named: %v not found in Scene: %v", nm, sc.Name)
}

// GenMesh is a generic, arbitrary Mesh, storing its values directly.
type GenMesh struct {
	MeshBase
}

// NewGenMesh adds a new generic mesh with the given data to the scene.
func NewGenMesh(sc *Scene, name string, vertex, normal []math32.Vector3, index []uint32) *GenMesh {
	ms := &GenMesh{}
	ms.Name = name
	ms.Vertex = vertex
	ms.Normal = normal
	ms.Index = index
	sc.SetMesh(ms)
	return ms
}
