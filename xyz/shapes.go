// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import "cogentcore.org/xyznav/math32"

// shapes define different standard mesh shapes

///////////////////////////////////////////////////////////////////////////
//   Plane

// Plane is a flat 2D plane, which can be oriented along any
// axis facing either positive or negative
type Plane struct {
	MeshBase

	// axis along which the normal perpendicular to the plane points.  E.g., if the Y axis is specified, then it is a standard X-Z ground plane -- see also NormNeg for whether it is facing in the positive or negative of the given axis.
	NormAxis math32.Dims

	// if false, the plane normal facing in the positive direction along specified NormAxis, otherwise it faces in the negative if true
	NormNeg bool

	// 2D size of plane, along the two remaining axes in X, Y, Z order
	Size math32.Vector2

	// offset from origin along direction of normal to the plane
	Offset float32
}

// NewPlane adds Plane mesh to given scene,
// with given name and size, with its normal pointing
// by default in the positive Y axis (i.e., a "ground" plane).
// Offset is 0.
func NewPlane(sc *Scene, name string, width, height float32) *Plane {
	pl := &Plane{}
	pl.Name = name
	pl.NormAxis = math32.Y
	pl.Size.Set(width, height)
	sc.SetMesh(pl)
	return pl
}

func (pl *Plane) Set() {
	pl.Reset()
	pl.addFace(pl.NormAxis, pl.NormNeg, pl.Size, pl.Offset)
	pl.UpdateBBox()
}

// planeAxes returns the two in-plane axes for the given normal axis.
func planeAxes(axis math32.Dims) (u, v math32.Dims) {
	switch axis {
	case math32.X:
		return math32.Y, math32.Z
	case math32.Y:
		return math32.X, math32.Z
	default:
		return math32.X, math32.Y
	}
}

// addFace adds a two-triangle rectangular face with the given normal
// axis and direction, size, and offset along the normal.
func (ms *MeshBase) addFace(axis math32.Dims, neg bool, size math32.Vector2, offset float32) {
	var norm math32.Vector3
	sign := float32(1)
	if neg {
		sign = -1
	}
	norm.SetDim(axis, sign)
	u, v := planeAxes(axis)
	var idx [4]uint32
	for i, c := range [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}} {
		var pos math32.Vector3
		pos.SetDim(u, c[0]*size.X/2)
		pos.SetDim(v, c[1]*size.Y/2)
		pos.SetDim(axis, sign*offset)
		idx[i] = ms.AddVertex(pos, norm)
	}
	ms.AddTriangle(idx[0], idx[1], idx[2], norm)
	ms.AddTriangle(idx[0], idx[2], idx[3], norm)
}

///////////////////////////////////////////////////////////////////////////
//   Box

// Box is a rectangular-shaped solid (cuboid)
type Box struct {
	MeshBase

	// size along each dimension
	Size math32.Vector3
}

// NewBox adds Box mesh to given scene, with given name and size
func NewBox(sc *Scene, name string, width, height, depth float32) *Box {
	bx := &Box{}
	bx.Name = name
	bx.Size.Set(width, height, depth)
	sc.SetMesh(bx)
	return bx
}

func (bx *Box) Set() {
	bx.Reset()
	for _, axis := range []math32.Dims{math32.X, math32.Y, math32.Z} {
		u, v := planeAxes(axis)
		sz := math32.Vec2(bx.Size.Dim(u), bx.Size.Dim(v))
		off := bx.Size.Dim(axis) / 2
		bx.addFace(axis, false, sz, off)
		bx.addFace(axis, true, sz, off)
	}
	bx.UpdateBBox()
}

///////////////////////////////////////////////////////////////////////////
//   Sphere

// Sphere is a sphere mesh
type Sphere struct {
	MeshBase

	// radius of the sphere
	Radius float32

	// number of segments around the width of the sphere (32 is reasonable default for full circle)
	WidthSegs int `min:"3"`

	// number of height segments (32 is reasonable default for full height)
	HeightSegs int `min:"2"`
}

// NewSphere creates a sphere mesh with the specified radius,
// number of segments (resolution).
func NewSphere(sc *Scene, name string, radius float32, segs int) *Sphere {
	sp := &Sphere{}
	sp.Name = name
	sp.Radius = radius
	sp.WidthSegs = segs
	sp.HeightSegs = segs
	sc.SetMesh(sp)
	return sp
}

func (sp *Sphere) Set() {
	sp.Reset()
	ws := max(sp.WidthSegs, 3)
	hs := max(sp.HeightSegs, 2)
	rows := make([][]uint32, hs+1)
	for iy := 0; iy <= hs; iy++ {
		phi := math32.Pi * float32(iy) / float32(hs)
		rows[iy] = make([]uint32, ws+1)
		for ix := 0; ix <= ws; ix++ {
			theta := 2 * math32.Pi * float32(ix) / float32(ws)
			n := math32.Vec3(-math32.Cos(theta)*math32.Sin(phi), math32.Cos(phi), math32.Sin(theta)*math32.Sin(phi))
			rows[iy][ix] = sp.AddVertex(n.MulScalar(sp.Radius), n)
		}
	}
	for iy := 0; iy < hs; iy++ {
		for ix := 0; ix < ws; ix++ {
			a := rows[iy][ix+1]
			b := rows[iy][ix]
			c := rows[iy+1][ix]
			d := rows[iy+1][ix+1]
			sp.AddTriangle(a, b, d, sp.Vertex[a].Add(sp.Vertex[b]).Add(sp.Vertex[d]))
			sp.AddTriangle(b, c, d, sp.Vertex[b].Add(sp.Vertex[c]).Add(sp.Vertex[d]))
		}
	}
	sp.UpdateBBox()
}
