// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"sort"

	"cogentcore.org/xyznav/math32"
)

// Intersection is a point where a ray hits the surface of a [Solid].
type Intersection struct {
	// Solid that was hit.
	Solid *Solid

	// Point is the hit location in world coordinates.
	Point math32.Vector3

	// Normal is the unit surface normal at the hit, in world coordinates.
	// It is only valid if HasNormal is true.
	Normal math32.Vector3

	// HasNormal is false when no surface normal could be determined.
	HasNormal bool

	// Distance from the ray origin to Point, in world units.
	Distance float32

	// Face is the index of the triangle that was hit.
	Face int
}

// RayIntersections returns the closest point where the given world-space
// ray hits the surface of each visible, pickable solid within this group,
// sorted from closest to furthest. The world matrices and bounding
// boxes must be current (see [Group.UpdateWorld]).
func (gp *Group) RayIntersections(ray math32.Ray) []Intersection {
	var hits []Intersection
	gp.WalkDown(func(n Node) bool {
		nb := n.AsNodeBase()
		if nb.Invisible || nb.NoPick {
			return Break
		}
		if !ray.IntersectsBox(nb.WorldBBox) {
			return Break
		}
		if sld := n.AsSolid(); sld != nil {
			if hit, ok := sld.RayIntersection(ray); ok {
				hits = append(hits, hit)
			}
		}
		return Continue
	})
	sort.Slice(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})
	return hits
}

// RayIntersection returns the closest intersection of the given
// world-space ray with the triangles of this solid's mesh.
// The world matrix must be current.
func (sld *Solid) RayIntersection(ray math32.Ray) (Intersection, bool) {
	var hit Intersection
	if sld.Mesh == nil {
		return hit, false
	}
	inv, err := sld.Pose.WorldMatrix.Inverse()
	if err != nil { // collapsed scale has no surface
		return hit, false
	}
	// The local ray direction is not normalized, so the ray parameter
	// is the same in local and world space.
	lray := ray
	lray.ApplyMatrix4(inv)

	ms := sld.Mesh.AsMeshBase()
	found := false
	var lt float32
	for f, nt := 0, ms.NumTriangles(); f < nt; f++ {
		ia, ib, ic := ms.Triangle(f)
		t, ok := lray.IntersectTriangle(ms.Vertex[ia], ms.Vertex[ib], ms.Vertex[ic], !sld.DoubleSided)
		if !ok || (found && t >= lt) {
			continue
		}
		found = true
		lt = t
		hit.Face = f
	}
	if !found {
		return hit, false
	}
	hit.Solid = sld
	hit.Point = ray.At(lt)
	hit.Distance = lt * ray.Dir.Length()

	ia, ib, ic := ms.Triangle(hit.Face)
	a, b, c := ms.Vertex[ia], ms.Vertex[ib], ms.Vertex[ic]
	var ln math32.Vector3
	if len(ms.Normal) == len(ms.Vertex) {
		ln = interpolateNormal(lray.At(lt), a, b, c, ms.Normal[ia], ms.Normal[ib], ms.Normal[ic])
	}
	if ln.IsNil() {
		ln = math32.Normal(a, b, c)
	}
	wn := sld.Pose.WorldMatrix.MulNormal(ln)
	if !wn.IsNil() && wn.IsFinite() {
		hit.Normal = wn
		hit.HasNormal = true
	}
	return hit, true
}

// interpolateNormal returns the normal at point p within triangle a, b, c
// interpolated from the vertex normals na, nb, nc using barycentric weights.
func interpolateNormal(p, a, b, c, na, nb, nc math32.Vector3) math32.Vector3 {
	v0 := b.Sub(a)
	v1 := c.Sub(a)
	v2 := p.Sub(a)
	d00 := v0.Dot(v0)
	d01 := v0.Dot(v1)
	d11 := v1.Dot(v1)
	d20 := v2.Dot(v0)
	d21 := v2.Dot(v1)
	denom := d00*d11 - d01*d01
	if denom == 0 {
		return math32.Vector3{}
	}
	v := (d11*d20 - d01*d21) / denom
	w := (d00*d21 - d01*d20) / denom
	u := 1 - v - w
	return na.MulScalar(u).Add(nb.MulScalar(v)).Add(nc.MulScalar(w)).Normal()
}
