// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"cogentcore.org/xyznav/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestRayPlane(t *testing.T) {
	ray := NewRay(Vec3(0, 0, -5), Vec3(0, 0, 1))
	pl := Plane{}
	pl.SetFromNormalAndCoplanarPoint(Vec3(0, 0, -1), Vec3(0, 0, 1))
	tolassert.EqualTol(t, 6, ray.DistanceToPlane(pl), standardTol)
	pt, ok := ray.IntersectPlane(pl)
	assert.True(t, ok)
	tolAssertEqualVector(t, Vec3(0, 0, 1), pt)

	// plane behind the origin
	back := NewRay(Vec3(0, 0, -5), Vec3(0, 0, -1))
	_, ok = back.IntersectPlane(pl)
	assert.False(t, ok)

	// parallel
	par := NewRay(Vec3(0, 0, -5), Vec3(1, 0, 0))
	_, ok = par.IntersectPlane(pl)
	assert.False(t, ok)
}

func TestRayTriangle(t *testing.T) {
	a, b, c := Vec3(-1, -1, 1), Vec3(1, -1, 1), Vec3(0, 1, 1)
	tolAssertEqualVector(t, Vec3(0, 0, 1), Normal(a, b, c))

	ray := NewRay(Vec3(0, 0, -5), Vec3(0, 0, 1))
	d, ok := ray.IntersectTriangle(a, b, c, false)
	assert.True(t, ok)
	tolassert.EqualTol(t, 6, d, standardTol)
	tolAssertEqualVector(t, Vec3(0, 0, 1), ray.At(d))

	// the triangle faces away from this ray
	_, ok = ray.IntersectTriangle(a, b, c, true)
	assert.False(t, ok)

	// from the front it is hit with culling on
	front := NewRay(Vec3(0, 0, 5), Vec3(0, 0, -1))
	d, ok = front.IntersectTriangle(a, b, c, true)
	assert.True(t, ok)
	tolassert.EqualTol(t, 4, d, standardTol)

	miss := NewRay(Vec3(2, 2, -5), Vec3(0, 0, 1))
	_, ok = miss.IntersectTriangle(a, b, c, false)
	assert.False(t, ok)

	tri := NewTriangle(a, b, c)
	tolassert.EqualTol(t, 2, tri.Area(), standardTol)
	tolAssertEqualVector(t, Vec3(0, -1.0/3, 1), tri.Midpoint())
	pl := tri.Plane()
	tolassert.EqualTol(t, 0, pl.DistanceToPoint(c), standardTol)
}

func TestRayBox(t *testing.T) {
	box := B3(-1, -1, -1, 1, 1, 1)
	ray := NewRay(Vec3(0, 0, -5), Vec3(0, 0, 1))
	pt, ok := ray.IntersectBox(box)
	assert.True(t, ok)
	tolAssertEqualVector(t, Vec3(0, 0, -1), pt)

	// origin inside the box returns the exit point
	inside := NewRay(Vector3{}, Vec3(0, 0, 1))
	pt, ok = inside.IntersectBox(box)
	assert.True(t, ok)
	tolAssertEqualVector(t, Vec3(0, 0, 1), pt)

	assert.False(t, NewRay(Vec3(5, 0, -5), Vec3(0, 0, 1)).IntersectsBox(box))
	assert.False(t, NewRay(Vec3(0, 0, -5), Vec3(0, 0, -1)).IntersectsBox(box))

	// flat box, as for a plane
	flat := B3(-1, -1, 1, 1, 1, 1)
	assert.True(t, ray.IntersectsBox(flat))
}

func TestRayApplyMatrix4(t *testing.T) {
	m := &Matrix4{}
	m.SetTransform(Vec3(0, 0, 2), NewQuatIdentity(), Vec3(2, 2, 2))
	ray := NewRay(Vec3(0, 0, -5), Vec3(0, 0, 1))
	ray.ApplyMatrix4(m)
	tolAssertEqualVector(t, Vec3(0, 0, -8), ray.Origin)
	tolAssertEqualVector(t, Vec3(0, 0, 2), ray.Dir)
}

func TestBox3(t *testing.T) {
	b := B3Empty()
	assert.True(t, b.IsEmpty())
	assert.Equal(t, Vector3{}, b.Size())

	b.SetFromPoints([]Vector3{Vec3(1, 2, 3), Vec3(-1, 0, 5)})
	assert.Equal(t, B3(-1, 0, 3, 1, 2, 5), b)
	assert.Equal(t, Vec3(0, 1, 4), b.Center())
	assert.Equal(t, Vec3(2, 2, 2), b.Size())
	assert.True(t, b.ContainsPoint(Vec3(0, 1, 4)))
	assert.False(t, b.ContainsPoint(Vec3(0, 3, 4)))

	b.ExpandByBox(B3Empty())
	assert.Equal(t, B3(-1, 0, 3, 1, 2, 5), b)
	b.ExpandByBox(B3(0, 0, 0, 0, 0, 0))
	assert.Equal(t, B3(-1, 0, 0, 1, 2, 5), b)

	m := &Matrix4{}
	m.SetTransform(Vec3(1, 1, 1), NewQuatIdentity(), Vec3(2, 2, 2))
	assert.Equal(t, B3(-1, 1, 1, 3, 5, 11), b.MulMatrix4(m))
	assert.True(t, B3Empty().MulMatrix4(m).IsEmpty())
}
