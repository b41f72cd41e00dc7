// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit xyznav functionality.

package math32

// Ray represents an oriented 3D line segment defined by an origin point and a direction vector.
type Ray struct {
	Origin Vector3
	Dir    Vector3
}

// NewRay creates and returns a pointer to a Ray object with
// the specified origin and direction vectors.
func NewRay(origin, dir Vector3) *Ray {
	return &Ray{Origin: origin, Dir: dir}
}

// Set sets the origin and direction vectors of this Ray.
func (ray *Ray) Set(origin, dir Vector3) {
	ray.Origin = origin
	ray.Dir = dir
}

// At calculates the point in the ray which is at the specified t distance from the origin
// along its direction.
func (ray *Ray) At(t float32) Vector3 {
	return ray.Dir.MulScalar(t).Add(ray.Origin)
}

// ApplyMatrix4 multiplies this ray origin and direction
// by the specified matrix4, basically transforming this ray coordinates.
// The direction is not normalized, so that distances along the
// transformed ray keep their relation to the original.
func (ray *Ray) ApplyMatrix4(mat4 *Matrix4) {
	dir := ray.Dir.Add(ray.Origin).MulMatrix4(mat4)
	ray.Origin = ray.Origin.MulMatrix4(mat4)
	ray.Dir = dir.Sub(ray.Origin)
}

// DistanceToPlane returns the distance of this ray origin to its intersection point in the plane.
// If the ray does not intersects the plane, returns NaN.
func (ray *Ray) DistanceToPlane(plane Plane) float32 {
	denom := plane.Norm.Dot(ray.Dir)
	if denom == 0 {
		// line is coplanar, return origin
		if plane.DistanceToPoint(ray.Origin) == 0 {
			return 0
		}
		return NaN()
	}
	t := -(ray.Origin.Dot(plane.Norm) + plane.Off) / denom
	// Return if the ray never intersects the plane
	if t >= 0 {
		return t
	}
	return NaN()
}

// IntersectPlane returns the intersection point of this ray with the specified plane.
// If no intersection is found false is returned.
func (ray *Ray) IntersectPlane(plane Plane) (Vector3, bool) {
	t := ray.DistanceToPlane(plane)
	if IsNaN(t) {
		return ray.Origin, false
	}
	return ray.At(t), true
}

// IntersectBox calculates the point which is the intersection of this ray with the specified box.
// If no intersection is found false is returned.
func (ray *Ray) IntersectBox(box Box3) (Vector3, bool) {
	// http://www.scratchapixel.com/lessons/3d-basic-lessons/lesson-7-intersecting-simple-shapes/ray-box-intersection/

	var tmin, tmax, tymin, tymax, tzmin, tzmax float32

	invdirx := 1 / ray.Dir.X
	invdiry := 1 / ray.Dir.Y
	invdirz := 1 / ray.Dir.Z

	origin := ray.Origin

	if invdirx >= 0 {
		tmin = (box.Min.X - origin.X) * invdirx
		tmax = (box.Max.X - origin.X) * invdirx
	} else {
		tmin = (box.Max.X - origin.X) * invdirx
		tmax = (box.Min.X - origin.X) * invdirx
	}

	if invdiry >= 0 {
		tymin = (box.Min.Y - origin.Y) * invdiry
		tymax = (box.Max.Y - origin.Y) * invdiry
	} else {
		tymin = (box.Max.Y - origin.Y) * invdiry
		tymax = (box.Min.Y - origin.Y) * invdiry
	}

	if (tmin > tymax) || (tymin > tmax) {
		return ray.Origin, false
	}

	// These lines also handle the case where tmin or tmax is NaN
	// (result of 0 * Infinity).

	if tymin > tmin || IsNaN(tmin) {
		tmin = tymin
	}

	if tymax < tmax || IsNaN(tmax) {
		tmax = tymax
	}

	if invdirz >= 0 {
		tzmin = (box.Min.Z - origin.Z) * invdirz
		tzmax = (box.Max.Z - origin.Z) * invdirz
	} else {
		tzmin = (box.Max.Z - origin.Z) * invdirz
		tzmax = (box.Min.Z - origin.Z) * invdirz
	}

	if (tmin > tzmax) || (tzmin > tmax) {
		return ray.Origin, false
	}

	if tzmin > tmin || IsNaN(tmin) {
		tmin = tzmin
	}

	if tzmax < tmax || IsNaN(tmax) {
		tmax = tzmax
	}

	// return point closest to the ray (positive side)
	if tmax < 0 {
		return ray.Origin, false
	}

	if tmin >= 0 {
		return ray.At(tmin), true
	}
	return ray.At(tmax), true
}

// IntersectsBox returns if this ray intersects the specified box.
func (ray *Ray) IntersectsBox(box Box3) bool {
	_, yes := ray.IntersectBox(box)
	return yes
}

// IntersectTriangle returns the ray parameter t at which this ray
// intersects the specified triangle a, b, c.
// If backfaceCulling is true, triangles facing away from the ray
// (by counter-clockwise winding) are not intersected.
// If no intersection is found false is returned.
func (ray *Ray) IntersectTriangle(a, b, c Vector3, backfaceCulling bool) (float32, bool) {
	// Compute the offset origin, edges, and normal.
	// from http://www.geometrictools.com/LibMathematics/Intersection/Wm5IntrRay3Triangle3.cpp

	edge1 := b.Sub(a)
	edge2 := c.Sub(a)
	normal := edge1.Cross(edge2)

	// Solve Q + t*D = b1*E1 + b2*E2 (Q = kDiff, D = ray direction,
	// E1 = kEdge1, E2 = kEdge2, N = Cross(E1,E2)) by
	//   |Dot(D,N)|*b1 = sign(Dot(D,N))*Dot(D,Cross(Q,E2))
	//   |Dot(D,N)|*b2 = sign(Dot(D,N))*Dot(D,Cross(E1,Q))
	//   |Dot(D,N)|*t = -sign(Dot(D,N))*Dot(Q,N)
	DdN := ray.Dir.Dot(normal)
	var sign float32

	if DdN > 0 {
		if backfaceCulling {
			return 0, false
		}
		sign = 1
	} else if DdN < 0 {
		sign = -1
		DdN = -DdN
	} else {
		return 0, false
	}

	diff := ray.Origin.Sub(a)
	DdQxE2 := sign * ray.Dir.Dot(diff.Cross(edge2))

	// b1 < 0, no intersection
	if DdQxE2 < 0 {
		return 0, false
	}

	DdE1xQ := sign * ray.Dir.Dot(edge1.Cross(diff))

	// b2 < 0, no intersection
	if DdE1xQ < 0 {
		return 0, false
	}

	// b1+b2 > 1, no intersection
	if DdQxE2+DdE1xQ > DdN {
		return 0, false
	}

	// Line intersects triangle, check if ray does.
	QdN := -sign * diff.Dot(normal)

	// t < 0, no intersection
	if QdN < 0 {
		return 0, false
	}

	// Ray intersects triangle.
	return QdN / DdN, true
}
