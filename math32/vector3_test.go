// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"cogentcore.org/xyznav/base/tolassert"
	"github.com/stretchr/testify/assert"
)

const standardTol = float32(1.0e-5)

func tolAssertEqualVector(t *testing.T, expected, actual Vector3, tols ...float32) {
	t.Helper()
	tol := standardTol
	if len(tols) == 1 {
		tol = tols[0]
	}
	tolassert.EqualTol(t, expected.X, actual.X, tol)
	tolassert.EqualTol(t, expected.Y, actual.Y, tol)
	tolassert.EqualTol(t, expected.Z, actual.Z, tol)
}

func TestVector3(t *testing.T) {
	assert.Equal(t, Vector3{5, 10, 15}, Vec3(5, 10, 15))
	assert.Equal(t, Vector3{2, 2, 2}, Vector3Scalar(2))

	v := Vector3{}
	v.Set(-1, 7, 3)
	assert.Equal(t, Vector3{-1, 7, 3}, v)
	v.SetDim(Z, 9)
	assert.Equal(t, float32(9), v.Dim(Z))
	assert.Equal(t, "z", Z.String())

	assert.Equal(t, Vec3(1, 2, 3), Vec3(0.5, 1, 1.5).Add(Vec3(0.5, 1, 1.5)))
	assert.Equal(t, Vec3(0, 0, 0), Vec3(1, 2, 3).Sub(Vec3(1, 2, 3)))
	assert.Equal(t, Vec3(2, 4, 6), Vec3(1, 2, 3).MulScalar(2))
	assert.Equal(t, Vec3(-1, -2, -3), Vec3(1, 2, 3).Negate())
	assert.Equal(t, float32(14), Vec3(1, 2, 3).Dot(Vec3(1, 2, 3)))
	assert.Equal(t, Vec3(0, 0, 1), Vec3(1, 0, 0).Cross(Vec3(0, 1, 0)))
	assert.Equal(t, float32(5), Vec3(3, 4, 0).Length())
	tolAssertEqualVector(t, Vec3(0.6, 0.8, 0), Vec3(3, 4, 0).Normal())
	assert.Equal(t, Vector3{}, Vector3{}.Normal())

	assert.True(t, Vec3(1, 2, 3).IsEqualTol(Vec3(1.0001, 2, 3), 0.001))
	assert.False(t, Vec3(1, 2, 3).IsEqualTol(Vec3(1.1, 2, 3), 0.001))

	assert.True(t, Vec3(1, 2, 3).IsFinite())
	assert.False(t, Vec3(Infinity, 2, 3).IsFinite())
	assert.False(t, Vec3(NaN(), 2, 3).IsFinite())
}

func TestVector3MulQuat(t *testing.T) {
	fwd := Vec3(0, 0, -1)
	tolAssertEqualVector(t, fwd, fwd.MulQuat(NewQuatIdentity()))

	left := NewQuatAxisAngle(Vec3(0, 1, 0), Pi/2)
	tolAssertEqualVector(t, Vec3(-1, 0, 0), fwd.MulQuat(left))
	tolAssertEqualVector(t, Vec3(0, 0, -1), Vec3(1, 0, 0).MulQuat(left))

	// rotation around Y leaves Y alone
	tolAssertEqualVector(t, Vec3(0, 1, 0), Vec3(0, 1, 0).MulQuat(left))

	var m Matrix4
	m.SetRotationY(0.3)
	q := NewQuatAxisAngle(Vec3(0, 1, 0), 0.3)
	tolAssertEqualVector(t, fwd.MulQuat(q), fwd.MulMatrix4(&m))
}

func TestQuat(t *testing.T) {
	q := NewQuatAxisAngle(Vec3(0, 1, 0), 0.5)
	tolassert.EqualTol(t, 1, q.Length(), standardTol)
	assert.True(t, NewQuatIdentity().IsIdentity())
	assert.False(t, q.IsIdentity())

	qi := q.Inverse()
	v := Vec3(1, 2, 3)
	tolAssertEqualVector(t, v, v.MulQuat(q).MulQuat(qi))

	// two half turns make a whole one
	q2 := q.Mul(q)
	tolAssertEqualVector(t, v.MulQuat(NewQuatAxisAngle(Vec3(0, 1, 0), 1)), v.MulQuat(q2))

	uv := NewQuatUnitVectors(Vec3(0, 0, 1), Vec3(1, 0, 0))
	tolAssertEqualVector(t, Vec3(1, 0, 0), Vec3(0, 0, 1).MulQuat(uv))

	// opposite vectors still produce a half turn
	op := NewQuatUnitVectors(Vec3(0, 0, 1), Vec3(0, 0, -1))
	tolAssertEqualVector(t, Vec3(0, 0, -1), Vec3(0, 0, 1).MulQuat(op))

	z := Quat{}
	z.Normalize()
	assert.True(t, z.IsIdentity())
}

func TestVector3Text(t *testing.T) {
	var v Vector3
	assert.NoError(t, v.UnmarshalText([]byte("0 0 -5")))
	assert.Equal(t, Vec3(0, 0, -5), v)
	assert.NoError(t, v.UnmarshalText([]byte("[1.5, 2, 3]")))
	assert.Equal(t, Vec3(1.5, 2, 3), v)
	assert.Error(t, v.UnmarshalText([]byte("1 2")))
	assert.Error(t, v.UnmarshalText([]byte("a b c")))

	b, err := Vec3(0.5, -1, 2).MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "0.5 -1 2", string(b))
}
