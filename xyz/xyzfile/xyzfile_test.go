// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyzfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/xyznav/math32"
	"cogentcore.org/xyznav/xyz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testScene = `
meshes:
  - name: wall
    type: plane
    normal: z
    negative: true
    size: [4, 4]
  - name: crate
    type: box
    size: [1, 2, 1]
  - name: ball
    type: sphere
    radius: 0.5
    segments: 12
objects:
  - name: model
    position: [0, -2, 0]
    scale: [0.8, 0.8, 0.8]
    children:
      - name: wall
        mesh: wall
        position: [0, 0, 1]
      - name: crate
        mesh: crate
        position: [2, 0, 0]
        rotation: {axis: [0, 1, 0], angle: 45}
  - name: ball
    mesh: ball
    no_pick: true
camera:
  position: [0, 0, -5]
  fov: 60
  near: 0.1
  far: 10000
`

func TestRead(t *testing.T) {
	sc := xyz.NewScene("test")
	require.NoError(t, Read(sc, strings.NewReader(testScene)))
	assert.Len(t, sc.Meshes, 3)
	require.Len(t, sc.Children, 2)

	model := sc.ChildByName("model").(*xyz.Group)
	assert.Equal(t, math32.Vec3(0, -2, 0), model.Pose.Pos)
	assert.Equal(t, math32.Vec3(0.8, 0.8, 0.8), model.Pose.Scale)
	wall := model.ChildByName("wall").AsSolid()
	require.NotNil(t, wall)
	assert.True(t, wall.Mesh.(*xyz.Plane).NormNeg)
	assert.True(t, sc.ChildByName("ball").AsNodeBase().NoPick)

	assert.Equal(t, float32(60), sc.Camera.FOV)
	assert.Equal(t, float32(10000), sc.Camera.Far)
	assert.Equal(t, math32.Vec3(0, 0, -5), sc.Camera.Position())
	f := sc.Camera.Forward()
	assert.InDelta(t, 1, f.Z, 1e-5)

	// the wall faces the camera, at z = 0.8 after scaling
	hits := sc.RayIntersections(sc.Camera.RayFromNDC(math32.Vec2(0, -0.5)))
	require.NotEmpty(t, hits)
	assert.Equal(t, wall, hits[0].Solid)
	assert.InDelta(t, 0.8, hits[0].Point.Z, 1e-4)
	assert.InDelta(t, -1, hits[0].Normal.Z, 1e-4)
}

func TestErrors(t *testing.T) {
	sc := xyz.NewScene("test")
	assert.Error(t, Read(sc, strings.NewReader("meshes:\n  - name: x\n    type: cone\n")))
	assert.Error(t, Read(xyz.NewScene("test"), strings.NewReader("objects:\n  - name: x\n    mesh: nope\n")))
	assert.Error(t, Read(xyz.NewScene("test"), strings.NewReader("bogus: 1\n")))

	dir := t.TempDir()
	fn := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(fn, []byte(testScene), 0666))
	assert.NoError(t, Open(xyz.NewScene("test"), fn))
	assert.Error(t, Open(xyz.NewScene("test"), filepath.Join(dir, "missing.yaml")))
}
