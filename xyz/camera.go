// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"sync"

	"cogentcore.org/xyznav/math32"
)

// Camera defines the properties of the camera
type Camera struct {

	// overall orientation and direction of the camera, relative to pointing at negative Z axis with up (positive Y) direction
	Pose Pose

	// mutex protecting camera data
	CamMu sync.RWMutex `copier:"-"`

	// target location for the camera, where it is pointing at; defaults to the origin, but moves with panning movements, and is reset by a call to LookAt method
	Target math32.Vector3

	// up direction for camera, which way is up; defaults to positive Y axis, and is reset by call to LookAt method
	UpDir math32.Vector3

	// default is a Perspective camera; set this to make it Orthographic instead, in which case the view includes the volume specified by the Near - Far distance (i.e., you probably want to decrease Far).
	Ortho bool

	// field of view in degrees
	FOV float32

	// aspect ratio (width/height)
	Aspect float32

	// near plane z coordinate
	Near float32

	// far plane z coordinate
	Far float32

	// view matrix (inverse of the Pose.Matrix)
	ViewMatrix math32.Matrix4 `display:"-"`

	// projection matrix, defining the camera perspective / ortho transform
	ProjectionMatrix math32.Matrix4 `display:"-"`

	// inverse of the projection matrix
	InvProjectionMatrix math32.Matrix4 `display:"-"`
}

func (cm *Camera) Defaults() {
	cm.FOV = 30
	cm.Aspect = 1.5
	cm.Near = .01
	cm.Far = 1000
	cm.DefaultPose()
}

// DefaultPose resets the camera pose to default location and orientation, looking
// at the origin from 0,0,10, with up Y axis
func (cm *Camera) DefaultPose() {
	cm.Pose.Defaults()
	cm.Pose.Pos.Set(0, 0, 10)
	cm.LookAtOrigin()
}

// UpdateMatrix updates the view and projection matricies
func (cm *Camera) UpdateMatrix() {
	cm.CamMu.Lock()
	defer cm.CamMu.Unlock()

	cm.Pose.UpdateMatrix()
	cm.ViewMatrix.SetInverse(&cm.Pose.Matrix)
	if cm.Ortho {
		height := 2 * cm.Far * math32.Tan(math32.DegToRad(cm.FOV*0.5))
		width := cm.Aspect * height
		cm.ProjectionMatrix.SetOrthographic(width, height, cm.Near, cm.Far)
	} else {
		cm.ProjectionMatrix.SetPerspective(cm.FOV, cm.Aspect, cm.Near, cm.Far)
	}
	cm.InvProjectionMatrix.SetInverse(&cm.ProjectionMatrix)
}

// Position returns the current camera position.
func (cm *Camera) Position() math32.Vector3 {
	cm.CamMu.RLock()
	defer cm.CamMu.RUnlock()
	return cm.Pose.Pos
}

// SetPosition moves the camera to the given position,
// keeping its current orientation.
func (cm *Camera) SetPosition(pos math32.Vector3) {
	cm.CamMu.Lock()
	cm.Pose.Pos = pos
	cm.CamMu.Unlock()
	cm.UpdateMatrix()
}

// Orientation returns the current camera rotation.
func (cm *Camera) Orientation() math32.Quat {
	cm.CamMu.RLock()
	defer cm.CamMu.RUnlock()
	return cm.Pose.Quat
}

// Forward returns the unit direction the camera is looking along,
// which is the negative Z axis rotated by the camera orientation.
func (cm *Camera) Forward() math32.Vector3 {
	return math32.Vec3(0, 0, -1).MulQuat(cm.Orientation())
}

// LookAt points the camera at given target location, using given up direction,
// and sets the Target, UpDir fields for future camera movements.
func (cm *Camera) LookAt(target, upDir math32.Vector3) {
	cm.CamMu.Lock()
	cm.Target = target
	if upDir.IsNil() {
		upDir = math32.Vec3(0, 1, 0)
	}
	cm.UpDir = upDir
	cm.Pose.LookAt(target, upDir)
	cm.CamMu.Unlock()
	cm.UpdateMatrix()
}

// LookAtOrigin points the camera at origin with Y axis pointing Up (i.e., standard)
func (cm *Camera) LookAtOrigin() {
	cm.LookAt(math32.Vector3{}, math32.Vec3(0, 1, 0))
}

// LookAtTarget points the camera at current target using current up direction
func (cm *Camera) LookAtTarget() {
	cm.LookAt(cm.Target, cm.UpDir)
}

// ViewVector is the vector between the camera position and target
func (cm *Camera) ViewVector() math32.Vector3 {
	cm.CamMu.RLock()
	defer cm.CamMu.RUnlock()
	return cm.Pose.Pos.Sub(cm.Target)
}

// DistanceTo is the distance from camera to given point
func (cm *Camera) DistanceTo(pt math32.Vector3) float32 {
	cm.CamMu.RLock()
	defer cm.CamMu.RUnlock()
	return cm.Pose.Pos.DistanceTo(pt)
}

// Orbit moves the camera along the given 2D axes in degrees
// (delX = left/right, delY = up/down),
// relative to current position and orientation,
// keeping the same distance from the Target, and rotating the camera and
// the Up direction vector to keep looking at the target.
func (cm *Camera) Orbit(delX, delY float32) {
	ctdir := cm.ViewVector()
	if ctdir.IsNil() {
		ctdir.Set(0, 0, 1)
	}
	dir := ctdir.Normal()

	cm.CamMu.Lock()
	up := cm.UpDir
	right := cm.UpDir.Cross(dir).Normal()

	// delX rotates around the up vector
	dxq := math32.NewQuatAxisAngle(up, math32.DegToRad(delX))
	dx := ctdir.MulQuat(dxq).Sub(ctdir)
	// delY rotates around the right vector
	dyq := math32.NewQuatAxisAngle(right, math32.DegToRad(delY))
	dy := ctdir.MulQuat(dyq).Sub(ctdir)

	cm.Pose.Pos = cm.Pose.Pos.Add(dx).Add(dy)
	cm.UpDir.SetMulQuat(dyq) // this is only one that affects up
	cm.CamMu.Unlock()

	cm.LookAtTarget()
}

// Pan moves the camera along the given 2D axes (left/right, up/down),
// relative to current position and orientation (i.e., in the plane of the
// current window view)
// and it moves the target by the same increment, changing the target position.
func (cm *Camera) Pan(delX, delY float32) {
	cm.CamMu.Lock()
	dx := math32.Vec3(-delX, 0, 0).MulQuat(cm.Pose.Quat)
	dy := math32.Vec3(0, -delY, 0).MulQuat(cm.Pose.Quat)
	td := dx.Add(dy)
	cm.Pose.Pos.SetAdd(td)
	cm.Target.SetAdd(td)
	cm.CamMu.Unlock()
	cm.UpdateMatrix()
}

// PanAxis moves the camera and target along world X,Y axes
func (cm *Camera) PanAxis(delX, delY float32) {
	cm.CamMu.Lock()
	td := math32.Vec3(-delX, -delY, 0)
	cm.Pose.Pos.SetAdd(td)
	cm.Target.SetAdd(td)
	cm.CamMu.Unlock()
	cm.UpdateMatrix()
}

// Zoom moves along axis given pct closer or further from the target
// it always moves the target back also if it distance is < 1
func (cm *Camera) Zoom(zoomPct float32) {
	ctaxis := cm.ViewVector()
	cm.CamMu.Lock()
	if ctaxis.IsNil() {
		ctaxis.Set(0, 0, 1)
	}
	dist := ctaxis.Length()
	del := ctaxis.MulScalar(zoomPct)
	cm.Pose.Pos.SetAdd(del)
	if zoomPct < 0 && dist < 1 {
		cm.Target.SetAdd(del)
	}
	cm.CamMu.Unlock()
	cm.UpdateMatrix()
}

// RayFromNDC returns the world-space ray from the camera through
// the given point in normalized device coordinates, where
// (-1,-1) is the bottom left and (1,1) the top right of the view.
// The ray direction is normalized, so distances along it are world units.
func (cm *Camera) RayFromNDC(ndc math32.Vector2) math32.Ray {
	cm.UpdateMatrix()
	cm.CamMu.RLock()
	defer cm.CamMu.RUnlock()

	// point on the near plane, in camera coordinates
	near := math32.Vec3(ndc.X, ndc.Y, -1).MulMatrix4(&cm.InvProjectionMatrix)
	if cm.Ortho {
		origin := near.MulMatrix4(&cm.Pose.Matrix)
		dir := math32.Vec3(0, 0, -1).MulQuat(cm.Pose.Quat).Normal()
		return math32.Ray{Origin: origin, Dir: dir}
	}
	dir := near.MulMatrix4AsVector4(&cm.Pose.Matrix, 0).Normal()
	return math32.Ray{Origin: cm.Pose.Pos, Dir: dir}
}

// Copy returns a copy of this camera, without its mutex.
func (cm *Camera) Copy() *Camera {
	cm.CamMu.RLock()
	defer cm.CamMu.RUnlock()
	nc := &Camera{}
	copyCamera(nc, cm)
	return nc
}
