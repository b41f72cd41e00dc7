// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import "cogentcore.org/xyznav/math32"

// Node is the common interface for all xyz scenegraph nodes.
type Node interface {
	// AsNodeBase returns the [NodeBase] for our node, which gives
	// access to all the base-level data structures and methods
	// without requiring interface methods.
	AsNodeBase() *NodeBase

	// IsSolid returns true if this is an [Solid] node (else a [Group]).
	IsSolid() bool

	// AsSolid returns the node as a [Solid] (nil if not).
	AsSolid() *Solid

	// UpdateWorld updates the local and world matrix of this node
	// and its children from the given parent world matrix, along
	// with the world bounding box.
	UpdateWorld(parWorld *math32.Matrix4)
}

// NodeBase is the basic 3D scenegraph node, which has the full transform information
// relative to parent, and computed bounding boxes, etc.
type NodeBase struct {

	// Name is the name of this node, unique among its siblings.
	Name string

	// complete specification of position and orientation
	Pose Pose

	// Invisible nodes and their children are not shown or picked.
	Invisible bool

	// NoPick excludes this node and its children from ray picking,
	// while still being shown.
	NoPick bool

	// world coordinates bounding box, updated by UpdateWorld
	WorldBBox math32.Box3 `set:"-"`

	// Parent is the group containing this node, nil at the top.
	Parent *Group `set:"-" copier:"-"`
}

func (nb *NodeBase) AsNodeBase() *NodeBase {
	return nb
}

func (nb *NodeBase) IsSolid() bool {
	return false
}

func (nb *NodeBase) AsSolid() *Solid {
	return nil
}

// IsVisible returns true if this node and all its parents are visible.
func (nb *NodeBase) IsVisible() bool {
	for n := nb; n != nil; {
		if n.Invisible {
			return false
		}
		if n.Parent == nil {
			break
		}
		n = &n.Parent.NodeBase
	}
	return true
}

// SetPos sets the [Pose.Pos] position of the node
func (nb *NodeBase) SetPos(x, y, z float32) {
	nb.Pose.Pos.Set(x, y, z)
}

// SetScale sets the [Pose.Scale] scale of the node
func (nb *NodeBase) SetScale(x, y, z float32) {
	nb.Pose.Scale.Set(x, y, z)
}

// SetAxisRotation sets the [Pose.Quat] rotation of the node,
// from local axis and angle in degrees.
func (nb *NodeBase) SetAxisRotation(x, y, z, angle float32) {
	nb.Pose.SetAxisRotation(x, y, z, angle)
}

// WorldPos returns the position of the node in world coordinates,
// as of the last UpdateWorld.
func (nb *NodeBase) WorldPos() math32.Vector3 {
	return nb.Pose.WorldPos()
}
