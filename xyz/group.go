// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"slices"

	"cogentcore.org/xyznav/math32"
)

const (
	// Continue = true can be returned from tree iteration functions to continue
	// processing down the tree, as compared to Break = false which stops this branch.
	Continue = true

	// Break = false can be returned from tree iteration functions to stop processing
	// this branch of the tree.
	Break = false
)

// Group collects individual elements in a scene but does not have a Mesh
// of its own.  It does have a transform that applies to all nodes under it.
type Group struct {
	NodeBase

	// Children are the nodes within this group, in order.
	Children []Node
}

// NewGroup adds a new group with the given name to the given parent.
// A nil parent returns a top-level group.
func NewGroup(parent *Group, name string) *Group {
	gp := &Group{}
	gp.Name = name
	gp.Pose.Defaults()
	if parent != nil {
		parent.Add(gp)
	}
	return gp
}

// Add adds the given node as the last child of this group.
func (gp *Group) Add(n Node) {
	n.AsNodeBase().Parent = gp
	gp.Children = append(gp.Children, n)
}

// ChildByName returns the first direct child with the given name, or nil.
func (gp *Group) ChildByName(name string) Node {
	for _, k := range gp.Children {
		if k.AsNodeBase().Name == name {
			return k
		}
	}
	return nil
}

// DeleteChild removes the given child node, returning false if it was not found.
func (gp *Group) DeleteChild(n Node) bool {
	i := slices.Index(gp.Children, n)
	if i < 0 {
		return false
	}
	gp.Children = slices.Delete(gp.Children, i, i+1)
	n.AsNodeBase().Parent = nil
	return true
}

// DeleteChildren removes all children.
func (gp *Group) DeleteChildren() {
	for _, k := range gp.Children {
		k.AsNodeBase().Parent = nil
	}
	gp.Children = nil
}

// WalkDown calls the given function on this group and then all
// of its descendants in depth-first order. If the function returns
// [Break] for a node, its children are not visited.
func (gp *Group) WalkDown(fun func(n Node) bool) {
	walkDown(gp, fun)
}

func walkDown(n Node, fun func(n Node) bool) {
	if !fun(n) {
		return
	}
	gp, ok := n.(*Group)
	if !ok {
		return
	}
	for _, k := range gp.Children {
		walkDown(k, fun)
	}
}

func (gp *Group) UpdateWorld(parWorld *math32.Matrix4) {
	gp.Pose.UpdateMatrix()
	gp.Pose.UpdateWorldMatrix(parWorld)
	gp.WorldBBox.SetEmpty()
	for _, k := range gp.Children {
		k.UpdateWorld(&gp.Pose.WorldMatrix)
		gp.WorldBBox.ExpandByBox(k.AsNodeBase().WorldBBox)
	}
}

// test for impl
var _ Node = &Group{}
