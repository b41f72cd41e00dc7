// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import "cogentcore.org/xyznav/math32"

// ModelInfo summarizes the geometry under a group.
type ModelInfo struct {
	// Bounds is the world bounding box of the solids.
	Bounds math32.Box3

	// Size of the bounds.
	Size math32.Vector3

	// Solids is the number of solids.
	Solids int
}

// Info returns the [ModelInfo] for the visible, pickable solids
// in this group, as of the last UpdateWorld.
func (gp *Group) Info() ModelInfo {
	mi := ModelInfo{Bounds: math32.B3Empty()}
	gp.WalkDown(func(n Node) bool {
		if nb := n.AsNodeBase(); nb.Invisible || nb.NoPick {
			return Break
		}
		if sld := n.AsSolid(); sld != nil && sld.Mesh != nil {
			mi.Solids++
			mi.Bounds.ExpandByBox(sld.WorldBBox)
		}
		return Continue
	})
	mi.Size = mi.Bounds.Size()
	return mi
}
