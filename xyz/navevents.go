// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"log/slog"
	"strings"

	"cogentcore.org/xyznav/events"
)

// NavKeyEvents handles standard viewer keyboard navigation events
func (sc *Scene) NavKeyEvents(kt *events.Key) {
	ch := kt.Chord()
	orbDeg := float32(5)
	panDel := float32(.2)
	zoomPct := float32(.05)
	switch ch {
	case "UpArrow":
		sc.Camera.Orbit(0, orbDeg)
	case "Shift+UpArrow":
		sc.Camera.Pan(0, panDel)
	case "Control+UpArrow":
		sc.Camera.PanAxis(0, panDel)
	case "DownArrow":
		sc.Camera.Orbit(0, -orbDeg)
	case "Shift+DownArrow":
		sc.Camera.Pan(0, -panDel)
	case "Control+DownArrow":
		sc.Camera.PanAxis(0, -panDel)
	case "LeftArrow":
		sc.Camera.Orbit(orbDeg, 0)
	case "Shift+LeftArrow":
		sc.Camera.Pan(-panDel, 0)
	case "Control+LeftArrow":
		sc.Camera.PanAxis(-panDel, 0)
	case "RightArrow":
		sc.Camera.Orbit(-orbDeg, 0)
	case "Shift+RightArrow":
		sc.Camera.Pan(panDel, 0)
	case "Control+RightArrow":
		sc.Camera.PanAxis(panDel, 0)
	case "+", "=", "Shift++":
		sc.Camera.Zoom(-zoomPct)
	case "-", "_", "Shift+_":
		sc.Camera.Zoom(zoomPct)
	case " ", "Space", "Escape":
		err := sc.SetCamera("default")
		if err != nil {
			sc.Camera.DefaultPose()
		}
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9":
		err := sc.SetCamera(ch)
		if err != nil {
			sc.SaveCamera(ch)
			slog.Info("saved camera", "name", ch)
		} else {
			slog.Info("restored camera", "name", ch)
		}
	case "Control+0", "Control+1", "Control+2", "Control+3", "Control+4", "Control+5", "Control+6", "Control+7", "Control+8", "Control+9":
		cnm := strings.TrimPrefix(ch, "Control+")
		sc.SaveCamera(cnm)
		slog.Info("saved camera", "name", cnm)
	default:
		return
	}
	kt.SetHandled()
}
