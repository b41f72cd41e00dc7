// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewer

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"strconv"
	"strings"
	"time"

	"cogentcore.org/xyznav/events"
	"cogentcore.org/xyznav/events/key"
	"cogentcore.org/xyznav/gallery"
	"cogentcore.org/xyznav/math32"
	"cogentcore.org/xyznav/picker"
	"github.com/mattn/go-shellwords"
)

// FrameTime is the time between frames in scripts.
const FrameTime = time.Second / 60

// Script runs a sequence of input commands against a [Viewer],
// one per line, advancing frames at [FrameTime] from Start.
// Lines are split into words as by a shell, and # starts a comment.
// The commands are:
//
//	key down|up NAME      press or release a key
//	hold NAME FRAMES      hold a key for a number of frames
//	frames N              advance N frames
//	click X Y             left click at a pixel position
//	drag X0 Y0 X1 Y1 [shift]  drag in one step
//	scroll DY             scroll by DY pixels (negative zooms in)
//	picker on|off|toggle  set the coordinate picker mode
//	camera                print the camera position and direction
//	save|restore NAME     save or restore a camera
type Script struct {
	Viewer *Viewer

	// Out receives the printed output, including picked coordinates.
	Out io.Writer

	// Now is the time of the current frame.
	Now time.Time
}

// NewScript returns a new script runner for the given viewer,
// which prints picked coordinates to out.
func NewScript(v *Viewer, out io.Writer) *Script {
	sr := &Script{Viewer: v, Out: out, Now: time.Now()}
	v.OnCoordinatePicked(func(res picker.Result) {
		fmt.Fprint(sr.Out, gallery.FormatPick(res.Position, res.Normal))
	})
	return sr
}

// Run runs all the commands from the given reader, stopping at the first error.
func (sr *Script) Run(r io.Reader) error {
	parser := shellwords.NewParser()
	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		line := sc.Text()
		if i := strings.Index(line, "#"); i >= 0 {
			line = line[:i]
		}
		args, err := parser.Parse(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", ln, err)
		}
		if len(args) == 0 {
			continue
		}
		if err := sr.Exec(args...); err != nil {
			return fmt.Errorf("line %d: %s: %w", ln, args[0], err)
		}
	}
	return sc.Err()
}

// Frame advances the viewer by one frame.
func (sr *Script) Frame() {
	sr.Viewer.Frame(sr.Now)
	sr.Now = sr.Now.Add(FrameTime)
}

func (sr *Script) send(ev events.Event) {
	sr.Viewer.Scene.Send(ev)
}

// Exec runs one command.
func (sr *Script) Exec(args ...string) error {
	v := sr.Viewer
	nargs := func(n int) error {
		if len(args)-1 < n {
			return fmt.Errorf("needs %d arguments", n)
		}
		return nil
	}
	ints := func(from, n int) ([]int, error) {
		if err := nargs(from + n - 1); err != nil {
			return nil, err
		}
		vals := make([]int, n)
		for i := range vals {
			val, err := strconv.Atoi(args[from+i])
			if err != nil {
				return nil, err
			}
			vals[i] = val
		}
		return vals, nil
	}
	switch args[0] {
	case "key":
		if err := nargs(2); err != nil {
			return err
		}
		typ := events.KeyDown
		switch args[1] {
		case "down":
		case "up":
			typ = events.KeyUp
		default:
			return fmt.Errorf("unknown key action %q", args[1])
		}
		sr.send(events.NewKey(typ, args[2], 0))
	case "hold":
		n, err := ints(2, 1)
		if err != nil {
			return err
		}
		sr.send(events.NewKey(events.KeyDown, args[1], 0))
		for i, cnt := 0, n[0]; i < cnt; i++ {
			sr.Frame()
		}
		sr.send(events.NewKey(events.KeyUp, args[1], 0))
		sr.Frame()
	case "frames":
		n, err := ints(1, 1)
		if err != nil {
			return err
		}
		for i, cnt := 0, n[0]; i < cnt; i++ {
			sr.Frame()
		}
	case "click":
		p, err := ints(1, 2)
		if err != nil {
			return err
		}
		sr.send(events.NewClick(image.Pt(p[0], p[1]), 0))
		sr.Frame()
	case "drag":
		p, err := ints(1, 4)
		if err != nil {
			return err
		}
		var mods key.Modifiers
		if len(args) > 5 && args[5] == "shift" {
			mods = key.Shift
		}
		start := image.Pt(p[0], p[1])
		sr.send(events.NewMouseDrag(events.Left, image.Pt(p[2], p[3]), start, start, mods))
		sr.Frame()
	case "scroll":
		d, err := ints(1, 1)
		if err != nil {
			return err
		}
		center := v.Scene.Size.Div(2)
		sr.send(events.NewScroll(center, math32.Vec2(0, float32(d[0])), 0))
		sr.Frame()
	case "picker":
		if err := nargs(1); err != nil {
			return err
		}
		switch args[1] {
		case "on":
			v.Picker.SetActive(true)
		case "off":
			v.Picker.SetActive(false)
		case "toggle":
			v.TogglePickerMode()
		default:
			return fmt.Errorf("unknown picker mode %q", args[1])
		}
	case "camera":
		cm := &v.Scene.Camera
		p, f := cm.Position(), cm.Forward()
		fmt.Fprintf(sr.Out, "camera: [%.3f, %.3f, %.3f] forward: [%.3f, %.3f, %.3f]\n", p.X, p.Y, p.Z, f.X, f.Y, f.Z)
	case "save":
		if err := nargs(1); err != nil {
			return err
		}
		v.Scene.SaveCamera(args[1])
	case "restore":
		if err := nargs(1); err != nil {
			return err
		}
		return v.Scene.SetCamera(args[1])
	default:
		return fmt.Errorf("unknown command")
	}
	return nil
}
