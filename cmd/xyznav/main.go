// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command xyznav runs scripted navigation and coordinate picking
// on 3D models, and manages gallery placement files.
package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"

	"cogentcore.org/xyznav/base/errors"
	"cogentcore.org/xyznav/base/logx"
	"cogentcore.org/xyznav/config"
	"cogentcore.org/xyznav/gallery"
	"cogentcore.org/xyznav/math32"
	"cogentcore.org/xyznav/picker"
	"cogentcore.org/xyznav/viewer"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "xyznav:", err)
		os.Exit(1)
	}
}

// options are the global command line options.
type options struct {
	config      string
	model       string
	verbose     bool
	veryVerbose bool
	quiet       bool
}

// newViewer returns a new viewer with the config file and model
// given in the options, if any.
func (o *options) newViewer() (*viewer.Viewer, error) {
	cfg := &viewer.Config{}
	if err := config.SetFromDefaults(cfg); err != nil {
		return nil, err
	}
	if o.config != "" {
		if err := config.Open(cfg, o.config); err != nil {
			return nil, err
		}
	}
	v := viewer.New(cfg)
	if o.model != "" {
		if err := v.LoadModel(o.model); err != nil {
			return nil, err
		}
	}
	return v, nil
}

func newRootCmd() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:           "xyznav",
		Short:         "Navigate and pick coordinates on 3D models",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.UserLevel = logx.LevelFromFlags(o.veryVerbose, o.verbose, o.quiet)
			logx.SetDefaultLogger()
		},
	}
	fs := root.PersistentFlags()
	fs.StringVar(&o.config, "config", "", "TOML config file")
	fs.StringVarP(&o.model, "model", "m", "", "YAML model file to load")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "show info messages")
	fs.BoolVar(&o.veryVerbose, "vv", false, "show debug messages")
	fs.BoolVarP(&o.quiet, "quiet", "q", false, "only show errors")

	root.AddCommand(walkCmd(o), pickCmd(o), infoCmd(o), placementsCmd())
	return root
}

func walkCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "walk [script]",
		Short: "Run a navigation script, reading standard input if no file is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := o.newViewer()
			if err != nil {
				return err
			}
			var r io.Reader = cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}
			return viewer.NewScript(v, cmd.OutOrStdout()).Run(r)
		},
	}
}

func pickCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "pick x y",
		Short: "Pick the model point at normalized device coordinates x, y in [-1, 1]",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var ndc [2]float32
			for i, a := range args {
				f, err := strconv.ParseFloat(a, 32)
				if err != nil {
					return err
				}
				ndc[i] = float32(f)
			}
			v, err := o.newViewer()
			if err != nil {
				return err
			}
			v.Scene.UpdateWorldAll()
			res, ok := picker.Pick(math32.Vec2(ndc[0], ndc[1]), &v.Scene.Camera, v.Model)
			if !ok {
				return errors.New("nothing to pick there")
			}
			fmt.Fprint(cmd.OutOrStdout(), gallery.FormatPick(res.Position, res.Normal))
			return nil
		},
	}
}

func infoCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the size of the model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := o.newViewer()
			if err != nil {
				return err
			}
			mi := v.ModelInfo()
			fmt.Fprintf(cmd.OutOrStdout(), "solids: %d\nbounds: %v %v\nsize: %v\n", mi.Solids, mi.Bounds.Min, mi.Bounds.Max, mi.Size)
			return nil
		},
	}
}

func placementsCmd() *cobra.Command {
	watch := false
	cmd := &cobra.Command{
		Use:   "placements file",
		Short: "Check and print a gallery placements file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !watch {
				pls, err := gallery.Load(args[0])
				if err != nil {
					return err
				}
				return gallery.Encode(out, pls)
			}
			gl := gallery.New(nil)
			w, err := gl.Watch(args[0])
			if err != nil {
				return err
			}
			defer w.Close()
			errors.Log(gallery.Encode(out, gl.Placements()))
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			for {
				select {
				case <-ctx.Done():
					return nil
				case err := <-w.Reloaded:
					if err == nil {
						errors.Log(gallery.Encode(out, gl.Placements()))
					}
				}
			}
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "print the placements again whenever the file changes")
	return cmd
}
