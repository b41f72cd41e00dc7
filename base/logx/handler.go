// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// SetDefaultLogger sets the default [slog] logger to a [Handler]
// writing to [os.Stderr] at the current [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, &UserLevel)))
}

// Handler is a [slog.Handler] that writes one line per record,
// with the level colored according to the terminal color profile.
type Handler struct {
	level  slog.Leveler
	out    *termenv.Output
	mu     *sync.Mutex
	group  string
	preset string
}

// NewHandler returns a new [Handler] writing to the given writer,
// filtering records below the given level. Colors are detected from
// the writer; pass additional options to override the color profile.
func NewHandler(w io.Writer, level slog.Leveler, opts ...termenv.OutputOption) *Handler {
	return &Handler{
		level: level,
		out:   termenv.NewOutput(w, opts...),
		mu:    &sync.Mutex{},
	}
}

// Enabled returns whether the given level is at or above the handler level.
func (h *Handler) Enabled(_ context.Context, l slog.Level) bool {
	min := slog.LevelInfo
	if h.level != nil {
		min = h.level.Level()
	}
	return l >= min
}

// levelColor returns the color used to render the given level.
func (h *Handler) levelColor(l slog.Level) termenv.Color {
	switch {
	case l >= slog.LevelError:
		return h.out.Color("#e5484d")
	case l >= slog.LevelWarn:
		return h.out.Color("#f5a524")
	case l >= slog.LevelInfo:
		return h.out.Color("#0090ff")
	default:
		return h.out.Color("#8b8d98")
	}
}

// Handle writes the given record.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	sb := &strings.Builder{}
	sb.WriteString(h.out.String(r.Level.String()).Foreground(h.levelColor(r.Level)).Bold().String())
	sb.WriteByte(' ')
	sb.WriteString(r.Message)
	sb.WriteString(h.preset)
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(sb, h.group, a)
		return true
	})
	sb.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, sb.String())
	return err
}

// WithAttrs returns a new handler that includes the given attributes
// in every record.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	sb := &strings.Builder{}
	sb.WriteString(h.preset)
	for _, a := range attrs {
		writeAttr(sb, h.group, a)
	}
	nh.preset = sb.String()
	return &nh
}

// WithGroup returns a new handler that qualifies subsequent
// attribute keys with the given group name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.group = h.group + name + "."
	return &nh
}

func writeAttr(sb *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		prefix := group
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			writeAttr(sb, prefix, ga)
		}
		return
	}
	fmt.Fprintf(sb, " %s%s=%v", group, a.Key, a.Value.Any())
}
