// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gallery

import (
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"cogentcore.org/xyznav/base/errors"
	"github.com/fsnotify/fsnotify"
)

// debounce is how long the file must be unchanged before it is reloaded.
const debounce = 100 * time.Millisecond

// Watcher reloads a placements file into a [Gallery] when it changes.
type Watcher struct {
	// Reloaded receives the result of each reload attempt.
	// It is buffered, and results are dropped if it is full.
	Reloaded chan error

	gallery  *Gallery
	filename string
	watcher  *fsnotify.Watcher
	closeCh  chan struct{}
	done     chan struct{}
	once     sync.Once
}

// Watch loads the given placements file into the gallery,
// and then reloads it whenever it changes until the watcher is closed.
// Its directory is watched, so that files replaced by editors are seen.
// A file that fails to load leaves the placements unchanged.
func (gl *Gallery) Watch(filename string) (*Watcher, error) {
	pls, err := Load(filename)
	if err != nil {
		return nil, err
	}
	gl.SetPlacements(pls)
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(filename)); err != nil {
		fw.Close()
		return nil, err
	}
	w := &Watcher{
		Reloaded: make(chan error, 16),
		gallery:  gl,
		filename: filepath.Clean(filename),
		watcher:  fw,
		closeCh:  make(chan struct{}),
		done:     make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Close stops watching.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	var settled <-chan time.Time
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.filename || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			settled = time.After(debounce)
		case <-settled:
			settled = nil
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			errors.Log(err)
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) reload() {
	pls, err := Load(w.filename)
	if err == nil {
		w.gallery.SetPlacements(pls)
		slog.Info("reloaded placements", "file", w.filename, "count", len(pls))
	} else {
		errors.Log(err)
	}
	select {
	case w.Reloaded <- err:
	default:
	}
}
