// Package watcher implements descriptor file watching using fsnotify.
package watcher

import (
	"context"
	"iter"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/zerr"

	"shutbox/internal/core/ports"
)

const eventChannelBuffer = 16

// Event signals that the watched descriptor changed.
type Event struct {
	// Path is the path of the descriptor file that changed.
	Path string
}

// Watcher watches a single descriptor file for changes. Editors typically
// replace files on save, so the parent directory is watched and events are
// filtered by name.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	logger    ports.Logger
	path      string
	events    chan Event
}

// NewWatcher creates a new descriptor watcher.
func NewWatcher(logger ports.Logger) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create file watcher")
	}
	return &Watcher{
		fsWatcher: fsWatcher,
		logger:    logger,
		events:    make(chan Event, eventChannelBuffer),
	}, nil
}

// Start begins watching the descriptor at the given path. Events are
// delivered until ctx is cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve descriptor path")
	}
	w.path = abs

	if err := w.fsWatcher.Add(filepath.Dir(abs)); err != nil {
		return zerr.Wrap(err, "failed to watch descriptor directory")
	}

	go w.processEvents(ctx)
	return nil
}

// Stop stops the watcher and releases its resources.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

// Events returns an iterator over descriptor change events. The iterator
// ends when the watcher stops.
func (w *Watcher) Events() iter.Seq[Event] {
	return func(yield func(Event) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

// processEvents filters raw fsnotify events down to writes of the watched
// descriptor.
func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			select {
			case w.events <- Event{Path: w.path}:
			case <-ctx.Done():
				return
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			// Watching keeps going; a transient error must not silence it.
			w.logger.Error(zerr.Wrap(err, "watch error"))
		}
	}
}

// relevant reports whether the event touches the watched descriptor.
// Renames count: editors replace files on save.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Name != w.path {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}
