// Package watcher turns file system activity under the plugins directory
// into plugin lifecycle events. Raw fsnotify events are debounced and then
// classified against manifest fingerprints, so the burst of writes an
// installer produces surfaces as a single activation or upgrade event.
package watcher

import (
	"context"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/slink/internal/core/domain"
	"go.trai.ch/slink/internal/core/ports"
)

var _ ports.EventSource = (*Watcher)(nil)

// shouldSkipDirectories are directories that should not be watched.
var shouldSkipDirectories = map[string]bool{
	".git":         true,
	".jj":          true,
	"node_modules": true,
}

const (
	eventChannelBuffer = 100

	// debounceWindow coalesces the event bursts editors and package
	// managers produce for a single logical change.
	debounceWindow = 50 * time.Millisecond
)

// Watcher implements lifecycle event sourcing using fsnotify.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	debouncer *Debouncer
	prints    *Fingerprints
	log       ports.Logger
	batches   chan []string
	events    chan domain.LifecycleEvent
}

// NewWatcher creates a new plugins directory watcher.
func NewWatcher(log ports.Logger) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		fsWatcher: fsWatcher,
		log:       log,
		batches:   make(chan []string, eventChannelBuffer),
		events:    make(chan domain.LifecycleEvent, eventChannelBuffer),
	}
	w.debouncer = NewDebouncer(debounceWindow, w.enqueue)
	return w, nil
}

// Start begins watching the plugins directory rooted at root.
func (w *Watcher) Start(ctx context.Context, root string) error {
	w.prints = NewFingerprints(root, w.log)

	// Walk the directory tree and add all directories to the watcher.
	for dir := range w.watchRecursively(root) {
		if err := w.fsWatcher.Add(dir); err != nil {
			return err
		}
	}

	// Record the manifests already present so only changes relative to the
	// current state emit events.
	w.prints.Prime()

	go w.processEvents(ctx)

	return nil
}

// Stop flushes pending paths and releases all resources.
func (w *Watcher) Stop() error {
	w.debouncer.Flush()
	return w.fsWatcher.Close()
}

// Events returns an iterator of lifecycle events. The iterator ends when the
// watcher is stopped or its context is cancelled.
func (w *Watcher) Events() iter.Seq[domain.LifecycleEvent] {
	return func(yield func(domain.LifecycleEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

// watchRecursively walks the directory tree and yields all directories.
func (w *Watcher) watchRecursively(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// Continue walking even if a directory cannot be read.
				return nil //nolint:nilerr // unreadable entries are skipped, not fatal
			}
			if d.IsDir() {
				if shouldSkipDirectories[d.Name()] {
					return fs.SkipDir
				}
				if !yield(path) {
					return filepath.SkipAll
				}
			}
			return nil
		})
	}
}

// processEvents converts raw fsnotify events into debounced batches and
// turns classified batches into lifecycle events.
func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				// Stop flushed the debouncer before closing the watcher, so
				// anything still queued is already in the batch channel.
				w.drainBatches(ctx)
				return
			}
			w.handleEvent(event)
		case batch := <-w.batches:
			w.emitBatch(ctx, batch)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("file watch error: " + err.Error())
		}
	}
}

// handleEvent filters one fsnotify event down to the manifest paths it may
// affect and queues them for classification.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	path := event.Name

	// A new directory needs watches before its files produce events, plus a
	// sweep for manifests that landed before the watch attached.
	if event.Op&fsnotify.Create == fsnotify.Create {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			if shouldSkipDirectories[info.Name()] {
				return
			}
			for dir := range w.watchRecursively(path) {
				_ = w.fsWatcher.Add(dir)
			}
			w.sweepManifests(path)
			return
		}
	}

	// Deleting or renaming a plugin directory fires no event for the
	// manifest inside it, so queue the implied manifest path as well.
	if event.Op&fsnotify.Remove == fsnotify.Remove || event.Op&fsnotify.Rename == fsnotify.Rename {
		implied := filepath.Join(path, filepath.Base(path)+manifestExt)
		if _, ok := w.prints.manifestBasename(implied); ok {
			w.debouncer.Add(implied)
		}
	}

	if _, ok := w.prints.manifestBasename(path); ok {
		w.debouncer.Add(path)
	}
}

// sweepManifests queues every manifest below dir for classification.
func (w *Watcher) sweepManifests(dir string) {
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil //nolint:nilerr // unreadable entries are skipped, not fatal
		}
		if d.IsDir() {
			if shouldSkipDirectories[d.Name()] {
				return fs.SkipDir
			}
			return nil
		}
		if _, ok := w.prints.manifestBasename(path); ok {
			w.debouncer.Add(path)
		}
		return nil
	})
}

// enqueue hands a debounced batch to the event loop. The channel is buffered
// generously; a full channel means the watcher is shutting down and the
// batch can be dropped.
func (w *Watcher) enqueue(paths []string) {
	select {
	case w.batches <- paths:
	default:
	}
}

// emitBatch classifies a batch and sends the resulting events.
func (w *Watcher) emitBatch(ctx context.Context, batch []string) {
	for _, event := range w.prints.Classify(batch) {
		select {
		case w.events <- event:
		case <-ctx.Done():
			return
		}
	}
}

// drainBatches processes batches still queued at shutdown.
func (w *Watcher) drainBatches(ctx context.Context) {
	for {
		select {
		case batch := <-w.batches:
			w.emitBatch(ctx, batch)
		default:
			return
		}
	}
}
