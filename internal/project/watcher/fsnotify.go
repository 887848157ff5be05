package watcher

import (
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher watches a single file using fsnotify.
type FileWatcher struct {
	mu sync.RWMutex

	watcher *fsnotify.Watcher
	config  Config

	// path is the watched file; dir is the directory registered with fsnotify.
	path string
	dir  string

	// ignoreUntil holds a UnixNano deadline set by MarkSelfWrite.
	ignoreUntil atomic.Int64

	events chan Event
	errors chan error

	totalEvents atomic.Int64
	totalErrors atomic.Int64

	closed   bool
	closeCh  chan struct{}
	closedWg sync.WaitGroup
}

// NewFileWatcher creates a watcher. Call Watch to pick the file.
func NewFileWatcher(opts ...WatcherOption) (*FileWatcher, error) {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	if config.BufferSize <= 0 {
		config.BufferSize = DefaultConfig().BufferSize
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &FileWatcher{
		watcher: fsw,
		config:  config,
		events:  make(chan Event, config.BufferSize),
		errors:  make(chan error, config.BufferSize),
		closeCh: make(chan struct{}),
	}

	w.closedWg.Add(1)
	go w.processLoop()

	return w, nil
}

// Watch switches the watcher to path. The file need not exist, but its
// directory must.
func (w *FileWatcher) Watch(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(absPath)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return ErrPathNotExist
	}

	if dir != w.dir {
		if err := w.watcher.Add(dir); err != nil {
			return err
		}
		if w.dir != "" {
			_ = w.watcher.Remove(w.dir) // old directory may already be gone
		}
		w.dir = dir
	}
	w.path = absPath
	return nil
}

// Path returns the watched file, or "" before Watch.
func (w *FileWatcher) Path() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.path
}

// MarkSelfWrite suppresses events for the configured window, covering the
// editor's own save.
func (w *FileWatcher) MarkSelfWrite() {
	w.ignoreUntil.Store(time.Now().Add(w.config.SelfWriteWindow).UnixNano())
}

// Events returns the event channel.
func (w *FileWatcher) Events() <-chan Event {
	return w.events
}

// Errors returns the error channel.
func (w *FileWatcher) Errors() <-chan error {
	return w.errors
}

// Poll returns a pending event without blocking.
func (w *FileWatcher) Poll() (Event, bool) {
	select {
	case ev, ok := <-w.events:
		return ev, ok
	default:
		return Event{}, false
	}
}

// TotalEvents returns the number of events delivered.
func (w *FileWatcher) TotalEvents() int64 {
	return w.totalEvents.Load()
}

// TotalErrors returns the number of errors seen.
func (w *FileWatcher) TotalErrors() int64 {
	return w.totalErrors.Load()
}

// Close stops the watcher.
func (w *FileWatcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	w.closedWg.Wait()

	close(w.events)
	close(w.errors)

	return w.watcher.Close()
}

// processLoop handles incoming fsnotify events.
func (w *FileWatcher) processLoop() {
	defer w.closedWg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case fsEvent, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFSEvent(fsEvent)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.totalErrors.Add(1)
			select {
			case w.errors <- err:
			default:
			}
		}
	}
}

// handleFSEvent converts an fsnotify event and forwards it if it concerns
// the watched file.
func (w *FileWatcher) handleFSEvent(fsEvent fsnotify.Event) {
	op := convertOp(fsEvent.Op)
	if op == 0 {
		return
	}

	w.mu.RLock()
	path := w.path
	w.mu.RUnlock()
	if path == "" || filepath.Clean(fsEvent.Name) != path {
		return
	}

	now := time.Now()
	if now.UnixNano() < w.ignoreUntil.Load() {
		return
	}

	select {
	case w.events <- Event{Path: path, Op: op, Timestamp: now}:
		w.totalEvents.Add(1)
	default:
		// Channel full; one pending notice is enough.
	}
}

// convertOp converts fsnotify.Op to watcher.Op. Chmod is dropped.
func convertOp(fsOp fsnotify.Op) Op {
	var op Op
	if fsOp.Has(fsnotify.Create) {
		op |= OpCreate
	}
	if fsOp.Has(fsnotify.Write) {
		op |= OpWrite
	}
	if fsOp.Has(fsnotify.Remove) {
		op |= OpRemove
	}
	if fsOp.Has(fsnotify.Rename) {
		op |= OpRename
	}
	return op
}
