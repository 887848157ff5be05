package backend

import (
	"sync"

	"github.com/dshills/kilo/internal/renderer"
)

// Recorder is an in-memory sink with a fixed size.
type Recorder struct {
	mu     sync.Mutex
	rows   int
	cols   int
	frames []renderer.Frame
	closed bool
}

// NewRecorder creates a recorder reporting the given screen size.
func NewRecorder(rows, cols int) *Recorder {
	return &Recorder{rows: rows, cols: cols}
}

func (r *Recorder) Size() (int, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rows, r.cols, nil
}

// Resize changes the reported size.
func (r *Recorder) Resize(rows, cols int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows, r.cols = rows, cols
}

func (r *Recorder) Draw(frame renderer.Frame) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrClosed
	}
	r.frames = append(r.frames, frame)
	return nil
}

func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}

// Closed reports whether Close was called.
func (r *Recorder) Closed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}

// Frames returns the number of frames drawn.
func (r *Recorder) Frames() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.frames)
}

// Last returns the most recent frame.
func (r *Recorder) Last() (renderer.Frame, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.frames) == 0 {
		return renderer.Frame{}, false
	}
	return r.frames[len(r.frames)-1], true
}

// Screen returns the last frame as plain text lines: the text rows, the
// status bar and the message bar.
func (r *Recorder) Screen() []string {
	f, ok := r.Last()
	if !ok {
		return nil
	}
	lines := make([]string, 0, len(f.Rows)+ReservedRows)
	for _, row := range f.Rows {
		lines = append(lines, row.Plain())
	}
	return append(lines, f.Status, f.Message)
}
