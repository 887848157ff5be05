// Package backend puts composed frames on a display.
//
// A Sink receives whole frames. The ANSI sink writes each frame to the
// terminal as a single escape-sequence stream; the tcell Terminal draws
// through a tcell screen and also supplies key events; the Recorder keeps
// frames in memory for tests.
package backend

import (
	"errors"

	"github.com/dshills/kilo/internal/renderer"
)

// ReservedRows is the number of screen rows below the text area: the status
// bar and the message bar.
const ReservedRows = 2

// ErrClosed is returned when drawing to a closed sink.
var ErrClosed = errors.New("backend: sink closed")

// Sink is a display surface for frames.
type Sink interface {
	// Size returns the full screen size, bars included.
	Size() (rows, cols int, err error)

	// Draw shows the frame.
	Draw(frame renderer.Frame) error

	// Close clears the display and releases it.
	Close() error
}

// Sizer reports the screen size.
type Sizer interface {
	Size() (rows, cols int, err error)
}

// SizeFunc adapts a function to Sizer.
type SizeFunc func() (rows, cols int, err error)

// Size calls f.
func (f SizeFunc) Size() (int, int, error) { return f() }
