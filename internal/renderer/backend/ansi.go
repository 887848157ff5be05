package backend

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/dshills/kilo/internal/renderer"
	"github.com/dshills/kilo/internal/renderer/core"
	"github.com/dshills/kilo/internal/renderer/highlight"
	"github.com/dshills/kilo/internal/renderer/style"
)

// Escape sequences used by the ANSI sink.
const (
	seqHideCursor = "\x1b[?25l"
	seqShowCursor = "\x1b[?25h"
	seqHome       = "\x1b[H"
	seqClear      = "\x1b[2J"
	seqEraseLine  = "\x1b[K"
	seqInverse    = "\x1b[7m"
	seqResetAttrs = "\x1b[m"
	seqDefaultFg  = "\x1b[39m"
	seqBoldOn     = "\x1b[1m"
	seqBoldOff    = "\x1b[22m"
)

// ANSI draws frames as VT100 escape sequences. Each frame is assembled in
// memory and written with a single Write.
type ANSI struct {
	mu     sync.Mutex
	out    io.Writer
	size   Sizer
	theme  *style.Theme
	buf    bytes.Buffer
	closed bool
}

// NewANSI creates an ANSI sink writing to out. A nil theme uses the kilo
// colours.
func NewANSI(out io.Writer, size Sizer, theme *style.Theme) *ANSI {
	if theme == nil {
		theme = style.Kilo()
	}
	return &ANSI{out: out, size: size, theme: theme}
}

// Size returns the terminal size.
func (a *ANSI) Size() (int, int, error) {
	return a.size.Size()
}

// Draw writes the frame.
func (a *ANSI) Draw(frame renderer.Frame) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return ErrClosed
	}

	a.buf.Reset()
	a.buf.WriteString(seqHideCursor)
	a.buf.WriteString(seqHome)

	for _, row := range frame.Rows {
		a.writeRow(row)
		a.buf.WriteString(seqEraseLine)
		a.buf.WriteString("\r\n")
	}

	a.buf.WriteString(seqEraseLine)
	a.buf.WriteString(seqInverse)
	a.buf.WriteString(frame.Status)
	a.buf.WriteString(seqResetAttrs)
	a.buf.WriteString("\r\n")

	a.buf.WriteString(seqEraseLine)
	a.buf.WriteString(frame.Message)

	fmt.Fprintf(&a.buf, "\x1b[%d;%dH", frame.CursorRow+1, frame.CursorCol+1)
	a.buf.WriteString(seqShowCursor)

	_, err := a.out.Write(a.buf.Bytes())
	return err
}

// writeRow emits one text row. Colours are switched only when they change.
func (a *ANSI) writeRow(row renderer.Row) {
	bold := false
	for _, in := range row {
		switch in.Op {
		case renderer.OpText:
			a.buf.Write(in.Text)
		case renderer.OpSetClass:
			s := a.theme.Style(in.Class)
			a.buf.WriteString(a.classSequence(in.Class))
			if b := s.Attributes.Has(core.AttrBold); b != bold {
				bold = b
				if b {
					a.buf.WriteString(seqBoldOn)
				} else {
					a.buf.WriteString(seqBoldOff)
				}
			}
		case renderer.OpResetColor:
			a.buf.WriteString(seqDefaultFg)
			if bold {
				bold = false
				a.buf.WriteString(seqBoldOff)
			}
		case renderer.OpControl:
			a.buf.WriteString(seqInverse)
			a.buf.WriteByte(in.Glyph)
			a.buf.WriteString(seqResetAttrs)
			bold = false
		}
	}
}

// foreground returns the escape sequence selecting c as text colour.
func foreground(c core.Color) string {
	switch {
	case c.IsDefault():
		return seqDefaultFg
	case c.Indexed && c.Index() < 8:
		return fmt.Sprintf("\x1b[3%dm", c.Index())
	case c.Indexed:
		return fmt.Sprintf("\x1b[38;5;%dm", c.Index())
	}
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", c.R, c.G, c.B)
}

// classSequence returns the escape sequence selecting the colour of a class.
func (a *ANSI) classSequence(c highlight.Class) string {
	return foreground(a.theme.Color(c))
}

// Close clears the screen and homes the cursor.
func (a *ANSI) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return nil
	}
	a.closed = true
	_, err := io.WriteString(a.out, seqClear+seqHome)
	return err
}
