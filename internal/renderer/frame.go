package renderer

import (
	"bytes"

	"github.com/dshills/kilo/internal/renderer/highlight"
)

// Op is the kind of a drawing instruction.
type Op uint8

const (
	// OpText draws Text in the current colour.
	OpText Op = iota
	// OpSetClass switches the foreground to the colour of Class.
	OpSetClass
	// OpResetColor switches back to the default foreground.
	OpResetColor
	// OpControl draws Glyph in inverse video. The active colour must be
	// re-established afterwards, which the compositor does with an
	// OpSetClass when one was active.
	OpControl
)

// Instruction is one drawing step.
type Instruction struct {
	Op    Op
	Text  []byte
	Class highlight.Class
	Glyph byte
}

// Text returns a text instruction.
func Text(s []byte) Instruction { return Instruction{Op: OpText, Text: s} }

// SetClass returns a colour change instruction.
func SetClass(c highlight.Class) Instruction { return Instruction{Op: OpSetClass, Class: c} }

// ResetColor returns an instruction restoring the default colour.
func ResetColor() Instruction { return Instruction{Op: OpResetColor} }

// Control returns an inverse-video glyph instruction.
func Control(glyph byte) Instruction { return Instruction{Op: OpControl, Glyph: glyph} }

// Row is the instructions for one screen row.
type Row []Instruction

// appendText adds ch to the trailing text instruction, starting one if
// needed.
func (r Row) appendText(ch byte) Row {
	if n := len(r); n > 0 && r[n-1].Op == OpText {
		r[n-1].Text = append(r[n-1].Text, ch)
		return r
	}
	return append(r, Text([]byte{ch}))
}

// Plain returns the characters the row shows, without colours.
func (r Row) Plain() string {
	var b bytes.Buffer
	for _, in := range r {
		switch in.Op {
		case OpText:
			b.Write(in.Text)
		case OpControl:
			b.WriteByte(in.Glyph)
		}
	}
	return b.String()
}

// Frame is everything needed to draw one screen.
type Frame struct {
	// Rows holds the text area, one entry per viewport row.
	Rows []Row

	// Status is the status bar text, already padded to the screen width.
	Status string

	// Message is the message bar text.
	Message string

	// CursorRow and CursorCol are the cursor's screen position, 0-based,
	// within the text area.
	CursorRow int
	CursorCol int
}
