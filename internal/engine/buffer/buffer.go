package buffer

import (
	"bytes"

	"github.com/dshills/kilo/internal/renderer/highlight"
	"github.com/dshills/kilo/internal/renderer/layout"
)

// Buffer is an ordered list of lines plus the state needed to render them.
type Buffer struct {
	lines   []*Line
	tabs    *layout.TabExpander
	grammar *highlight.Grammar

	// dirty counts modifications since the last load or save.
	dirty int

	// pending is the highlight work-list, reused between edits.
	pending []int
}

// NewBuffer creates an empty buffer.
func NewBuffer(opts ...Option) *Buffer {
	b := &Buffer{tabs: layout.NewTabExpander(layout.DefaultTabWidth)}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewBufferFromLines creates a buffer holding a copy of lines.
func NewBufferFromLines(lines [][]byte, opts ...Option) *Buffer {
	b := NewBuffer(opts...)
	b.Load(lines)
	return b
}

// Len returns the number of lines.
func (b *Buffer) Len() int {
	return len(b.lines)
}

// Line returns line i, or nil when i is out of range.
func (b *Buffer) Line(i int) *Line {
	if i < 0 || i >= len(b.lines) {
		return nil
	}
	return b.lines[i]
}

// LineLen returns the raw length of line i, or 0 when i is out of range.
func (b *Buffer) LineLen(i int) int {
	if l := b.Line(i); l != nil {
		return l.Len()
	}
	return 0
}

// Tabs returns the tab expander used to build render buffers.
func (b *Buffer) Tabs() *layout.TabExpander {
	return b.tabs
}

// Grammar returns the active grammar, or nil.
func (b *Buffer) Grammar() *highlight.Grammar {
	return b.grammar
}

// SetGrammar changes the grammar and rehighlights every line.
func (b *Buffer) SetGrammar(g *highlight.Grammar) {
	b.grammar = g
	b.highlightAll()
}

// Dirty reports whether the buffer changed since the last load or save.
func (b *Buffer) Dirty() bool {
	return b.dirty > 0
}

// MarkClean resets the modification counter, typically after a save.
func (b *Buffer) MarkClean() {
	b.dirty = 0
}

// Load replaces the whole document with a copy of lines and marks it clean.
func (b *Buffer) Load(lines [][]byte) {
	b.lines = make([]*Line, len(lines))
	for i, raw := range lines {
		l := &Line{index: i, raw: append([]byte(nil), raw...)}
		l.render = b.tabs.Expand(l.raw)
		b.lines[i] = l
	}
	b.highlightAll()
	b.dirty = 0
}

// Bytes returns the document in its saved form: every line followed by a
// newline.
func (b *Buffer) Bytes() []byte {
	var buf bytes.Buffer
	for _, l := range b.lines {
		buf.Write(l.raw)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// Text returns Bytes as a string.
func (b *Buffer) Text() string {
	return string(b.Bytes())
}

// update rebuilds line i after its raw bytes changed.
func (b *Buffer) update(i int) {
	l := b.lines[i]
	l.render = b.tabs.Expand(l.raw)
	b.highlightFrom(i)
}

// carryInto returns the open-comment state line i starts with.
func (b *Buffer) carryInto(i int) bool {
	return i > 0 && b.lines[i-1].openComment
}

// scan recomputes the highlight of line i from scratch.
func (b *Buffer) scan(i int) {
	l := b.lines[i]
	l.carryIn = b.carryInto(i)
	l.hl = make([]highlight.Class, len(l.render))
	l.openComment = highlight.Scan(b.grammar, l.render, l.carryIn, l.hl)
}

// highlightFrom rehighlights line i, then keeps going down the document for
// as long as a line's open-comment state differs from what the next line
// was highlighted with.
func (b *Buffer) highlightFrom(i int) {
	b.pending = append(b.pending[:0], i)
	for len(b.pending) > 0 {
		n := len(b.pending) - 1
		i := b.pending[n]
		b.pending = b.pending[:n]

		b.scan(i)
		next := i + 1
		if next < len(b.lines) && b.lines[next].carryIn != b.lines[i].openComment {
			b.pending = append(b.pending, next)
		}
	}
}

// reseed rehighlights line i if the state it was highlighted with is stale,
// which happens when the line above it changed identity.
func (b *Buffer) reseed(i int) {
	if i < len(b.lines) && b.lines[i].carryIn != b.carryInto(i) {
		b.highlightFrom(i)
	}
}

func (b *Buffer) highlightAll() {
	for i := range b.lines {
		b.scan(i)
	}
}

func (b *Buffer) renumber(from int) {
	for i := from; i < len(b.lines); i++ {
		b.lines[i].index = i
	}
}
