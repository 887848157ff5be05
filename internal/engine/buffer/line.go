package buffer

import "github.com/dshills/kilo/internal/renderer/highlight"

// Line is one line of the document.
//
// The slices returned by Raw, Render and Highlight belong to the line and
// must not be modified.
type Line struct {
	index  int
	raw    []byte
	render []byte
	hl     []highlight.Class

	// carryIn is the open-comment state the highlight was computed with.
	carryIn     bool
	openComment bool
}

// Index returns the line's position in the buffer.
func (l *Line) Index() int { return l.index }

// Raw returns the line's text without a trailing newline.
func (l *Line) Raw() []byte { return l.raw }

// Len returns the number of raw bytes.
func (l *Line) Len() int { return len(l.raw) }

// Render returns the line with tabs expanded.
func (l *Line) Render() []byte { return l.render }

// RenderLen returns the number of rendered columns.
func (l *Line) RenderLen() int { return len(l.render) }

// Highlight returns one class per rendered byte.
func (l *Line) Highlight() []highlight.Class { return l.hl }

// OpenComment reports whether a block comment is open at the end of the line.
func (l *Line) OpenComment() bool { return l.openComment }

// String returns the raw text.
func (l *Line) String() string { return string(l.raw) }

// SnapshotHighlight returns a copy of the highlight array.
func (l *Line) SnapshotHighlight() []highlight.Class {
	snap := make([]highlight.Class, len(l.hl))
	copy(snap, l.hl)
	return snap
}

// RestoreHighlight puts back a snapshot taken with SnapshotHighlight.
// Snapshots that no longer fit the line are ignored.
func (l *Line) RestoreHighlight(snap []highlight.Class) bool {
	if len(snap) != len(l.hl) {
		return false
	}
	copy(l.hl, snap)
	return true
}

// Paint sets the class of rendered bytes [start, end), clamped to the line.
// It is meant for transient overlays such as search matches; the next edit
// to the line recomputes the highlight from scratch.
func (l *Line) Paint(start, end int, c highlight.Class) {
	if start < 0 {
		start = 0
	}
	if end > len(l.hl) {
		end = len(l.hl)
	}
	for i := start; i < end; i++ {
		l.hl[i] = c
	}
}
