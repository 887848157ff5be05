package buffer

import "slices"

// InsertLine inserts a new line holding a copy of content at index at.
// Indexes outside [0, Len()] are ignored.
func (b *Buffer) InsertLine(at int, content []byte) {
	if at < 0 || at > len(b.lines) {
		return
	}
	l := &Line{raw: append([]byte(nil), content...)}
	b.lines = slices.Insert(b.lines, at, l)
	b.renumber(at)
	b.update(at)
	b.dirty++
}

// DeleteLine removes line at. Indexes outside [0, Len()) are ignored.
func (b *Buffer) DeleteLine(at int) {
	if at < 0 || at >= len(b.lines) {
		return
	}
	b.lines = slices.Delete(b.lines, at, at+1)
	b.renumber(at)
	b.reseed(at)
	b.dirty++
}

// InsertChar inserts ch into line before column at. A column outside
// [0, Len()] appends at the end of the line. Unknown lines are ignored.
func (b *Buffer) InsertChar(line, at int, ch byte) {
	l := b.Line(line)
	if l == nil {
		return
	}
	if at < 0 || at > len(l.raw) {
		at = len(l.raw)
	}
	l.raw = slices.Insert(l.raw, at, ch)
	b.update(line)
	b.dirty++
}

// DeleteChar removes the character at column at. Columns outside
// [0, Len()) and unknown lines are ignored.
func (b *Buffer) DeleteChar(line, at int) {
	l := b.Line(line)
	if l == nil || at < 0 || at >= len(l.raw) {
		return
	}
	l.raw = slices.Delete(l.raw, at, at+1)
	b.update(line)
	b.dirty++
}

// AppendText appends text to the end of line.
func (b *Buffer) AppendText(line int, text []byte) {
	l := b.Line(line)
	if l == nil {
		return
	}
	l.raw = append(l.raw, text...)
	b.update(line)
	b.dirty++
}

// SplitAt breaks line at column col. The line keeps its first col bytes and
// the remainder becomes a new line directly below it. The column is clamped
// to the line.
func (b *Buffer) SplitAt(line, col int) {
	l := b.Line(line)
	if l == nil {
		return
	}
	col = max(0, min(col, len(l.raw)))
	rest := append([]byte(nil), l.raw[col:]...)
	l.raw = l.raw[:col]
	b.update(line)
	b.InsertLine(line+1, rest)
}

// MergeWithPrevious appends line to the line above it and removes it.
// It returns the column in the merged line where the joined text starts.
// The first line and unknown lines are left alone and report false.
func (b *Buffer) MergeWithPrevious(line int) (int, bool) {
	if line <= 0 || line >= len(b.lines) {
		return 0, false
	}
	col := len(b.lines[line-1].raw)
	b.AppendText(line-1, b.lines[line].raw)
	b.DeleteLine(line)
	return col, true
}
