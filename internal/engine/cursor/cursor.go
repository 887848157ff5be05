package cursor

import "github.com/dshills/kilo/internal/engine/buffer"

// Lines is the view of a document the cursor needs.
type Lines interface {
	Len() int
	LineLen(i int) int
}

// Cursor is an insertion point in character coordinates.
type Cursor struct {
	pos buffer.Position
}

// New creates a cursor at the given column and line.
func New(col, line int) Cursor {
	return Cursor{pos: buffer.Position{Line: max(line, 0), Col: max(col, 0)}}
}

// Position returns the cursor's position.
func (c Cursor) Position() buffer.Position { return c.pos }

// Line returns the cursor's line number.
func (c Cursor) Line() int { return c.pos.Line }

// Col returns the cursor's character column.
func (c Cursor) Col() int { return c.pos.Col }

// String returns a human-readable representation of the cursor.
func (c Cursor) String() string { return c.pos.String() }

// lineLen is 0 on the line after the last one.
func lineLen(doc Lines, line int) int {
	if line >= doc.Len() {
		return 0
	}
	return doc.LineLen(line)
}

// Clamp returns the cursor moved into the document: the line is at most
// doc.Len() and the column at most the line's length.
func (c Cursor) Clamp(doc Lines) Cursor {
	line := min(c.pos.Line, doc.Len())
	col := min(c.pos.Col, lineLen(doc, line))
	return New(col, line)
}

// Left moves one character left, wrapping to the end of the previous line.
func (c Cursor) Left(doc Lines) Cursor {
	col, line := c.pos.Col, c.pos.Line
	switch {
	case col > 0:
		col--
	case line > 0:
		line--
		col = lineLen(doc, line)
	}
	return New(col, line).Clamp(doc)
}

// Right moves one character right, wrapping to the start of the next line.
// It does nothing on the line after the last one.
func (c Cursor) Right(doc Lines) Cursor {
	col, line := c.pos.Col, c.pos.Line
	if line < doc.Len() {
		switch n := doc.LineLen(line); {
		case col < n:
			col++
		case col == n:
			line++
			col = 0
		}
	}
	return New(col, line).Clamp(doc)
}

// Up moves one line up, clamping the column.
func (c Cursor) Up(doc Lines) Cursor {
	line := c.pos.Line
	if line > 0 {
		line--
	}
	return New(c.pos.Col, line).Clamp(doc)
}

// Down moves one line down, stopping at the line after the last one.
func (c Cursor) Down(doc Lines) Cursor {
	line := c.pos.Line
	if line < doc.Len() {
		line++
	}
	return New(c.pos.Col, line).Clamp(doc)
}

// Home moves to the start of the line.
func (c Cursor) Home() Cursor {
	return New(0, c.pos.Line)
}

// End moves to the end of the line.
func (c Cursor) End(doc Lines) Cursor {
	if c.pos.Line >= doc.Len() {
		return c
	}
	return New(doc.LineLen(c.pos.Line), c.pos.Line)
}

// PageUp moves to the top of the window starting at line top, then up by
// one screenful of rows.
func (c Cursor) PageUp(doc Lines, top, rows int) Cursor {
	next := New(c.pos.Col, top).Clamp(doc)
	for range rows {
		next = next.Up(doc)
	}
	return next
}

// PageDown moves to the bottom of the window starting at line top, then
// down by one screenful of rows.
func (c Cursor) PageDown(doc Lines, top, rows int) Cursor {
	next := New(c.pos.Col, top+rows-1).Clamp(doc)
	for range rows {
		next = next.Down(doc)
	}
	return next
}
