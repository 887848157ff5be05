// Package viewport tracks which part of the document is on screen.
package viewport

// Viewport is the visible window onto the document: a top line, a left
// rendered column, and a size in screen cells.
type Viewport struct {
	topLine    int
	leftColumn int
	width      int
	height     int
}

// NewViewport creates a viewport with the given size.
// Width and height are clamped to a minimum of 1.
func NewViewport(width, height int) *Viewport {
	v := &Viewport{}
	v.Resize(width, height)
	return v
}

// Width returns the viewport width.
func (v *Viewport) Width() int { return v.width }

// Height returns the viewport height.
func (v *Viewport) Height() int { return v.height }

// TopLine returns the first visible line.
func (v *Viewport) TopLine() int { return v.topLine }

// LeftColumn returns the first visible rendered column.
func (v *Viewport) LeftColumn() int { return v.leftColumn }

// Resize changes the viewport size.
func (v *Viewport) Resize(width, height int) {
	v.width = max(width, 1)
	v.height = max(height, 1)
}

// SetTopLine moves the window so that line is the first visible one.
// The next ScrollToReveal clamps it back around the cursor, which is how a
// search result ends up at the top of the screen.
func (v *Viewport) SetTopLine(line int) {
	v.topLine = max(line, 0)
}

// SetLeftColumn sets the first visible rendered column.
func (v *Viewport) SetLeftColumn(col int) {
	v.leftColumn = max(col, 0)
}

// ScrollToReveal moves the window by the least amount that makes line and
// rendered column col visible. It reports whether the window moved.
func (v *Viewport) ScrollToReveal(line, col int) bool {
	top, left := v.topLine, v.leftColumn

	if line < v.topLine {
		v.topLine = line
	}
	if line >= v.topLine+v.height {
		v.topLine = line - v.height + 1
	}
	if col < v.leftColumn {
		v.leftColumn = col
	}
	if col >= v.leftColumn+v.width {
		v.leftColumn = col - v.width + 1
	}

	return top != v.topLine || left != v.leftColumn
}

// VisibleLineRange returns the first visible line and the line after the
// last one.
func (v *Viewport) VisibleLineRange() (start, end int) {
	return v.topLine, v.topLine + v.height
}

// BufferToScreen converts a line and rendered column to a screen position.
func (v *Viewport) BufferToScreen(line, col int) (screenRow, screenCol int) {
	return line - v.topLine, col - v.leftColumn
}
