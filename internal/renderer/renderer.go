package renderer

import (
	"bytes"

	"github.com/dshills/kilo/internal/engine/buffer"
	"github.com/dshills/kilo/internal/renderer/highlight"
	"github.com/dshills/kilo/internal/renderer/viewport"
)

// Compositor builds frames.
type Compositor struct {
	// Welcome is shown a third of the way down an empty document.
	Welcome string
}

// NewCompositor creates a compositor whose welcome banner names version.
func NewCompositor(version string) *Compositor {
	return &Compositor{Welcome: "Kilo editor -- version " + version}
}

// Compose draws the text area of buf seen through vp, with the cursor at
// cur. The viewport is expected to already contain the cursor.
func (c *Compositor) Compose(buf *buffer.Buffer, vp *viewport.Viewport, cur buffer.Position) Frame {
	rows := vp.Height()
	f := Frame{Rows: make([]Row, rows)}

	start, end := vp.VisibleLineRange()
	for n := start; n < end; n++ {
		y := n - start
		line := buf.Line(n)
		switch {
		case line != nil:
			f.Rows[y] = drawLine(line, vp.LeftColumn(), vp.Width())
		case buf.Len() == 0 && y == rows/3:
			f.Rows[y] = c.welcome(vp.Width())
		default:
			f.Rows[y] = Row{Text([]byte("~"))}
		}
	}

	rx := 0
	if line := buf.Line(cur.Line); line != nil {
		rx = buf.Tabs().CharToRender(line.Raw(), cur.Col)
	}
	f.CursorRow, f.CursorCol = vp.BufferToScreen(cur.Line, rx)
	return f
}

func (c *Compositor) welcome(cols int) Row {
	msg := []byte(c.Welcome)
	if len(msg) > cols {
		msg = msg[:cols]
	}
	var b bytes.Buffer
	padding := (cols - len(msg)) / 2
	if padding > 0 {
		b.WriteByte('~')
		padding--
	}
	b.Write(bytes.Repeat([]byte{' '}, padding))
	b.Write(msg)
	return Row{Text(b.Bytes())}
}

func isControl(ch byte) bool {
	return ch < ' ' || ch == 127
}

// drawLine renders the columns [left, left+cols) of line.
func drawLine(line *buffer.Line, left, cols int) Row {
	render, hl := line.Render(), line.Highlight()
	end := min(len(render), left+cols)

	var (
		row     Row
		current highlight.Class
		colored bool
	)
	for j := left; j < end; j++ {
		ch := render[j]
		switch {
		case isControl(ch):
			glyph := byte('?')
			if ch <= 26 {
				glyph = '@' + ch
			}
			row = append(row, Control(glyph))
			if colored {
				row = append(row, SetClass(current))
			}
		case hl[j] == highlight.Normal:
			if colored {
				row = append(row, ResetColor())
				colored = false
			}
			row = row.appendText(ch)
		default:
			if !colored || hl[j] != current {
				current = hl[j]
				colored = true
				row = append(row, SetClass(current))
			}
			row = row.appendText(ch)
		}
	}
	if colored {
		row = append(row, ResetColor())
	}
	return row
}
