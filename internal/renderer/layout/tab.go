package layout

// DefaultTabWidth is the tab stop used when none is configured.
const DefaultTabWidth = 8

// TabExpander converts between character and render columns for a fixed
// tab width.
type TabExpander struct {
	tabWidth int
}

// NewTabExpander creates a tab expander with the given tab width.
// Widths below 1 fall back to DefaultTabWidth.
func NewTabExpander(tabWidth int) *TabExpander {
	if tabWidth < 1 {
		tabWidth = DefaultTabWidth
	}
	return &TabExpander{tabWidth: tabWidth}
}

// TabWidth returns the current tab width.
func (t *TabExpander) TabWidth() int {
	return t.tabWidth
}

// NextTabStop returns the next tab stop column after the given column.
func (t *TabExpander) NextTabStop(col int) int {
	return col + t.tabWidth - (col % t.tabWidth)
}

// advance returns the render column after drawing c at col.
func (t *TabExpander) advance(col int, c byte) int {
	if c == '\t' {
		return t.NextTabStop(col)
	}
	return col + 1
}

// CharToRender returns the render column of the character at index cx.
// Indexes past the end of raw are clamped to its length.
func (t *TabExpander) CharToRender(raw []byte, cx int) int {
	if cx > len(raw) {
		cx = len(raw)
	}
	rx := 0
	for i := 0; i < cx; i++ {
		rx = t.advance(rx, raw[i])
	}
	return rx
}

// RenderToChar returns the index of the character covering render column rx.
// A column inside an expanded tab maps to the tab itself. Columns past the
// end of the line map to len(raw).
func (t *TabExpander) RenderToChar(raw []byte, rx int) int {
	col := 0
	for cx, c := range raw {
		col = t.advance(col, c)
		if col > rx {
			return cx
		}
	}
	return len(raw)
}

// Width returns the rendered width of raw.
func (t *TabExpander) Width(raw []byte) int {
	return t.CharToRender(raw, len(raw))
}

// Expand returns the render form of raw, with every tab replaced by the
// spaces needed to reach the next tab stop.
func (t *TabExpander) Expand(raw []byte) []byte {
	out := make([]byte, 0, len(raw))
	for _, c := range raw {
		if c != '\t' {
			out = append(out, c)
			continue
		}
		out = append(out, ' ')
		for len(out)%t.tabWidth != 0 {
			out = append(out, ' ')
		}
	}
	return out
}
