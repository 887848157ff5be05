package backend

import (
	"sync"
	"time"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/kilo/internal/input/key"
	"github.com/dshills/kilo/internal/renderer"
	"github.com/dshills/kilo/internal/renderer/core"
	"github.com/dshills/kilo/internal/renderer/highlight"
	"github.com/dshills/kilo/internal/renderer/style"
)

// DefaultReadTimeout bounds how long Next waits for a key.
const DefaultReadTimeout = 100 * time.Millisecond

// Terminal is a Sink drawing through tcell. It is also a key.Source: tcell
// decodes the input and Next converts its events to the editor's byte-level
// key events.
type Terminal struct {
	screen  tcell.Screen
	theme   *style.Theme
	timeout time.Duration

	mu      sync.Mutex
	pending []byte
	closed  bool
}

// NewTerminal creates and initializes a tcell terminal.
func NewTerminal(theme *style.Theme, timeout time.Duration) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return NewTerminalWithScreen(screen, theme, timeout), nil
}

// NewTerminalWithScreen wraps an initialized screen.
func NewTerminalWithScreen(screen tcell.Screen, theme *style.Theme, timeout time.Duration) *Terminal {
	if theme == nil {
		theme = style.Kilo()
	}
	if timeout <= 0 {
		timeout = DefaultReadTimeout
	}
	return &Terminal{screen: screen, theme: theme, timeout: timeout}
}

// Size returns the screen size.
func (t *Terminal) Size() (int, int, error) {
	w, h := t.screen.Size()
	return h, w, nil
}

// Draw puts the frame on the screen.
func (t *Terminal) Draw(frame renderer.Frame) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return ErrClosed
	}

	t.screen.Clear()
	for y, row := range frame.Rows {
		t.drawRow(y, row)
	}

	y := len(frame.Rows)
	inverse := tcell.StyleDefault.Reverse(true)
	t.drawString(0, y, frame.Status, inverse)
	t.drawString(0, y+1, frame.Message, tcell.StyleDefault)

	t.screen.ShowCursor(frame.CursorCol, frame.CursorRow)
	t.screen.Show()
	return nil
}

func (t *Terminal) drawRow(y int, row renderer.Row) {
	x := 0
	current := tcell.StyleDefault
	for _, in := range row {
		switch in.Op {
		case renderer.OpText:
			x = t.drawBytes(x, y, in.Text, current)
		case renderer.OpSetClass:
			current = t.classStyle(in.Class)
		case renderer.OpResetColor:
			current = tcell.StyleDefault
		case renderer.OpControl:
			t.screen.SetContent(x, y, rune(in.Glyph), nil, tcell.StyleDefault.Reverse(true))
			x++
			current = tcell.StyleDefault
		}
	}
}

// drawBytes places text starting at column x. Each byte occupies one
// column so that screen columns keep matching render offsets; a multi-byte
// UTF-8 sequence is drawn at its first column and pads the rest.
func (t *Terminal) drawBytes(x, y int, text []byte, st tcell.Style) int {
	for len(text) > 0 {
		r, n := utf8.DecodeRune(text)
		t.screen.SetContent(x, y, r, nil, st)
		x += n
		text = text[n:]
	}
	return x
}

func (t *Terminal) drawString(x, y int, s string, st tcell.Style) {
	w, _ := t.screen.Size()
	for _, r := range s {
		if x >= w {
			return
		}
		t.screen.SetContent(x, y, r, nil, st)
		x++
	}
	for ; x < w; x++ {
		t.screen.SetContent(x, y, ' ', nil, st)
	}
}

func (t *Terminal) classStyle(c highlight.Class) tcell.Style {
	return convertStyle(t.theme.Style(c))
}

// convertStyle converts a theme style to tcell.Style.
func convertStyle(s core.Style) tcell.Style {
	st := tcell.StyleDefault.Foreground(convertColor(s.Foreground))
	if s.Attributes.Has(core.AttrBold) {
		st = st.Bold(true)
	}
	if s.Attributes.Has(core.AttrReverse) {
		st = st.Reverse(true)
	}
	return st
}

// convertColor converts a core colour to tcell.Color.
func convertColor(c core.Color) tcell.Color {
	switch {
	case c.IsDefault():
		return tcell.ColorDefault
	case c.Indexed:
		return tcell.PaletteColor(int(c.Index()))
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Next returns the next key event, or key.ErrTimeout when none arrives
// within the read timeout. Resizes also return key.ErrTimeout so the caller
// re-queries the size.
func (t *Terminal) Next() (key.Event, error) {
	if b, ok := t.popPending(); ok {
		return key.NewRuneEvent(rune(b)), nil
	}

	timer := time.AfterFunc(t.timeout, func() {
		_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil)) // best-effort; queue may be full
	})
	ev := t.screen.PollEvent()
	timer.Stop()

	switch e := ev.(type) {
	case nil:
		return key.Event{}, ErrClosed
	case *tcell.EventKey:
		return t.convertKey(e)
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return key.Event{}, key.ErrTimeout
}

func (t *Terminal) popPending() (byte, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.pending) == 0 {
		return 0, false
	}
	b := t.pending[0]
	t.pending = t.pending[1:]
	return b, true
}

// convertKey maps a tcell key to the event the byte decoder would produce
// for the same input.
func (t *Terminal) convertKey(e *tcell.EventKey) (key.Event, error) {
	switch k := e.Key(); k {
	case tcell.KeyRune:
		r := e.Rune()
		if e.Modifiers()&tcell.ModCtrl != 0 && r >= 'a' && r <= 'z' {
			return key.NewRuneEvent(key.Ctrl(byte(r))), nil
		}
		if r < utf8.RuneSelf {
			return key.NewRuneEvent(r), nil
		}
		var enc [utf8.UTFMax]byte
		n := utf8.EncodeRune(enc[:], r)
		t.mu.Lock()
		t.pending = append(t.pending, enc[1:n]...)
		t.mu.Unlock()
		return key.NewRuneEvent(rune(enc[0])), nil
	case tcell.KeyEscape:
		return key.NewSpecialEvent(key.KeyEscape), nil
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		// tcell reports DEL as KeyBackspace.
		return key.NewSpecialEvent(key.KeyBackspace), nil
	case tcell.KeyDelete:
		return key.NewSpecialEvent(key.KeyDelete), nil
	case tcell.KeyHome:
		return key.NewSpecialEvent(key.KeyHome), nil
	case tcell.KeyEnd:
		return key.NewSpecialEvent(key.KeyEnd), nil
	case tcell.KeyPgUp:
		return key.NewSpecialEvent(key.KeyPageUp), nil
	case tcell.KeyPgDn:
		return key.NewSpecialEvent(key.KeyPageDown), nil
	case tcell.KeyUp:
		return key.NewSpecialEvent(key.KeyUp), nil
	case tcell.KeyDown:
		return key.NewSpecialEvent(key.KeyDown), nil
	case tcell.KeyLeft:
		return key.NewSpecialEvent(key.KeyLeft), nil
	case tcell.KeyRight:
		return key.NewSpecialEvent(key.KeyRight), nil
	default:
		if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			return key.NewRuneEvent(key.Ctrl(byte('a' + k - tcell.KeyCtrlA))), nil
		}
		// The remaining control keys share their ASCII codes: KeyEnter is
		// '\r', KeyTab is '\t'.
		if k < 0x20 {
			return key.NewRuneEvent(rune(k)), nil
		}
	}
	return key.Event{}, key.ErrTimeout
}

// Close restores the terminal.
func (t *Terminal) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return nil
	}
	t.closed = true
	t.screen.Fini()
	return nil
}
