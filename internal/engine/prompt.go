package engine

import (
	"fmt"

	"github.com/dshills/kilo/internal/engine/cursor"
	"github.com/dshills/kilo/internal/engine/search"
	"github.com/dshills/kilo/internal/input/key"
	"github.com/dshills/kilo/internal/input/mode"
)

// Prompt formats. The %s is replaced by the text typed so far.
const (
	SearchPrompt = "Search: %s (ESC/Arrows/Enter)"
	SaveAsPrompt = "Save as: %s (ESC to cancel)"
)

type promptResult int

const (
	promptEditing promptResult = iota
	promptAccepted
	promptCanceled
)

// prompt is a one-line input shown in the message bar.
type prompt struct {
	format string
	input  []byte
}

func (p *prompt) reset() {
	p.input = p.input[:0]
}

func (p *prompt) text() string {
	return fmt.Sprintf(p.format, p.input)
}

// edit applies ev to the input. Enter only accepts a non-empty input.
func (p *prompt) edit(ev key.Event) promptResult {
	switch {
	case ev.Key == key.KeyBackspace, ev.Key == key.KeyDelete, ev.IsCtrl('h'):
		if n := len(p.input); n > 0 {
			p.input = p.input[:n-1]
		}
	case ev.Key == key.KeyEscape:
		return promptCanceled
	case ev.IsEnter():
		if len(p.input) > 0 {
			return promptAccepted
		}
	case ev.IsPrintable():
		p.input = append(p.input, byte(ev.Rune))
	}
	return promptEditing
}

// searchMode moves the cursor to matches while the query is typed.
type searchMode struct {
	e       *Engine
	prompt  prompt
	session *search.Session

	// State restored on Escape.
	savedCursor cursor.Cursor
	savedTop    int
	savedLeft   int
}

func newSearchMode(e *Engine) *searchMode {
	return &searchMode{e: e, prompt: prompt{format: SearchPrompt}}
}

func (m *searchMode) Name() string { return mode.ModeSearch }

func (m *searchMode) Enter() error {
	e := m.e
	m.savedCursor = e.cur
	m.savedTop = e.vp.TopLine()
	m.savedLeft = e.vp.LeftColumn()
	m.session = search.NewSession(e.buf)
	m.prompt.reset()
	e.setMessageText(m.prompt.text())
	return nil
}

func (m *searchMode) Exit() error {
	if m.session != nil {
		m.session.Close()
		m.session = nil
	}
	return nil
}

func (m *searchMode) HandleKey(ev key.Event) error {
	e := m.e
	switch m.prompt.edit(ev) {
	case promptCanceled:
		e.cur = m.savedCursor
		e.vp.SetTopLine(m.savedTop)
		e.vp.SetLeftColumn(m.savedLeft)
		e.SetMessage("")
		return e.modes.Pop()
	case promptAccepted:
		e.SetMessage("")
		return e.modes.Pop()
	}
	e.setMessageText(m.prompt.text())

	dir := search.Forward
	switch ev.Key {
	case key.KeyRight, key.KeyDown:
	case key.KeyLeft, key.KeyUp:
		dir = search.Backward
	default:
		m.session.Reset()
	}

	res, ok := m.session.Find(string(m.prompt.input), dir)
	if !ok {
		return nil
	}
	e.cur = cursor.New(res.Col, res.Line)
	// Scrolling from past the end puts the match on the top row.
	e.vp.SetTopLine(e.buf.Len())
	return nil
}

// saveAsMode asks for a file name and saves under it.
type saveAsMode struct {
	e      *Engine
	prompt prompt
}

func newSaveAsMode(e *Engine) *saveAsMode {
	return &saveAsMode{e: e, prompt: prompt{format: SaveAsPrompt}}
}

func (m *saveAsMode) Name() string { return mode.ModeSaveAs }

func (m *saveAsMode) Enter() error {
	m.prompt.reset()
	m.e.setMessageText(m.prompt.text())
	return nil
}

func (m *saveAsMode) Exit() error { return nil }

func (m *saveAsMode) HandleKey(ev key.Event) error {
	e := m.e
	switch m.prompt.edit(ev) {
	case promptCanceled:
		e.SetMessage("Save aborted")
		return e.modes.Pop()
	case promptAccepted:
		e.SetMessage("")
		if err := e.modes.Pop(); err != nil {
			return err
		}
		e.SetFilename(string(m.prompt.input))
		// Failures are reported in the message bar.
		_, _ = e.Save()
		return nil
	}
	e.setMessageText(m.prompt.text())
	return nil
}
