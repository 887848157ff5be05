package engine

import (
	"errors"

	"github.com/dshills/kilo/internal/input/key"
	"github.com/dshills/kilo/internal/input/mode"
)

// normalMode edits and navigates the document.
type normalMode struct {
	e *Engine

	// quitLeft counts the Ctrl-Q presses still needed to leave a modified
	// document. Any other key resets it.
	quitLeft int
}

func newNormalMode(e *Engine) *normalMode {
	return &normalMode{e: e, quitLeft: e.quitTimes}
}

func (m *normalMode) Name() string { return mode.ModeNormal }
func (m *normalMode) Enter() error { return nil }
func (m *normalMode) Exit() error  { return nil }

func (m *normalMode) HandleKey(ev key.Event) error {
	e := m.e
	if ev.IsCtrl('q') {
		if e.buf.Dirty() && m.quitLeft > 0 {
			e.SetMessage("WARNING!!! File has unsaved changes. Press Ctrl-Q %d more time to quit.", m.quitLeft)
			m.quitLeft--
			return nil
		}
		e.quit = true
		return nil
	}
	m.quitLeft = e.quitTimes

	switch ev.Key {
	case key.KeyRune:
		return m.handleRune(ev.Rune)
	case key.KeyBackspace:
		e.deleteChar()
	case key.KeyDelete:
		e.cur = e.cur.Right(e.buf)
		e.deleteChar()
	case key.KeyHome:
		e.cur = e.cur.Home()
	case key.KeyEnd:
		e.cur = e.cur.End(e.buf)
	case key.KeyPageUp:
		e.cur = e.cur.PageUp(e.buf, e.vp.TopLine(), e.vp.Height())
	case key.KeyPageDown:
		e.cur = e.cur.PageDown(e.buf, e.vp.TopLine(), e.vp.Height())
	case key.KeyUp:
		e.cur = e.cur.Up(e.buf)
	case key.KeyDown:
		e.cur = e.cur.Down(e.buf)
	case key.KeyLeft:
		e.cur = e.cur.Left(e.buf)
	case key.KeyRight:
		e.cur = e.cur.Right(e.buf)
	case key.KeyEscape:
	}
	return nil
}

func (m *normalMode) handleRune(r rune) error {
	e := m.e
	switch r {
	case key.RuneEnter:
		e.insertNewline()
	case key.Ctrl('s'):
		if _, err := e.Save(); errors.Is(err, ErrNoFilename) {
			return e.modes.Push(mode.ModeSaveAs)
		}
	case key.Ctrl('f'):
		return e.modes.Push(mode.ModeSearch)
	case key.Ctrl('h'):
		e.deleteChar()
	case key.Ctrl('l'):
	default:
		if r >= 0 && r <= 0xff {
			e.insertChar(byte(r))
		}
	}
	return nil
}
