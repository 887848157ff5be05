package engine

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/dshills/kilo/internal/engine/buffer"
	"github.com/dshills/kilo/internal/engine/cursor"
	"github.com/dshills/kilo/internal/input/key"
	"github.com/dshills/kilo/internal/input/mode"
	"github.com/dshills/kilo/internal/project/filestore"
	"github.com/dshills/kilo/internal/renderer"
	"github.com/dshills/kilo/internal/renderer/highlight"
	"github.com/dshills/kilo/internal/renderer/statusline"
	"github.com/dshills/kilo/internal/renderer/viewport"
)

// HelpMessage is shown when the editor starts.
const HelpMessage = "HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find"

// ReservedRows is the number of screen rows used by the status and message
// bars.
const ReservedRows = 2

// Engine is the editor state: one document, its cursor and viewport, the
// status bar and the input modes.
type Engine struct {
	buf        *buffer.Buffer
	cur        cursor.Cursor
	vp         *viewport.Viewport
	status     *statusline.StatusLine
	compositor *renderer.Compositor
	modes      *mode.Manager
	filename   string
	quit       bool

	// Configuration
	tabStop        int
	quitTimes      int
	messageTimeout time.Duration
	version        string
	registry       *highlight.Registry
	storage        Storage
	logger         Logger
	now            func() time.Time
}

// New creates an Engine with an empty, unnamed document.
func New(opts ...Option) *Engine {
	e := &Engine{
		tabStop:        DefaultTabStop,
		quitTimes:      DefaultQuitTimes,
		messageTimeout: statusline.DefaultMessageTimeout,
		version:        DefaultVersion,
		registry:       highlight.DefaultRegistry(),
		logger:         nopLogger{},
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.storage == nil {
		e.storage = filestore.NewStore()
	}

	e.buf = buffer.NewBuffer(buffer.WithTabWidth(e.tabStop))
	e.vp = viewport.NewViewport(80, 24-ReservedRows)
	e.status = statusline.New(e.messageTimeout)
	e.status.Resize(80)
	e.compositor = renderer.NewCompositor(e.version)

	e.modes = mode.NewManager()
	e.modes.Register(newNormalMode(e))
	e.modes.Register(newSearchMode(e))
	e.modes.Register(newSaveAsMode(e))
	e.modes.OnChange(func(from, to mode.Mode) {
		if from != nil && to != nil {
			e.logger.Debug("mode %s -> %s", from.Name(), to.Name())
		}
	})
	// Normal mode has no Enter error.
	_ = e.modes.Switch(mode.ModeNormal)
	return e
}

// Open loads the file at path and names the document after it. A file that
// does not exist yet opens as an empty document that will be created on
// save.
func (e *Engine) Open(path string) error {
	lines, err := e.storage.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("open %s: %w", path, err)
	}

	e.filename = path
	e.buf.SetGrammar(e.registry.Select(path))
	e.buf.Load(lines)
	e.cur = cursor.New(0, 0)
	e.vp.SetTopLine(0)
	e.vp.SetLeftColumn(0)

	e.logger.Info("opened %s (%d lines)", path, e.buf.Len())
	return nil
}

// Save writes the document to its file. It returns ErrNoFilename for an
// unnamed document. The outcome is also shown in the message bar.
func (e *Engine) Save() (int, error) {
	if e.filename == "" {
		return 0, ErrNoFilename
	}
	n, err := e.storage.Save(e.filename, e.buf.Bytes())
	if err != nil {
		e.SetMessage("Can't save! I/O error: %v", err)
		e.logger.Error("save %s: %v", e.filename, err)
		return n, err
	}
	e.buf.MarkClean()
	e.SetMessage("%d bytes written to disk", n)
	e.logger.Info("saved %s (%d bytes)", e.filename, n)
	return n, nil
}

// SetFilename renames the document and selects the grammar for the new
// name.
func (e *Engine) SetFilename(path string) {
	e.filename = path
	e.buf.SetGrammar(e.registry.Select(path))
}

// Filename returns the document's file name, or "" if unnamed.
func (e *Engine) Filename() string {
	return e.filename
}

// Buffer returns the document.
func (e *Engine) Buffer() *buffer.Buffer {
	return e.buf
}

// Cursor returns the cursor position.
func (e *Engine) Cursor() buffer.Position {
	return e.cur.Position()
}

// Viewport returns the visible window.
func (e *Engine) Viewport() *viewport.Viewport {
	return e.vp
}

// Mode returns the name of the active input mode.
func (e *Engine) Mode() string {
	return e.modes.CurrentName()
}

// SetSize sets the screen size. Two rows are kept for the status and
// message bars.
func (e *Engine) SetSize(rows, cols int) {
	e.vp.Resize(cols, rows-ReservedRows)
	e.status.Resize(cols)
}

// SetMessage shows a formatted message in the message bar.
func (e *Engine) SetMessage(format string, args ...any) {
	e.setMessageText(fmt.Sprintf(format, args...))
}

// setMessageText shows msg as is.
func (e *Engine) setMessageText(msg string) {
	e.status.SetMessage(msg, e.now())
}

// Message returns the current message, visible or not.
func (e *Engine) Message() string {
	return e.status.Message()
}

// MessageVisible reports whether the message bar currently shows a message.
func (e *Engine) MessageVisible() bool {
	return e.status.MessageVisible(e.now())
}

// ExternalChange reports that the open file changed on disk.
func (e *Engine) ExternalChange() {
	e.SetMessage("File changed on disk")
	e.logger.Warn("%s changed on disk", e.filename)
}

// QuitRequested reports whether the user asked to quit.
func (e *Engine) QuitRequested() bool {
	return e.quit
}

// HandleKey applies one key press to the active mode.
func (e *Engine) HandleKey(ev key.Event) error {
	if err := e.modes.Dispatch(ev); err != nil {
		return fmt.Errorf("key %s: %w", ev, err)
	}
	return nil
}

// Frame scrolls the viewport to the cursor and builds the screen.
func (e *Engine) Frame() renderer.Frame {
	e.scroll()
	f := e.compositor.Compose(e.buf, e.vp, e.cur.Position())

	e.status.SetFilename(e.filename)
	e.status.SetModified(e.buf.Dirty())
	e.status.SetPosition(e.cur.Line())
	e.status.SetTotalLines(e.buf.Len())
	e.status.SetFiletype(highlight.Label(e.filename, e.buf.Grammar()))
	f.Status = e.status.StatusText()
	f.Message = e.status.MessageText(e.now())
	return f
}

// scroll moves the viewport so the cursor is visible.
func (e *Engine) scroll() {
	e.cur = e.cur.Clamp(e.buf)
	rx := 0
	if line := e.buf.Line(e.cur.Line()); line != nil {
		rx = e.buf.Tabs().CharToRender(line.Raw(), e.cur.Col())
	}
	e.vp.ScrollToReveal(e.cur.Line(), rx)
}

// insertChar inserts ch at the cursor. On the line after the last one a
// new line is appended first.
func (e *Engine) insertChar(ch byte) {
	line, col := e.cur.Line(), e.cur.Col()
	if line == e.buf.Len() {
		e.buf.InsertLine(line, nil)
	}
	e.buf.InsertChar(line, col, ch)
	e.cur = cursor.New(col+1, line)
}

// insertNewline splits the line at the cursor and moves to the start of
// the new line.
func (e *Engine) insertNewline() {
	line, col := e.cur.Line(), e.cur.Col()
	if col == 0 {
		e.buf.InsertLine(line, nil)
	} else {
		e.buf.SplitAt(line, col)
	}
	e.cur = cursor.New(0, line+1)
}

// deleteChar removes the character left of the cursor, joining the line
// with the previous one at column 0.
func (e *Engine) deleteChar() {
	line, col := e.cur.Line(), e.cur.Col()
	if line == e.buf.Len() || (line == 0 && col == 0) {
		return
	}
	if col > 0 {
		e.buf.DeleteChar(line, col-1)
		e.cur = cursor.New(col-1, line)
		return
	}
	if at, ok := e.buf.MergeWithPrevious(line); ok {
		e.cur = cursor.New(at, line-1)
	}
}
