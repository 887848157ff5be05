package engine

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
	"time"

	"github.com/dshills/kilo/internal/engine/buffer"
	"github.com/dshills/kilo/internal/input/key"
	"github.com/dshills/kilo/internal/input/mode"
)

type memStorage struct {
	files   map[string][]string
	saved   map[string]string
	loadErr error
	saveErr error
}

func newMemStorage() *memStorage {
	return &memStorage{
		files: make(map[string][]string),
		saved: make(map[string]string),
	}
}

func (s *memStorage) Load(path string) ([][]byte, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	lines, ok := s.files[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	out := make([][]byte, len(lines))
	for i, l := range lines {
		out[i] = []byte(l)
	}
	return out, nil
}

func (s *memStorage) Save(path string, data []byte) (int, error) {
	if s.saveErr != nil {
		return 0, s.saveErr
	}
	s.saved[path] = string(data)
	return len(data), nil
}

type clock struct {
	t time.Time
}

func (c *clock) now() time.Time { return c.t }

func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestEngine(t *testing.T, store *memStorage, opts ...Option) (*Engine, *clock) {
	t.Helper()
	c := &clock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	opts = append([]Option{WithStorage(store), WithClock(c.now)}, opts...)
	e := New(opts...)
	e.SetSize(24, 80)
	return e, c
}

func openLines(t *testing.T, path string, lines ...string) (*Engine, *memStorage, *clock) {
	t.Helper()
	store := newMemStorage()
	store.files[path] = lines
	e, c := newTestEngine(t, store)
	if err := e.Open(path); err != nil {
		t.Fatalf("Open(%q): unexpected error: %v", path, err)
	}
	return e, store, c
}

func press(t *testing.T, e *Engine, events ...key.Event) {
	t.Helper()
	for _, ev := range events {
		if err := e.HandleKey(ev); err != nil {
			t.Fatalf("HandleKey(%s): unexpected error: %v", ev, err)
		}
	}
}

func typeText(t *testing.T, e *Engine, s string) {
	t.Helper()
	for i := 0; i < len(s); i++ {
		press(t, e, key.NewRuneEvent(rune(s[i])))
	}
}

func ctrl(letter byte) key.Event {
	return key.NewRuneEvent(key.Ctrl(letter))
}

func special(k key.Key) key.Event {
	return key.NewSpecialEvent(k)
}

func contents(e *Engine) string {
	return strings.TrimSuffix(e.Buffer().Text(), "\n")
}

func assertCursor(t *testing.T, e *Engine, line, col int) {
	t.Helper()
	want := buffer.Position{Line: line, Col: col}
	if got := e.Cursor(); got != want {
		t.Errorf("cursor: expected %s, got %s", want, got)
	}
}

func TestOpen(t *testing.T) {
	e, _, _ := openLines(t, "main.c", "int x;", "return 0;")

	if e.Filename() != "main.c" {
		t.Errorf("expected filename main.c, got %q", e.Filename())
	}
	if e.Buffer().Len() != 2 {
		t.Errorf("expected 2 lines, got %d", e.Buffer().Len())
	}
	if g := e.Buffer().Grammar(); g == nil || g.Filetype != "c" {
		t.Errorf("expected c grammar, got %v", g)
	}
	if e.Buffer().Dirty() {
		t.Error("expected clean buffer after open")
	}
	if e.Mode() != mode.ModeNormal {
		t.Errorf("expected normal mode, got %q", e.Mode())
	}
}

func TestOpenMissingFile(t *testing.T) {
	e, _ := newTestEngine(t, newMemStorage())

	if err := e.Open("new.txt"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Buffer().Len() != 0 {
		t.Errorf("expected empty document, got %d lines", e.Buffer().Len())
	}
	if e.Filename() != "new.txt" {
		t.Errorf("expected filename new.txt, got %q", e.Filename())
	}
}

func TestOpenError(t *testing.T) {
	store := newMemStorage()
	store.loadErr = errors.New("permission denied")
	e, _ := newTestEngine(t, store)

	err := e.Open("secret.txt")
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, store.loadErr) {
		t.Errorf("expected wrapped load error, got %v", err)
	}
	if e.Filename() != "" {
		t.Errorf("expected filename unchanged, got %q", e.Filename())
	}
}

func TestInsertAndSplit(t *testing.T) {
	e, _, _ := openLines(t, "t.txt", "foo", "bar")

	press(t, e, special(key.KeyEnd))
	typeText(t, e, "X")
	if got := contents(e); got != "fooX\nbar" {
		t.Errorf("after insert: expected %q, got %q", "fooX\nbar", got)
	}
	if !e.Buffer().Dirty() {
		t.Error("expected dirty buffer after insert")
	}
	assertCursor(t, e, 0, 4)

	press(t, e, special(key.KeyHome), special(key.KeyRight), special(key.KeyRight), key.NewRuneEvent(key.RuneEnter))
	if got := contents(e); got != "fo\noX\nbar" {
		t.Errorf("after split: expected %q, got %q", "fo\noX\nbar", got)
	}
	assertCursor(t, e, 1, 0)
	for i := 0; i < e.Buffer().Len(); i++ {
		if idx := e.Buffer().Line(i).Index(); idx != i {
			t.Errorf("Line(%d).Index(): expected %d, got %d", i, i, idx)
		}
	}
}

func TestEnterAtLineStartInsertsAbove(t *testing.T) {
	e, _, _ := openLines(t, "t.txt", "abc")

	press(t, e, key.NewRuneEvent(key.RuneEnter))
	if got := contents(e); got != "\nabc" {
		t.Errorf("expected %q, got %q", "\nabc", got)
	}
	assertCursor(t, e, 1, 0)
}

func TestInsertPastLastLine(t *testing.T) {
	e, _ := newTestEngine(t, newMemStorage())

	typeText(t, e, "hi")
	if got := contents(e); got != "hi" {
		t.Errorf("expected %q, got %q", "hi", got)
	}

	press(t, e, special(key.KeyDown))
	assertCursor(t, e, 1, 0)
	typeText(t, e, "x")
	if got := contents(e); got != "hi\nx" {
		t.Errorf("expected %q, got %q", "hi\nx", got)
	}
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name     string
		keys     []key.Event
		expected string
		line     int
		col      int
	}{
		{"backspace at start of document", []key.Event{special(key.KeyBackspace)}, "ab\ncd", 0, 0},
		{"backspace in line", []key.Event{special(key.KeyEnd), special(key.KeyBackspace)}, "a\ncd", 0, 1},
		{"ctrl-h in line", []key.Event{special(key.KeyEnd), ctrl('h')}, "a\ncd", 0, 1},
		{"backspace joins lines", []key.Event{special(key.KeyDown), special(key.KeyBackspace)}, "abcd", 0, 2},
		{"delete removes under cursor", []key.Event{special(key.KeyDelete)}, "b\ncd", 0, 0},
		{"delete at end of line joins", []key.Event{special(key.KeyEnd), special(key.KeyDelete)}, "abcd", 0, 2},
		{"backspace past last line", []key.Event{special(key.KeyDown), special(key.KeyDown), special(key.KeyBackspace)}, "ab\ncd", 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _, _ := openLines(t, "t.txt", "ab", "cd")
			press(t, e, tt.keys...)
			if got := contents(e); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
			assertCursor(t, e, tt.line, tt.col)
		})
	}
}

func TestIgnoredKeys(t *testing.T) {
	e, _, _ := openLines(t, "t.txt", "abc")

	press(t, e, special(key.KeyEscape), ctrl('l'))
	if got := contents(e); got != "abc" {
		t.Errorf("expected %q, got %q", "abc", got)
	}
	if e.Buffer().Dirty() {
		t.Error("expected clean buffer")
	}
}

func TestPaging(t *testing.T) {
	lines := make([]string, 10)
	for i := range lines {
		lines[i] = "line"
	}
	e, _, _ := openLines(t, "t.txt", lines...)
	e.SetSize(5, 20)
	e.Frame()

	press(t, e, special(key.KeyPageDown))
	assertCursor(t, e, 5, 0)
	e.Frame()
	if top := e.Viewport().TopLine(); top != 3 {
		t.Errorf("after PageDown: expected top line 3, got %d", top)
	}

	press(t, e, special(key.KeyPageUp))
	assertCursor(t, e, 0, 0)
}

func TestQuit(t *testing.T) {
	t.Run("clean document quits at once", func(t *testing.T) {
		e, _, _ := openLines(t, "t.txt", "abc")
		press(t, e, ctrl('q'))
		if !e.QuitRequested() {
			t.Error("expected quit")
		}
	})

	t.Run("modified document needs confirmation", func(t *testing.T) {
		e, _, _ := openLines(t, "t.txt", "abc")
		typeText(t, e, "x")

		for _, n := range []int{3, 2, 1} {
			press(t, e, ctrl('q'))
			if e.QuitRequested() {
				t.Fatalf("quit after warning %d", n)
			}
			want := "WARNING!!! File has unsaved changes. Press Ctrl-Q " + string(rune('0'+n)) + " more time to quit."
			if e.Message() != want {
				t.Errorf("expected message %q, got %q", want, e.Message())
			}
		}
		press(t, e, ctrl('q'))
		if !e.QuitRequested() {
			t.Error("expected quit after confirmations")
		}
	})

	t.Run("other key resets the counter", func(t *testing.T) {
		e, _, _ := openLines(t, "t.txt", "abc")
		typeText(t, e, "x")
		press(t, e, ctrl('q'), ctrl('q'), special(key.KeyLeft))
		press(t, e, ctrl('q'))
		if !strings.Contains(e.Message(), "Press Ctrl-Q 3 more") {
			t.Errorf("expected counter reset, got %q", e.Message())
		}
	})

	t.Run("zero quit times", func(t *testing.T) {
		store := newMemStorage()
		e, _ := newTestEngine(t, store, WithQuitTimes(0))
		typeText(t, e, "x")
		press(t, e, ctrl('q'))
		if !e.QuitRequested() {
			t.Error("expected quit")
		}
	})
}

func TestSave(t *testing.T) {
	e, store, _ := openLines(t, "t.txt", "foo", "bar")
	typeText(t, e, "X")

	press(t, e, ctrl('s'))
	if got := store.saved["t.txt"]; got != "Xfoo\nbar\n" {
		t.Errorf("expected saved %q, got %q", "Xfoo\nbar\n", got)
	}
	if e.Buffer().Dirty() {
		t.Error("expected clean buffer after save")
	}
	if e.Message() != "9 bytes written to disk" {
		t.Errorf("expected bytes written message, got %q", e.Message())
	}
}

func TestSaveError(t *testing.T) {
	e, store, _ := openLines(t, "t.txt", "foo")
	store.saveErr = errors.New("disk full")
	typeText(t, e, "X")

	press(t, e, ctrl('s'))
	if e.Message() != "Can't save! I/O error: disk full" {
		t.Errorf("expected error message, got %q", e.Message())
	}
	if !e.Buffer().Dirty() {
		t.Error("expected buffer to stay dirty")
	}
	if got := contents(e); got != "Xfoo" {
		t.Errorf("expected document unchanged, got %q", got)
	}
}

func TestSaveUnnamed(t *testing.T) {
	e, _ := newTestEngine(t, newMemStorage())

	if _, err := e.Save(); !errors.Is(err, ErrNoFilename) {
		t.Errorf("expected ErrNoFilename, got %v", err)
	}
}

func TestExternalChange(t *testing.T) {
	e, _, c := openLines(t, "t.txt", "foo")

	e.ExternalChange()
	if e.Message() != "File changed on disk" {
		t.Errorf("expected change notice, got %q", e.Message())
	}
	if !e.MessageVisible() {
		t.Error("expected message to be visible")
	}
	c.advance(10 * time.Second)
	if e.MessageVisible() {
		t.Error("expected message to expire")
	}
}

func TestFrame(t *testing.T) {
	e, _, c := openLines(t, "a.c", "int x;", "\tx = 1;")
	e.SetSize(6, 80)
	e.SetMessage(HelpMessage)

	press(t, e, special(key.KeyDown), special(key.KeyRight))
	f := e.Frame()

	if len(f.Rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(f.Rows))
	}
	if got := f.Rows[0].Plain(); got != "int x;" {
		t.Errorf("row 0: expected %q, got %q", "int x;", got)
	}
	if got := f.Rows[2].Plain(); got != "~" {
		t.Errorf("row 2: expected %q, got %q", "~", got)
	}
	if f.CursorRow != 1 || f.CursorCol != 8 {
		t.Errorf("expected cursor at (1, 8), got (%d, %d)", f.CursorRow, f.CursorCol)
	}
	if !strings.HasPrefix(f.Status, "a.c - 2 lines ") {
		t.Errorf("unexpected status %q", f.Status)
	}
	if !strings.HasSuffix(f.Status, "c | 2/2") {
		t.Errorf("unexpected status %q", f.Status)
	}
	if len(f.Status) != 80 {
		t.Errorf("expected status width 80, got %d", len(f.Status))
	}
	if f.Message != HelpMessage {
		t.Errorf("expected help message, got %q", f.Message)
	}

	c.advance(6 * time.Second)
	if f := e.Frame(); f.Message != "" {
		t.Errorf("expected message to expire, got %q", f.Message)
	}
}

func TestFrameModifiedFlag(t *testing.T) {
	e, _, _ := openLines(t, "a.txt", "x")
	typeText(t, e, "y")

	if f := e.Frame(); !strings.Contains(f.Status, "(modified)") {
		t.Errorf("expected modified flag in %q", f.Status)
	}
}

func TestFrameWelcome(t *testing.T) {
	e, _ := newTestEngine(t, newMemStorage(), WithVersion("1.2.3"))
	e.SetSize(12, 80)

	f := e.Frame()
	found := false
	for _, row := range f.Rows {
		if strings.Contains(row.Plain(), "Kilo editor -- version 1.2.3") {
			found = true
		}
	}
	if !found {
		t.Error("expected welcome banner on empty document")
	}
	if !strings.HasPrefix(f.Status, "[No Name] - 0 lines") {
		t.Errorf("unexpected status %q", f.Status)
	}
}

func TestTabStopOption(t *testing.T) {
	store := newMemStorage()
	store.files["t.txt"] = []string{"\tx"}
	e, _ := newTestEngine(t, store, WithTabStop(4))
	if err := e.Open("t.txt"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := string(e.Buffer().Line(0).Render()); got != "    x" {
		t.Errorf("expected %q, got %q", "    x", got)
	}
}
