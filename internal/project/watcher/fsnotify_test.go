package watcher

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func newTestWatcher(t *testing.T, opts ...WatcherOption) *FileWatcher {
	t.Helper()
	w, err := NewFileWatcher(opts...)
	if err != nil {
		t.Fatalf("NewFileWatcher error = %v", err)
	}
	t.Cleanup(func() { _ = w.Close() })
	return w
}

// waitEvent waits for an event or fails after timeout.
func waitEvent(t *testing.T, w *FileWatcher, timeout time.Duration) Event {
	t.Helper()
	select {
	case ev := <-w.Events():
		return ev
	case <-time.After(timeout):
		t.Fatal("timed out waiting for event")
	}
	return Event{}
}

func TestFileWatcher_Write(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(path, []byte("one"), 0o644); err != nil {
		t.Fatal(err)
	}

	w := newTestWatcher(t)
	if err := w.Watch(path); err != nil {
		t.Fatalf("Watch error = %v", err)
	}

	// Changes to other files in the directory are ignored.
	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("two"), 0o644); err != nil {
		t.Fatal(err)
	}

	ev := waitEvent(t, w, 2*time.Second)
	abs, _ := filepath.Abs(path)
	if ev.Path != abs {
		t.Errorf("Path = %q, want %q", ev.Path, abs)
	}
	if !ev.Op.Has(OpWrite) && !ev.Op.Has(OpCreate) {
		t.Errorf("Op = %v, want write or create", ev.Op)
	}
	if w.TotalEvents() == 0 {
		t.Error("TotalEvents should count delivered events")
	}
}

func TestFileWatcher_NotYetCreated(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "new.txt")

	w := newTestWatcher(t)
	if err := w.Watch(path); err != nil {
		t.Fatalf("Watch error = %v", err)
	}
	if err := os.WriteFile(path, []byte("hi"), 0o644); err != nil {
		t.Fatal(err)
	}

	ev := waitEvent(t, w, 2*time.Second)
	if !ev.Op.Has(OpCreate) && !ev.Op.Has(OpWrite) {
		t.Errorf("Op = %v, want create", ev.Op)
	}
}

func TestFileWatcher_SelfWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(path, []byte("one"), 0o644); err != nil {
		t.Fatal(err)
	}

	w := newTestWatcher(t, WithSelfWriteWindow(time.Hour))
	if err := w.Watch(path); err != nil {
		t.Fatalf("Watch error = %v", err)
	}

	w.MarkSelfWrite()
	if err := os.WriteFile(path, []byte("two"), 0o644); err != nil {
		t.Fatal(err)
	}

	time.Sleep(200 * time.Millisecond)
	if ev, ok := w.Poll(); ok {
		t.Errorf("expected self write suppressed, got %+v", ev)
	}
}

func TestFileWatcher_WatchErrors(t *testing.T) {
	w := newTestWatcher(t)

	missing := filepath.Join(t.TempDir(), "missing-dir", "file.txt")
	if err := w.Watch(missing); !errors.Is(err, ErrPathNotExist) {
		t.Errorf("Watch error = %v, want ErrPathNotExist", err)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("Close error = %v", err)
	}
	if err := w.Watch(filepath.Join(t.TempDir(), "f")); !errors.Is(err, ErrWatcherClosed) {
		t.Errorf("Watch after Close error = %v, want ErrWatcherClosed", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close error = %v", err)
	}
}

func TestFileWatcher_Retarget(t *testing.T) {
	first := filepath.Join(t.TempDir(), "a.txt")
	second := filepath.Join(t.TempDir(), "b.txt")

	w := newTestWatcher(t)
	if err := w.Watch(first); err != nil {
		t.Fatalf("Watch error = %v", err)
	}
	if err := w.Watch(second); err != nil {
		t.Fatalf("Watch error = %v", err)
	}
	abs, _ := filepath.Abs(second)
	if w.Path() != abs {
		t.Errorf("Path = %q, want %q", w.Path(), abs)
	}
}

func TestConvertOp(t *testing.T) {
	tests := []struct {
		in   fsnotify.Op
		want Op
	}{
		{fsnotify.Create, OpCreate},
		{fsnotify.Write, OpWrite},
		{fsnotify.Remove, OpRemove},
		{fsnotify.Rename, OpRename},
		{fsnotify.Chmod, 0},
		{fsnotify.Write | fsnotify.Chmod, OpWrite},
	}
	for _, tt := range tests {
		if got := convertOp(tt.in); got != tt.want {
			t.Errorf("convertOp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestOpString(t *testing.T) {
	if OpWrite.String() != "WRITE" {
		t.Errorf("OpWrite.String() = %q", OpWrite.String())
	}
	if (OpWrite | OpCreate).String() != "UNKNOWN" {
		t.Errorf("combined op should be UNKNOWN")
	}
}
