package search

import (
	"testing"

	"github.com/dshills/kilo/internal/engine/buffer"
	"github.com/dshills/kilo/internal/renderer/highlight"
)

func newBuffer(ss ...string) *buffer.Buffer {
	lines := make([][]byte, len(ss))
	for i, s := range ss {
		lines[i] = []byte(s)
	}
	return buffer.NewBufferFromLines(lines, buffer.WithGrammar(highlight.C()))
}

func highlights(b *buffer.Buffer) [][]highlight.Class {
	out := make([][]highlight.Class, b.Len())
	for i := range out {
		out[i] = b.Line(i).SnapshotHighlight()
	}
	return out
}

func sameHighlights(a, b [][]highlight.Class) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}

func TestFindForwardAndWrap(t *testing.T) {
	b := newBuffer("foo", "bar foo", "baz", "\tfoo")
	s := NewSession(b)

	expected := []struct{ line, col, rcol int }{
		{0, 0, 0},
		{1, 4, 4},
		{3, 1, 8},
		{0, 0, 0},
	}
	for i, want := range expected {
		res, ok := s.Find("foo", Forward)
		if !ok {
			t.Fatalf("find %d: expected a match", i)
		}
		if res.Line != want.line || res.Col != want.col || res.RenderCol != want.rcol {
			t.Errorf("find %d: expected (%d, %d, %d), got (%d, %d, %d)",
				i, want.line, want.col, want.rcol, res.Line, res.Col, res.RenderCol)
		}
	}
}

func TestFindBackward(t *testing.T) {
	b := newBuffer("x1", "x2", "x3")
	s := NewSession(b)

	res, _ := s.Find("x", Backward)
	if res.Line != 0 {
		t.Errorf("without a previous match the scan goes forward from the top, got line %d", res.Line)
	}
	if s.Direction() != Forward {
		t.Errorf("expected forward, got %s", s.Direction())
	}

	res, _ = s.Find("x", Backward)
	if res.Line != 2 {
		t.Errorf("expected wrap to line 2, got %d", res.Line)
	}
	res, _ = s.Find("x", Backward)
	if res.Line != 1 {
		t.Errorf("expected line 1, got %d", res.Line)
	}
}

func TestFindWrapsInOneStep(t *testing.T) {
	b := newBuffer("needle", "a", "b", "c", "d")
	s := NewSession(b)

	res, ok := s.FindFrom("needle", Forward, b.Len()-1)
	if !ok {
		t.Fatal("expected a match")
	}
	if res.Line != 0 || res.Steps != 1 {
		t.Errorf("expected line 0 after 1 step, got line %d after %d steps", res.Line, res.Steps)
	}
}

func TestFindPaintsAndRestores(t *testing.T) {
	b := newBuffer("int foo;", "/* foo", "foo */")
	before := highlights(b)
	s := NewSession(b)

	if _, ok := s.Find("foo", Forward); !ok {
		t.Fatal("expected a match")
	}
	hl := b.Line(0).Highlight()
	for i := 4; i < 7; i++ {
		if hl[i] != highlight.Match {
			t.Errorf("col %d: expected match, got %s", i, hl[i])
		}
	}

	if _, ok := s.Find("foo", Forward); !ok {
		t.Fatal("expected a second match")
	}
	if b.Line(0).Highlight()[4] != highlight.Normal {
		t.Error("expected line 0 restored before the next scan")
	}

	s.Close()
	if !sameHighlights(before, highlights(b)) {
		t.Error("expected every highlight restored after Close")
	}
	if s.LastMatch() != -1 {
		t.Errorf("expected last match reset, got %d", s.LastMatch())
	}
}

func TestFindNoMatch(t *testing.T) {
	b := newBuffer("abc", "def")
	before := highlights(b)
	s := NewSession(b)

	if _, ok := s.Find("zzz", Forward); ok {
		t.Error("expected no match")
	}
	if _, ok := s.Find("", Forward); ok {
		t.Error("expected no match for an empty query")
	}
	if !sameHighlights(before, highlights(b)) {
		t.Error("expected highlights unchanged")
	}

	empty := NewSession(buffer.NewBuffer())
	if _, ok := empty.Find("a", Forward); ok {
		t.Error("expected no match in an empty buffer")
	}
}

func TestReset(t *testing.T) {
	b := newBuffer("a", "a")
	s := NewSession(b)
	s.Find("a", Forward)
	s.Find("a", Forward)
	s.Reset()
	res, _ := s.Find("a", Forward)
	if res.Line != 0 {
		t.Errorf("expected scan from the top after Reset, got line %d", res.Line)
	}
}
