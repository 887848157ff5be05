package search

import (
	"bytes"

	"github.com/dshills/kilo/internal/engine/buffer"
	"github.com/dshills/kilo/internal/renderer/highlight"
)

// Direction is the order in which lines are scanned.
type Direction int

const (
	Backward Direction = -1
	Forward  Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Result describes a match.
type Result struct {
	// Line is the matching line.
	Line int
	// Col is the character column of the first matched byte.
	Col int
	// RenderCol is the rendered column of the first matched byte.
	RenderCol int
	// Steps is how many lines were examined to find the match.
	Steps int
}

// Session holds the state of one search.
type Session struct {
	buf       *buffer.Buffer
	lastMatch int
	direction Direction

	savedLine int
	saved     []highlight.Class
}

// NewSession starts a search over buf.
func NewSession(buf *buffer.Buffer) *Session {
	return &Session{
		buf:       buf,
		lastMatch: -1,
		direction: Forward,
		savedLine: -1,
	}
}

// LastMatch returns the line of the previous match, or -1.
func (s *Session) LastMatch() int { return s.lastMatch }

// Direction returns the direction of the last scan.
func (s *Session) Direction() Direction { return s.direction }

// Reset forgets the previous match, so the next Find starts from the top
// going forward.
func (s *Session) Reset() {
	s.lastMatch = -1
	s.direction = Forward
}

// Find scans for query starting on the line after the previous match in the
// given direction. Without a previous match the scan starts at line 0 going
// forward.
func (s *Session) Find(query string, dir Direction) (Result, bool) {
	s.restore()
	if s.lastMatch == -1 {
		dir = Forward
	}
	return s.scan(query, dir, s.lastMatch)
}

// FindFrom scans for query starting on the line next to anchor in the given
// direction, wrapping around the ends of the document.
func (s *Session) FindFrom(query string, dir Direction, anchor int) (Result, bool) {
	s.restore()
	return s.scan(query, dir, anchor)
}

// Close restores the highlight of the last painted line and forgets the
// search state.
func (s *Session) Close() {
	s.restore()
	s.Reset()
}

func (s *Session) scan(query string, dir Direction, anchor int) (Result, bool) {
	if dir != Backward {
		dir = Forward
	}
	s.direction = dir

	n := s.buf.Len()
	if query == "" || n == 0 {
		return Result{}, false
	}

	needle := []byte(query)
	current := anchor
	for step := 1; step <= n; step++ {
		current += int(dir)
		switch {
		case current < 0:
			current = n - 1
		case current >= n:
			current = 0
		}

		line := s.buf.Line(current)
		at := bytes.Index(line.Render(), needle)
		if at < 0 {
			continue
		}

		s.lastMatch = current
		s.savedLine = current
		s.saved = line.SnapshotHighlight()
		line.Paint(at, at+len(needle), highlight.Match)

		return Result{
			Line:      current,
			Col:       s.buf.Tabs().RenderToChar(line.Raw(), at),
			RenderCol: at,
			Steps:     step,
		}, true
	}
	return Result{}, false
}

// restore puts back the highlight saved by the last match.
func (s *Session) restore() {
	if s.saved == nil {
		return
	}
	if line := s.buf.Line(s.savedLine); line != nil {
		line.RestoreHighlight(s.saved)
	}
	s.saved = nil
	s.savedLine = -1
}
