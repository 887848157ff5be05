// Package statusline formats the two bars below the text area: the
// inverse-video status bar and the message bar.
package statusline

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
)

// DefaultMessageTimeout is how long a message stays on screen.
const DefaultMessageTimeout = 5 * time.Second

// maxNameWidth bounds the filename shown in the status bar.
const maxNameWidth = 20

// StatusLine holds what the bars display.
type StatusLine struct {
	filename   string
	modified   bool
	line       int
	totalLines int
	filetype   string

	message   string
	messageAt time.Time
	timeout   time.Duration

	width int
}

// New creates a status line. A non-positive timeout uses
// DefaultMessageTimeout.
func New(timeout time.Duration) *StatusLine {
	if timeout <= 0 {
		timeout = DefaultMessageTimeout
	}
	return &StatusLine{timeout: timeout, width: 80}
}

// SetFilename updates the displayed filename.
func (s *StatusLine) SetFilename(filename string) {
	s.filename = filename
}

// SetModified updates the modified flag.
func (s *StatusLine) SetModified(modified bool) {
	s.modified = modified
}

// SetPosition sets the cursor line, 0-based.
func (s *StatusLine) SetPosition(line int) {
	s.line = line
}

// SetTotalLines sets the number of lines in the document.
func (s *StatusLine) SetTotalLines(total int) {
	s.totalLines = total
}

// SetFiletype sets the filetype label.
func (s *StatusLine) SetFiletype(filetype string) {
	s.filetype = filetype
}

// SetMessage shows msg in the message bar, starting at the given time.
func (s *StatusLine) SetMessage(msg string, at time.Time) {
	s.message = msg
	s.messageAt = at
}

// Message returns the current message, visible or not.
func (s *StatusLine) Message() string {
	return s.message
}

// Resize sets the screen width.
func (s *StatusLine) Resize(width int) {
	s.width = max(width, 0)
}

// Width returns the screen width.
func (s *StatusLine) Width() int {
	return s.width
}

// StatusText returns the status bar: the filename, line count and modified
// flag on the left, the filetype and cursor line flush right. The result is
// exactly the screen width, unless the left part alone is wider, in which
// case it is cut.
func (s *StatusLine) StatusText() string {
	name := s.filename
	if name == "" {
		name = "[No Name]"
	}
	name = runewidth.Truncate(name, maxNameWidth, "")

	modified := ""
	if s.modified {
		modified = "(modified)"
	}
	filetype := s.filetype
	if filetype == "" {
		filetype = "no ft"
	}

	left := fmt.Sprintf("%s - %d lines %s", name, s.totalLines, modified)
	right := fmt.Sprintf("%s | %d/%d", filetype, s.line+1, s.totalLines)

	left = runewidth.Truncate(left, s.width, "")
	used := runewidth.StringWidth(left)
	rw := runewidth.StringWidth(right)

	var b strings.Builder
	b.WriteString(left)
	for used < s.width {
		if s.width-used == rw {
			b.WriteString(right)
			break
		}
		b.WriteByte(' ')
		used++
	}
	return b.String()
}

// MessageVisible reports whether the message is still shown at now.
func (s *StatusLine) MessageVisible(now time.Time) bool {
	return s.message != "" && now.Sub(s.messageAt) < s.timeout
}

// MessageText returns the message bar at now: the message cut to the
// screen width while it is fresh, otherwise empty.
func (s *StatusLine) MessageText(now time.Time) string {
	if !s.MessageVisible(now) {
		return ""
	}
	return runewidth.Truncate(s.message, s.width, "")
}
