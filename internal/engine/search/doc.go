// Package search implements incremental search over a buffer's rendered
// lines.
//
// A Session remembers the last matching line and the search direction, so
// that repeated calls step from match to match, wrapping around the ends of
// the document. The matched text is painted with highlight.Match; the
// painted line's previous highlight is kept and restored before the next
// scan and when the session closes.
package search
