// Package highlight classifies the rendered bytes of a line for colouring.
//
// A Grammar describes one filetype: its keywords, comment markers and
// whether numbers and strings are highlighted. Scan walks a single rendered
// line left to right and fills one Class per byte. Block comments may span
// lines, so Scan takes the open-comment state left by the previous line and
// returns the state it leaves for the next one. Propagating that state
// through a document is the caller's job.
//
// Grammars are looked up by filename through a Registry. The default
// registry knows C, Go and Python.
package highlight
