// Package buffer holds the document being edited as an ordered list of
// lines.
//
// Each Line keeps two forms of its text. The raw bytes are what the user
// typed and what gets saved. The render bytes are the raw bytes with tabs
// expanded, which is what the screen shows. Alongside the render bytes each
// line carries one highlight.Class per byte and a flag recording whether a
// block comment is still open at its end.
//
// All mutation goes through Buffer methods. After any change to a line's raw
// bytes the buffer rebuilds its render form and highlight, and if the
// line's open-comment flag changed it rehighlights the following lines until
// the flag settles.
//
// Positions outside the document are clamped or ignored; no mutation ever
// returns an error.
//
// A Buffer is not safe for concurrent use. The editor owns it from a single
// goroutine.
package buffer
