// Package key turns raw terminal input into key events.
//
// An Event is either a character (KeyRune, with the byte value in Rune) or
// one of the special keys a terminal reports through escape sequences:
// arrows, Home, End, Page Up, Page Down, Delete, plus Escape and Backspace.
// Control characters are delivered as runes too; Ctrl builds the rune a
// control letter produces, so Ctrl-Q arrives as Rune == Ctrl('q').
//
// A Decoder reads bytes from a ByteSource that waits a bounded time for each
// byte. When no byte arrives in time the source returns ErrTimeout; the
// decoder passes that through for the first byte of an event, and treats it
// as the end of input while inside an escape sequence, reporting a bare
// Escape.
//
// # Escape sequences
//
//	ESC [ A / B / C / D        Up / Down / Right / Left
//	ESC [ H, ESC [ F           Home, End
//	ESC O H, ESC O F           Home, End
//	ESC [ 1 ~, ESC [ 7 ~       Home
//	ESC [ 4 ~, ESC [ 8 ~       End
//	ESC [ 3 ~                  Delete
//	ESC [ 5 ~, ESC [ 6 ~       Page Up, Page Down
//
// Anything else beginning with ESC decodes as Escape.
package key
