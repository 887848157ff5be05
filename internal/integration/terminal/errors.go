package terminal

import "errors"

// Sentinel errors for the terminal package.
var (
	// ErrNotTerminal is returned when input is not a terminal.
	ErrNotTerminal = errors.New("not a terminal")

	// ErrTerminalClosed is returned when reading after Restore.
	ErrTerminalClosed = errors.New("terminal is closed")

	// ErrInvalidSize is returned when the terminal reports a zero size.
	ErrInvalidSize = errors.New("invalid terminal size")
)
