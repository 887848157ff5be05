package engine

import "errors"

// Errors returned by engine operations.
var (
	// ErrNoFilename indicates a save was attempted on an unnamed document.
	ErrNoFilename = errors.New("no filename")
)
