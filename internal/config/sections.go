package config

import "time"

// EditorConfig holds editing behaviour.
type EditorConfig struct {
	// TabStop is the number of columns between tab stops.
	TabStop int

	// QuitTimes is how many extra Ctrl-Q presses quit with unsaved changes.
	QuitTimes int

	// MessageTimeout is how long a status message stays visible.
	MessageTimeout time.Duration

	// ReadTimeout is how long a key read waits before the loop refreshes.
	ReadTimeout time.Duration
}

// UIConfig holds display settings.
type UIConfig struct {
	// Backend selects the display: "ansi" or "tcell".
	Backend string

	// Theme is "kilo" or a chroma style name.
	Theme string

	// TrueColor allows 24-bit colours; false reduces them to 256.
	TrueColor bool
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	// Level is debug, info, warn or error.
	Level string

	// File is the log destination. Empty disables logging.
	File string
}

// Backend names.
const (
	BackendANSI  = "ansi"
	BackendTCell = "tcell"
)

// validBackends and validLevels back Validate.
var (
	validBackends = []string{BackendANSI, BackendTCell}
	validLevels   = []string{"debug", "info", "warn", "error"}
)

// DefaultEditorConfig returns the built-in editor settings.
func DefaultEditorConfig() EditorConfig {
	return EditorConfig{
		TabStop:        8,
		QuitTimes:      3,
		MessageTimeout: 5 * time.Second,
		ReadTimeout:    100 * time.Millisecond,
	}
}

// DefaultUIConfig returns the built-in UI settings.
func DefaultUIConfig() UIConfig {
	return UIConfig{
		Backend:   BackendANSI,
		Theme:     "kilo",
		TrueColor: true,
	}
}

// DefaultLoggingConfig returns the built-in logging settings.
func DefaultLoggingConfig() LoggingConfig {
	return LoggingConfig{Level: "info"}
}
