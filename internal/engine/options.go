package engine

import (
	"time"

	"github.com/dshills/kilo/internal/renderer/highlight"
)

// Default configuration values.
const (
	DefaultTabStop   = 8
	DefaultQuitTimes = 3
	DefaultVersion   = "0.0.1"
)

// Storage loads and saves documents.
type Storage interface {
	// Load returns the lines of the file at path. A missing file returns
	// an error matching fs.ErrNotExist.
	Load(path string) ([][]byte, error)

	// Save writes data to path and returns the number of bytes written.
	Save(path string, data []byte) (int, error)
}

// Logger receives diagnostic messages. Messages are printf formats.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// Option configures an Engine during creation.
type Option func(*Engine)

// WithTabStop sets the tab width used to render lines.
func WithTabStop(width int) Option {
	return func(e *Engine) {
		if width > 0 {
			e.tabStop = width
		}
	}
}

// WithQuitTimes sets how many extra Ctrl-Q presses are needed to quit with
// unsaved changes. Zero quits at once.
func WithQuitTimes(n int) Option {
	return func(e *Engine) {
		if n >= 0 {
			e.quitTimes = n
		}
	}
}

// WithMessageTimeout sets how long a status message stays visible.
func WithMessageTimeout(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.messageTimeout = d
		}
	}
}

// WithRegistry sets the grammars available for highlighting.
func WithRegistry(r *highlight.Registry) Option {
	return func(e *Engine) {
		if r != nil {
			e.registry = r
		}
	}
}

// WithStorage sets where documents are loaded from and saved to.
func WithStorage(s Storage) Option {
	return func(e *Engine) {
		if s != nil {
			e.storage = s
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithClock sets the time source used for message expiry.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithVersion sets the version shown in the welcome banner.
func WithVersion(version string) Option {
	return func(e *Engine) {
		if version != "" {
			e.version = version
		}
	}
}
