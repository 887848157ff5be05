package app

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/kilo/internal/config"
)

// LogLevel is the severity of a log line.
type LogLevel int

// Log levels, least severe first.
const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// ParseLogLevel maps a logging.level value to a LogLevel. Unknown names
// mean info; config validation has already rejected them.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToLower(s) {
	case "debug":
		return LogLevelDebug
	case "warn", "warning":
		return LogLevelWarn
	case "error":
		return LogLevelError
	}
	return LogLevelInfo
}

// logSink is the writer shared by a logger and everything derived from it.
type logSink struct {
	mu  sync.Mutex
	out io.Writer
}

// Logger writes one line per message:
//
//	2026-01-02T15:04:05.000 [INFO] kilo: opened main.c (12 lines) session=<uuid> component=engine
//
// Messages are printf formats. Fields keep the order they were added in.
type Logger struct {
	sink   *logSink
	level  LogLevel
	prefix string
	fields string
}

// NewLogger creates a logger writing messages at level and above to w.
func NewLogger(w io.Writer, level LogLevel, prefix string) *Logger {
	return &Logger{sink: &logSink{out: w}, level: level, prefix: prefix}
}

// NullLogger discards everything.
var NullLogger = &Logger{}

// WithField returns a logger that appends key=value to every line.
func (l *Logger) WithField(key string, value any) *Logger {
	derived := *l
	derived.fields = fmt.Sprintf("%s %s=%v", l.fields, key, value)
	return &derived
}

// WithComponent tags lines with the component that wrote them.
func (l *Logger) WithComponent(component string) *Logger {
	return l.WithField("component", component)
}

func (l *Logger) Debug(msg string, args ...any) { l.log(LogLevelDebug, msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.log(LogLevelInfo, msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.log(LogLevelWarn, msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.log(LogLevelError, msg, args...) }

func (l *Logger) log(level LogLevel, msg string, args ...any) {
	if l.sink == nil || level < l.level {
		return
	}

	var b strings.Builder
	b.WriteString(time.Now().Format("2006-01-02T15:04:05.000"))
	fmt.Fprintf(&b, " [%s] ", level)
	if l.prefix != "" {
		b.WriteString(l.prefix)
		b.WriteString(": ")
	}
	fmt.Fprintf(&b, msg, args...)
	b.WriteString(l.fields)
	b.WriteByte('\n')

	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	_, _ = io.WriteString(l.sink.out, b.String())
}

// OpenLogger builds the logger described by cfg. The editor owns the
// terminal, so logs only go to a file; without one the NullLogger is
// returned. Every line carries a session id so interleaved runs appending
// to the same file can be told apart. The returned closer releases the
// file.
func OpenLogger(cfg config.LoggingConfig) (*Logger, io.Closer, error) {
	if cfg.File == "" {
		return NullLogger, nopCloser{}, nil
	}
	f, err := os.OpenFile(cfg.File, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, &OperationError{Op: "open log", Path: cfg.File, Err: err}
	}
	l := NewLogger(f, ParseLogLevel(cfg.Level), "kilo").WithField("session", uuid.NewString())
	return l, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Logger returns the application's logger.
func (app *Application) Logger() *Logger {
	if app.logger == nil {
		return NullLogger
	}
	return app.logger
}

// logComponentError logs err against the component it came from.
func (app *Application) logComponentError(component string, err error) {
	if err != nil {
		app.Logger().WithComponent(component).Error("%v", err)
	}
}
