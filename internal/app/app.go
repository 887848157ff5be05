// Package app wires the editor together: configuration, logging, the
// document engine, the display and the input source. It runs the single
// control loop and restores the terminal on the way out.
package app

import (
	"io"
	"sync"
	"sync/atomic"

	"github.com/dshills/kilo/internal/config"
	"github.com/dshills/kilo/internal/engine"
	"github.com/dshills/kilo/internal/input/key"
	"github.com/dshills/kilo/internal/project/filestore"
	"github.com/dshills/kilo/internal/project/watcher"
	"github.com/dshills/kilo/internal/renderer/backend"
	"github.com/dshills/kilo/internal/renderer/style"
)

// Application is the editor process: one engine driven by one loop.
type Application struct {
	mu sync.Mutex

	config  *config.Config
	logger  *Logger
	logFile io.Closer
	metrics *Metrics

	// Document
	store   *filestore.Store
	watcher *watcher.FileWatcher
	engine  *engine.Engine

	// Display and input
	theme   *style.Theme
	sink    backend.Sink
	keys    key.Source
	restore func() error

	running      atomic.Bool
	done         chan struct{}
	doneOnce     sync.Once
	displayOnce  sync.Once
	shutdownOnce sync.Once

	opts Options
}

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the configuration file.
	ConfigPath string

	// Files are the files named on the command line. Only the first is
	// opened.
	Files []string

	// LogLevel, Backend and Theme override the configuration when set.
	LogLevel string
	Backend  string
	Theme    string

	// Version is shown in the welcome banner.
	Version string

	// Environ replaces the process environment when loading configuration.
	Environ []string
}

// New creates an Application with the given options. It loads the
// configuration and the file to edit but does not touch the terminal.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts:    opts,
		done:    make(chan struct{}),
		metrics: NewMetrics(),
	}

	if err := app.bootstrap(); err != nil {
		app.Shutdown()
		return nil, err
	}

	return app, nil
}

// SetDisplay sets the sink frames are drawn to and the source keys are
// read from. Must be called before Run; without it Run opens the display
// selected by the configuration.
func (app *Application) SetDisplay(sink backend.Sink, keys key.Source) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.running.Load() {
		return ErrAlreadyRunning
	}

	app.sink = sink
	app.keys = keys
	return nil
}

// IsRunning returns true if the application is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Config returns the configuration.
func (app *Application) Config() *config.Config {
	return app.config
}

// Engine returns the editor state.
func (app *Application) Engine() *engine.Engine {
	return app.engine
}

// Watcher returns the file watcher, or nil if watching is unavailable.
func (app *Application) Watcher() *watcher.FileWatcher {
	return app.watcher
}
