package app

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dshills/kilo/internal/config"
	"github.com/dshills/kilo/internal/engine"
	"github.com/dshills/kilo/internal/project/filestore"
	"github.com/dshills/kilo/internal/project/watcher"
	"github.com/dshills/kilo/internal/renderer/highlight"
	"github.com/dshills/kilo/internal/renderer/style"
)

// bootstrap initializes all components in dependency order.
func (app *Application) bootstrap() error {
	// 1. Config
	cfg, err := app.loadConfig()
	if err != nil {
		return &InitError{Component: "config", Err: err}
	}
	app.config = cfg

	// 2. Logger
	logger, logFile, err := OpenLogger(cfg.Logging)
	if err != nil {
		return &InitError{Component: "logger", Err: err}
	}
	app.logger, app.logFile = logger, logFile
	if src := cfg.Source(); src != "" {
		app.logger.Info("config loaded from %s", src)
	}
	for _, path := range cfg.Unknown() {
		app.logger.Warn("unknown config setting %s", path)
	}

	// 3. Theme
	app.theme, err = style.Load(cfg.UI.Theme, cfg.UI.TrueColor)
	if err != nil {
		return &InitError{Component: "theme", Err: err}
	}

	// 4. File watcher. Editing works without it.
	app.watcher, err = watcher.NewFileWatcher()
	if err != nil {
		app.logComponentError("watcher", err)
		app.watcher = nil
	}

	// 5. Storage
	app.store = filestore.NewStore()
	app.store.OnSave(app.handleSaved)

	// 6. Engine
	grammars := highlight.DefaultRegistry()
	app.logger.Debug("grammars: %s", strings.Join(grammars.Filetypes(), ", "))
	app.engine = engine.New(
		engine.WithRegistry(grammars),
		engine.WithTabStop(cfg.Editor.TabStop),
		engine.WithQuitTimes(cfg.Editor.QuitTimes),
		engine.WithMessageTimeout(cfg.Editor.MessageTimeout),
		engine.WithStorage(&watchedStore{store: app.store, watcher: app.watcher}),
		engine.WithLogger(app.logger.WithComponent("engine")),
		engine.WithVersion(app.opts.Version),
	)

	// 7. Initial file
	if len(app.opts.Files) > 0 {
		path := app.opts.Files[0]
		if err := app.engine.Open(path); err != nil {
			return &OperationError{Op: "open", Path: path, Err: err}
		}
		app.watch(path)
	}
	app.engine.SetMessage(engine.HelpMessage)

	return nil
}

// loadConfig reads the configuration and applies command-line overrides.
func (app *Application) loadConfig() (*config.Config, error) {
	var opts []config.Option
	if app.opts.ConfigPath != "" {
		opts = append(opts, config.WithFile(app.opts.ConfigPath))
	}
	if app.opts.Environ != nil {
		opts = append(opts, config.WithEnviron(app.opts.Environ))
	}

	cfg, err := config.Load(opts...)
	if err != nil {
		return nil, err
	}

	overrides := map[string]string{
		"logging.level": app.opts.LogLevel,
		"ui.backend":    app.opts.Backend,
		"ui.theme":      app.opts.Theme,
	}
	for path, value := range overrides {
		if value == "" {
			continue
		}
		if err := cfg.Set(path, value); err != nil {
			return nil, fmt.Errorf("flag %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// watch points the watcher at path. Failures only cost the change notice.
func (app *Application) watch(path string) {
	if app.watcher == nil {
		return
	}
	if err := app.watcher.Watch(path); err != nil {
		app.logComponentError("watcher", fmt.Errorf("watch %s: %w", path, err))
	}
}

// handleSaved runs after every successful save. A save-as to a new name
// moves the watcher to the new file.
func (app *Application) handleSaved(path string, n int) {
	app.metrics.RecordSave(n)
	if app.watcher == nil {
		return
	}
	abs, err := filepath.Abs(path)
	if err == nil && abs != app.watcher.Path() {
		app.watch(path)
	}
}
