package app

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dshills/kilo/internal/config"
	"github.com/dshills/kilo/internal/input/key"
	"github.com/dshills/kilo/internal/integration/terminal"
	"github.com/dshills/kilo/internal/renderer/backend"
)

// openDisplay opens the display selected by ui.backend on the process's
// terminal.
func (app *Application) openDisplay() error {
	cfg := app.config
	switch strings.ToLower(cfg.UI.Backend) {
	case config.BackendANSI:
		term, err := terminal.Open(os.Stdin, os.Stdout, cfg.Editor.ReadTimeout)
		if err != nil {
			return &InitError{Component: "terminal", Err: err}
		}
		app.sink = backend.NewANSI(os.Stdout, term, app.theme)
		app.keys = key.NewDecoder(term)
		app.restore = term.Restore

	case config.BackendTCell:
		t, err := backend.NewTerminal(app.theme, cfg.Editor.ReadTimeout)
		if err != nil {
			return &InitError{Component: "tcell", Err: err}
		}
		app.sink = t
		app.keys = t

	default:
		return fmt.Errorf("%w: backend %q", ErrNoDisplay, cfg.UI.Backend)
	}

	app.logger.Info("display %s opened", cfg.UI.Backend)
	return nil
}

// closeDisplay clears the screen and gives the terminal back to the shell.
// It runs once, whichever of Run and Shutdown gets there first.
func (app *Application) closeDisplay() error {
	var err error
	app.displayOnce.Do(func() {
		app.mu.Lock()
		sink, restore := app.sink, app.restore
		app.mu.Unlock()

		var errs []error
		if sink != nil {
			errs = append(errs, sink.Close())
		}
		if restore != nil {
			errs = append(errs, restore())
		}
		err = errors.Join(errs...)
	})
	return err
}
