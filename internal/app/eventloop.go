package app

import (
	"errors"
	"runtime/debug"

	"github.com/dshills/kilo/internal/input/key"
	"github.com/dshills/kilo/internal/project/watcher"
	"github.com/dshills/kilo/internal/renderer/backend"
)

// Run starts the application main loop and blocks until the user quits or
// Shutdown is called. It returns ErrQuit when the user quit.
func (app *Application) Run() (err error) {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	app.mu.Lock()
	needDisplay := app.sink == nil || app.keys == nil
	app.mu.Unlock()
	if needDisplay {
		if err := app.openDisplay(); err != nil {
			return err
		}
	}

	defer func() {
		if r := recover(); r != nil {
			stack := string(debug.Stack())
			app.Logger().Error("panic in event loop: %v\n%s", r, stack)
			err = &RecoveredPanicError{Value: r, Stack: stack}
		}
		if cerr := app.closeDisplay(); cerr != nil && err == nil {
			err = &ComponentError{Component: "display", Action: "close", Err: cerr}
		}
	}()

	return app.eventLoop()
}

// loopState is what the last drawn frame depended on besides the document.
type loopState struct {
	rows, cols     int
	messageVisible bool
}

// eventLoop alternates between drawing a frame and applying one key. A
// read that times out only redraws when something outside the document
// changed: the screen size, the message expiring, or the file on disk.
func (app *Application) eventLoop() error {
	var last loopState
	redraw := true

	for {
		select {
		case <-app.done:
			return nil
		default:
		}

		if app.drainWatcher() {
			redraw = true
		}

		rows, cols, err := app.sink.Size()
		if err != nil {
			return &ComponentError{Component: "display", Action: "size", Err: err}
		}
		if rows != last.rows || cols != last.cols {
			app.engine.SetSize(rows, cols)
			last.rows, last.cols = rows, cols
			redraw = true
		}

		if visible := app.engine.MessageVisible(); visible != last.messageVisible {
			last.messageVisible = visible
			redraw = true
		}

		if redraw {
			timer := StartTimer()
			if err := app.sink.Draw(app.engine.Frame()); err != nil {
				if errors.Is(err, backend.ErrClosed) {
					return nil
				}
				return &ComponentError{Component: "display", Action: "draw", Err: err}
			}
			app.metrics.RecordFrame(timer.Stop())
			redraw = false
		}

		ev, err := app.keys.Next()
		if errors.Is(err, key.ErrTimeout) {
			app.metrics.RecordIdle()
			continue
		}
		if err != nil {
			if errors.Is(err, backend.ErrClosed) {
				return nil
			}
			return &ComponentError{Component: "input", Action: "read", Err: err}
		}

		timer := StartTimer()
		if err := app.engine.HandleKey(ev); err != nil {
			app.logComponentError("engine", err)
		}
		app.metrics.RecordKey(timer.Stop())
		redraw = true

		if app.engine.QuitRequested() {
			app.logger.Debug("quit requested")
			return ErrQuit
		}
	}
}

// drainWatcher applies pending file change events and reports whether
// there were any.
func (app *Application) drainWatcher() bool {
	if app.watcher == nil {
		return false
	}
	changed := false
	for {
		ev, ok := app.watcher.Poll()
		if !ok {
			break
		}
		if ev.Op.Has(watcher.OpWrite) || ev.Op.Has(watcher.OpRemove) || ev.Op.Has(watcher.OpRename) {
			app.engine.ExternalChange()
			app.metrics.RecordExternalChange()
			changed = true
		}
	}
	for {
		select {
		case err, ok := <-app.watcher.Errors():
			if !ok {
				return changed
			}
			app.logComponentError("watcher", err)
		default:
			return changed
		}
	}
}
