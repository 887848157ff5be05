package app

import "errors"

// Shutdown stops the loop and releases everything the application opened:
// the display, the file watcher and the log file. It is safe to call more
// than once and from another goroutine, for example a signal handler.
func (app *Application) Shutdown() error {
	app.doneOnce.Do(func() { close(app.done) })

	var err error
	app.shutdownOnce.Do(func() {
		errs := []error{app.closeDisplay()}

		if app.watcher != nil {
			errs = append(errs, app.watcher.Close())
			app.Logger().Debug("watcher saw %d events and %d errors",
				app.watcher.TotalEvents(), app.watcher.TotalErrors())
		}

		if app.metrics != nil {
			s := app.metrics.Snapshot()
			app.Logger().Info("session ended after %v: %d keys, %d frames (avg %v), %d saves",
				s.Uptime, s.KeyCount, s.FrameCount, s.AvgFrameTime(), s.Saves)
		}

		if app.logFile != nil {
			errs = append(errs, app.logFile.Close())
		}
		err = errors.Join(errs...)
	})
	return err
}
