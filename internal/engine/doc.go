// Package engine holds the editor state and applies key presses to it.
//
// An Engine owns one document, the cursor, the viewport and the status
// message. It is driven by a single control loop:
//
//	e := engine.New(engine.WithStorage(store))
//	if err := e.Open(path); err != nil {
//		return err
//	}
//	for !e.QuitRequested() {
//		sink.Draw(e.Frame())
//		ev, err := keys.Next()
//		...
//		e.HandleKey(ev)
//	}
//
// # Modes
//
// Keys go to the active input mode. Normal mode edits and navigates. Ctrl-F
// pushes the search prompt, which moves the cursor to each match while the
// query is typed and puts everything back on Escape. Ctrl-S on an unnamed
// document pushes the save-as prompt.
//
// # Errors
//
// Cursor and edit operations never fail; out of range positions are
// clamped or ignored. Failed saves are reported in the message bar and the
// document is left untouched.
//
// The Engine does no locking. It must only be used from the goroutine that
// runs the control loop.
package engine
