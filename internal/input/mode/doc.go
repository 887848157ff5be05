// Package mode dispatches key events to the active input mode.
//
// The editor has three modes:
//   - normal: editing and navigation
//   - search: the incremental search prompt
//   - save-as: the filename prompt shown when saving an unnamed buffer
//
// Prompts are pushed on top of normal mode and popped when they finish, so
// the Manager keeps a stack. Enter and Exit run on every transition and
// change callbacks are notified afterwards.
//
// The Manager is used from the editor's single control goroutine and does
// no locking.
package mode
