// Package cursor moves the editing cursor around a document.
//
// A Cursor is an immutable value holding a character column and a line
// number. Every movement takes the document's line lengths into account and
// returns a new Cursor that is valid for it:
//
//   - the line may be one past the last line, the empty line where typing
//     appends a new one
//   - the column never exceeds the length of the cursor's line
//
// Left at the start of a line wraps to the end of the previous one, and
// Right at the end of a line wraps to the start of the next.
package cursor
