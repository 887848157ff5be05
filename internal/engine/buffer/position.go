package buffer

import "fmt"

// Position is a cursor location in character coordinates.
// Line may equal Buffer.Len(), which addresses the empty line after the
// last one.
type Position struct {
	Line int
	Col  int
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Col)
}
