package key

import "fmt"

// Event represents a single key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune) Event {
	return Event{Key: KeyRune, Rune: r}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(k Key) Event {
	return Event{Key: k}
}

// IsRune returns true if this is a character event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune
}

// IsCtrl reports whether the event is the control character for letter.
func (e Event) IsCtrl(letter byte) bool {
	return e.Key == KeyRune && e.Rune == Ctrl(letter)
}

// IsEnter reports whether the event is a carriage return.
func (e Event) IsEnter() bool {
	return e.Key == KeyRune && e.Rune == RuneEnter
}

// IsPrintable reports whether the event is a printable ASCII character.
func (e Event) IsPrintable() bool {
	return e.Key == KeyRune && e.Rune >= ' ' && e.Rune < RuneDEL
}

// String returns a readable form, such as "Up", "a" or "Ctrl+Q".
func (e Event) String() string {
	if e.Key != KeyRune {
		return e.Key.String()
	}
	switch {
	case e.Rune == RuneEnter:
		return "Enter"
	case e.Rune == RuneTab:
		return "Tab"
	case e.Rune == 0:
		return "Ctrl+@"
	case e.Rune < ' ':
		return fmt.Sprintf("Ctrl+%c", 'A'+e.Rune-1)
	case e.Rune == RuneDEL:
		return "DEL"
	}
	return string(e.Rune)
}
