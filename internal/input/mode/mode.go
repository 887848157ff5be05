package mode

import "github.com/dshills/kilo/internal/input/key"

// Mode names.
const (
	ModeNormal = "normal"
	ModeSearch = "search"
	ModeSaveAs = "save-as"
)

// Mode defines the interface for editor modes.
type Mode interface {
	// Name returns the unique mode identifier.
	Name() string

	// Enter is called when the mode becomes active.
	Enter() error

	// Exit is called when the mode stops being active.
	Exit() error

	// HandleKey processes one key event.
	HandleKey(ev key.Event) error
}
