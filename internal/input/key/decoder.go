package key

import "errors"

// ErrTimeout is returned by a ByteSource when no byte arrived within its
// read window.
var ErrTimeout = errors.New("key: read timed out")

// ByteSource supplies input one byte at a time. ReadByte waits a bounded
// time and returns ErrTimeout when nothing arrived.
type ByteSource interface {
	ReadByte() (byte, error)
}

// Source is anything that produces key events.
type Source interface {
	Next() (Event, error)
}

// Decoder translates a raw byte stream into key events.
type Decoder struct {
	src ByteSource
}

// NewDecoder creates a decoder reading from src.
func NewDecoder(src ByteSource) *Decoder {
	return &Decoder{src: src}
}

// Next returns the next key event. If the first byte times out Next returns
// ErrTimeout so the caller can redraw and try again. Other read errors are
// returned as is.
func (d *Decoder) Next() (Event, error) {
	b, err := d.src.ReadByte()
	if err != nil {
		return Event{}, err
	}

	switch b {
	case 0x1b:
		return d.escape(), nil
	case RuneDEL:
		return NewSpecialEvent(KeyBackspace), nil
	}
	return NewRuneEvent(rune(b)), nil
}

// escape decodes the rest of a sequence after ESC. Any failure to read a
// byte, or an unknown sequence, yields a bare Escape.
func (d *Decoder) escape() Event {
	esc := NewSpecialEvent(KeyEscape)

	first, err := d.src.ReadByte()
	if err != nil {
		return esc
	}
	second, err := d.src.ReadByte()
	if err != nil {
		return esc
	}

	switch first {
	case '[':
		if second >= '0' && second <= '9' {
			third, err := d.src.ReadByte()
			if err != nil || third != '~' {
				return esc
			}
			if k, ok := tildeKeys[second]; ok {
				return NewSpecialEvent(k)
			}
			return esc
		}
		if k, ok := csiKeys[second]; ok {
			return NewSpecialEvent(k)
		}
	case 'O':
		if k, ok := ss3Keys[second]; ok {
			return NewSpecialEvent(k)
		}
	}
	return esc
}

var tildeKeys = map[byte]Key{
	'1': KeyHome,
	'3': KeyDelete,
	'4': KeyEnd,
	'5': KeyPageUp,
	'6': KeyPageDown,
	'7': KeyHome,
	'8': KeyEnd,
}

var csiKeys = map[byte]Key{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
}

var ss3Keys = map[byte]Key{
	'H': KeyHome,
	'F': KeyEnd,
}
