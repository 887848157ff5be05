package terminal

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/dshills/kilo/internal/input/key"
)

// DefaultReadTimeout is the read timeout used when none is given.
const DefaultReadTimeout = 100 * time.Millisecond

// Terminal is a terminal in raw mode.
type Terminal struct {
	in  *os.File
	out *os.File

	mu      sync.Mutex
	state   *term.State
	timeout time.Duration
	closed  bool
}

// Open switches in to raw mode with the given read timeout. The size is
// queried on out. Restore must be called to leave raw mode.
func Open(in, out *os.File, timeout time.Duration) (*Terminal, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}
	if timeout <= 0 {
		timeout = DefaultReadTimeout
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("enable raw mode: %w", err)
	}
	if err := setReadTimeout(fd, timeout); err != nil {
		_ = term.Restore(fd, state)
		return nil, fmt.Errorf("set read timeout: %w", err)
	}

	return &Terminal{in: in, out: out, state: state, timeout: timeout}, nil
}

// setReadTimeout makes read(2) return after at most d with whatever input
// is available, possibly none.
func setReadTimeout(fd int, d time.Duration) error {
	t, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return err
	}
	t.Cc[unix.VMIN] = 0
	t.Cc[unix.VTIME] = deciseconds(d)
	return unix.IoctlSetTermios(fd, ioctlSetTermios, t)
}

// deciseconds converts d to the VTIME unit, clamped to 1..255.
func deciseconds(d time.Duration) uint8 {
	ds := (d + 99*time.Millisecond) / (100 * time.Millisecond)
	switch {
	case ds < 1:
		return 1
	case ds > 255:
		return 255
	}
	return uint8(ds)
}

// Timeout returns the read timeout.
func (t *Terminal) Timeout() time.Duration {
	return t.timeout
}

// ReadByte reads one byte of input. It returns key.ErrTimeout when nothing
// arrived within the timeout.
func (t *Terminal) ReadByte() (byte, error) {
	t.mu.Lock()
	closed := t.closed
	t.mu.Unlock()
	if closed {
		return 0, ErrTerminalClosed
	}

	var buf [1]byte
	n, err := unix.Read(int(t.in.Fd()), buf[:])
	switch {
	case errors.Is(err, unix.EAGAIN), errors.Is(err, unix.EINTR):
		return 0, key.ErrTimeout
	case err != nil:
		return 0, err
	case n == 0:
		return 0, key.ErrTimeout
	}
	return buf[0], nil
}

// Size returns the window size in rows and columns.
func (t *Terminal) Size() (rows, cols int, err error) {
	return Size(int(t.out.Fd()))
}

// Size returns the window size of the terminal open on fd.
func Size(fd int) (rows, cols int, err error) {
	cols, rows, err = term.GetSize(fd)
	if err != nil {
		return 0, 0, fmt.Errorf("get window size: %w", err)
	}
	if rows <= 0 || cols <= 0 {
		return 0, 0, ErrInvalidSize
	}
	return rows, cols, nil
}

// Restore returns the terminal to the mode it had before Open. It is safe to
// call more than once.
func (t *Terminal) Restore() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil
	}
	t.closed = true
	return term.Restore(int(t.in.Fd()), t.state)
}
