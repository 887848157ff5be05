package mode

import (
	"errors"
	"fmt"

	"github.com/dshills/kilo/internal/input/key"
)

// ErrNoMode is returned when a key arrives and no mode is active.
var ErrNoMode = errors.New("no active mode")

// ChangeCallback is called after the active mode changes.
type ChangeCallback func(from, to Mode)

// Manager holds the registered modes and the stack of active ones.
type Manager struct {
	modes     map[string]Mode
	stack     []Mode
	callbacks []ChangeCallback
}

// NewManager creates a manager with no modes.
func NewManager() *Manager {
	return &Manager{
		modes: make(map[string]Mode),
		stack: make([]Mode, 0, 2),
	}
}

// Register adds a mode. A mode with the same name is replaced.
func (m *Manager) Register(mode Mode) {
	m.modes[mode.Name()] = mode
}

// Get returns a mode by name, or nil if not found.
func (m *Manager) Get(name string) Mode {
	return m.modes[name]
}

// Current returns the active mode, or nil.
func (m *Manager) Current() Mode {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}

// CurrentName returns the name of the active mode, or "".
func (m *Manager) CurrentName() string {
	if cur := m.Current(); cur != nil {
		return cur.Name()
	}
	return ""
}

// Depth returns the number of stacked modes.
func (m *Manager) Depth() int {
	return len(m.stack)
}

// OnChange registers a callback for mode changes.
func (m *Manager) OnChange(cb ChangeCallback) {
	m.callbacks = append(m.callbacks, cb)
}

// Switch replaces the whole stack with the named mode.
func (m *Manager) Switch(name string) error {
	next, ok := m.modes[name]
	if !ok {
		return fmt.Errorf("unknown mode: %s", name)
	}
	prev := m.Current()
	for len(m.stack) > 0 {
		top := m.stack[len(m.stack)-1]
		m.stack = m.stack[:len(m.stack)-1]
		if err := top.Exit(); err != nil {
			return fmt.Errorf("exit %s: %w", top.Name(), err)
		}
	}
	m.stack = append(m.stack, next)
	if err := next.Enter(); err != nil {
		return fmt.Errorf("enter %s: %w", name, err)
	}
	m.notify(prev, next)
	return nil
}

// Push activates the named mode on top of the current one.
func (m *Manager) Push(name string) error {
	next, ok := m.modes[name]
	if !ok {
		return fmt.Errorf("unknown mode: %s", name)
	}
	prev := m.Current()
	m.stack = append(m.stack, next)
	if err := next.Enter(); err != nil {
		m.stack = m.stack[:len(m.stack)-1]
		return fmt.Errorf("enter %s: %w", name, err)
	}
	m.notify(prev, next)
	return nil
}

// Pop leaves the current mode and returns to the one below it.
// The bottom mode is never popped.
func (m *Manager) Pop() error {
	if len(m.stack) < 2 {
		return nil
	}
	top := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	if err := top.Exit(); err != nil {
		return fmt.Errorf("exit %s: %w", top.Name(), err)
	}
	m.notify(top, m.Current())
	return nil
}

// Dispatch sends ev to the active mode.
func (m *Manager) Dispatch(ev key.Event) error {
	cur := m.Current()
	if cur == nil {
		return ErrNoMode
	}
	return cur.HandleKey(ev)
}

func (m *Manager) notify(from, to Mode) {
	for _, cb := range m.callbacks {
		cb(from, to)
	}
}
