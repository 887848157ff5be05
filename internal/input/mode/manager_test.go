package mode

import (
	"errors"
	"testing"

	"github.com/dshills/kilo/internal/input/key"
)

type recordingMode struct {
	name   string
	log    *[]string
	keys   []key.Event
	failIn bool
}

func (r *recordingMode) Name() string { return r.name }

func (r *recordingMode) Enter() error {
	*r.log = append(*r.log, "enter "+r.name)
	if r.failIn {
		return errors.New("refused")
	}
	return nil
}

func (r *recordingMode) Exit() error {
	*r.log = append(*r.log, "exit "+r.name)
	return nil
}

func (r *recordingMode) HandleKey(ev key.Event) error {
	r.keys = append(r.keys, ev)
	return nil
}

func newTestManager() (*Manager, *recordingMode, *recordingMode, *[]string) {
	log := &[]string{}
	normal := &recordingMode{name: ModeNormal, log: log}
	search := &recordingMode{name: ModeSearch, log: log}
	m := NewManager()
	m.Register(normal)
	m.Register(search)
	return m, normal, search, log
}

func TestManagerSwitchPushPop(t *testing.T) {
	m, normal, search, log := newTestManager()

	if m.Current() != nil || m.CurrentName() != "" {
		t.Fatal("expected no current mode")
	}
	if err := m.Dispatch(key.NewRuneEvent('a')); !errors.Is(err, ErrNoMode) {
		t.Errorf("expected ErrNoMode, got %v", err)
	}

	if err := m.Switch(ModeNormal); err != nil {
		t.Fatalf("Switch: %v", err)
	}
	if err := m.Push(ModeSearch); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if m.CurrentName() != ModeSearch || m.Depth() != 2 {
		t.Errorf("expected search on top of a 2-deep stack, got %s/%d", m.CurrentName(), m.Depth())
	}

	m.Dispatch(key.NewRuneEvent('x'))
	if len(search.keys) != 1 || len(normal.keys) != 0 {
		t.Error("expected the key to reach only the top mode")
	}

	if err := m.Pop(); err != nil {
		t.Fatalf("Pop: %v", err)
	}
	if err := m.Pop(); err != nil {
		t.Fatalf("Pop on the bottom mode: %v", err)
	}
	if m.CurrentName() != ModeNormal {
		t.Errorf("expected normal, got %s", m.CurrentName())
	}

	expected := []string{"enter normal", "enter search", "exit search"}
	if len(*log) != len(expected) {
		t.Fatalf("expected transitions %v, got %v", expected, *log)
	}
	for i := range expected {
		if (*log)[i] != expected[i] {
			t.Errorf("transition %d: expected %q, got %q", i, expected[i], (*log)[i])
		}
	}
}

func TestManagerUnknownMode(t *testing.T) {
	m, _, _, _ := newTestManager()
	if err := m.Switch("visual"); err == nil {
		t.Error("expected error for unknown mode")
	}
	if err := m.Push("visual"); err == nil {
		t.Error("expected error for unknown mode")
	}
	if m.Get(ModeSearch) == nil {
		t.Error("expected registered mode")
	}
}

func TestManagerPushFailure(t *testing.T) {
	m, _, search, _ := newTestManager()
	search.failIn = true
	m.Switch(ModeNormal)
	if err := m.Push(ModeSearch); err == nil {
		t.Fatal("expected enter error")
	}
	if m.CurrentName() != ModeNormal {
		t.Errorf("expected failed push to leave normal active, got %s", m.CurrentName())
	}
}

func TestManagerCallbacks(t *testing.T) {
	m, _, _, _ := newTestManager()
	var changes []string
	m.OnChange(func(from, to Mode) {
		name := func(md Mode) string {
			if md == nil {
				return "-"
			}
			return md.Name()
		}
		changes = append(changes, name(from)+">"+name(to))
	})

	m.Switch(ModeNormal)
	m.Push(ModeSearch)
	m.Pop()

	expected := []string{"->normal", "normal>search", "search>normal"}
	if len(changes) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, changes)
	}
	for i := range expected {
		if changes[i] != expected[i] {
			t.Errorf("change %d: expected %q, got %q", i, expected[i], changes[i])
		}
	}
}
