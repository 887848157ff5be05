package cursor

import "testing"

// doc is a fixed set of line lengths.
type doc []int

func (d doc) Len() int          { return len(d) }
func (d doc) LineLen(i int) int { return d[i] }

func TestNew(t *testing.T) {
	c := New(-3, -1)
	if c.Col() != 0 || c.Line() != 0 {
		t.Errorf("negative coordinates should clamp to 0, got %s", c)
	}
}

func TestMovement(t *testing.T) {
	d := doc{3, 0, 5}

	tests := []struct {
		name     string
		start    Cursor
		move     func(Cursor) Cursor
		expected Cursor
	}{
		{"left", New(2, 0), func(c Cursor) Cursor { return c.Left(d) }, New(1, 0)},
		{"left wraps", New(0, 2), func(c Cursor) Cursor { return c.Left(d) }, New(0, 1)},
		{"left wraps to line end", New(0, 1), func(c Cursor) Cursor { return c.Left(d) }, New(3, 0)},
		{"left at origin", New(0, 0), func(c Cursor) Cursor { return c.Left(d) }, New(0, 0)},
		{"right", New(1, 0), func(c Cursor) Cursor { return c.Right(d) }, New(2, 0)},
		{"right wraps", New(3, 0), func(c Cursor) Cursor { return c.Right(d) }, New(0, 1)},
		{"right onto virtual line", New(5, 2), func(c Cursor) Cursor { return c.Right(d) }, New(0, 3)},
		{"right on virtual line", New(0, 3), func(c Cursor) Cursor { return c.Right(d) }, New(0, 3)},
		{"up clamps column", New(5, 2), func(c Cursor) Cursor { return c.Up(d) }, New(0, 1)},
		{"up at top", New(2, 0), func(c Cursor) Cursor { return c.Up(d) }, New(2, 0)},
		{"down clamps column", New(3, 0), func(c Cursor) Cursor { return c.Down(d) }, New(0, 1)},
		{"down to virtual line", New(4, 2), func(c Cursor) Cursor { return c.Down(d) }, New(0, 3)},
		{"down stops", New(0, 3), func(c Cursor) Cursor { return c.Down(d) }, New(0, 3)},
		{"home", New(4, 2), func(c Cursor) Cursor { return c.Home() }, New(0, 2)},
		{"end", New(1, 2), func(c Cursor) Cursor { return c.End(d) }, New(5, 2)},
		{"end on virtual line", New(0, 3), func(c Cursor) Cursor { return c.End(d) }, New(0, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.move(tt.start)
			if got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	d := doc{2, 4}
	if got := New(9, 9).Clamp(d); got != New(0, 2) {
		t.Errorf("expected (2:0), got %s", got)
	}
	if got := New(9, 1).Clamp(d); got != New(4, 1) {
		t.Errorf("expected (1:4), got %s", got)
	}
}

func TestPaging(t *testing.T) {
	d := make(doc, 50)
	for i := range d {
		d[i] = 10
	}

	got := New(3, 30).PageDown(d, 20, 10)
	if got.Line() != 39 {
		t.Errorf("PageDown: expected line 39, got %d", got.Line())
	}

	got = New(3, 25).PageUp(d, 20, 10)
	if got.Line() != 10 {
		t.Errorf("PageUp: expected line 10, got %d", got.Line())
	}

	got = New(0, 45).PageDown(d, 45, 10)
	if got.Line() != 50 {
		t.Errorf("PageDown near the end: expected line 50, got %d", got.Line())
	}

	got = New(0, 2).PageUp(d, 0, 10)
	if got.Line() != 0 {
		t.Errorf("PageUp near the top: expected line 0, got %d", got.Line())
	}
}
