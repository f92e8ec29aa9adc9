package sheets

import "testing"

func TestPositionString(t *testing.T) {
	tests := []struct {
		position Position
		want     string
	}{
		{PositionLeft, "left"},
		{PositionRight, "right"},
		{PositionTop, "top"},
		{PositionBottom, "bottom"},
		{PositionCustom, "custom"},
		{Position(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.position.String(); got != tt.want {
			t.Errorf("Position(%d).String() = %q, want %q", tt.position, got, tt.want)
		}
	}
}

func TestEntryIDsAreUnique(t *testing.T) {
	c, clock := newTestStack(t)

	seen := make(map[uint64]bool)
	for _, content := range []string{"a", "b", "c"} {
		c.Push(content, PositionBottom)
		settle(clock)
	}
	for _, e := range c.Entries() {
		if seen[e.ID()] {
			t.Errorf("duplicate entry ID %d", e.ID())
		}
		seen[e.ID()] = true
	}
}

func TestEntryDecoration(t *testing.T) {
	c, clock := newTestStack(t)

	type decoration struct{ radius float64 }
	c.Push("a", PositionBottom, WithDecoration(func(*SheetEntry) any {
		return decoration{radius: 12}
	}))
	settle(clock)

	entry := c.CurrentOrNull()
	d, ok := entry.Decoration().(decoration)
	if !ok || d.radius != 12 {
		t.Errorf("Decoration = %v, want {12}", entry.Decoration())
	}
}

func TestEntryDecorationNil(t *testing.T) {
	entry := &SheetEntry{}
	if got := entry.Decoration(); got != nil {
		t.Errorf("Decoration = %v, want nil without a builder", got)
	}
}

func TestEntryProgressSubscription(t *testing.T) {
	c, clock := newTestStack(t)

	c.Push("a", PositionBottom)
	entry := c.CurrentOrNull()

	frames := 0
	unsub := entry.OnProgress(func() { frames++ })
	settle(clock)
	if frames == 0 {
		t.Error("progress listener never fired during the transition")
	}
	unsub()
}

func TestResultChannelSingleFulfillment(t *testing.T) {
	r := newResultChannel()
	r.complete("first")
	r.complete("second") // ignored

	if v := <-r.out(); v != "first" {
		t.Errorf("result = %v, want first", v)
	}
	if _, open := <-r.out(); open {
		t.Error("channel should be closed after fulfillment")
	}
}

func TestEmptyResult(t *testing.T) {
	ch := emptyResult()
	select {
	case v := <-ch:
		if v != nil {
			t.Errorf("result = %v, want nil", v)
		}
	default:
		t.Error("emptyResult should be fulfilled immediately")
	}
}
