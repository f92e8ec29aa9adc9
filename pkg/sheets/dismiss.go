package sheets

import "github.com/go-drift/sheets/pkg/geometry"

// EntryBounds pairs a live entry with the rectangle it occupied in the
// frame the tap landed on. The render layer reports bounds in the same
// order as the entry sequence, bottom first.
type EntryBounds struct {
	Entry  *SheetEntry
	Bounds geometry.Rect
}

// ResolveDismissTarget decides which entry, if any, an outside tap
// should dismiss. The scan runs top to bottom:
//
//   - an entry whose bounds contain the tap was actually hit, not
//     tapped outside of; the scan moves past it to the entry beneath,
//   - a non-dismissible entry always counts as hit, absorbing the tap
//     and shielding everything beneath it,
//   - otherwise the first entry the tap falls outside of is the
//     dismiss target.
//
// The function is pure over the tap point and the frame's reported
// bounds; it never queries the render tree. A nil return means the tap
// dismisses nothing.
func ResolveDismissTarget(tap geometry.Offset, bounds []EntryBounds) *SheetEntry {
	for i := len(bounds) - 1; i >= 0; i-- {
		b := bounds[i]
		if b.Entry == nil || b.Entry.removed {
			continue
		}
		if !b.Entry.Dismissible() {
			return nil
		}
		if b.Bounds.Contains(tap) {
			continue
		}
		return b.Entry
	}
	return nil
}

// HandleTapOutside resolves a tap against the frame's entry bounds and,
// when a dismiss target is found, pops the stack down to it with a nil
// result. Returns true if a dismissal was started.
func (c *StackController) HandleTapOutside(tap geometry.Offset, bounds []EntryBounds) bool {
	target := ResolveDismissTarget(tap, bounds)
	if target == nil {
		return false
	}
	if c.IsBusy() {
		return false
	}
	return c.PopUntil(func(e *SheetEntry) bool { return e == target }, nil) == nil
}
