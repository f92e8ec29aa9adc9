package sheets

import (
	"time"

	"go.uber.org/atomic"

	"github.com/go-drift/sheets/pkg/animation"
	"github.com/go-drift/sheets/pkg/geometry"
)

// nextEntryID is an atomic counter for unique entry IDs.
var nextEntryID atomic.Uint64

// Position identifies the edge a sheet is anchored to. It is fixed for
// the entry's lifetime; the only way to change it is PushReplacement.
type Position int

const (
	// PositionLeft anchors the sheet to the left edge.
	PositionLeft Position = iota
	// PositionRight anchors the sheet to the right edge.
	PositionRight
	// PositionTop anchors the sheet to the top edge.
	PositionTop
	// PositionBottom anchors the sheet to the bottom edge.
	PositionBottom
	// PositionCustom means the transition builder fully controls placement.
	PositionCustom
)

func (p Position) String() string {
	switch p {
	case PositionLeft:
		return "left"
	case PositionRight:
		return "right"
	case PositionTop:
		return "top"
	case PositionBottom:
		return "bottom"
	case PositionCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// TransitionBuilder maps a sheet's animation progress to the offset the
// renderer should translate the sheet by on the current frame. Progress
// 0 is fully off-screen, 1 is fully settled.
type TransitionBuilder func(entry *SheetEntry, progress float64) geometry.Offset

// DecorationBuilder produces an opaque decoration for a rendered sheet
// (shadow, rounded corners, handle). The engine never inspects the
// returned value; it is passed through to the render layer.
type DecorationBuilder func(entry *SheetEntry) any

// SheetEntry is one stacked sheet. Entries are created by
// StackController.Push or PushReplacement, owned exclusively by the
// stack, and destroyed when a stack operation removes them. A removed
// entry is never reinserted; pushing the same content again creates a
// new entry.
type SheetEntry struct {
	id              uint64
	index           int
	position        Position
	content         any
	transition      TransitionBuilder
	decoration      DecorationBuilder
	dismissible     bool
	duration        time.Duration
	reverseDuration time.Duration

	// controller is owned exclusively by the entry: created at
	// construction, disposed exactly once at removal.
	controller *animation.ProgressController
	result     *resultChannel
	onRemoved  func()
	removed    bool
}

// ID returns the entry's unique identifier, suitable for stable keying
// in the render layer.
func (e *SheetEntry) ID() uint64 { return e.id }

// Index returns the stack depth the entry was created at. Replacement
// entries reuse the index of the entry they replaced.
func (e *SheetEntry) Index() int { return e.index }

// Position returns the edge the sheet is anchored to.
func (e *SheetEntry) Position() Position { return e.position }

// Content returns the opaque renderable content reference.
func (e *SheetEntry) Content() any { return e.content }

// Dismissible reports whether outside taps may dismiss this entry.
func (e *SheetEntry) Dismissible() bool { return e.dismissible }

// Progress returns the entry's current transition progress in [0, 1].
func (e *SheetEntry) Progress() float64 {
	if e.controller == nil {
		return 0
	}
	return e.controller.Value
}

// IsAnimating reports whether the entry's transition is running.
func (e *SheetEntry) IsAnimating() bool {
	return e.controller != nil && e.controller.IsAnimating()
}

// Offset evaluates the entry's transition builder at the current
// progress. Returns a zero offset if no builder is set.
func (e *SheetEntry) Offset() geometry.Offset {
	if e.transition == nil {
		return geometry.Offset{}
	}
	return e.transition(e, e.Progress())
}

// Decoration evaluates the entry's decoration builder.
// Returns nil if no builder is set.
func (e *SheetEntry) Decoration() any {
	if e.decoration == nil {
		return nil
	}
	return e.decoration(e)
}

// OnProgress subscribes to progress changes for this entry, typically
// to repaint the sheet each frame. Returns an unsubscribe function.
func (e *SheetEntry) OnProgress(fn func()) func() {
	if e.controller == nil {
		return func() {}
	}
	return e.controller.AddListener(fn)
}

// Result returns the entry's result channel. It receives exactly one
// value, at the moment the entry is removed from the stack, and is
// closed afterwards.
func (e *SheetEntry) Result() <-chan any {
	return e.result.out()
}
