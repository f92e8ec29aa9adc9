package sheets

import (
	"errors"
	"time"

	"github.com/go-drift/sheets/pkg/animation"
	"github.com/go-drift/sheets/pkg/config"
	sheeterrors "github.com/go-drift/sheets/pkg/errors"
)

// ErrEmptyStack is the underlying cause of invalid-operation errors
// returned by Pop, Close, PopUntil, PushReplacement and Current on an
// empty stack.
var ErrEmptyStack = errors.New("sheet stack is empty")

// Host reports whether the surface the stack renders onto is currently
// attached. Push and PushReplacement are silently ignored while the
// host is unmounted. A nil host counts as always mounted.
type Host interface {
	Mounted() bool
}

// Defaults are the stack-level fallbacks for per-sheet settings.
type Defaults struct {
	AnimationDuration        time.Duration
	ReverseAnimationDuration time.Duration
	ScrimDuration            time.Duration
	ScrimReverseDuration     time.Duration
	Dismissible              bool
}

func builtinDefaults() Defaults {
	return Defaults{
		AnimationDuration:        config.DefaultAnimationDuration,
		ReverseAnimationDuration: config.DefaultReverseAnimationDuration,
		ScrimDuration:            config.DefaultScrimDuration,
		ScrimReverseDuration:     config.DefaultScrimDuration,
		Dismissible:              true,
	}
}

// ControllerOption configures a StackController at construction.
type ControllerOption func(*StackController)

// WithDefaults replaces the stack-level defaults. Zero durations keep
// the compiled defaults.
func WithDefaults(d Defaults) ControllerOption {
	return func(c *StackController) {
		if d.AnimationDuration > 0 {
			c.defaults.AnimationDuration = d.AnimationDuration
		}
		if d.ReverseAnimationDuration > 0 {
			c.defaults.ReverseAnimationDuration = d.ReverseAnimationDuration
		}
		if d.ScrimDuration > 0 {
			c.defaults.ScrimDuration = d.ScrimDuration
		}
		if d.ScrimReverseDuration > 0 {
			c.defaults.ScrimReverseDuration = d.ScrimReverseDuration
		}
		c.defaults.Dismissible = d.Dismissible
	}
}

// WithConfig applies resolved sheets.yaml configuration as the
// stack-level defaults.
func WithConfig(r *config.Resolved) ControllerOption {
	return func(c *StackController) {
		if r == nil {
			return
		}
		c.defaults = Defaults{
			AnimationDuration:        r.AnimationDuration,
			ReverseAnimationDuration: r.ReverseAnimationDuration,
			ScrimDuration:            r.ScrimDuration,
			ScrimReverseDuration:     r.ScrimReverseDuration,
			Dismissible:              r.Dismissible,
		}
	}
}

// StackController manages the ordered sheet stack: push/pop/replace
// ordering, animation-driven removal timing, scrim coordination and
// change notification.
//
// The controller must be driven from the host's UI goroutine, like
// widget state: all mutating operations and the frame pump
// (animation.StepTickers) run there. Result channels returned by Push
// may be awaited from any goroutine.
//
// Entries are appended at the end of the sequence (last = topmost) and
// only ever removed; replacement appends the new entry and removes the
// old one once the incoming transition completes. The sequence is
// never reordered in place.
type StackController struct {
	host     Host
	defaults Defaults
	entries  []*SheetEntry
	scrim    *ScrimController
	notifier *ChangeNotifier
	disposed bool
}

// NewStackController creates an empty stack bound to the given host.
func NewStackController(host Host, opts ...ControllerOption) *StackController {
	c := &StackController{
		host:     host,
		defaults: builtinDefaults(),
		notifier: NewChangeNotifier(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.scrim = newScrimController(TransitionSettings{
		Duration:        c.defaults.ScrimDuration,
		ReverseDuration: c.defaults.ScrimReverseDuration,
		Curve:           animation.EaseOut,
	})
	return c
}

// Scrim returns the shared dimming-overlay controller. The render layer
// reads it; it must not drive it.
func (c *StackController) Scrim() *ScrimController {
	return c.scrim
}

// Notifier returns the change notifier the render layer observes.
func (c *StackController) Notifier() *ChangeNotifier {
	return c.notifier
}

// Len returns the number of live entries.
func (c *StackController) Len() int {
	return len(c.entries)
}

// IsEmpty reports whether the stack has no entries.
func (c *StackController) IsEmpty() bool {
	return len(c.entries) == 0
}

// IsBusy reports whether any entry's transition is running. Mutating
// operations are rejected as no-ops during this window; they are never
// queued.
func (c *StackController) IsBusy() bool {
	for _, e := range c.entries {
		if e.controller.IsAnimating() {
			return true
		}
	}
	return false
}

// Entries returns a snapshot of the entry sequence, bottom first.
func (c *StackController) Entries() []*SheetEntry {
	out := make([]*SheetEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Current returns the topmost entry. It fails with an
// invalid-operation error if the stack is empty.
func (c *StackController) Current() (*SheetEntry, error) {
	if len(c.entries) == 0 {
		return nil, c.invalidOp("sheets.Current")
	}
	return c.entries[len(c.entries)-1], nil
}

// CurrentOrNull returns the topmost entry, or nil if the stack is empty.
func (c *StackController) CurrentOrNull() *SheetEntry {
	if len(c.entries) == 0 {
		return nil
	}
	return c.entries[len(c.entries)-1]
}

// IndexOf returns the stack position of the entry holding the given
// content, or -1 if no live entry holds it.
func (c *StackController) IndexOf(content any) int {
	for i, e := range c.entries {
		if e.content == content {
			return i
		}
	}
	return -1
}

// Push appends a new sheet to the top of the stack and starts its
// forward transition. The returned channel receives the sheet's result
// exactly once, when the entry is eventually removed.
//
// The call is silently ignored (returning an already-fulfilled nil
// result) while the host is unmounted or the stack is busy.
func (c *StackController) Push(content any, position Position, opts ...SheetOption) <-chan any {
	if c.disposed || !c.mounted() || c.IsBusy() {
		return emptyResult()
	}

	req := buildRequest(opts)
	entry := c.newEntry(content, position, req)
	c.entries = append(c.entries, entry)
	c.notifier.notify()

	entry.controller.Forward()
	if c.scrim.IsHidden() {
		// Per-push duration overrides are threaded down explicitly;
		// zero fields keep the scrim's stack defaults.
		c.scrim.show(TransitionSettings{
			Duration:        req.duration,
			ReverseDuration: req.reverseDuration,
		})
	}
	return entry.result.out()
}

// Pop starts the topmost entry's reverse transition and removes it when
// the transition reaches zero: the entry's controller is disposed, the
// entry leaves the sequence, onRemoved fires exactly once, a change
// notification is emitted and the entry's result channel is fulfilled
// with result.
//
// Returns an invalid-operation error if the stack is empty; a busy
// stack is a silent no-op.
func (c *StackController) Pop(result any) error {
	if len(c.entries) == 0 {
		return c.invalidOp("sheets.Pop")
	}
	if c.IsBusy() {
		return nil
	}
	c.animateOut(c.entries[len(c.entries)-1], nil, result)
	return nil
}

// Close collapses the entire stack. Entries below the topmost are
// removed silently (their own result channels fulfilled with nil,
// onRemoved fired); the topmost animates out as in Pop. The final
// result is delivered on the bottom-most entry's channel, so the caller
// that started a multi-sheet flow receives its outcome.
//
// Returns an invalid-operation error if the stack is empty; a busy
// stack is a silent no-op.
func (c *StackController) Close(result any) error {
	if len(c.entries) == 0 {
		return c.invalidOp("sheets.Close")
	}
	if c.IsBusy() {
		return nil
	}
	c.collapse(result)
	return nil
}

// CloseIfOpen behaves like Close but returns immediately when the stack
// is empty instead of failing.
func (c *StackController) CloseIfOpen(result any) {
	if len(c.entries) == 0 || c.IsBusy() {
		return
	}
	c.collapse(result)
}

// PopUntil scans the stack bottom to top for the first entry satisfying
// predicate and collapses everything above it: entries strictly above
// the match are removed silently and the topmost animates out. The
// final result is redirected to the entry immediately above the match
// when one exists; a topmost match has no redirect target, which is not
// an error. If nothing satisfies the predicate, PopUntil behaves
// exactly like Close.
//
// Returns an invalid-operation error if the stack is empty; a busy
// stack is a silent no-op.
func (c *StackController) PopUntil(predicate func(*SheetEntry) bool, result any) error {
	if len(c.entries) == 0 {
		return c.invalidOp("sheets.PopUntil")
	}
	if c.IsBusy() {
		return nil
	}

	match := -1
	for i, e := range c.entries {
		if predicate(e) {
			match = i
			break
		}
	}
	if match < 0 {
		c.collapse(result)
		return nil
	}

	var redirect *resultChannel
	if match+1 < len(c.entries) {
		redirect = c.entries[match+1].result
	}

	top := c.entries[len(c.entries)-1]
	var above []*SheetEntry
	if match+1 < len(c.entries)-1 {
		above = make([]*SheetEntry, len(c.entries)-1-(match+1))
		copy(above, c.entries[match+1:len(c.entries)-1])
	}
	for _, e := range above {
		c.removeSilently(e, redirect)
	}
	if len(above) > 0 {
		c.notifier.notify()
	}

	// When the match is the topmost entry nothing was removed above it;
	// the animate-remove step still pops the topmost itself.
	c.animateOut(top, redirect, result)
	return nil
}

// PushReplacement swaps the topmost sheet for a new one. The new entry
// reuses the outgoing entry's index, dismissibility and onRemoved, and
// inherits its position, transition, decoration and durations for any
// option not supplied. It shares the outgoing entry's result channel:
// whichever entry is eventually removed fulfills that one channel
// exactly once.
//
// The outgoing entry stays in the sequence, visually underneath, until
// the incoming transition completes; it is then removed silently. The
// shared result channel and onRemoved are left for the replacement's
// own removal.
//
// Returns an invalid-operation error if the stack is empty. A busy
// stack or unmounted host is a silent no-op returning an
// already-fulfilled nil result.
func (c *StackController) PushReplacement(content any, opts ...SheetOption) (<-chan any, error) {
	if len(c.entries) == 0 {
		return nil, c.invalidOp("sheets.PushReplacement")
	}
	if c.disposed || !c.mounted() || c.IsBusy() {
		return emptyResult(), nil
	}

	old := c.entries[len(c.entries)-1]
	req := buildRequest(opts)

	position := old.position
	if req.position != nil {
		position = *req.position
	}
	transition := old.transition
	if req.transition != nil {
		transition = req.transition
	}
	decoration := old.decoration
	if req.decoration != nil {
		decoration = req.decoration
	}
	duration := old.duration
	if req.duration > 0 {
		duration = req.duration
	}
	reverse := old.reverseDuration
	if req.reverseDuration > 0 {
		reverse = req.reverseDuration
	}

	entry := &SheetEntry{
		id:              nextEntryID.Inc(),
		index:           old.index,
		position:        position,
		content:         content,
		transition:      transition,
		decoration:      decoration,
		dismissible:     old.dismissible,
		duration:        duration,
		reverseDuration: reverse,
		controller:      c.newProgressController(duration, reverse),
		result:          old.result,
		onRemoved:       old.onRemoved,
	}

	c.entries = append(c.entries, entry)
	c.notifier.notify()

	var unsub func()
	unsub = entry.controller.AddStatusListener(func(status animation.Status) {
		if status != animation.StatusCompleted {
			return
		}
		unsub()
		// The new entry has fully covered the old one; drop the old
		// entry without animation, without fulfilling the shared
		// channel and without firing the shared onRemoved.
		c.remove(old, false)
		c.notifier.notify()
	})
	entry.controller.Forward()

	return entry.result.out(), nil
}

// Dispose tears the stack down without animation: every entry is
// removed, onRemoved fires, result channels are fulfilled with nil and
// the scrim controller is released. The controller rejects all further
// mutating calls.
func (c *StackController) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	entries := c.Entries()
	for _, e := range entries {
		c.remove(e, true)
		e.result.complete(nil)
	}
	if len(entries) > 0 {
		c.notifier.notify()
	}
	c.scrim.dispose()
}

func (c *StackController) mounted() bool {
	return c.host == nil || c.host.Mounted()
}

func (c *StackController) invalidOp(op string) error {
	return &sheeterrors.Error{
		Op:   op,
		Kind: sheeterrors.KindInvalidOperation,
		Err:  ErrEmptyStack,
	}
}

func (c *StackController) newEntry(content any, position Position, req sheetRequest) *SheetEntry {
	duration := req.duration
	if duration <= 0 {
		duration = c.defaults.AnimationDuration
	}
	reverse := req.reverseDuration
	if reverse <= 0 {
		reverse = c.defaults.ReverseAnimationDuration
	}
	dismissible := c.defaults.Dismissible
	if req.dismissible != nil {
		dismissible = *req.dismissible
	}
	transition := req.transition
	if transition == nil {
		transition = SlideTransition()
	}

	return &SheetEntry{
		id:              nextEntryID.Inc(),
		index:           len(c.entries),
		position:        position,
		content:         content,
		transition:      transition,
		decoration:      req.decoration,
		dismissible:     dismissible,
		duration:        duration,
		reverseDuration: reverse,
		controller:      c.newProgressController(duration, reverse),
		result:          newResultChannel(),
		onRemoved:       req.onRemoved,
	}
}

func (c *StackController) newProgressController(duration, reverse time.Duration) *animation.ProgressController {
	ctl := animation.NewProgressController(duration, reverse)
	ctl.Curve = animation.EaseOut
	return ctl
}

// animateOut starts the entry's reverse transition and finishes the
// removal when the controller reports dismissed. Removal timing is
// driven by the controller's own status notification, not a settle
// timer.
func (c *StackController) animateOut(entry *SheetEntry, redirect *resultChannel, result any) {
	var unsub func()
	unsub = entry.controller.AddStatusListener(func(status animation.Status) {
		if status != animation.StatusDismissed {
			return
		}
		unsub()
		c.finalizeRemoval(entry, redirect, result)
	})
	entry.controller.Reverse()
}

// finalizeRemoval detaches the entry and delivers the result: to the
// redirect channel when one was captured (Close, PopUntil), otherwise
// to the entry's own channel.
func (c *StackController) finalizeRemoval(entry *SheetEntry, redirect *resultChannel, result any) {
	c.remove(entry, true)
	ch := entry.result
	if redirect != nil {
		ch = redirect
	}
	ch.complete(result)
	c.notifier.notify()
	c.maybeHideScrim()
}

// removeSilently drops an entry with no animation, fulfilling its own
// result channel with nil unless that channel is the captured redirect
// target, which is fulfilled later with the operation's final result.
func (c *StackController) removeSilently(entry *SheetEntry, redirect *resultChannel) {
	c.remove(entry, true)
	if entry.result != redirect {
		entry.result.complete(nil)
	}
}

// remove detaches an entry from the sequence and disposes its
// controller. onRemoved fires here, at the moment the entry actually
// leaves the stack, so it runs exactly once per entry regardless of
// which operation triggered the removal.
func (c *StackController) remove(entry *SheetEntry, fireOnRemoved bool) {
	if entry.removed {
		return
	}
	entry.removed = true
	entry.controller.Dispose()
	for i, e := range c.entries {
		if e == entry {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			break
		}
	}
	if fireOnRemoved && entry.onRemoved != nil {
		sheeterrors.Guard("sheets.onRemoved", entry.onRemoved)
	}
}

// collapse implements Close: capture the bottom entry's channel, drop
// everything below the topmost silently, then animate the topmost out
// and deliver the final result on the captured channel.
func (c *StackController) collapse(result any) {
	redirect := c.entries[0].result
	top := c.entries[len(c.entries)-1]

	below := make([]*SheetEntry, len(c.entries)-1)
	copy(below, c.entries[:len(c.entries)-1])
	for _, e := range below {
		c.removeSilently(e, redirect)
	}
	if len(below) > 0 {
		c.notifier.notify()
	}

	c.animateOut(top, redirect, result)
}

func (c *StackController) maybeHideScrim() {
	if len(c.entries) == 0 && !c.scrim.IsHidden() {
		c.scrim.hide(TransitionSettings{})
	}
}
