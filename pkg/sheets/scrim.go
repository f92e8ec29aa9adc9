package sheets

import (
	"time"

	"github.com/go-drift/sheets/pkg/animation"
)

// TransitionSettings carries per-operation timing overrides. Operations
// thread an explicit settings value down to the scrim instead of
// mutating shared controller fields; zero fields mean "keep the stack
// default".
type TransitionSettings struct {
	Duration        time.Duration
	ReverseDuration time.Duration
	Curve           animation.Curve
}

// ScrimController drives the single dimming overlay shared by the whole
// stack. It runs forward when the stack becomes non-empty and reverses
// only once the stack is fully empty again. The render layer reads its
// Progress to blend the scrim color; it never mutates the controller.
type ScrimController struct {
	controller *animation.ProgressController
	defaults   TransitionSettings
}

func newScrimController(defaults TransitionSettings) *ScrimController {
	ctl := animation.NewProgressController(defaults.Duration, defaults.ReverseDuration)
	if defaults.Curve != nil {
		ctl.Curve = defaults.Curve
	}
	s := &ScrimController{controller: ctl, defaults: defaults}
	// Once the scrim finishes reversing to hidden, restore the stack
	// defaults so a later push cannot inherit a stale per-operation
	// override.
	ctl.AddStatusListener(func(status animation.Status) {
		if status == animation.StatusDismissed {
			ctl.Duration = defaults.Duration
			ctl.ReverseDuration = defaults.ReverseDuration
		}
	})
	return s
}

// Progress returns the scrim's current opacity progress in [0, 1].
func (s *ScrimController) Progress() float64 {
	return s.controller.Value
}

// IsHidden reports whether the scrim is fully hidden (progress 0 and
// not animating).
func (s *ScrimController) IsHidden() bool {
	return s.controller.IsDismissed()
}

// IsAnimating reports whether the scrim transition is running. Scrim
// motion does not count toward the stack's gesture-blocking Busy state.
func (s *ScrimController) IsAnimating() bool {
	return s.controller.IsAnimating()
}

// OnProgress subscribes to scrim progress changes.
// Returns an unsubscribe function.
func (s *ScrimController) OnProgress(fn func()) func() {
	return s.controller.AddListener(fn)
}

// show starts the forward transition with the given per-operation
// settings applied for this run.
func (s *ScrimController) show(settings TransitionSettings) {
	s.apply(settings)
	s.controller.Forward()
}

// hide starts the reverse transition. Defaults are restored by the
// status listener once the scrim reaches hidden.
func (s *ScrimController) hide(settings TransitionSettings) {
	s.apply(settings)
	s.controller.Reverse()
}

func (s *ScrimController) apply(settings TransitionSettings) {
	if settings.Duration > 0 {
		s.controller.Duration = settings.Duration
	}
	if settings.ReverseDuration > 0 {
		s.controller.ReverseDuration = settings.ReverseDuration
	}
}

// dispose releases the scrim's controller.
func (s *ScrimController) dispose() {
	s.controller.Dispose()
}
