package animation

import (
	"fmt"
	"time"
)

// Status represents the current state of a progress controller.
//
// The status follows this state machine:
//
//	                Forward()
//	Dismissed ──────────────────► Completed
//	    ▲                              │
//	    │         Reverse()            │
//	    └──────────────────────────────┘
//
// While animating, status is StatusForward or StatusReverse. When
// stopped, status is StatusDismissed (at 0) or StatusCompleted (at 1).
type Status int

const (
	// StatusDismissed means progress is stopped at the lower bound (0.0).
	StatusDismissed Status = iota
	// StatusForward means progress is moving toward the upper bound (1.0).
	StatusForward
	// StatusReverse means progress is moving toward the lower bound (0.0).
	StatusReverse
	// StatusCompleted means progress is stopped at the upper bound (1.0).
	StatusCompleted
)

// String returns a human-readable representation of the status.
func (s Status) String() string {
	switch s {
	case StatusDismissed:
		return "dismissed"
	case StatusForward:
		return "forward"
	case StatusReverse:
		return "reverse"
	case StatusCompleted:
		return "completed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// ProgressController drives a single sheet's enter/exit progress.
//
// The controller manages a Value that moves between 0 and 1 over
// Duration when running forward and over ReverseDuration when running
// in reverse. A zero ReverseDuration falls back to Duration. The Curve
// function transforms linear progress into eased motion.
//
// Use [Tween] to map the 0-1 value to other ranges or types.
//
// Always call Dispose when done to stop the animation and release
// listeners. Dispose is idempotent; a disposed controller rejects
// further Forward/Reverse calls.
type ProgressController struct {
	// Value is the current progress, ranging from 0.0 to 1.0.
	Value float64

	// Duration is the length of the forward transition.
	Duration time.Duration

	// ReverseDuration is the length of the reverse transition.
	// Zero means "same as Duration".
	ReverseDuration time.Duration

	// Curve transforms linear progress (optional).
	Curve Curve

	status          Status
	ticker          *Ticker
	target          float64
	startValue      float64
	listeners       map[int]func()
	statusListeners map[int]func(Status)
	nextListenerID  int
	disposed        bool
}

// NewProgressController creates a controller with the given forward and
// reverse durations. A zero reverse duration inherits the forward one.
func NewProgressController(duration, reverseDuration time.Duration) *ProgressController {
	return &ProgressController{
		Value:           0,
		Duration:        duration,
		ReverseDuration: reverseDuration,
		Curve:           Linear,
		status:          StatusDismissed,
		listeners:       make(map[int]func()),
		statusListeners: make(map[int]func(Status)),
	}
}

// Forward animates from the current value to the upper bound (1.0).
func (c *ProgressController) Forward() {
	c.animateTo(1, StatusForward, c.Duration)
}

// Reverse animates from the current value to the lower bound (0.0).
func (c *ProgressController) Reverse() {
	d := c.ReverseDuration
	if d <= 0 {
		d = c.Duration
	}
	c.animateTo(0, StatusReverse, d)
}

func (c *ProgressController) animateTo(target float64, direction Status, duration time.Duration) {
	if c.disposed {
		return
	}
	if c.ticker != nil {
		c.ticker.Stop()
	}

	c.target = target
	c.startValue = c.Value
	c.setStatus(direction)

	c.ticker = NewTicker(func(elapsed time.Duration) {
		c.tick(elapsed, duration)
	})
	c.ticker.Start()
}

func (c *ProgressController) tick(elapsed time.Duration, duration time.Duration) {
	if duration <= 0 {
		c.Value = c.target
		c.notifyListeners()
		c.stop()
		return
	}

	progress := float64(elapsed) / float64(duration)
	if progress >= 1.0 {
		progress = 1.0
	}

	eased := progress
	if c.Curve != nil {
		eased = c.Curve(progress)
	}
	c.Value = c.startValue + (c.target-c.startValue)*eased
	c.notifyListeners()

	if progress >= 1.0 {
		c.stop()
	}
}

func (c *ProgressController) stop() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}

	if c.Value <= 0 {
		c.setStatus(StatusDismissed)
	} else if c.Value >= 1 {
		c.setStatus(StatusCompleted)
	}
}

// Stop halts the animation at the current value.
func (c *ProgressController) Stop() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
}

// Status returns the current animation status.
func (c *ProgressController) Status() Status {
	return c.status
}

// IsAnimating returns true if progress is currently moving.
func (c *ProgressController) IsAnimating() bool {
	return c.status == StatusForward || c.status == StatusReverse
}

// IsCompleted returns true if progress finished at the upper bound.
func (c *ProgressController) IsCompleted() bool {
	return c.status == StatusCompleted
}

// IsDismissed returns true if progress is at the lower bound.
func (c *ProgressController) IsDismissed() bool {
	return c.status == StatusDismissed
}

// IsDisposed reports whether Dispose has been called.
func (c *ProgressController) IsDisposed() bool {
	return c.disposed
}

// AddListener adds a callback that fires whenever the value changes.
// Returns an unsubscribe function.
func (c *ProgressController) AddListener(fn func()) func() {
	if c.disposed {
		return func() {}
	}
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = fn
	return func() {
		delete(c.listeners, id)
	}
}

// AddStatusListener adds a callback that fires whenever the status
// changes. Returns an unsubscribe function.
func (c *ProgressController) AddStatusListener(fn func(Status)) func() {
	if c.disposed {
		return func() {}
	}
	id := c.nextListenerID
	c.nextListenerID++
	c.statusListeners[id] = fn
	return func() {
		delete(c.statusListeners, id)
	}
}

func (c *ProgressController) setStatus(status Status) {
	if c.status == status {
		return
	}
	c.status = status
	for _, listener := range c.statusListeners {
		listener(status)
	}
}

func (c *ProgressController) notifyListeners() {
	for _, listener := range c.listeners {
		listener()
	}
}

// Dispose stops the animation and releases listeners. Idempotent.
func (c *ProgressController) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.Stop()
	c.listeners = nil
	c.statusListeners = nil
}
