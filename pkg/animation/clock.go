package animation

import "time"

// Clock is the time source tickers measure elapsed frames against. The
// default uses system time; tests install a controllable clock via
// SetClock so sheet transitions settle deterministically.
type Clock interface {
	Now() time.Time
}

// realClock uses system time.
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// clock is the package-level time source, replaceable for testing.
var clock Clock = realClock{}

// SetClock replaces the time source driving all tickers. Returns the
// previous clock so callers can restore it during cleanup.
func SetClock(c Clock) Clock {
	prev := clock
	clock = c
	return prev
}

// Now returns the current time from the active clock.
func Now() time.Time { return clock.Now() }
