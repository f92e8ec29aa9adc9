package sheets

import "sync"

// resultChannel is a single-fulfillment promise for a sheet's outcome.
// The buffered channel plus sync.Once guarantees exactly one send and
// one close no matter how many removal paths race to complete it
// (animated pop, silent collapse, replacement cleanup).
type resultChannel struct {
	ch   chan any
	once sync.Once
}

func newResultChannel() *resultChannel {
	return &resultChannel{ch: make(chan any, 1)}
}

// complete fulfills the channel with value. Subsequent calls are no-ops.
func (r *resultChannel) complete(value any) {
	r.once.Do(func() {
		r.ch <- value
		close(r.ch)
	})
}

// out returns the receive side. Callers can safely read once:
// result := <-entry.Result()
func (r *resultChannel) out() <-chan any {
	return r.ch
}

// emptyResult returns an already-fulfilled nil result, used for calls
// that are silently ignored (busy stack, unmounted host).
func emptyResult() <-chan any {
	r := newResultChannel()
	r.complete(nil)
	return r.out()
}
