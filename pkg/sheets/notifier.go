package sheets

import (
	"go.uber.org/atomic"

	sheeterrors "github.com/go-drift/sheets/pkg/errors"
)

// ChangeNotifier is a monotonically incrementing version counter the
// presentation layer observes to know when to re-read the entry
// sequence and redraw. Any change in Version means "the stack changed".
//
// Listener registration and notification happen on the UI goroutine,
// like every other stack mutation; Version alone is safe to poll from
// anywhere.
type ChangeNotifier struct {
	version        atomic.Uint64
	listeners      map[int]func()
	nextListenerID int
}

// NewChangeNotifier creates an empty notifier at version 0.
func NewChangeNotifier() *ChangeNotifier {
	return &ChangeNotifier{
		listeners: make(map[int]func()),
	}
}

// Version returns the current stack version.
func (n *ChangeNotifier) Version() uint64 {
	return n.version.Load()
}

// AddListener adds a callback that fires on every stack change.
// Returns an unsubscribe function.
func (n *ChangeNotifier) AddListener(fn func()) func() {
	id := n.nextListenerID
	n.nextListenerID++
	n.listeners[id] = fn
	return func() {
		delete(n.listeners, id)
	}
}

// notify bumps the version and fires all listeners. Listener panics are
// recovered and reported so a broken observer cannot wedge the stack.
func (n *ChangeNotifier) notify() {
	n.version.Inc()
	for _, listener := range n.listeners {
		sheeterrors.Guard("sheets.ChangeNotifier", listener)
	}
}
