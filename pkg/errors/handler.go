package errors

import (
	"runtime"
	"sync"
	"time"
)

var (
	// DefaultHandler is the global error handler.
	// It defaults to LogHandler with verbose=false.
	DefaultHandler Handler = &LogHandler{}

	handlerMu sync.RWMutex
)

// SetHandler configures the global error handler.
// Pass nil to restore the default LogHandler.
func SetHandler(h Handler) {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	if h == nil {
		DefaultHandler = &LogHandler{}
	} else {
		DefaultHandler = h
	}
}

// getHandler returns the current error handler.
func getHandler() Handler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return DefaultHandler
}

// Report sends an error to the global handler.
// If err.Timestamp is zero, it is set to the current time.
func Report(err *Error) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if h := getHandler(); h != nil {
		h.HandleError(err)
	}
}

// ReportPanic sends a panic error to the global handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if h := getHandler(); h != nil {
		h.HandlePanic(err)
	}
}

// Guard runs fn, recovering any panic and reporting it with the given
// operation name. The stack engine wraps user callbacks (onRemoved,
// change listeners) with Guard so one misbehaving callback cannot tear
// down the whole stack.
func Guard(op string, fn func()) {
	if fn == nil {
		return
	}
	defer func() {
		if v := recover(); v != nil {
			buf := make([]byte, 8192)
			n := runtime.Stack(buf, false)
			ReportPanic(&PanicError{
				Op:         op,
				Value:      v,
				StackTrace: string(buf[:n]),
			})
		}
	}()
	fn()
}
