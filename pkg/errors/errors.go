// Package errors provides structured error handling for the sheets library.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// Kind identifies the category of an error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindInvalidOperation indicates a stack operation that is not legal
	// in the current state, such as popping an empty stack. Distinct
	// from silently ignored calls, which return no error at all.
	KindInvalidOperation
	// KindConfig indicates a configuration load or parse error.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k Kind) String() string {
	switch k {
	case KindInvalidOperation:
		return "invalid-operation"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Error represents a structured error in the sheets library.
type Error struct {
	// Op is the operation that failed (e.g., "sheets.Pop").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsInvalidOperation reports whether err (or anything it wraps) is a
// KindInvalidOperation error. Callers use this to distinguish API
// misuse from a silent no-op, which returns nil.
func IsInvalidOperation(err error) bool {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind == KindInvalidOperation
	}
	return false
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "sheets.onRemoved").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Handler receives errors reported by the sheets library.
type Handler interface {
	// HandleError is called when an error occurs.
	HandleError(err *Error)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
