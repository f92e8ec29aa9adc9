package sheets

import "time"

// sheetRequest collects the optional fields of a Push or PushReplacement
// call. Unset fields fall back to stack defaults, or for replacements to
// the outgoing entry's values.
type sheetRequest struct {
	position        *Position
	transition      TransitionBuilder
	decoration      DecorationBuilder
	dismissible     *bool
	duration        time.Duration
	reverseDuration time.Duration
	onRemoved       func()
}

func buildRequest(opts []SheetOption) sheetRequest {
	var req sheetRequest
	for _, opt := range opts {
		opt(&req)
	}
	return req
}

// SheetOption configures a sheet pushed via Push or PushReplacement.
type SheetOption func(*sheetRequest)

// WithTransition sets the transition builder driving the sheet's
// enter/exit offset. Defaults to a directional slide for the sheet's
// position.
func WithTransition(builder TransitionBuilder) SheetOption {
	return func(r *sheetRequest) {
		r.transition = builder
	}
}

// WithDecoration sets the opaque decoration builder passed through to
// the render layer.
func WithDecoration(builder DecorationBuilder) SheetOption {
	return func(r *sheetRequest) {
		r.decoration = builder
	}
}

// WithDismissible controls whether outside taps may dismiss the sheet.
// A non-dismissible sheet also shields every sheet beneath it from
// outside-tap dismissal.
func WithDismissible(dismissible bool) SheetOption {
	return func(r *sheetRequest) {
		r.dismissible = &dismissible
	}
}

// WithDuration overrides the stack's default forward transition duration.
func WithDuration(d time.Duration) SheetOption {
	return func(r *sheetRequest) {
		r.duration = d
	}
}

// WithReverseDuration overrides the stack's default reverse transition
// duration.
func WithReverseDuration(d time.Duration) SheetOption {
	return func(r *sheetRequest) {
		r.reverseDuration = d
	}
}

// WithOnRemoved registers a callback fired exactly once, at the moment
// the entry leaves the stack.
func WithOnRemoved(fn func()) SheetOption {
	return func(r *sheetRequest) {
		r.onRemoved = fn
	}
}

// WithPosition overrides the anchored position of a replacement sheet.
// Push takes the position directly; this option only matters for
// PushReplacement, which otherwise inherits the outgoing position.
func WithPosition(p Position) SheetOption {
	return func(r *sheetRequest) {
		r.position = &p
	}
}
