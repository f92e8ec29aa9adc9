// Package sheets manages a layered stack of overlay sheets: ordered
// entries anchored to screen edges, animated in and out, each carrying
// an awaitable result back to its pusher.
//
// # Model
//
// StackController owns the entry sequence. Entries are appended by Push
// (last entry is topmost) and only ever removed; the sequence is never
// reordered. PushReplacement swaps the topmost sheet by appending the
// replacement and removing the outgoing entry once the incoming
// transition completes.
//
// Each SheetEntry owns a fresh animation.ProgressController created at
// push and disposed exactly once at removal. Removal timing is driven by
// the controller's status notifications: Pop starts the reverse
// transition and the entry leaves the sequence when the controller
// reports dismissed.
//
// # Results
//
// Push returns a result channel that receives exactly one value, when
// the entry is removed:
//
//	result := <-stack.Push(content, sheets.PositionBottom)
//
// Close and PopUntil redirect the final result to an earlier entry's
// channel so the caller that opened a multi-sheet flow receives its
// outcome; intermediate entries removed silently get nil on their own
// channels.
//
// # Threading
//
// The controller is single-goroutine: all mutating operations and the
// frame pump (animation.StepTickers) run on the host's UI goroutine.
// Result channels may be awaited from any goroutine.
//
// # Scrim
//
// One ScrimController dims the background for the whole stack. It runs
// forward when the stack becomes populated and reverses only once the
// stack is empty again; the render layer reads its progress and never
// drives it.
package sheets
