// File: internal/pipeline/pipeline.go

// Package pipeline holds the small pieces of submit/receive/save machinery
// shared by the report generation and spreadsheet conversion flows.
package pipeline

import "sync/atomic"

// State is the lifecycle position of a submission pipeline. Both pipelines
// move Idle -> Validating -> Submitting and return to Idle on success or
// error; there is no cancellation once Submitting is entered.
type State int32

const (
	StateIdle State = iota
	StateValidating
	StateSubmitting
)

// String returns the lowercase state name for logging.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateSubmitting:
		return "submitting"
	default:
		return "unknown"
	}
}

// Guard is the single-writer in-flight flag. At most one submission may be
// outstanding per pipeline instance; a second attempt is rejected at the
// caller boundary, never queued. The owning pipeline is the only writer.
type Guard struct {
	state atomic.Int32
}

// Enter moves the guard from Idle into the given state, reporting false if a
// submission is already outstanding.
func (g *Guard) Enter(s State) bool {
	return g.state.CompareAndSwap(int32(StateIdle), int32(s))
}

// Advance moves an already-held guard to a later state.
func (g *Guard) Advance(s State) {
	g.state.Store(int32(s))
}

// Release returns the guard to Idle. It must run on every terminal path,
// success or failure, so a finished pipeline is always ready for the next
// attempt.
func (g *Guard) Release() {
	g.state.Store(int32(StateIdle))
}

// Current returns the guard's state.
func (g *Guard) Current() State {
	return State(g.state.Load())
}
