// Package core defines the value types exchanged between the session
// engine, the drills, and the host platform. It has no dependencies so
// every other package can import it freely.
package core

// Round is a drill-specific description of the pending challenge.
// Each drill package exposes its own concrete round type; hosts
// type-switch on it to render. At most one round is live per session.
type Round = any

// Input is a drill-specific answer payload submitted by the host
// (a selected choice, a tapped cell, a same/different judgment, or a
// free-text response). Inputs of the wrong type are silently ignored.
type Input = any

// Result is produced once per scored round.
type Result struct {
	// Done reports whether the round is finished and should be
	// replaced. Drills that accumulate input across several events
	// (pattern recall) return Done=false until the round resolves.
	Done bool

	// Correct reports whether the answer matched. Meaningless for
	// free-text rounds, which are evaluated instead of scored.
	Correct bool

	// Points is the score delta for this round. May be negative for
	// penalty-bearing drills; the session clamps the total at zero.
	Points int
}

// TextEvaluation is the multi-dimensional verdict on a free-text
// response. Immutable once produced.
type TextEvaluation struct {
	// Score is the overall score in [20, 100].
	Score int

	// Strengths lists what the response did well, in check order.
	Strengths []string

	// Improvements lists what to work on, in check order.
	Improvements []string

	// Feedback is a single summary statement chosen by score band.
	Feedback string
}
