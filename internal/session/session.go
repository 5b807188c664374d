// Package session implements the lifecycle of a single play-through of
// one mini-game: round generation, answer scoring, the countdown, and
// the free-text evaluation step. A session is exclusively owned by the
// host view that created it and is never accessed concurrently.
package session

import (
	"math/rand"

	"github.com/cortexprime/cortex/internal/catalog"
	"github.com/cortexprime/cortex/internal/core"
	"github.com/cortexprime/cortex/internal/progress"
	"github.com/cortexprime/cortex/internal/registry"
)

// DefaultDuration is the time budget in seconds for timed games whose
// definition does not specify one.
const DefaultDuration = 30

// State is the session lifecycle state.
type State int

const (
	// StateIdle is the state before Start.
	StateIdle State = iota

	// StateActive is the playing state: rounds are live and answers
	// are scored.
	StateActive

	// StateEvaluating is reached only by free-text games, between
	// response submission and evaluation.
	StateEvaluating

	// StateCompleted is terminal until an explicit Reset.
	StateCompleted
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateActive:
		return "active"
	case StateEvaluating:
		return "evaluating"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Session is one play-through of a single game. All transitions happen
// synchronously in response to caller events; invalid transitions are
// silent no-ops because the caller is the trusted host view, not an
// untrusted boundary.
type Session struct {
	def   catalog.GameDefinition
	drill registry.Drill
	rng   *rand.Rand

	state     State
	score     int
	remaining int
	round     core.Round
	last      core.Result

	pendingText string
	evaluation  *core.TextEvaluation
}

// New creates a session binding a game definition to its drill.
// The seed makes round generation reproducible.
func New(def catalog.GameDefinition, drill registry.Drill, seed int64) *Session {
	return &Session{
		def:   def,
		drill: drill,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// Start transitions Idle -> Active: score to zero, time budget to the
// definition's duration (or the default), and the first round live.
func (s *Session) Start() {
	if s.state != StateIdle {
		return
	}
	s.begin()
}

// Reset re-enters Active from Completed as if Start were called fresh.
// Supports "play again".
func (s *Session) Reset() {
	if s.state != StateCompleted {
		return
	}
	s.begin()
}

func (s *Session) begin() {
	s.state = StateActive
	s.score = 0
	s.remaining = s.Duration()
	s.evaluation = nil
	s.pendingText = ""
	s.last = core.Result{}
	s.round = s.drill.NextRound(s.rng)
}

// Tick consumes one second of the time budget. Valid only while
// Active and only for timed games. Reaching zero completes the
// session; any in-flight round is discarded.
func (s *Session) Tick() {
	if s.state != StateActive || !s.Timed() {
		return
	}

	s.remaining--
	if s.remaining <= 0 {
		s.remaining = 0
		s.round = nil
		s.state = StateCompleted
	}
}

// Submit scores an answer against the live round. The points delta is
// applied with the total clamped at zero, and the round is replaced
// with a fresh one. For free-text games, submission instead captures
// the response and transitions to Evaluating.
func (s *Session) Submit(in core.Input) {
	if s.state != StateActive {
		return
	}

	if ev, ok := s.drill.(registry.Evaluator); ok {
		text, ok := ev.Response(in)
		if !ok {
			return
		}
		s.pendingText = text
		s.round = nil
		s.state = StateEvaluating
		return
	}

	res := s.drill.Score(s.round, in)
	s.last = res
	if !res.Done {
		return
	}

	s.score += res.Points
	if s.score < 0 {
		s.score = 0
	}
	s.round = s.drill.NextRound(s.rng)
}

// Evaluate runs the text scorer over the submitted response. The
// accumulated score is overwritten, not added to. Valid only while
// Evaluating.
func (s *Session) Evaluate() {
	if s.state != StateEvaluating {
		return
	}

	ev, ok := s.drill.(registry.Evaluator)
	if !ok {
		// Only free-text drills can reach Evaluating.
		s.state = StateCompleted
		return
	}

	result := ev.Evaluate(s.pendingText)
	s.score = result.Score
	s.evaluation = &result
	s.state = StateCompleted
}

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// Score returns the accumulated score.
func (s *Session) Score() int { return s.score }

// Remaining returns the remaining time budget in seconds.
func (s *Session) Remaining() int { return s.remaining }

// Round returns the live round context, or nil outside Active play.
func (s *Session) Round() core.Round { return s.round }

// LastResult returns the result of the most recently scored round.
func (s *Session) LastResult() core.Result { return s.last }

// Evaluation returns the text evaluation, or nil for non-free-text
// games or before evaluation.
func (s *Session) Evaluation() *core.TextEvaluation { return s.evaluation }

// Definition returns the bound game definition.
func (s *Session) Definition() catalog.GameDefinition { return s.def }

// Drill returns the bound drill.
func (s *Session) Drill() registry.Drill { return s.drill }

// Timed reports whether the session runs against a countdown.
// Free-text games are open-ended.
func (s *Session) Timed() bool {
	_, isText := s.drill.(registry.Evaluator)
	return !isText
}

// Duration returns the session time budget in seconds.
func (s *Session) Duration() int {
	if !s.Timed() {
		return 0
	}
	if s.def.Duration > 0 {
		return s.def.Duration
	}
	return DefaultDuration
}

// Reward converts the final score to an experience award. Meaningful
// once the session has completed.
func (s *Session) Reward() int {
	return progress.Reward(s.score)
}
