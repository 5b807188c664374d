// Package thinkaloud implements the open-ended reasoning drill: the
// user writes a free-text response to a prompt and receives a
// heuristic evaluation of the response.
package thinkaloud

import (
	"math/rand"

	"github.com/cortexprime/cortex/internal/core"
	"github.com/cortexprime/cortex/internal/registry"
)

// MinResponseLen is the minimum response length, in bytes, a host
// should require before allowing submission.
const MinResponseLen = 20

// prompts is the fixed bank of open-ended questions.
var prompts = []string{
	"If you could solve one world problem, what would it be and how would you approach it?",
	"What would you do if you had unlimited resources for one year?",
	"How would you redesign education for the future?",
	"What makes a person truly successful in life?",
	"If you could create any invention, what would help humanity most?",
	"How should cities be designed to make people happier?",
	"What's the most important skill everyone should learn?",
	"How would you solve the problem of loneliness in modern society?",
}

// Round is one prompt.
type Round struct {
	Prompt string
}

// Response is the host input: the submitted free-text answer.
type Response struct {
	Text string
}

// Drill generates think-aloud rounds and evaluates responses.
type Drill struct{}

// New creates a new think-aloud drill.
func New() *Drill {
	return &Drill{}
}

func init() {
	registry.Register("thinkaloud", func() registry.Drill {
		return New()
	})
}

// Kind returns the drill identifier.
func (d *Drill) Kind() string { return "thinkaloud" }

// Title returns the display name.
func (d *Drill) Title() string { return "Think Aloud" }

// NextRound selects a prompt uniformly from the bank.
func (d *Drill) NextRound(rng *rand.Rand) core.Round {
	return &Round{Prompt: prompts[rng.Intn(len(prompts))]}
}

// Score is unused for this drill: responses go through Evaluate
// instead of per-round scoring.
func (d *Drill) Score(core.Round, core.Input) core.Result {
	return core.Result{}
}

// Response extracts the submitted text from a drill input.
func (d *Drill) Response(in core.Input) (string, bool) {
	resp, ok := in.(Response)
	if !ok {
		return "", false
	}
	return resp.Text, true
}

// Evaluate applies the heuristic text scorer to a response.
func (d *Drill) Evaluate(text string) core.TextEvaluation {
	return Evaluate(text)
}

// The drill must satisfy the free-text contract.
var _ registry.Evaluator = (*Drill)(nil)
