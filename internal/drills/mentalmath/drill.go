// Package mentalmath implements the arithmetic drill: quick mental
// calculation against four answer choices.
package mentalmath

import (
	"fmt"
	"math/rand"

	"github.com/cortexprime/cortex/internal/core"
	"github.com/cortexprime/cortex/internal/registry"
)

// ChoiceCount is the number of answer choices presented per round.
const ChoiceCount = 4

// Round is one arithmetic question with its multiple-choice set.
type Round struct {
	Question string
	Choices  [ChoiceCount]int
	Answer   int
}

// Answer is the host input: the choice value the user selected.
type Answer struct {
	Value int
}

// Drill generates and scores arithmetic rounds.
type Drill struct{}

// New creates a new arithmetic drill.
func New() *Drill {
	return &Drill{}
}

func init() {
	registry.Register("mentalmath", func() registry.Drill {
		return New()
	})
}

// Kind returns the drill identifier.
func (d *Drill) Kind() string { return "mentalmath" }

// Title returns the display name.
func (d *Drill) Title() string { return "Mental Math" }

// NextRound picks an operator uniformly and operands bounded so the
// result stays intuitive: addition and subtraction operands up to 50,
// multiplication up to 12. Subtraction operands are arranged so the
// result is never negative.
func (d *Drill) NextRound(rng *rand.Rand) core.Round {
	var a, b, answer int
	var op string

	switch rng.Intn(3) {
	case 0:
		op = "+"
		a = rng.Intn(50) + 1
		b = rng.Intn(50) + 1
		answer = a + b
	case 1:
		op = "-"
		a = rng.Intn(50) + 20
		b = rng.Intn(20) + 1
		answer = a - b
	default:
		op = "×"
		a = rng.Intn(12) + 1
		b = rng.Intn(12) + 1
		answer = a * b
	}

	// The correct value plus three perturbations. Perturbations are
	// offset by at least one so the answer appears exactly once;
	// distractors themselves may collide, matching the original game.
	choices := [ChoiceCount]int{
		answer,
		answer + rng.Intn(10) + 1,
		answer - rng.Intn(10) - 1,
		answer + rng.Intn(5) + 1,
	}
	rng.Shuffle(ChoiceCount, func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})

	return &Round{
		Question: fmt.Sprintf("%d %s %d", a, op, b),
		Choices:  choices,
		Answer:   answer,
	}
}

// Score awards 10 points for the exact answer, 0 otherwise.
func (d *Drill) Score(round core.Round, in core.Input) core.Result {
	r, ok := round.(*Round)
	if !ok {
		return core.Result{}
	}
	ans, ok := in.(Answer)
	if !ok {
		return core.Result{}
	}

	if ans.Value == r.Answer {
		return core.Result{Done: true, Correct: true, Points: 10}
	}
	return core.Result{Done: true}
}
