// Package sequence implements the number-pattern drill: four terms of
// a progression are shown and the user picks the next term.
package sequence

import (
	"math/rand"

	"github.com/cortexprime/cortex/internal/core"
	"github.com/cortexprime/cortex/internal/registry"
)

// ChoiceCount is the number of answer choices presented per round.
const ChoiceCount = 4

// pattern is one entry in the fixed progression bank.
type pattern struct {
	terms [4]int
	next  int
}

// bank holds the arithmetic and geometric progressions rounds are
// drawn from.
var bank = []pattern{
	{terms: [4]int{2, 4, 6, 8}, next: 10},
	{terms: [4]int{1, 3, 5, 7}, next: 9},
	{terms: [4]int{3, 6, 9, 12}, next: 15},
	{terms: [4]int{5, 10, 15, 20}, next: 25},
	{terms: [4]int{1, 2, 4, 8}, next: 16},
	{terms: [4]int{100, 90, 80, 70}, next: 60},
}

// Round is one sequence question with its multiple-choice set.
type Round struct {
	Terms   [4]int
	Choices [ChoiceCount]int
	Answer  int
}

// Answer is the host input: the choice value the user selected.
type Answer struct {
	Value int
}

// Drill generates and scores sequence rounds.
type Drill struct{}

// New creates a new sequence drill.
func New() *Drill {
	return &Drill{}
}

func init() {
	registry.Register("sequence", func() registry.Drill {
		return New()
	})
}

// Kind returns the drill identifier.
func (d *Drill) Kind() string { return "sequence" }

// Title returns the display name.
func (d *Drill) Title() string { return "Sequence Master" }

// NextRound selects a progression from the bank and builds the choice
// set around the true next term.
func (d *Drill) NextRound(rng *rand.Rand) core.Round {
	p := bank[rng.Intn(len(bank))]

	choices := [ChoiceCount]int{p.next, p.next + 1, p.next - 1, p.next + 2}
	rng.Shuffle(ChoiceCount, func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})

	return &Round{
		Terms:   p.terms,
		Choices: choices,
		Answer:  p.next,
	}
}

// Score awards 10 points for the exact next term, 0 otherwise.
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
