// Package speedmatch implements the symbol-comparison drill: a current
// symbol is shown next to the previous one, and the user judges as
// fast as possible whether they are the same.
package speedmatch

import (
	"math/rand"

	"github.com/cortexprime/cortex/internal/core"
	"github.com/cortexprime/cortex/internal/registry"
)

// Symbols is the fixed set a round draws from.
var Symbols = [8]string{"🔴", "🔵", "🟢", "🟡", "🟣", "⭐", "💎", "🔶"}

// Round is one comparison. Same is the generated intent: with
// probability one half the current symbol repeats the previous one,
// otherwise it is drawn independently. An independent draw can still
// coincide with the previous symbol; the judgment is scored against
// the intent, matching the original game.
type Round struct {
	Previous string
	Current  string
	Same     bool
}

// Answer is the host input: the user's same/different judgment.
type Answer struct {
	Same bool
}

// Drill generates and scores symbol-match rounds. The previous symbol
// threads through consecutive rounds of the same session.
type Drill struct {
	previous string
}

// New creates a new speed-match drill.
func New() *Drill {
	return &Drill{}
}

func init() {
	registry.Register("speedmatch", func() registry.Drill {
		return New()
	})
}

// Kind returns the drill identifier.
func (d *Drill) Kind() string { return "speedmatch" }

// Title returns the display name.
func (d *Drill) Title() string { return "Speed Match" }

// NextRound draws the current symbol, repeating the previous one with
// probability one half. The first round of a session seeds the
// previous symbol randomly.
func (d *Drill) NextRound(rng *rand.Rand) core.Round {
	current := Symbols[rng.Intn(len(Symbols))]
	if d.previous == "" {
		d.previous = Symbols[rng.Intn(len(Symbols))]
	}

	same := rng.Float64() > 0.5
	if same {
		current = d.previous
	}

	r := &Round{
		Previous: d.previous,
		Current:  current,
		Same:     same,
	}
	d.previous = current
	return r
}

// Score awards 10 points for a correct same/different judgment.
func (d *Drill) Score(round core.Round, in core.Input) core.Result {
	r, ok := round.(*Round)
	if !ok {
		return core.Result{}
	}
	ans, ok := in.(Answer)
	if !ok {
		return core.Result{}
	}

	if ans.Same == r.Same {
		return core.Result{Done: true, Correct: true, Points: 10}
	}
	return core.Result{Done: true}
}
