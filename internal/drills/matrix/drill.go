// Package matrix implements the pattern-recall drill: a 3x3 grid of
// cells lights up briefly, then the user reproduces the pattern from
// memory by toggling cells.
package matrix

import (
	"math/rand"

	"github.com/cortexprime/cortex/internal/core"
	"github.com/cortexprime/cortex/internal/registry"
)

const (
	// Size is the grid edge length.
	Size = 3

	// Cells is the total cell count.
	Cells = Size * Size

	// MinActive and MaxActive bound how many cells light up.
	MinActive = 3
	MaxActive = 4
)

// Round is one pattern trial. Taps toggle cells in User; the round
// resolves only once the user's active count equals the target's.
type Round struct {
	Target   [Cells]bool
	User     [Cells]bool
	Revealed bool // true while the target pattern is shown
}

// Hide ends the reveal phase. The host calls this after the reveal
// timer fires; taps are ignored while the pattern is visible.
func (r *Round) Hide() {
	r.Revealed = false
}

// ActiveTarget returns the number of lit cells in the target.
func (r *Round) ActiveTarget() int {
	return countActive(r.Target)
}

// ActiveUser returns the number of cells the user has toggled on.
func (r *Round) ActiveUser() int {
	return countActive(r.User)
}

func countActive(cells [Cells]bool) int {
	n := 0
	for _, on := range cells {
		if on {
			n++
		}
	}
	return n
}

// Tap is the host input: the index of the toggled cell.
type Tap struct {
	Cell int
}

// Drill generates and scores pattern-recall rounds.
type Drill struct{}

// New creates a new matrix drill.
func New() *Drill {
	return &Drill{}
}

func init() {
	registry.Register("matrix", func() registry.Drill {
		return New()
	})
}

// Kind returns the drill identifier.
func (d *Drill) Kind() string { return "matrix" }

// Title returns the display name.
func (d *Drill) Title() string { return "Memory Matrix" }

// NextRound activates 3-4 random cells and starts in the revealed
// state. The host hides the pattern after the reveal window.
func (d *Drill) NextRound(rng *rand.Rand) core.Round {
	r := &Round{Revealed: true}

	active := MinActive + rng.Intn(MaxActive-MinActive+1)
	for _, idx := range rng.Perm(Cells)[:active] {
		r.Target[idx] = true
	}

	return r
}

// Score toggles the tapped cell. The round completes only when the
// user's active-cell count equals the target's; a full positional
// match then awards 20 points, anything else 0.
func (d *Drill) Score(round core.Round, in core.Input) core.Result {
	r, ok := round.(*Round)
	if !ok {
		return core.Result{}
	}
	tap, ok := in.(Tap)
	if !ok {
		return core.Result{}
	}
	if r.Revealed || tap.Cell < 0 || tap.Cell >= Cells {
		return core.Result{}
	}

	r.User[tap.Cell] = !r.User[tap.Cell]

	if r.ActiveUser() != r.ActiveTarget() {
		return core.Result{}
	}
	if r.User == r.Target {
		return core.Result{Done: true, Correct: true, Points: 20}
	}
	return core.Result{Done: true}
}
