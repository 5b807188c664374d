// Package reaction implements the reflex drill: wait out a random
// delay, then tap as fast as possible once the go signal shows.
package reaction

import (
	"math/rand"
	"time"

	"github.com/cortexprime/cortex/internal/core"
	"github.com/cortexprime/cortex/internal/registry"
)

const (
	// MinDelay and MaxDelay bound the random arming delay before the
	// go signal fires.
	MinDelay = 1 * time.Second
	MaxDelay = 4 * time.Second

	// EarlyPenalty is the score delta for tapping before the signal.
	EarlyPenalty = -5
)

// Round is one reaction trial. The host arms a timer for Delay and
// flips the go signal when it fires; the drill itself never waits.
type Round struct {
	Delay time.Duration
}

// Tap is the host input: how long after the go signal the tap landed,
// or Early if it came before the signal.
type Tap struct {
	Reaction time.Duration
	Early    bool
}

// Drill generates and scores reaction rounds.
type Drill struct{}

// New creates a new reaction drill.
func New() *Drill {
	return &Drill{}
}

func init() {
	registry.Register("reaction", func() registry.Drill {
		return New()
	})
}

// Kind returns the drill identifier.
func (d *Drill) Kind() string { return "reaction" }

// Title returns the display name.
func (d *Drill) Title() string { return "Reflex Rush" }

// NextRound schedules a uniform random delay in [MinDelay, MaxDelay).
func (d *Drill) NextRound(rng *rand.Rand) core.Round {
	spread := float64(MaxDelay - MinDelay)
	return &Round{
		Delay: MinDelay + time.Duration(rng.Float64()*spread),
	}
}

// Score penalizes early taps by 5 points and otherwise awards
// max(1, (500-reactionMs)/10): the faster the tap, the more points,
// with a guaranteed single point for any valid tap.
func (d *Drill) Score(round core.Round, in core.Input) core.Result {
	if _, ok := round.(*Round); !ok {
		return core.Result{}
	}
	tap, ok := in.(Tap)
	if !ok {
		return core.Result{}
	}

	if tap.Early {
		return core.Result{Done: true, Points: EarlyPenalty}
	}

	points := (500 - int(tap.Reaction.Milliseconds())) / 10
	if points < 1 {
		points = 1
	}
	return core.Result{Done: true, Correct: true, Points: points}
}
