// Package stroop implements the color-word interference drill: a color
// name rendered in an independently chosen ink; the user must pick the
// ink, not the word.
package stroop

import (
	"math/rand"

	"github.com/cortexprime/cortex/internal/core"
	"github.com/cortexprime/cortex/internal/registry"
)

// Palette is the fixed set of colors a round draws from. Word and ink
// are drawn independently and may coincide.
var Palette = [5]string{"red", "blue", "green", "yellow", "purple"}

// colorCodes maps palette names to display hex codes for hosts.
var colorCodes = map[string]string{
	"red":    "#ef4444",
	"blue":   "#3b82f6",
	"green":  "#22c55e",
	"yellow": "#eab308",
	"purple": "#a855f7",
}

// ColorCode returns the display hex code for a palette color.
func ColorCode(name string) string {
	return colorCodes[name]
}

// Round is one color-word pair.
type Round struct {
	Word string // the displayed color name
	Ink  string // the color the word is rendered in
}

// Answer is the host input: the color name the user selected.
type Answer struct {
	Color string
}

// Drill generates and scores color-word rounds.
type Drill struct{}

// New creates a new stroop drill.
func New() *Drill {
	return &Drill{}
}

func init() {
	registry.Register("stroop", func() registry.Drill {
		return New()
	})
}

// Kind returns the drill identifier.
func (d *Drill) Kind() string { return "stroop" }

// Title returns the display name.
func (d *Drill) Title() string { return "Color Clash" }

// NextRound draws a word and an ink independently from the palette.
func (d *Drill) NextRound(rng *rand.Rand) core.Round {
	return &Round{
		Word: Palette[rng.Intn(len(Palette))],
		Ink:  Palette[rng.Intn(len(Palette))],
	}
}

// Score awards 10 points when the selected color matches the ink.
func (d *Drill) Score(round core.Round, in core.Input) core.Result {
	r, ok := round.(*Round)
	if !ok {
		return core.Result{}
	}
	ans, ok := in.(Answer)
	if !ok {
		return core.Result{}
	}

	if ans.Color == r.Ink {
		return core.Result{Done: true, Correct: true, Points: 10}
	}
	return core.Result{Done: true}
}
