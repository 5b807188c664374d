package reaction

import (
	"math/rand"
	"testing"
	"time"
)

func TestNextRoundDelayBounds(t *testing.T) {
	d := New()
	rng := rand.New(rand.NewSource(4))

	for i := 0; i < 100; i++ {
		r := d.NextRound(rng).(*Round)
		if r.Delay < MinDelay || r.Delay > MaxDelay {
			t.Errorf("delay %v outside [%v, %v]", r.Delay, MinDelay, MaxDelay)
		}
	}
}

func TestScoreFasterIsMore(t *testing.T) {
	d := New()
	r := &Round{Delay: 2 * time.Second}

	cases := []struct {
		reaction time.Duration
		points   int
	}{
		{150 * time.Millisecond, 35},
		{200 * time.Millisecond, 30},
		{490 * time.Millisecond, 1},
		{500 * time.Millisecond, 1}, // floor kicks in
		{900 * time.Millisecond, 1},
	}

	for _, c := range cases {
		res := d.Score(r, Tap{Reaction: c.reaction})
		if !res.Done || !res.Correct {
			t.Errorf("reaction %v: expected done/correct, got %+v", c.reaction, res)
		}
		if res.Points != c.points {
			t.Errorf("reaction %v: expected %d points, got %d", c.reaction, c.points, res.Points)
		}
	}
}

func TestScoreEarlyTapPenalty(t *testing.T) {
	d := New()
	r := &Round{Delay: time.Second}

	res := d.Score(r, Tap{Early: true})
	if !res.Done || res.Correct {
		t.Errorf("expected done/incorrect for early tap, got %+v", res)
	}
	if res.Points != EarlyPenalty {
		t.Errorf("expected %d points for early tap, got %d", EarlyPenalty, res.Points)
	}
}
