package matrix

import (
	"math/rand"
	"testing"
)

func TestNextRoundActiveCells(t *testing.T) {
	d := New()
	rng := rand.New(rand.NewSource(6))

	for i := 0; i < 50; i++ {
		r := d.NextRound(rng).(*Round)
		if !r.Revealed {
			t.Fatal("new rounds must start revealed")
		}
		active := r.ActiveTarget()
		if active < MinActive || active > MaxActive {
			t.Errorf("active cell count %d outside [%d, %d]", active, MinActive, MaxActive)
		}
	}
}

func TestScoreIgnoresTapsWhileRevealed(t *testing.T) {
	d := New()
	r := &Round{Revealed: true}
	r.Target[0] = true
	r.Target[1] = true
	r.Target[2] = true

	res := d.Score(r, Tap{Cell: 0})
	if res.Done || r.User[0] {
		t.Errorf("taps during the reveal window must be ignored, got %+v user=%v", res, r.User)
	}
}

func TestScorePerfectRecall(t *testing.T) {
	d := New()
	r := &Round{}
	r.Target[0] = true
	r.Target[4] = true
	r.Target[8] = true

	// Round stays live until the counts match.
	if res := d.Score(r, Tap{Cell: 0}); res.Done {
		t.Errorf("expected round live after 1 of 3 taps, got %+v", res)
	}
	if res := d.Score(r, Tap{Cell: 4}); res.Done {
		t.Errorf("expected round live after 2 of 3 taps, got %+v", res)
	}

	res := d.Score(r, Tap{Cell: 8})
	if !res.Done || !res.Correct || res.Points != 20 {
		t.Errorf("expected done/correct/+20 on exact recall, got %+v", res)
	}
}

func TestScoreWrongPattern(t *testing.T) {
	d := New()
	r := &Round{}
	r.Target[0] = true
	r.Target[1] = true
	r.Target[2] = true

	d.Score(r, Tap{Cell: 0})
	d.Score(r, Tap{Cell: 1})
	res := d.Score(r, Tap{Cell: 5}) // count matches, position doesn't

	if !res.Done || res.Correct || res.Points != 0 {
		t.Errorf("expected done/incorrect/0, got %+v", res)
	}
}

func TestScoreToggleUndo(t *testing.T) {
	d := New()
	r := &Round{}
	r.Target[0] = true
	r.Target[1] = true
	r.Target[2] = true

	d.Score(r, Tap{Cell: 5})
	if !r.User[5] {
		t.Fatal("expected cell 5 toggled on")
	}
	d.Score(r, Tap{Cell: 5})
	if r.User[5] {
		t.Fatal("expected cell 5 toggled back off")
	}

	// Undo left the count short, so the round is still live.
	d.Score(r, Tap{Cell: 0})
	d.Score(r, Tap{Cell: 1})
	res := d.Score(r, Tap{Cell: 2})
	if !res.Correct || res.Points != 20 {
		t.Errorf("expected recovery to a perfect recall, got %+v", res)
	}
}
