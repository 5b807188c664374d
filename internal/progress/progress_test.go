package progress

import (
	"testing"
	"time"
)

func TestLevelProgression(t *testing.T) {
	cases := []struct {
		totalXP int
		level   int
		inLevel int
		toNext  int
	}{
		{0, 1, 0, 100},
		{50, 1, 50, 50},
		{99, 1, 99, 1},
		{100, 2, 0, 100},
		{250, 3, 50, 50},
		{1000, 11, 0, 100},
	}

	for _, c := range cases {
		if got := Level(c.totalXP); got != c.level {
			t.Errorf("Level(%d) = %d, want %d", c.totalXP, got, c.level)
		}
		if got := XPInLevel(c.totalXP); got != c.inLevel {
			t.Errorf("XPInLevel(%d) = %d, want %d", c.totalXP, got, c.inLevel)
		}
		if got := XPToNext(c.totalXP); got != c.toNext {
			t.Errorf("XPToNext(%d) = %d, want %d", c.totalXP, got, c.toNext)
		}
	}
}

func TestReward(t *testing.T) {
	cases := []struct{ score, xp int }{
		{0, 10},
		{10, 15},
		{50, 35},
		{100, 60},
		{75, 47}, // integer division
	}
	for _, c := range cases {
		if got := Reward(c.score); got != c.xp {
			t.Errorf("Reward(%d) = %d, want %d", c.score, got, c.xp)
		}
	}
}

func TestNPI(t *testing.T) {
	if got := NPI(nil); got != DefaultNPI {
		t.Errorf("NPI(nil) = %d, want %d", got, DefaultNPI)
	}
	if got := NPI(map[string]float64{}); got != DefaultNPI {
		t.Errorf("NPI(empty) = %d, want %d", got, DefaultNPI)
	}

	scores := map[string]float64{"memory": 40, "speed": 60}
	if got := NPI(scores); got != 500 {
		t.Errorf("NPI(mean 50) = %d, want 500", got)
	}

	scores = map[string]float64{"memory": 52.34}
	if got := NPI(scores); got != 523 {
		t.Errorf("NPI(52.34) = %d, want 523", got)
	}
}

func TestNextStreak(t *testing.T) {
	day := 24 * time.Hour
	now := time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)

	if got := NextStreak(time.Time{}, 0, now); got != 1 {
		t.Errorf("fresh streak = %d, want 1", got)
	}
	if got := NextStreak(now.Add(-2*time.Hour), 4, now); got != 4 {
		t.Errorf("same-day streak = %d, want 4", got)
	}
	if got := NextStreak(now.Add(-day), 4, now); got != 5 {
		t.Errorf("next-day streak = %d, want 5", got)
	}
	if got := NextStreak(now.Add(-3*day), 9, now); got != 1 {
		t.Errorf("lapsed streak = %d, want 1", got)
	}
}

func TestFormatCount(t *testing.T) {
	cases := []struct {
		n    int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1200, "1.2K"},
		{25500, "25.5K"},
		{3_400_000, "3.4M"},
	}
	for _, c := range cases {
		if got := FormatCount(c.n); got != c.want {
			t.Errorf("FormatCount(%d) = %q, want %q", c.n, got, c.want)
		}
	}
}

func TestUpdateFor(t *testing.T) {
	u := UpdateFor(250, 12)
	if u.TotalXP != 250 || u.Level != 3 || u.XPInLevel != 50 || u.GamesPlayed != 12 {
		t.Errorf("unexpected update: %+v", u)
	}
}
