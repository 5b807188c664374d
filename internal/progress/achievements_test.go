package progress

import "testing"

func TestAchievementBankSize(t *testing.T) {
	bank := Achievements()
	if len(bank) != 14 {
		t.Fatalf("bank size = %d, want 14", len(bank))
	}
	seen := map[string]bool{}
	for _, a := range bank {
		if seen[a.ID] {
			t.Errorf("duplicate achievement id %q", a.ID)
		}
		seen[a.ID] = true
		if a.Target <= 0 {
			t.Errorf("%s: target %d, want > 0", a.ID, a.Target)
		}
	}
}

func TestAchievementsForNewPlayer(t *testing.T) {
	// A fresh player starts at level 1 with the default NPI.
	s := Stats{Level: 1, NPI: DefaultNPI}
	if got := UnlockedCount(s); got != 0 {
		t.Errorf("UnlockedCount = %d, want 0", got)
	}
	for _, a := range Achievements() {
		if a.Unlocked(s) {
			t.Errorf("%s unlocked for new player", a.ID)
		}
	}
}

func TestAchievementUnlocksAtThreshold(t *testing.T) {
	cases := []struct {
		id    string
		below Stats
		at    Stats
	}{
		{"first-game", Stats{}, Stats{GamesPlayed: 1}},
		{"fifty-games", Stats{GamesPlayed: 49}, Stats{GamesPlayed: 50}},
		{"level-5", Stats{Level: 4}, Stats{Level: 5}},
		{"xp-1000", Stats{TotalXP: 999}, Stats{TotalXP: 1000}},
		{"npi-600", Stats{NPI: 599}, Stats{NPI: 600}},
		{"streak-7", Stats{MaxStreak: 6}, Stats{MaxStreak: 7}},
	}
	for _, tc := range cases {
		a, ok := findAchievement(tc.id)
		if !ok {
			t.Fatalf("achievement %q not in bank", tc.id)
		}
		if a.Unlocked(tc.below) {
			t.Errorf("%s: unlocked below threshold", tc.id)
		}
		if !a.Unlocked(tc.at) {
			t.Errorf("%s: not unlocked at threshold", tc.id)
		}
	}
}

func TestAchievementCurrentCapsAtTarget(t *testing.T) {
	a, ok := findAchievement("ten-games")
	if !ok {
		t.Fatal("ten-games not in bank")
	}
	if got := a.Current(Stats{GamesPlayed: 4}); got != 4 {
		t.Errorf("Current = %d, want 4", got)
	}
	if got := a.Current(Stats{GamesPlayed: 250}); got != a.Target {
		t.Errorf("Current = %d, want capped at %d", got, a.Target)
	}
}

func TestUnlockedCountFullBank(t *testing.T) {
	s := Stats{GamesPlayed: 100, Level: 25, TotalXP: 5000, NPI: 700, MaxStreak: 30}
	if got := UnlockedCount(s); got != 14 {
		t.Errorf("UnlockedCount = %d, want 14", got)
	}
}

func findAchievement(id string) (Achievement, bool) {
	for _, a := range Achievements() {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}
