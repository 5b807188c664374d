package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cortexprime/cortex/internal/progress"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSaveSessionAndTopScores(t *testing.T) {
	store := openTestStore(t)

	sessions := []struct {
		user  string
		game  string
		score int
		xp    int
	}{
		{"alice", "mental-math", 100, 60},
		{"bob", "mental-math", 50, 35},
		{"alice", "mental-math", 200, 110},
		{"alice", "stroop", 500, 260},
	}
	for _, s := range sessions {
		if _, err := store.SaveSession(s.user, s.game, s.score, s.xp); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	scores, err := store.TopScores("mental-math", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("expected 3 mental-math scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("scores not in descending order: %d, %d, %d",
			scores[0].Score, scores[1].Score, scores[2].Score)
	}
	if scores[0].User != "alice" {
		t.Errorf("expected top score by alice, got %q", scores[0].User)
	}
	if scores[0].XP != 110 {
		t.Errorf("expected top score XP 110, got %d", scores[0].XP)
	}
}

func TestTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 15; i++ {
		if _, err := store.SaveSession("alice", "stroop", i*10, i); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	scores, err := store.TopScores("stroop", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("expected 5 scores with limit 5, got %d", len(scores))
	}
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	// Empty game yields 0 without error.
	high, err := store.HighScore("reaction")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("expected 0 for unplayed game, got %d", high)
	}

	store.SaveSession("alice", "reaction", 40, 30)
	store.SaveSession("bob", "reaction", 90, 55)

	high, err = store.HighScore("reaction")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 90 {
		t.Errorf("expected high score 90, got %d", high)
	}
}

func TestRecordCreatesPlayer(t *testing.T) {
	store := openTestStore(t)

	if p, err := store.Player("alice"); err != nil || p != nil {
		t.Fatalf("expected no player row yet, got %+v err %v", p, err)
	}

	if err := store.Record("alice", progress.UpdateFor(150, 3)); err != nil {
		t.Fatalf("Record() failed: %v", err)
	}

	p, err := store.Player("alice")
	if err != nil {
		t.Fatalf("Player() failed: %v", err)
	}
	if p == nil {
		t.Fatal("expected a player row after Record")
	}
	if p.TotalXP != 150 || p.GamesPlayed != 3 {
		t.Errorf("unexpected player row: %+v", p)
	}
	if p.Streak != 1 || p.MaxStreak != 1 {
		t.Errorf("expected fresh streak 1/1, got %d/%d", p.Streak, p.MaxStreak)
	}
	if p.LastActive.IsZero() {
		t.Error("expected last_active set")
	}
}

func TestRecordSameDayKeepsStreak(t *testing.T) {
	store := openTestStore(t)

	if err := store.Record("alice", progress.UpdateFor(60, 1)); err != nil {
		t.Fatalf("Record() failed: %v", err)
	}
	if err := store.Record("alice", progress.UpdateFor(120, 2)); err != nil {
		t.Fatalf("Record() failed: %v", err)
	}

	p, err := store.Player("alice")
	if err != nil || p == nil {
		t.Fatalf("Player() failed: %+v %v", p, err)
	}
	if p.Streak != 1 {
		t.Errorf("expected same-day streak to stay 1, got %d", p.Streak)
	}
	if p.TotalXP != 120 || p.GamesPlayed != 2 {
		t.Errorf("expected progress advanced, got %+v", p)
	}
}

func TestDomainScoreRollingAverage(t *testing.T) {
	store := openTestStore(t)

	if err := store.RecordDomainScore("alice", "speed", 100); err != nil {
		t.Fatalf("RecordDomainScore() failed: %v", err)
	}
	if err := store.RecordDomainScore("alice", "speed", 50); err != nil {
		t.Fatalf("RecordDomainScore() failed: %v", err)
	}
	if err := store.RecordDomainScore("alice", "memory", 20); err != nil {
		t.Fatalf("RecordDomainScore() failed: %v", err)
	}

	scores, err := store.DomainScores("alice")
	if err != nil {
		t.Fatalf("DomainScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("expected 2 domains, got %v", scores)
	}
	if scores["speed"] != 75 {
		t.Errorf("expected speed average 75, got %v", scores["speed"])
	}
	if scores["memory"] != 20 {
		t.Errorf("expected memory average 20, got %v", scores["memory"])
	}
}

func TestLeaderboardRanking(t *testing.T) {
	store := openTestStore(t)

	store.Record("alice", progress.UpdateFor(300, 5))
	store.Record("bob", progress.UpdateFor(500, 8))
	store.Record("carol", progress.UpdateFor(100, 2))
	store.RecordDomainScore("bob", "speed", 80)

	entries, err := store.Leaderboard(10)
	if err != nil {
		t.Fatalf("Leaderboard() failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	if entries[0].User != "bob" || entries[1].User != "alice" || entries[2].User != "carol" {
		t.Errorf("unexpected order: %s, %s, %s",
			entries[0].User, entries[1].User, entries[2].User)
	}
	for i, e := range entries {
		if e.Rank != i+1 {
			t.Errorf("entry %d has rank %d", i, e.Rank)
		}
	}
	if entries[0].Level != progress.Level(500) {
		t.Errorf("expected bob at level %d, got %d", progress.Level(500), entries[0].Level)
	}
	if entries[0].NPI != 800 {
		t.Errorf("expected bob NPI 800 from domain average 80, got %d", entries[0].NPI)
	}
	// No domain scores yet: the default index shows.
	if entries[1].NPI != progress.DefaultNPI {
		t.Errorf("expected alice NPI %d, got %d", progress.DefaultNPI, entries[1].NPI)
	}
}

func TestGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession("alice", "sequence", 30, 25)
	store.SaveSession("bob", "sequence", 50, 35)

	stats, err := store.GetGameStats("sequence")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 50 || stats.TotalScore != 80 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 40 {
		t.Errorf("expected avg 40, got %v", stats.AvgScore)
	}
}

func TestRecentSessions(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession("alice", "mental-math", 10, 15)
	store.SaveSession("alice", "stroop", 20, 20)
	store.SaveSession("bob", "stroop", 30, 25)

	recent, err := store.RecentSessions("alice", 10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 sessions for alice, got %d", len(recent))
	}
	for _, e := range recent {
		if e.User != "alice" {
			t.Errorf("foreign session in results: %+v", e)
		}
	}
}

func TestOpenExpandsHomePath(t *testing.T) {
	tmpHome := t.TempDir()
	t.Setenv("HOME", tmpHome)

	store, err := Open("~/.cortex/test.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(tmpHome, ".cortex", "test.db")); err != nil {
		t.Errorf("database not created under expanded home: %v", err)
	}
}
