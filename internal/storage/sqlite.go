// Package storage provides SQLite-based persistence for completed
// sessions and player progress. Uses the pure-Go modernc.org/sqlite
// driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/cortexprime/cortex/internal/progress"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// SessionEntry represents one completed play-through.
type SessionEntry struct {
	ID        int64
	User      string
	GameID    string
	Score     int
	XP        int
	CreatedAt time.Time
}

// PlayerRow is the persisted progress of one player.
type PlayerRow struct {
	User        string
	TotalXP     int
	GamesPlayed int
	Streak      int
	MaxStreak   int
	LastActive  time.Time
}

// LeaderboardEntry is one ranked row of the leaderboard.
type LeaderboardEntry struct {
	Rank        int
	User        string
	Level       int
	NPI         int
	TotalXP     int
	Streak      int
	GamesPlayed int
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user TEXT NOT NULL,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			xp INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_game_id ON sessions(game_id);
		CREATE INDEX IF NOT EXISTS idx_sessions_top ON sessions(game_id, score DESC);
		CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user);

		CREATE TABLE IF NOT EXISTS players (
			user TEXT PRIMARY KEY,
			total_xp INTEGER NOT NULL DEFAULT 0,
			games_played INTEGER NOT NULL DEFAULT 0,
			streak INTEGER NOT NULL DEFAULT 0,
			max_streak INTEGER NOT NULL DEFAULT 0,
			last_active DATETIME,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_players_xp ON players(total_xp DESC);

		CREATE TABLE IF NOT EXISTS domain_scores (
			user TEXT NOT NULL,
			domain TEXT NOT NULL,
			score REAL NOT NULL DEFAULT 0,
			plays INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (user, domain)
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveSession records a completed play-through.
// Returns the ID of the inserted record.
func (s *Store) SaveSession(user, gameID string, score, xp int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO sessions (user, game_id, score, xp) VALUES (?, ?, ?, ?)",
		user, gameID, score, xp,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N session scores for the given game.
// Results are ordered by score descending.
func (s *Store) TopScores(gameID string, limit int) ([]SessionEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, user, game_id, score, xp, created_at
		 FROM sessions
		 WHERE game_id = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var entries []SessionEntry
	for rows.Next() {
		var e SessionEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.User, &e.GameID, &e.Score, &e.XP, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest session score for the given game.
// Returns 0 if no sessions exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM sessions WHERE game_id = ?",
		gameID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// Record implements progress.Sink: it upserts a player's progress row
// and refreshes the daily streak.
func (s *Store) Record(user string, u progress.Update) error {
	player, err := s.Player(user)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	streak := 1
	maxStreak := 1
	if player != nil {
		streak = progress.NextStreak(player.LastActive, player.Streak, now)
		maxStreak = player.MaxStreak
	}
	if streak > maxStreak {
		maxStreak = streak
	}

	_, err = s.db.Exec(
		`INSERT INTO players (user, total_xp, games_played, streak, max_streak, last_active)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(user) DO UPDATE SET
			total_xp = excluded.total_xp,
			games_played = excluded.games_played,
			streak = excluded.streak,
			max_streak = excluded.max_streak,
			last_active = excluded.last_active`,
		user, u.TotalXP, u.GamesPlayed, streak, maxStreak, now.Format("2006-01-02 15:04:05"),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record progress: %w", err)
	}
	return nil
}

// Ensure Store implements progress.Sink
var _ progress.Sink = (*Store)(nil)

// Player retrieves a player's progress row, or nil if the player has
// never completed a session.
func (s *Store) Player(user string) (*PlayerRow, error) {
	var p PlayerRow
	var lastActive any

	err := s.db.QueryRow(
		`SELECT user, total_xp, games_played, streak, max_streak, last_active
		 FROM players WHERE user = ?`,
		user,
	).Scan(&p.User, &p.TotalXP, &p.GamesPlayed, &p.Streak, &p.MaxStreak, &lastActive)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query player: %w", err)
	}

	p.LastActive = parseTime(lastActive)
	return &p, nil
}

// RecordDomainScore folds a session score into the player's rolling
// average for the game's cognitive domain.
func (s *Store) RecordDomainScore(user, domain string, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO domain_scores (user, domain, score, plays)
		 VALUES (?, ?, ?, 1)
		 ON CONFLICT(user, domain) DO UPDATE SET
			score = (domain_scores.score * domain_scores.plays + excluded.score) / (domain_scores.plays + 1),
			plays = domain_scores.plays + 1`,
		user, domain, float64(score),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record domain score: %w", err)
	}
	return nil
}

// DomainScores retrieves a player's per-domain rolling averages.
func (s *Store) DomainScores(user string) (map[string]float64, error) {
	rows, err := s.db.Query(
		"SELECT domain, score FROM domain_scores WHERE user = ?",
		user,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query domain scores: %w", err)
	}
	defer rows.Close()

	scores := make(map[string]float64)
	for rows.Next() {
		var domain string
		var score float64
		if err := rows.Scan(&domain, &score); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		scores[domain] = score
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return scores, nil
}

// Leaderboard retrieves players ranked by total experience, with the
// level and neural performance index derived per player.
func (s *Store) Leaderboard(limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT p.user, p.total_xp, p.games_played, p.streak, AVG(d.score)
		 FROM players p
		 LEFT JOIN domain_scores d ON d.user = p.user
		 GROUP BY p.user
		 ORDER BY p.total_xp DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []LeaderboardEntry
	for rows.Next() {
		var e LeaderboardEntry
		var avg sql.NullFloat64
		if err := rows.Scan(&e.User, &e.TotalXP, &e.GamesPlayed, &e.Streak, &avg); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		e.Level = progress.Level(e.TotalXP)
		if avg.Valid {
			e.NPI = progress.NPI(map[string]float64{"all": avg.Float64})
		} else {
			e.NPI = progress.DefaultNPI
		}
		e.Rank = len(entries) + 1
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0)
		 FROM sessions WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM sessions WHERE game_id = ? ORDER BY created_at DESC LIMIT 1`,
		gameID,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// RecentSessions retrieves a player's most recent sessions.
func (s *Store) RecentSessions(user string, limit int) ([]SessionEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, user, game_id, score, xp, created_at
		 FROM sessions
		 WHERE user = ?
		 ORDER BY created_at DESC
		 LIMIT ?`,
		user, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var entries []SessionEntry
	for rows.Next() {
		var e SessionEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.User, &e.GameID, &e.Score, &e.XP, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseTime handles the driver returning either time.Time or a string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
