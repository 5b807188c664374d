// Package progress implements the experience, level, streak, and
// performance-index arithmetic shared by the session engine, storage,
// and the UI.
package progress

import (
	"fmt"
	"math"
	"time"
)

// XPPerLevel is the experience span of one level.
const XPPerLevel = 100

// DefaultNPI is the neural performance index shown before any domain
// has been played.
const DefaultNPI = 500

// Level returns the level for a total experience amount.
// Levels start at 1 and advance every XPPerLevel points.
func Level(totalXP int) int {
	return totalXP/XPPerLevel + 1
}

// XPInLevel returns the experience accumulated within the current
// level. Always in [0, XPPerLevel).
func XPInLevel(totalXP int) int {
	return totalXP % XPPerLevel
}

// XPToNext returns the experience still needed to reach the next level.
func XPToNext(totalXP int) int {
	return XPPerLevel - XPInLevel(totalXP)
}

// Reward converts a final session score into an experience award.
func Reward(score int) int {
	return score/2 + 10
}

// NPI computes the neural performance index from per-domain scores:
// the mean domain score scaled by ten, rounded to the nearest integer.
func NPI(domainScores map[string]float64) int {
	if len(domainScores) == 0 {
		return DefaultNPI
	}
	var sum float64
	for _, s := range domainScores {
		sum += s
	}
	return int(math.Round(sum / float64(len(domainScores)) * 10))
}

// NextStreak computes the updated daily streak. Playing again the same
// day keeps the streak, playing the next day extends it, and a gap
// resets it to one. A zero lastActive starts a fresh streak.
func NextStreak(lastActive time.Time, current int, now time.Time) int {
	if lastActive.IsZero() {
		return 1
	}

	last := lastActive.Truncate(24 * time.Hour)
	today := now.Truncate(24 * time.Hour)
	days := int(today.Sub(last).Hours() / 24)

	switch {
	case days <= 0:
		return current
	case days == 1:
		return current + 1
	default:
		return 1
	}
}

// FormatCount renders a large count compactly (1.2K, 3.4M).
func FormatCount(n int) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}
