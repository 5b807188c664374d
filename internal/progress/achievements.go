package progress

// Stats is the snapshot of a player's progress that achievements are
// measured against. NPI defaults to DefaultNPI for players with no
// domain scores yet; callers build it from the stored player row.
type Stats struct {
	GamesPlayed int
	Level       int
	TotalXP     int
	NPI         int
	MaxStreak   int
}

// Achievement is one fixed milestone. The bank never changes at
// runtime; unlock state is always derived from a Stats snapshot, never
// stored.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Target      int

	measure func(Stats) int
}

// Unlocked reports whether the milestone has been reached.
func (a Achievement) Unlocked(s Stats) bool {
	return a.measure(s) >= a.Target
}

// Current returns the progress toward the target, capped at the target.
func (a Achievement) Current(s Stats) int {
	cur := a.measure(s)
	if cur > a.Target {
		cur = a.Target
	}
	return cur
}

func byGames(s Stats) int  { return s.GamesPlayed }
func byLevel(s Stats) int  { return s.Level }
func byXP(s Stats) int     { return s.TotalXP }
func byNPI(s Stats) int    { return s.NPI }
func byStreak(s Stats) int { return s.MaxStreak }

var achievementBank = []Achievement{
	{ID: "first-game", Name: "First Steps", Description: "Complete your first game", Icon: "🎮", Target: 1, measure: byGames},
	{ID: "ten-games", Name: "Getting Started", Description: "Complete 10 games", Icon: "🔥", Target: 10, measure: byGames},
	{ID: "fifty-games", Name: "Dedicated Trainer", Description: "Complete 50 games", Icon: "💪", Target: 50, measure: byGames},
	{ID: "hundred-games", Name: "Brain Athlete", Description: "Complete 100 games", Icon: "🏆", Target: 100, measure: byGames},
	{ID: "level-5", Name: "Rising Star", Description: "Reach level 5", Icon: "⭐", Target: 5, measure: byLevel},
	{ID: "level-10", Name: "Brain Master", Description: "Reach level 10", Icon: "🌟", Target: 10, measure: byLevel},
	{ID: "level-25", Name: "Genius", Description: "Reach level 25", Icon: "🧠", Target: 25, measure: byLevel},
	{ID: "xp-1000", Name: "XP Hunter", Description: "Earn 1,000 total XP", Icon: "💎", Target: 1000, measure: byXP},
	{ID: "xp-5000", Name: "XP Champion", Description: "Earn 5,000 total XP", Icon: "👑", Target: 5000, measure: byXP},
	{ID: "npi-600", Name: "Sharp Mind", Description: "Reach NPI score of 600", Icon: "🎯", Target: 600, measure: byNPI},
	{ID: "npi-700", Name: "Elite Thinker", Description: "Reach NPI score of 700", Icon: "🚀", Target: 700, measure: byNPI},
	{ID: "streak-3", Name: "On Fire", Description: "Reach a 3-day streak", Icon: "🔥", Target: 3, measure: byStreak},
	{ID: "streak-7", Name: "Week Warrior", Description: "Reach a 7-day streak", Icon: "📅", Target: 7, measure: byStreak},
	{ID: "streak-30", Name: "Monthly Master", Description: "Reach a 30-day streak", Icon: "🏅", Target: 30, measure: byStreak},
}

// Achievements returns the fixed milestone bank, in display order.
func Achievements() []Achievement {
	return append([]Achievement(nil), achievementBank...)
}

// UnlockedCount returns how many milestones the snapshot has reached.
func UnlockedCount(s Stats) int {
	n := 0
	for _, a := range achievementBank {
		if a.Unlocked(s) {
			n++
		}
	}
	return n
}
