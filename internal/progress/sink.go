package progress

// Update is the progress snapshot sent to a Sink after a session
// completes.
type Update struct {
	TotalXP     int
	XPInLevel   int
	Level       int
	GamesPlayed int
}

// UpdateFor derives a full Update from a total experience amount and a
// games-played count.
func UpdateFor(totalXP, gamesPlayed int) Update {
	return Update{
		TotalXP:     totalXP,
		XPInLevel:   XPInLevel(totalXP),
		Level:       Level(totalXP),
		GamesPlayed: gamesPlayed,
	}
}

// Sink accepts progress updates. Failures are the sink's own concern;
// the session engine fires and forgets.
type Sink interface {
	Record(user string, u Update) error
}
