// Package catalog provides the static game and domain definitions for
// the trainer, loadable from YAML with embedded defaults.
package catalog

// GameDefinition describes one mini-game. Definitions are created at
// configuration load and never mutated.
type GameDefinition struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Emoji       string `yaml:"emoji"`
	Description string `yaml:"description"`
	Domain      string `yaml:"domain"`
	// Kind selects the drill implementation that generates and scores
	// rounds for this game.
	Kind string `yaml:"kind"`
	// Duration is the session time budget in seconds. Zero means the
	// game is untimed (free-text games) or falls back to the default
	// for timed kinds.
	Duration int `yaml:"duration"`
}

// Timed reports whether sessions of this game run against a countdown.
// Free-text games are open-ended and end on submission instead.
func (g GameDefinition) Timed() bool {
	return g.Kind != "thinkaloud"
}

// Domain describes a cognitive category used to tag games.
type Domain struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Icon        string `yaml:"icon"`
	Color       string `yaml:"color"`
	Description string `yaml:"description"`
}

// Catalog is the ordered collection of games and domains.
type Catalog struct {
	Games   []GameDefinition `yaml:"games"`
	Domains []Domain         `yaml:"domains"`
}

// ByID looks up a game definition by its identifier.
// A missing identifier is not an error; callers decline to start.
func (c *Catalog) ByID(id string) (GameDefinition, bool) {
	for _, g := range c.Games {
		if g.ID == id {
			return g, true
		}
	}
	return GameDefinition{}, false
}

// DomainByID looks up a domain by its identifier.
func (c *Catalog) DomainByID(id string) (Domain, bool) {
	for _, d := range c.Domains {
		if d.ID == id {
			return d, true
		}
	}
	return Domain{}, false
}
