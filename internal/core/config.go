package core

// RuntimeConfig contains configuration passed from the host platform
// to sessions and play models at creation time.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for deterministic round generation
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
// A zero seed means the platform layer substitutes the current time.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0,
	}
}
