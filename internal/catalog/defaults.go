package catalog

import (
	_ "embed"
)

//go:embed defaults/games.yaml
var defaultCatalogYAML []byte

// Default returns the built-in catalog. Used as the last fallback when
// the embedded YAML cannot be parsed.
func Default() Catalog {
	return Catalog{
		Domains: []Domain{
			{ID: "memory", Name: "Memory", Icon: "🧠", Color: "#8b5cf6", Description: "Remember and recall information"},
			{ID: "attention", Name: "Attention", Icon: "🎯", Color: "#ec4899", Description: "Focus and concentration"},
			{ID: "speed", Name: "Speed", Icon: "⚡", Color: "#f59e0b", Description: "Quick thinking and reactions"},
			{ID: "flexibility", Name: "Flexibility", Icon: "🔄", Color: "#10b981", Description: "Adapt to changing rules"},
			{ID: "problem", Name: "Problem Solving", Icon: "🧩", Color: "#3b82f6", Description: "Logic and reasoning"},
			{ID: "language", Name: "Language", Icon: "📝", Color: "#6366f1", Description: "Words and communication"},
		},
		Games: []GameDefinition{
			{ID: "mental-math", Name: "Mental Math", Emoji: "🔢", Description: "Solve arithmetic problems quickly", Domain: "speed", Kind: "mentalmath", Duration: 30},
			{ID: "stroop", Name: "Color Clash", Emoji: "🎨", Description: "Name the color, ignore the word", Domain: "attention", Kind: "stroop", Duration: 30},
			{ID: "reaction", Name: "Reflex Rush", Emoji: "⚡", Description: "Tap when the pad turns green", Domain: "speed", Kind: "reaction", Duration: 30},
			{ID: "sequence", Name: "Sequence Master", Emoji: "🔢", Description: "Find the pattern in numbers", Domain: "problem", Kind: "sequence", Duration: 30},
			{ID: "memory-matrix", Name: "Memory Matrix", Emoji: "🎯", Description: "Remember the pattern of tiles", Domain: "memory", Kind: "matrix", Duration: 30},
			{ID: "speed-match", Name: "Speed Match", Emoji: "👁", Description: "Same or different? Decide fast!", Domain: "attention", Kind: "speedmatch", Duration: 30},
			{ID: "think-aloud", Name: "Think Aloud", Emoji: "💭", Description: "Explain your reasoning in writing", Domain: "problem", Kind: "thinkaloud"},
		},
	}
}
