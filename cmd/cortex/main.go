// cortex is a terminal brain-training platform: short cognitive
// mini-games with XP, levels, and daily streaks.
//
// Usage:
//
//	cortex list              - List available games
//	cortex play <game>       - Play a game
//	cortex menu              - Start menu to pick games interactively
//	cortex serve             - Start SSH server for remote play
//	cortex scores <game>     - Show high scores for a game
//	cortex stats             - Show your progress and domain scores
//	cortex achievements      - Show achievement progress
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible rounds
//	--db <path>     - Set database path (default: ~/.cortex/cortex.db)
//	--catalog <path> - Override the games catalog YAML
//	--user <name>   - Player name for progress tracking
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import drills to register them
	_ "github.com/cortexprime/cortex/internal/drills/matrix"
	_ "github.com/cortexprime/cortex/internal/drills/mentalmath"
	_ "github.com/cortexprime/cortex/internal/drills/reaction"
	_ "github.com/cortexprime/cortex/internal/drills/sequence"
	_ "github.com/cortexprime/cortex/internal/drills/speedmatch"
	_ "github.com/cortexprime/cortex/internal/drills/stroop"
	_ "github.com/cortexprime/cortex/internal/drills/thinkaloud"
)

var (
	// Global flags
	flagSeed    int64
	flagDBPath  string
	flagCatalog string
	flagUser    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cortex",
	Short: "CortexPrime - Train your brain in the terminal",
	Long: `CortexPrime is a terminal-based brain training platform with short
cognitive mini-games across memory, attention, speed, flexibility,
problem solving, and language.

Available commands:
  list          - Show all available games
  play          - Play a specific game directly
  menu          - Interactive game picker menu
  serve         - Start SSH server for remote play
  scores        - View high scores for a game
  stats         - View your progress
  achievements  - View achievement progress

Examples:
  cortex list
  cortex play mental-math
  cortex menu
  cortex serve --ssh :2222
  cortex scores mental-math
  cortex stats
  cortex achievements`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.cortex/cortex.db", "Path to progress database")
	rootCmd.PersistentFlags().StringVar(&flagCatalog, "catalog", "", "Path to custom games catalog YAML")
	rootCmd.PersistentFlags().StringVar(&flagUser, "user", "", "Player name (defaults to $USER)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(achievementsCmd)
}

// playerName resolves the player identity used to key progress rows.
func playerName() string {
	if flagUser != "" {
		return flagUser
	}
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}
