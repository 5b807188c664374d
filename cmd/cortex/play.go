package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/cortexprime/cortex/internal/catalog"
	"github.com/cortexprime/cortex/internal/core"
	"github.com/cortexprime/cortex/internal/platform/tui"
	"github.com/cortexprime/cortex/internal/registry"
	"github.com/cortexprime/cortex/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  1-9        - Pick an answer / toggle a matrix cell
  Space      - Tap (reaction game)
  S / D      - Same / Different (speed match)
  R          - Play again (after completion)
  Q/Ctrl+C   - Quit

Examples:
  cortex play mental-math
  cortex play stroop --seed 42
  cortex play think-aloud`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	cat, err := catalog.Load(flagCatalog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
		os.Exit(1)
	}

	def, ok := cat.ByID(gameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'cortex list' to see available games.")
		os.Exit(1)
	}

	if !registry.Exists(def.Kind) {
		fmt.Fprintf(os.Stderr, "Error: game %q has no drill for kind %q\n", gameID, def.Kind)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	// Open progress storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open progress database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	_, runErr := tui.RunGame(def, &cat, store, playerName(), cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
