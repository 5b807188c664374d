package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/cortexprime/cortex/internal/catalog"
	"github.com/cortexprime/cortex/internal/core"
	"github.com/cortexprime/cortex/internal/platform/tui"
	"github.com/cortexprime/cortex/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the trainer with a game picker menu",
	Long: `Start the trainer in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter        - Select game
  Tab          - Leaderboard
  Q            - Quit

Examples:
  cortex menu
  cortex menu --user alice
  cortex menu --db ./cortex.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cat, err := catalog.Load(flagCatalog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
		os.Exit(1)
	}

	// Open progress storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open progress database: %v\n", err)
		store = nil
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	if err := tui.RunApp(&cat, store, playerName(), cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}

	if store != nil {
		store.Close()
	}
}
