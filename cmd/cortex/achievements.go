package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cortexprime/cortex/internal/progress"
	"github.com/cortexprime/cortex/internal/storage"
)

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "Show achievement progress",
	Long: `Display the achievement bank with your unlock progress.

Examples:
  cortex achievements
  cortex achievements --user alice`,
	Run: runAchievements,
}

func runAchievements(cmd *cobra.Command, args []string) {
	user := playerName()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening progress database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	stats := progress.Stats{Level: 1, NPI: progress.DefaultNPI}

	player, err := store.Player(user)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading progress: %v\n", err)
		os.Exit(1)
	}
	if player != nil {
		domains, _ := store.DomainScores(user) //nolint:errcheck // Best-effort, NPI falls back to the default
		stats = progress.Stats{
			GamesPlayed: player.GamesPlayed,
			Level:       progress.Level(player.TotalXP),
			TotalXP:     player.TotalXP,
			NPI:         progress.NPI(domains),
			MaxStreak:   player.MaxStreak,
		}
	}

	bank := progress.Achievements()
	unlocked := progress.UnlockedCount(stats)
	percent := (unlocked*100 + len(bank)/2) / len(bank)

	fmt.Printf("Achievements - %s\n", user)
	fmt.Println()
	fmt.Printf("  %d of %d unlocked  (%d%%)\n", unlocked, len(bank), percent)
	fmt.Println()

	for _, a := range bank {
		mark := " "
		if a.Unlocked(stats) {
			mark = "✓"
		}
		fmt.Printf("  %s %s %-18s %s  (%d/%d)\n",
			mark, a.Icon, a.Name, a.Description, a.Current(stats), a.Target)
	}
}
