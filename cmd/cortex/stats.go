package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cortexprime/cortex/internal/catalog"
	"github.com/cortexprime/cortex/internal/progress"
	"github.com/cortexprime/cortex/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show your progress",
	Long: `Display your level, XP, streak, domain scores and recent sessions.

Examples:
  cortex stats
  cortex stats --user alice`,
	Run: runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	user := playerName()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening progress database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	player, err := store.Player(user)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading progress: %v\n", err)
		os.Exit(1)
	}
	if player == nil {
		fmt.Printf("No progress recorded for %q yet.\n", user)
		fmt.Println()
		fmt.Println("Play 'cortex menu' to start training!")
		return
	}

	level := progress.Level(player.TotalXP)
	inLevel := progress.XPInLevel(player.TotalXP)

	domains, domErr := store.DomainScores(user)
	npi := progress.NPI(domains)

	fmt.Printf("Progress - %s\n", user)
	fmt.Println()
	fmt.Printf("  Level:       %d  (%d/%d XP)\n", level, inLevel, progress.XPPerLevel)
	fmt.Printf("  NPI:         %d\n", npi)
	fmt.Printf("  Total XP:    %s\n", progress.FormatCount(player.TotalXP))
	fmt.Printf("  Games:       %d\n", player.GamesPlayed)
	fmt.Printf("  Streak:      %d day(s)  (best %d)\n", player.Streak, player.MaxStreak)

	if domErr == nil && len(domains) > 0 {
		cat, catErr := catalog.Load(flagCatalog)

		fmt.Println()
		fmt.Println("  Domain scores:")
		for id, score := range domains {
			name := id
			if catErr == nil {
				if d, ok := cat.DomainByID(id); ok {
					name = fmt.Sprintf("%s %s", d.Icon, d.Name)
				}
			}
			fmt.Printf("    %-22s %.1f\n", name, score)
		}
	}

	recent, err := store.RecentSessions(user, 5)
	if err == nil && len(recent) > 0 {
		fmt.Println()
		fmt.Println("  Recent sessions:")
		for _, s := range recent {
			fmt.Printf("    %-14s  score %-5d  +%-4d XP  %s\n",
				s.GameID, s.Score, s.XP, s.CreatedAt.Format("2006-01-02 15:04"))
		}
	}
}
