package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cortexprime/cortex/internal/catalog"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every game in the catalog with its cognitive domain.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	cat, err := catalog.Load(flagCatalog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
		os.Exit(1)
	}

	if len(cat.Games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range cat.Games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Game")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "----")

	for _, g := range cat.Games {
		domain := g.Domain
		if d, ok := cat.DomainByID(g.Domain); ok {
			domain = d.Name
		}
		fmt.Printf("  %-*s  %s %s  (%s)\n", maxIDLen, g.ID, g.Emoji, g.Name, domain)
	}

	fmt.Println()
	fmt.Println("Run 'cortex play <id>' to play a game.")
}
