package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/cortexprime/cortex/internal/catalog"
)

// Shared styles for the trainer screens.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff"))

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	scoreStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#a78bfa"))

	correctStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#34d399"))

	wrongStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#f87171"))

	promptBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#8b5cf6")).
			Padding(0, 1)

	choiceStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2)

	selectedChoiceStyle = choiceStyle.
				BorderForeground(lipgloss.Color("#a78bfa")).
				Bold(true)

	panelStrengthStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#34d399")).
				Padding(0, 1)

	panelImproveStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#fbbf24")).
				Padding(0, 1)

	panelFeedbackStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#a78bfa")).
				Padding(0, 1)
)

// domainStyle returns a style tinted with the domain's catalog color.
func domainStyle(cat *catalog.Catalog, domainID string) lipgloss.Style {
	color := "#94a3b8"
	if d, ok := cat.DomainByID(domainID); ok && d.Color != "" {
		color = d.Color
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}
