package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cortexprime/cortex/internal/progress"
	"github.com/cortexprime/cortex/internal/storage"
)

const boardLimit = 10

// BoardModel renders the player leaderboard.
type BoardModel struct {
	tbl      table.Model
	keys     *KeyMapper
	loadErr  error
	done     bool
	quitting bool
}

// NewBoardModel loads the leaderboard rows and builds the table.
func NewBoardModel(store *storage.Store) BoardModel {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Player", Width: 16},
		{Title: "Lv", Width: 4},
		{Title: "NPI", Width: 5},
		{Title: "XP", Width: 7},
		{Title: "Streak", Width: 6},
		{Title: "Games", Width: 6},
	}

	var rows []table.Row
	var loadErr error
	if store != nil {
		entries, err := store.Leaderboard(boardLimit)
		if err != nil {
			loadErr = err
		}
		for _, e := range entries {
			rows = append(rows, table.Row{
				fmt.Sprintf("%d", e.Rank),
				e.User,
				fmt.Sprintf("%d", e.Level),
				fmt.Sprintf("%d", e.NPI),
				progress.FormatCount(e.TotalXP),
				fmt.Sprintf("%d", e.Streak),
				fmt.Sprintf("%d", e.GamesPlayed),
			})
		}
	}

	tbl := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(boardLimit+1),
		table.WithFocused(true),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(lipgloss.Color("#8b5cf6"))
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("#a78bfa")).
		Bold(true)
	tbl.SetStyles(styles)

	return BoardModel{
		tbl:     tbl,
		keys:    NewKeyMapper(),
		loadErr: loadErr,
	}
}

// Done reports whether the user asked to leave the leaderboard.
func (m BoardModel) Done() bool { return m.done }

// Init implements tea.Model.
func (m BoardModel) Init() tea.Cmd {
	return nil
}

// Update handles table navigation and exit keys.
func (m BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		action, isQuit := m.keys.MapKey(keyMsg)
		if isQuit {
			m.quitting = true
			return m, tea.Quit
		}
		if action == ActionBack || action == ActionBoard {
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.tbl, cmd = m.tbl.Update(msg)
	return m, cmd
}

// View renders the leaderboard.
func (m BoardModel) View() string {
	if m.quitting {
		return ""
	}

	var out string
	out += "\n" + titleStyle.Render("🏆 Leaderboard") + "\n\n"
	if m.loadErr != nil {
		out += wrongStyle.Render("leaderboard unavailable: "+m.loadErr.Error()) + "\n"
	} else if len(m.tbl.Rows()) == 0 {
		out += subtleStyle.Render("No players yet. Play a game!") + "\n"
	} else {
		out += m.tbl.View() + "\n"
	}
	out += "\n" + subtleStyle.Render("esc back · q quit") + "\n"
	return out
}
