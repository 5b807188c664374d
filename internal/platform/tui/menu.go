package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cortexprime/cortex/internal/catalog"
	"github.com/cortexprime/cortex/internal/progress"
	"github.com/cortexprime/cortex/internal/storage"
)

// MenuModel is the game picker. It lists the catalog with domain
// colors and shows the player's header stats when storage is
// available.
type MenuModel struct {
	cat   *catalog.Catalog
	store *storage.Store
	user  string
	keys  *KeyMapper

	cursor   int
	chosen   string // selected game id, empty until confirmed
	board    bool   // user asked for the leaderboard
	quitting bool
}

// NewMenuModel creates the menu over the given catalog.
func NewMenuModel(cat *catalog.Catalog, store *storage.Store, user string) MenuModel {
	return MenuModel{
		cat:   cat,
		store: store,
		user:  user,
		keys:  NewKeyMapper(),
	}
}

// Chosen returns the confirmed game id, or empty.
func (m MenuModel) Chosen() string { return m.chosen }

// WantsBoard reports whether the user asked for the leaderboard.
func (m MenuModel) WantsBoard() bool { return m.board }

// IsQuitting reports whether the user asked to exit.
func (m MenuModel) IsQuitting() bool { return m.quitting }

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles menu navigation.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	action, isQuit := m.keys.MapKey(keyMsg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	games := m.cat.Games
	switch action {
	case ActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case ActionDown:
		if m.cursor < len(games)-1 {
			m.cursor++
		}
	case ActionConfirm:
		if len(games) > 0 {
			m.chosen = games[m.cursor].ID
			return m, tea.Quit
		}
	case ActionBoard:
		m.board = true
		return m, tea.Quit
	case ActionBack:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("🧠 CortexPrime"))
	b.WriteString("  ")
	b.WriteString(subtleStyle.Render("daily brain training"))
	b.WriteString("\n")
	b.WriteString(m.viewHeader())
	b.WriteString("\n")

	for i, g := range m.cat.Games {
		line := fmt.Sprintf("%s  %s", g.Emoji, g.Name)
		tag := ""
		if d, ok := m.cat.DomainByID(g.Domain); ok {
			tag = domainStyle(m.cat, g.Domain).Render(d.Name)
		}

		if i == m.cursor {
			b.WriteString(selectedChoiceStyle.Render(line))
		} else {
			b.WriteString(choiceStyle.Render(line))
		}
		b.WriteString(" " + tag)
		b.WriteString("\n")
		if i == m.cursor {
			b.WriteString(subtleStyle.Render("   " + g.Description))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(subtleStyle.Render("↑/↓ select · enter play · tab leaderboard · q quit"))
	b.WriteString("\n")
	return b.String()
}

// viewHeader shows level, XP and streak when a profile exists.
func (m MenuModel) viewHeader() string {
	if m.store == nil {
		return ""
	}
	player, err := m.store.Player(m.user)
	if err != nil || player == nil {
		return subtleStyle.Render("New player · play a game to start earning XP")
	}

	level := progress.Level(player.TotalXP)
	inLevel := progress.XPInLevel(player.TotalXP)
	parts := []string{
		scoreStyle.Render(fmt.Sprintf("Lv %d", level)),
		subtleStyle.Render(fmt.Sprintf("%d/%d XP", inLevel, progress.XPPerLevel)),
		subtleStyle.Render(fmt.Sprintf("🔥 %d day streak", player.Streak)),
		subtleStyle.Render(fmt.Sprintf("%s games", progress.FormatCount(player.GamesPlayed))),
	}
	return strings.Join(parts, "  ")
}
