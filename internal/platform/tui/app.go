package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cortexprime/cortex/internal/catalog"
	"github.com/cortexprime/cortex/internal/core"
	"github.com/cortexprime/cortex/internal/registry"
	"github.com/cortexprime/cortex/internal/session"
	"github.com/cortexprime/cortex/internal/storage"
)

// MenuResult holds the outcome of running the menu screen.
type MenuResult struct {
	GameID     string
	WantsBoard bool
	Quit       bool
}

// RunMenu runs the game picker and returns the selection.
func RunMenu(cat *catalog.Catalog, store *storage.Store, user string) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(cat, store, user),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Quit: true}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.IsQuitting() {
		return MenuResult{Quit: true}, nil
	}
	if m.WantsBoard() {
		return MenuResult{WantsBoard: true}, nil
	}
	return MenuResult{GameID: m.Chosen(), Quit: m.Chosen() == ""}, nil
}

// GameResult holds the outcome of running one game screen.
type GameResult struct {
	Quit bool
}

// RunGame plays one game end to end. A zero seed is replaced with the
// current time so runs differ; a fixed seed reproduces the same rounds.
func RunGame(def catalog.GameDefinition, cat *catalog.Catalog, store *storage.Store, user string, cfg core.RuntimeConfig) (GameResult, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	drill, err := registry.Create(def.Kind)
	if err != nil {
		return GameResult{Quit: true}, err
	}

	sess := session.New(def, drill, cfg.Seed)
	p := tea.NewProgram(
		NewGameModel(sess, cat, store, user, cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return GameResult{Quit: true}, err
	}

	m, ok := finalModel.(GameModel)
	if !ok {
		return GameResult{Quit: true}, nil
	}
	return GameResult{Quit: m.IsQuitting()}, nil
}

// RunBoard shows the leaderboard until the user leaves it.
func RunBoard(store *storage.Store) (quit bool, err error) {
	p := tea.NewProgram(
		NewBoardModel(store),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return true, err
	}

	m, ok := finalModel.(BoardModel)
	if !ok {
		return true, nil
	}
	return m.quitting, nil
}

// RunApp loops menu, game, and leaderboard screens until the user
// quits. This is the interactive entry point for local play.
func RunApp(cat *catalog.Catalog, store *storage.Store, user string, cfg core.RuntimeConfig) error {
	for {
		res, err := RunMenu(cat, store, user)
		if err != nil {
			return err
		}
		if res.Quit {
			return nil
		}

		if res.WantsBoard {
			quit, err := RunBoard(store)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
			continue
		}

		def, ok := cat.ByID(res.GameID)
		if !ok {
			continue
		}
		gr, err := RunGame(def, cat, store, user, cfg)
		if err != nil {
			return err
		}
		if gr.Quit {
			return nil
		}
	}
}
