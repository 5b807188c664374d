package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Action represents a semantic UI action, abstracted from physical key
// presses. This centralizes key bindings and makes them testable.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // K, Up arrow - move cursor up
	ActionDown           // J, Down arrow - move cursor down
	ActionConfirm        // Enter - confirm selection / start game
	ActionBack           // B, Escape - go back
	ActionRestart        // R - play again after completion
	ActionQuit           // Q, Ctrl+C - exit
	ActionTap            // Space - reaction pad tap
	ActionSame           // S - speed-match "same"
	ActionDiff           // D - speed-match "different"
	ActionBoard          // Tab - open leaderboard
)

// KeyMapper translates Bubble Tea key messages to UI actions.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return ActionQuit, true
	case "k", "up":
		return ActionUp, false
	case "j", "down":
		return ActionDown, false
	case "enter":
		return ActionConfirm, false
	case "b", "esc":
		return ActionBack, false
	case "r":
		return ActionRestart, false
	case " ":
		return ActionTap, false
	case "s":
		return ActionSame, false
	case "d":
		return ActionDiff, false
	case "tab":
		return ActionBoard, false
	}

	return ActionNone, false
}

// MapDigit returns the zero-based index for a digit key "1"-"9", or -1
// if the key is not a digit. Used for choice grids and the matrix.
func (km *KeyMapper) MapDigit(msg tea.KeyMsg) int {
	s := msg.String()
	if len(s) != 1 || s[0] < '1' || s[0] > '9' {
		return -1
	}
	return int(s[0] - '1')
}
