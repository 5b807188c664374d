package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	cases := []struct {
		key    string
		action Action
		quit   bool
	}{
		{"q", ActionQuit, true},
		{"k", ActionUp, false},
		{"j", ActionDown, false},
		{"enter", ActionConfirm, false},
		{"b", ActionBack, false},
		{"r", ActionRestart, false},
		{" ", ActionTap, false},
		{"s", ActionSame, false},
		{"d", ActionDiff, false},
		{"x", ActionNone, false},
	}

	for _, c := range cases {
		action, quit := km.MapKey(keyMsg(c.key))
		if action != c.action || quit != c.quit {
			t.Errorf("MapKey(%q) = (%v, %v), want (%v, %v)",
				c.key, action, quit, c.action, c.quit)
		}
	}
}

func TestMapDigit(t *testing.T) {
	km := NewKeyMapper()

	if got := km.MapDigit(keyMsg("1")); got != 0 {
		t.Errorf("MapDigit(1) = %d, want 0", got)
	}
	if got := km.MapDigit(keyMsg("9")); got != 8 {
		t.Errorf("MapDigit(9) = %d, want 8", got)
	}
	if got := km.MapDigit(keyMsg("0")); got != -1 {
		t.Errorf("MapDigit(0) = %d, want -1", got)
	}
	if got := km.MapDigit(keyMsg("a")); got != -1 {
		t.Errorf("MapDigit(a) = %d, want -1", got)
	}
}
