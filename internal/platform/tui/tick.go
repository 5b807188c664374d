// Package tui provides the Bubble Tea integration for the trainer.
// It handles the terminal UI loop, input mapping, and session
// orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// analyzeDelay is the simulated thinking time before a free-text
// evaluation result is surfaced. Purely cosmetic; no computation
// depends on the wait.
const analyzeDelay = 1500 * time.Millisecond

// revealWindow is how long a memory-matrix pattern stays visible.
const revealWindow = 2 * time.Second

// TickMsg is sent once per second to drive the session countdown.
type TickMsg time.Time

// tickCmd returns a command that sends one TickMsg after a second.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// signalMsg flips the reaction go signal. The sequence number ties the
// timer to the round that armed it so stale timers are ignored.
type signalMsg struct {
	seq int
}

func signalCmd(delay time.Duration, seq int) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return signalMsg{seq: seq}
	})
}

// hideMsg ends a memory-matrix reveal window.
type hideMsg struct {
	seq int
}

func hideCmd(seq int) tea.Cmd {
	return tea.Tick(revealWindow, func(time.Time) tea.Msg {
		return hideMsg{seq: seq}
	})
}

// analyzedMsg surfaces the free-text evaluation after the simulated
// thinking delay.
type analyzedMsg struct{}

func analyzeCmd() tea.Cmd {
	return tea.Tick(analyzeDelay, func(time.Time) tea.Msg {
		return analyzedMsg{}
	})
}
