// Package tui provides the Bubble Tea front end for hangman.
// It handles the terminal UI loop, input mapping, countdown rendering and
// the SSH server that serves the same UI to remote players.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// countdownInterval is how often the "Time left" line is refreshed.
const countdownInterval = 500 * time.Millisecond

// countdownMsg refreshes the countdown for one turn.
type countdownMsg struct {
	turn int
	at   time.Time
}

// timeoutMsg carries an engine timer firing into the update loop.
type timeoutMsg struct {
	turn int
}

// startRoundMsg asks the model to begin a round.
type startRoundMsg struct{}

// tickCmd returns a Bubble Tea command that sends a countdown refresh for turn.
func tickCmd(turn int, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return countdownMsg{turn: turn, at: t}
	})
}

// waitForTimeout blocks until an engine timer reports the turn it was armed
// for. It returns nil once done is closed.
func waitForTimeout(ch <-chan int, done <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		select {
		case turn := <-ch:
			return timeoutMsg{turn: turn}
		case <-done:
			return nil
		}
	}
}

func startRound() tea.Msg {
	return startRoundMsg{}
}
