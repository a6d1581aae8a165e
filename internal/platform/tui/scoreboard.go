package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-hangman/internal/storage"
)

// Scoreboard layout constants
const (
	maxRounds   = 20 // Max rounds to load
	tableHeight = 6  // Visible rows
)

// Scoreboard shows the session summary and recent rounds after each round.
type Scoreboard struct {
	store     *storage.Store
	sessionID string
	summary   storage.Summary
	rounds    []storage.RoundResult
	table     table.Model
	err       error
}

// NewScoreboard creates a scoreboard for one session. A nil store yields an
// empty board.
func NewScoreboard(store *storage.Store, sessionID string) Scoreboard {
	return Scoreboard{
		store:     store,
		sessionID: sessionID,
		table:     newRoundsTable(),
	}
}

// newRoundsTable creates a table with the round history columns.
func newRoundsTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Answer", Width: 18},
		{Title: "Level", Width: 13},
		{Title: "Result", Width: 7},
		{Title: "Lives", Width: 6},
		{Title: "Time", Width: 7},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Refresh reloads the summary and round history from the store.
func (s *Scoreboard) Refresh() {
	if s.store == nil {
		return
	}

	summary, err := s.store.SessionSummary(s.sessionID)
	if err != nil {
		s.err = err
		return
	}
	rounds, err := s.store.RecentRounds(s.sessionID, maxRounds)
	if err != nil {
		s.err = err
		return
	}

	s.err = nil
	s.summary = summary
	s.rounds = rounds
	s.updateTableRows()
}

// updateTableRows updates the table with the loaded rounds.
func (s *Scoreboard) updateTableRows() {
	rows := make([]table.Row, len(s.rounds))
	for i, r := range s.rounds {
		result := "lost"
		if r.Won {
			result = "won"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", len(s.rounds)-i),
			r.Answer,
			r.Level,
			result,
			fmt.Sprintf("%d", max(r.LivesLeft, 0)),
			fmt.Sprintf("%.0fs", r.Duration.Seconds()),
		}
	}
	s.table.SetRows(rows)

	// Reset cursor to top
	s.table.GotoTop()
}

// Summary returns the last loaded session summary.
func (s Scoreboard) Summary() storage.Summary {
	return s.summary
}

// Update passes scrolling keys to the table.
func (s Scoreboard) Update(msg tea.Msg) (Scoreboard, tea.Cmd) {
	var cmd tea.Cmd
	s.table, cmd = s.table.Update(msg)
	return s, cmd
}

// View renders the summary line and the round table.
func (s Scoreboard) View() string {
	if s.store == nil {
		return ""
	}
	if s.err != nil {
		return errorStyle.Render("Scoreboard unavailable: " + s.err.Error())
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf(
		"Rounds: %d  Won: %d  Lost: %d  Streak: %d (best %d)",
		s.summary.Played, s.summary.Won, s.summary.Lost, s.summary.Streak, s.summary.BestStreak,
	))
	if len(s.rounds) > 0 {
		b.WriteString("\n\n")
		tableStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
		b.WriteString(tableStyle.Render(s.table.View()))
	}
	return b.String()
}
