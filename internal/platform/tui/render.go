package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-hangman/internal/engine"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	wordStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))
	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
	gallowsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208"))
	urgentStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("1"))
	wonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))
	lostStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9"))
)

// statusStyles colours the message returned with each guess.
var statusStyles = map[engine.Status]lipgloss.Style{
	engine.StatusInvalid:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	engine.StatusAlreadyGuessed: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	engine.StatusCorrect:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	engine.StatusIncorrect:      lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
}

// gallows holds the drawing for 0..6 wrong guesses.
var gallows = [...]string{
	"  +---+\n  |   |\n      |\n      |\n      |\n      |\n=========",
	"  +---+\n  |   |\n  O   |\n      |\n      |\n      |\n=========",
	"  +---+\n  |   |\n  O   |\n  |   |\n      |\n      |\n=========",
	"  +---+\n  |   |\n  O   |\n /|   |\n      |\n      |\n=========",
	"  +---+\n  |   |\n  O   |\n /|\\  |\n      |\n      |\n=========",
	"  +---+\n  |   |\n  O   |\n /|\\  |\n /    |\n      |\n=========",
	"  +---+\n  |   |\n  O   |\n /|\\  |\n / \\  |\n      |\n=========",
}

// gallowsStage scales lives lost onto the drawing so any life count ends on
// the full figure.
func gallowsStage(lost, lives int) int {
	last := len(gallows) - 1
	if lives <= 0 || lost <= 0 {
		return 0
	}
	if lost >= lives {
		return last
	}
	stage := (lost*last + lives - 1) / lives
	return min(stage, last)
}

// renderGallows draws the figure for the given losses.
func renderGallows(lost, lives int) string {
	return gallowsStyle.Render(gallows[gallowsStage(lost, lives)])
}

// spaced puts a space between mask characters so placeholders are countable.
// Word breaks in phrases become a wider gap.
func spaced(mask string) string {
	var b strings.Builder
	for i, r := range mask {
		if i > 0 {
			b.WriteRune(' ')
		}
		if r == ' ' {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// block centers a multi-line string as a unit so its columns stay aligned.
func block(s string, width int) string {
	if lipgloss.Width(s) >= width {
		return s
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}
