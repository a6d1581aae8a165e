package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-hangman/internal/engine"
)

// MenuItem represents a selectable level in the menu.
type MenuItem struct {
	Level engine.Level
	Title string
	Hint  string
}

// LevelMenu lets the player choose between the word and phrase pools.
// It is embedded in Model rather than run as its own program.
type LevelMenu struct {
	items    []MenuItem
	cursor   int
	keys     KeyMap
	selected *MenuItem
	invalid  bool // last key was not a level choice
}

// NewLevelMenu creates a level menu.
func NewLevelMenu(keys KeyMap) LevelMenu {
	return LevelMenu{
		items: []MenuItem{
			{Level: engine.LevelBasic, Title: "(b)asic", Hint: "single words"},
			{Level: engine.LevelIntermediate, Title: "(i)ntermediate", Hint: "phrases"},
		},
		keys: keys,
	}
}

// Update handles a key press. Quit keys are handled by the parent model.
func (m LevelMenu) Update(msg tea.KeyMsg) LevelMenu {
	m.invalid = false

	switch {
	case key.Matches(msg, m.keys.Basic):
		m.choose(0)
	case key.Matches(msg, m.keys.Intermediate):
		m.choose(1)
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		m.choose(m.cursor)
	default:
		m.invalid = true
	}

	return m
}

func (m *LevelMenu) choose(i int) {
	m.cursor = i
	selected := m.items[i]
	m.selected = &selected
}

// Selected returns the chosen level, or nil while still choosing.
func (m LevelMenu) Selected() *MenuItem {
	return m.selected
}

// View renders the menu.
func (m LevelMenu) View(width int) string {
	var b strings.Builder

	b.WriteString(centerText("Choose level - (b)asic or (i)ntermediate (b/i):", width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-16s %s", cursor, item.Title, hintStyle.Render(item.Hint))
		b.WriteString(centerText(line, width))
		b.WriteString("\n")
	}

	if m.invalid {
		b.WriteString("\n")
		b.WriteString(centerText(errorStyle.Render("Please enter 'b' or 'i'."), width))
		b.WriteString("\n")
	}

	return b.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
