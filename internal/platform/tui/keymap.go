package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the key bindings for every screen of the game.
type KeyMap struct {
	Guess        key.Binding // help only; any unmodified rune is a guess
	Quit         key.Binding
	Up           key.Binding
	Down         key.Binding
	Select       key.Binding
	Basic        key.Binding
	Intermediate key.Binding
	Again        key.Binding
	Decline      key.Binding
	Rounds       key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	letters := make([]string, 0, 26)
	for r := 'a'; r <= 'z'; r++ {
		letters = append(letters, string(r))
	}

	return KeyMap{
		Guess: key.NewBinding(
			key.WithKeys(letters...),
			key.WithHelp("a-z", "guess"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "move down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Basic: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "basic"),
		),
		Intermediate: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "intermediate"),
		),
		Again: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "play again"),
		),
		Decline: key.NewBinding(
			key.WithKeys("n", "q"),
			key.WithHelp("any other key", "stop"),
		),
		Rounds: key.NewBinding(
			key.WithKeys("up", "down"),
			key.WithHelp("up/down", "scroll rounds"),
		),
	}
}

// LevelHelp returns the bindings shown on the level picker.
func (k KeyMap) LevelHelp() []key.Binding {
	return []key.Binding{k.Basic, k.Intermediate, k.Up, k.Down, k.Select, k.Quit}
}

// PlayHelp returns the bindings shown while guessing.
func (k KeyMap) PlayHelp() []key.Binding {
	return []key.Binding{k.Guess, k.Quit}
}

// RoundOverHelp returns the bindings shown after a round.
func (k KeyMap) RoundOverHelp() []key.Binding {
	return []key.Binding{k.Again, k.Decline, k.Rounds}
}
