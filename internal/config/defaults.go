package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-hangman/internal/engine"
)

//go:embed defaults/hangman.yaml
var defaultHangmanYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Words:     append([]string(nil), engine.DefaultWords...),
		Phrases:   append([]string(nil), engine.DefaultPhrases...),
		Lives:     engine.DefaultLives,
		TimeLimit: int(engine.DefaultTimeLimit.Seconds()),
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultHangmanYAML
}
