// Package config provides YAML-based game configuration loading with
// environment overrides for hangman.
package config

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/vovakirdan/tui-hangman/internal/engine"
)

// Config contains the settings for a hangman session.
type Config struct {
	Words     []string `yaml:"words"      env:"HANGMAN_WORDS"      envSeparator:","`
	Phrases   []string `yaml:"phrases"    env:"HANGMAN_PHRASES"    envSeparator:","`
	Lives     int      `yaml:"lives"      env:"HANGMAN_LIVES"`
	TimeLimit int      `yaml:"time_limit" env:"HANGMAN_TIME_LIMIT"` // seconds per guess
	Level     string   `yaml:"level"      env:"HANGMAN_LEVEL"`      // "basic", "intermediate" or empty to ask
}

// Validation errors.
var (
	ErrInvalidLives     = errors.New("config: lives must be positive")
	ErrInvalidTimeLimit = errors.New("config: time_limit must be positive")
	ErrBlankEntry       = errors.New("config: pool contains a blank entry")
)

// Validate checks the config for values the engine cannot play with.
// Empty pools are allowed and fall back to the built-in ones.
func (c Config) Validate() error {
	if c.Lives <= 0 {
		return fmt.Errorf("%w (got %d)", ErrInvalidLives, c.Lives)
	}
	if c.TimeLimit <= 0 {
		return fmt.Errorf("%w (got %d)", ErrInvalidTimeLimit, c.TimeLimit)
	}
	if c.Level != "" {
		if _, err := engine.ParseLevel(c.Level); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	for _, pool := range [][]string{c.Words, c.Phrases} {
		for i, entry := range pool {
			if strings.TrimSpace(entry) == "" {
				return fmt.Errorf("%w at index %d", ErrBlankEntry, i)
			}
		}
	}
	return nil
}

// HasLevel reports whether a level was chosen in config, env or flags.
func (c Config) HasLevel() bool {
	return c.Level != ""
}

// ParsedLevel returns the configured level, defaulting to basic when unset.
func (c Config) ParsedLevel() (engine.Level, error) {
	if c.Level == "" {
		return engine.LevelBasic, nil
	}
	return engine.ParseLevel(c.Level)
}

// EngineOptions converts the config into engine options for the given level.
func (c Config) EngineOptions(level engine.Level, rng *rand.Rand) engine.Options {
	return engine.Options{
		Words:     trimAll(c.Words),
		Phrases:   trimAll(c.Phrases),
		Lives:     c.Lives,
		TimeLimit: time.Duration(c.TimeLimit) * time.Second,
		Level:     level,
		Rand:      rng,
	}
}

func trimAll(pool []string) []string {
	out := make([]string, 0, len(pool))
	for _, s := range pool {
		out = append(out, strings.TrimSpace(s))
	}
	return out
}
