package engine

import (
	"errors"
	"fmt"
	"strings"
)

// Level selects which pool supplies the answer.
type Level int

const (
	LevelBasic        Level = iota // single words
	LevelIntermediate              // multi-word phrases
)

// ErrUnknownLevel is returned by ParseLevel for unrecognised input.
var ErrUnknownLevel = errors.New("engine: unknown level")

// String returns the long name of the level.
func (l Level) String() string {
	switch l {
	case LevelBasic:
		return "basic"
	case LevelIntermediate:
		return "intermediate"
	default:
		return "unknown"
	}
}

// ParseLevel accepts "b", "basic", "i" or "intermediate" in any case.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "b", "basic":
		return LevelBasic, nil
	case "i", "intermediate":
		return LevelIntermediate, nil
	}
	return LevelBasic, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}
