package engine

import (
	"strings"
	"unicode"
)

// Placeholder stands in for letters that have not been guessed yet.
const Placeholder = '_'

// Mask returns answer with every unguessed letter replaced by Placeholder.
// Spaces are always shown. The answer's case is kept while guessed letters
// are matched in lowercase.
func Mask(answer string, guessed map[rune]bool) string {
	var b strings.Builder
	b.Grow(len(answer))
	for _, c := range answer {
		if c == ' ' || guessed[unicode.ToLower(c)] {
			b.WriteRune(c)
			continue
		}
		b.WriteRune(Placeholder)
	}
	return b.String()
}
