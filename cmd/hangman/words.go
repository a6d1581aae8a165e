package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hangman/internal/engine"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "List the word and phrase pools",
	Long: `Shows the answers each level draws from, after config files,
HANGMAN_* environment variables and flags are applied.

Examples:
  hangman words
  HANGMAN_WORDS=gopher,channel hangman words
  hangman words --config ./my-words.yaml`,
	Args: cobra.NoArgs,
	Run:  runWords,
}

func runWords(cmd *cobra.Command, _ []string) {
	cfg, source, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Config: %s\n", source)
	fmt.Printf("Lives: %d  Time limit: %ds\n", cfg.Lives, cfg.TimeLimit)
	fmt.Println()

	printPool("Basic (b) - words", withFallback(cfg.Words, engine.DefaultWords))
	fmt.Println()
	printPool("Intermediate (i) - phrases", withFallback(cfg.Phrases, engine.DefaultPhrases))

	fmt.Println()
	fmt.Println("Run 'hangman play' to play.")
}

// withFallback mirrors the engine: an empty pool plays the built-in one.
func withFallback(pool, builtin []string) []string {
	if len(pool) == 0 {
		return builtin
	}
	return pool
}

func printPool(title string, pool []string) {
	fmt.Printf("%s:\n", title)

	// Calculate column width
	maxLen := 1
	for _, entry := range pool {
		if len(entry) > maxLen {
			maxLen = len(entry)
		}
	}

	for i, entry := range pool {
		fmt.Printf("  %2d  %-*s  (%d letters)\n", i+1, maxLen, entry, letterCount(entry))
	}
}

// letterCount counts the characters a player has to guess.
func letterCount(s string) int {
	n := 0
	for _, r := range s {
		if r != ' ' {
			n++
		}
	}
	return n
}
