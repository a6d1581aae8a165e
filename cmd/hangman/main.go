// hangman is a terminal word-guessing game with a per-guess time limit.
//
// Usage:
//
//	hangman play             - Play in the full-screen terminal UI
//	hangman classic          - Play with plain line prompts
//	hangman serve            - Start SSH server for remote play
//	hangman words            - List the word and phrase pools
//
// Global flags:
//
//	--level <b|i>        - Skip the level prompt
//	--lives <n>          - Lives per round (default: 6)
//	--time-limit <secs>  - Seconds allowed per guess (default: 15)
//	--seed <value>       - Set RNG seed for reproducible answers
//	--config <path>      - Custom config YAML
//	--log-file <path>    - Write logs to a file
//	--debug              - Log at debug level
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hangman/internal/config"
	"github.com/vovakirdan/tui-hangman/internal/storage"
)

var (
	// Global flags
	flagSeed      int64
	flagConfig    string
	flagLevel     string
	flagLives     int
	flagTimeLimit int
	flagLogFile   string
	flagDebug     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hangman",
	Short: "Hangman - guess the word before the clock runs out",
	Long: `Hangman is a terminal word-guessing game. Each guess must arrive within
the time limit or a life is lost.

Available commands:
  play     - Full-screen terminal UI
  classic  - Plain line prompts (works over pipes)
  serve    - Start SSH server for remote play
  words    - Show the word and phrase pools

Examples:
  hangman play
  hangman play --level i --time-limit 10
  hangman classic --lives 3
  hangman serve --ssh :2222
  hangman words --config ./my-words.yaml`,
}

func init() {
	// Global persistent flags
	flags := rootCmd.PersistentFlags()
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	flags.StringVar(&flagLevel, "level", "", "Level: b/basic or i/intermediate (prompted when empty)")
	flags.IntVar(&flagLives, "lives", 0, "Lives per round (overrides config)")
	flags.IntVar(&flagTimeLimit, "time-limit", 0, "Seconds allowed per guess (overrides config)")
	flags.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	flags.BoolVar(&flagDebug, "debug", false, "Log at debug level")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(classicCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(wordsCmd)
}

// loadConfig resolves the game configuration: file, then environment, then
// flags that were set explicitly. It is validated once all three are applied.
func loadConfig(cmd *cobra.Command) (config.Config, config.Source, error) {
	var o config.Overrides

	flags := cmd.Flags()
	if flags.Changed("level") {
		o.Level = &flagLevel
	}
	if flags.Changed("lives") {
		o.Lives = &flagLives
	}
	if flags.Changed("time-limit") {
		o.TimeLimit = &flagTimeLimit
	}

	return config.LoadWith(flagConfig, o)
}

// newLogger returns a logger writing to --log-file when set, otherwise to
// fallback. The returned closer is never nil.
func newLogger(fallback io.Writer) (*log.Logger, io.Closer, error) {
	w := fallback
	var closer io.Closer = nopCloser{}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "hangman",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}

// openStore opens the session scoreboard. Play continues without one.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open scoreboard", "error", err)
		return nil
	}
	return store
}

// printSummary prints the session totals after the game exits.
func printSummary(sum storage.Summary) {
	if sum.Played == 0 {
		return
	}
	fmt.Printf("Rounds: %d  Won: %d  Lost: %d  Best streak: %d\n",
		sum.Played, sum.Won, sum.Lost, sum.BestStreak)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// fail prints err and exits.
func fail(what string, err error) {
	fmt.Fprintf(os.Stderr, "Error %s: %v\n", what, err)
	os.Exit(1)
}
