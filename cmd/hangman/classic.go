package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-hangman/internal/platform/console"
	"github.com/vovakirdan/tui-hangman/internal/storage"
)

var classicCmd = &cobra.Command{
	Use:   "classic",
	Short: "Play with plain line prompts",
	Long: `Start a hangman session that prints prompts line by line.

On a terminal each key press is a guess. When input is piped each line is
a guess, so sessions can be scripted.

Controls:
  a-z        - Guess a letter
  quit       - Quit (the answer is shown)
  Esc/Ctrl+C - Quit from a terminal

Examples:
  hangman classic
  hangman classic --level i
  printf 'b\ne\nquit\n' | hangman classic`,
	Args: cobra.NoArgs,
	Run:  runClassic,
}

func runClassic(cmd *cobra.Command, _ []string) {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		fail("loading config", err)
	}

	logger, closer, err := newLogger(io.Discard)
	if err != nil {
		fail("opening log", err)
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Raw mode delivers single keystrokes; ctrl+c then arrives as input
	fd := int(os.Stdin.Fd())
	raw := term.IsTerminal(fd)
	if raw {
		oldState, rawErr := term.MakeRaw(fd)
		if rawErr != nil {
			fail("setting terminal mode", rawErr)
		}
		defer term.Restore(fd, oldState)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	runner := console.New(console.Options{
		In:        os.Stdin,
		Out:       os.Stdout,
		Raw:       raw,
		Config:    cfg,
		Seed:      flagSeed,
		Store:     store,
		SessionID: storage.NewSessionID(),
		Logger:    logger,
	})

	if _, err := runner.Run(ctx); err != nil {
		logger.Error("session failed", "error", err)
	}
}
