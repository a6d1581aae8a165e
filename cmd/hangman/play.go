package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-hangman/internal/platform/tui"
	"github.com/vovakirdan/tui-hangman/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal UI",
	Long: `Start a hangman session in the full-screen terminal UI.

Controls:
  a-z        - Guess a letter
  Esc/Ctrl+C - Quit (the answer is shown)
  y/n        - Play again or stop after a round

Examples:
  hangman play
  hangman play --level b
  hangman play --lives 3 --time-limit 8
  hangman play --log-file hangman.log --debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		fail("loading config", err)
	}

	// Logs would corrupt the UI unless they go to a file
	logger, closer, err := newLogger(io.Discard)
	if err != nil {
		fail("opening log", err)
	}
	defer closer.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store := openStore(logger)

	res, runErr := tui.Run(tui.Options{
		Config:    cfg,
		Seed:      flagSeed,
		Store:     store,
		SessionID: storage.NewSessionID(),
		Logger:    logger,
		Width:     width,
		Height:    height,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		closer.Close()
		fail("running game", runErr)
	}

	// The alternate screen is gone, so repeat how the session ended
	if res.Quit {
		fmt.Printf("Quitting game. The answer was: %s\n", res.Answer)
	}
	printSummary(res.Summary)
}
