// Package console runs hangman as a plain line-oriented terminal game.
//
// On a raw terminal every keystroke is a guess; otherwise every line is.
// The engine timer bounds each turn and a countdown line is redrawn in place
// while waiting for input.
package console

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hangman/internal/config"
	"github.com/vovakirdan/tui-hangman/internal/engine"
	"github.com/vovakirdan/tui-hangman/internal/storage"
)

// DefaultInterval is how often the countdown line is redrawn.
const DefaultInterval = 500 * time.Millisecond

// Options configures a Runner.
type Options struct {
	In        io.Reader
	Out       io.Writer
	Raw       bool // In is a terminal in raw mode
	Config    config.Config
	Seed      int64          // 0 = random based on time
	Store     *storage.Store // optional session scoreboard
	SessionID string
	Logger    *log.Logger
	Interval  time.Duration
}

// Result describes how a session ended.
type Result struct {
	Quit    bool   // left in the middle of a round
	Answer  string // the answer of that round
	Summary storage.Summary
}

// Runner plays hangman rounds over a reader and writer.
type Runner struct {
	in        io.Reader
	out       io.Writer
	raw       bool
	nl        string
	cfg       config.Config
	rng       *rand.Rand
	store     *storage.Store
	sessionID string
	logger    *log.Logger
	interval  time.Duration

	engine *engine.Engine
	turn   int
	fired  chan int
	done   chan struct{}
}

// New creates a Runner.
func New(opts Options) *Runner {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	sessionID := opts.SessionID
	if sessionID == "" {
		sessionID = storage.NewSessionID()
	}
	interval := opts.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	nl := "\n"
	if opts.Raw {
		nl = "\r\n"
	}

	return &Runner{
		in:        opts.In,
		out:       opts.Out,
		raw:       opts.Raw,
		nl:        nl,
		cfg:       opts.Config,
		rng:       rand.New(rand.NewSource(seed)),
		store:     opts.Store,
		sessionID: sessionID,
		logger:    logger.With("session", sessionID),
		interval:  interval,
	}
}

// Run plays until the player declines another round, quits, or ctx is done.
// A Runner is meant to be run once.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	var result Result

	tokens := make(chan token)
	r.fired = make(chan int)
	r.done = make(chan struct{})
	defer close(r.done)

	if r.raw {
		go readKeys(r.in, tokens, r.done)
	} else {
		go readLines(r.in, tokens, r.done)
	}

	r.printf("Welcome to Hangman!%s%s", r.nl, r.nl)

	level, ok := r.chooseLevel(ctx, tokens)
	if !ok {
		r.printf("Thanks for playing. Goodbye!%s", r.nl)
		return result, nil
	}
	r.engine = engine.New(r.cfg.EngineOptions(level, r.rng))
	defer r.engine.CancelTimer()

	for {
		if r.playRound(ctx, tokens) {
			r.printf("Quitting game. The answer was: %s%s", r.engine.Answer(), r.nl)
			result.Quit = true
			result.Answer = r.engine.Answer()
			result.Summary = r.summary()
			r.logger.Info("session ended", "quit", true)
			return result, nil
		}

		r.printf("%sPlay again? (y/n): ", r.nl)
		tok := r.next(ctx, tokens)
		if r.raw && tok.err == nil {
			r.printf("%s%s", tok.text, r.nl)
		}
		if tok.isQuit() || strings.ToLower(strings.TrimSpace(tok.text)) != "y" {
			break
		}
	}

	r.printf("Thanks for playing. Goodbye!%s", r.nl)
	result.Summary = r.summary()
	r.logger.Info("session ended", "quit", false, "rounds", result.Summary.Played)
	return result, nil
}

// chooseLevel uses the configured level or prompts until b or i is given.
func (r *Runner) chooseLevel(ctx context.Context, tokens <-chan token) (engine.Level, bool) {
	if r.cfg.HasLevel() {
		level, err := r.cfg.ParsedLevel()
		if err == nil {
			return level, true
		}
		r.logger.Warn("ignoring configured level", "error", err)
	}

	for {
		r.printf("Choose level - (b)asic or (i)ntermediate (b/i): ")
		tok := r.next(ctx, tokens)
		if tok.quit || tok.err != nil {
			r.printf("%s", r.nl)
			return 0, false
		}
		if r.raw {
			r.printf("%s%s", tok.text, r.nl)
		}

		level, err := engine.ParseLevel(tok.text)
		if err == nil {
			r.logger.Debug("level selected", "level", level)
			return level, true
		}
		r.printf("Please enter 'b' or 'i'.%s", r.nl)
	}
}

// playRound plays one round and reports whether the player quit.
func (r *Runner) playRound(ctx context.Context, tokens <-chan token) bool {
	r.engine.CancelTimer()
	r.engine.Reset()
	start := time.Now()
	timeouts := 0

	r.logger.Info("round started", "level", r.engine.Level())
	r.logger.Debug("answer chosen", "answer", r.engine.Answer())
	r.printf("%sNew Game Started! (type 'quit' to exit anytime)%s%s", r.nl, r.nl, r.nl)

	for !r.engine.IsWon() && !r.engine.IsLost() {
		r.printf("Word:  %s%s", r.engine.Revealed(), r.nl)
		r.printf("Lives remaining: %d%s", r.engine.RemainingLives(), r.nl)
		r.printf("You have %d seconds to enter a letter...%s", int(r.engine.TimeLimit().Seconds()), r.nl)

		tok, timedOut := r.waitTurn(ctx, tokens)
		if timedOut {
			r.printf("%sTime's up! You lost one life.%s", r.nl, r.nl)
			r.engine.TimedOut()
			timeouts++
			r.logger.Debug("timeout", "lives", r.engine.RemainingLives())
			continue
		}
		if tok.isQuit() {
			return true
		}

		status, msg := r.engine.Guess(strings.ToLower(strings.TrimSpace(tok.text)))
		r.printf("%s%s", msg, r.nl)
		r.logger.Debug("guess", "token", tok.text, "status", status, "lives", r.engine.RemainingLives())
	}

	won := r.engine.IsWon()
	if won {
		r.printf("%sCongratulations, you won! The word was: %s%s", r.nl, r.engine.Answer(), r.nl)
	} else {
		r.printf("%sGame Over! The word was: %s%s", r.nl, r.engine.Answer(), r.nl)
	}
	r.record(won, timeouts, time.Since(start))
	return false
}

// waitTurn arms the engine timer and redraws the countdown until a
// non-empty token arrives or the timer fires. Whichever arrives first wins.
func (r *Runner) waitTurn(ctx context.Context, tokens <-chan token) (token, bool) {
	r.turn++
	turn := r.turn
	fired, done := r.fired, r.done

	r.engine.StartTimer(func() {
		select {
		case fired <- turn:
		case <-done:
		}
	})
	defer r.engine.CancelTimer()

	limit := int(r.engine.TimeLimit().Seconds())
	start := time.Now()
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.countdown(limit)
	for {
		select {
		case <-ctx.Done():
			r.printf("%s", r.nl)
			return token{quit: true}, false

		case tok := <-tokens:
			if tok.text == "" && !tok.quit && tok.err == nil {
				continue
			}
			r.printf("%s", r.nl)
			return tok, false

		case got := <-fired:
			if got != turn {
				continue
			}
			r.printf("%s", r.nl)
			return token{}, true

		case now := <-ticker.C:
			r.countdown(limit - int(now.Sub(start).Seconds()))
		}
	}
}

// next waits for the next token. Stale timer callbacks are drained so they
// do not block.
func (r *Runner) next(ctx context.Context, tokens <-chan token) token {
	for {
		select {
		case <-ctx.Done():
			return token{quit: true}
		case <-r.fired:
		case tok := <-tokens:
			return tok
		}
	}
}

func (r *Runner) countdown(left int) {
	r.printf("\rTime left: %d seconds ", max(left, 0))
}

func (r *Runner) record(won bool, timeouts int, d time.Duration) {
	r.logger.Info("round finished",
		"won", won,
		"answer", r.engine.Answer(),
		"lives", r.engine.RemainingLives(),
		"timeouts", timeouts,
	)
	if r.store == nil {
		return
	}

	_, err := r.store.SaveRound(storage.RoundResult{
		SessionID:    r.sessionID,
		Level:        r.engine.Level().String(),
		Answer:       r.engine.Answer(),
		Won:          won,
		LivesLeft:    r.engine.RemainingLives(),
		WrongGuesses: r.engine.WrongGuesses() - timeouts,
		Timeouts:     timeouts,
		Duration:     d,
	})
	if err != nil {
		r.logger.Warn("could not save round", "error", err)
	}
}

func (r *Runner) summary() storage.Summary {
	if r.store == nil {
		return storage.Summary{}
	}
	sum, err := r.store.SessionSummary(r.sessionID)
	if err != nil {
		r.logger.Warn("could not load session summary", "error", err)
	}
	return sum
}

func (r *Runner) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}
