// Package engine implements the hangman game state: answer selection,
// guessed letters, lives, win/loss and the per-guess countdown timer.
// It has no terminal dependencies; front ends drive it.
package engine

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode"
	"unicode/utf8"
)

// Defaults applied by New when an option is left empty.
const (
	DefaultLives     = 6
	DefaultTimeLimit = 15 * time.Second
)

// DefaultWords is the built-in pool for LevelBasic.
var DefaultWords = []string{"python", "hangman", "testing", "pytest", "unittest"}

// DefaultPhrases is the built-in pool for LevelIntermediate.
var DefaultPhrases = []string{"open ai", "machine learning", "unit testing"}

// Options configures a new Engine. Zero values fall back to the defaults.
type Options struct {
	Words     []string
	Phrases   []string
	Lives     int
	TimeLimit time.Duration
	Level     Level
	Rand      *rand.Rand // answer selection; time-seeded when nil
}

// Engine holds the state of one hangman session across rounds.
//
// Round state (answer, guessed letters, lives) is not synchronised: Guess,
// TimedOut and Reset must be called from a single goroutine. The timer
// handle and timeout flag are guarded separately because the timer fires
// on its own goroutine.
type Engine struct {
	words     []string
	phrases   []string
	lives     int
	timeLimit time.Duration
	level     Level
	rng       *rand.Rand

	answer    string
	guessed   map[rune]bool
	remaining int
	revealed  string

	mu          sync.Mutex
	timer       *time.Timer
	timerGen    uint64
	timeoutFlag bool
}

// New creates an engine and starts the first round.
func New(opts Options) *Engine {
	e := &Engine{
		words:     clonePool(opts.Words, DefaultWords),
		phrases:   clonePool(opts.Phrases, DefaultPhrases),
		lives:     opts.Lives,
		timeLimit: opts.TimeLimit,
		level:     opts.Level,
		rng:       opts.Rand,
	}
	if e.lives <= 0 {
		e.lives = DefaultLives
	}
	if e.timeLimit <= 0 {
		e.timeLimit = DefaultTimeLimit
	}
	if e.level != LevelBasic && e.level != LevelIntermediate {
		e.level = LevelBasic
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	e.Reset()
	return e
}

func clonePool(pool, fallback []string) []string {
	if len(pool) == 0 {
		pool = fallback
	}
	out := make([]string, len(pool))
	copy(out, pool)
	return out
}

// Reset starts a new round: a fresh answer from the active pool, no guessed
// letters, full lives and a cleared timeout flag. It drops the timer
// reference without stopping it; call CancelTimer first if one is running.
func (e *Engine) Reset() {
	pool := e.words
	if e.level == LevelIntermediate {
		pool = e.phrases
	}
	e.answer = pool[e.rng.Intn(len(pool))]
	e.guessed = make(map[rune]bool)
	e.remaining = e.lives
	e.revealed = Mask(e.answer, e.guessed)

	e.mu.Lock()
	e.timer = nil
	e.timeoutFlag = false
	e.mu.Unlock()
}

// Guess processes a single guessed letter and reports what happened.
func (e *Engine) Guess(letter string) (Status, string) {
	letter = strings.ToLower(letter)
	if utf8.RuneCountInString(letter) != 1 {
		return StatusInvalid, "Please guess a single alphabet letter."
	}
	r, _ := utf8.DecodeRuneInString(letter)
	if !unicode.IsLetter(r) {
		return StatusInvalid, "Please guess a single alphabet letter."
	}

	if e.guessed[r] {
		return StatusAlreadyGuessed, fmt.Sprintf("'%c' was already guessed.", r)
	}
	e.guessed[r] = true

	if strings.ContainsRune(strings.ToLower(e.answer), r) {
		e.revealed = Mask(e.answer, e.guessed)
		return StatusCorrect, fmt.Sprintf("Good guess! '%c' is in the answer.", r)
	}

	// No floor: callers stop guessing once IsLost reports true.
	e.remaining--
	return StatusIncorrect, fmt.Sprintf("Wrong guess! '%c' is not in the answer.", r)
}

// IsWon reports whether every letter of the answer has been revealed.
// The mask is rebuilt from the answer and guessed letters on each call.
func (e *Engine) IsWon() bool {
	return !strings.ContainsRune(Mask(e.answer, e.guessed), Placeholder)
}

// IsLost reports whether no lives remain.
func (e *Engine) IsLost() bool {
	return e.remaining <= 0
}

// Answer returns the current word or phrase.
func (e *Engine) Answer() string {
	return e.answer
}

// Revealed returns the masked answer as of the last correct guess or reset.
func (e *Engine) Revealed() string {
	return e.revealed
}

// RemainingLives returns the lives left in this round.
func (e *Engine) RemainingLives() int {
	return e.remaining
}

// Lives returns the configured life count.
func (e *Engine) Lives() int {
	return e.lives
}

// WrongGuesses returns how many lives have been lost this round.
func (e *Engine) WrongGuesses() int {
	return e.lives - e.remaining
}

// TimeLimit returns the time allowed per guess.
func (e *Engine) TimeLimit() time.Duration {
	return e.timeLimit
}

// Level returns the pool the answer is drawn from.
func (e *Engine) Level() Level {
	return e.level
}

// Guessed returns the letters guessed this round in sorted order.
func (e *Engine) Guessed() []string {
	out := make([]string, 0, len(e.guessed))
	for r := range e.guessed {
		out = append(out, string(r))
	}
	sort.Strings(out)
	return out
}

// WordPool returns a copy of the basic pool.
func (e *Engine) WordPool() []string {
	return clonePool(e.words, nil)
}

// PhrasePool returns a copy of the intermediate pool.
func (e *Engine) PhrasePool() []string {
	return clonePool(e.phrases, nil)
}
