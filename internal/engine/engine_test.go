package engine

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"
)

func newTestEngine(opts Options) *Engine {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(42))
	}
	return New(opts)
}

func TestNewDefaults(t *testing.T) {
	e := newTestEngine(Options{})

	if e.Lives() != DefaultLives {
		t.Errorf("Lives() = %d, want %d", e.Lives(), DefaultLives)
	}
	if e.RemainingLives() != DefaultLives {
		t.Errorf("RemainingLives() = %d, want %d", e.RemainingLives(), DefaultLives)
	}
	if e.TimeLimit() != DefaultTimeLimit {
		t.Errorf("TimeLimit() = %v, want %v", e.TimeLimit(), DefaultTimeLimit)
	}
	if e.Level() != LevelBasic {
		t.Errorf("Level() = %v, want basic", e.Level())
	}
	if len(e.WordPool()) != 5 {
		t.Errorf("expected 5 default words, got %d", len(e.WordPool()))
	}
	if len(e.PhrasePool()) != 3 {
		t.Errorf("expected 3 default phrases, got %d", len(e.PhrasePool()))
	}

	found := false
	for _, w := range DefaultWords {
		if e.Answer() == w {
			found = true
		}
	}
	if !found {
		t.Errorf("answer %q not drawn from the default words", e.Answer())
	}
}

func TestWordGeneratedBasic(t *testing.T) {
	e := newTestEngine(Options{Words: []string{"hello"}, Level: LevelBasic})
	e.Reset()
	if e.Answer() != "hello" {
		t.Errorf("Answer() = %q, want %q", e.Answer(), "hello")
	}
}

func TestPhraseGeneratedIntermediate(t *testing.T) {
	e := newTestEngine(Options{Phrases: []string{"good day"}, Level: LevelIntermediate})
	e.Reset()
	if e.Answer() != "good day" {
		t.Errorf("Answer() = %q, want %q", e.Answer(), "good day")
	}
	if e.Revealed() != "____ ___" {
		t.Errorf("Revealed() = %q, want spaces shown", e.Revealed())
	}
}

func TestResetIsDeterministicWithSeed(t *testing.T) {
	pool := []string{"alpha", "bravo", "charlie", "delta", "echo", "foxtrot"}
	a := New(Options{Words: pool, Rand: rand.New(rand.NewSource(7))})
	b := New(Options{Words: pool, Rand: rand.New(rand.NewSource(7))})

	for i := 0; i < 10; i++ {
		if a.Answer() != b.Answer() {
			t.Fatalf("round %d: answers diverged: %q vs %q", i, a.Answer(), b.Answer())
		}
		a.Reset()
		b.Reset()
	}
}

func TestResetClearsRoundState(t *testing.T) {
	e := newTestEngine(Options{Words: []string{"hello"}, Lives: 3})
	e.Guess("h")
	e.Guess("z")
	e.TimedOut()

	e.Reset()

	if e.RemainingLives() != 3 {
		t.Errorf("RemainingLives() = %d after reset, want 3", e.RemainingLives())
	}
	if len(e.Guessed()) != 0 {
		t.Errorf("Guessed() = %v after reset, want empty", e.Guessed())
	}
	if e.Revealed() != "_____" {
		t.Errorf("Revealed() = %q after reset, want %q", e.Revealed(), "_____")
	}
	if e.TimeoutFired() {
		t.Error("timeout flag should be clear after reset")
	}
}

func TestOptionsPoolIsCopied(t *testing.T) {
	words := []string{"hello"}
	e := newTestEngine(Options{Words: words})
	words[0] = "other"
	e.Reset()
	if e.Answer() != "hello" {
		t.Errorf("engine pool aliased caller slice, answer = %q", e.Answer())
	}
}

func TestGuessStateMachine(t *testing.T) {
	tests := []struct {
		name      string
		guesses   []string
		want      Status
		wantLives int
		wantMsg   string
	}{
		{"correct", []string{"h"}, StatusCorrect, 3, "Good guess! 'h' is in the answer."},
		{"correct uppercase", []string{"H"}, StatusCorrect, 3, "'h'"},
		{"incorrect", []string{"z"}, StatusIncorrect, 2, "Wrong guess! 'z' is not in the answer."},
		{"already guessed", []string{"z", "z"}, StatusAlreadyGuessed, 2, "'z' was already guessed."},
		{"already guessed mixed case", []string{"h", "H"}, StatusAlreadyGuessed, 3, "'h'"},
		{"multi character", []string{"ab"}, StatusInvalid, 3, "Please guess a single alphabet letter."},
		{"digit", []string{"7"}, StatusInvalid, 3, "single alphabet letter"},
		{"empty", []string{""}, StatusInvalid, 3, "single alphabet letter"},
		{"space", []string{" "}, StatusInvalid, 3, "single alphabet letter"},
		{"punctuation", []string{"!"}, StatusInvalid, 3, "single alphabet letter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(Options{Words: []string{"hello"}, Lives: 3})

			var status Status
			var msg string
			for _, g := range tt.guesses {
				status, msg = e.Guess(g)
			}

			if status != tt.want {
				t.Errorf("status = %v, want %v", status, tt.want)
			}
			if !strings.Contains(msg, tt.wantMsg) {
				t.Errorf("message = %q, want it to contain %q", msg, tt.wantMsg)
			}
			if e.RemainingLives() != tt.wantLives {
				t.Errorf("RemainingLives() = %d, want %d", e.RemainingLives(), tt.wantLives)
			}
		})
	}
}

func TestInvalidGuessMutatesNothing(t *testing.T) {
	e := newTestEngine(Options{Words: []string{"hello"}, Lives: 3})
	for _, g := range []string{"he", "1", "", "quit", "?"} {
		if status, _ := e.Guess(g); status != StatusInvalid {
			t.Errorf("Guess(%q) = %v, want Invalid", g, status)
		}
	}
	if len(e.Guessed()) != 0 {
		t.Errorf("Guessed() = %v, want empty", e.Guessed())
	}
	if e.RemainingLives() != 3 {
		t.Errorf("RemainingLives() = %d, want 3", e.RemainingLives())
	}
	if e.Revealed() != "_____" {
		t.Errorf("Revealed() = %q, want unchanged mask", e.Revealed())
	}
}

func TestRepeatGuessDoesNotMutate(t *testing.T) {
	e := newTestEngine(Options{Words: []string{"hello"}, Lives: 3})
	e.Guess("q")
	lives := e.RemainingLives()
	guessed := len(e.Guessed())

	status, msg := e.Guess("q")
	if status != StatusAlreadyGuessed {
		t.Fatalf("second Guess(q) = %v, want AlreadyGuessed", status)
	}
	if !strings.Contains(msg, "'q'") {
		t.Errorf("message %q should name the letter", msg)
	}
	if e.RemainingLives() != lives {
		t.Errorf("lives changed on repeat guess: %d -> %d", lives, e.RemainingLives())
	}
	if len(e.Guessed()) != guessed {
		t.Errorf("guessed set changed on repeat guess")
	}
}

func TestCorrectGuessRevealsAllOccurrences(t *testing.T) {
	e := newTestEngine(Options{Words: []string{"hello"}})
	e.Guess("l")
	if e.Revealed() != "__ll_" {
		t.Errorf("Revealed() = %q, want %q", e.Revealed(), "__ll_")
	}
}

func TestLivesExhaustedAfterWrongGuesses(t *testing.T) {
	for lives := 1; lives <= 8; lives++ {
		e := newTestEngine(Options{Words: []string{"a"}, Lives: lives})
		wrong := "bcdefghijklmnopqrstuvwxyz"
		for i := 0; i < lives; i++ {
			if e.IsLost() {
				t.Fatalf("lives=%d: lost after only %d wrong guesses", lives, i)
			}
			if status, _ := e.Guess(string(wrong[i])); status != StatusIncorrect {
				t.Fatalf("lives=%d: Guess(%c) = %v, want Incorrect", lives, wrong[i], status)
			}
		}
		if !e.IsLost() {
			t.Errorf("lives=%d: IsLost() = false after %d wrong guesses", lives, lives)
		}
		if e.RemainingLives() != 0 {
			t.Errorf("lives=%d: RemainingLives() = %d, want 0", lives, e.RemainingLives())
		}
		if e.WrongGuesses() != lives {
			t.Errorf("lives=%d: WrongGuesses() = %d", lives, e.WrongGuesses())
		}
	}
}

func TestGuessingAllLettersWins(t *testing.T) {
	answers := []string{"hi", "Gopher", "unittest", "ZigZag", "pYtHoN"}
	for _, answer := range answers {
		t.Run(answer, func(t *testing.T) {
			e := newTestEngine(Options{Words: []string{answer}, Lives: 1})
			for _, r := range strings.ToUpper(answer) {
				e.Guess(string(r))
			}
			if !e.IsWon() {
				t.Errorf("IsWon() = false after guessing every letter of %q", answer)
			}
			if e.Revealed() != answer {
				t.Errorf("Revealed() = %q, want %q (case preserved)", e.Revealed(), answer)
			}
			if e.IsLost() {
				t.Error("IsLost() = true, no wrong guesses were made")
			}
		})
	}
}

func TestPhraseWinIgnoresSpaces(t *testing.T) {
	e := newTestEngine(Options{Phrases: []string{"open ai"}, Level: LevelIntermediate})
	for _, r := range "openai" {
		e.Guess(string(r))
	}
	if !e.IsWon() {
		t.Error("IsWon() = false for fully guessed phrase")
	}
	if e.Revealed() != "open ai" {
		t.Errorf("Revealed() = %q, want %q", e.Revealed(), "open ai")
	}
}

func TestScenarioWin(t *testing.T) {
	e := newTestEngine(Options{Words: []string{"hi"}, Lives: 1, Level: LevelBasic})

	if status, _ := e.Guess("h"); status != StatusCorrect {
		t.Fatalf("Guess(h) = %v, want Correct", status)
	}
	if e.Revealed() != "h_" {
		t.Errorf("Revealed() = %q, want %q", e.Revealed(), "h_")
	}
	if e.IsWon() {
		t.Error("IsWon() = true with one letter left")
	}

	if status, _ := e.Guess("i"); status != StatusCorrect {
		t.Fatalf("Guess(i) = %v, want Correct", status)
	}
	if e.Revealed() != "hi" {
		t.Errorf("Revealed() = %q, want %q", e.Revealed(), "hi")
	}
	if !e.IsWon() {
		t.Error("IsWon() = false, want true")
	}
}

func TestScenarioLoss(t *testing.T) {
	e := newTestEngine(Options{Words: []string{"hi"}, Lives: 1, Level: LevelBasic})

	if status, _ := e.Guess("z"); status != StatusIncorrect {
		t.Fatalf("Guess(z) = %v, want Incorrect", status)
	}
	if e.RemainingLives() != 0 {
		t.Errorf("RemainingLives() = %d, want 0", e.RemainingLives())
	}
	if !e.IsLost() {
		t.Error("IsLost() = false, want true")
	}
}

func TestLivesGoNegativePastZero(t *testing.T) {
	e := newTestEngine(Options{Words: []string{"a"}, Lives: 1})
	e.Guess("b")
	e.Guess("c")
	if e.RemainingLives() != -1 {
		t.Errorf("RemainingLives() = %d, want -1", e.RemainingLives())
	}
	if !e.IsLost() {
		t.Error("IsLost() = false with negative lives")
	}
}

func TestTimedOutDeductsLife(t *testing.T) {
	e := newTestEngine(Options{Words: []string{"hello"}, Lives: 2})

	e.TimedOut()
	if e.RemainingLives() != 1 {
		t.Errorf("RemainingLives() = %d after one timeout, want 1", e.RemainingLives())
	}

	e.TimedOut()
	if e.RemainingLives() != 0 {
		t.Errorf("RemainingLives() = %d after two timeouts, want 0", e.RemainingLives())
	}
	if !e.IsLost() {
		t.Error("IsLost() = false after two timeouts with two lives")
	}
}

func TestGuessedSorted(t *testing.T) {
	e := newTestEngine(Options{Words: []string{"hello"}})
	for _, g := range []string{"z", "e", "a", "l"} {
		e.Guess(g)
	}
	got := strings.Join(e.Guessed(), "")
	if got != "aelz" {
		t.Errorf("Guessed() = %q, want %q", got, "aelz")
	}
}

func TestMask(t *testing.T) {
	tests := []struct {
		name    string
		answer  string
		guessed string
		want    string
	}{
		{"nothing guessed", "hello", "", "_____"},
		{"case preserved", "Hello", "h", "H____"},
		{"spaces shown", "unit testing", "", "____ _______"},
		{"partial phrase", "unit testing", "t", "___t t__t___"},
		{"fully guessed", "Go", "go", "Go"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guessed := make(map[rune]bool)
			for _, r := range tt.guessed {
				guessed[r] = true
			}
			if got := Mask(tt.answer, guessed); got != tt.want {
				t.Errorf("Mask(%q, %q) = %q, want %q", tt.answer, tt.guessed, got, tt.want)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"b", LevelBasic, false},
		{"basic", LevelBasic, false},
		{" Basic ", LevelBasic, false},
		{"i", LevelIntermediate, false},
		{"INTERMEDIATE", LevelIntermediate, false},
		{"x", LevelBasic, true},
		{"", LevelBasic, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownLevel) {
				t.Errorf("ParseLevel(%q) error = %v, want ErrUnknownLevel", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseLevel(%q) unexpected error: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestStatusString(t *testing.T) {
	if StatusAlreadyGuessed.String() != "AlreadyGuessed" {
		t.Errorf("unexpected String(): %s", StatusAlreadyGuessed)
	}
	if !StatusIncorrect.Mutated() || StatusInvalid.Mutated() {
		t.Error("Mutated() misreports state changes")
	}
	if LevelIntermediate.String() != "intermediate" {
		t.Errorf("unexpected String(): %s", LevelIntermediate)
	}
}

func TestTimeLimitOption(t *testing.T) {
	e := newTestEngine(Options{TimeLimit: 3 * time.Second})
	if e.TimeLimit() != 3*time.Second {
		t.Errorf("TimeLimit() = %v, want 3s", e.TimeLimit())
	}
}
