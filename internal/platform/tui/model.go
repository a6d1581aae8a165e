package tui

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hangman/internal/config"
	"github.com/vovakirdan/tui-hangman/internal/engine"
	"github.com/vovakirdan/tui-hangman/internal/storage"
)

// phase is the screen the model is showing.
type phase int

const (
	phaseSelectLevel phase = iota
	phasePlaying
	phaseRoundOver
	phaseDone
)

// Options configures a Model.
type Options struct {
	Config    config.Config
	Seed      int64          // 0 = random based on time
	Store     *storage.Store // optional session scoreboard
	SessionID string         // generated when empty
	Logger    *log.Logger    // discarded when nil
	Width     int
	Height    int
}

// Result describes how a session ended.
type Result struct {
	Quit    bool   // left in the middle of a round
	Answer  string // the answer of that round
	Summary storage.Summary
}

// Model is the Bubble Tea model for a hangman session.
//
// Guesses and timeouts both arrive as messages, so the engine is only
// touched from the update loop. A timeout is tagged with the turn it was
// armed for and dropped if a guess started a new turn first.
type Model struct {
	cfg       config.Config
	rng       *rand.Rand
	engine    *engine.Engine
	store     *storage.Store
	sessionID string
	logger    *log.Logger

	keys  KeyMap
	help  help.Model
	menu  LevelMenu
	board Scoreboard

	phase  phase
	width  int
	height int

	turn      int
	turnStart time.Time
	now       time.Time
	timeouts  chan int
	done      chan struct{}

	status        engine.Status
	message       string
	roundStart    time.Time
	roundTimeouts int
	won           bool
	result        Result
}

// NewModel creates a new Bubble Tea model. When the config names a level
// the level picker is skipped.
func NewModel(opts Options) Model {
	// Use time-based seed if not specified
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
	width := opts.Width
	if width <= 0 {
		width = 80
	}

	keys := DefaultKeyMap()
	h := help.New()
	h.Width = width

	m := Model{
		cfg:       opts.Config,
		rng:       rand.New(rand.NewSource(seed)),
		store:     opts.Store,
		sessionID: sessionID,
		logger:    logger.With("session", sessionID),
		keys:      keys,
		help:      h,
		menu:      NewLevelMenu(keys),
		board:     NewScoreboard(opts.Store, sessionID),
		width:     width,
		height:    opts.Height,
		timeouts:  make(chan int, 1),
		done:      make(chan struct{}),
	}

	if opts.Config.HasLevel() {
		level, err := opts.Config.ParsedLevel()
		if err != nil {
			m.logger.Warn("ignoring configured level", "error", err)
			return m
		}
		m.engine = engine.New(opts.Config.EngineOptions(level, m.rng))
		m.phase = phasePlaying
	}

	return m
}

// Init starts listening for timer callbacks and, if the level is known,
// the first round.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{waitForTimeout(m.timeouts, m.done)}
	if m.phase == phasePlaying {
		cmds = append(cmds, startRound)
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case startRoundMsg:
		if m.engine == nil || m.phase == phaseDone {
			return m, nil
		}
		return m, m.beginRound()

	case countdownMsg:
		// Ticks from earlier turns stop here so only one chain runs.
		if m.phase != phasePlaying || msg.turn != m.turn {
			return m, nil
		}
		m.now = msg.at
		return m, tickCmd(m.turn, countdownInterval)

	case timeoutMsg:
		return m.handleTimeout(msg)
	}

	return m, nil
}

// handleKey processes keyboard input for the current screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, m.finish()
	}

	switch m.phase {
	case phaseSelectLevel:
		m.menu = m.menu.Update(msg)
		if selected := m.menu.Selected(); selected != nil {
			m.engine = engine.New(m.cfg.EngineOptions(selected.Level, m.rng))
			m.logger.Debug("level selected", "level", selected.Level)
			return m, m.beginRound()
		}
		return m, nil

	case phasePlaying:
		return m.handleGuess(msg)

	case phaseRoundOver:
		switch {
		case key.Matches(msg, m.keys.Again):
			return m, m.beginRound()
		case key.Matches(msg, m.keys.Rounds):
			var cmd tea.Cmd
			m.board, cmd = m.board.Update(msg)
			return m, cmd
		default:
			// Anything but y declines, as at the line prompt.
			return m, m.finish()
		}
	}

	return m, nil
}

// keyToken returns the text a key press contributes as a guess, or "" for
// keys that are not guesses (enter, arrows, alt combinations).
func keyToken(msg tea.KeyMsg) string {
	if msg.Alt {
		return ""
	}
	switch msg.Type {
	case tea.KeyRunes:
		return string(msg.Runes)
	case tea.KeySpace:
		return " "
	}
	return ""
}

// handleGuess passes a key press to the engine.
func (m Model) handleGuess(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	token := keyToken(msg)
	if token == "" {
		return m, nil
	}

	m.status, m.message = m.engine.Guess(token)
	m.logger.Debug("guess",
		"token", token,
		"status", m.status,
		"lives", m.engine.RemainingLives(),
	)

	if m.engine.IsWon() || m.engine.IsLost() {
		m.endRound()
		return m, nil
	}
	return m, m.startTurn()
}

// handleTimeout applies a timer firing if it belongs to the current turn.
func (m Model) handleTimeout(msg timeoutMsg) (tea.Model, tea.Cmd) {
	if m.phase == phaseDone {
		return m, nil
	}
	next := waitForTimeout(m.timeouts, m.done)

	if m.phase != phasePlaying || msg.turn != m.turn {
		m.logger.Debug("stale timeout dropped", "turn", msg.turn, "current", m.turn)
		return m, next
	}

	m.engine.TimedOut()
	m.roundTimeouts++
	m.status = engine.StatusIncorrect
	m.message = "Time's up! You lost one life."
	m.logger.Debug("timeout", "turn", msg.turn, "lives", m.engine.RemainingLives())

	if m.engine.IsLost() {
		m.endRound()
		return m, next
	}
	return m, tea.Batch(next, m.startTurn())
}

// beginRound resets the engine and starts the first turn.
func (m *Model) beginRound() tea.Cmd {
	m.engine.CancelTimer()
	m.engine.Reset()
	m.phase = phasePlaying
	m.message = ""
	m.roundStart = time.Now()
	m.roundTimeouts = 0
	m.won = false

	m.logger.Info("round started", "level", m.engine.Level())
	m.logger.Debug("answer chosen", "answer", m.engine.Answer())
	return m.startTurn()
}

// startTurn arms the engine timer for a new turn and restarts the countdown.
func (m *Model) startTurn() tea.Cmd {
	m.turn++
	turn := m.turn
	ch, done := m.timeouts, m.done

	// The waiter is always re-armed, so a blocked send is eventually read
	// and dropped as stale if a newer turn has started.
	m.engine.StartTimer(func() {
		select {
		case ch <- turn:
		case <-done:
		}
	})

	m.turnStart = time.Now()
	m.now = m.turnStart
	return tickCmd(turn, countdownInterval)
}

// endRound stops the timer and records the result.
func (m *Model) endRound() {
	m.engine.CancelTimer()
	m.won = m.engine.IsWon()
	m.phase = phaseRoundOver

	if m.store != nil {
		_, err := m.store.SaveRound(storage.RoundResult{
			SessionID:    m.sessionID,
			Level:        m.engine.Level().String(),
			Answer:       m.engine.Answer(),
			Won:          m.won,
			LivesLeft:    m.engine.RemainingLives(),
			WrongGuesses: m.engine.WrongGuesses() - m.roundTimeouts,
			Timeouts:     m.roundTimeouts,
			Duration:     time.Since(m.roundStart),
		})
		if err != nil {
			m.logger.Warn("could not save round", "error", err)
		}
	}
	m.board.Refresh()

	m.logger.Info("round finished",
		"won", m.won,
		"answer", m.engine.Answer(),
		"lives", m.engine.RemainingLives(),
		"timeouts", m.roundTimeouts,
	)
}

// finish ends the session, remembering the answer if a round was cut short.
func (m *Model) finish() tea.Cmd {
	if m.phase == phaseDone {
		return tea.Quit
	}
	if m.engine != nil {
		m.engine.CancelTimer()
	}
	if m.phase == phasePlaying {
		m.result.Quit = true
		m.result.Answer = m.engine.Answer()
	}
	m.result.Summary = m.board.Summary()
	m.phase = phaseDone
	close(m.done)

	m.logger.Info("session ended", "quit", m.result.Quit, "rounds", m.result.Summary.Played)
	return tea.Quit
}

// Result returns how the session ended.
func (m Model) Result() Result {
	return m.result
}

// timeLeft returns whole seconds left in the current turn.
func (m Model) timeLeft() int {
	limit := int(m.engine.TimeLimit().Seconds())
	elapsed := int(m.now.Sub(m.turnStart).Seconds())
	return max(limit-elapsed, 0)
}

// View renders the current screen.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("H A N G M A N"), m.width))
	b.WriteString("\n\n")

	switch m.phase {
	case phaseSelectLevel:
		b.WriteString(centerText("Welcome to Hangman!", m.width))
		b.WriteString("\n\n")
		b.WriteString(m.menu.View(m.width))
		b.WriteString("\n")
		b.WriteString(centerText(helpStyle.Render(m.help.ShortHelpView(m.keys.LevelHelp())), m.width))

	case phasePlaying:
		b.WriteString(m.viewPlaying())

	case phaseRoundOver:
		b.WriteString(m.viewRoundOver())

	case phaseDone:
		if m.result.Quit {
			b.WriteString(centerText("Quitting game. The answer was: "+m.result.Answer, m.width))
			b.WriteString("\n")
		}
		b.WriteString(centerText("Thanks for playing. Goodbye!", m.width))
	}

	b.WriteString("\n")
	return b.String()
}

func (m Model) viewPlaying() string {
	var b strings.Builder

	b.WriteString(block(renderGallows(m.engine.WrongGuesses(), m.engine.Lives()), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Word:  "+wordStyle.Render(spaced(m.engine.Revealed())), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("Lives remaining: %d", m.engine.RemainingLives()), m.width))
	b.WriteString("\n")

	guessed := strings.Join(m.engine.Guessed(), " ")
	if guessed == "" {
		guessed = "-"
	}
	b.WriteString(centerText("Guessed: "+guessed, m.width))
	b.WriteString("\n\n")

	left := m.timeLeft()
	countdown := fmt.Sprintf("Time left: %d seconds", left)
	if left <= 3 {
		countdown = urgentStyle.Render(countdown)
	}
	b.WriteString(centerText(countdown, m.width))
	b.WriteString("\n\n")

	if m.message != "" {
		style, ok := statusStyles[m.status]
		if !ok {
			style = hintStyle
		}
		b.WriteString(centerText(style.Render(m.message), m.width))
	}
	b.WriteString("\n\n")
	b.WriteString(centerText(helpStyle.Render(m.help.ShortHelpView(m.keys.PlayHelp())), m.width))

	return b.String()
}

func (m Model) viewRoundOver() string {
	var b strings.Builder

	b.WriteString(block(renderGallows(m.engine.WrongGuesses(), m.engine.Lives()), m.width))
	b.WriteString("\n\n")

	if m.won {
		b.WriteString(centerText(wonStyle.Render("Congratulations, you won! The word was: "+m.engine.Answer()), m.width))
	} else {
		b.WriteString(centerText(lostStyle.Render("Game Over! The word was: "+m.engine.Answer()), m.width))
	}
	b.WriteString("\n\n")

	if board := m.board.View(); board != "" {
		b.WriteString(block(board, m.width))
		b.WriteString("\n\n")
	}

	b.WriteString(centerText("Play again? (y/n)", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(helpStyle.Render(m.help.ShortHelpView(m.keys.RoundOverHelp())), m.width))

	return b.String()
}

// Run starts the Bubble Tea program and returns how the session ended.
func Run(opts Options) (Result, error) {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return Result{}, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return Result{}, nil
	}
	return m.Result(), nil
}
