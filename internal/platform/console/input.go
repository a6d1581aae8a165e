package console

import (
	"bufio"
	"io"
	"strings"
)

// Control bytes that end a session from a raw terminal.
const (
	keyCtrlC = 0x03
	keyEsc   = 0x1b
)

// token is one unit of player input: a keystroke on a raw terminal or a
// trimmed line otherwise.
type token struct {
	text string
	quit bool  // ctrl+c or esc
	err  error // input ended
}

// isQuit reports whether the token ends the session.
func (t token) isQuit() bool {
	return t.quit || t.err != nil || strings.EqualFold(strings.TrimSpace(t.text), "quit")
}

// readKeys sends each rune read from r as a token. Enter arrives as an
// empty token.
func readKeys(r io.Reader, out chan<- token, done <-chan struct{}) {
	br := bufio.NewReader(r)
	for {
		ch, _, err := br.ReadRune()
		var tok token
		switch {
		case err != nil:
			tok = token{err: err}
		case ch == keyCtrlC || ch == keyEsc:
			tok = token{quit: true}
		case ch == '\r' || ch == '\n':
			tok = token{}
		default:
			tok = token{text: string(ch)}
		}

		select {
		case out <- tok:
		case <-done:
			return
		}
		if err != nil {
			return
		}
	}
}

// readLines sends each trimmed line read from r as a token.
func readLines(r io.Reader, out chan<- token, done <-chan struct{}) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		select {
		case out <- token{text: strings.TrimSpace(scanner.Text())}:
		case <-done:
			return
		}
	}

	err := scanner.Err()
	if err == nil {
		err = io.EOF
	}
	select {
	case out <- token{err: err}:
	case <-done:
	}
}
