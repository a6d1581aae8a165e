package engine

// Status is the outcome of a single Guess.
type Status int

const (
	StatusInvalid        Status = iota // not exactly one letter
	StatusAlreadyGuessed               // letter tried earlier this round
	StatusCorrect                      // letter is in the answer
	StatusIncorrect                    // letter is not in the answer, one life lost
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusInvalid:
		return "Invalid"
	case StatusAlreadyGuessed:
		return "AlreadyGuessed"
	case StatusCorrect:
		return "Correct"
	case StatusIncorrect:
		return "Incorrect"
	default:
		return "Unknown"
	}
}

// Mutated reports whether a guess with this status changed round state.
func (s Status) Mutated() bool {
	return s == StatusCorrect || s == StatusIncorrect
}
