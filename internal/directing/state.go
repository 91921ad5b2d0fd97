package directing

import "errors"

// ErrInvalidTransition is returned when the round state cannot change as requested.
var ErrInvalidTransition = errors.New("directing: invalid state transition")

// State is the Director's round state.
type State int

const (
	StateRunning State = iota
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
