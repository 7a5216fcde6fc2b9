package entity

import "errors"

var ErrUnknownGameState = errors.New("unknown game state")

// Evaluation is the outcome of classifying one board.
type Evaluation struct {
	Board [BoardSize]string `json:"board"`
	State GameState         `json:"state"`
	Label string            `json:"label"`
	Line  *Line             `json:"line,omitempty"`
}

func NewEvaluation(board Board, state GameState) *Evaluation {
	return &Evaluation{
		Board: board.Strings(),
		State: state,
		Label: state.Label(),
	}
}
