package entity

import "fmt"

// GameState is the classification of a board.
type GameState uint8

const (
	StateAwaitingFirstMove GameState = iota
	StateTurnO
	StateTurnX
	StateWinX
	StateWinO
	StateTie
)

const (
	LabelXToPlay = "X to play"
	LabelOToPlay = "O to play"
	LabelXWins   = "X wins"
	LabelOWins   = "O wins"
	LabelTie     = "It is a tie"
)

var stateNames = map[GameState]string{
	StateAwaitingFirstMove: "awaiting_first_move",
	StateTurnO:             "turn_o",
	StateTurnX:             "turn_x",
	StateWinX:              "win_x",
	StateWinO:              "win_o",
	StateTie:               "tie",
}

// Label - returns the human-readable message for the state.
// An empty board and a board with equal marks both read "X to play".
func (that GameState) Label() string {
	switch that {
	case StateAwaitingFirstMove, StateTurnX:
		return LabelXToPlay
	case StateTurnO:
		return LabelOToPlay
	case StateWinX:
		return LabelXWins
	case StateWinO:
		return LabelOWins
	case StateTie:
		return LabelTie
	default:
		return ""
	}
}

func (that GameState) String() string {
	if name, ok := stateNames[that]; ok {
		return name
	}

	return fmt.Sprintf("GameState(%d)", uint8(that))
}

func (that GameState) IsFinished() bool {
	return that == StateWinX || that == StateWinO || that == StateTie
}

func (that GameState) MarshalText() ([]byte, error) {
	name, ok := stateNames[that]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownGameState, uint8(that))
	}

	return []byte(name), nil
}

func (that *GameState) UnmarshalText(text []byte) error {
	for state, name := range stateNames {
		if name == string(text) {
			*that = state
			return nil
		}
	}

	return fmt.Errorf("%w: %q", ErrUnknownGameState, string(text))
}
