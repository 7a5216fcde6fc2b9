package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-state/internal/entity"
)

// Evaluator classifies boards. The zero value is ready to use.
type Evaluator struct{}

func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

func (that *Evaluator) Evaluate(board entity.Board) (entity.GameState, error) {
	return Evaluate(board)
}

func (that *Evaluator) Winner(board entity.Board) (entity.Cell, entity.Line, bool) {
	return Winner(board)
}

// Evaluate - classifies the board. A win takes precedence over a tie, and a tie over the turn.
func Evaluate(board entity.Board) (entity.GameState, error) {
	if err := board.Validate(); err != nil {
		return entity.StateAwaitingFirstMove, fmt.Errorf("cannot evaluate: %w", err)
	}

	if winner, _, ok := Winner(board); ok {
		if winner == entity.CellX {
			return entity.StateWinX, nil
		}
		return entity.StateWinO, nil
	}

	// no winner and no empty square left
	if board.IsFull() {
		return entity.StateTie, nil
	}

	if board.IsEmpty() {
		return entity.StateAwaitingFirstMove, nil
	}

	return nextTurn(board), nil
}

// Winner - returns the mark and line of the first complete line in scan order.
func Winner(board entity.Board) (entity.Cell, entity.Line, bool) {
	for _, line := range entity.WinLines {
		a, b, c := board[line[0]], board[line[1]], board[line[2]]
		if !a.IsEmpty() && a == b && b == c {
			return a, line, true
		}
	}

	return entity.CellEmpty, entity.Line{}, false
}

// nextTurn assumes alternating play with X first.
func nextTurn(board entity.Board) entity.GameState {
	if board.Count(entity.CellX) > board.Count(entity.CellO) {
		return entity.StateTurnO
	}

	return entity.StateTurnX
}
