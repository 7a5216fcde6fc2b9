package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-state/internal/apperror"
)

// Cell is one square of the board.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellX
	CellO
)

const (
	PlayerX   = "X"
	PlayerO   = "O"
	EmptyCell = ""
)

// ParseCell - converts the textual form of a cell ("X", "O" or "") into a Cell.
func ParseCell(value string) (Cell, error) {
	switch value {
	case PlayerX:
		return CellX, nil
	case PlayerO:
		return CellO, nil
	case EmptyCell:
		return CellEmpty, nil
	default:
		return CellEmpty, fmt.Errorf("%w: %w %q", apperror.ErrInvalidBoard, apperror.ErrInvalidCell, value)
	}
}

func (that Cell) IsValid() bool {
	return that == CellEmpty || that == CellX || that == CellO
}

func (that Cell) IsEmpty() bool {
	return that == CellEmpty
}

func (that Cell) String() string {
	switch that {
	case CellX:
		return PlayerX
	case CellO:
		return PlayerO
	case CellEmpty:
		return EmptyCell
	default:
		return fmt.Sprintf("Cell(%d)", uint8(that))
	}
}
