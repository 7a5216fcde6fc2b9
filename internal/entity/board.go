package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-state/internal/apperror"
)

const BoardSize = 9

// Board is a 3x3 snapshot in row-major order.
type Board [BoardSize]Cell

// Line is an index triple that wins the game when all three cells hold the same mark.
type Line [3]int

// WinLines are scanned in this order; the first complete line decides the winner.
var WinLines = [...]Line{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// NewBoard - builds a board from exactly nine valid cells.
func NewBoard(cells []Cell) (Board, error) {
	var board Board

	if len(cells) != BoardSize {
		return board, fmt.Errorf("%w: expected %d cells, got %d", apperror.ErrInvalidBoard, BoardSize, len(cells))
	}

	for i, cell := range cells {
		if !cell.IsValid() {
			return Board{}, fmt.Errorf("%w: cell %d: %w %d", apperror.ErrInvalidBoard, i, apperror.ErrInvalidCell, uint8(cell))
		}
		board[i] = cell
	}

	return board, nil
}

// ParseBoard - builds a board from the textual cells "X", "O" and "".
func ParseBoard(cells []string) (Board, error) {
	var board Board

	if len(cells) != BoardSize {
		return board, fmt.Errorf("%w: expected %d cells, got %d", apperror.ErrInvalidBoard, BoardSize, len(cells))
	}

	for i, value := range cells {
		cell, err := ParseCell(value)
		if err != nil {
			return Board{}, fmt.Errorf("cell %d: %w", i, err)
		}
		board[i] = cell
	}

	return board, nil
}

func (that Board) Count(cell Cell) int {
	count := 0
	for _, c := range that {
		if c == cell {
			count++
		}
	}

	return count
}

func (that Board) IsEmpty() bool {
	return that.Count(CellEmpty) == BoardSize
}

func (that Board) IsFull() bool {
	return that.Count(CellEmpty) == 0
}

// Validate - reports the first cell holding a value outside Empty, X and O.
func (that Board) Validate() error {
	for i, cell := range that {
		if !cell.IsValid() {
			return fmt.Errorf("%w: cell %d: %w %d", apperror.ErrInvalidBoard, i, apperror.ErrInvalidCell, uint8(cell))
		}
	}

	return nil
}

func (that Board) Strings() [BoardSize]string {
	var cells [BoardSize]string
	for i, cell := range that {
		cells[i] = cell.String()
	}

	return cells
}
