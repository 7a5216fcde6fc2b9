package apperror

import "errors"

var (
	ErrInvalidBoard = errors.New("invalid board")
	ErrInvalidCell  = errors.New("invalid cell value")
)
