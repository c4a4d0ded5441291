package board

import "errors"

var (
	// ErrOutOfRange indicates a grid coordinate outside the board.
	ErrOutOfRange = errors.New("board: coordinate out of range")
	// ErrInvalidConfiguration indicates an unusable palette, type set or board size.
	ErrInvalidConfiguration = errors.New("board: invalid configuration")
)
