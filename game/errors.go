package game

import "errors"

var (
	// ErrOutOfRange is returned for square numbers or coordinates off the board
	ErrOutOfRange = errors.New("square out of range")
	// ErrInvalidCell is returned when a side/charge pair breaks the cell invariants
	ErrInvalidCell = errors.New("invalid cell")
	// ErrUnknownSide is returned by ParseSide
	ErrUnknownSide = errors.New("unknown side")
)
