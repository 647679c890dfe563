package navgrid

import "errors"

var (
	// ErrEmptyGrid indicates a requested grid with no rows or no columns.
	ErrEmptyGrid = errors.New("navgrid: grid must have positive width and height")
	// ErrNilPositionFunc indicates Build was called without a position function.
	ErrNilPositionFunc = errors.New("navgrid: position function is nil")
	// ErrOutOfRange indicates a coordinate outside the grid extents.
	ErrOutOfRange = errors.New("navgrid: coordinate out of range")
)
