package board

import "errors"

var (
	// ErrInvalidConfiguration is returned when a board cannot be built from
	// the requested dimensions and mine count.
	ErrInvalidConfiguration = errors.New("invalid board configuration")
	// ErrOutOfBounds is returned when a coordinate lies outside the grid.
	// The session is left untouched.
	ErrOutOfBounds = errors.New("position out of bounds")
)
