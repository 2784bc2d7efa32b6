package engine

import "github.com/pkg/errors"

var (
	// ErrInvalidDimensions rejects grids narrower or shorter than one cell
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	// ErrOutOfBounds rejects coordinates outside the grid
	ErrOutOfBounds = errors.New("coordinates out of bounds")
	// ErrPatternTooLarge rejects patterns that would overhang the grid edge
	ErrPatternTooLarge = errors.New("pattern exceeds grid bounds")
)
