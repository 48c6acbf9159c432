package shape

import "errors"

var (
	// ErrDegenerateGeometry is returned when a combine operand has no area.
	ErrDegenerateGeometry = errors.New("shape: degenerate geometry")

	// ErrInvalidGeometry is returned for non-finite primitive arguments.
	ErrInvalidGeometry = errors.New("shape: invalid geometry")
)
