package sizing

import "errors"

var (
	// ErrInvalidInput indicates a non-positive wattage, length, safety factor
	// or ceiling, a negative tolerance, an unknown condition or topology, or a
	// nil catalog.
	ErrInvalidInput = errors.New("sizing: invalid input")

	// ErrDegenerateGeometry indicates an effective resistance that is zero,
	// negative or non-finite.
	ErrDegenerateGeometry = errors.New("sizing: degenerate geometry")
)
