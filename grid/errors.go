package grid

import "errors"

var (
	// ErrInvalidGrid indicates malformed grid bounds or point count.
	ErrInvalidGrid = errors.New("grid: need num_points >= 2 and x_min < x_max with finite bounds")
	// ErrInvalidMass indicates a non-positive (or non-finite) particle mass.
	ErrInvalidMass = errors.New("grid: particle mass must be positive and finite")
)
