package evolution

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates a potential or wavefunction whose
	// length differs from the grid's point count.
	ErrDimensionMismatch = errors.New("evolution: array length must equal grid num_points")
	// ErrInvalidTimeStep indicates a non-positive or non-finite dt.
	ErrInvalidTimeStep = errors.New("evolution: time step must be positive and finite")
	// ErrInvalidSteps indicates a non-positive requested trajectory length.
	ErrInvalidSteps = errors.New("evolution: num_steps must be positive")
	// ErrSingularSystem indicates the Crank–Nicolson system matrix is
	// singular or ill-conditioned.
	ErrSingularSystem = errors.New("evolution: singular Crank-Nicolson system matrix")
)

// LinearSolveError reports where the tridiagonal factorization broke down.
// It unwraps to ErrSingularSystem for errors.Is matching.
type LinearSolveError struct {
	Pivot int     // index of the collapsed pivot
	Mag   float64 // magnitude of the pivot at failure
}

func (e *LinearSolveError) Error() string {
	return fmt.Sprintf("evolution: singular Crank-Nicolson system matrix (pivot %d, |u|=%g)", e.Pivot, e.Mag)
}

func (e *LinearSolveError) Unwrap() error { return ErrSingularSystem }
