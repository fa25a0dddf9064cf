package stationary

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates the potential array length differs from
	// the grid's point count.
	ErrDimensionMismatch = errors.New("stationary: potential length must equal grid num_points")
	// ErrBadEigenCount indicates a requested eigenvalue count outside
	// 1..numPoints-1.
	ErrBadEigenCount = errors.New("stationary: num_eigenvalues must be in 1..num_points-1")
	// ErrNotConverged indicates the eigensolver failed to converge.
	ErrNotConverged = errors.New("stationary: eigensolver failed to converge")
)

// ConvergenceError reports an eigensolver failure together with whatever
// partial eigenpairs were recovered before the failure. It unwraps to
// ErrNotConverged so callers can match with errors.Is.
type ConvergenceError struct {
	Requested int
	Partial   *Spectrum // may hold fewer than Requested pairs; may be empty
}

func (e *ConvergenceError) Error() string {
	got := 0
	if e.Partial != nil {
		got = len(e.Partial.Energies)
	}

	return fmt.Sprintf("stationary: eigensolver failed to converge (requested %d, recovered %d)", e.Requested, got)
}

func (e *ConvergenceError) Unwrap() error { return ErrNotConverged }
