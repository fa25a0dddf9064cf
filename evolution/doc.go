// Package evolution advances a wavefunction under a fixed potential with the
// Crank–Nicolson scheme:
//
//	(I + i·H·dt/2)·ψ(t+dt) = (I − i·H·dt/2)·ψ(t)
//
// The propagator is a Cayley transform of the Hermitian H, so it is unitary:
// total probability Σ|ψ|²·dx is conserved to machine precision for any dt,
// unlike explicit schemes whose stability ties dt to dx².
//
// Prepared-solver design:
//
//	New assembles both tridiagonal stepping matrices and LU-factorizes the
//	left-hand side exactly once. Step and Evolve then cost O(n) per time
//	step — forward/back substitution through the cached factors — which is
//	what makes long trajectories cheap. A Solver holds no mutable state
//	after construction: Step and Evolve are pure in the supplied
//	wavefunction and safe to call repeatedly.
//
// Errors:
//
//   - ErrDimensionMismatch: potential or wavefunction length differs from
//     the grid size.
//   - ErrInvalidTimeStep: dt is zero, negative, or non-finite.
//   - ErrInvalidSteps: non-positive trajectory length.
//   - ErrSingularSystem / *LinearSolveError: the stepping matrix is
//     singular or ill-conditioned; fatal for the configuration — the
//     matrices are deterministic in (grid, potential, mass, dt), so a
//     retry cannot succeed.
package evolution
