// Package stationary solves the discretized time-independent Schrödinger
// equation H·ψ = E·ψ for the lowest-energy eigenstates.
//
// What:
//
//   - Solver assembles H = T + diag(V) from a grid's kinetic-energy operator
//     and a potential sampled on that grid, then runs a symmetric
//     eigendecomposition. The kinetic operator is built once per Solver and
//     reused across every potential sharing the same grid and mass.
//   - Spectrum holds the requested eigenpairs in ascending energy order,
//     each wavefunction normalized to Σ|ψ|²·dx = 1.
//
// Eigenvalue selection:
//
//	Eigenvalues are taken by smallest algebraic value, never by smallest
//	magnitude — magnitude selection silently drops low-lying states when the
//	spectrum sits away from zero (e.g. hard-wall sentinels shift everything
//	positive).
//
// Complexity: O(n³) for the dense symmetric decomposition; fine for the
// grid sizes (a few hundred to a few thousand points) this package targets.
//
// Errors:
//
//   - ErrDimensionMismatch: potential length differs from the grid size.
//   - ErrBadEigenCount: requested count outside 1..numPoints-1.
//   - ErrNotConverged / *ConvergenceError: the eigensolver failed; the
//     error carries whatever partial eigenpairs were obtained, and callers
//     may retry with fewer requested states.
package stationary
