// Package grid provides the uniform spatial discretization underlying every
// solver in qsolve, together with the finite-difference kinetic-energy
// operator.
//
// What:
//
//   - Grid wraps an evenly spaced coordinate axis [XMin, XMax] with
//     NumPoints samples; it is immutable once built and safe to share
//     read-only across any number of solvers.
//   - KineticEnergyMatrix builds the operator −ħ²/(2m)·d²/dx² using the
//     standard three-point second-derivative stencil, returned as a
//     symmetric tridiagonal band matrix.
//
// Conventions:
//
//	Atomic units (ħ = 1). The stencil yields diagonal entries 1/(m·dx²)
//	and off-diagonal entries −1/(2·m·dx²); the operator is symmetric
//	positive-definite, so the assembled Hamiltonian H = T + diag(V) has a
//	real spectrum.
//
// Complexity:
//
//   - New: O(n) to materialize the axis.
//   - KineticEnergyMatrix: O(n) band assembly.
//
// Errors:
//
//   - ErrInvalidGrid: fewer than two points, reversed/empty bounds, or
//     non-finite bounds.
//   - ErrInvalidMass: non-positive or non-finite particle mass.
package grid
