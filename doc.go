// Package qsolve is a finite-difference toolbox for the one-dimensional
// Schrödinger equation — stationary spectra, wave-packet dynamics, and
// tunneling analysis on uniform spatial grids.
//
// What:
//
//   - grid/         — uniform spatial discretization and the three-point
//     kinetic-energy operator −ħ²/(2m)·d²/dx².
//   - potential/    — canonical potential-energy profiles: infinite and
//     finite square wells, rectangular barriers, harmonic oscillators,
//     and arbitrary piecewise-constant landscapes.
//   - stationary/   — lowest-energy eigenstates of H = T + V via symmetric
//     eigendecomposition, with grid-normalized wavefunctions.
//   - evolution/    — Crank–Nicolson time stepping: implicit, unconditionally
//     stable, and unitary, with a one-time factorization of the stepping
//     matrix reused across the whole trajectory.
//   - wavepacket/   — normalized Gaussian initial conditions and simple
//     observables for scattering experiments.
//   - transmission/ — transmission/reflection coefficients, both numerical
//     (from an evolved trajectory) and semiclassical (WKB).
//
// Why:
//
//   - Teaching and exploration: reproduce textbook spectra (particle in a
//     box, harmonic ladder) and watch wave packets tunnel through barriers.
//   - A small numeric core with a plain-slice API: callers render, serve,
//     or animate the resulting arrays however they like.
//
// Conventions:
//
//	Atomic units everywhere (ħ = 1); mass is the only free scale parameter.
//	Wavefunctions are discretely normalized: Σ|ψ|²·dx = 1.
//
// See each subpackage's doc.go for contracts, errors, and complexity notes.
package qsolve
