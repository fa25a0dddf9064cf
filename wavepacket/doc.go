// Package wavepacket builds normalized Gaussian initial conditions for
// scattering and tunneling experiments, plus the small set of observables
// needed to inspect them.
//
// A Gaussian packet centered at x0 with spatial width sigma and carrier
// wavenumber k0 is
//
//	ψ(x) = A · exp(−(x−x0)²/(2σ²)) · exp(i·k0·x)
//
// and is normalized on the grid so that Σ|ψ|²·dx = 1.
//
// Errors:
//
//   - ErrZeroNorm: attempt to normalize a state with zero (or non-finite)
//     norm, e.g. a packet created with amplitude 0.
package wavepacket
