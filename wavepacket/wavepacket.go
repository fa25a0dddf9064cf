package wavepacket

import (
	"errors"
	"math"
	"math/cmplx"
)

// ErrZeroNorm indicates an attempt to normalize a zero-norm (or non-finite)
// wavefunction.
var ErrZeroNorm = errors.New("wavepacket: cannot normalize a zero-norm state")

// Gaussian returns the complex wave packet
// A·exp(−(x−x0)²/(2σ²))·exp(i·k0·x) sampled at the given positions.
// The result is not normalized; pass it through Normalize before evolving.
func Gaussian(x []float64, x0, sigma, k0, amplitude float64) []complex128 {
	psi := make([]complex128, len(x))
	twoSigmaSq := 2 * sigma * sigma
	for i, xi := range x {
		d := xi - x0
		envelope := amplitude * math.Exp(-d*d/twoSigmaSq)
		psi[i] = complex(envelope, 0) * cmplx.Exp(complex(0, k0*xi))
	}

	return psi
}

// Norm returns the discrete L2 norm sqrt(Σ|ψ|²·dx).
func Norm(psi []complex128, dx float64) float64 {
	var sum float64
	for _, c := range psi {
		sum += real(c)*real(c) + imag(c)*imag(c)
	}

	return math.Sqrt(sum * dx)
}

// Normalize returns psi scaled so that Σ|ψ|²·dx = 1. The input slice is not
// modified. Returns ErrZeroNorm when the state has zero or non-finite norm.
func Normalize(psi []complex128, dx float64) ([]complex128, error) {
	n := Norm(psi, dx)
	if n == 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return nil, ErrZeroNorm
	}

	scale := complex(1/n, 0)
	out := make([]complex128, len(psi))
	for i, c := range psi {
		out[i] = c * scale
	}

	return out, nil
}

// ProbabilityDensity returns |ψ(x_i)|² for every sample.
func ProbabilityDensity(psi []complex128) []float64 {
	rho := make([]float64, len(psi))
	for i, c := range psi {
		rho[i] = real(c)*real(c) + imag(c)*imag(c)
	}

	return rho
}

// ExpectedPosition returns ⟨x⟩ = Σ x·|ψ|²·dx / Σ|ψ|²·dx, tolerating
// unnormalized input.
func ExpectedPosition(psi []complex128, x []float64, dx float64) float64 {
	var weighted, total float64
	for i, c := range psi {
		p := real(c)*real(c) + imag(c)*imag(c)
		weighted += x[i] * p
		total += p
	}
	if total == 0 {
		return 0
	}

	return weighted / total
}
