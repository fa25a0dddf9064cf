package potential

import (
	"fmt"
	"math"
)

// HardWallHeight is the finite sentinel standing in for an infinite wall.
// Large enough to suppress leakage below solver tolerance, small enough to
// keep the Hamiltonian within double-precision linear algebra.
const HardWallHeight = 1e10

// Potential maps grid positions to potential-energy values. Implementations
// are pure: Evaluate allocates and returns a fresh slice and never mutates x.
type Potential interface {
	// Evaluate returns V(x_i) for every position in x.
	Evaluate(x []float64) []float64
	// Name returns a short human-readable description.
	Name() string
}

// InfiniteSquareWell is the particle-in-a-box potential: zero inside
// [-Width/2, Width/2], HardWallHeight outside.
//
// Analytical spectrum (atomic units, m=1): E_n = n²π²/(2·Width²), n = 1,2,...
type InfiniteSquareWell struct {
	Width float64
}

// NewInfiniteSquareWell returns an infinite well of the given width,
// centered at the origin.
func NewInfiniteSquareWell(width float64) InfiniteSquareWell {
	return InfiniteSquareWell{Width: width}
}

// Evaluate returns 0 inside the well and HardWallHeight outside.
func (p InfiniteSquareWell) Evaluate(x []float64) []float64 {
	half := p.Width / 2
	v := make([]float64, len(x))
	for i, xi := range x {
		if xi < -half || xi > half {
			v[i] = HardWallHeight
		}
	}

	return v
}

func (p InfiniteSquareWell) Name() string {
	return fmt.Sprintf("Infinite Square Well (L=%g)", p.Width)
}

// SoftWallWell approximates an infinite well with smooth quadratic walls:
// zero inside [-Width/2, Width/2], Strength·(|x|−Width/2)² outside. The
// smoothness keeps the Hamiltonian well-conditioned at the cost of some
// wavefunction penetration into the walls, so energies land slightly below
// the hard-wall spectrum of the same width.
type SoftWallWell struct {
	Width    float64
	Strength float64
}

// NewSoftWallWell returns a soft-wall well of the given width and wall
// stiffness, centered at the origin.
func NewSoftWallWell(width, strength float64) SoftWallWell {
	return SoftWallWell{Width: width, Strength: strength}
}

// Evaluate returns the quadratic wall profile.
func (p SoftWallWell) Evaluate(x []float64) []float64 {
	half := p.Width / 2
	v := make([]float64, len(x))
	for i, xi := range x {
		if d := math.Abs(xi) - half; d > 0 {
			v[i] = p.Strength * d * d
		}
	}

	return v
}

func (p SoftWallWell) Name() string {
	return fmt.Sprintf("Soft-Wall Well (L=%g, k=%g)", p.Width, p.Strength)
}

// FiniteSquareWell is zero inside [-Width/2, Width/2] and Height outside.
// Bound states leak evanescent tails into the walls; the bound spectrum
// satisfies the usual transcendental matching conditions.
type FiniteSquareWell struct {
	Width  float64
	Height float64
}

// NewFiniteSquareWell returns a finite well of the given width and wall
// height, centered at the origin.
func NewFiniteSquareWell(width, height float64) FiniteSquareWell {
	return FiniteSquareWell{Width: width, Height: height}
}

// Evaluate returns 0 inside the well and Height outside.
func (p FiniteSquareWell) Evaluate(x []float64) []float64 {
	half := p.Width / 2
	v := make([]float64, len(x))
	for i, xi := range x {
		if xi < -half || xi > half {
			v[i] = p.Height
		}
	}

	return v
}

func (p FiniteSquareWell) Name() string {
	return fmt.Sprintf("Finite Square Well (L=%g, V0=%g)", p.Width, p.Height)
}

// RectangularBarrier is zero everywhere except the interval
// [Center-Width/2, Center+Width/2], where it equals Height. The canonical
// tunneling target.
type RectangularBarrier struct {
	Height float64
	Width  float64
	Center float64
}

// NewRectangularBarrier returns a rectangular barrier with the given height,
// width, and center position.
func NewRectangularBarrier(height, width, center float64) RectangularBarrier {
	return RectangularBarrier{Height: height, Width: width, Center: center}
}

// Evaluate returns Height inside the barrier and 0 outside.
func (p RectangularBarrier) Evaluate(x []float64) []float64 {
	left := p.Center - p.Width/2
	right := p.Center + p.Width/2
	v := make([]float64, len(x))
	for i, xi := range x {
		if xi >= left && xi <= right {
			v[i] = p.Height
		}
	}

	return v
}

func (p RectangularBarrier) Name() string {
	return fmt.Sprintf("Rectangular Barrier (V0=%g, width=%g)", p.Height, p.Width)
}

// HarmonicOscillator is the parabolic potential V(x) = ½·m·ω²·x².
//
// Analytical spectrum (ħ=1): E_n = (n + ½)·ω, n = 0,1,2,...
type HarmonicOscillator struct {
	Mass  float64
	Omega float64
}

// NewHarmonicOscillator returns a harmonic oscillator for the given particle
// mass and angular frequency.
func NewHarmonicOscillator(mass, omega float64) HarmonicOscillator {
	return HarmonicOscillator{Mass: mass, Omega: omega}
}

// Evaluate returns ½·m·ω²·x².
func (p HarmonicOscillator) Evaluate(x []float64) []float64 {
	k := 0.5 * p.Mass * p.Omega * p.Omega
	v := make([]float64, len(x))
	for i, xi := range x {
		v[i] = k * xi * xi
	}

	return v
}

func (p HarmonicOscillator) Name() string {
	return fmt.Sprintf("Harmonic Oscillator (m=%g, omega=%g)", p.Mass, p.Omega)
}

// LevelSpacing returns the constant gap ΔE = ħ·ω between adjacent levels
// (ħ = 1, so the spacing equals Omega).
func (p HarmonicOscillator) LevelSpacing() float64 {
	return p.Omega
}
