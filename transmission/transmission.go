package transmission

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate"

	"github.com/qsolve/qsolve/evolution"
)

var (
	// ErrEmptyTrajectory indicates a trajectory with no recorded steps.
	ErrEmptyTrajectory = errors.New("transmission: trajectory holds no steps")
	// ErrDimensionMismatch indicates the grid axis and trajectory disagree
	// on the number of samples.
	ErrDimensionMismatch = errors.New("transmission: axis length must match trajectory points")
	// ErrZeroInitialMass indicates the trajectory's initial state carries no
	// probability, so coefficients are undefined.
	ErrZeroInitialMass = errors.New("transmission: initial state has zero probability mass")
)

// Barrier is the geometry of the scattering target: a centered interval of
// the given width.
type Barrier struct {
	Center float64
	Width  float64
}

// Report carries the outcome of a numerical transmission analysis.
// Transmitted, Reflected, and Inside are raw probability masses integrated
// over the corresponding regions of the final state; Initial is the total
// mass of the first recorded state. T and R are the normalized coefficients
// with R defined as 1 − T, so that losses into the barrier region count
// against transmission.
type Report struct {
	T, R        float64
	Transmitted float64
	Reflected   float64
	Inside      float64
	Initial     float64
}

// Analyze estimates transmission and reflection from the final state of a
// trajectory, given the grid axis and the barrier geometry.
func Analyze(tr *evolution.Trajectory, x []float64, dx float64, barrier Barrier) (*Report, error) {
	if tr == nil || tr.Steps() == 0 {
		return nil, ErrEmptyTrajectory
	}
	if len(x) != tr.Points() {
		return nil, fmt.Errorf("%w: axis=%d trajectory=%d", ErrDimensionMismatch, len(x), tr.Points())
	}

	// Locate the barrier on the grid: nearest sample to the center, then
	// half the width in samples to each side.
	centerIdx := nearestIndex(x, barrier.Center)
	halfWidthIdx := int(barrier.Width / (2 * dx))
	left := max(0, centerIdx-halfWidthIdx)
	right := min(len(x), centerIdx+halfWidthIdx)

	final := tr.At(tr.Steps() - 1)
	var reflected, inside, transmitted float64
	for i, c := range final {
		p := (real(c)*real(c) + imag(c)*imag(c)) * dx
		switch {
		case i < left:
			reflected += p
		case i < right:
			inside += p
		default:
			transmitted += p
		}
	}

	initial := tr.TotalProbability(0, dx)
	if initial == 0 {
		return nil, ErrZeroInitialMass
	}

	t := clamp01(transmitted / initial)

	return &Report{
		T:           t,
		R:           1 - t,
		Transmitted: transmitted,
		Reflected:   reflected,
		Inside:      inside,
		Initial:     initial,
	}, nil
}

// WKBEstimate returns the semiclassical tunneling probability
// T ≈ exp(−2κ), κ = ∫ √(2·mass·max(0, V−E)) dx over the classically
// forbidden region. Returns exactly 1.0 when no forbidden region exists.
func WKBEstimate(energy float64, v, x []float64, mass float64) float64 {
	integrand := make([]float64, len(v))
	forbidden := false
	for i := range v {
		if v[i] > energy {
			integrand[i] = math.Sqrt(2 * mass * (v[i] - energy))
			forbidden = true
		}
	}
	if !forbidden {
		return 1.0
	}

	kappa := integrate.Trapezoidal(x, integrand)

	return clamp01(math.Exp(-2 * kappa))
}

// nearestIndex returns the index of the sample closest to target; x must be
// sorted ascending (grid axes always are).
func nearestIndex(x []float64, target float64) int {
	best := 0
	bestDist := math.Abs(x[0] - target)
	for i := 1; i < len(x); i++ {
		if d := math.Abs(x[i] - target); d < bestDist {
			best, bestDist = i, d
		}
	}

	return best
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
