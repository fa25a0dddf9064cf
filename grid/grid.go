package grid

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Grid is an immutable uniform spatial discretization of [XMin, XMax].
// X holds the NumPoints sample coordinates in strictly increasing order;
// Dx is the constant spacing (XMax-XMin)/(NumPoints-1).
type Grid struct {
	XMin, XMax float64
	NumPoints  int
	X          []float64
	Dx         float64
}

// New builds a uniform grid over [xMin, xMax] with numPoints samples.
// Returns ErrInvalidGrid when numPoints < 2, xMin >= xMax, or a bound is
// NaN/Inf.
func New(xMin, xMax float64, numPoints int) (*Grid, error) {
	if numPoints < 2 {
		return nil, fmt.Errorf("%w: got num_points=%d", ErrInvalidGrid, numPoints)
	}
	if math.IsNaN(xMin) || math.IsInf(xMin, 0) || math.IsNaN(xMax) || math.IsInf(xMax, 0) || xMin >= xMax {
		return nil, fmt.Errorf("%w: got bounds [%v, %v]", ErrInvalidGrid, xMin, xMax)
	}

	x := make([]float64, numPoints)
	floats.Span(x, xMin, xMax)

	return &Grid{
		XMin:      xMin,
		XMax:      xMax,
		NumPoints: numPoints,
		X:         x,
		Dx:        (xMax - xMin) / float64(numPoints-1),
	}, nil
}

// KineticEnergyMatrix builds −ħ²/(2m)·d²/dx² discretized by the three-point
// stencil [1, −2, 1]/dx², as a symmetric tridiagonal band matrix:
// diagonal 1/(m·dx²), super/sub-diagonal −1/(2·m·dx²), with ħ = 1.
// Returns ErrInvalidMass when mass <= 0 or is NaN/Inf.
func (g *Grid) KineticEnergyMatrix(mass float64) (*mat.SymBandDense, error) {
	if mass <= 0 || math.IsNaN(mass) || math.IsInf(mass, 0) {
		return nil, fmt.Errorf("%w: got mass=%v", ErrInvalidMass, mass)
	}

	// hbar²/(2m) = 1/(2m) in atomic units.
	hopping := -1.0 / (2.0 * mass * g.Dx * g.Dx)
	onsite := -2.0 * hopping

	// SymBandDense with bandwidth 1 stores, per row, the diagonal entry
	// followed by the single superdiagonal entry.
	data := make([]float64, g.NumPoints*2)
	for i := 0; i < g.NumPoints; i++ {
		data[2*i] = onsite
		if i < g.NumPoints-1 {
			data[2*i+1] = hopping
		}
	}

	return mat.NewSymBandDense(g.NumPoints, 1, data), nil
}
