package stationary

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/qsolve/qsolve/grid"
)

// Solver computes the lowest-energy eigenstates of H = T + diag(V) on a
// fixed grid for a fixed particle mass. The kinetic operator T is assembled
// once at construction; each SolveEigenproblem call is otherwise stateless,
// so one Solver may be reused across many potentials.
type Solver struct {
	grid    *grid.Grid
	mass    float64
	kinetic *mat.SymBandDense
}

// Spectrum is an ordered set of eigenpairs: Energies ascending, States[i]
// the wavefunction of Energies[i], normalized so that Σ|ψ|²·dx = 1.
type Spectrum struct {
	Energies []float64
	States   [][]complex128
}

// New builds a stationary solver for the given grid and particle mass.
// Fails with grid.ErrInvalidMass for non-positive mass.
func New(g *grid.Grid, mass float64) (*Solver, error) {
	kinetic, err := g.KineticEnergyMatrix(mass)
	if err != nil {
		return nil, err
	}

	return &Solver{grid: g, mass: mass, kinetic: kinetic}, nil
}

// SolveEigenproblem solves H·ψ = E·ψ for the numEigenvalues smallest
// (by algebraic value) energies. The potential must be sampled on the
// solver's grid. Each returned wavefunction is normalized on the grid.
//
// On eigensolver failure the returned error is a *ConvergenceError wrapping
// ErrNotConverged; retrying with fewer requested states is a valid caller
// policy.
func (s *Solver) SolveEigenproblem(potential []float64, numEigenvalues int) (*Spectrum, error) {
	n := s.grid.NumPoints
	if len(potential) != n {
		return nil, fmt.Errorf("%w: got %d values for %d points", ErrDimensionMismatch, len(potential), n)
	}
	if numEigenvalues < 1 || numEigenvalues >= n {
		return nil, fmt.Errorf("%w: got %d with num_points=%d", ErrBadEigenCount, numEigenvalues, n)
	}

	// H = T + diag(V), symmetric tridiagonal.
	h := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		h.SetSym(i, i, s.kinetic.At(i, i)+potential[i])
		if i+1 < n {
			h.SetSym(i, i+1, s.kinetic.At(i, i+1))
		}
	}

	var eig mat.EigenSym
	if !eig.Factorize(h, true) {
		return nil, &ConvergenceError{Requested: numEigenvalues, Partial: &Spectrum{}}
	}

	// EigenSym returns the full spectrum in ascending order; the first
	// numEigenvalues columns are exactly the smallest-algebraic states.
	all := eig.Values(nil)
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	spectrum := &Spectrum{
		Energies: make([]float64, numEigenvalues),
		States:   make([][]complex128, numEigenvalues),
	}
	for k := 0; k < numEigenvalues; k++ {
		spectrum.Energies[k] = all[k]
		spectrum.States[k] = s.normalizedColumn(&vecs, k)
	}

	return spectrum, nil
}

// normalizedColumn extracts eigenvector column k scaled to unit discrete
// norm on the solver's grid.
func (s *Solver) normalizedColumn(vecs *mat.Dense, k int) []complex128 {
	n := s.grid.NumPoints
	var sum float64
	for i := 0; i < n; i++ {
		v := vecs.At(i, k)
		sum += v * v
	}
	scale := 1.0 / math.Sqrt(sum*s.grid.Dx)

	psi := make([]complex128, n)
	for i := 0; i < n; i++ {
		psi[i] = complex(vecs.At(i, k)*scale, 0)
	}

	return psi
}

// ProbabilityDensity returns |ψ(x_i)|² for every sample of a wavefunction.
func ProbabilityDensity(psi []complex128) []float64 {
	rho := make([]float64, len(psi))
	for i, c := range psi {
		rho[i] = real(c)*real(c) + imag(c)*imag(c)
	}

	return rho
}
