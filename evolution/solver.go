package evolution

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/qsolve/qsolve/grid"
)

// Solver steps a wavefunction forward under a fixed potential using the
// Crank–Nicolson scheme. Construction assembles H = T + diag(V) on the grid,
// forms the two tridiagonal stepping matrices, and LU-factorizes the
// left-hand side once; each Step afterwards is O(n).
type Solver struct {
	grid *grid.Grid
	dt   float64

	// B = I − i·H·dt/2 (right-hand side): diagonal entries plus the single
	// constant off-diagonal value.
	bDiag []complex128
	bOff  complex128

	// LU factors of A = I + i·H·dt/2: aOff is A's constant off-diagonal,
	// lower the elimination multipliers, upper the pivots.
	aOff  complex128
	lower []complex128
	upper []complex128
}

// pivotFloor is the relative magnitude below which a pivot is treated as a
// numerical zero during factorization.
const pivotFloor = 1e-300

// New prepares a Crank–Nicolson solver for the given grid, potential
// samples, particle mass, and time step. The dominant cost — the LU
// factorization of the left-hand matrix — is paid here and reused by every
// Step and Evolve call.
func New(g *grid.Grid, potential []float64, mass, dt float64) (*Solver, error) {
	n := g.NumPoints
	if len(potential) != n {
		return nil, fmt.Errorf("%w: got %d potential values for %d points", ErrDimensionMismatch, len(potential), n)
	}
	if dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return nil, fmt.Errorf("%w: got dt=%v", ErrInvalidTimeStep, dt)
	}
	if mass <= 0 || math.IsNaN(mass) || math.IsInf(mass, 0) {
		return nil, fmt.Errorf("%w: got mass=%v", grid.ErrInvalidMass, mass)
	}

	// Hamiltonian bands (ħ=1): onsite 1/(m·dx²) + V_i, hopping −1/(2·m·dx²).
	hopping := -1.0 / (2.0 * mass * g.Dx * g.Dx)
	onsite := -2.0 * hopping

	// i·dt/2 scaling for the Cayley split.
	c := complex(0, dt/2)

	s := &Solver{
		grid:  g,
		dt:    dt,
		bDiag: make([]complex128, n),
		bOff:  -c * complex(hopping, 0),
		aOff:  c * complex(hopping, 0),
		lower: make([]complex128, n),
		upper: make([]complex128, n),
	}

	aDiag := make([]complex128, n)
	for i := 0; i < n; i++ {
		h := complex(onsite+potential[i], 0)
		aDiag[i] = 1 + c*h
		s.bDiag[i] = 1 - c*h
	}

	// Thomas (tridiagonal LU) factorization of A, done once.
	s.upper[0] = aDiag[0]
	if cmplx.Abs(s.upper[0]) < pivotFloor {
		return nil, &LinearSolveError{Pivot: 0, Mag: cmplx.Abs(s.upper[0])}
	}
	for i := 1; i < n; i++ {
		s.lower[i] = s.aOff / s.upper[i-1]
		s.upper[i] = aDiag[i] - s.lower[i]*s.aOff
		if mag := cmplx.Abs(s.upper[i]); mag < pivotFloor || math.IsNaN(mag) || math.IsInf(mag, 0) {
			return nil, &LinearSolveError{Pivot: i, Mag: mag}
		}
	}

	return s, nil
}

// Dt returns the configured time step.
func (s *Solver) Dt() float64 { return s.dt }

// Step advances psi by one time step and returns the new wavefunction.
// The input is not modified.
func (s *Solver) Step(psi []complex128) ([]complex128, error) {
	n := s.grid.NumPoints
	if len(psi) != n {
		return nil, fmt.Errorf("%w: got wavefunction of length %d for %d points", ErrDimensionMismatch, len(psi), n)
	}

	next := make([]complex128, n)
	s.stepInto(psi, next)

	return next, nil
}

// stepInto performs rhs = B·psi followed by the forward/back substitution
// through the cached LU factors, writing the result into dst.
func (s *Solver) stepInto(psi, dst []complex128) {
	n := s.grid.NumPoints

	// rhs = B·psi, computed into dst and eliminated in place.
	for i := 0; i < n; i++ {
		v := s.bDiag[i] * psi[i]
		if i > 0 {
			v += s.bOff * psi[i-1]
		}
		if i < n-1 {
			v += s.bOff * psi[i+1]
		}
		dst[i] = v
	}

	// Forward substitution: L·y = rhs.
	for i := 1; i < n; i++ {
		dst[i] -= s.lower[i] * dst[i-1]
	}
	// Back substitution: U·ψ' = y.
	dst[n-1] /= s.upper[n-1]
	for i := n - 2; i >= 0; i-- {
		dst[i] = (dst[i] - s.aOff*dst[i+1]) / s.upper[i]
	}
}

// Trajectory is a dense record of an evolution: Data[t] is the wavefunction
// at step t, with Data[0] the initial condition exactly as supplied.
type Trajectory struct {
	Data [][]complex128
	Dt   float64
}

// Steps returns the number of recorded time steps (columns).
func (tr *Trajectory) Steps() int { return len(tr.Data) }

// Points returns the number of grid samples per step.
func (tr *Trajectory) Points() int {
	if len(tr.Data) == 0 {
		return 0
	}

	return len(tr.Data[0])
}

// At returns the wavefunction at step t. The returned slice is owned by the
// trajectory; copy before mutating.
func (tr *Trajectory) At(t int) []complex128 { return tr.Data[t] }

// TotalProbability returns Σ|ψ(·,t)|²·dx at step t.
func (tr *Trajectory) TotalProbability(t int, dx float64) float64 {
	var sum float64
	for _, c := range tr.Data[t] {
		sum += real(c)*real(c) + imag(c)*imag(c)
	}

	return sum * dx
}

// Evolve applies Step numSteps-1 times, recording every intermediate state.
// The first recorded step is a copy of psiInit, unmodified — callers are
// responsible for pre-normalizing. The returned trajectory is owned by the
// caller; the solver keeps no reference to it.
func (s *Solver) Evolve(psiInit []complex128, numSteps int) (*Trajectory, error) {
	n := s.grid.NumPoints
	if len(psiInit) != n {
		return nil, fmt.Errorf("%w: got wavefunction of length %d for %d points", ErrDimensionMismatch, len(psiInit), n)
	}
	if numSteps < 1 {
		return nil, fmt.Errorf("%w: got num_steps=%d", ErrInvalidSteps, numSteps)
	}

	tr := &Trajectory{Data: make([][]complex128, numSteps), Dt: s.dt}
	tr.Data[0] = append([]complex128(nil), psiInit...)
	for t := 1; t < numSteps; t++ {
		tr.Data[t] = make([]complex128, n)
		s.stepInto(tr.Data[t-1], tr.Data[t])
	}

	return tr, nil
}
