package evolution_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qsolve/qsolve/evolution"
	"github.com/qsolve/qsolve/grid"
	"github.com/qsolve/qsolve/potential"
	"github.com/qsolve/qsolve/wavepacket"
)

// newScatteringSetup builds a normalized packet aimed at a barrier, the
// standard fixture for evolution tests.
func newScatteringSetup(t *testing.T) (*grid.Grid, []float64, []complex128) {
	t.Helper()

	g, err := grid.New(-5, 5, 256)
	require.NoError(t, err)

	v := potential.NewRectangularBarrier(5.0, 0.5, 0).Evaluate(g.X)

	psi := wavepacket.Gaussian(g.X, -3.0, 0.4, math.Sqrt(2*3.0), 1.0)
	psi, err = wavepacket.Normalize(psi, g.Dx)
	require.NoError(t, err)

	return g, v, psi
}

// TestNew_Validation covers constructor failure paths.
func TestNew_Validation(t *testing.T) {
	g, _, _ := newScatteringSetup(t)

	_, err := evolution.New(g, make([]float64, g.NumPoints-1), 1.0, 0.01)
	assert.ErrorIs(t, err, evolution.ErrDimensionMismatch)

	v := make([]float64, g.NumPoints)
	for _, dt := range []float64{0, -0.01, math.NaN(), math.Inf(1)} {
		_, err := evolution.New(g, v, 1.0, dt)
		assert.ErrorIs(t, err, evolution.ErrInvalidTimeStep, "dt=%v", dt)
	}

	_, err = evolution.New(g, v, -1.0, 0.01)
	assert.ErrorIs(t, err, grid.ErrInvalidMass)
}

// TestStep_And_Evolve_Validation covers stepping failure paths.
func TestStep_And_Evolve_Validation(t *testing.T) {
	g, v, psi := newScatteringSetup(t)

	s, err := evolution.New(g, v, 1.0, 0.01)
	require.NoError(t, err)

	_, err = s.Step(psi[:len(psi)-1])
	assert.ErrorIs(t, err, evolution.ErrDimensionMismatch)

	_, err = s.Evolve(psi[:len(psi)-1], 10)
	assert.ErrorIs(t, err, evolution.ErrDimensionMismatch)

	_, err = s.Evolve(psi, 0)
	assert.ErrorIs(t, err, evolution.ErrInvalidSteps)
	_, err = s.Evolve(psi, -3)
	assert.ErrorIs(t, err, evolution.ErrInvalidSteps)
}

// TestEvolve_InitialColumn verifies step 0 is the supplied state, unmodified
// and copied.
func TestEvolve_InitialColumn(t *testing.T) {
	g, v, psi := newScatteringSetup(t)

	s, err := evolution.New(g, v, 1.0, 0.01)
	require.NoError(t, err)

	tr, err := s.Evolve(psi, 5)
	require.NoError(t, err)
	require.Equal(t, 5, tr.Steps())
	require.Equal(t, g.NumPoints, tr.Points())

	assert.Equal(t, psi, tr.At(0), "column 0 must equal psi_init")

	// The trajectory owns its storage: mutating it must not touch psi.
	tr.At(0)[0] = complex(99, 0)
	assert.NotEqual(t, complex(99, 0), psi[0])
}

// TestEvolve_ConservesProbability checks unitarity of the Crank–Nicolson
// propagator across a full scattering run.
func TestEvolve_ConservesProbability(t *testing.T) {
	g, v, psi := newScatteringSetup(t)

	s, err := evolution.New(g, v, 1.0, 0.005)
	require.NoError(t, err)

	tr, err := s.Evolve(psi, 400)
	require.NoError(t, err)

	initial := tr.TotalProbability(0, g.Dx)
	require.InDelta(t, 1.0, initial, 1e-9, "fixture packet is normalized")
	for step := 1; step < tr.Steps(); step++ {
		assert.InDelta(t, initial, tr.TotalProbability(step, g.Dx), 1e-6,
			"probability at step %d", step)
	}
}

// TestStep_MatchesEvolve verifies that repeated Step calls reproduce Evolve.
func TestStep_MatchesEvolve(t *testing.T) {
	g, v, psi := newScatteringSetup(t)

	s, err := evolution.New(g, v, 1.0, 0.01)
	require.NoError(t, err)

	tr, err := s.Evolve(psi, 4)
	require.NoError(t, err)

	cur := psi
	for step := 1; step < 4; step++ {
		cur, err = s.Step(cur)
		require.NoError(t, err)
		want := tr.At(step)
		for i := range cur {
			assert.InDelta(t, real(want[i]), real(cur[i]), 1e-12)
			assert.InDelta(t, imag(want[i]), imag(cur[i]), 1e-12)
		}
	}
}

// TestEvolve_PacketPropagates verifies that a right-moving free packet
// actually moves right at roughly its group velocity k0/m.
func TestEvolve_PacketPropagates(t *testing.T) {
	g, err := grid.New(-20, 20, 512)
	require.NoError(t, err)

	free := make([]float64, g.NumPoints)
	const k0 = 2.0
	psi := wavepacket.Gaussian(g.X, -5, 1.0, k0, 1.0)
	psi, err = wavepacket.Normalize(psi, g.Dx)
	require.NoError(t, err)

	const dt = 0.01
	s, err := evolution.New(g, free, 1.0, dt)
	require.NoError(t, err)

	const steps = 200
	tr, err := s.Evolve(psi, steps)
	require.NoError(t, err)

	x0 := wavepacket.ExpectedPosition(tr.At(0), g.X, g.Dx)
	x1 := wavepacket.ExpectedPosition(tr.At(steps-1), g.X, g.Dx)
	elapsed := dt * float64(steps-1)
	assert.InDelta(t, k0*elapsed, x1-x0, 0.25, "displacement ≈ group velocity × time")
}

// TestEvolve_StableForLargeTimeStep documents unconditional stability: even
// an absurdly large dt keeps the norm bounded (the result is inaccurate,
// never divergent).
func TestEvolve_StableForLargeTimeStep(t *testing.T) {
	g, v, psi := newScatteringSetup(t)

	s, err := evolution.New(g, v, 1.0, 10.0)
	require.NoError(t, err)

	tr, err := s.Evolve(psi, 50)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, tr.TotalProbability(tr.Steps()-1, g.Dx), 1e-6)
}
