package evolution_test

import (
	"math"
	"testing"

	"github.com/qsolve/qsolve/evolution"
	"github.com/qsolve/qsolve/grid"
	"github.com/qsolve/qsolve/potential"
	"github.com/qsolve/qsolve/wavepacket"
)

// BenchmarkNew measures the one-time factorization cost.
func BenchmarkNew(b *testing.B) {
	g, err := grid.New(-5, 5, 1024)
	if err != nil {
		b.Fatal(err)
	}
	v := potential.NewRectangularBarrier(5, 0.5, 0).Evaluate(g.X)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := evolution.New(g, v, 1.0, 0.005); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkStep measures the per-step cost after factorization; this is the
// inner loop of every trajectory.
func BenchmarkStep(b *testing.B) {
	g, err := grid.New(-5, 5, 1024)
	if err != nil {
		b.Fatal(err)
	}
	v := potential.NewRectangularBarrier(5, 0.5, 0).Evaluate(g.X)
	s, err := evolution.New(g, v, 1.0, 0.005)
	if err != nil {
		b.Fatal(err)
	}

	psi := wavepacket.Gaussian(g.X, -3, 0.4, math.Sqrt(2*3.0), 1.0)
	psi, err = wavepacket.Normalize(psi, g.Dx)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		psi, err = s.Step(psi)
		if err != nil {
			b.Fatal(err)
		}
	}
}
