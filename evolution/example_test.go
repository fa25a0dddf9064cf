package evolution_test

import (
	"fmt"
	"math"

	"github.com/qsolve/qsolve/evolution"
	"github.com/qsolve/qsolve/grid"
	"github.com/qsolve/qsolve/potential"
	"github.com/qsolve/qsolve/wavepacket"
)

// ExampleSolver_Evolve scatters a Gaussian packet off a rectangular barrier
// and demonstrates that the Crank–Nicolson trajectory conserves probability.
func ExampleSolver_Evolve() {
	g, err := grid.New(-10, 10, 256)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	v := potential.NewRectangularBarrier(5, 0.5, 0).Evaluate(g.X)
	psi := wavepacket.Gaussian(g.X, -4, 0.5, math.Sqrt(2*3.0), 1.0)
	psi, err = wavepacket.Normalize(psi, g.Dx)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	s, err := evolution.New(g, v, 1.0, 0.01)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	tr, err := s.Evolve(psi, 100)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	drift := math.Abs(tr.TotalProbability(tr.Steps()-1, g.Dx) - tr.TotalProbability(0, g.Dx))
	fmt.Printf("steps=%d conserved=%t\n", tr.Steps(), drift < 1e-9)
	// Output: steps=100 conserved=true
}
