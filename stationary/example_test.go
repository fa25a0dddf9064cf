package stationary_test

import (
	"fmt"

	"github.com/qsolve/qsolve/grid"
	"github.com/qsolve/qsolve/potential"
	"github.com/qsolve/qsolve/stationary"
)

// ExampleSolver_SolveEigenproblem computes the harmonic-oscillator ladder:
// energies E_n = (n + 1/2)·ω, evenly spaced by ω.
func ExampleSolver_SolveEigenproblem() {
	g, err := grid.New(-5, 5, 256)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	s, err := stationary.New(g, 1.0)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	ho := potential.NewHarmonicOscillator(1.0, 1.0)
	spec, err := s.SolveEigenproblem(ho.Evaluate(g.X), 3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for n, e := range spec.Energies {
		fmt.Printf("E_%d = %.2f\n", n, e)
	}
	// Output:
	// E_0 = 0.50
	// E_1 = 1.50
	// E_2 = 2.50
}
