package wavepacket_test

import (
	"fmt"

	"github.com/qsolve/qsolve/grid"
	"github.com/qsolve/qsolve/wavepacket"
)

// ExampleNormalize builds a packet with an arbitrary amplitude and scales it
// to unit probability.
func ExampleNormalize() {
	g, err := grid.New(-10, 10, 500)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	psi := wavepacket.Gaussian(g.X, 0, 1.0, 2.0, 42.0)
	psi, err = wavepacket.Normalize(psi, g.Dx)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("norm = %.6f\n", wavepacket.Norm(psi, g.Dx))
	// Output: norm = 1.000000
}
