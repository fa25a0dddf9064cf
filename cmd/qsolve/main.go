// Command qsolve runs the 1-D Schrödinger solvers from the command line:
// stationary spectra for the canonical potentials and wave-packet tunneling
// experiments, printed as plain text for downstream plotting.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
