package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/qsolve/qsolve/evolution"
	"github.com/qsolve/qsolve/transmission"
	"github.com/qsolve/qsolve/wavepacket"
)

// tunnelCmd fires a Gaussian packet at the scenario's barrier, evolves it
// with Crank-Nicolson stepping, and reports numerical vs WKB transmission.
func tunnelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tunnel",
		Short: "Run a wave-packet tunneling experiment",
	}
	cfgPath := scenarioFlags(cmd.Flags())
	sigma := cmd.Flags().Float64("sigma", 0.3, "initial packet width")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		sc, err := loadScenario(*cfgPath)
		if err != nil {
			return err
		}

		g, err := sc.buildGrid()
		if err != nil {
			return err
		}
		pot, err := sc.buildPotential()
		if err != nil {
			return err
		}
		v := pot.Evaluate(g.X)

		// Launch from the left edge with momentum matching the requested
		// kinetic energy: k0 = sqrt(2·m·E).
		x0 := g.XMin + 1.5
		k0 := math.Sqrt(2 * sc.Particle.Mass * sc.Particle.Energy)
		psi := wavepacket.Gaussian(g.X, x0, *sigma, k0, 1.0)
		psi, err = wavepacket.Normalize(psi, g.Dx)
		if err != nil {
			return err
		}

		log.WithFields(map[string]interface{}{
			"potential": pot.Name(),
			"energy":    sc.Particle.Energy,
			"k0":        k0,
			"steps":     sc.Evolution.Steps,
			"dt":        sc.Evolution.Dt,
		}).Info("evolving wave packet")

		solver, err := evolution.New(g, v, sc.Particle.Mass, sc.Evolution.Dt)
		if err != nil {
			return err
		}
		tr, err := solver.Evolve(psi, sc.Evolution.Steps)
		if err != nil {
			return err
		}

		barrier := transmission.Barrier{Center: sc.Potential.Center, Width: sc.Potential.Width}
		rep, err := transmission.Analyze(tr, g.X, g.Dx, barrier)
		if err != nil {
			return err
		}
		wkb := transmission.WKBEstimate(sc.Particle.Energy, v, g.X, sc.Particle.Mass)

		drift := math.Abs(tr.TotalProbability(tr.Steps()-1, g.Dx) - rep.Initial)
		log.WithField("drift", drift).Debug("probability conservation check")

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, pot.Name())
		fmt.Fprintf(out, "T (numerical) = %.4f\n", rep.T)
		fmt.Fprintf(out, "R (numerical) = %.4f\n", rep.R)
		fmt.Fprintf(out, "T (WKB)       = %.4f\n", wkb)
		fmt.Fprintf(out, "left/inside/right mass = %.4f / %.4f / %.4f\n",
			rep.Reflected, rep.Inside, rep.Transmitted)

		return nil
	}

	return cmd
}
