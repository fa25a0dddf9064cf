package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qsolve/qsolve/stationary"
)

// eigenCmd solves the time-independent equation for the scenario's potential
// and prints the lowest energy levels.
func eigenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eigen",
		Short: "Solve for the lowest stationary states",
	}
	cfgPath := scenarioFlags(cmd.Flags())
	states := cmd.Flags().IntP("states", "n", 5, "number of eigenstates to compute")

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

		log.WithFields(map[string]interface{}{
			"potential": pot.Name(),
			"points":    g.NumPoints,
			"states":    *states,
		}).Info("solving eigenproblem")

		solver, err := stationary.New(g, sc.Particle.Mass)
		if err != nil {
			return err
		}

		spec, err := solver.SolveEigenproblem(pot.Evaluate(g.X), *states)
		if err != nil {
			var conv *stationary.ConvergenceError
			if errors.As(err, &conv) && conv.Partial != nil && len(conv.Partial.Energies) > 0 {
				log.WithError(err).Warn("eigensolver did not fully converge; printing partial spectrum")
				spec = conv.Partial
			} else {
				return err
			}
		}

		fmt.Fprintln(cmd.OutOrStdout(), pot.Name())
		for n, e := range spec.Energies {
			fmt.Fprintf(cmd.OutOrStdout(), "E_%d = %.6f\n", n, e)
		}

		return nil
	}

	return cmd
}
