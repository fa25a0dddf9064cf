package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "qsolve",
	Short: "Finite-difference solvers for the 1-D Schrödinger equation",
	Long: `qsolve numerically solves the one-dimensional Schrödinger equation
on a uniform grid: stationary spectra (eigen) and Crank-Nicolson wave-packet
dynamics with tunneling analysis (tunnel). Atomic units throughout (hbar=1).`,
	SilenceUsage: true,
}

func init() {
	verbose := rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	cobra.OnInitialize(func() {
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: false})
		if *verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	})

	rootCmd.AddCommand(eigenCmd())
	rootCmd.AddCommand(tunnelCmd())
}
