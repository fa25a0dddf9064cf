package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"

	"github.com/qsolve/qsolve/grid"
	"github.com/qsolve/qsolve/potential"
)

// Scenario is the TOML-configurable description of one simulation run.
// Every field has a usable default, so both commands run without a file.
type Scenario struct {
	Grid struct {
		XMin      float64 `toml:"x_min"`
		XMax      float64 `toml:"x_max"`
		NumPoints int     `toml:"num_points"`
	} `toml:"grid"`

	Potential struct {
		Kind   string  `toml:"kind"` // well | soft-well | finite-well | harmonic | barrier
		Width  float64 `toml:"width"`
		Height float64 `toml:"height"`
		Center float64 `toml:"center"`
		Omega  float64 `toml:"omega"`
	} `toml:"potential"`

	Particle struct {
		Mass   float64 `toml:"mass"`
		Energy float64 `toml:"energy"`
	} `toml:"particle"`

	Evolution struct {
		Dt    float64 `toml:"dt"`
		Steps int     `toml:"steps"`
	} `toml:"evolution"`
}

// defaultScenario mirrors the tunneling demo of the original playground:
// a 3-energy packet against a 5-high, 0.5-wide barrier.
func defaultScenario() Scenario {
	var sc Scenario
	sc.Grid.XMin, sc.Grid.XMax, sc.Grid.NumPoints = -5, 5, 512
	sc.Potential.Kind = "barrier"
	sc.Potential.Width = 0.5
	sc.Potential.Height = 5.0
	sc.Potential.Omega = 1.0
	sc.Particle.Mass = 1.0
	sc.Particle.Energy = 3.0
	sc.Evolution.Dt = 0.01
	sc.Evolution.Steps = 1000

	return sc
}

// loadScenario reads the TOML file at path into the defaults; an empty path
// returns the defaults unchanged.
func loadScenario(path string) (Scenario, error) {
	sc := defaultScenario()
	if path == "" {
		return sc, nil
	}
	if _, err := toml.DecodeFile(path, &sc); err != nil {
		return sc, fmt.Errorf("scenario %q: %w", path, err)
	}

	return sc, nil
}

// buildGrid materializes the scenario's grid.
func (sc Scenario) buildGrid() (*grid.Grid, error) {
	return grid.New(sc.Grid.XMin, sc.Grid.XMax, sc.Grid.NumPoints)
}

// buildPotential maps the scenario's potential section onto a variant.
func (sc Scenario) buildPotential() (potential.Potential, error) {
	p := sc.Potential
	switch p.Kind {
	case "well":
		return potential.NewInfiniteSquareWell(p.Width), nil
	case "soft-well":
		return potential.NewSoftWallWell(p.Width, p.Height), nil
	case "finite-well":
		return potential.NewFiniteSquareWell(p.Width, p.Height), nil
	case "harmonic":
		return potential.NewHarmonicOscillator(sc.Particle.Mass, p.Omega), nil
	case "barrier":
		return potential.NewRectangularBarrier(p.Height, p.Width, p.Center), nil
	default:
		return nil, fmt.Errorf("unknown potential kind %q", p.Kind)
	}
}

// scenarioFlags binds the shared --config flag on a command's flag set.
func scenarioFlags(fs *pflag.FlagSet) *string {
	return fs.StringP("config", "c", "", "path to a TOML scenario file")
}
