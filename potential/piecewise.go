package potential

import "sort"

// Region is one constant-valued interval of a Piecewise potential.
type Region struct {
	Left  float64
	Right float64
	Value float64
}

// Piecewise is a general piecewise-constant potential combining several
// regions. Positions outside every region evaluate to zero; later regions
// overwrite earlier ones where they overlap, matching the order after
// sorting by left edge.
type Piecewise struct {
	Regions []Region
}

// NewPiecewise returns a piecewise potential over the given regions, sorted
// by left edge. The input slice is not retained.
func NewPiecewise(regions []Region) Piecewise {
	sorted := make([]Region, len(regions))
	copy(sorted, regions)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Left < sorted[j].Left })

	return Piecewise{Regions: sorted}
}

// Evaluate applies each region's value to the positions it covers.
func (p Piecewise) Evaluate(x []float64) []float64 {
	v := make([]float64, len(x))
	for _, r := range p.Regions {
		for i, xi := range x {
			if xi >= r.Left && xi <= r.Right {
				v[i] = r.Value
			}
		}
	}

	return v
}

func (p Piecewise) Name() string {
	return "Piecewise Potential"
}

// ForbiddenRegion returns the bounds of the classically forbidden region
// where V(x) > E, i.e. the span from the first to the last forbidden sample.
// ok is false when the particle energy exceeds the potential everywhere.
func ForbiddenRegion(energy float64, v, x []float64) (left, right float64, ok bool) {
	first, last := -1, -1
	for i := range v {
		if v[i] > energy {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first < 0 {
		return 0, 0, false
	}

	return x[first], x[last], true
}
