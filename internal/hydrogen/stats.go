package hydrogen

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

// Stats summarises one orbital for sweep output.
type Stats struct {
	State      State
	Label      string
	PeakRadius float64 // radius of the outermost density maximum
	MeanRadius float64 // expectation value <r>
	Norm       float64 // integral of the density over the grid
	Nodes      int     // interior radial nodes, expected n-l-1
}

// Summarise evaluates the orbital on the grid and derives its statistics.
// The grid should span the effective support of the density; for the
// default extent use Uniform(0, IntegrationMax(n, Z), points).
func Summarise(s State, g Grid) (Stats, error) {
	wf, err := RadialWavefunction(s, g)
	if err != nil {
		return Stats{}, err
	}

	density := make([]float64, len(g))
	rWeighted := make([]float64, len(g))
	for i, r := range g {
		density[i] = r * r * wf[i] * wf[i]
		rWeighted[i] = r * density[i]
	}

	peakIdx := floats.MaxIdx(density)

	return Stats{
		State:      s,
		Label:      s.Label(),
		PeakRadius: g[peakIdx],
		MeanRadius: integrate.Simpsons(g, rWeighted),
		Norm:       integrate.Simpsons(g, density),
		Nodes:      signChanges(g, wf),
	}, nil
}

// Norm integrates the radial density over the grid. On a grid covering the
// density's support it converges to 1.
func Norm(s State, g Grid) (float64, error) {
	density, err := RadialDensity(s, g)
	if err != nil {
		return 0, err
	}
	return integrate.Simpsons(g, density), nil
}

// signChanges counts interior zero crossings of the wavefunction, skipping
// the r=0 sample where rho^l forces a zero for l > 0.
func signChanges(g Grid, wf []float64) int {
	changes := 0
	prev := 0.0
	for i, v := range wf {
		if g[i] == 0 || v == 0 {
			continue
		}
		if prev != 0 && (v > 0) != (prev > 0) {
			changes++
		}
		prev = v
	}
	return changes
}
