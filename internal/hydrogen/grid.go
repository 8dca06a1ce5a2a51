package hydrogen

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Grid is an ordered set of radial sample points, r >= 0 and non-decreasing.
type Grid []float64

// Uniform returns points evenly spaced over [min, max].
func Uniform(min, max float64, points int) (Grid, error) {
	if points < 2 {
		return nil, fmt.Errorf("grid needs at least 2 points, got %d", points)
	}
	if min < 0 || max <= min {
		return nil, fmt.Errorf("grid bounds must satisfy 0 <= min < max, got [%g, %g]", min, max)
	}
	g := make(Grid, points)
	floats.Span(g, min, max)
	return g, nil
}

// Logarithmic returns points spaced evenly in log(r) over [min, max].
// min must be positive.
func Logarithmic(min, max float64, points int) (Grid, error) {
	if points < 2 {
		return nil, fmt.Errorf("grid needs at least 2 points, got %d", points)
	}
	if min <= 0 || max <= min {
		return nil, fmt.Errorf("log grid bounds must satisfy 0 < min < max, got [%g, %g]", min, max)
	}
	g := make(Grid, points)
	floats.Span(g, math.Log(min), math.Log(max))
	for i, v := range g {
		g[i] = math.Exp(v)
	}
	return g, nil
}

// Validate checks the grid is non-empty, non-negative and non-decreasing.
func (g Grid) Validate() error {
	if len(g) == 0 {
		return fmt.Errorf("empty radial grid")
	}
	prev := math.Inf(-1)
	for i, r := range g {
		if math.IsNaN(r) || math.IsInf(r, 0) {
			return fmt.Errorf("grid point %d is not finite: %g", i, r)
		}
		if r < 0 {
			return fmt.Errorf("grid point %d is negative: %g", i, r)
		}
		if r < prev {
			return fmt.Errorf("grid is decreasing at point %d: %g < %g", i, r, prev)
		}
		prev = r
	}
	return nil
}

// DefaultMax returns the default plotting extent for a state,
// rmaxFactor * n^2 / Z. With the conventional factor 4 this covers the outer
// lobe of every orbital of the shell.
func DefaultMax(n int, z, rmaxFactor float64) float64 {
	return rmaxFactor * float64(n*n) / z
}

// IntegrationMax pads DefaultMax with an exponential-tail allowance so that
// the truncated normalization integral converges to well under 1e-6.
func IntegrationMax(n int, z float64) float64 {
	return (4*float64(n*n) + 25*float64(n)) / z
}
