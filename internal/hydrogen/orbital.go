package hydrogen

import (
	"fmt"
	"math"
	"strings"
)

// Plane selects an axis-aligned slice through the origin.
type Plane int

const (
	PlaneXY Plane = iota
	PlaneXZ
	PlaneYZ
)

// ParsePlane parses "xy", "xz" or "yz" (case-insensitive).
func ParsePlane(s string) (Plane, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "xy":
		return PlaneXY, nil
	case "xz":
		return PlaneXZ, nil
	case "yz":
		return PlaneYZ, nil
	}
	return 0, fmt.Errorf("unknown plane %q: expected xy, xz or yz", s)
}

func (p Plane) String() string {
	switch p {
	case PlaneXY:
		return "xy"
	case PlaneXZ:
		return "xz"
	case PlaneYZ:
		return "yz"
	}
	return fmt.Sprintf("plane(%d)", int(p))
}

// Orbital evaluates the full three-dimensional probability density
// |psi_nl0(x,y,z)|^2 of an m = 0 orbital. The angular part is the real
// spherical harmonic Y_l0, so the slices show the familiar s/p0/d0 lobes.
type Orbital struct {
	state State
	norm  float64
}

// NewOrbital validates the state and precomputes the radial normalization.
func NewOrbital(s State) (*Orbital, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	norm := math.Exp(logNorm(s))
	if math.IsInf(norm, 0) || norm == 0 || math.IsNaN(norm) {
		return nil, &OverflowError{State: s}
	}
	return &Orbital{state: s, norm: norm}, nil
}

// State returns the quantum state the orbital was built from.
func (o *Orbital) State() State { return o.state }

// radialAt evaluates R_nl at a single radius.
func (o *Orbital) radialAt(r float64) float64 {
	rho := 2 * o.state.Z * r / float64(o.state.N)
	poly := laguerreAt(rho, float64(2*o.state.L+1), o.state.N-o.state.L-1)
	return o.norm * math.Exp(-rho/2) * math.Pow(rho, float64(o.state.L)) * poly
}

// DensityAt evaluates |psi_nl0|^2 at a cartesian point. The origin is
// guarded with a small epsilon so cos(theta) stays defined, matching the
// usual convention for radially symmetric grids.
func (o *Orbital) DensityAt(x, y, z float64) float64 {
	r := math.Sqrt(x*x+y*y+z*z) + 1e-12
	psi := o.radialAt(r) * sphericalY0(o.state.L, z/r)
	return psi * psi
}

// Slice is a square plane section of the density, peak-normalized to 1 for
// rendering. Values[i][j] corresponds to (Coords[j], Coords[i]) in the
// slice's own axes.
type Slice struct {
	State  State
	Plane  Plane
	Coords []float64
	Values [][]float64
}

// PlaneSlice samples the density on a points x points grid spanning
// [-extent, extent] in both slice axes, with the third coordinate zero.
func (o *Orbital) PlaneSlice(plane Plane, extent float64, points int) (*Slice, error) {
	if points < 2 {
		return nil, fmt.Errorf("slice needs at least 2 points per axis, got %d", points)
	}
	if extent <= 0 {
		return nil, fmt.Errorf("slice extent must be positive, got %g", extent)
	}

	coords := make([]float64, points)
	step := 2 * extent / float64(points-1)
	for i := range coords {
		coords[i] = -extent + float64(i)*step
	}

	values := make([][]float64, points)
	peak := 0.0
	for i, b := range coords {
		row := make([]float64, points)
		for j, a := range coords {
			var x, y, z float64
			switch plane {
			case PlaneXY:
				x, y = a, b
			case PlaneXZ:
				x, z = a, b
			case PlaneYZ:
				y, z = a, b
			}
			v := o.DensityAt(x, y, z)
			row[j] = v
			if v > peak {
				peak = v
			}
		}
		values[i] = row
	}

	if peak > 0 {
		for _, row := range values {
			for j := range row {
				row[j] /= peak
			}
		}
	}

	return &Slice{State: o.state, Plane: plane, Coords: coords, Values: values}, nil
}
