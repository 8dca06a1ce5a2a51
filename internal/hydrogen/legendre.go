package hydrogen

import "math"

// legendreP evaluates the Legendre polynomial P_l at x using Bonnet's
// recurrence:
//
//	(i+1) P_{i+1}(x) = (2i+1) x P_i(x) - i P_{i-1}(x)
func legendreP(l int, x float64) float64 {
	if l == 0 {
		return 1.0
	}
	prev, cur := 1.0, x
	for i := 1; i < l; i++ {
		fi := float64(i)
		prev, cur = cur, ((2*fi+1)*x*cur-fi*prev)/(fi+1)
	}
	return cur
}

// sphericalY0 evaluates the real spherical harmonic Y_l0(theta),
// sqrt((2l+1)/4pi) * P_l(cos theta). Only m = 0 harmonics are needed for
// the plane-slice renderings; they carry the full angular structure of the
// s, p0, d0, ... orbitals.
func sphericalY0(l int, cosTheta float64) float64 {
	return math.Sqrt(float64(2*l+1)/(4*math.Pi)) * legendreP(l, cosTheta)
}
