package hydrogen

import "math"

// logNorm returns the log of the radial normalization constant,
//
//	N_nl = sqrt( (2Z/n)^3 * (n-l-1)! / (2n (n+l)!) )
//
// evaluated with log-gamma so the factorials never overflow.
func logNorm(s State) float64 {
	n := float64(s.N)
	lgNum, _ := math.Lgamma(float64(s.N - s.L))     // (n-l-1)!
	lgDen, _ := math.Lgamma(float64(s.N + s.L + 1)) // (n+l)!
	return 1.5*math.Log(2*s.Z/n) + 0.5*(lgNum-math.Log(2*n)-lgDen)
}

// RadialWavefunction evaluates the normalized radial wavefunction R_nl(r)
// on the grid. The result is a fresh slice aligned with the grid; inputs are
// never mutated.
func RadialWavefunction(s State, g Grid) ([]float64, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	ln := logNorm(s)
	norm := math.Exp(ln)
	if math.IsInf(norm, 0) || norm == 0 || math.IsNaN(norm) {
		return nil, &OverflowError{State: s}
	}

	rho := make([]float64, len(g))
	for i, r := range g {
		rho[i] = 2 * s.Z * r / float64(s.N)
	}
	poly := laguerre(rho, float64(2*s.L+1), s.N-s.L-1)

	out := make([]float64, len(g))
	for i, p := range rho {
		// math.Pow(0, 0) = 1, so r=0 is well defined for s states.
		out[i] = norm * math.Exp(-p/2) * math.Pow(p, float64(s.L)) * poly[i]
	}
	return out, nil
}

// RadialDensity evaluates the radial probability density P_nl(r) = r^2 R^2
// on the grid. Every value is >= 0 and the density integrates to 1 over
// [0, inf). A fresh slice is returned per call; the function is pure.
func RadialDensity(s State, g Grid) ([]float64, error) {
	wf, err := RadialWavefunction(s, g)
	if err != nil {
		return nil, err
	}
	for i, r := range g {
		wf[i] = r * r * wf[i] * wf[i]
	}
	return wf, nil
}
