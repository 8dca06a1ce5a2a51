package hydrogen

// laguerre evaluates the associated Laguerre polynomial L^alpha_k at the
// points x, writing results into a fresh slice.
//
// The direct series has alternating terms with large binomial coefficients
// and cancels catastrophically for moderate k, so the standard three-term
// recurrence is used instead:
//
//	(i+1) L^a_{i+1}(x) = (2i+1+a-x) L^a_i(x) - (i+a) L^a_i-1(x)
func laguerre(x []float64, alpha float64, k int) []float64 {
	out := make([]float64, len(x))

	// L^a_0 = 1
	for i := range out {
		out[i] = 1.0
	}
	if k == 0 {
		return out
	}

	// L^a_1 = 1 + a - x
	prev := out
	cur := make([]float64, len(x))
	for i, xi := range x {
		cur[i] = 1.0 + alpha - xi
	}

	for i := 1; i < k; i++ {
		fi := float64(i)
		next := make([]float64, len(x))
		for j, xj := range x {
			next[j] = ((2*fi+1+alpha-xj)*cur[j] - (fi+alpha)*prev[j]) / (fi + 1)
		}
		prev, cur = cur, next
	}

	return cur
}

// laguerreAt evaluates L^alpha_k at a single point.
func laguerreAt(x, alpha float64, k int) float64 {
	return laguerre([]float64{x}, alpha, k)[0]
}
