package features

import "math"

// minMax scales v into [0,1] against the observed [lo, hi] range.
// A degenerate range (lo == hi) yields 0.5.
func minMax(v, lo, hi float64) float64 {
	if hi == lo {
		return 0.5
	}
	return clamp((v-lo)/(hi-lo), 0, 1)
}

// capOutliers clamps values further than k standard deviations from the
// mean. Returns a new slice; the input is not modified.
func capOutliers(xs []float64, k float64) []float64 {
	if len(xs) < 2 {
		return append([]float64(nil), xs...)
	}
	m := mean(xs)
	sd := stddev(xs, m)
	if sd == 0 {
		return append([]float64(nil), xs...)
	}
	lo, hi := m-k*sd, m+k*sd

	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = clamp(x, lo, hi)
	}
	return out
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// stddev is the population standard deviation around m.
func stddev(xs []float64, m float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		d := x - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(xs)))
}

// linearSlope returns the least-squares slope of ys against xs.
// Fewer than two points yields 0.
func linearSlope(xs, ys []float64) float64 {
	n := len(xs)
	if n < 2 || n != len(ys) {
		return 0
	}
	mx, my := mean(xs), mean(ys)
	num, den := 0.0, 0.0
	for i := range xs {
		dx := xs[i] - mx
		num += dx * (ys[i] - my)
		den += dx * dx
	}
	if den == 0 {
		return 0
	}
	return num / den
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
