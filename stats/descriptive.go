package stats

import (
	"math"
	"sort"
)

// Mean returns the arithmetic mean of xs.
//
// Errors: ErrEmptySample.
func Mean(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptySample
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs)), nil
}

// Variance returns the unbiased sample variance (n−1 divisor),
// accumulated against the mean in a second pass for numerical
// stability.
//
// Errors: ErrTooFewSamples (n < 2).
func Variance(xs []float64) (float64, error) {
	if len(xs) < 2 {
		return 0, ErrTooFewSamples
	}
	m, _ := Mean(xs)

	var ss float64
	for _, x := range xs {
		d := x - m
		ss += d * d
	}
	return ss / float64(len(xs)-1), nil
}

// StdDev returns the square root of the unbiased sample variance.
//
// Errors: ErrTooFewSamples (n < 2).
func StdDev(xs []float64) (float64, error) {
	v, err := Variance(xs)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}

// Min returns the smallest observation.
//
// Errors: ErrEmptySample.
func Min(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptySample
	}
	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}
	return m, nil
}

// Max returns the largest observation.
//
// Errors: ErrEmptySample.
func Max(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptySample
	}
	m := xs[0]
	for _, x := range xs[1:] {
		if x > m {
			m = x
		}
	}
	return m, nil
}

// Percentile returns the p-th sample percentile, p in [0,1], using
// linear interpolation between closest ranks ("type 7": h = (n−1)·p).
// The input is not mutated; sorting happens on a copy.
//
// Errors: ErrEmptySample, ErrBadPercentile.
//
// Complexity: O(n log n) time, O(n) space.
func Percentile(xs []float64, p float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptySample
	}
	if math.IsNaN(p) || p < 0 || p > 1 {
		return 0, ErrBadPercentile
	}

	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	h := float64(len(sorted)-1) * p
	lo := int(math.Floor(h))
	if lo == len(sorted)-1 {
		return sorted[lo], nil
	}
	frac := h - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo]), nil
}

// Median returns the 0.5 sample percentile.
//
// Errors: ErrEmptySample.
func Median(xs []float64) (float64, error) {
	return Percentile(xs, 0.5)
}

// Summary bundles the descriptive statistics of one sample.
type Summary struct {
	N      int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	Median float64
}

// Summarize computes all Summary fields in one call.
//
// Errors: ErrTooFewSamples (n < 2; StdDev needs it).
func Summarize(xs []float64) (Summary, error) {
	if len(xs) < 2 {
		return Summary{}, ErrTooFewSamples
	}

	mean, _ := Mean(xs)
	sd, _ := StdDev(xs)
	mn, _ := Min(xs)
	mx, _ := Max(xs)
	med, _ := Median(xs)

	return Summary{
		N:      len(xs),
		Mean:   mean,
		StdDev: sd,
		Min:    mn,
		Max:    mx,
		Median: med,
	}, nil
}
