package stats

// Pairwise column statistics. The degenerate-column policy matches the
// rest of the library's determinism rules: a zero-variance column has
// no linear association to measure, so Correlation reports 0 for it
// rather than NaN.

// Covariance returns the unbiased sample covariance of paired samples
// x and y (n−1 divisor).
//
// Errors: ErrLengthMismatch, ErrTooFewSamples (n < 2).
//
// Complexity: O(n) time, O(1) space.
func Covariance(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, ErrLengthMismatch
	}
	if len(x) < 2 {
		return 0, ErrTooFewSamples
	}

	mx, _ := Mean(x)
	my, _ := Mean(y)

	var s float64
	for i := range x {
		s += (x[i] - mx) * (y[i] - my)
	}
	return s / float64(len(x)-1), nil
}

// Correlation returns the Pearson correlation coefficient of paired
// samples x and y. A degenerate sample (zero standard deviation on
// either side) yields 0.
//
// Errors: ErrLengthMismatch, ErrTooFewSamples (n < 2).
//
// Complexity: O(n) time, O(1) space.
func Correlation(x, y []float64) (float64, error) {
	cov, err := Covariance(x, y)
	if err != nil {
		return 0, err
	}

	sx, _ := StdDev(x)
	sy, _ := StdDev(y)
	if sx == 0 || sy == 0 {
		return 0, nil
	}
	return cov / (sx * sy), nil
}
