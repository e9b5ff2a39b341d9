package stats

import (
	"fmt"
	"math"

	"github.com/katalvlaran/statkit/dist"
)

// Interval is a two-sided confidence interval around a sample mean.
// It always satisfies Lower = Center − Margin and Upper = Center +
// Margin; Center is the sample mean.
type Interval struct {
	Lower  float64
	Upper  float64
	Center float64
	Margin float64
}

// Option configures MeanInterval. Later options override earlier ones.
type Option func(*options)

type options struct {
	ref      dist.Dist
	refSet   bool
	studentT bool
}

// WithReference sets the reference distribution for the sampling-error
// quantile. The default is the standard normal.
func WithReference(d dist.Dist) Option {
	return func(o *options) {
		o.ref = d
		o.refSet = true
		o.studentT = false
	}
}

// WithStudentT selects Student's t reference with n−1 degrees of
// freedom, the usual choice when the population dispersion is
// estimated from the same small sample.
func WithStudentT() Option {
	return func(o *options) {
		o.ref = nil
		o.refSet = false
		o.studentT = true
	}
}

// MeanInterval estimates a two-sided confidence interval for the
// population mean from the observations xs.
//
// Algorithm:
//  1. x̄ = sample mean, s = unbiased sample standard deviation, n = len(xs).
//  2. α = 1 − confidence; z = reference quantile at 1 − α/2.
//  3. margin = z·s/√n; interval = (x̄ − margin, x̄ + margin).
//
// Errors:
//   - ErrTooFewSamples — n < 2.
//   - ErrBadConfidence — confidence outside (0,1).
//   - ErrNilReference  — WithReference(nil).
//   - wrapped reference Quantile errors.
//
// Complexity: O(n) time plus one reference quantile evaluation.
func MeanInterval(xs []float64, confidence float64, opts ...Option) (Interval, error) {
	if len(xs) < 2 {
		return Interval{}, ErrTooFewSamples
	}
	if math.IsNaN(confidence) || confidence <= 0 || confidence >= 1 {
		return Interval{}, ErrBadConfidence
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	ref, err := resolveReference(&o, len(xs))
	if err != nil {
		return Interval{}, err
	}

	mean, _ := Mean(xs)
	sd, _ := StdDev(xs)

	alpha := 1 - confidence
	z, err := ref.Quantile(1 - alpha/2)
	if err != nil {
		return Interval{}, fmt.Errorf("stats: reference quantile: %w", err)
	}

	margin := z * sd / math.Sqrt(float64(len(xs)))
	return Interval{
		Lower:  mean - margin,
		Upper:  mean + margin,
		Center: mean,
		Margin: margin,
	}, nil
}

// resolveReference picks the reference distribution for n observations.
func resolveReference(o *options, n int) (dist.Dist, error) {
	switch {
	case o.studentT:
		t, err := dist.NewStudentT(float64(n - 1))
		if err != nil {
			return nil, fmt.Errorf("stats: student-t reference: %w", err)
		}
		return t, nil
	case o.refSet:
		if o.ref == nil {
			return nil, ErrNilReference
		}
		return o.ref, nil
	default:
		std, err := dist.NewNormal(0, 1)
		if err != nil {
			return nil, fmt.Errorf("stats: normal reference: %w", err)
		}
		return std, nil
	}
}
