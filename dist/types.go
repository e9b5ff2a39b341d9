// Package dist defines the Dist contract shared by all families.
package dist

import (
	"math"
	"math/rand"
)

// Dist is a parametric continuous distribution.
//
// Implementations are immutable values: parameters are fixed by a
// validating constructor and never change afterwards. All methods are
// safe for concurrent use except Rand, which mutates the supplied rng.
//
//   - Rand(rng)   — one draw; rng must not be nil (programmer error).
//   - PDF(x)      — probability density at x.
//   - CDF(x)      — P(X ≤ x).
//   - Quantile(p) — inverse CDF; p must lie in (0,1), else ErrBadProbability.
//   - Mean        — expected value; NaN when the family has none.
//   - StdDev      — standard deviation; +Inf or NaN when undefined.
//   - Params      — parameter tuple in the family's documented order.
//   - Name        — short family name ("Normal", "StudentT", ...).
type Dist interface {
	Rand(rng *rand.Rand) float64
	PDF(x float64) float64
	CDF(x float64) float64
	Quantile(p float64) (float64, error)
	Mean() float64
	StdDev() float64
	Params() []float64
	Name() string
}

// Point is one (x, density) pair of a sampled density curve.
type Point struct {
	X float64
	Y float64
}

// RandN draws n independent samples from d using rng.
// A nil rng falls back to the deterministic default stream (seed 0
// policy, see NewRNG). Returns ErrNilDist for a nil d and
// ErrBadSampleSize for n <= 0.
//
// Complexity: O(n) time, O(n) space.
func RandN(d Dist, rng *rand.Rand, n int) ([]float64, error) {
	if d == nil {
		return nil, ErrNilDist
	}
	if n <= 0 {
		return nil, ErrBadSampleSize
	}
	if rng == nil {
		rng = NewRNG(0)
	}

	xs := make([]float64, n)
	for i := range xs {
		xs[i] = d.Rand(rng)
	}
	return xs, nil
}

// validateParams returns ErrNaNParam if any of ps is NaN or ±Inf.
func validateParams(ps ...float64) error {
	for _, p := range ps {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return ErrNaNParam
		}
	}
	return nil
}
