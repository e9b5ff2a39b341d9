package dist

import (
	"math"
	"math/rand"
)

// Exponential is the exponential distribution with rate lambda.
// Parameter order in Params(): [rate].
type Exponential struct {
	rate float64
}

// NewExponential constructs an Exponential distribution.
//
// Errors:
//   - ErrNaNParam — rate is NaN or ±Inf.
//   - ErrBadParam — rate <= 0.
func NewExponential(rate float64) (Exponential, error) {
	if err := validateParams(rate); err != nil {
		return Exponential{}, err
	}
	if rate <= 0 {
		return Exponential{}, ErrBadParam
	}
	return Exponential{rate: rate}, nil
}

// Name returns the family name.
func (e Exponential) Name() string { return "Exponential" }

// Params returns [rate].
func (e Exponential) Params() []float64 { return []float64{e.rate} }

// Mean returns 1/rate.
func (e Exponential) Mean() float64 { return 1 / e.rate }

// StdDev returns 1/rate.
func (e Exponential) StdDev() float64 { return 1 / e.rate }

// Rand returns one draw. rng must not be nil.
func (e Exponential) Rand(rng *rand.Rand) float64 {
	return rng.ExpFloat64() / e.rate
}

// PDF returns the density at x; zero for x < 0.
func (e Exponential) PDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	return e.rate * math.Exp(-e.rate*x)
}

// CDF returns P(X ≤ x); zero for x < 0.
func (e Exponential) CDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	// Expm1 keeps precision for small rate*x.
	return -math.Expm1(-e.rate * x)
}

// Quantile returns the inverse CDF at p, p in (0,1).
func (e Exponential) Quantile(p float64) (float64, error) {
	if !(p > 0 && p < 1) {
		return 0, ErrBadProbability
	}
	// Log1p(-p) = ln(1-p), exact near p→0.
	return -math.Log1p(-p) / e.rate, nil
}
