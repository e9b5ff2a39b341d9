package dist

import (
	"math"
	"math/rand"
)

// Uniform is the continuous uniform distribution on [min, max).
// Parameter order in Params(): [min, max].
type Uniform struct {
	min float64
	max float64
}

// NewUniform constructs a Uniform distribution.
//
// Errors:
//   - ErrNaNParam — min or max is NaN or ±Inf.
//   - ErrBadParam — min >= max.
func NewUniform(min, max float64) (Uniform, error) {
	if err := validateParams(min, max); err != nil {
		return Uniform{}, err
	}
	if min >= max {
		return Uniform{}, ErrBadParam
	}
	return Uniform{min: min, max: max}, nil
}

// Name returns the family name.
func (u Uniform) Name() string { return "Uniform" }

// Params returns [min, max].
func (u Uniform) Params() []float64 { return []float64{u.min, u.max} }

// Mean returns (min+max)/2.
func (u Uniform) Mean() float64 { return (u.min + u.max) / 2 }

// StdDev returns (max-min)/√12.
func (u Uniform) StdDev() float64 { return (u.max - u.min) / math.Sqrt(12) }

// Rand returns one draw. rng must not be nil.
func (u Uniform) Rand(rng *rand.Rand) float64 {
	return rng.Float64()*(u.max-u.min) + u.min
}

// PDF returns the density at x.
func (u Uniform) PDF(x float64) float64 {
	if x < u.min || x >= u.max {
		return 0
	}
	return 1 / (u.max - u.min)
}

// CDF returns P(X ≤ x).
func (u Uniform) CDF(x float64) float64 {
	switch {
	case x < u.min:
		return 0
	case x >= u.max:
		return 1
	default:
		return (x - u.min) / (u.max - u.min)
	}
}

// Quantile returns the inverse CDF at p, p in (0,1).
func (u Uniform) Quantile(p float64) (float64, error) {
	if !(p > 0 && p < 1) {
		return 0, ErrBadProbability
	}
	return u.min + p*(u.max-u.min), nil
}
