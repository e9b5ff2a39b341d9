package dist

import (
	"math"
	"math/rand"
)

// Laplace is the double-exponential distribution with location Mu and
// scale b. Parameter order in Params(): [mu, scale].
type Laplace struct {
	mu    float64
	scale float64
}

// NewLaplace constructs a Laplace distribution.
//
// Errors:
//   - ErrNaNParam — mu or scale is NaN or ±Inf.
//   - ErrBadParam — scale <= 0.
func NewLaplace(mu, scale float64) (Laplace, error) {
	if err := validateParams(mu, scale); err != nil {
		return Laplace{}, err
	}
	if scale <= 0 {
		return Laplace{}, ErrBadParam
	}
	return Laplace{mu: mu, scale: scale}, nil
}

// Name returns the family name.
func (l Laplace) Name() string { return "Laplace" }

// Params returns [mu, scale].
func (l Laplace) Params() []float64 { return []float64{l.mu, l.scale} }

// Mean returns mu.
func (l Laplace) Mean() float64 { return l.mu }

// StdDev returns scale·√2.
func (l Laplace) StdDev() float64 { return l.scale * math.Sqrt2 }

// Rand returns one draw via inverse-CDF sampling. rng must not be nil.
func (l Laplace) Rand(rng *rand.Rand) float64 {
	u := rng.Float64() - 0.5
	if u < 0 {
		return l.mu + l.scale*math.Log(1+2*u)
	}
	return l.mu - l.scale*math.Log(1-2*u)
}

// PDF returns the density at x.
func (l Laplace) PDF(x float64) float64 {
	return math.Exp(-math.Abs(x-l.mu)/l.scale) / (2 * l.scale)
}

// CDF returns P(X ≤ x).
func (l Laplace) CDF(x float64) float64 {
	z := (x - l.mu) / l.scale
	if z < 0 {
		return 0.5 * math.Exp(z)
	}
	return 1 - 0.5*math.Exp(-z)
}

// Quantile returns the inverse CDF at p, p in (0,1).
func (l Laplace) Quantile(p float64) (float64, error) {
	if !(p > 0 && p < 1) {
		return 0, ErrBadProbability
	}
	if p < 0.5 {
		return l.mu + l.scale*math.Log(2*p), nil
	}
	return l.mu - l.scale*math.Log(2*(1-p)), nil
}
