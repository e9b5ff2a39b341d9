package dist

import (
	"math"
	"math/rand"
)

// Normal is the Gaussian distribution with mean Mu and standard
// deviation Sigma. Parameter order in Params(): [mu, sigma].
type Normal struct {
	mu    float64
	sigma float64
}

// NewNormal constructs a Normal distribution.
//
// Errors:
//   - ErrNaNParam — mu or sigma is NaN or ±Inf.
//   - ErrBadParam — sigma <= 0.
func NewNormal(mu, sigma float64) (Normal, error) {
	if err := validateParams(mu, sigma); err != nil {
		return Normal{}, err
	}
	if sigma <= 0 {
		return Normal{}, ErrBadParam
	}
	return Normal{mu: mu, sigma: sigma}, nil
}

// Name returns the family name.
func (n Normal) Name() string { return "Normal" }

// Params returns [mu, sigma].
func (n Normal) Params() []float64 { return []float64{n.mu, n.sigma} }

// Mean returns mu.
func (n Normal) Mean() float64 { return n.mu }

// StdDev returns sigma.
func (n Normal) StdDev() float64 { return n.sigma }

// Rand returns one draw. rng must not be nil.
func (n Normal) Rand(rng *rand.Rand) float64 {
	return rng.NormFloat64()*n.sigma + n.mu
}

// PDF returns the density at x.
func (n Normal) PDF(x float64) float64 {
	z := (x - n.mu) / n.sigma
	return math.Exp(-0.5*z*z) / (n.sigma * math.Sqrt(2*math.Pi))
}

// CDF returns P(X ≤ x) via the complementary error function, which
// stays accurate deep in the lower tail where 0.5*(1+erf) would round.
func (n Normal) CDF(x float64) float64 {
	z := (x - n.mu) / (n.sigma * math.Sqrt2)
	return 0.5 * math.Erfc(-z)
}

// Quantile returns the inverse CDF at p, p in (0,1).
func (n Normal) Quantile(p float64) (float64, error) {
	if !(p > 0 && p < 1) {
		return 0, ErrBadProbability
	}
	return n.mu + n.sigma*math.Sqrt2*math.Erfinv(2*p-1), nil
}
