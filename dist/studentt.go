package dist

import (
	"math"
	"math/rand"
)

// StudentT is Student's t distribution with Nu degrees of freedom
// (location 0, scale 1). Parameter order in Params(): [nu].
//
// It is the reference distribution for small-sample mean intervals:
// stats.WithStudentT wires it in with nu = n-1.
type StudentT struct {
	nu float64
}

// NewStudentT constructs a StudentT distribution.
//
// Errors:
//   - ErrNaNParam — nu is NaN or ±Inf.
//   - ErrBadParam — nu <= 0.
func NewStudentT(nu float64) (StudentT, error) {
	if err := validateParams(nu); err != nil {
		return StudentT{}, err
	}
	if nu <= 0 {
		return StudentT{}, ErrBadParam
	}
	return StudentT{nu: nu}, nil
}

// Name returns the family name.
func (t StudentT) Name() string { return "StudentT" }

// Params returns [nu].
func (t StudentT) Params() []float64 { return []float64{t.nu} }

// Mean returns 0 for nu > 1 and NaN otherwise (the moment diverges).
func (t StudentT) Mean() float64 {
	if t.nu > 1 {
		return 0
	}
	return math.NaN()
}

// StdDev returns √(nu/(nu-2)) for nu > 2, +Inf for 1 < nu <= 2, and
// NaN otherwise.
func (t StudentT) StdDev() float64 {
	switch {
	case t.nu > 2:
		return math.Sqrt(t.nu / (t.nu - 2))
	case t.nu > 1:
		return math.Inf(1)
	default:
		return math.NaN()
	}
}

// Rand returns one draw using Bailey's polar method, which needs no
// auxiliary gamma sampler and works for any real nu > 0.
// rng must not be nil.
func (t StudentT) Rand(rng *rand.Rand) float64 {
	for {
		u := 2*rng.Float64() - 1
		v := 2*rng.Float64() - 1
		w := u*u + v*v
		if w >= 1 || w == 0 {
			continue
		}
		return u * math.Sqrt(t.nu*(math.Pow(w, -2/t.nu)-1)/w)
	}
}

// PDF returns the density at x.
func (t StudentT) PDF(x float64) float64 {
	lgHalf, _ := math.Lgamma((t.nu + 1) / 2)
	lgNu, _ := math.Lgamma(t.nu / 2)
	logPDF := lgHalf - lgNu - 0.5*math.Log(t.nu*math.Pi) -
		(t.nu+1)/2*math.Log1p(x*x/t.nu)
	return math.Exp(logPDF)
}

// CDF returns P(X ≤ x) via the regularized incomplete beta function:
// for x ≥ 0, P = 1 − I_{nu/(nu+x²)}(nu/2, 1/2)/2, mirrored below zero.
func (t StudentT) CDF(x float64) float64 {
	if x == 0 {
		return 0.5
	}
	tail := 0.5 * regIncBeta(t.nu/2, 0.5, t.nu/(t.nu+x*x))
	if x > 0 {
		return 1 - tail
	}
	return tail
}

// Quantile returns the inverse CDF at p, p in (0,1), by monotone
// bisection on CDF. The CDF is strictly increasing and continuous, so
// bisection is exact to the requested tolerance regardless of nu.
func (t StudentT) Quantile(p float64) (float64, error) {
	if !(p > 0 && p < 1) {
		return 0, ErrBadProbability
	}
	if p == 0.5 {
		return 0, nil
	}

	// Exploit symmetry: solve in the upper half only.
	if p < 0.5 {
		q, err := t.Quantile(1 - p)
		return -q, err
	}

	// Bracket [0, hi] with doubling; CDF(x) → 1 as x → ∞, so the loop
	// terminates for every p < 1 representable in float64.
	hi := 1.0
	for t.CDF(hi) < p {
		hi *= 2
	}

	lo := 0.0
	for i := 0; i < quantileMaxIter; i++ {
		mid := (lo + hi) / 2
		if t.CDF(mid) < p {
			lo = mid
		} else {
			hi = mid
		}
		if hi-lo <= quantileTol*(1+math.Abs(hi)) {
			break
		}
	}
	return (lo + hi) / 2, nil
}

const (
	// quantileMaxIter bounds the bisection; 200 halvings exceed float64
	// resolution for any bracket this package builds.
	quantileMaxIter = 200

	// quantileTol is the relative bracket-width stop criterion.
	quantileTol = 1e-12
)
