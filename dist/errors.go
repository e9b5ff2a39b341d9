package dist

import "errors"

// Sentinel errors returned by constructors and queries in this package.
// All are matched with errors.Is; user-triggered conditions never panic.
var (
	// ErrBadParam indicates a parameter outside its family's valid domain
	// (e.g. non-positive sigma, rate, scale or degrees of freedom,
	// or Min >= Max for Uniform).
	ErrBadParam = errors.New("dist: invalid distribution parameter")

	// ErrNaNParam indicates a NaN or ±Inf parameter at construction.
	ErrNaNParam = errors.New("dist: parameter is NaN or Inf")

	// ErrBadProbability indicates a quantile probability outside (0,1).
	ErrBadProbability = errors.New("dist: probability must lie in (0,1)")

	// ErrBadSampleSize indicates a non-positive requested sample size.
	ErrBadSampleSize = errors.New("dist: sample size must be positive")

	// ErrNilDist indicates a nil Dist passed into a package helper.
	ErrNilDist = errors.New("dist: distribution is nil")

	// ErrBadRange indicates a curve range whose lower bound is not
	// strictly below its upper bound, or a non-finite bound.
	ErrBadRange = errors.New("dist: invalid curve range")

	// ErrBadGridSize indicates a curve grid with fewer than two points.
	ErrBadGridSize = errors.New("dist: grid needs at least two points")
)
