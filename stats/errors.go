package stats

import "errors"

// Sentinel errors returned by this package; match with errors.Is.
var (
	// ErrEmptySample indicates an operation on a zero-length sample.
	ErrEmptySample = errors.New("stats: sample is empty")

	// ErrTooFewSamples indicates an estimator that needs at least two
	// observations (variance, intervals, covariance).
	ErrTooFewSamples = errors.New("stats: need at least two observations")

	// ErrBadConfidence indicates a confidence level outside (0,1).
	ErrBadConfidence = errors.New("stats: confidence must lie in (0,1)")

	// ErrBadPercentile indicates a percentile rank outside [0,1].
	ErrBadPercentile = errors.New("stats: percentile must lie in [0,1]")

	// ErrLengthMismatch indicates paired samples of different lengths.
	ErrLengthMismatch = errors.New("stats: paired samples differ in length")

	// ErrNilReference indicates a nil reference distribution supplied
	// via WithReference.
	ErrNilReference = errors.New("stats: reference distribution is nil")
)
