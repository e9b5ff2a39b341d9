package histogram

import (
	"errors"
	"math"
)

// Sentinel errors for construction and bin access.
var (
	// ErrBadRange indicates lo >= hi or a non-finite bound.
	ErrBadRange = errors.New("histogram: invalid range")

	// ErrBadBinCount indicates a non-positive number of bins.
	ErrBadBinCount = errors.New("histogram: bin count must be positive")

	// ErrBinOutOfRange indicates a bin index outside [0, Bins).
	ErrBinOutOfRange = errors.New("histogram: bin index out of range")
)

// Histogram counts observations in uniform bins over [lo, hi).
// Observations below lo or at/above hi are tracked separately, never
// silently dropped; NaN observations are discarded.
//
// Not safe for concurrent use.
type Histogram struct {
	lo     float64
	hi     float64
	width  float64
	counts []int
	total  int // in-range observations only

	underflow int
	overflow  int
}

// New builds a histogram with the given number of uniform bins.
//
// Errors: ErrBadRange, ErrBadBinCount.
func New(lo, hi float64, bins int) (*Histogram, error) {
	if math.IsNaN(lo) || math.IsInf(lo, 0) || math.IsNaN(hi) || math.IsInf(hi, 0) || lo >= hi {
		return nil, ErrBadRange
	}
	if bins <= 0 {
		return nil, ErrBadBinCount
	}
	return &Histogram{
		lo:     lo,
		hi:     hi,
		width:  (hi - lo) / float64(bins),
		counts: make([]int, bins),
	}, nil
}

// Observe records one observation.
func (h *Histogram) Observe(x float64) {
	switch {
	case math.IsNaN(x):
		return
	case x < h.lo:
		h.underflow++
	case x >= h.hi:
		h.overflow++
	default:
		i := int((x - h.lo) / h.width)
		if i >= len(h.counts) {
			i = len(h.counts) - 1 // rounding guard at the upper edge
		}
		h.counts[i]++
		h.total++
	}
}

// ObserveAll records every observation in xs.
func (h *Histogram) ObserveAll(xs []float64) {
	for _, x := range xs {
		h.Observe(x)
	}
}

// Bins returns the number of bins.
func (h *Histogram) Bins() int { return len(h.counts) }

// Total returns the number of in-range observations.
func (h *Histogram) Total() int { return h.total }

// Underflow returns the count of observations below the range.
func (h *Histogram) Underflow() int { return h.underflow }

// Overflow returns the count of observations at or above the range.
func (h *Histogram) Overflow() int { return h.overflow }

// Count returns the number of observations in bin i.
//
// Errors: ErrBinOutOfRange.
func (h *Histogram) Count(i int) (int, error) {
	if i < 0 || i >= len(h.counts) {
		return 0, ErrBinOutOfRange
	}
	return h.counts[i], nil
}

// Edges returns the half-open interval [lo, hi) covered by bin i.
//
// Errors: ErrBinOutOfRange.
func (h *Histogram) Edges(i int) (lo, hi float64, err error) {
	if i < 0 || i >= len(h.counts) {
		return 0, 0, ErrBinOutOfRange
	}
	lo = h.lo + float64(i)*h.width
	return lo, lo + h.width, nil
}

// Density returns the normalized bar height of bin i:
// count / (total · width). Summed over all bins times the bin width
// this integrates to 1, so the bars are directly comparable to a PDF.
// An empty histogram has density 0 everywhere.
//
// Errors: ErrBinOutOfRange.
func (h *Histogram) Density(i int) (float64, error) {
	c, err := h.Count(i)
	if err != nil {
		return 0, err
	}
	if h.total == 0 {
		return 0, nil
	}
	return float64(c) / (float64(h.total) * h.width), nil
}
