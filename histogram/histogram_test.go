package histogram_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/statkit/dist"
	"github.com/katalvlaran/statkit/histogram"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Validation covers constructor errors.
func TestNew_Validation(t *testing.T) {
	_, err := histogram.New(1, 1, 10)
	assert.ErrorIs(t, err, histogram.ErrBadRange)

	_, err = histogram.New(2, 1, 10)
	assert.ErrorIs(t, err, histogram.ErrBadRange)

	_, err = histogram.New(math.NaN(), 1, 10)
	assert.ErrorIs(t, err, histogram.ErrBadRange)

	_, err = histogram.New(0, 1, 0)
	assert.ErrorIs(t, err, histogram.ErrBadBinCount)
}

// TestObserve_Binning places known observations in known bins.
func TestObserve_Binning(t *testing.T) {
	h, err := histogram.New(0, 10, 5) // bins of width 2
	require.NoError(t, err)

	h.ObserveAll([]float64{0, 1.9, 2, 5, 9.99})
	h.Observe(-0.1)         // underflow
	h.Observe(10)           // upper edge is exclusive: overflow
	h.Observe(math.NaN())   // discarded
	h.Observe(math.Inf(1))  // overflow
	h.Observe(math.Inf(-1)) // underflow

	assert.Equal(t, 5, h.Total())
	assert.Equal(t, 2, h.Underflow())
	assert.Equal(t, 2, h.Overflow())

	wantCounts := []int{2, 1, 1, 0, 1}
	for i, want := range wantCounts {
		c, err := h.Count(i)
		require.NoError(t, err)
		assert.Equal(t, want, c, "bin %d", i)
	}

	lo, hi, err := h.Edges(1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, lo)
	assert.Equal(t, 4.0, hi)

	_, err = h.Count(5)
	assert.ErrorIs(t, err, histogram.ErrBinOutOfRange)
	_, _, err = h.Edges(-1)
	assert.ErrorIs(t, err, histogram.ErrBinOutOfRange)
}

// TestDensity_Normalization checks that densities integrate to one
// over the in-range mass.
func TestDensity_Normalization(t *testing.T) {
	h, err := histogram.New(0, 1, 4)
	require.NoError(t, err)
	h.ObserveAll([]float64{0.1, 0.1, 0.3, 0.6, 0.6, 0.6, 0.8, 0.9})

	var integral float64
	for i := 0; i < h.Bins(); i++ {
		d, err := h.Density(i)
		require.NoError(t, err)
		integral += d * 0.25 // bin width
	}
	assert.InDelta(t, 1, integral, 1e-12, "density integrates to 1")

	empty, err := histogram.New(0, 1, 4)
	require.NoError(t, err)
	d, err := empty.Density(0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d, "empty histogram is flat zero")
}

// TestDensity_TracksPDF fills a histogram from seeded normal draws and
// compares the central bar against the true density.
func TestDensity_TracksPDF(t *testing.T) {
	n, err := dist.NewNormal(0, 1)
	require.NoError(t, err)
	xs, err := dist.RandN(n, dist.NewRNG(42), 100_000)
	require.NoError(t, err)

	h, err := histogram.New(-4, 4, 80) // width 0.1
	require.NoError(t, err)
	h.ObserveAll(xs)

	// Bin 40 covers [0, 0.1); true density there is ≈ 0.3974.
	d, err := h.Density(40)
	require.NoError(t, err)
	assert.InDelta(t, n.PDF(0.05), d, 0.02, "bar height tracks the PDF")
}
