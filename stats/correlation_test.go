package stats_test

import (
	"testing"

	"github.com/katalvlaran/statkit/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCovariance_Known pins a hand-computed covariance.
func TestCovariance_Known(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	y := []float64{1, 3, 2, 4}

	cov, err := stats.Covariance(x, y)
	require.NoError(t, err)
	assert.InDelta(t, 4.0/3.0, cov, 1e-12)

	// Covariance with itself is the variance.
	v, err := stats.Variance(x)
	require.NoError(t, err)
	self, err := stats.Covariance(x, x)
	require.NoError(t, err)
	assert.InDelta(t, v, self, 1e-12)
}

// TestCorrelation_LinearExtremes checks the ±1 extremes and the
// degenerate zero-variance policy.
func TestCorrelation_LinearExtremes(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}

	up := []float64{3, 5, 7, 9, 11} // y = 2x+1
	r, err := stats.Correlation(x, up)
	require.NoError(t, err)
	assert.InDelta(t, 1, r, 1e-12)

	down := []float64{-1, -2, -3, -4, -5} // y = -x
	r, err = stats.Correlation(x, down)
	require.NoError(t, err)
	assert.InDelta(t, -1, r, 1e-12)

	flat := []float64{2, 2, 2, 2, 2}
	r, err = stats.Correlation(x, flat)
	require.NoError(t, err)
	assert.Equal(t, 0.0, r, "zero-variance column has correlation 0, not NaN")
}

// TestPairwise_Errors covers validation of the paired estimators.
func TestPairwise_Errors(t *testing.T) {
	_, err := stats.Covariance([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, stats.ErrLengthMismatch)

	_, err = stats.Covariance([]float64{1}, []float64{1})
	assert.ErrorIs(t, err, stats.ErrTooFewSamples)

	_, err = stats.Correlation([]float64{1, 2, 3}, []float64{1, 2})
	assert.ErrorIs(t, err, stats.ErrLengthMismatch)
}
