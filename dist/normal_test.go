package dist_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/statkit/dist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewNormal_BadParams verifies constructor validation: non-positive
// sigma yields ErrBadParam, NaN/Inf parameters yield ErrNaNParam.
func TestNewNormal_BadParams(t *testing.T) {
	_, err := dist.NewNormal(0, 0)
	assert.ErrorIs(t, err, dist.ErrBadParam, "sigma=0 must be rejected")

	_, err = dist.NewNormal(0, -1)
	assert.ErrorIs(t, err, dist.ErrBadParam, "negative sigma must be rejected")

	_, err = dist.NewNormal(math.NaN(), 1)
	assert.ErrorIs(t, err, dist.ErrNaNParam, "NaN mu must be rejected")

	_, err = dist.NewNormal(0, math.Inf(1))
	assert.ErrorIs(t, err, dist.ErrNaNParam, "+Inf sigma must be rejected")
}

// TestNormal_Moments checks Params/Mean/StdDev round the constructor.
func TestNormal_Moments(t *testing.T) {
	n, err := dist.NewNormal(3.5, 2)
	require.NoError(t, err)

	assert.Equal(t, "Normal", n.Name())
	assert.Equal(t, []float64{3.5, 2}, n.Params())
	assert.Equal(t, 3.5, n.Mean())
	assert.Equal(t, 2.0, n.StdDev())
}

// TestNormal_PDFCDF pins the standard normal density and cumulative
// probability against reference values.
func TestNormal_PDFCDF(t *testing.T) {
	n, err := dist.NewNormal(0, 1)
	require.NoError(t, err)

	assert.InDelta(t, 0.3989422804014327, n.PDF(0), 1e-12, "peak density 1/√(2π)")
	assert.InDelta(t, 0.5, n.CDF(0), 1e-12, "half the mass below the mean")
	assert.InDelta(t, 0.9750021048517795, n.CDF(1.96), 1e-9, "classic z=1.96 mass")
	assert.InDelta(t, 0.15865525393145707, n.CDF(-1), 1e-9, "one sigma below")
}

// TestNormal_Quantile checks the inverse CDF against the canonical
// two-sided 95% critical value and the CDF round trip.
func TestNormal_Quantile(t *testing.T) {
	n, err := dist.NewNormal(0, 1)
	require.NoError(t, err)

	q, err := n.Quantile(0.975)
	require.NoError(t, err)
	assert.InDelta(t, 1.959963984540054, q, 1e-9, "0.975 quantile is the 1.96 of textbooks")

	for _, p := range []float64{0.01, 0.25, 0.5, 0.8, 0.999} {
		q, err = n.Quantile(p)
		require.NoError(t, err)
		assert.InDelta(t, p, n.CDF(q), 1e-12, "CDF(Quantile(p)) must return p")
	}

	_, err = n.Quantile(0)
	assert.ErrorIs(t, err, dist.ErrBadProbability, "p=0 lies outside (0,1)")
	_, err = n.Quantile(1)
	assert.ErrorIs(t, err, dist.ErrBadProbability, "p=1 lies outside (0,1)")
}

// TestNormal_ShiftScale verifies that mu/sigma shift and scale the
// standard quantile as q = mu + sigma·z.
func TestNormal_ShiftScale(t *testing.T) {
	n, err := dist.NewNormal(10, 3)
	require.NoError(t, err)

	q, err := n.Quantile(0.975)
	require.NoError(t, err)
	assert.InDelta(t, 10+3*1.959963984540054, q, 1e-8)
}

// TestNormal_Sampling draws a seeded sample and checks the empirical
// moments against the parameters. The stream is deterministic, so the
// tolerances are not flaky.
func TestNormal_Sampling(t *testing.T) {
	n, err := dist.NewNormal(5, 2)
	require.NoError(t, err)

	rng := dist.NewRNG(42)
	xs, err := dist.RandN(n, rng, 20_000)
	require.NoError(t, err)
	require.Len(t, xs, 20_000)

	var sum float64
	for _, x := range xs {
		sum += x
	}
	mean := sum / float64(len(xs))

	var ss float64
	for _, x := range xs {
		ss += (x - mean) * (x - mean)
	}
	sd := math.Sqrt(ss / float64(len(xs)-1))

	assert.InDelta(t, 5, mean, 0.05, "empirical mean near mu")
	assert.InDelta(t, 2, sd, 0.05, "empirical std dev near sigma")
}
