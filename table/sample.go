package table

import (
	"math/rand"

	"github.com/katalvlaran/statkit/dist"
)

// ColumnSpec names one sampled column and the distribution it draws
// from.
type ColumnSpec struct {
	Name string
	Dist dist.Dist
}

// Sample builds a table of n rows where each column holds n draws from
// its spec's distribution. Columns are filled left to right from a
// single rng stream, so the result is fully determined by the seed.
// A nil rng uses the deterministic default stream (dist.NewRNG(0)).
//
// Errors: ErrNoColumns (no specs), dist.ErrBadSampleSize (n <= 0),
// dist.ErrNilDist (a spec without a distribution), plus the table
// construction sentinels for bad or duplicate names.
//
// Complexity: O(n·k) time and space for k specs.
func Sample(rng *rand.Rand, n int, specs ...ColumnSpec) (*Table, error) {
	if len(specs) == 0 {
		return nil, ErrNoColumns
	}
	if rng == nil {
		rng = dist.NewRNG(0)
	}

	t := New()
	for _, spec := range specs {
		xs, err := dist.RandN(spec.Dist, rng, n)
		if err != nil {
			return nil, err
		}
		if err = t.AddColumn(spec.Name, xs); err != nil {
			return nil, err
		}
	}
	return t, nil
}
