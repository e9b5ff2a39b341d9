package dist

import "math"

// Curve samples the density of d on an inclusive uniform grid of n
// points over [lo, hi] and returns the (x, PDF(x)) pairs in x order.
// The result is the data feed for any plotting layer; rendering is out
// of scope for this package.
//
// Errors:
//   - ErrNilDist     — d is nil.
//   - ErrBadRange    — lo >= hi, or either bound is NaN/±Inf.
//   - ErrBadGridSize — n < 2.
//
// Complexity: O(n) time, O(n) space.
func Curve(d Dist, lo, hi float64, n int) ([]Point, error) {
	if d == nil {
		return nil, ErrNilDist
	}
	if math.IsNaN(lo) || math.IsInf(lo, 0) || math.IsNaN(hi) || math.IsInf(hi, 0) || lo >= hi {
		return nil, ErrBadRange
	}
	if n < 2 {
		return nil, ErrBadGridSize
	}

	pts := make([]Point, n)
	step := (hi - lo) / float64(n-1)
	for i := range pts {
		x := lo + float64(i)*step
		if i == n-1 {
			x = hi // close the grid exactly despite rounding drift
		}
		pts[i] = Point{X: x, Y: d.PDF(x)}
	}
	return pts, nil
}
