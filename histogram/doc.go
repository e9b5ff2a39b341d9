// Package histogram provides fixed-range, uniform-bin histograms for
// turning samples into density views.
//
// 🚀 What is histogram?
//
//	The visualization bridge of statkit: feed it draws (or a table
//	column) and read back per-bin counts and normalized densities that
//	any plotting layer can render next to a dist.Curve.
//
// ✨ Key features:
//   - fixed uniform bins over [lo, hi), chosen up front — no rebinning
//   - out-of-range observations are never lost: they land in the
//     Underflow/Overflow counters
//   - Density(i) integrates to 1 over the in-range mass, so the bars
//     are directly comparable to a probability density curve
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/statkit/histogram"
//
//	h, err := histogram.New(-4, 4, 40)
//	if err != nil { ... }
//	h.ObserveAll(xs)
//
//	for i := 0; i < h.Bins(); i++ {
//	  lo, hi, _ := h.Edges(i)
//	  d, _ := h.Density(i)
//	  // render a bar of height d over [lo, hi)
//	}
//
// Observe is O(1); nothing here allocates after New.
package histogram
