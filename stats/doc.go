// Package stats provides descriptive statistics and two-sided
// confidence intervals for a sample mean.
//
// 🚀 What is stats?
//
//	The arithmetic layer of statkit: it consumes plain []float64
//	columns (usually pulled out of a table.Table) and produces
//	estimates:
//	  • Mean, Variance, StdDev — unbiased estimators (n−1 divisor)
//	  • Min, Max, Median, Percentile — order statistics
//	  • Covariance, Correlation — pairwise column statistics
//	  • MeanInterval — the sample → summarize → interval-estimate step
//
// ✨ Key features:
//   - interval estimation under any reference distribution: margin of
//     error is z·s/√n with z the (1−α/2)-quantile of the reference
//   - WithStudentT() switches to the small-sample t reference with
//     n−1 degrees of freedom in one call
//   - every interval is symmetric about the sample mean and shrinks
//     as 1/√n — the properties tests pin this down
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/statkit/stats"
//
//	iv, err := stats.MeanInterval(xs, 0.95)            // normal reference
//	iv, err  = stats.MeanInterval(xs, 0.95, stats.WithStudentT())
//	if err != nil {
//	  // handle ErrTooFewSamples or ErrBadConfidence
//	}
//	fmt.Printf("[%.3f, %.3f]\n", iv.Lower, iv.Upper)
//
// Percentiles use linear interpolation between closest ranks (the
// common "type 7" estimator), so Median(xs) == Percentile(xs, 0.5).
//
// No function here mutates its input; sorting happens on copies.
package stats
