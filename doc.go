// Package statkit is your in-memory toolbox for sampling, summarizing
// and interval-estimating numeric data — from parametric distributions
// to tabular CSV round-trips.
//
// 🚀 What is statkit?
//
//	A modern, deterministic, zero-dependency statistics library that
//	brings together:
//		• Distributions: Normal, Student-t, Exponential, Uniform, Laplace —
//		  sampling, density, cumulative probability, quantiles
//		• Tables: named equal-length float64 columns + CSV read/write
//		• Descriptive statistics: mean, variance, percentiles, correlation
//		• Interval estimation: two-sided confidence intervals for a mean
//		• Histograms: uniform binning with normalized densities
//
// ✨ Why choose statkit?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Reproducible – seeded RNG streams, no time-based randomness anywhere
//   - Pure Go – no cgo, no hidden deps
//   - Honest numerics – unbiased estimators, documented tolerances
//
// Under the hood, everything is organized under four subpackages:
//
//	dist/      — parametric distributions: draw, PDF, CDF, quantile, moments
//	table/     — named-column tables and delimited-text persistence
//	stats/     — descriptive statistics and confidence intervals
//	histogram/ — uniform-bin histograms for density visualization
//
// Quick ASCII example:
//
//	    draw ──▶ table ──▶ summarize ──▶ interval
//	                │
//	                └──▶ CSV ──▶ table (round trip)
//
//	represents the one workflow every analysis repeats.
//
// Dive into README-style examples under examples/ and each package's
// example_test.go for full walkthroughs.
//
//	go get github.com/katalvlaran/statkit
package statkit
