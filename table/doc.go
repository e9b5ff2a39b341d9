// Package table provides an ordered collection of named, equal-length
// float64 columns plus its delimited-text persistence.
//
// 🚀 What is table?
//
//	The one tabular abstraction every statkit workflow shares:
//	  • build it by hand (AddColumn / FromColumns),
//	  • build it by sampling distributions (Sample),
//	  • read and write it as CSV with a header row,
//	  • pull columns out for the stats package.
//
// ✨ Key features:
//   - hard invariant: all columns have equal length, enforced on every
//     construction path (ErrLengthMismatch otherwise)
//   - column names are unique and non-empty (ErrDuplicateColumn, ErrEmptyName)
//   - CSV round trip preserves names, row count and exact float64
//     values (numbers travel in Go 'g' shortest form)
//   - accessors copy: callers can never corrupt the table through a
//     returned slice
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/statkit/dist"
//	  "github.com/katalvlaran/statkit/table"
//	)
//
//	n, _ := dist.NewNormal(0, 1)
//	tb, err := table.Sample(dist.NewRNG(42), 1_000,
//	  table.ColumnSpec{Name: "x", Dist: n},
//	)
//	if err != nil { ... }
//
//	if err = tb.WriteFile("sample.csv"); err != nil { ... }
//	back, err := table.ReadFile("sample.csv")
//
// No update or delete semantics exist: a Table only grows by columns
// and is otherwise read-only.
package table
