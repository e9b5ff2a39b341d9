package table

import "errors"

// Sentinel errors for construction, access and CSV round trips.
// All are matched with errors.Is; CSV cell failures are %w-wrapped
// with row/column context at the boundary.
var (
	// ErrNilTable indicates a nil *Table receiver or argument.
	ErrNilTable = errors.New("table: table is nil")

	// ErrEmptyName indicates an empty column name.
	ErrEmptyName = errors.New("table: column name is empty")

	// ErrDuplicateColumn indicates a column name already present.
	ErrDuplicateColumn = errors.New("table: duplicate column name")

	// ErrLengthMismatch indicates a column whose length differs from the
	// table's row count.
	ErrLengthMismatch = errors.New("table: column lengths disagree")

	// ErrColumnNotFound indicates a lookup by unknown column name.
	ErrColumnNotFound = errors.New("table: column not found")

	// ErrColumnOutOfRange indicates a positional column index outside
	// [0, NumCols).
	ErrColumnOutOfRange = errors.New("table: column index out of range")

	// ErrRowOutOfRange indicates a row index outside [0, Len).
	ErrRowOutOfRange = errors.New("table: row index out of range")

	// ErrNoColumns indicates an operation that needs at least one column
	// (writing CSV, sampling with zero specs).
	ErrNoColumns = errors.New("table: table has no columns")

	// ErrEmptyCSV indicates CSV input without even a header row.
	ErrEmptyCSV = errors.New("table: csv input is empty")

	// ErrBadHeader indicates an invalid CSV header (empty or duplicate
	// column names).
	ErrBadHeader = errors.New("table: invalid csv header")

	// ErrBadCell indicates a CSV cell that does not parse as float64.
	ErrBadCell = errors.New("table: cell is not a number")
)
