package table

// Table is an ordered set of named float64 columns, all of equal
// length, rows aligned by position.
//
// Invariants (enforced on every construction path):
//   - every column name is non-empty and unique,
//   - len(column) == Len() for every column.
//
// A Table is not safe for concurrent mutation; concurrent reads are
// fine once construction is done.
type Table struct {
	names []string
	cols  [][]float64
	index map[string]int // name -> position in names/cols
}

// New returns an empty table with no columns and zero rows.
func New() *Table {
	return &Table{index: make(map[string]int)}
}

// FromColumns builds a table from parallel name and column slices.
// Column data is copied; the caller keeps ownership of cols.
//
// Errors: ErrLengthMismatch (len(names) != len(cols), or ragged
// columns), ErrEmptyName, ErrDuplicateColumn.
func FromColumns(names []string, cols [][]float64) (*Table, error) {
	if len(names) != len(cols) {
		return nil, ErrLengthMismatch
	}
	t := New()
	for i, name := range names {
		if err := t.AddColumn(name, cols[i]); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// AddColumn appends a named column. The first column fixes the row
// count; every later column must match it. values is copied.
//
// Errors: ErrNilTable, ErrEmptyName, ErrDuplicateColumn,
// ErrLengthMismatch.
func (t *Table) AddColumn(name string, values []float64) error {
	if t == nil {
		return ErrNilTable
	}
	if name == "" {
		return ErrEmptyName
	}
	if _, ok := t.index[name]; ok {
		return ErrDuplicateColumn
	}
	if len(t.cols) > 0 && len(values) != t.Len() {
		return ErrLengthMismatch
	}

	col := make([]float64, len(values))
	copy(col, values)

	if t.index == nil {
		t.index = make(map[string]int)
	}
	t.index[name] = len(t.names)
	t.names = append(t.names, name)
	t.cols = append(t.cols, col)
	return nil
}

// Len returns the number of rows (0 for a table with no columns).
func (t *Table) Len() int {
	if t == nil || len(t.cols) == 0 {
		return 0
	}
	return len(t.cols[0])
}

// NumCols returns the number of columns.
func (t *Table) NumCols() int {
	if t == nil {
		return 0
	}
	return len(t.names)
}

// Names returns a copy of the column names in table order.
func (t *Table) Names() []string {
	if t == nil {
		return nil
	}
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Column returns a copy of the named column's values.
//
// Errors: ErrNilTable, ErrColumnNotFound.
func (t *Table) Column(name string) ([]float64, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	i, ok := t.index[name]
	if !ok {
		return nil, ErrColumnNotFound
	}
	out := make([]float64, len(t.cols[i]))
	copy(out, t.cols[i])
	return out, nil
}

// ColumnAt returns the name and a copy of the values of the i-th
// column.
//
// Errors: ErrNilTable, ErrColumnOutOfRange.
func (t *Table) ColumnAt(i int) (string, []float64, error) {
	if t == nil {
		return "", nil, ErrNilTable
	}
	if i < 0 || i >= len(t.cols) {
		return "", nil, ErrColumnOutOfRange
	}
	out := make([]float64, len(t.cols[i]))
	copy(out, t.cols[i])
	return t.names[i], out, nil
}

// Row returns a copy of the i-th row in column order.
//
// Errors: ErrNilTable, ErrRowOutOfRange.
func (t *Table) Row(i int) ([]float64, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	if i < 0 || i >= t.Len() {
		return nil, ErrRowOutOfRange
	}
	out := make([]float64, len(t.cols))
	for c := range t.cols {
		out[c] = t.cols[c][i]
	}
	return out, nil
}
