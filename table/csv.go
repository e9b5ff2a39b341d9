package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// WriteCSV writes the table as comma-delimited text: one header row of
// column names, then one row per table row. Numbers are formatted in
// Go 'g' shortest form, which ReadCSV parses back to the identical
// float64 — the round trip is exact, not approximate.
//
// Errors: ErrNilTable, ErrNoColumns, wrapped csv writer errors.
func (t *Table) WriteCSV(w io.Writer) error {
	if t == nil {
		return ErrNilTable
	}
	if len(t.names) == 0 {
		return ErrNoColumns
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(t.names); err != nil {
		return fmt.Errorf("table: write header: %w", err)
	}

	record := make([]string, len(t.cols))
	for row := 0; row < t.Len(); row++ {
		for c := range t.cols {
			record[c] = strconv.FormatFloat(t.cols[c][row], 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("table: write row %d: %w", row, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("table: flush: %w", err)
	}
	return nil
}

// ReadCSV reconstructs a table from comma-delimited text produced by
// WriteCSV (or any CSV with a header row and numeric cells).
//
// Errors: ErrEmptyCSV (no header row), ErrBadHeader (empty or
// duplicate names), ErrBadCell wrapped with row/column context,
// wrapped csv reader errors (including ragged rows, which
// encoding/csv rejects itself).
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmptyCSV
	}
	if err != nil {
		return nil, fmt.Errorf("table: read header: %w", err)
	}

	cols := make([][]float64, len(header))
	seen := make(map[string]struct{}, len(header))
	for _, name := range header {
		if name == "" {
			return nil, ErrBadHeader
		}
		if _, dup := seen[name]; dup {
			return nil, ErrBadHeader
		}
		seen[name] = struct{}{}
	}

	for row := 1; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("table: read row %d: %w", row, err)
		}
		for c, cell := range record {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("table: row %d, column %q: %w", row, header[c], ErrBadCell)
			}
			cols[c] = append(cols[c], v)
		}
	}

	return FromColumns(header, cols)
}

// WriteFile writes the table to a CSV file at path, creating or
// truncating it.
func (t *Table) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("table: create %s: %w", path, err)
	}
	defer f.Close()

	if err = t.WriteCSV(f); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("table: close %s: %w", path, err)
	}
	return nil
}

// ReadFile reads a CSV file at path into a table.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("table: open %s: %w", path, err)
	}
	defer f.Close()

	return ReadCSV(f)
}
