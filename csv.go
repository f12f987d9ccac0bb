package ionic

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// ReadCSV builds a table from delimited records. comma is the field delimiter;
// zero means a comma. Every record must have the same number of fields, or
// the number declared by cols when cols is non-empty.
func ReadCSV(r io.Reader, opts Options, comma rune, cols ...Column) (*Table, error) {
	cr := csv.NewReader(r)
	if comma != 0 {
		cr.Comma = comma
	}
	cr.FieldsPerRecord = len(cols)
	if comma == '\t' {
		cr.LazyQuotes = true
	}

	t := New(opts)
	if len(cols) > 0 {
		if err := t.SetColumnFormat(cols); err != nil {
			return nil, err
		}
	}
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return t, nil
		}
		if err != nil {
			if errors.Is(err, csv.ErrFieldCount) {
				return nil, fmt.Errorf("%w: %w", ErrColumnMismatch, err)
			}
			return nil, err
		}
		if err := t.AddRow(record...); err != nil {
			return nil, err
		}
	}
}

// WriteCSV writes the normalized cell text of every row as delimited records.
// comma is the field delimiter; zero means a comma.
func (t *Table) WriteCSV(w io.Writer, comma rune) error {
	cw := csv.NewWriter(w)
	if comma != 0 {
		cw.Comma = comma
	}
	record := make([]string, len(t.cols))
	for _, row := range t.rows {
		for i, cell := range row {
			record[i] = cell.Text
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
