// Package event drives binners from a sequential source of events.
//
// A Source yields named scalar fields for the current event. Bindings tie
// field names to a binner, and Run feeds every event to every binding on the
// caller's goroutine.
package event

import (
	"fmt"

	"github.com/hepkit/hbin/errs"
)

// Source is a cursor over events.
//
// Next advances to the next event and reports whether there is one. Float
// reads a field of the current event. Err reports the error that ended
// iteration, if any.
type Source interface {
	Next() bool
	Float(field string) (float64, error)
	Err() error
}

// Rows is an in-memory Source over a column table.
type Rows struct {
	cols map[string]int
	rows [][]float64
	cur  int
}

var _ Source = (*Rows)(nil)

// NewRows creates a source over rows, each holding one value per column.
//
// Returns:
//   - *Rows: The source, positioned before the first row
//   - error: ErrArity if a row length differs from the column count
func NewRows(columns []string, rows [][]float64) (*Rows, error) {
	cols := make(map[string]int, len(columns))
	for i, c := range columns {
		cols[c] = i
	}
	for i, r := range rows {
		if len(r) != len(columns) {
			return nil, fmt.Errorf("%w: row %d has %d values for %d columns", errs.ErrArity, i, len(r), len(columns))
		}
	}

	return &Rows{cols: cols, rows: rows, cur: -1}, nil
}

// Next advances to the next row.
func (r *Rows) Next() bool {
	if r.cur < len(r.rows) {
		r.cur++
	}

	return r.cur < len(r.rows)
}

// Float returns column field of the current row.
func (r *Rows) Float(field string) (float64, error) {
	i, ok := r.cols[field]
	if !ok {
		return 0, fmt.Errorf("%w: %q", errs.ErrUnknownField, field)
	}
	if r.cur < 0 || r.cur >= len(r.rows) {
		return 0, fmt.Errorf("%w: no current row", errs.ErrBinOutOfRange)
	}

	return r.rows[r.cur][i], nil
}

// Err always returns nil.
func (r *Rows) Err() error { return nil }

// Len returns the number of rows.
func (r *Rows) Len() int { return len(r.rows) }
