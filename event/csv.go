package event

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hepkit/hbin/errs"
)

// ReadCSV reads a header row of field names followed by numeric rows.
// Blank cells read as zero.
func ReadCSV(r io.Reader) (*Rows, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: csv input has no header", errs.ErrSyntax)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrSyntax, err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows [][]float64
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errs.ErrSyntax, err)
		}

		row := make([]float64, len(rec))
		for i, cell := range rec {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			if row[i], err = strconv.ParseFloat(cell, 64); err != nil {
				line, _ := cr.FieldPos(i)
				return nil, fmt.Errorf("%w: line %d column %q: bad number %q", errs.ErrSyntax, line, header[i], cell)
			}
		}
		rows = append(rows, row)
	}

	return NewRows(header, rows)
}
