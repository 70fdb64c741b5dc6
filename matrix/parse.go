// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	opNewFromRows = "NewFromRows"
	opParse       = "Parse"

	rowSep = ";"
)

// NewFromRows builds a Dense from literal row data. Every row must have the
// same length; values must be finite unless WithNoValidateNaNInf is given.
//
// Errors:
//   - ErrInvalidDimensions when rows or the first row is empty.
//   - ErrBadShape when rows are ragged.
//   - ErrNaNInf when a value violates the numeric policy.
//
// Complexity: O(r*c).
func NewFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opNewFromRows, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	m, err := newDenseWithPolicy(r, c, o.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opNewFromRows, err)
	}
	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, matrixErrorf(opNewFromRows,
				fmt.Errorf("row %d has %d columns, want %d: %w", i, len(rows[i]), c, ErrBadShape))
		}
		for j = 0; j < c; j++ {
			if err = m.Set(i, j, rows[i][j]); err != nil {
				return nil, matrixErrorf(opNewFromRows, err)
			}
		}
	}

	return m, nil
}

// Parse reads a matrix literal: rows separated by ';', entries separated by
// ',' and/or whitespace. "2,1;1,2" and "2 1; 1 2" are the same 2×2 matrix.
// A trailing ';' is tolerated.
//
// Errors:
//   - ErrSyntax for unparsable numbers or an empty literal.
//   - Any error of NewFromRows (ragged rows, NaN/Inf policy).
func Parse(literal string, opts ...Option) (*Dense, error) {
	chunks := strings.Split(strings.TrimSpace(literal), rowSep)
	rows := make([][]float64, 0, len(chunks))
	for i, chunk := range chunks {
		fields := strings.FieldsFunc(chunk, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
		})
		if len(fields) == 0 {
			if i == len(chunks)-1 && i > 0 {
				continue // trailing separator
			}
			return nil, matrixErrorf(opParse, fmt.Errorf("row %d is empty: %w", i, ErrSyntax))
		}
		row := make([]float64, len(fields))
		for j, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, matrixErrorf(opParse, fmt.Errorf("row %d col %d %q: %w", i, j, f, ErrSyntax))
			}
			row[j] = v
		}
		rows = append(rows, row)
	}

	m, err := NewFromRows(rows, opts...)
	if err != nil {
		return nil, matrixErrorf(opParse, err)
	}

	return m, nil
}
