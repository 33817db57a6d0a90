// SPDX-License-Identifier: MIT

// Package sparse: constructors and dense-format bridges.
package sparse

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Operation name constants for unified error wrapping.
const (
	opNewCSR    = "NewCSR"
	opFromCOO   = "FromCOO"
	opFromDense = "FromDense"
)

// csrErrorf wraps err with an operation tag, preserving the original
// error via %w so callers can still match sentinels with errors.Is.
// Call only when err != nil.
func csrErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// NewCSR constructs a CSR from raw arrays, taking ownership of the
// slices (no copy). The arrays are validated structurally:
//
//   - rows > 0 and cols > 0;
//   - len(rowPtr) == rows+1, rowPtr[0] == 0, rowPtr non-decreasing,
//     rowPtr[rows] == len(colInd) == len(val);
//   - every column index in [0, cols).
//
// Column indices are NOT required to be sorted within a row here;
// FromCOO guarantees sorted rows, and all kernels tolerate either.
// Returns ErrBadShape or ErrBadIndex on violation.
// Complexity: O(rows + nnz).
func NewCSR(rows, cols int, rowPtr, colInd []int, val []float64) (*CSR, error) {
	if rows <= 0 || cols <= 0 {
		return nil, csrErrorf(opNewCSR, ErrBadShape)
	}
	if len(rowPtr) != rows+1 || rowPtr[0] != 0 {
		return nil, csrErrorf(opNewCSR, ErrBadIndex)
	}
	if len(colInd) != len(val) || rowPtr[rows] != len(colInd) {
		return nil, csrErrorf(opNewCSR, ErrBadIndex)
	}
	var i int
	for i = 0; i < rows; i++ {
		if rowPtr[i] > rowPtr[i+1] {
			return nil, csrErrorf(opNewCSR, ErrBadIndex) // non-monotonic rowPtr
		}
	}
	for i = 0; i < len(colInd); i++ {
		if colInd[i] < 0 || colInd[i] >= cols {
			return nil, csrErrorf(opNewCSR, ErrBadIndex)
		}
	}

	return &CSR{rows: rows, cols: cols, rowPtr: rowPtr, colInd: colInd, val: val}, nil
}

// FromCOO builds a CSR from coordinate triplets. Duplicate (Row, Col)
// pairs are summed; entries are sorted by (row, col) so every row of
// the result has ascending column indices. Entries whose summed value
// is exactly zero are still stored — pattern zeros are the caller's
// business (Laplacian assembly relies on that).
// Returns ErrBadShape for non-positive dims, ErrOutOfRange for an
// entry outside the shape.
// Complexity: O(nnz log nnz) for the sort, O(rows + nnz) after.
func FromCOO(rows, cols int, entries []Entry) (*CSR, error) {
	if rows <= 0 || cols <= 0 {
		return nil, csrErrorf(opFromCOO, ErrBadShape)
	}
	for _, e := range entries {
		if e.Row < 0 || e.Row >= rows || e.Col < 0 || e.Col >= cols {
			return nil, csrErrorf(opFromCOO, ErrOutOfRange)
		}
	}

	// Sort a copy by (row, col) to keep the input untouched.
	es := make([]Entry, len(entries))
	copy(es, entries)
	sort.Slice(es, func(i, j int) bool {
		if es[i].Row != es[j].Row {
			return es[i].Row < es[j].Row
		}

		return es[i].Col < es[j].Col
	})

	rowPtr := make([]int, rows+1)
	colInd := make([]int, 0, len(es))
	val := make([]float64, 0, len(es))

	// Single pass: merge duplicates, count per-row entries.
	var k int
	for k = 0; k < len(es); {
		r, c := es[k].Row, es[k].Col
		sum := 0.0
		for k < len(es) && es[k].Row == r && es[k].Col == c {
			sum += es[k].Val
			k++
		}
		colInd = append(colInd, c)
		val = append(val, sum)
		rowPtr[r+1]++
	}
	// Prefix-sum the per-row counts into offsets.
	for r := 0; r < rows; r++ {
		rowPtr[r+1] += rowPtr[r]
	}

	return &CSR{rows: rows, cols: cols, rowPtr: rowPtr, colInd: colInd, val: val}, nil
}

// FromDense converts a gonum mat.Dense into CSR, dropping exact zeros.
// Returns ErrNilMatrix for a nil input.
// Complexity: O(rows*cols).
func FromDense(d *mat.Dense) (*CSR, error) {
	if d == nil {
		return nil, csrErrorf(opFromDense, ErrNilMatrix)
	}
	rows, cols := d.Dims()
	if rows <= 0 || cols <= 0 {
		return nil, csrErrorf(opFromDense, ErrBadShape)
	}

	rowPtr := make([]int, rows+1)
	colInd := make([]int, 0, rows)
	val := make([]float64, 0, rows)
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v = d.At(i, j)
			if v == 0 {
				continue
			}
			colInd = append(colInd, j)
			val = append(val, v)
		}
		rowPtr[i+1] = len(colInd)
	}

	return &CSR{rows: rows, cols: cols, rowPtr: rowPtr, colInd: colInd, val: val}, nil
}

// ToDense materializes the matrix as a gonum mat.Dense.
// The coarsest-level direct solve densifies through this bridge.
// Complexity: O(rows*cols) memory, O(rows*cols + nnz) time.
func (a *CSR) ToDense() *mat.Dense {
	d := mat.NewDense(a.rows, a.cols, nil)
	var i, p int
	for i = 0; i < a.rows; i++ {
		for p = a.rowPtr[i]; p < a.rowPtr[i+1]; p++ {
			// Accumulate rather than assign: NewCSR permits duplicate
			// column indices within a row.
			d.Set(i, a.colInd[p], d.At(i, a.colInd[p])+a.val[p])
		}
	}

	return d
}
