// SPDX-License-Identifier: MIT

// Package sparse: the CSR type and its accessors.
// Construction lives in builder.go, kernels in ops.go, and shared
// validation in validators.go per the package conventions.
package sparse

// Entry is a coordinate-format (COO) triplet used by FromCOO.
// Duplicate (Row, Col) entries are summed during ingestion.
type Entry struct {
	Row, Col int
	Val      float64
}

// CSR is a sparse matrix in compressed sparse row format.
//
// The three backing slices follow the classic layout:
//
//	rowPtr — length rows+1; row i owns colInd[rowPtr[i]:rowPtr[i+1]].
//	colInd — column index of each stored entry, ascending within a row.
//	val    — value of each stored entry, parallel to colInd.
//
// The shape is fixed at construction; values may be mutated through
// row views, but the sparsity pattern never changes in place. All
// kernels in this package allocate fresh results.
type CSR struct {
	rows, cols int
	rowPtr     []int
	colInd     []int
	val        []float64
}

// Rows returns the number of rows. Complexity: O(1).
func (a *CSR) Rows() int { return a.rows }

// Cols returns the number of columns. Complexity: O(1).
func (a *CSR) Cols() int { return a.cols }

// NNZ returns the number of stored entries. Complexity: O(1).
func (a *CSR) NNZ() int { return len(a.val) }

// Clone returns a deep copy of the matrix, independent of the original.
// Complexity: O(rows + nnz).
func (a *CSR) Clone() *CSR {
	c := &CSR{
		rows:   a.rows,
		cols:   a.cols,
		rowPtr: make([]int, len(a.rowPtr)),
		colInd: make([]int, len(a.colInd)),
		val:    make([]float64, len(a.val)),
	}
	copy(c.rowPtr, a.rowPtr)
	copy(c.colInd, a.colInd)
	copy(c.val, a.val)

	return c
}

// At retrieves the element at (i, j), returning zero for entries not
// present in the pattern. Returns ErrOutOfRange for invalid indices.
// Complexity: O(nnz(row i)) — a linear scan of the row.
func (a *CSR) At(i, j int) (float64, error) {
	if i < 0 || i >= a.rows || j < 0 || j >= a.cols {
		return 0, ErrOutOfRange
	}
	for p := a.rowPtr[i]; p < a.rowPtr[i+1]; p++ {
		if a.colInd[p] == j {
			return a.val[p], nil
		}
	}

	return 0, nil
}

// Row returns views (not copies) of row i's column indices and values.
// Mutating the returned value slice mutates the matrix; the column
// slice must be treated as read-only. Returns ErrOutOfRange for an
// invalid row. Complexity: O(1).
func (a *CSR) Row(i int) (cols []int, vals []float64, err error) {
	if i < 0 || i >= a.rows {
		return nil, nil, ErrOutOfRange
	}
	lo, hi := a.rowPtr[i], a.rowPtr[i+1]

	return a.colInd[lo:hi], a.val[lo:hi], nil
}
