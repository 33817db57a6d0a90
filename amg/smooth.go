// Package amg: prolongator smoothing by one damped-Jacobi sweep.
package amg

import "github.com/katalvlaran/lvlamg/sparse"

// SmoothProlongator damps the tentative prolongator t into the final
// prolongation operator P = (I − (omega/rho)·D⁻¹A)·T, where D is the
// diagonal of a and rho the estimated spectral radius of D⁻¹A.
//
// The smoothing operator S = I − (omega/rho)·D⁻¹A is materialized as a
// CSR (same pattern as A, diagonal shifted by one) and multiplied onto
// T, so the heavy lifting stays in the sparse SpGEMM kernel.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch
// (a.Cols != t.Rows), ErrZeroDiagonal, and sparse kernel errors.
// Complexity: dominated by the SpGEMM, O(flops of S·T).
func SmoothProlongator(a, t *sparse.CSR, omega, rho float64) (*sparse.CSR, error) {
	if a == nil || t == nil {
		return nil, ErrNilMatrix
	}
	if a.Rows() != a.Cols() {
		return nil, ErrNonSquare
	}
	if a.Cols() != t.Rows() {
		return nil, ErrDimensionMismatch
	}

	diag, err := sparse.Diagonal(a)
	if err != nil {
		return nil, err
	}
	for _, d := range diag {
		if d == 0 {
			return nil, ErrZeroDiagonal
		}
	}

	// Assemble S = I − (omega/rho)·D⁻¹A row by row. FromCOO merges the
	// identity contribution into A's stored diagonal entry.
	n := a.Rows()
	scale := omega / rho
	entries := make([]sparse.Entry, 0, a.NNZ()+n)
	var i, p int
	for i = 0; i < n; i++ {
		entries = append(entries, sparse.Entry{Row: i, Col: i, Val: 1})
		cols, vals, _ := a.Row(i)
		for p = 0; p < len(cols); p++ {
			entries = append(entries, sparse.Entry{
				Row: i,
				Col: cols[p],
				Val: -scale / diag[i] * vals[p],
			})
		}
	}
	s, err := sparse.FromCOO(n, n, entries)
	if err != nil {
		return nil, err
	}

	return sparse.Mul(s, t)
}
