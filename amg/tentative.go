// Package amg: tentative prolongator from aggregates and a nullspace
// candidate vector.
package amg

import (
	"math"

	"github.com/katalvlaran/lvlamg/sparse"
)

// FitCandidates builds the tentative prolongator T and the coarse
// nullspace vector from an aggregate assignment and the fine-level
// nullspace candidate B.
//
// T is n×count with exactly one entry per row: T[i, aggregates[i]] =
// B[i] / ‖B restricted to that aggregate‖₂, so every column of T has
// unit norm and T·Bc reproduces B. Bc[k] is the 2-norm of B over
// aggregate k. An aggregate on which B vanishes keeps a zero column
// and Bc entry zero — a degenerate candidate is the caller's
// precondition violation, not an error here.
//
// Errors: ErrDimensionMismatch when len(aggregates) != len(b) or an id
// falls outside [0, count).
// Complexity: Time O(n), Space O(n + count).
func FitCandidates(aggregates []int, count int, b []float64) (*sparse.CSR, []float64, error) {
	n := len(aggregates)
	if n == 0 || len(b) != n || count < 1 {
		return nil, nil, ErrDimensionMismatch
	}
	for _, k := range aggregates {
		if k < 0 || k >= count {
			return nil, nil, ErrDimensionMismatch
		}
	}

	// Per-aggregate 2-norms of the candidate.
	coarse := make([]float64, count)
	var i int
	for i = 0; i < n; i++ {
		coarse[aggregates[i]] += b[i] * b[i]
	}
	for i = 0; i < count; i++ {
		coarse[i] = math.Sqrt(coarse[i])
	}

	// One normalized entry per row.
	rowPtr := make([]int, n+1)
	colInd := make([]int, n)
	val := make([]float64, n)
	for i = 0; i < n; i++ {
		rowPtr[i+1] = i + 1
		colInd[i] = aggregates[i]
		if nrm := coarse[aggregates[i]]; nrm != 0 {
			val[i] = b[i] / nrm
		}
	}

	t, err := sparse.NewCSR(n, count, rowPtr, colInd, val)
	if err != nil {
		return nil, nil, err
	}

	return t, coarse, nil
}
