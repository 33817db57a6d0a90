// Package amg: symmetric strength-of-connection filtering.
package amg

import (
	"math"

	"github.com/katalvlaran/lvlamg/sparse"
)

// StrengthOfConnection filters a into the strength matrix C: entry
// (i,j) survives iff i == j or |a_ij| ≥ theta·sqrt(|a_ii|·|a_jj|).
// With theta == 0 every stored entry survives and C shares A's
// pattern. The diagonal is always kept so every vertex stays present
// in the coarsening graph.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: Time O(nnz), Space O(nnz) for the result.
func StrengthOfConnection(a *sparse.CSR, theta float64) (*sparse.CSR, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}
	if a.Rows() != a.Cols() {
		return nil, ErrNonSquare
	}

	diag, err := sparse.Diagonal(a)
	if err != nil {
		return nil, err
	}

	n := a.Rows()
	rowPtr := make([]int, n+1)
	colInd := make([]int, 0, a.NNZ())
	val := make([]float64, 0, a.NNZ())

	var i, j, p int
	var threshold float64
	for i = 0; i < n; i++ {
		cols, vals, _ := a.Row(i)
		for p = 0; p < len(cols); p++ {
			j = cols[p]
			if j != i {
				threshold = theta * math.Sqrt(math.Abs(diag[i])*math.Abs(diag[j]))
				if math.Abs(vals[p]) < threshold {
					continue // weak connection, dropped
				}
			}
			colInd = append(colInd, j)
			val = append(val, vals[p])
		}
		rowPtr[i+1] = len(colInd)
	}

	return sparse.NewCSR(n, n, rowPtr, colInd, val)
}
