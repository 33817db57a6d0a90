// Package amg: Ritz estimate of the spectral radius of D⁻¹A.
package amg

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlamg/sparse"
)

// breakdownTol ends the Arnoldi recurrence when the next basis vector
// has essentially vanished (an invariant subspace was found).
const breakdownTol = 1e-12

// RitzSpectralRadius estimates the largest eigenvalue magnitude of
// D⁻¹A, where D is the diagonal of a, by running iters steps of the
// Arnoldi iteration and taking the spectral radius of the resulting
// Hessenberg matrix (its Ritz values approximate the extremal
// spectrum).
//
// The starting vector is the normalized all-ones vector, making the
// estimate fully deterministic: two hierarchies built from the same
// operator see the same rho.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrZeroDiagonal,
// ErrSpectralEstimate when the Hessenberg eigen factorization fails,
// ErrOptionViolation when iters < 1.
// Complexity: Time O(iters·nnz + iters²·n + iters³), Space O(iters·n).
func RitzSpectralRadius(a *sparse.CSR, iters int) (float64, error) {
	if a == nil {
		return 0, ErrNilMatrix
	}
	if a.Rows() != a.Cols() {
		return 0, ErrNonSquare
	}
	if iters < 1 {
		return 0, ErrOptionViolation
	}

	diag, err := sparse.Diagonal(a)
	if err != nil {
		return 0, err
	}
	n := a.Rows()
	var i int
	for i = 0; i < n; i++ {
		if diag[i] == 0 {
			return 0, ErrZeroDiagonal
		}
	}

	// The Krylov dimension cannot exceed the operator size.
	m := iters
	if m > n {
		m = n
	}

	// Arnoldi with modified Gram-Schmidt on the operator w = D⁻¹(A·v).
	basis := make([][]float64, 1, m+1)
	basis[0] = make([]float64, n)
	for i = 0; i < n; i++ {
		basis[0][i] = 1
	}
	floats.Scale(1/floats.Norm(basis[0], 2), basis[0])

	hess := make([]float64, m*m) // row-major Hessenberg, square part only
	w := make([]float64, n)
	var j, k int
	var hjk, hsub float64
	steps := m
	for j = 0; j < m; j++ {
		// w = D⁻¹·A·v_j
		if err = sparse.MulVecTo(w, a, basis[j]); err != nil {
			return 0, err
		}
		for i = 0; i < n; i++ {
			w[i] /= diag[i]
		}
		// Orthogonalize against the current basis.
		for k = 0; k <= j; k++ {
			hjk = floats.Dot(basis[k], w)
			hess[k*m+j] = hjk
			floats.AddScaled(w, -hjk, basis[k])
		}
		hsub = floats.Norm(w, 2)
		if j+1 < m {
			if hsub < breakdownTol {
				// Invariant subspace: the leading (j+1)×(j+1) block
				// already carries the full Ritz spectrum.
				steps = j + 1
				break
			}
			hess[(j+1)*m+j] = hsub
			next := make([]float64, n)
			copy(next, w)
			floats.Scale(1/hsub, next)
			basis = append(basis, next)
		}
	}

	// Spectral radius of the (possibly truncated) Hessenberg block.
	hm := mat.NewDense(steps, steps, nil)
	for i = 0; i < steps; i++ {
		for k = 0; k < steps; k++ {
			hm.Set(i, k, hess[i*m+k])
		}
	}
	var eig mat.Eigen
	if ok := eig.Factorize(hm, mat.EigenNone); !ok {
		return 0, ErrSpectralEstimate
	}

	rho := 0.0
	for _, v := range eig.Values(nil) {
		if abs := cmplx.Abs(v); abs > rho {
			rho = abs
		}
	}
	if rho == 0 || math.IsNaN(rho) {
		return 0, ErrSpectralEstimate
	}

	return rho, nil
}
