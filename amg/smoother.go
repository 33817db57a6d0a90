// Package amg: per-level damped Jacobi relaxation.
package amg

import "github.com/katalvlaran/lvlamg/sparse"

// jacobiSmoother holds the per-level relaxation state: the diagonal
// inverse pre-scaled by ω/ρ, and an owned temp buffer so smoothing
// sweeps never allocate. Each Level owns exactly one smoother; buffers
// are never shared across levels.
type jacobiSmoother struct {
	scaledDinv []float64 // (ω/ρ) / a_ii per row
	temp       []float64 // scratch for A·x during postsmooth
}

// newJacobiSmoother builds a smoother for operator a with estimated
// spectral radius rho of D⁻¹A, using the standard damping ω = 4/3
// normalized by rho.
// Errors: ErrZeroDiagonal and sparse.Diagonal failures.
func newJacobiSmoother(a *sparse.CSR, rho float64) (*jacobiSmoother, error) {
	diag, err := sparse.Diagonal(a)
	if err != nil {
		return nil, err
	}
	scale := prolongatorDamping / rho
	for i, d := range diag {
		if d == 0 {
			return nil, ErrZeroDiagonal
		}
		diag[i] = scale / d
	}

	return &jacobiSmoother{
		scaledDinv: diag,
		temp:       make([]float64, a.Rows()),
	}, nil
}

// presmooth performs the initial relaxation sweep x = (ω/ρ)·D⁻¹·b.
// The incoming x is overwritten: within a V-cycle the pre-smoothing
// step always starts from a zero correction, so the single scaled
// Jacobi step needs no A·x term.
func (s *jacobiSmoother) presmooth(_ *sparse.CSR, b, x []float64) {
	for i := range x {
		x[i] = s.scaledDinv[i] * b[i]
	}
}

// postsmooth performs one in-place relaxation sweep
// x += (ω/ρ)·D⁻¹·(b − A·x), reusing the owned temp buffer.
func (s *jacobiSmoother) postsmooth(a *sparse.CSR, b, x []float64) error {
	if err := sparse.MulVecTo(s.temp, a, x); err != nil {
		return err
	}
	for i := range x {
		x[i] += s.scaledDinv[i] * (b[i] - s.temp[i])
	}

	return nil
}
