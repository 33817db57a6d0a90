// Package amg: convergence monitoring for the outer iteration.
package amg

import "gonum.org/v1/gonum/floats"

// Monitor drives the outer stationary iteration: Finished inspects the
// current residual and reports whether iteration should stop; Advance
// is called once after every accepted update to move the iteration
// bookkeeping forward.
type Monitor interface {
	Finished(residual []float64) bool
	Advance()
}

// DefaultMonitor stops when the residual 2-norm drops below
// relTol·‖b‖₂ (or below relTol outright when b is zero), or when the
// iteration limit is reached.
type DefaultMonitor struct {
	bNorm    float64
	relTol   float64
	limit    int
	iter     int
	lastNorm float64
}

// NewMonitor builds a DefaultMonitor from the right-hand side b with
// an iteration limit and a relative tolerance. Non-positive limit or
// tolerance fall back to the package defaults (500, 1e-6).
func NewMonitor(b []float64, limit int, relTol float64) *DefaultMonitor {
	if limit <= 0 {
		limit = defaultIterationLimit
	}
	if relTol <= 0 {
		relTol = defaultTolerance
	}

	return &DefaultMonitor{
		bNorm:  floats.Norm(b, 2),
		relTol: relTol,
		limit:  limit,
	}
}

// Finished reports whether the iteration should stop for the given
// residual: either convergence or the iteration limit.
func (m *DefaultMonitor) Finished(residual []float64) bool {
	m.lastNorm = floats.Norm(residual, 2)
	target := m.relTol * m.bNorm
	if m.bNorm == 0 {
		target = m.relTol
	}

	return m.lastNorm <= target || m.iter >= m.limit
}

// Advance moves the iteration counter forward.
func (m *DefaultMonitor) Advance() { m.iter++ }

// Iterations returns the number of completed outer iterations.
func (m *DefaultMonitor) Iterations() int { return m.iter }

// ResidualNorm returns the residual 2-norm most recently seen by
// Finished.
func (m *DefaultMonitor) ResidualNorm() float64 { return m.lastNorm }

// Converged reports whether the last observed residual met the
// tolerance (as opposed to stopping on the iteration limit).
func (m *DefaultMonitor) Converged() bool {
	target := m.relTol * m.bNorm
	if m.bNorm == 0 {
		target = m.relTol
	}

	return m.lastNorm <= target
}
