// Package amg: the V-cycle and the outer stationary iteration.
package amg

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvlamg/sparse"
)

// Cycle applies exactly one V-cycle to the system at the finest level:
// x is improved in place from right-hand side b. This is the
// preconditioner form of the hierarchy — one Cycle call is one
// application of M⁻¹ inside an outer Krylov or stationary method.
//
// Errors: ErrDimensionMismatch for wrong vector lengths, ErrCoarseSolve
// if the coarse direct solve fails.
func (h *Hierarchy) Cycle(b, x []float64) error {
	n := h.Levels[0].A.Rows()
	if len(b) != n || len(x) != n {
		return ErrDimensionMismatch
	}

	return h.cycle(b, x, 0)
}

// Solve runs the outer stationary iteration with a default monitor
// built from b (relative tolerance 1e-6, iteration limit 500).
func (h *Hierarchy) Solve(b, x []float64) error {
	return h.SolveMonitored(b, x, NewMonitor(b, defaultIterationLimit, defaultTolerance))
}

// SolveMonitored iterates x toward A·x = b using the hierarchy as a
// stationary method: each outer step runs one V-cycle on the current
// residual and adds the resulting update to x. The residual is always
// recomputed from scratch after each update — never incrementally —
// trading a matrix-vector product per step for immunity to drift.
//
// The update and residual vectors are owned by this invocation, so
// independent calls never share scratch state. The loop checks the
// configured context between cycles.
//
// Errors: ErrNilMonitor, ErrDimensionMismatch, ErrCoarseSolve, or the
// context's error on cancellation.
func (h *Hierarchy) SolveMonitored(b, x []float64, m Monitor) error {
	if m == nil {
		return ErrNilMonitor
	}
	a := h.Levels[0].A
	n := a.Rows()
	if len(b) != n || len(x) != n {
		return ErrDimensionMismatch
	}

	update := make([]float64, n)
	residual := make([]float64, n)

	// Initial residual r = b − A·x.
	if err := h.residualInto(residual, a, b, x); err != nil {
		return err
	}

	for !m.Finished(residual) {
		select {
		case <-h.opts.Ctx.Done():
			return h.opts.Ctx.Err()
		default:
		}

		// One V-cycle on the residual yields the update: x += M⁻¹·r.
		if err := h.cycle(residual, update, 0); err != nil {
			return err
		}
		floats.Add(x, update)

		// Recompute the residual from scratch.
		if err := h.residualInto(residual, a, b, x); err != nil {
			return err
		}
		m.Advance()
	}

	return nil
}

// residualInto computes dst = b − a·x using dst as the only scratch.
func (h *Hierarchy) residualInto(dst []float64, a *sparse.CSR, b, x []float64) error {
	if err := sparse.MulVecTo(dst, a, x); err != nil {
		return err
	}
	floats.Scale(-1, dst)
	floats.Add(dst, b)

	return nil
}

// cycle is the recursive V-cycle over the level index i (0-based).
//
// Base case — the coarsest level: copy b into the host-resident
// vector, solve through the precomputed LU factorization, copy the
// solution back into x. This is the only non-iterative solve in the
// hierarchy, and the only point where data crosses into dense host
// storage.
//
// Recursive case: presmooth, form the residual into the level's
// reusable buffer, restrict it to the coarser right-hand side,
// recurse, prolongate the coarse solution back through the same
// buffer as a correction, and postsmooth.
func (h *Hierarchy) cycle(b, x []float64, i int) error {
	if i+1 == len(h.Levels) {
		copy(h.coarseB.RawVector().Data, b)
		if err := h.coarseLU.SolveVecTo(h.coarseX, false, h.coarseB); err != nil {
			return fmt.Errorf("%w: %v", ErrCoarseSolve, err)
		}
		copy(x, h.coarseX.RawVector().Data)

		return nil
	}

	lvl := &h.Levels[i]
	next := &h.Levels[i+1]

	// Presmooth.
	lvl.smoother.presmooth(lvl.A, b, x)

	// Residual r = b − A·x into the level's buffer.
	if err := sparse.MulVecTo(lvl.residual, lvl.A, x); err != nil {
		return err
	}
	floats.Scale(-1, lvl.residual)
	floats.Add(lvl.residual, b)

	// Restrict to the coarse right-hand side.
	if err := sparse.MulVecTo(next.rhs, lvl.R, lvl.residual); err != nil {
		return err
	}

	// Coarse-grid solve.
	if err := h.cycle(next.rhs, next.x, i+1); err != nil {
		return err
	}

	// Prolongate and apply the coarse correction: x += P·x_coarse.
	if err := sparse.MulVecTo(lvl.residual, lvl.P, next.x); err != nil {
		return err
	}
	floats.Add(x, lvl.residual)

	// Postsmooth.
	return lvl.smoother.postsmooth(lvl.A, b, x)
}
