// Package amg: one entry of the multigrid hierarchy.
package amg

import "github.com/katalvlaran/lvlamg/sparse"

// Level is a single rung of the multigrid hierarchy. Levels run fine
// to coarse; level 0 is the original system. Exported fields are
// read-only once the hierarchy is built.
//
// Invariants (for every level i that is not the coarsest):
//
//   - R == Transpose(P), structurally and value-wise.
//   - P maps this level's rows to the next-coarser level's rows:
//     P.Rows() == SetupA.Rows(), P.Cols() == next.SetupA.Rows().
//   - Aggregates assigns every row of SetupA a non-negative id.
//
// Each level exclusively owns its working buffers; no buffer is
// shared or aliased across levels.
type Level struct {
	// A is the operator applied during solves. On the finest level it
	// is an independent copy of the caller's input; on coarser levels
	// it shares storage with SetupA (same representation, no copy).
	A *sparse.CSR

	// SetupA is the operator used during coarsening and setup.
	SetupA *sparse.CSR

	// NullSpace is the near-null-space candidate associated with this
	// level's operator (length SetupA.Rows()).
	NullSpace []float64

	// P and R are the prolongation and restriction operators to and
	// from the next-coarser level; nil on the coarsest level.
	P, R *sparse.CSR

	// Aggregates is the per-vertex aggregate id produced while
	// coarsening this level; nil on the coarsest level.
	Aggregates []int

	// smoother relaxes this level's system; nil on the coarsest level
	// (which is solved directly).
	smoother *jacobiSmoother

	// Working buffers reused across cycles, sized to SetupA.Rows().
	// residual doubles as the correction buffer during prolongation;
	// x and rhs receive the coarse-grid recursion's unknowns and
	// right-hand side.
	residual, x, rhs []float64
}
