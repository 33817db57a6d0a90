// Package amg implements a smoothed-aggregation algebraic multigrid
// solver for sparse symmetric linear systems A·x = b.
//
// What:
//
//   - Hierarchy — a fine-to-coarse chain of Levels built once by New /
//     NewWithNullSpace: strength-of-connection filtering, standard
//     aggregation (swept in BFS level-set order), Ritz spectral-radius
//     estimation, tentative prolongator fitting, damped-Jacobi
//     prolongator smoothing, and Galerkin coarse operators R·A·P,
//     terminated by a dense LU factorization of the coarsest operator.
//   - Cycle — one V-cycle (presmooth, restrict the residual, recurse,
//     prolongate the correction, postsmooth): the preconditioner form.
//   - Solve / SolveMonitored — the hierarchy as a stationary iterative
//     method, one V-cycle per outer step, driven by a Monitor.
//   - WriteReport, OperatorComplexity, GridComplexity — diagnostics.
//
// Why:
//
//   - Simple relaxation stalls on smooth error; coarse-grid correction
//     removes exactly those components. A well-built hierarchy solves
//     grid-Laplacian-like systems in a near-constant number of cycles
//     independent of problem size.
//
// Usage:
//
//	a, _ := gallery.Grid2D(64, 64)
//	h, err := amg.New(a, amg.WithTheta(0.05))
//	if err != nil { ... }
//	x := make([]float64, a.Rows())
//	err = h.Solve(b, x)
//
// Determinism:
//
//   - Setup and cycles are fully deterministic: fixed sweep orders,
//     an all-ones Arnoldi start vector, and deterministic sparse
//     kernels. Two hierarchies built from identical inputs produce
//     identical solves.
//
// Concurrency:
//
//   - A Hierarchy is read-only after New, but cycles mutate per-level
//     scratch buffers: do not run concurrent Solve/Cycle calls on one
//     Hierarchy. Independent Hierarchy instances are independent.
//
// Errors:
//
//   - Construction: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch,
//     ErrOptionViolation, ErrZeroDiagonal, ErrSpectralEstimate,
//     ErrCoarseSolve.
//   - Solving: ErrDimensionMismatch, ErrNilMonitor, ErrCoarseSolve,
//     plus context cancellation between cycles.
//
// The package assumes a well-formed symmetric, non-degenerate input
// operator; degenerate aggregations are precondition violations, not
// recoverable errors (collaborator failures surface as-is, and a
// failed setup never yields a partially built hierarchy).
package amg
