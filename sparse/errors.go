// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// sparse package. All kernels MUST return these sentinels and tests MUST
// check them via errors.Is. No kernel panics on user-triggered conditions.

package sparse

import "errors"

var (
	// ErrNilMatrix indicates that a nil *CSR was used as an operand.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrBadShape is returned when a requested shape is invalid
	// (rows <= 0 or cols <= 0) at construction time.
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrBadIndex indicates structurally malformed CSR arrays:
	// rowPtr of the wrong length, non-monotonic rowPtr, or a column
	// index outside [0, cols).
	ErrBadIndex = errors.New("sparse: malformed index arrays")

	// ErrOutOfRange indicates a row or column index outside the matrix
	// bounds. Public accessors (At, Row) return this, never panic.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. MulVec where len(x) != a.Cols(), or Mul where
	// a.Cols() != b.Rows().
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required
	// (Diagonal, symmetry probes) but the input was rectangular.
	ErrNonSquare = errors.New("sparse: matrix is not square")
)
