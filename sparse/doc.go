// SPDX-License-Identifier: MIT

// Package sparse provides a compressed sparse row (CSR) matrix type and
// the kernels the solver packages build on: sparse matrix-vector and
// matrix-matrix products, transposition, diagonal extraction, and
// conversions to and from dense gonum matrices.
//
// What:
//
//   - CSR — immutable-shape row-compressed storage (rowPtr/colInd/val).
//   - Builders: NewCSR (validated raw arrays), FromCOO (triplets with
//     duplicate summation), FromDense / ToDense (gonum mat.Dense bridge).
//   - Kernels: MulVec / MulVecTo (SpMV, with buffer reuse), Mul (SpGEMM),
//     Transpose, Diagonal, Symmetric.
//
// Why:
//
//   - Multigrid setup is sparse algebra end to end: strength filtering,
//     Galerkin triple products, and restriction/prolongation all consume
//     these kernels.
//   - Deterministic loop orders keep repeated setups bit-for-bit stable.
//
// Errors:
//
//   - ErrNilMatrix: a nil *CSR was passed where a matrix is required.
//   - ErrBadShape: non-positive dimensions at construction.
//   - ErrBadIndex: malformed rowPtr/colInd arrays at construction.
//   - ErrOutOfRange: element access outside the matrix bounds.
//   - ErrDimensionMismatch: incompatible operand shapes.
//   - ErrNonSquare: a square matrix was required but not supplied.
//
// All functions return plain sentinels wrapped with an operation tag;
// match them with errors.Is.
package sparse
