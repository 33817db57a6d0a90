// Package amg: sentinel error set.
// All public operations return these sentinels (possibly wrapped with
// an operation tag via %w); match them with errors.Is.
package amg

import "errors"

var (
	// ErrNilMatrix is returned if a nil operator pointer is passed.
	ErrNilMatrix = errors.New("amg: matrix is nil")

	// ErrNonSquare is returned when the system operator is rectangular.
	ErrNonSquare = errors.New("amg: matrix is not square")

	// ErrDimensionMismatch indicates a vector whose length does not
	// match the operator it is used with.
	ErrDimensionMismatch = errors.New("amg: dimension mismatch")

	// ErrZeroDiagonal indicates a zero entry on the operator diagonal,
	// which breaks Jacobi scaling and prolongator smoothing.
	ErrZeroDiagonal = errors.New("amg: operator has a zero diagonal entry")

	// ErrSpectralEstimate indicates the Ritz spectral-radius estimate
	// could not be computed (eigen factorization of the Hessenberg
	// matrix failed).
	ErrSpectralEstimate = errors.New("amg: spectral radius estimation failed")

	// ErrCoarseSolve indicates the coarsest-level direct solve failed,
	// typically because the densified coarse operator is singular or
	// numerically ill-conditioned.
	ErrCoarseSolve = errors.New("amg: coarse direct solve failed")

	// ErrNilMonitor is returned when SolveMonitored receives a nil monitor.
	ErrNilMonitor = errors.New("amg: monitor is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("amg: invalid option supplied")
)
