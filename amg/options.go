// Package amg: tunable options for hierarchy construction and solving.
package amg

import (
	"context"
	"fmt"
)

// Fixed algorithmic constants of the smoothed-aggregation setup.
const (
	// prolongatorDamping is the ω in P = (I − ω/ρ·D⁻¹A)·T.
	prolongatorDamping = 4.0 / 3.0

	// ritzIterations is the Krylov subspace dimension used for the
	// spectral radius estimate of D⁻¹A.
	ritzIterations = 8

	// defaultCoarseSize is the row count at or below which coarsening
	// stops and the operator is factored directly.
	defaultCoarseSize = 100

	// defaultMaxLevels caps hierarchy depth; the level slice is
	// preallocated to this capacity so appending levels never
	// reallocates (and never copies operators) mid-construction.
	defaultMaxLevels = 20

	// defaultTolerance and defaultIterationLimit parameterize the
	// monitor built by Solve when the caller supplies none.
	defaultTolerance      = 1e-6
	defaultIterationLimit = 500
)

// Option configures hierarchy construction via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when New is invoked.
type Option func(*Options)

// Options holds the construction parameters of a Hierarchy.
type Options struct {
	// Theta is the strength-of-connection threshold: entry (i,j)
	// survives into the strength matrix iff
	// |a_ij| ≥ Theta·sqrt(|a_ii|·|a_jj|). Zero keeps every entry.
	Theta float64

	// CoarseSize is the row count at or below which coarsening stops.
	CoarseSize int

	// MaxLevels bounds hierarchy depth and sizes the preallocated
	// level slice.
	MaxLevels int

	// Ctx allows cancellation of the outer solve loop between cycles.
	Ctx context.Context

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the canonical defaults:
// Theta 0, CoarseSize 100, MaxLevels 20, context.Background().
func DefaultOptions() Options {
	return Options{
		Theta:      0,
		CoarseSize: defaultCoarseSize,
		MaxLevels:  defaultMaxLevels,
		Ctx:        context.Background(),
		err:        nil,
	}
}

// WithTheta sets the strength-of-connection threshold.
//
//	t in [0, 1]: valid threshold (0 keeps all entries)
//	otherwise:   invalid option → ErrOptionViolation
func WithTheta(t float64) Option {
	return func(o *Options) {
		if t < 0 || t > 1 {
			o.err = fmt.Errorf("%w: Theta must lie in [0,1] (%g)", ErrOptionViolation, t)
			return
		}
		o.Theta = t
	}
}

// WithCoarseSize sets the coarsening-termination row count.
// Values below 1 are invalid.
func WithCoarseSize(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: CoarseSize must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.CoarseSize = n
	}
}

// WithMaxLevels bounds the hierarchy depth. At least two levels are
// required for any coarsening to happen; values below 2 are invalid.
func WithMaxLevels(n int) Option {
	return func(o *Options) {
		if n < 2 {
			o.err = fmt.Errorf("%w: MaxLevels must be at least 2 (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxLevels = n
	}
}

// WithContext sets a custom context; the outer solve loop checks it
// between V-cycles.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
