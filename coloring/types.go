// Package coloring provides tunable options and error definitions
// for breadth-first level-set coloring over a sparse.CSR graph.
package coloring

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for coloring execution.
var (
	// ErrNilMatrix is returned if a nil matrix pointer is passed.
	ErrNilMatrix = errors.New("coloring: matrix is nil")

	// ErrNonSquare is returned when the adjacency matrix is rectangular.
	ErrNonSquare = errors.New("coloring: matrix is not square")

	// ErrSourceOutOfRange is returned when the source vertex index is
	// outside [0, rows).
	ErrSourceOutOfRange = errors.New("coloring: source vertex out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("coloring: invalid option supplied")
)

// Option configures the traversal via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when the traversal is invoked.
type Option func(*Options)

// Options holds parameters customizing the traversal.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Source is the vertex the first BFS wave starts from.
	// Remaining components are swept from their smallest untouched index.
	Source int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
// context.Background() and source vertex 0.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Source: 0,
		err:    nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithSource sets the starting vertex of the first BFS wave.
//
//	s >= 0: start from vertex s
//	s < 0:  invalid option → ErrOptionViolation
func WithSource(s int) Option {
	return func(o *Options) {
		if s < 0 {
			o.err = fmt.Errorf("%w: Source cannot be negative (%d)", ErrOptionViolation, s)
			return
		}
		o.Source = s
	}
}
