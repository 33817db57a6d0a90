// Package amg: hierarchy construction (setup phase).
package amg

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlamg/coloring"
	"github.com/katalvlaran/lvlamg/sparse"
)

// Hierarchy is a smoothed-aggregation multigrid solver: an ordered
// chain of Levels (fine to coarse), a direct factorization of the
// coarsest operator, and the construction options. It is built once
// by New and is read-only during solves; a single Hierarchy must not
// run concurrent Solve calls.
type Hierarchy struct {
	// Levels is the fine-to-coarse level chain. Read-only after New.
	Levels []Level

	opts Options

	// Coarsest-level direct solve state: the LU factorization and the
	// host-resident vectors the coarse rhs/solution pass through.
	coarseLU *mat.LU
	coarseB  *mat.VecDense
	coarseX  *mat.VecDense
}

// New builds a smoothed-aggregation hierarchy for the symmetric
// operator a, using the all-ones vector as the near-null-space
// candidate. See NewWithNullSpace for the general form.
func New(a *sparse.CSR, opts ...Option) (*Hierarchy, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}
	ones := make([]float64, a.Rows())
	for i := range ones {
		ones[i] = 1
	}

	return NewWithNullSpace(a, ones, opts...)
}

// NewWithNullSpace builds a smoothed-aggregation hierarchy for the
// symmetric operator a with near-null-space candidate b (length
// a.Rows()). The input operator is deep-copied into level 0, so the
// caller's matrix is never mutated and stays fully owned by the
// caller. Coarsening repeats until the coarsest operator has at most
// CoarseSize rows (or MaxLevels is reached); the coarsest operator is
// then densified and LU-factorized for exact solves.
//
// Returns ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch,
// ErrOptionViolation, or any setup collaborator error. A failed setup
// never yields a partially built hierarchy.
func NewWithNullSpace(a *sparse.CSR, b []float64, opts ...Option) (*Hierarchy, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}
	if a.Rows() != a.Cols() {
		return nil, ErrNonSquare
	}
	if len(b) != a.Rows() {
		return nil, ErrDimensionMismatch
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	h := &Hierarchy{
		// Preallocate the full capacity so appending levels never
		// reallocates the slice mid-construction.
		Levels: make([]Level, 0, o.MaxLevels),
		opts:   o,
	}

	nullspace := make([]float64, len(b))
	copy(nullspace, b)
	h.Levels = append(h.Levels, Level{
		SetupA:    a.Clone(), // caller keeps ownership of a
		NullSpace: nullspace,
	})

	for h.coarsest().SetupA.Rows() > o.CoarseSize && len(h.Levels) < o.MaxLevels {
		if err := h.extend(); err != nil {
			return nil, err
		}
	}

	if err := h.factorizeCoarsest(); err != nil {
		return nil, err
	}

	// Materialize the solve-time operator of each level. The finest
	// level gets an independent copy of the caller's input; coarser
	// levels share their setup operator (identical representation, so
	// the conversion degenerates to aliasing).
	h.Levels[0].A = a.Clone()
	for lvl := 1; lvl < len(h.Levels); lvl++ {
		h.Levels[lvl].A = h.Levels[lvl].SetupA
	}

	return h, nil
}

// coarsest returns the current last level (valid only during setup,
// where at least one level always exists).
func (h *Hierarchy) coarsest() *Level {
	return &h.Levels[len(h.Levels)-1]
}

// extend appends one coarser level to the hierarchy: strength
// filtering, aggregation, spectral-radius estimation, tentative
// prolongator fitting, prolongator smoothing, and the Galerkin triple
// product, finishing with this level's smoother and buffers.
func (h *Hierarchy) extend() error {
	cur := len(h.Levels) - 1 // index, not pointer: appends must not invalidate
	setupA := h.Levels[cur].SetupA

	// Strength of connection, then aggregates over the strength graph.
	// The aggregation sweep follows the BFS level-set ordering of the
	// strength graph for a deterministic, locality-aware coarsening.
	strength, err := StrengthOfConnection(setupA, h.opts.Theta)
	if err != nil {
		return fmt.Errorf("amg: extend: %w", err)
	}
	order, err := coloring.Ordering(strength)
	if err != nil {
		return fmt.Errorf("amg: extend: %w", err)
	}
	aggregates, count, err := StandardAggregation(strength, order)
	if err != nil {
		return fmt.Errorf("amg: extend: %w", err)
	}

	// Spectral radius of D⁻¹A via the Ritz estimate.
	rho, err := RitzSpectralRadius(setupA, ritzIterations)
	if err != nil {
		return fmt.Errorf("amg: extend: %w", err)
	}

	// Tentative prolongator and coarse nullspace, then smoothing.
	tentative, coarseNull, err := FitCandidates(aggregates, count, h.Levels[cur].NullSpace)
	if err != nil {
		return fmt.Errorf("amg: extend: %w", err)
	}
	p, err := SmoothProlongator(setupA, tentative, prolongatorDamping, rho)
	if err != nil {
		return fmt.Errorf("amg: extend: %w", err)
	}
	r, err := sparse.Transpose(p)
	if err != nil {
		return fmt.Errorf("amg: extend: %w", err)
	}

	// Galerkin product RAP = R·(A·P); multiplying A·P first keeps the
	// intermediate fill small.
	ap, err := sparse.Mul(setupA, p)
	if err != nil {
		return fmt.Errorf("amg: extend: %w", err)
	}
	rap, err := sparse.Mul(r, ap)
	if err != nil {
		return fmt.Errorf("amg: extend: %w", err)
	}

	smoother, err := newJacobiSmoother(setupA, rho)
	if err != nil {
		return fmt.Errorf("amg: extend: %w", err)
	}

	// Finalize the current level, then append the coarser one.
	h.Levels[cur].smoother = smoother
	h.Levels[cur].Aggregates = aggregates
	h.Levels[cur].P = p
	h.Levels[cur].R = r
	h.Levels[cur].residual = make([]float64, setupA.Rows())

	h.Levels = append(h.Levels, Level{
		SetupA:    rap,
		NullSpace: coarseNull,
		x:         make([]float64, rap.Rows()),
		rhs:       make([]float64, rap.Rows()),
	})

	return nil
}

// factorizeCoarsest densifies the coarsest operator into host memory
// and LU-factorizes it. This is the single residency boundary of the
// hierarchy: everything coarser than the finest levels stays in CSR,
// and only the final direct solve runs on a dense host matrix.
func (h *Hierarchy) factorizeCoarsest() error {
	coarse := h.coarsest().SetupA
	dense := coarse.ToDense()

	h.coarseLU = &mat.LU{}
	h.coarseLU.Factorize(dense)
	h.coarseB = mat.NewVecDense(coarse.Rows(), nil)
	h.coarseX = mat.NewVecDense(coarse.Rows(), nil)

	// Probe the factorization once so a singular coarse operator
	// surfaces at setup time, not on the first cycle.
	if err := h.coarseLU.SolveVecTo(h.coarseX, false, h.coarseB); err != nil {
		return fmt.Errorf("%w: %v", ErrCoarseSolve, err)
	}

	return nil
}
