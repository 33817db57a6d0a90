// Package gallery builds small model operators used in tests and
// examples: discretized Laplacians on regular grids. These are the
// standard well-conditioned symmetric positive-definite systems a
// multigrid solver is exercised against.
//
//   - Grid2D: five-point stencil on an nx×ny grid (4 on the diagonal,
//     −1 toward each grid neighbor), row-major vertex numbering.
//   - Poisson1D: the tridiagonal [−1 2 −1] operator on n points.
package gallery

import (
	"errors"

	"github.com/katalvlaran/lvlamg/sparse"
)

// ErrBadDimension indicates a non-positive grid dimension.
var ErrBadDimension = errors.New("gallery: grid dimensions must be positive")

// neighbor offsets of the five-point stencil: W, E, N, S.
var stencil2D = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Grid2D returns the five-point Laplacian on an nx×ny grid with
// homogeneous Dirichlet boundaries. The unknown at grid cell (x, y)
// has row-major index y*nx + x. The matrix is symmetric positive
// definite with nx*ny rows.
// Complexity: O(nx*ny) time and memory.
func Grid2D(nx, ny int) (*sparse.CSR, error) {
	if nx <= 0 || ny <= 0 {
		return nil, ErrBadDimension
	}

	n := nx * ny
	entries := make([]sparse.Entry, 0, 5*n)
	var x, y, row int
	for y = 0; y < ny; y++ {
		for x = 0; x < nx; x++ {
			row = y*nx + x
			entries = append(entries, sparse.Entry{Row: row, Col: row, Val: 4})
			for _, d := range stencil2D {
				px, py := x+d[0], y+d[1]
				if px < 0 || px >= nx || py < 0 || py >= ny {
					continue // Dirichlet boundary: neighbor eliminated
				}
				entries = append(entries, sparse.Entry{Row: row, Col: py*nx + px, Val: -1})
			}
		}
	}

	return sparse.FromCOO(n, n, entries)
}

// Poisson1D returns the tridiagonal [−1 2 −1] operator on n points
// with homogeneous Dirichlet boundaries.
// Complexity: O(n) time and memory.
func Poisson1D(n int) (*sparse.CSR, error) {
	if n <= 0 {
		return nil, ErrBadDimension
	}

	entries := make([]sparse.Entry, 0, 3*n)
	for i := 0; i < n; i++ {
		entries = append(entries, sparse.Entry{Row: i, Col: i, Val: 2})
		if i > 0 {
			entries = append(entries, sparse.Entry{Row: i, Col: i - 1, Val: -1})
		}
		if i < n-1 {
			entries = append(entries, sparse.Entry{Row: i, Col: i + 1, Val: -1})
		}
	}

	return sparse.FromCOO(n, n, entries)
}
