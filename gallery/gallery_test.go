package gallery_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/lvlamg/gallery"
	"github.com/katalvlaran/lvlamg/sparse"
)

// TestPoisson1D_Structure checks the tridiagonal [−1 2 −1] pattern.
func TestPoisson1D_Structure(t *testing.T) {
	a, err := gallery.Poisson1D(4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Rows() != 4 || a.Cols() != 4 {
		t.Fatalf("shape = %dx%d; want 4x4", a.Rows(), a.Cols())
	}
	if got := a.NNZ(); got != 10 {
		t.Errorf("nnz = %d; want 10", got)
	}
	for i := 0; i < 4; i++ {
		if v, _ := a.At(i, i); v != 2 {
			t.Errorf("At(%d,%d) = %v; want 2", i, i, v)
		}
	}
	if v, _ := a.At(0, 1); v != -1 {
		t.Errorf("At(0,1) = %v; want -1", v)
	}
	if v, _ := a.At(0, 3); v != 0 {
		t.Errorf("At(0,3) = %v; want 0", v)
	}
}

// TestGrid2D_Structure checks the five-point stencil on a 3x3 grid.
func TestGrid2D_Structure(t *testing.T) {
	a, err := gallery.Grid2D(3, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Rows() != 9 || a.Cols() != 9 {
		t.Fatalf("shape = %dx%d; want 9x9", a.Rows(), a.Cols())
	}
	// interior vertex 4 = (1,1) couples to 1, 3, 5, 7.
	if v, _ := a.At(4, 4); v != 4 {
		t.Errorf("diagonal = %v; want 4", v)
	}
	for _, j := range []int{1, 3, 5, 7} {
		if v, _ := a.At(4, j); v != -1 {
			t.Errorf("At(4,%d) = %v; want -1", j, v)
		}
	}
	// no wraparound between grid rows: vertex 2 = (2,0), vertex 3 = (0,1).
	if v, _ := a.At(2, 3); v != 0 {
		t.Errorf("At(2,3) = %v; want 0 (no wraparound)", v)
	}
}

// TestGrid2D_Symmetric verifies the operator equals its transpose.
func TestGrid2D_Symmetric(t *testing.T) {
	a, err := gallery.Grid2D(4, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ok, err := sparse.Symmetric(a, 0)
	if err != nil {
		t.Fatalf("Symmetric: %v", err)
	}
	if !ok {
		t.Error("Grid2D operator is not symmetric")
	}
}

// TestGrid2D_RowSums checks diagonal dominance: interior rows sum to 0,
// boundary rows to a positive value.
func TestGrid2D_RowSums(t *testing.T) {
	a, err := gallery.Grid2D(3, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var i, j int
	for i = 0; i < a.Rows(); i++ {
		sum := 0.0
		for j = 0; j < a.Cols(); j++ {
			v, _ := a.At(i, j)
			sum += v
		}
		if sum < -1e-15 {
			t.Errorf("row %d sums to %v; want >= 0", i, sum)
		}
		if i == 4 && math.Abs(sum) > 1e-15 {
			t.Errorf("interior row sums to %v; want 0", sum)
		}
	}
}

// TestGallery_BadDimension rejects non-positive sizes.
func TestGallery_BadDimension(t *testing.T) {
	if _, err := gallery.Poisson1D(0); !errors.Is(err, gallery.ErrBadDimension) {
		t.Errorf("Poisson1D(0): want ErrBadDimension, got %v", err)
	}
	if _, err := gallery.Grid2D(0, 3); !errors.Is(err, gallery.ErrBadDimension) {
		t.Errorf("Grid2D(0,3): want ErrBadDimension, got %v", err)
	}
	if _, err := gallery.Grid2D(3, -1); !errors.Is(err, gallery.ErrBadDimension) {
		t.Errorf("Grid2D(3,-1): want ErrBadDimension, got %v", err)
	}
}
