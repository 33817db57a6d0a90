package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlamg/sparse"
)

// tridiag returns the [−1 2 −1] operator on n points as CSR.
func tridiag(t *testing.T, n int) *sparse.CSR {
	t.Helper()
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
	a, err := sparse.FromCOO(n, n, entries)
	require.NoError(t, err)

	return a
}

// TestMulVec_AgainstDense compares SpMV against the gonum dense product.
func TestMulVec_AgainstDense(t *testing.T) {
	a := tridiag(t, 6)
	x := []float64{1, 2, 3, 4, 5, 6}

	y, err := sparse.MulVec(a, x)
	require.NoError(t, err)

	want := mat.NewVecDense(6, nil)
	want.MulVec(a.ToDense(), mat.NewVecDense(6, x))
	for i := 0; i < 6; i++ {
		assert.InDelta(t, want.AtVec(i), y[i], 1e-14, "row %d", i)
	}
}

// TestMulVecTo_ReusesBuffer verifies in-place SpMV and its validation.
func TestMulVecTo_ReusesBuffer(t *testing.T) {
	a := tridiag(t, 4)
	x := []float64{1, 1, 1, 1}
	dst := []float64{9, 9, 9, 9} // stale contents must be overwritten

	require.NoError(t, sparse.MulVecTo(dst, a, x))
	assert.Equal(t, []float64{1, 0, 0, 1}, dst)

	assert.ErrorIs(t, sparse.MulVecTo(dst[:3], a, x), sparse.ErrDimensionMismatch)
	assert.ErrorIs(t, sparse.MulVecTo(dst, a, x[:2]), sparse.ErrDimensionMismatch)
	assert.ErrorIs(t, sparse.MulVecTo(dst, nil, x), sparse.ErrNilMatrix)
}

// TestMul_AgainstDense compares SpGEMM with the dense gonum product.
func TestMul_AgainstDense(t *testing.T) {
	a := tridiag(t, 5)
	// A rectangular second operand exercises the general shape path.
	b, err := sparse.FromCOO(5, 3, []sparse.Entry{
		{Row: 0, Col: 0, Val: 1},
		{Row: 1, Col: 0, Val: 2},
		{Row: 1, Col: 2, Val: -1},
		{Row: 2, Col: 1, Val: 4},
		{Row: 4, Col: 2, Val: 3},
	})
	require.NoError(t, err)

	c, err := sparse.Mul(a, b)
	require.NoError(t, err)
	assert.Equal(t, 5, c.Rows())
	assert.Equal(t, 3, c.Cols())

	var want mat.Dense
	want.Mul(a.ToDense(), b.ToDense())
	assert.True(t, mat.EqualApprox(&want, c.ToDense(), 1e-14))
}

// TestMul_Incompatible rejects non-conformable operands.
func TestMul_Incompatible(t *testing.T) {
	a := tridiag(t, 3)
	b := tridiag(t, 4)
	_, err := sparse.Mul(a, b)
	assert.ErrorIs(t, err, sparse.ErrDimensionMismatch)
}

// TestTranspose_Involution checks (Aᵀ)ᵀ == A and shape flip.
func TestTranspose_Involution(t *testing.T) {
	a, err := sparse.FromCOO(2, 4, []sparse.Entry{
		{Row: 0, Col: 3, Val: 7},
		{Row: 1, Col: 0, Val: -2},
		{Row: 1, Col: 2, Val: 5},
	})
	require.NoError(t, err)

	at, err := sparse.Transpose(a)
	require.NoError(t, err)
	assert.Equal(t, 4, at.Rows())
	assert.Equal(t, 2, at.Cols())

	v, err := at.At(3, 0)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)

	att, err := sparse.Transpose(at)
	require.NoError(t, err)
	assert.True(t, mat.EqualApprox(a.ToDense(), att.ToDense(), 0))
}

// TestDiagonal covers extraction and the squareness requirement.
func TestDiagonal(t *testing.T) {
	a := tridiag(t, 3)
	d, err := sparse.Diagonal(a)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 2, 2}, d)

	rect, err := sparse.FromCOO(2, 3, []sparse.Entry{{Row: 0, Col: 0, Val: 1}})
	require.NoError(t, err)
	_, err = sparse.Diagonal(rect)
	assert.ErrorIs(t, err, sparse.ErrNonSquare)
}

// TestSymmetric probes both symmetric and asymmetric inputs.
func TestSymmetric(t *testing.T) {
	sym := tridiag(t, 4)
	ok, err := sparse.Symmetric(sym, 0)
	require.NoError(t, err)
	assert.True(t, ok)

	asym, err := sparse.FromCOO(2, 2, []sparse.Entry{
		{Row: 0, Col: 1, Val: 1},
		{Row: 1, Col: 0, Val: 2},
	})
	require.NoError(t, err)
	ok, err = sparse.Symmetric(asym, 0.5)
	require.NoError(t, err)
	assert.False(t, ok)
}
