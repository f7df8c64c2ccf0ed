package tensor_test

import (
	"testing"

	"github.com/katalvlaran/spinor/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDense_BadShape ensures non-positive dimensions error.
func TestNewDense_BadShape(t *testing.T) {
	_, err := tensor.NewDense(2, 0)
	assert.ErrorIs(t, err, tensor.ErrBadShape)
	_, err = tensor.NewDense()
	assert.ErrorIs(t, err, tensor.ErrBadShape)
}

// TestFromSlice_SizeMismatch ensures data length must match the shape.
func TestFromSlice_SizeMismatch(t *testing.T) {
	_, err := tensor.FromSlice([]float64{1, 2, 3}, 2, 2)
	assert.ErrorIs(t, err, tensor.ErrBadShape)
}

// TestMatMul verifies a hand-computed 2×2 product and the dimension
// check.
func TestMatMul(t *testing.T) {
	a, err := tensor.FromSlice([]float64{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)
	b, err := tensor.FromSlice([]float64{5, 6, 7, 8}, 2, 2)
	require.NoError(t, err)

	c, err := tensor.MatMul(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{19, 22, 43, 50}, c.Data())

	bad, _ := tensor.NewDense(3, 2)
	_, err = tensor.MatMul(a, bad)
	assert.ErrorIs(t, err, tensor.ErrDimensionMismatch)
}

// TestTranspose2 verifies the 2-D transpose and the rank check.
func TestTranspose2(t *testing.T) {
	a, _ := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	at, err := a.Transpose2()
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2}, at.Shape())
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, at.Data())

	r3d, _ := tensor.NewDense(2, 2, 2)
	_, err = r3d.Transpose2()
	assert.ErrorIs(t, err, tensor.ErrRank)
}

// TestReshape_SharesData checks that a reshape is a view, not a copy.
func TestReshape_SharesData(t *testing.T) {
	a, _ := tensor.NewDense(2, 3)
	v, err := a.Reshape(3, 2)
	require.NoError(t, err)
	v.Set(7, 2, 1)
	assert.Equal(t, 7.0, a.At(1, 2), "reshape must alias the same data")

	_, err = a.Reshape(4, 2)
	assert.ErrorIs(t, err, tensor.ErrBadShape)
}

// TestMulBatch verifies the event-wise matrix product against identity
// blocks.
func TestMulBatch(t *testing.T) {
	id := []complex128{1, 0, 0, 1}
	m := []complex128{2, 3, 4, 5}
	a, _ := tensor.CFromSlice(append(append([]complex128{}, id...), m...), 2, 2, 2)
	b, _ := tensor.CFromSlice(append(append([]complex128{}, m...), id...), 2, 2, 2)

	c, err := tensor.MulBatch(a, b)
	require.NoError(t, err)
	// event 0: I·m = m; event 1: m·I = m
	assert.Equal(t, m, c.Data()[:4])
	assert.Equal(t, m, c.Data()[4:])
}

// TestTransposeBatch verifies the last-two-axes swap.
func TestTransposeBatch(t *testing.T) {
	a, _ := tensor.CFromSlice([]complex128{1, 2, 3, 4, 5, 6}, 1, 2, 3)
	at, err := a.TransposeBatch()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 2}, at.Shape())
	assert.Equal(t, []complex128{1, 4, 2, 5, 3, 6}, at.Data())
}

// TestKronBatch verifies a 2×2 ⊗ 1×2 Kronecker block layout.
func TestKronBatch(t *testing.T) {
	a, _ := tensor.CFromSlice([]complex128{1, 2, 3, 4}, 1, 2, 2)
	b, _ := tensor.CFromSlice([]complex128{10, 20}, 1, 1, 2)

	k, err := tensor.KronBatch(a, b)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 4}, k.Shape())
	assert.Equal(t, []complex128{10, 20, 20, 40, 30, 60, 40, 80}, k.Data())
}

// TestAddScaled verifies in-place accumulation and the shape check.
func TestAddScaled(t *testing.T) {
	a, _ := tensor.FromSlice([]float64{1, 1}, 2)
	b, _ := tensor.FromSlice([]float64{2, 3}, 2)
	require.NoError(t, a.AddScaled(2, b))
	assert.Equal(t, []float64{5, 7}, a.Data())

	c, _ := tensor.NewDense(3)
	assert.ErrorIs(t, a.AddScaled(1, c), tensor.ErrDimensionMismatch)
}
