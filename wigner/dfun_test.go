package wigner_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/spinor/tensor"
	"github.com/katalvlaran/spinor/wigner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSmallD_SpinHalf checks the closed form of d^{1/2}(β) with the
// ascending projection convention.
func TestSmallD_SpinHalf(t *testing.T) {
	beta := []float64{0.7}
	d, err := wigner.SmallD(beta, 1)
	require.NoError(t, err)

	c, s := math.Cos(0.35), math.Sin(0.35)
	assert.InDelta(t, c, d.At(0, 0, 0), 1e-12, "d_{−−}")
	assert.InDelta(t, s, d.At(0, 0, 1), 1e-12, "d_{−+}")
	assert.InDelta(t, -s, d.At(0, 1, 0), 1e-12, "d_{+−}")
	assert.InDelta(t, c, d.At(0, 1, 1), 1e-12, "d_{++}")
}

// TestSmallD_Poles verifies the identity at β = 0 (bitwise exact, since
// sin(0) vanishes exactly) and the antidiagonal at β = π.
func TestSmallD_Poles(t *testing.T) {
	d, err := wigner.SmallD([]float64{0, math.Pi}, 2)
	require.NoError(t, err)

	// β = 0: exact identity
	for a := 0; a < 3; a++ {
		for b := 0; b < 3; b++ {
			want := 0.0
			if a == b {
				want = 1
			}
			assert.Equal(t, want, d.At(0, a, b), "identity at β=0 must be exact")
		}
	}
	// β = π: antidiagonal with alternating sign
	assert.Equal(t, 1.0, d.At(1, 0, 2), "single-term corner is exact")
	assert.Equal(t, 1.0, d.At(1, 2, 0), "single-term corner is exact")
	assert.InDelta(t, -1.0, d.At(1, 1, 1), 1e-15)
	assert.InDelta(t, 0.0, d.At(1, 0, 0), 1e-15)
}

// TestDMatrixConj_Unitary checks D·D† = 1 for spin 3/2 at generic
// angles.
func TestDMatrixConj_Unitary(t *testing.T) {
	d, err := wigner.DMatrixConj([]float64{0.4}, []float64{1.2}, []float64{-0.8}, 3)
	require.NoError(t, err)

	dim := 4
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			var sum complex128
			for k := 0; k < dim; k++ {
				sum += d.At(0, i, k) * cmplx.Conj(d.At(0, j, k))
			}
			want := 0.0
			if i == j {
				want = 1
			}
			assert.InDelta(t, want, real(sum), 1e-12)
			assert.InDelta(t, 0, imag(sum), 1e-12)
		}
	}
}

// TestDMatrixConj_Composition checks the z-y-z factorization
// D(α,β,γ) = D(α,0,0)·D(0,β,0)·D(0,0,γ).
func TestDMatrixConj_Composition(t *testing.T) {
	alpha, beta, gamma := []float64{0.9}, []float64{0.5}, []float64{-1.3}
	zero := []float64{0}

	full, err := wigner.DMatrixConj(alpha, beta, gamma, 3)
	require.NoError(t, err)
	da, err := wigner.DMatrixConj(alpha, zero, zero, 3)
	require.NoError(t, err)
	db, err := wigner.DMatrixConj(zero, beta, zero, 3)
	require.NoError(t, err)
	dg, err := wigner.DMatrixConj(zero, zero, gamma, 3)
	require.NoError(t, err)

	ab, err := tensor.MulBatch(da, db)
	require.NoError(t, err)
	abg, err := tensor.MulBatch(ab, dg)
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			assert.InDelta(t, real(full.At(0, i, j)), real(abg.At(0, i, j)), 1e-12)
			assert.InDelta(t, imag(full.At(0, i, j)), imag(abg.At(0, i, j)), 1e-12)
		}
	}
}

// TestDMatrixConj_SpinZero verifies the trivial representation.
func TestDMatrixConj_SpinZero(t *testing.T) {
	d, err := wigner.DMatrixConj([]float64{2.1}, []float64{0.3}, []float64{1.7}, 0)
	require.NoError(t, err)
	assert.Equal(t, complex(1, 0), d.At(0, 0, 0))
}

// TestDMatrixConj_Errors validates the spin and batch sentinels.
func TestDMatrixConj_Errors(t *testing.T) {
	_, err := wigner.DMatrixConj([]float64{1}, []float64{1, 2}, []float64{1}, 1)
	assert.ErrorIs(t, err, wigner.ErrBatchMismatch)

	_, err = wigner.SmallD([]float64{1}, -2)
	assert.ErrorIs(t, err, wigner.ErrInvalidSpin)
}

// TestDMatrixHelicity selects columns by helicity difference and zeroes
// out-of-range differences.
func TestDMatrixHelicity(t *testing.T) {
	d, err := wigner.DMatrixConj([]float64{0.2}, []float64{0.6}, []float64{0}, 2)
	require.NoError(t, err)

	// single zero reference helicity: column n = λb
	h, err := wigner.DMatrixHelicity(d, 2, []int{-2, 0, 2}, []int{2}, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 1}, h.Shape())
	for ia, la := range []int{-2, 0, 2} {
		assert.Equal(t, d.At(0, (la+2)/2, 2), h.At(0, ia, 0))
	}

	// |λb−λc| beyond j gives zero, not an error
	h, err = wigner.DMatrixHelicity(d, 2, []int{0}, []int{2}, []int{-2})
	require.NoError(t, err)
	assert.Equal(t, complex(0, 0), h.At(0, 0, 0, 0))

	// helicity of wrong parity is a programming error
	_, err = wigner.DMatrixHelicity(d, 2, []int{1}, []int{0}, nil)
	assert.ErrorIs(t, err, wigner.ErrHelicity)
}

// BenchmarkSmallD measures the batched small-d evaluation for spin 2.
func BenchmarkSmallD(b *testing.B) {
	beta := make([]float64, 1000)
	for i := range beta {
		beta[i] = float64(i) * 0.003
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = wigner.SmallD(beta, 4)
	}
}
