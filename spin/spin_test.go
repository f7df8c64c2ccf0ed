package spin_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/spinor/spin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFromFloat validates accepted and rejected spin values.
func TestFromFloat(t *testing.T) {
	h, err := spin.FromFloat(1.5)
	require.NoError(t, err)
	assert.Equal(t, spin.Half(3), h)
	assert.Equal(t, 4, h.Dim())
	assert.False(t, h.IsInteger())

	_, err = spin.FromFloat(0.3)
	assert.ErrorIs(t, err, spin.ErrInvalidSpin, "0.3 is not a half-integer")
	_, err = spin.FromFloat(-0.5)
	assert.ErrorIs(t, err, spin.ErrInvalidSpin, "negative spin rejected")
	_, err = spin.FromFloat(21)
	assert.ErrorIs(t, err, spin.ErrInvalidSpin, "beyond MaxTwoJ rejected")
}

// TestSCRep verifies the self-conjugate chiral labels for integer and
// half-integer spins.
func TestSCRep(t *testing.T) {
	l, r := spin.SCRep(spin.Half(2)) // spin 1
	assert.Equal(t, spin.Half(1), l)
	assert.Equal(t, spin.Half(1), r)

	l, r = spin.SCRep(spin.Half(1)) // spin 1/2
	assert.Equal(t, spin.Half(1), l)
	assert.Equal(t, spin.Half(0), r)

	assert.Equal(t, 4, spin.RepDim(spin.Half(1), spin.Half(1)), "(1/2,1/2) has dim 4")
	assert.Equal(t, 4, spin.RepDim(spin.Half(1), spin.Half(0)), "doubled (1/2,0) has dim 4")
}

// TestCG_TwoSpinHalf checks hand-known Clebsch–Gordan values for
// 1/2 ⊗ 1/2 with the descending projection convention.
func TestCG_TwoSpinHalf(t *testing.T) {
	half := spin.Half(1)
	inv := 1 / math.Sqrt2

	triplet, err := spin.CG(half, half, spin.Half(2))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, triplet.At(0, 0, 0), 1e-12, "|++⟩ → |1,+1⟩")
	assert.InDelta(t, inv, triplet.At(0, 1, 1), 1e-12, "|+−⟩ → |1,0⟩")
	assert.InDelta(t, inv, triplet.At(1, 0, 1), 1e-12, "|−+⟩ → |1,0⟩")
	assert.InDelta(t, 1.0, triplet.At(1, 1, 2), 1e-12, "|−−⟩ → |1,−1⟩")

	singlet, err := spin.CG(half, half, 0)
	require.NoError(t, err)
	assert.InDelta(t, inv, singlet.At(0, 1, 0), 1e-12, "|+−⟩ → |0,0⟩")
	assert.InDelta(t, -inv, singlet.At(1, 0, 0), 1e-12, "|−+⟩ → −|0,0⟩")
}

// TestCG_Orthogonality checks Σ_{m1,m2} CG_s[a,b,c]·CG_s'[a,b,c'] =
// δ_ss'·δ_cc' for 1 ⊗ 1/2.
func TestCG_Orthogonality(t *testing.T) {
	l, r := spin.Half(2), spin.Half(1)
	for _, s1 := range []spin.Half{1, 3} {
		for _, s2 := range []spin.Half{1, 3} {
			cg1, err := spin.CG(l, r, s1)
			require.NoError(t, err)
			cg2, err := spin.CG(l, r, s2)
			require.NoError(t, err)
			for c1 := 0; c1 < s1.Dim(); c1++ {
				for c2 := 0; c2 < s2.Dim(); c2++ {
					sum := 0.0
					for a := 0; a < l.Dim(); a++ {
						for b := 0; b < r.Dim(); b++ {
							sum += cg1.At(a, b, c1) * cg2.At(a, b, c2)
						}
					}
					want := 0.0
					if s1 == s2 && c1 == c2 {
						want = 1
					}
					assert.InDelta(t, want, sum, 1e-12, "orthogonality of couplings")
				}
			}
		}
	}
}

// TestCG_FailFast ensures triangle violations and invalid labels error.
func TestCG_FailFast(t *testing.T) {
	_, err := spin.CG(1, 1, 1) // 1/2 ⊗ 1/2 cannot give 1/2
	assert.ErrorIs(t, err, spin.ErrCouplingRange)

	_, err = spin.CG(-1, 1, 0)
	assert.ErrorIs(t, err, spin.ErrInvalidSpin)
}

// TestConjugation verifies the exact d(π) antidiagonal for spin 1/2 and
// the p=0 identity.
func TestConjugation(t *testing.T) {
	c, err := spin.Conjugation(1, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, -1, 0}, c.Data())

	id, err := spin.Conjugation(1, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 0, 1}, id.Data())

	_, err = spin.Conjugation(1, -1)
	assert.ErrorIs(t, err, spin.ErrBadSlot)
}

// TestXMuM_Unitary checks that the chiral↔spacetime basis constant is
// unitary: X† X = 1.
func TestXMuM_Unitary(t *testing.T) {
	x := spin.XMuM()
	xb := spin.XMMu()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum complex128
			for k := 0; k < 4; k++ {
				sum += xb.At(i, k) * x.At(k, j)
			}
			want := complex128(0)
			if i == j {
				want = 1
			}
			assert.InDelta(t, real(want), real(sum), 1e-12)
			assert.InDelta(t, imag(want), imag(sum), 1e-12)
		}
	}
}

// TestUSigma_Shapes verifies the representation-space dimensions of the
// coupling matrices, including the parity-doubled case.
func TestUSigma_Shapes(t *testing.T) {
	// spin 1: (1/2,1/2), plain square reshape
	u, err := spin.USigma(1, 1, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 3}, u.Shape())

	// spin 1/2: (1/2,0) doubled
	u, err = spin.USigma(1, 0, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 2}, u.Shape())

	ub, err := spin.UbarSigma(1, 0, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4}, ub.Shape())
}

// TestPCoupling_Shape checks the rank-3 projection tensor dimensions for
// the orbital ladder step L=1.
func TestPCoupling_Shape(t *testing.T) {
	p, err := spin.PCoupling(1, 1, 0, 0, 1, 1, 1, 1, 2, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 1, 4}, p.Shape())
}

// TestDecomp enumerates the chiral pieces of (1/2,0)⊗(1/2,0).
func TestDecomp(t *testing.T) {
	got := spin.Decomp(1, 0, 1, 0)
	assert.Equal(t, [][2]spin.Half{{0, 0}, {2, 0}}, got)
}
