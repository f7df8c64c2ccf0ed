package lorentz_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/spinor/fourvec"
	"github.com/katalvlaran/spinor/lorentz"
	"github.com/katalvlaran/spinor/wigner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMassiveParams_RestAndZ verifies the degenerate masks: a particle
// at rest gets all-zero parameters; one along +z gets φ = 0 and the
// expected rapidity.
func TestMassiveParams_RestAndZ(t *testing.T) {
	m := 1.5
	e := 2.5
	pz := math.Sqrt(e*e - m*m)
	prm := lorentz.MassiveParams([]fourvec.Vec{
		{E: m},
		{E: e, Pz: pz},
	})

	assert.Equal(t, 0.0, prm.Rapidity[0], "at rest: zero rapidity")
	assert.Equal(t, 0.0, prm.Theta[0])
	assert.Equal(t, 0.0, prm.Phi[0])

	assert.InDelta(t, math.Acosh(e/m), prm.Rapidity[1], 1e-12)
	assert.InDelta(t, 0.0, prm.Theta[1], 1e-7, "along +z: θ = 0")
	assert.Equal(t, 0.0, prm.Phi[1], "along z: φ masked to 0")
}

// TestMassiveParams_Generic checks the angles of a momentum with known
// direction.
func TestMassiveParams_Generic(t *testing.T) {
	theta, phi := 0.6, 2.0
	pm := 0.8
	m := 1.0
	e := math.Sqrt(pm*pm + m*m)
	v := fourvec.Vec{
		E:  e,
		Px: pm * math.Sin(theta) * math.Cos(phi),
		Py: pm * math.Sin(theta) * math.Sin(phi),
		Pz: pm * math.Cos(theta),
	}
	prm := lorentz.MassiveParams([]fourvec.Vec{v})
	assert.InDelta(t, theta, prm.Theta[0], 1e-12)
	assert.InDelta(t, phi, prm.Phi[0], 1e-12)
	assert.InDelta(t, math.Acosh(e/m), prm.Rapidity[0], 1e-12)
}

// TestMasslessParams checks direction extraction, the 2π azimuth branch
// for negative y momentum, and the no-transverse mask: momenta along ±z
// take both angles zero.
func TestMasslessParams(t *testing.T) {
	prm := lorentz.MasslessParams([]fourvec.Vec{
		{E: 1, Pz: 1},
		{E: math.Sqrt2, Px: 1, Py: -1},
		{E: 1, Pz: -1},
		{E: math.Sqrt2, Px: 1, Pz: 1},
	})
	assert.Equal(t, 0.0, prm.Theta[0])
	assert.Equal(t, 0.0, prm.Phi[0])
	assert.InDelta(t, math.Pi/2, prm.Theta[1], 1e-12)
	assert.InDelta(t, 2*math.Pi-math.Pi/4, prm.Phi[1], 1e-12)
	assert.Equal(t, 0.0, prm.Rapidity[1], "massless extraction has no boost")
	assert.Equal(t, 0.0, prm.Theta[2], "along −z: θ masked with φ")
	assert.Equal(t, 0.0, prm.Phi[2])
	assert.Equal(t, 0.0, prm.Phi[3], "massless x2 = 0 takes the acos branch")
}

// TestMassiveParams_AzimuthBranch pins the x2 = 0 convention of the
// massive extraction: the lower branch, so φ = 2π rather than 0 for a
// momentum in the +x half plane. Half-integer representations carry
// e^{imφ}, which distinguishes the two.
func TestMassiveParams_AzimuthBranch(t *testing.T) {
	prm := lorentz.MassiveParams([]fourvec.Vec{
		{E: math.Sqrt2, Px: 1},
		{E: math.Sqrt2, Px: -1},
	})
	assert.InDelta(t, math.Pi/2, prm.Theta[0], 1e-12)
	assert.InDelta(t, 2*math.Pi, prm.Phi[0], 1e-12)
	assert.InDelta(t, math.Pi, prm.Phi[1], 1e-12, "both branches agree at φ = π")
}

// TestBoostZ_Diagonal verifies the diagonal phases exp((m_l−m_r)·ρ) of
// the (1/2,0) representation.
func TestBoostZ_Diagonal(t *testing.T) {
	rho := 0.8
	b, err := lorentz.BoostZ(1, 0, []float64{rho})
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 2}, b.Shape())
	assert.InDelta(t, math.Exp(-rho/2), real(b.At(0, 0, 0)), 1e-12)
	assert.InDelta(t, math.Exp(rho/2), real(b.At(0, 1, 1)), 1e-12)
	assert.Equal(t, complex(0, 0), b.At(0, 0, 1))
}

// TestRotation_Unitary checks that representation rotations are unitary
// for (1/2,1/2).
func TestRotation_Unitary(t *testing.T) {
	r, err := lorentz.Rotation(1, 1, []float64{0.7}, []float64{1.9})
	require.NoError(t, err)

	dim := 4
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			var sum complex128
			for k := 0; k < dim; k++ {
				sum += r.At(0, i, k) * cmplx.Conj(r.At(0, j, k))
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

// TestBoost_ReducesToBoostZ verifies that θ = φ = 0 reproduces the plain
// z-boost.
func TestBoost_ReducesToBoostZ(t *testing.T) {
	rho := []float64{0.5}
	zero := []float64{0}
	b, err := lorentz.Boost(1, 1, rho, zero, zero)
	require.NoError(t, err)
	bz, err := lorentz.BoostZ(1, 1, rho)
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			assert.InDelta(t, real(bz.At(0, i, j)), real(b.At(0, i, j)), 1e-12)
			assert.InDelta(t, imag(bz.At(0, i, j)), imag(b.At(0, i, j)), 1e-12)
		}
	}
}

// TestRepFromMomentum_SpinZero checks the trivial representation: any
// momentum maps to the 1×1 identity.
func TestRepFromMomentum_SpinZero(t *testing.T) {
	p := []fourvec.Vec{{E: 2, Px: 0.3, Py: -0.1, Pz: 0.9}}
	rep, err := lorentz.RepFromMomentum(p, 0, false)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 1}, rep.Shape())
	assert.InDelta(t, 1.0, real(rep.At(0, 0, 0)), 1e-12)
}

// TestRepFromMomentum_SpinHalfShape checks the parity-doubled dimension
// for spin 1/2.
func TestRepFromMomentum_SpinHalfShape(t *testing.T) {
	p := []fourvec.Vec{{E: 2, Px: 0.3, Py: -0.1, Pz: 0.9}}
	rep, err := lorentz.RepFromMomentum(p, 1, false)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4, 4}, rep.Shape())
}

// TestRotationBatchMismatch validates the angle-batch sentinel.
func TestRotationBatchMismatch(t *testing.T) {
	_, err := lorentz.Rotation(1, 1, []float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, wigner.ErrBatchMismatch)
}

// TestSpacetimeBoost verifies Λ(p)·(m,0,0,0) = p and that RestBoost
// undoes it.
func TestSpacetimeBoost(t *testing.T) {
	p := fourvec.Vec{E: 3, Px: 0.5, Py: -1, Pz: 1.5}
	m := p.M()

	lab := lorentz.Apply(lorentz.SpacetimeBoost(p), fourvec.Vec{E: m})
	assert.InDelta(t, p.E, lab.E, 1e-12)
	assert.InDelta(t, p.Px, lab.Px, 1e-12)
	assert.InDelta(t, p.Py, lab.Py, 1e-12)
	assert.InDelta(t, p.Pz, lab.Pz, 1e-12)

	rest := lorentz.Apply(lorentz.RestBoost(p), p)
	assert.InDelta(t, m, rest.E, 1e-12)
	assert.InDelta(t, 0, rest.Px, 1e-12)
	assert.InDelta(t, 0, rest.Py, 1e-12)
	assert.InDelta(t, 0, rest.Pz, 1e-12)
}
