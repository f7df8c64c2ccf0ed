package kinematics_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/spinor/fourvec"
	"github.com/katalvlaran/spinor/kinematics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSU2_MulInv checks that a word times its inverse is the identity.
func TestSU2_MulInv(t *testing.T) {
	w, err := kinematics.RotZ([]float64{0.9}).Mul(kinematics.RotY([]float64{1.3}))
	require.NoError(t, err)
	w, err = w.Mul(kinematics.BoostZOmega([]float64{0.4}))
	require.NoError(t, err)

	id, err := w.Mul(w.Inv())
	require.NoError(t, err)
	assert.InDelta(t, 1, real(id.A[0]), 1e-12)
	assert.InDelta(t, 0, imag(id.A[0]), 1e-12)
	assert.InDelta(t, 0, real(id.B[0]), 1e-12)
	assert.InDelta(t, 0, real(id.C[0]), 1e-12)
	assert.InDelta(t, 1, real(id.D[0]), 1e-12)
}

// TestSU2_EulerRoundTrip recovers (α,β,γ) from Rz(α)·Ry(β)·Rz(γ).
func TestSU2_EulerRoundTrip(t *testing.T) {
	alpha, beta, gamma := 0.7, 1.1, -0.4
	u, err := kinematics.RotZ([]float64{alpha}).Mul(kinematics.RotY([]float64{beta}))
	require.NoError(t, err)
	u, err = u.Mul(kinematics.RotZ([]float64{gamma}))
	require.NoError(t, err)

	ang := u.EulerAngles()
	assert.InDelta(t, alpha, ang.Alpha[0], 1e-12)
	assert.InDelta(t, beta, ang.Beta[0], 1e-12)
	assert.InDelta(t, gamma, ang.Gamma[0], 1e-12)
}

// TestSU2_EulerPole resolves the β = 0 degeneracy: γ is fixed to zero
// and the whole z-rotation lands in α.
func TestSU2_EulerPole(t *testing.T) {
	u, err := kinematics.RotZ([]float64{0.5}).Mul(kinematics.RotZ([]float64{0.3}))
	require.NoError(t, err)

	ang := u.EulerAngles()
	assert.InDelta(t, 0.8, ang.Alpha[0], 1e-12)
	assert.Equal(t, 0.0, ang.Beta[0])
	assert.Equal(t, 0.0, ang.Gamma[0])
}

// TestBoostZFromP brings a z-moving particle to rest: the word applied
// to itself composed with the inverse boost is the identity, and the
// rapidity matches atanh(|p|/E).
func TestBoostZFromP(t *testing.T) {
	e, pz := 2.0, 1.2
	b := kinematics.BoostZFromP([]fourvec.Vec{{E: e, Pz: pz}})

	omega := math.Atanh(pz / e)
	assert.InDelta(t, math.Exp(-omega/2), real(b.A[0]), 1e-12)
	assert.InDelta(t, math.Exp(omega/2), real(b.D[0]), 1e-12)
	assert.Equal(t, complex(0, 0), b.B[0])
}
