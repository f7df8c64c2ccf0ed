package lorentz

import (
	"math"

	"github.com/katalvlaran/spinor/fourvec"
	"github.com/katalvlaran/spinor/spin"
	"github.com/katalvlaran/spinor/tensor"
	"github.com/katalvlaran/spinor/wigner"
)

// Rotation returns the batched rotation matrix of the (l, r) chiral
// representation for the axis angles (θ, φ): the Kronecker product of
// the conjugate Wigner-D matrices D^l(φ,−θ,0)* ⊗ D^r(φ,−θ,0)*, shape
// (N, dim l·dim r, dim l·dim r).
func Rotation(l, r spin.Half, theta, phi []float64) (*tensor.CDense, error) {
	if len(theta) != len(phi) {
		return nil, wigner.ErrBatchMismatch
	}
	neg := make([]float64, len(theta))
	zero := make([]float64, len(theta))
	for i, t := range theta {
		neg[i] = -t
	}
	a, err := wigner.DMatrixConj(phi, neg, zero, l.TwoJ())
	if err != nil {
		return nil, err
	}
	b := a
	if r != l {
		if b, err = wigner.DMatrixConj(phi, neg, zero, r.TwoJ()); err != nil {
			return nil, err
		}
	}
	return tensor.KronBatch(a, b)
}

// BoostZ returns the batched z-axis boost of the (l, r) representation:
// diagonal with entries exp((m_l − m_r)·ρ).
func BoostZ(l, r spin.Half, rho []float64) (*tensor.CDense, error) {
	if l < 0 || r < 0 {
		return nil, wigner.ErrInvalidSpin
	}
	dl, dr := l.Dim(), r.Dim()
	dim := dl * dr
	n := len(rho)
	if n == 0 {
		return nil, wigner.ErrBatchMismatch
	}
	out, _ := tensor.NewCDense(n, dim, dim)
	for e, w := range rho {
		for a := 0; a < dl; a++ {
			ml := float64(2*a-l.TwoJ()) / 2
			for b := 0; b < dr; b++ {
				mr := float64(2*b-r.TwoJ()) / 2
				k := a*dr + b
				out.Set(complex(math.Exp((ml-mr)*w), 0), e, k, k)
			}
		}
	}
	return out, nil
}

// Boost returns the batched boost of the (l, r) representation along the
// axis (θ, φ) with rapidity ρ, built by conjugating the z-boost:
//
//	B(ρ,θ,φ) = R(θ,φ) · B_z(ρ) · R(θ,−φ)ᵀ
func Boost(l, r spin.Half, rho, theta, phi []float64) (*tensor.CDense, error) {
	rot, err := Rotation(l, r, theta, phi)
	if err != nil {
		return nil, err
	}
	bz, err := BoostZ(l, r, rho)
	if err != nil {
		return nil, err
	}
	negPhi := make([]float64, len(phi))
	for i, p := range phi {
		negPhi[i] = -p
	}
	back, err := Rotation(l, r, theta, negPhi)
	if err != nil {
		return nil, err
	}
	backT, err := back.TransposeBatch()
	if err != nil {
		return nil, err
	}
	m, err := tensor.MulBatch(rot, bz)
	if err != nil {
		return nil, err
	}
	return tensor.MulBatch(m, backT)
}

// blockDiag assembles the event-wise direct sum of two square batches.
func blockDiag(a, b *tensor.CDense) (*tensor.CDense, error) {
	if a.Rank() != 3 || b.Rank() != 3 || a.Dim(0) != b.Dim(0) {
		return nil, tensor.ErrDimensionMismatch
	}
	n, da, db := a.Dim(0), a.Dim(1), b.Dim(1)
	dim := da + db
	out, _ := tensor.NewCDense(n, dim, dim)
	for e := 0; e < n; e++ {
		for i := 0; i < da; i++ {
			for j := 0; j < da; j++ {
				out.Set(a.At(e, i, j), e, i, j)
			}
		}
		for i := 0; i < db; i++ {
			for j := 0; j < db; j++ {
				out.Set(b.At(e, i, j), e, da+i, da+j)
			}
		}
	}
	return out, nil
}

// RotationSC is the self-conjugate rotation: the plain (l, r) rotation
// when l == r, otherwise the direct sum of the (l, r) and (r, l)
// rotations on the parity-doubled space.
func RotationSC(l, r spin.Half, theta, phi []float64) (*tensor.CDense, error) {
	a, err := Rotation(l, r, theta, phi)
	if err != nil || l == r {
		return a, err
	}
	b, err := Rotation(r, l, theta, phi)
	if err != nil {
		return nil, err
	}
	return blockDiag(a, b)
}

// BoostSC is the self-conjugate boost, block-embedded like RotationSC.
func BoostSC(l, r spin.Half, rho, theta, phi []float64) (*tensor.CDense, error) {
	a, err := Boost(l, r, rho, theta, phi)
	if err != nil || l == r {
		return a, err
	}
	b, err := Boost(r, l, rho, theta, phi)
	if err != nil {
		return nil, err
	}
	return blockDiag(a, b)
}

// RepFromMomentum returns the batched representation matrix carrying a
// spin-s wavefunction from its standard frame into the frame of p. For
// massive particles this is the self-conjugate boost on the SCRep(s)
// labels; for massless ones only the direction matters and the (s, 0)
// self-conjugate rotation is returned.
func RepFromMomentum(p []fourvec.Vec, s spin.Half, massless bool) (*tensor.CDense, error) {
	if massless {
		prm := MasslessParams(p)
		return RotationSC(s, 0, prm.Theta, prm.Phi)
	}
	prm := MassiveParams(p)
	l, r := spin.SCRep(s)
	return BoostSC(l, r, prm.Rapidity, prm.Theta, prm.Phi)
}
