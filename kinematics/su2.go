package kinematics

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/spinor/fourvec"
)

// su2Eps is the magnitude below which a 2×2 matrix entry counts as zero
// in the Euler-angle extraction masks.
const su2Eps = 1e-10

// SU2 is a batch of 2×2 SL(2,C) matrices [[A,B],[C,D]], one per event.
// Rotations and z-boosts compose into the frame-tracking word of the
// angle calculator; the ratio of two words between chains yields the
// alignment rotation.
type SU2 struct {
	A, B, C, D []complex128
}

// Len returns the event count.
func (m *SU2) Len() int { return len(m.A) }

func newSU2(n int) *SU2 {
	return &SU2{
		A: make([]complex128, n),
		B: make([]complex128, n),
		C: make([]complex128, n),
		D: make([]complex128, n),
	}
}

// BoostZOmega returns the z-boost diag(e^{ω/2}, e^{−ω/2}) per event.
func BoostZOmega(omega []float64) *SU2 {
	m := newSU2(len(omega))
	for i, w := range omega {
		m.A[i] = complex(math.Exp(w/2), 0)
		m.D[i] = complex(math.Exp(-w/2), 0)
	}
	return m
}

// BoostZFromP returns the z-boost with rapidity −atanh(|p|/E) per event:
// the boost that brings a particle moving along +z with momentum p to
// rest.
func BoostZFromP(p []fourvec.Vec) *SU2 {
	omega := make([]float64, len(p))
	for i, v := range p {
		r := math.Sqrt(v.Px*v.Px + v.Py*v.Py + v.Pz*v.Pz)
		omega[i] = -math.Atanh(r / v.E)
	}
	return BoostZOmega(omega)
}

// RotY returns the y-rotation [[cos θ/2, −sin θ/2], [sin θ/2, cos θ/2]].
func RotY(theta []float64) *SU2 {
	m := newSU2(len(theta))
	for i, t := range theta {
		s, c := math.Sincos(t / 2)
		m.A[i] = complex(c, 0)
		m.B[i] = complex(-s, 0)
		m.C[i] = complex(s, 0)
		m.D[i] = complex(c, 0)
	}
	return m
}

// RotZ returns the z-rotation diag(e^{−iφ/2}, e^{iφ/2}).
func RotZ(phi []float64) *SU2 {
	m := newSU2(len(phi))
	for i, p := range phi {
		s, c := math.Sincos(p / 2)
		m.A[i] = complex(c, -s)
		m.D[i] = complex(c, s)
	}
	return m
}

// Mul returns the event-wise product m·o.
func (m *SU2) Mul(o *SU2) (*SU2, error) {
	if m.Len() != o.Len() {
		return nil, ErrBatchMismatch
	}
	out := newSU2(m.Len())
	for i := range m.A {
		out.A[i] = m.A[i]*o.A[i] + m.B[i]*o.C[i]
		out.B[i] = m.A[i]*o.B[i] + m.B[i]*o.D[i]
		out.C[i] = m.C[i]*o.A[i] + m.D[i]*o.C[i]
		out.D[i] = m.C[i]*o.B[i] + m.D[i]*o.D[i]
	}
	return out, nil
}

// Inv returns the event-wise inverse via the adjugate over the
// determinant (exact for det = 1 words, stable otherwise).
func (m *SU2) Inv() *SU2 {
	out := newSU2(m.Len())
	for i := range m.A {
		det := m.A[i]*m.D[i] - m.B[i]*m.C[i]
		out.A[i] = m.D[i] / det
		out.B[i] = -m.B[i] / det
		out.C[i] = -m.C[i] / det
		out.D[i] = m.A[i] / det
	}
	return out
}

// EulerAngles extracts z-y-z Euler angles from the rotation part of each
// matrix. The matrix is first normalized by √det; for a pure rotation
//
//	U = Rz(α)·Ry(β)·Rz(γ)
//
// the angles follow from U00 and U10. Degenerate poles resolve per
// event: β ≈ 0 sets γ = 0, α = −2·arg U00; β ≈ π sets γ = 0,
// α = 2·arg U10.
func (m *SU2) EulerAngles() Angles {
	n := m.Len()
	ang := Angles{
		Alpha: make([]float64, n),
		Beta:  make([]float64, n),
		Gamma: make([]float64, n),
	}
	for i := range m.A {
		det := m.A[i]*m.D[i] - m.B[i]*m.C[i]
		s := cmplx.Sqrt(det)
		u00, u10 := m.A[i]/s, m.C[i]/s
		a00, a10 := cmplx.Abs(u00), cmplx.Abs(u10)
		switch {
		case a10 < su2Eps:
			ang.Alpha[i] = -2 * cmplx.Phase(u00)
		case a00 < su2Eps:
			ang.Alpha[i] = 2 * cmplx.Phase(u10)
			ang.Beta[i] = math.Pi
		default:
			ang.Beta[i] = 2 * math.Atan2(a10, a00)
			p00, p10 := cmplx.Phase(u00), cmplx.Phase(u10)
			ang.Alpha[i] = p10 - p00
			ang.Gamma[i] = -(p00 + p10)
		}
	}
	return ang
}
