package lorentz

import (
	"math"

	"github.com/katalvlaran/spinor/fourvec"
)

// axisEps is the threshold below which a momentum component counts as
// zero for the degenerate-direction masks.
const axisEps = 1e-10

// Params holds the per-event decomposition of a four-momentum into a
// boost rapidity and the polar angles of the boost axis. Rapidity is
// identically zero for massless extraction, where only the direction is
// defined.
type Params struct {
	Rapidity []float64
	Theta    []float64
	Phi      []float64
}

// clampAcos evaluates acos with the argument clamped to [−1, 1], so that
// rounding in upstream ratios cannot turn a pole event into NaN.
func clampAcos(x float64) float64 {
	if x >= 1 {
		return 0
	}
	if x <= -1 {
		return math.Pi
	}
	return math.Acos(x)
}

// azimuth returns the angle of a transverse direction in [0, 2π]:
// acos(x1/rxy) on the upper branch, 2π − acos(x1/rxy) otherwise. The
// caller picks the branch from the sign of x2 — the massive extraction
// sends x2 = 0 to the lower branch, the massless one to the upper, and
// the half-integer phase e^{imφ} distinguishes φ = 0 from φ = 2π, so
// both conventions are part of the contract.
func azimuth(x1 float64, upper bool, rxy float64) float64 {
	phi := clampAcos(x1 / rxy)
	if !upper {
		phi = 2*math.Pi - phi
	}
	return phi
}

// MassiveParams decomposes each timelike four-momentum into the rapidity
// and axis angles of the pure boost from the rest frame:
//
//	ρ = acosh(x0),  θ = acos(x3/√(x0²−1)),  φ = azimuth of (x1, x2)
//
// with x = p/m. Momenta along z take φ = 0; momenta at rest take all
// three parameters zero. A non-timelike event yields NaN parameters for
// itself only.
func MassiveParams(p []fourvec.Vec) Params {
	n := len(p)
	out := Params{
		Rapidity: make([]float64, n),
		Theta:    make([]float64, n),
		Phi:      make([]float64, n),
	}
	for i, v := range p {
		m := v.M()
		x0, x1, x2, x3 := v.E/m, v.Px/m, v.Py/m, v.Pz/m
		cut2 := math.Abs(x1) < axisEps && math.Abs(x2) < axisEps
		cut1 := cut2 && math.Abs(x3) < axisEps
		if cut1 {
			continue
		}
		out.Rapidity[i] = math.Acosh(x0)
		out.Theta[i] = clampAcos(x3 / math.Sqrt(x0*x0-1))
		if !cut2 {
			out.Phi[i] = azimuth(x1, x2 > 0, math.Hypot(x1, x2))
		}
	}
	return out
}

// MasslessParams extracts the direction angles of each light-like
// momentum, x = p/E. Rapidity is zero throughout; momenta with no
// transverse component take both angles zero, regardless of the sign
// of x3.
func MasslessParams(p []fourvec.Vec) Params {
	n := len(p)
	out := Params{
		Rapidity: make([]float64, n),
		Theta:    make([]float64, n),
		Phi:      make([]float64, n),
	}
	for i, v := range p {
		x1, x2, x3 := v.Px/v.E, v.Py/v.E, v.Pz/v.E
		if math.Abs(x1) < axisEps && math.Abs(x2) < axisEps {
			continue
		}
		out.Theta[i] = clampAcos(x3)
		out.Phi[i] = azimuth(x1, x2 >= 0, math.Hypot(x1, x2))
	}
	return out
}
