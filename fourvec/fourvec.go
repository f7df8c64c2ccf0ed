package fourvec

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// betaEps guards the (γ−1)/β² factor of the boost formula: below this the
// whole momentum-transfer term vanishes and the factor is masked to zero.
const betaEps = 1e-14

// ErrBatchMismatch indicates two batches of different event counts were
// combined.
var ErrBatchMismatch = errors.New("fourvec: batch size mismatch")

// Vec is a four-momentum (E, px, py, pz) in natural units, metric (+,−,−,−).
type Vec struct {
	E, Px, Py, Pz float64
}

// New builds a Vec from energy and spatial part.
func New(e float64, p r3.Vec) Vec {
	return Vec{E: e, Px: p.X, Py: p.Y, Pz: p.Z}
}

// Spatial returns the 3-momentum part.
func (v Vec) Spatial() r3.Vec { return r3.Vec{X: v.Px, Y: v.Py, Z: v.Pz} }

// M2 returns the invariant mass squared E²−|p|². May be negative for
// unphysical input; callers decide how to interpret that.
func (v Vec) M2() float64 {
	return v.E*v.E - v.Px*v.Px - v.Py*v.Py - v.Pz*v.Pz
}

// M returns sqrt(M2). NaN for spacelike input, by design: a below-threshold
// event poisons only itself, never the batch.
func (v Vec) M() float64 { return math.Sqrt(v.M2()) }

// Add returns v + w componentwise.
func (v Vec) Add(w Vec) Vec {
	return Vec{E: v.E + w.E, Px: v.Px + w.Px, Py: v.Py + w.Py, Pz: v.Pz + w.Pz}
}

// Sub returns v − w componentwise.
func (v Vec) Sub(w Vec) Vec {
	return Vec{E: v.E - w.E, Px: v.Px - w.Px, Py: v.Py - w.Py, Pz: v.Pz - w.Pz}
}

// Neg returns the spatial reflection (E, −p), i.e. g·v.
func (v Vec) Neg() Vec {
	return Vec{E: v.E, Px: -v.Px, Py: -v.Py, Pz: -v.Pz}
}

// BoostVector returns the velocity p/E of the frame in which v is at rest.
func (v Vec) BoostVector() r3.Vec {
	return r3.Scale(1/v.E, v.Spatial())
}

// Boost applies an active Lorentz boost with velocity beta to v.
//
//	p' = p + [(γ−1)(p·β)/β² + γE] β,  E' = γ(E + p·β)
//
// The (γ−1)/β² factor is masked to zero when β² < betaEps; the remaining
// terms vanish in that limit as well, so the identity boost is exact.
func (v Vec) Boost(beta r3.Vec) Vec {
	b2 := r3.Norm2(beta)
	gamma := 1 / math.Sqrt(1-b2)
	bp := r3.Dot(beta, v.Spatial())
	var g2 float64
	if b2 > betaEps {
		g2 = (gamma - 1) / b2
	}
	p := r3.Add(v.Spatial(), r3.Scale(g2*bp+gamma*v.E, beta))
	return New(gamma*(v.E+bp), p)
}

// RestVector boosts p into the rest frame of ref.
func RestVector(ref, p Vec) Vec {
	return p.Boost(r3.Scale(-1, ref.BoostVector()))
}

// Sum adds the batches elementwise. Empty input yields nil.
func Sum(batches ...[]Vec) ([]Vec, error) {
	if len(batches) == 0 {
		return nil, nil
	}
	n := len(batches[0])
	for _, b := range batches[1:] {
		if len(b) != n {
			return nil, ErrBatchMismatch
		}
	}
	out := make([]Vec, n)
	copy(out, batches[0])
	for _, b := range batches[1:] {
		for i, v := range b {
			out[i] = out[i].Add(v)
		}
	}
	return out, nil
}

// RestBatch boosts every p[i] into the rest frame of ref[i].
func RestBatch(ref, p []Vec) ([]Vec, error) {
	if len(ref) != len(p) {
		return nil, ErrBatchMismatch
	}
	out := make([]Vec, len(p))
	for i := range p {
		out[i] = RestVector(ref[i], p[i])
	}
	return out, nil
}

// BoostBatch applies the per-event velocity beta[i] to every p[i].
func BoostBatch(p []Vec, beta []r3.Vec) ([]Vec, error) {
	if len(p) != len(beta) {
		return nil, ErrBatchMismatch
	}
	out := make([]Vec, len(p))
	for i := range p {
		out[i] = p[i].Boost(beta[i])
	}
	return out, nil
}

// Masses returns M() per event.
func Masses(p []Vec) []float64 {
	out := make([]float64, len(p))
	for i, v := range p {
		out[i] = v.M()
	}
	return out
}

// Spatials returns the 3-momentum part per event.
func Spatials(p []Vec) []r3.Vec {
	out := make([]r3.Vec, len(p))
	for i, v := range p {
		out[i] = v.Spatial()
	}
	return out
}
