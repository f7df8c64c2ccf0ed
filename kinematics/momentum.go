package kinematics

import (
	"math"

	"github.com/katalvlaran/spinor/fourvec"
)

// structMomentum validates the final-state batches and optionally boosts
// everything into the common center-of-mass frame. Returns a fresh map
// (inputs are never mutated) and the event count.
func structMomentum(p map[Particle][]fourvec.Vec, finals []Particle, centerMass bool) (map[Particle][]fourvec.Vec, int, error) {
	if len(finals) == 0 {
		return nil, 0, ErrTopology
	}
	batches := make([][]fourvec.Vec, len(finals))
	for i, f := range finals {
		b, ok := p[f]
		if !ok {
			return nil, 0, ErrMissingMomentum
		}
		batches[i] = b
	}
	n := len(batches[0])
	if n == 0 {
		return nil, 0, ErrBatchMismatch
	}
	for _, b := range batches[1:] {
		if len(b) != n {
			return nil, 0, ErrBatchMismatch
		}
	}
	out := make(map[Particle][]fourvec.Vec, len(finals))
	if !centerMass {
		for i, f := range finals {
			out[f] = batches[i]
		}
		return out, n, nil
	}
	top, err := fourvec.Sum(batches...)
	if err != nil {
		return nil, 0, err
	}
	for i, f := range finals {
		rest, err := fourvec.RestBatch(top, batches[i])
		if err != nil {
			return nil, 0, err
		}
		out[f] = rest
	}
	return out, n, nil
}

// inferMomenta fills in every missing intermediate (and top) momentum of
// the chain as the sum of its final-state descendants.
func inferMomenta(data map[Particle][]fourvec.Vec, chain *DecayChain) error {
	fill := func(p Particle) error {
		if _, ok := data[p]; ok {
			return nil
		}
		fin := chain.Finals(p)
		batches := make([][]fourvec.Vec, len(fin))
		for i, f := range fin {
			b, ok := data[f]
			if !ok {
				return ErrMissingMomentum
			}
			batches[i] = b
		}
		sum, err := fourvec.Sum(batches...)
		if err != nil {
			return err
		}
		data[p] = sum
		return nil
	}
	if err := fill(chain.Top()); err != nil {
		return err
	}
	for _, d := range chain.Decays {
		for _, o := range d.Outs {
			if err := fill(o); err != nil {
				return err
			}
		}
	}
	return nil
}

// Getp returns the breakup momentum of the two-body decay m0 → m1 + m2
// in the m0 rest frame. Below-threshold input (bad events, resolution
// tails) clamps to 0 instead of going imaginary.
func Getp(m0, m1, m2 float64) float64 {
	s, d := m1+m2, m1-m2
	q := (m0 - s) * (m0 + s) * (m0 - d) * (m0 + d)
	if !(q > 0) {
		return 0
	}
	return math.Sqrt(q) / (2 * m0)
}

// RelativeMomentum computes the per-event breakup momentum |q| for every
// two-body vertex of the chain, keyed by Decay.ID(). Vertices with more
// than two daughters are skipped.
func RelativeMomentum(data map[Particle][]fourvec.Vec, chain *DecayChain) (map[string][]float64, error) {
	out := map[string][]float64{}
	for _, d := range chain.Decays {
		if len(d.Outs) != 2 {
			continue
		}
		p0, ok := data[d.Core]
		if !ok {
			return nil, ErrMissingMomentum
		}
		p1, ok1 := data[d.Outs[0]]
		p2, ok2 := data[d.Outs[1]]
		if !ok1 || !ok2 {
			return nil, ErrMissingMomentum
		}
		if len(p1) != len(p0) || len(p2) != len(p0) {
			return nil, ErrBatchMismatch
		}
		q := make([]float64, len(p0))
		for i := range p0 {
			q[i] = Getp(p0[i].M(), p1[i].M(), p2[i].M())
		}
		out[d.ID()] = q
	}
	return out, nil
}
