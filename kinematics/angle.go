package kinematics

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/spinor/fourvec"
)

// baseZNorm is the momentum norm below which the top particle counts as
// at rest and the base z axis falls back to the lab ẑ.
const baseZNorm = 1e-5

// AngleEntry holds the helicity variables of one daughter at one vertex:
// the Euler rotation from the mother frame, the daughter's frame axes
// (expressed in the mother rest frame), and — for final states reached
// through a non-reference chain — the alignment rotation onto the
// reference chain's frame.
type AngleEntry struct {
	Ang     Angles
	X, Z    []r3.Vec
	Aligned *Angles
}

// DecayAngles holds the per-daughter entries of one vertex. For a
// three-daughter vertex Joint carries the rotation onto the decay-plane
// frame shared by all daughters.
type DecayAngles struct {
	Decay Decay
	Joint *Angles
	Out   map[Particle]*AngleEntry
}

// ChainAngles is the full angle set of one decay chain (or topology).
type ChainAngles struct {
	Topology *DecayChain
	Decays   map[string]*DecayAngles

	rMatrix map[Particle]*SU2
}

// RMatrix returns the accumulated SL(2,C) word carrying the base frame
// into the helicity frame of p, or nil when p is not reached by the
// chain.
func (c *ChainAngles) RMatrix(p Particle) *SU2 { return c.rMatrix[p] }

// Result bundles everything CalcAngles computes: inferred momenta and
// masses for every node of every used chain, plus the per-chain angles.
type Result struct {
	N       int
	Momenta map[Particle][]fourvec.Vec
	Masses  map[Particle][]float64
	Chains  []*ChainAngles
}

// HelicityAngles computes the helicity angles of a single chain from
// momenta covering its final states. Intermediate momenta are inferred;
// data is extended in place. baseZ and baseX fix the orientation of the
// top rest frame, one pair per event.
func HelicityAngles(data map[Particle][]fourvec.Vec, chain *DecayChain, baseZ, baseX []r3.Vec) (*ChainAngles, error) {
	if err := inferMomenta(data, chain); err != nil {
		return nil, err
	}
	n := len(data[chain.Top()])
	if len(baseZ) != n || len(baseX) != n {
		return nil, ErrBatchMismatch
	}

	// daughter momenta in the mother rest frame, per vertex
	restP := map[string][][]fourvec.Vec{}
	for _, d := range chain.Decays {
		core := data[d.Core]
		ps := make([][]fourvec.Vec, len(d.Outs))
		for j, o := range d.Outs {
			p, err := fourvec.RestBatch(core, data[o])
			if err != nil {
				return nil, err
			}
			ps[j] = p
		}
		restP[d.ID()] = ps
	}

	out := &ChainAngles{
		Topology: chain,
		Decays:   map[string]*DecayAngles{},
		rMatrix:  map[Particle]*SU2{},
	}
	setZ := map[Particle][]r3.Vec{chain.Top(): baseZ}
	setX := map[Particle][]r3.Vec{chain.Top(): baseX}

	// walk top-down: a vertex is ready once its core frame is known
	pending := append([]Decay(nil), chain.Decays...)
	for len(pending) > 0 {
		var next []Decay
		for _, d := range pending {
			z1, ok := setZ[d.Core]
			if !ok {
				next = append(next, d)
				continue
			}
			x1 := setX[d.Core]
			da := &DecayAngles{Decay: d, Out: map[Particle]*AngleEntry{}}
			for j, o := range d.Outs {
				pr := restP[d.ID()][j]
				z2 := fourvec.Spatials(pr)
				ang, x2 := angleZXZGetX(z1, x1, z2)
				setZ[o], setX[o] = z2, x2
				da.Out[o] = &AngleEntry{Ang: ang, X: x2, Z: z2}
				r, err := frameWord(pr, ang)
				if err != nil {
					return nil, err
				}
				if prev, ok := out.rMatrix[d.Core]; ok {
					if r, err = r.Mul(prev); err != nil {
						return nil, err
					}
				}
				out.rMatrix[o] = r
			}
			if len(d.Outs) == 3 {
				zi := make([][]r3.Vec, 3)
				for j := range d.Outs {
					zi[j] = fourvec.Spatials(restP[d.ID()][j])
				}
				joint, xi := angleZXPlane(z1, x1, zi)
				da.Joint = &joint
				for j, o := range d.Outs {
					da.Out[o].X = xi[j]
					r, err := frameWord(restP[d.ID()][j], joint)
					if err != nil {
						return nil, err
					}
					if prev, ok := out.rMatrix[d.Core]; ok {
						if r, err = r.Mul(prev); err != nil {
							return nil, err
						}
					}
					out.rMatrix[o] = r
				}
			}
			out.Decays[d.ID()] = da
		}
		if len(next) == len(pending) {
			return nil, ErrTopology
		}
		pending = next
	}
	return out, nil
}

// frameWord is the SL(2,C) step from a mother frame to a daughter
// helicity frame: rotate z onto the daughter momentum, then boost to
// its rest frame.
func frameWord(p []fourvec.Vec, ang Angles) (*SU2, error) {
	r, err := RotY(ang.Beta).Mul(RotZ(ang.Alpha))
	if err != nil {
		return nil, err
	}
	return BoostZFromP(p).Mul(r)
}

// CalcAngles runs the full pipeline over a decay group: momentum
// validation (and optional center-of-mass boost), per-topology helicity
// angles, and alignment angles between chains for every final state.
func CalcAngles(p map[Particle][]fourvec.Vec, group *DecayGroup, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	data, n, err := structMomentum(p, group.Outs(), o.CenterOfMass)
	if err != nil {
		return nil, err
	}

	chains := group.Chains
	if o.UsingTopology {
		chains = group.Topologies()
	}
	for _, c := range chains {
		if err := inferMomenta(data, c); err != nil {
			return nil, err
		}
	}

	baseZ, baseX := baseAxes(data[group.Top()], o.ZFromTopMomentum)
	res := &Result{N: n, Momenta: data, Masses: map[Particle][]float64{}}
	for q, batch := range data {
		res.Masses[q] = fourvec.Masses(batch)
	}
	for _, c := range chains {
		ca, err := HelicityAngles(data, c, baseZ, baseX)
		if err != nil {
			return nil, err
		}
		res.Chains = append(res.Chains, ca)
	}
	if err := alignFinals(res.Chains, group, o.RBoost); err != nil {
		return nil, err
	}
	return res, nil
}

// baseAxes builds the per-event base frame: x̂ throughout, and z either
// fixed to the lab ẑ or taken from the top momentum direction when that
// momentum is nonzero.
func baseAxes(top []fourvec.Vec, zFromTop bool) (baseZ, baseX []r3.Vec) {
	n := len(top)
	baseZ = make([]r3.Vec, n)
	baseX = make([]r3.Vec, n)
	for i := range top {
		baseZ[i], baseX[i] = zAxis, xAxis
		if zFromTop {
			p3 := top[i].Spatial()
			if r3.Norm(p3) >= baseZNorm {
				baseZ[i] = p3
			}
		}
	}
	return baseZ, baseX
}

// alignFinals attaches, to every final state reached through a
// non-reference chain, the Euler angles rotating its helicity frame onto
// the frame the reference chain assigns to the same particle. The
// reference chain per final prefers one where the final is a direct
// daughter of the group top; any remaining final falls back to the first
// chain.
func alignFinals(chains []*ChainAngles, group *DecayGroup, rBoost bool) error {
	isFinal := map[Particle]bool{}
	for _, f := range group.Outs() {
		isFinal[f] = true
	}
	ref := map[Particle]int{}
	refEntry := map[Particle]*AngleEntry{}
	for ci, c := range chains {
		for _, da := range c.Decays {
			if da.Decay.Core != group.Top() {
				continue
			}
			for _, o := range da.Decay.Outs {
				if isFinal[o] {
					if _, ok := ref[o]; !ok {
						ref[o] = ci
						refEntry[o] = da.Out[o]
					}
				}
			}
		}
	}
	for _, f := range group.Outs() {
		if _, ok := ref[f]; ok {
			continue
		}
		for _, da := range chains[0].Decays {
			if e, ok := da.Out[f]; ok {
				ref[f] = 0
				refEntry[f] = e
				break
			}
		}
		if _, ok := ref[f]; !ok {
			return ErrTopology
		}
	}

	for ci, c := range chains {
		for _, da := range c.Decays {
			for o, e := range da.Out {
				if !isFinal[o] || ref[o] == ci {
					continue
				}
				var ang Angles
				if rBoost {
					r := c.RMatrix(o)
					rRef := chains[ref[o]].RMatrix(o)
					w, err := rRef.Mul(r.Inv())
					if err != nil {
						return err
					}
					ang = w.EulerAngles()
				} else {
					re := refEntry[o]
					ang = angleZXZX(e.Z, e.X, re.Z, re.X)
				}
				e.Aligned = &ang
			}
		}
	}
	return nil
}
