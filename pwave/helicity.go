package pwave

import (
	"github.com/katalvlaran/spinor/fourvec"
	"github.com/katalvlaran/spinor/lorentz"
	"github.com/katalvlaran/spinor/spin"
	"github.com/katalvlaran/spinor/tensor"
)

// wfBatch is a daughter wavefunction that is either one constant matrix
// (massive) or a per-event batch (massless, boosted with the momentum).
type wfBatch struct {
	t       *tensor.CDense // (N, rep, dim) or (1, rep, dim)
	batched bool
}

func (w wfBatch) at(e, a, j int) complex128 {
	if !w.batched {
		e = 0
	}
	return w.t.At(e, a, j)
}

// daughterWF builds the daughter wavefunction batch: massless particles
// get their standard-frame wavefunction rotated with the momentum
// direction, massive ones keep the constant matrix.
func daughterWF(p []fourvec.Vec, s spin.Half, id int, massless bool) (wfBatch, error) {
	base, err := SWF(s, id, massless)
	if err != nil {
		return wfBatch{}, err
	}
	cbase := tensor.Complex(base)
	if !massless {
		rep, dim := base.Dim(0), base.Dim(1)
		t, err := cbase.Reshape(1, rep, dim)
		if err != nil {
			return wfBatch{}, err
		}
		return wfBatch{t: t}, nil
	}
	rot, err := lorentz.RepFromMomentum(p, s, true)
	if err != nil {
		return wfBatch{}, err
	}
	n := rot.Dim(0)
	rep, dim := base.Dim(0), base.Dim(1)
	out, _ := tensor.NewCDense(n, rep, dim)
	for e := 0; e < n; e++ {
		for a := 0; a < rep; a++ {
			for j := 0; j < dim; j++ {
				var sum complex128
				for b := 0; b < rep; b++ {
					sum += rot.At(e, a, b) * cbase.At(b, j)
				}
				out.Set(sum, e, a, j)
			}
		}
	}
	return wfBatch{t: out, batched: true}, nil
}

// HelicityPWA evaluates the helicity partial-wave amplitude of the
// vertex s → s1 + s2 with total spin S and orbital momentum l, fully
// contracted per event: shape (N, 2s+1, 2s1+1, 2s2+1).
//
// id0/id1/id2 are parity tags (helicity signs for massless daughters);
// m0/m1/m2 flag massless particles. The orbital tensor is built from
// the daughter momentum difference in the mother rest frame.
func HelicityPWA(s spin.Half, id0 int, p1 []fourvec.Vec, s1 spin.Half, id1 int,
	p2 []fourvec.Vec, s2 spin.Half, id2 int, bigS, l spin.Half,
	m0, m1, m2 bool) (*tensor.CDense, error) {
	if len(p1) != len(p2) || len(p1) == 0 {
		return nil, ErrBatchMismatch
	}
	if !l.IsInteger() {
		return nil, ErrOrbital
	}
	wf1, err := daughterWF(p1, s1, id1, m1)
	if err != nil {
		return nil, err
	}
	wf2, err := daughterWF(p2, s2, id2, m2)
	if err != nil {
		return nil, err
	}

	p, err := fourvec.Sum(p1, p2)
	if err != nil {
		return nil, err
	}
	p1s, err := fourvec.RestBatch(p, p1)
	if err != nil {
		return nil, err
	}
	p2s, err := fourvec.RestBatch(p, p2)
	if err != nil {
		return nil, err
	}
	n := len(p)
	q := make([]fourvec.Vec, n)
	for i := range q {
		q[i] = p1s[i].Sub(p2s[i])
	}

	psSL, err := SPT(s, id0, bigS, id1*id2, l, 1, m0, false, false)
	if err != nil {
		return nil, err
	}
	tl, err := TML(q, l.TwoJ()/2)
	if err != nil {
		return nil, err
	}
	ps12, err := SPT(bigS, id1*id2, s1, id1, s2, id2, false, m1, m2)
	if err != nil {
		return nil, err
	}
	a0, err := SWFbar(s, id0, m0)
	if err != nil {
		return nil, err
	}

	repS0 := psSL.Dim(0)
	repS, repL := psSL.Dim(1), psSL.Dim(2)
	rep1, rep2 := ps12.Dim(1), ps12.Dim(2)
	d0, d1, d2 := s.Dim(), s1.Dim(), s2.Dim()

	// gamma[e,σ,p,q] = Σ_{S,L} PsSL[σ,S,L]·tL[e,L]·PS12[S,p,q]
	gamma, _ := tensor.NewCDense(n, repS0, rep1, rep2)
	for e := 0; e < n; e++ {
		for sig := 0; sig < repS0; sig++ {
			for bigs := 0; bigs < repS; bigs++ {
				var w complex128
				for li := 0; li < repL; li++ {
					if v := psSL.At(sig, bigs, li); v != 0 {
						w += complex(v, 0) * tl.At(e, li)
					}
				}
				if w == 0 {
					continue
				}
				for pi := 0; pi < rep1; pi++ {
					for qi := 0; qi < rep2; qi++ {
						if v := ps12.At(bigs, pi, qi); v != 0 {
							gamma.Set(gamma.At(e, sig, pi, qi)+w*complex(v, 0), e, sig, pi, qi)
						}
					}
				}
			}
		}
	}

	out, _ := tensor.NewCDense(n, d0, d1, d2)
	for e := 0; e < n; e++ {
		for m := 0; m < d0; m++ {
			for sig := 0; sig < repS0; sig++ {
				v0 := a0.At(m, sig)
				if v0 == 0 {
					continue
				}
				for pi := 0; pi < rep1; pi++ {
					for i := 0; i < d1; i++ {
						v1 := wf1.at(e, pi, i)
						if v1 == 0 {
							continue
						}
						for qi := 0; qi < rep2; qi++ {
							g := gamma.At(e, sig, pi, qi)
							if g == 0 {
								continue
							}
							for j := 0; j < d2; j++ {
								v := complex(v0, 0) * g * v1 * wf2.at(e, qi, j)
								if v != 0 {
									out.Set(out.At(e, m, i, j)+v, e, m, i, j)
								}
							}
						}
					}
				}
			}
		}
	}
	return out, nil
}
