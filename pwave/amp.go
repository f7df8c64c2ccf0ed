package pwave

import (
	"errors"

	"github.com/katalvlaran/spinor/fourvec"
	"github.com/katalvlaran/spinor/lorentz"
	"github.com/katalvlaran/spinor/spin"
	"github.com/katalvlaran/spinor/tensor"
)

// couplingSum accumulates Σ_i c_i · P(χ_i) over the chiral decomposition
// of (la,ra)⊗(lb,rb), pairing coefficients with decomposition terms in
// order. Terms whose intermediate cannot reach the target spin
// contribute nothing and are skipped; trailing terms without a
// coefficient are dropped.
func couplingSum(l, r, la, ra, lb, rb, s spin.Half, coeff []float64) (*tensor.Dense, error) {
	var sum *tensor.Dense
	for i, chi := range spin.Decomp(la, ra, lb, rb) {
		if i >= len(coeff) {
			break
		}
		term, err := spin.PCoupling(l, r, la, ra, lb, rb, chi[0], chi[1], s, 1, 1)
		if errors.Is(err, spin.ErrCouplingRange) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if sum == nil {
			sum = term.Clone().Scale(coeff[i])
			continue
		}
		if err := sum.AddScaled(coeff[i], term); err != nil {
			return nil, err
		}
	}
	if sum == nil {
		return nil, spin.ErrCouplingRange
	}
	return sum, nil
}

// CreateProj builds the momentum-independent projection tensor of the
// vertex j0 → j1 + j2 with total spin s and orbital momentum l:
//
//	proj[L, x, y, z] = Σ Ubar0[x,a]·P0SL[a,S,L]·PS12[S,b,c]·U1[b,y]·U2[c,z]
//
// shape (RepDim(l), 2j0+1, 2j1+1, 2j2+1). coeffS and coeffLS weight the
// chiral decomposition terms of the s1⊗s2 and s⊗L couplings.
func CreateProj(j0, j1, j2, l, s spin.Half, coeffS, coeffLS []float64) (*tensor.Dense, error) {
	if !l.IsInteger() || !s.IsInteger() {
		return nil, ErrOrbital
	}
	l0, r0 := spin.SCRep(j0)
	l1, r1 := spin.SCRep(j1)
	l2, r2 := spin.SCRep(j2)
	ls, rs := spin.SCRep(s)
	ll, rl := spin.SCRep(l)

	ubar0, err := spin.UbarSigma(l0, r0, j0, 1)
	if err != nil {
		return nil, err
	}
	u1, err := spin.USigma(l1, r1, j1, 1)
	if err != nil {
		return nil, err
	}
	u2, err := spin.USigma(l2, r2, j2, 1)
	if err != nil {
		return nil, err
	}
	ps12, err := couplingSum(ls, rs, l1, r1, l2, r2, s, coeffS)
	if err != nil {
		return nil, err
	}
	p0sl, err := couplingSum(l0, r0, ls, rs, ll, rl, j0, coeffLS)
	if err != nil {
		return nil, err
	}

	d0, d1, d2 := j0.Dim(), j1.Dim(), j2.Dim()
	repS, repL := p0sl.Dim(1), p0sl.Dim(2)
	rep1, rep2 := ps12.Dim(1), ps12.Dim(2)

	// A[x,S,L] = Σ_a Ubar0[x,a]·P0SL[a,S,L]
	flat, err := p0sl.Reshape(p0sl.Dim(0), repS*repL)
	if err != nil {
		return nil, err
	}
	a, err := tensor.MatMul(ubar0, flat)
	if err != nil {
		return nil, err
	}

	// B[S,y,z] = Σ_{b,c} PS12[S,b,c]·U1[b,y]·U2[c,z]
	b, _ := tensor.NewDense(repS, d1, d2)
	for si := 0; si < repS; si++ {
		for bi := 0; bi < rep1; bi++ {
			for ci := 0; ci < rep2; ci++ {
				w := ps12.At(si, bi, ci)
				if w == 0 {
					continue
				}
				for y := 0; y < d1; y++ {
					v := w * u1.At(bi, y)
					if v == 0 {
						continue
					}
					for z := 0; z < d2; z++ {
						b.Set(b.At(si, y, z)+v*u2.At(ci, z), si, y, z)
					}
				}
			}
		}
	}

	out, _ := tensor.NewDense(repL, d0, d1, d2)
	for li := 0; li < repL; li++ {
		for x := 0; x < d0; x++ {
			for si := 0; si < repS; si++ {
				v := a.At(x, si*repL+li)
				if v == 0 {
					continue
				}
				for y := 0; y < d1; y++ {
					for z := 0; z < d2; z++ {
						out.Set(out.At(li, x, y, z)+v*b.At(si, y, z), li, x, y, z)
					}
				}
			}
		}
	}
	return out, nil
}

// CalAmp evaluates the partial-wave amplitude of j0 → j1 + j2 per event:
// the daughters are boosted into the mother rest frame, the orbital
// tensor t_L is built from their momentum difference, and contracted
// with the projection tensor. Shape (N, 2j0+1, 2j1+1, 2j2+1).
func CalAmp(j0, j1, j2, l, s spin.Half, p1, p2 []fourvec.Vec, coeffS, coeffLS []float64) (*tensor.CDense, error) {
	if len(p1) != len(p2) || len(p1) == 0 {
		return nil, ErrBatchMismatch
	}
	proj, err := CreateProj(j0, j1, j2, l, s, coeffS, coeffLS)
	if err != nil {
		return nil, err
	}
	n := len(p1)
	q := make([]fourvec.Vec, n)
	for i := range p1 {
		trans := lorentz.RestBoost(p1[i].Add(p2[i]))
		q[i] = lorentz.Apply(trans, p1[i]).Sub(lorentz.Apply(trans, p2[i]))
	}
	lInt := l.TwoJ() / 2
	tl, err := TML(q, lInt)
	if err != nil {
		return nil, err
	}
	repL := proj.Dim(0)
	d0, d1, d2 := proj.Dim(1), proj.Dim(2), proj.Dim(3)
	out, _ := tensor.NewCDense(n, d0, d1, d2)
	od := out.Data()
	pd := proj.Data()
	block := d0 * d1 * d2
	for e := 0; e < n; e++ {
		oe := od[e*block : (e+1)*block]
		for li := 0; li < repL; li++ {
			w := tl.At(e, li)
			if w == 0 {
				continue
			}
			pl := pd[li*block : (li+1)*block]
			for k := 0; k < block; k++ {
				oe[k] += w * complex(pl[k], 0)
			}
		}
	}
	return out, nil
}
