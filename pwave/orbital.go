package pwave

import (
	"github.com/katalvlaran/spinor/fourvec"
	"github.com/katalvlaran/spinor/spin"
	"github.com/katalvlaran/spinor/tensor"
)

// TLGen builds the batched generator step of the orbital tensor ladder
// for orbital momentum l ≥ 1: the coupling of the rank-(l−1) space with
// one momentum factor into the rank-l space, shape (N, l+1 squared,
// l squared). The momentum enters through the chiral basis constant.
func TLGen(q []fourvec.Vec, l int) (*tensor.CDense, error) {
	if l < 1 {
		return nil, ErrOrbital
	}
	if len(q) == 0 {
		return nil, ErrBatchMismatch
	}
	hl := spin.Half(2 * l)
	p, err := spin.PCoupling(
		spin.Half(l), spin.Half(l),
		spin.Half(l-1), spin.Half(l-1),
		1, 1,
		spin.Half(l), spin.Half(l),
		hl, 1, 1,
	)
	if err != nil {
		return nil, err
	}
	x := spin.XMMu()
	n := len(q)
	// xq[e,c] = Σ_μ X[c,μ]·q[e,μ], X the spacetime→chiral constant
	xq, _ := tensor.NewCDense(n, 4)
	for e, v := range q {
		comp := [4]complex128{
			complex(v.E, 0), complex(v.Px, 0), complex(v.Py, 0), complex(v.Pz, 0),
		}
		for c := 0; c < 4; c++ {
			var s complex128
			for mu := 0; mu < 4; mu++ {
				s += x.At(c, mu) * comp[mu]
			}
			xq.Set(s, e, c)
		}
	}
	da, db := p.Dim(0), p.Dim(1)
	out, _ := tensor.NewCDense(n, da, db)
	od := out.Data()
	pd := p.Data()
	for e := 0; e < n; e++ {
		oe := od[e*da*db : (e+1)*da*db]
		for ab := 0; ab < da*db; ab++ {
			var s complex128
			for c := 0; c < 4; c++ {
				if w := pd[ab*4+c]; w != 0 {
					s += complex(w, 0) * xq.At(e, c)
				}
			}
			oe[ab] = s
		}
	}
	return out, nil
}

// TML builds the batched rank-l orbital tensor t_L(q) by iterating the
// generator ladder, shape (N, l+1 squared). l = 0 yields ones. Each
// rung multiplies one power of q, so t_L scales as |q|^l.
func TML(q []fourvec.Vec, l int) (*tensor.CDense, error) {
	if l < 0 {
		return nil, ErrOrbital
	}
	n := len(q)
	if n == 0 {
		return nil, ErrBatchMismatch
	}
	if l == 0 {
		out, _ := tensor.NewCDense(n, 1)
		for e := 0; e < n; e++ {
			out.Set(1, e, 0)
		}
		return out, nil
	}
	g, err := TLGen(q, 1)
	if err != nil {
		return nil, err
	}
	res, _ := tensor.NewCDense(n, 4)
	for e := 0; e < n; e++ {
		for a := 0; a < 4; a++ {
			res.Set(g.At(e, a, 0), e, a)
		}
	}
	for i := 2; i <= l; i++ {
		g, err = TLGen(q, i)
		if err != nil {
			return nil, err
		}
		da, db := g.Dim(1), g.Dim(2)
		next, _ := tensor.NewCDense(n, da)
		for e := 0; e < n; e++ {
			for a := 0; a < da; a++ {
				var s complex128
				for b := 0; b < db; b++ {
					s += g.At(e, a, b) * res.At(e, b)
				}
				next.Set(s, e, a)
			}
		}
		res = next
	}
	return res, nil
}
