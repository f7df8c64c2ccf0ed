package spin

import (
	"math"

	"github.com/katalvlaran/spinor/tensor"
)

// factorials of 0..170, exact in float64 up to 22! and correctly rounded
// beyond; MaxTwoJ keeps every argument well inside the table.
var factTab = func() [171]float64 {
	var t [171]float64
	t[0] = 1
	for i := 1; i < len(t); i++ {
		t[i] = t[i-1] * float64(i)
	}
	return t
}()

func fact(twice int) float64 { return factTab[twice/2] }

// cgCoeff evaluates a single Clebsch–Gordan coefficient
// ⟨j1 m1; j2 m2 | j m⟩ via the Racah closed form. All arguments are doubled.
// The caller guarantees the triangle condition; out-of-range projections
// yield 0.
func cgCoeff(j1, m1, j2, m2, j, m int) float64 {
	if m1+m2 != m {
		return 0
	}
	pre := float64(j+1) * fact(j1+j2-j) * fact(j1-j2+j) * fact(-j1+j2+j) / fact(j1+j2+j+2)
	pre *= fact(j+m) * fact(j-m) * fact(j1-m1) * fact(j1+m1) * fact(j2-m2) * fact(j2+m2)
	kMin := max(0, max(-(j-j2+m1), -(j-j1-m2)))
	kMax := min(j1+j2-j, min(j1-m1, j2+m2))
	sum := 0.0
	sign := 1.0
	if (kMin/2)%2 != 0 {
		sign = -1
	}
	for k := kMin; k <= kMax; k += 2 {
		sum += sign / (fact(k) * fact(j1+j2-j-k) * fact(j1-m1-k) *
			fact(j2+m2-k) * fact(j-j2+m1+k) * fact(j-j1-m2+k))
		sign = -sign
	}
	return math.Sqrt(pre) * sum
}

// CG returns the Clebsch–Gordan tensor coupling l ⊗ r → s, shape
// (dim l, dim r, dim s), with every projection index running from +j down
// to −j. The tensor is memoized per (l, r, s); callers must not mutate it.
//
// Returns ErrInvalidSpin for labels outside the accepted range and
// ErrCouplingRange when s violates the triangle condition — requesting
// such a coupling is a programming error, no output is defined for it.
func CG(l, r, s Half) (*tensor.Dense, error) {
	if !l.valid() || !r.valid() || !s.valid() {
		return nil, ErrInvalidSpin
	}
	if !triangle(l, r, s) {
		return nil, ErrCouplingRange
	}
	t := memo.do(cacheKey{kind: kindCG, a: l, b: r, c: s}, func() any {
		out, _ := tensor.NewDense(l.Dim(), r.Dim(), s.Dim())
		jl, jr, js := l.TwoJ(), r.TwoJ(), s.TwoJ()
		for a := 0; a < l.Dim(); a++ {
			ml := jl - 2*a
			for b := 0; b < r.Dim(); b++ {
				mr := jr - 2*b
				for c := 0; c < s.Dim(); c++ {
					ms := js - 2*c
					out.Set(cgCoeff(jl, ml, jr, mr, js, ms), a, b, c)
				}
			}
		}
		return out
	})
	return t.(*tensor.Dense), nil
}

// CCG couples two independent representation pairs through a third
// coupling: CG(l1,l2→l) ⊗ CG(r1,r2→r) contracted with CG(l,r→s).
// Shape: (dim l1, dim l2, dim r1, dim r2, dim s).
func CCG(l1, l2, r1, r2, l, r, s Half) (*tensor.Dense, error) {
	cg1, err := CG(l1, l2, l)
	if err != nil {
		return nil, err
	}
	cg2, err := CG(r1, r2, r)
	if err != nil {
		return nil, err
	}
	cg3, err := CG(l, r, s)
	if err != nil {
		return nil, err
	}
	t := memo.do(cacheKey{kind: kindCCG, a: l1, b: l2, c: r1, d: r2, e: l, f: r, g: s}, func() any {
		out, _ := tensor.NewDense(l1.Dim(), l2.Dim(), r1.Dim(), r2.Dim(), s.Dim())
		for a := 0; a < l1.Dim(); a++ {
			for b := 0; b < l2.Dim(); b++ {
				for c := 0; c < l.Dim(); c++ {
					v1 := cg1.At(a, b, c)
					if v1 == 0 {
						continue
					}
					for d := 0; d < r1.Dim(); d++ {
						for e := 0; e < r2.Dim(); e++ {
							for f := 0; f < r.Dim(); f++ {
								v2 := v1 * cg2.At(d, e, f)
								if v2 == 0 {
									continue
								}
								for g := 0; g < s.Dim(); g++ {
									v := v2 * cg3.At(c, f, g)
									if v != 0 {
										out.Set(out.At(a, b, d, e, g)+v, a, b, d, e, g)
									}
								}
							}
						}
					}
				}
			}
		}
		return out
	})
	return t.(*tensor.Dense), nil
}
