package spin

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/spinor/tensor"
)

var sqrt2 = math.Sqrt(2)

// xMuM is the similarity transform between the chiral basis [m] of the
// fundamental Lorentz representation and the spacetime (four-vector)
// basis [μ]. Fixed 4×4 complex constant; its inverse is its conjugate
// transpose (the matrix is unitary).
var xMuM = func() *tensor.CDense {
	i := complex(0, 1)
	d := []complex128{
		0, complex(1/sqrt2, 0), complex(-1/sqrt2, 0), 0,
		complex(1/sqrt2, 0), 0, 0, complex(-1/sqrt2, 0),
		i / complex(sqrt2, 0), 0, 0, i / complex(sqrt2, 0),
		0, complex(-1/sqrt2, 0), complex(-1/sqrt2, 0), 0,
	}
	t, _ := tensor.CFromSlice(d, 4, 4)
	return t
}()

var xMMu = func() *tensor.CDense {
	out, _ := tensor.NewCDense(4, 4)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out.Set(cmplx.Conj(xMuM.At(j, i)), i, j)
		}
	}
	return out
}()

// XMuM returns the chiral→spacetime basis constant (shared; do not mutate).
func XMuM() *tensor.CDense { return xMuM }

// XMMu returns the spacetime→chiral basis constant (shared; do not mutate).
func XMMu() *tensor.CDense { return xMMu }

// Conjugation returns the similarity matrix between the complex-conjugate
// SU(2) representation of spin s and the representation itself, i.e. the
// Wigner small-d matrix at angle p·π with both projection indices running
// from +s down to −s. Computed from the exact closed form of d(π)
// (antidiagonal with alternating sign) raised to the p-th power, so no
// trigonometric rounding enters. p must be non-negative.
func Conjugation(s Half, p int) (*tensor.Dense, error) {
	if !s.valid() {
		return nil, ErrInvalidSpin
	}
	if p < 0 {
		return nil, ErrBadSlot
	}
	t := memo.do(cacheKey{kind: kindConj, a: s, n1: int8(p % 4)}, func() any {
		dim := s.Dim()
		base, _ := tensor.NewDense(dim, dim)
		for a := 0; a < dim; a++ {
			v := 1.0
			if a%2 != 0 {
				v = -1
			}
			base.Set(v, a, dim-1-a)
		}
		out, _ := tensor.NewDense(dim, dim)
		for a := 0; a < dim; a++ {
			out.Set(1, a, a)
		}
		for i := 0; i < p%4; i++ {
			out, _ = tensor.MatMul(out, base)
		}
		return out
	})
	return t.(*tensor.Dense), nil
}

// DirectSum block-embeds a matrix into the parity-doubled space: slot 1
// stacks u1 above a zero block shaped like u2, slot 2 stacks a zero block
// shaped like u1 above u2. The slot choice is deterministic per caller.
func DirectSum(u1, u2 *tensor.Dense, slot int) (*tensor.Dense, error) {
	if u1.Rank() != 2 || u2.Rank() != 2 {
		return nil, tensor.ErrRank
	}
	switch slot {
	case 1:
		out, _ := tensor.NewDense(u1.Dim(0)+u2.Dim(0), u1.Dim(1))
		copy(out.Data(), u1.Data())
		return out, nil
	case 2:
		out, _ := tensor.NewDense(u1.Dim(0)+u2.Dim(0), u2.Dim(1))
		copy(out.Data()[u1.Dim(0)*u2.Dim(1):], u2.Data())
		return out, nil
	default:
		return nil, ErrBadSlot
	}
}

// uSigma is the plain (l,r) coupling matrix: CG(l,r→s) flattened to
// (dim l · dim r, dim s).
func uSigma(l, r, s Half) (*tensor.Dense, error) {
	cg, err := CG(l, r, s)
	if err != nil {
		return nil, err
	}
	return cg.Reshape(l.Dim()*r.Dim(), s.Dim())
}

// uuSigma is the composite coupling matrix: CCG with the (l1,r1)(l2,r2)
// axes interleaved, flattened to (dim(l1)·dim(r1)·dim(l2)·dim(r2), dim s).
func uuSigma(l1, r1, l2, r2, l, r, s Half) (*tensor.Dense, error) {
	ccg, err := CCG(l1, l2, r1, r2, l, r, s)
	if err != nil {
		return nil, err
	}
	d1, d2, d3, d4, d5 := l1.Dim(), r1.Dim(), l2.Dim(), r2.Dim(), s.Dim()
	out, _ := tensor.NewDense(d1*d2*d3*d4, d5)
	for a := 0; a < d1; a++ {
		for b := 0; b < d2; b++ {
			for c := 0; c < d3; c++ {
				for d := 0; d < d4; d++ {
					row := ((a*d2+b)*d3+c)*d4 + d
					for g := 0; g < d5; g++ {
						out.Set(ccg.At(a, c, b, d, g), row, g)
					}
				}
			}
		}
	}
	return out, nil
}

// USigma returns the covariant coupling matrix between the (possibly
// parity-doubled) representation space of (l,r) and the spin-s projection
// space. For l == r the representation is already self-conjugate; otherwise
// the (l,r) and (r,l) pieces are direct-summed into the given slot.
func USigma(l, r, s Half, slot int) (*tensor.Dense, error) {
	if l == r {
		return uSigma(l, r, s)
	}
	u1, err := uSigma(l, r, s)
	if err != nil {
		return nil, err
	}
	u2, err := uSigma(r, l, s)
	if err != nil {
		return nil, err
	}
	return DirectSum(u1, u2, slot)
}

// UbarSigma is the contravariant partner of USigma: the slot index flips
// (1↔2) and the matrix is transposed.
func UbarSigma(l, r, s Half, slot int) (*tensor.Dense, error) {
	u, err := USigma(l, r, s, (2*slot)%3)
	if err != nil {
		return nil, err
	}
	return u.Transpose2()
}

// uabba is the permutation matrix that swaps the two tensor factors of a
// flattened product space: index a·B+b ↦ b·A+a.
func uabba(a, b int) *tensor.Dense {
	out, _ := tensor.NewDense(a*b, a*b)
	for i := 0; i < a; i++ {
		for j := 0; j < b; j++ {
			out.Set(1, i*b+j, j*a+i)
		}
	}
	return out
}

// UUSigma couples two representation pairs into spin s on the doubled
// spaces, branching on which pairs are self-conjugate exactly as the
// covariant-tensor construction requires. slot1/slot2 select the embedding
// slots of the first and second pair.
func UUSigma(l1, r1, l2, r2, l, r, s Half, slot1, slot2 int) (*tensor.Dense, error) {
	key := cacheKey{kind: kindUU, a: l1, b: r1, c: l2, d: r2, e: l, f: r, g: s,
		n1: int8(slot1), n2: int8(slot2)}
	type result struct {
		t   *tensor.Dense
		err error
	}
	res := memo.do(key, func() any {
		t, err := uuSigmaBuild(l1, r1, l2, r2, l, r, s, slot1, slot2)
		return result{t, err}
	}).(result)
	return res.t, res.err
}

func uuSigmaBuild(l1, r1, l2, r2, l, r, s Half, slot1, slot2 int) (*tensor.Dense, error) {
	switch {
	case l1 == r1 && l2 == r2:
		return uuSigma(l1, r1, l2, r2, l, r, s)
	case l2 == r2:
		u1, err := uuSigma(l1, r1, l2, r2, l, r, s)
		if err != nil {
			return nil, err
		}
		u2, err := uuSigma(r1, l1, l2, r2, r, l, s)
		if err != nil {
			return nil, err
		}
		return DirectSum(u1, u2, slot1)
	case l1 == r1:
		perm := uabba(l1.Dim()*r1.Dim(), 2*l2.Dim()*r2.Dim())
		b1, err := uuSigma(l2, r2, l1, r1, l, r, s)
		if err != nil {
			return nil, err
		}
		b2, err := uuSigma(r2, l2, l1, r1, r, l, s)
		if err != nil {
			return nil, err
		}
		b, err := DirectSum(b1, b2, slot2)
		if err != nil {
			return nil, err
		}
		return tensor.MatMul(perm, b)
	default:
		perm := uabba(l1.Dim()*r1.Dim(), 2*l2.Dim()*r2.Dim())
		b1, err := uuSigma(l2, r2, l1, r1, l, r, s)
		if err != nil {
			return nil, err
		}
		b2, err := uuSigma(r2, l2, l1, r1, l, r, s)
		if err != nil {
			return nil, err
		}
		b, err := DirectSum(b1, b2, slot2)
		if err != nil {
			return nil, err
		}
		c1, err := uuSigma(l2, r2, r1, l1, r, l, s)
		if err != nil {
			return nil, err
		}
		c2, err := uuSigma(r2, l2, r1, l1, r, l, s)
		if err != nil {
			return nil, err
		}
		c, err := DirectSum(c1, c2, slot2)
		if err != nil {
			return nil, err
		}
		ab, err := tensor.MatMul(perm, b)
		if err != nil {
			return nil, err
		}
		ac, err := tensor.MatMul(perm, c)
		if err != nil {
			return nil, err
		}
		return DirectSum(ab, ac, slot1)
	}
}

// UUbarSigma is the contravariant partner of UUSigma (slots flipped,
// transposed).
func UUbarSigma(l1, r1, l2, r2, l, r, s Half, slot1, slot2 int) (*tensor.Dense, error) {
	u, err := UUSigma(l1, r1, l2, r2, l, r, s, (2*slot1)%3, (2*slot2)%3)
	if err != nil {
		return nil, err
	}
	return u.Transpose2()
}

// PCoupling builds the rank-3 coupling tensor projecting the product of two
// representation spaces (l1,r1) ⊗ (l2,r2), coupled through the intermediate
// (l12,r12), onto the representation space (l,r) via total spin s. Shape:
// (RepDim(l,r), RepDim(l1,r1), RepDim(l2,r2)).
func PCoupling(l, r, l1, r1, l2, r2, l12, r12, s Half, slot1, slot2 int) (*tensor.Dense, error) {
	a, err := USigma(l, r, s, slot1)
	if err != nil {
		return nil, err
	}
	b, err := UUbarSigma(l1, r1, l2, r2, l12, r12, s, slot1, slot2)
	if err != nil {
		return nil, err
	}
	m, err := tensor.MatMul(a, b)
	if err != nil {
		return nil, err
	}
	return m.Reshape(RepDim(l, r), RepDim(l1, r1), RepDim(l2, r2))
}
