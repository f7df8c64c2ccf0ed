package pwave

import (
	"errors"
	"math"

	"github.com/katalvlaran/spinor/spin"
	"github.com/katalvlaran/spinor/tensor"
)

// Sentinel errors for amplitude assembly.
var (
	// ErrParity indicates a parity/helicity tag other than ±1.
	ErrParity = errors.New("pwave: parity tag must be +1 or -1")

	// ErrOrbital indicates a non-integer orbital or total-spin label.
	ErrOrbital = errors.New("pwave: orbital momentum must be integer")

	// ErrBatchMismatch indicates momentum batches of unequal length.
	ErrBatchMismatch = errors.New("pwave: momentum batch size mismatch")
)

// UZeta returns the wavefunction of a massless particle of spin s: the
// projector onto the extreme helicity slot, block-embedded into the
// parity-doubled space. slot 1 selects the left-handed piece, slot 2 the
// right-handed one.
func UZeta(s spin.Half, slot int) (*tensor.Dense, error) {
	dim := s.Dim()
	a, _ := tensor.NewDense(dim, dim)
	a.Set(1, dim-1, dim-1)
	b, _ := tensor.NewDense(dim, dim)
	b.Set(1, 0, 0)
	return spin.DirectSum(a, b, slot)
}

// UbarZeta is the contravariant partner of UZeta (slot flipped,
// transposed).
func UbarZeta(s spin.Half, slot int) (*tensor.Dense, error) {
	u, err := UZeta(s, (2*slot)%3)
	if err != nil {
		return nil, err
	}
	return u.Transpose2()
}

// SWF returns the covariant spin wavefunction of a particle: the matrix
// from its helicity space into its Lorentz representation space, shape
// (RepDim, 2s+1). id is the parity for massive particles and the
// helicity sign for massless ones. Spin 0 yields the trivial [[1]].
func SWF(s spin.Half, id int, massless bool) (*tensor.Dense, error) {
	if id != 1 && id != -1 {
		return nil, ErrParity
	}
	if s == 0 {
		return tensor.FromSlice([]float64{1}, 1, 1)
	}
	if massless {
		slot := 1
		if id == -1 {
			slot = 2
		}
		return UZeta(s, slot)
	}
	l, r := spin.SCRep(s)
	if s.IsInteger() {
		u, err := spin.USigma(l, r, s, 1)
		if err != nil {
			return nil, err
		}
		return u.Clone(), nil
	}
	u1, err := spin.USigma(l, r, s, 1)
	if err != nil {
		return nil, err
	}
	u2, err := spin.USigma(l, r, s, 2)
	if err != nil {
		return nil, err
	}
	out := u1.Clone()
	if err := out.AddScaled(float64(id), u2); err != nil {
		return nil, err
	}
	return out.Scale(1 / math.Sqrt2), nil
}

// SWFbar returns the contravariant spin wavefunction, shape
// (2s+1, RepDim).
func SWFbar(s spin.Half, id int, massless bool) (*tensor.Dense, error) {
	if id != 1 && id != -1 {
		return nil, ErrParity
	}
	if s == 0 {
		return tensor.FromSlice([]float64{1}, 1, 1)
	}
	if massless {
		slot := 2
		if id == -1 {
			slot = 1
		}
		return UbarZeta(s, slot)
	}
	l, r := spin.SCRep(s)
	if s.IsInteger() {
		u, err := spin.USigma(l, r, s, 1)
		if err != nil {
			return nil, err
		}
		return u.Transpose2()
	}
	u1, err := spin.UbarSigma(l, r, s, 1)
	if err != nil {
		return nil, err
	}
	u2, err := spin.UbarSigma(l, r, s, 2)
	if err != nil {
		return nil, err
	}
	out := u1.Clone().Scale(float64(id))
	if err := out.AddScaled(1, u2); err != nil {
		return nil, err
	}
	return out.Scale(1 / math.Sqrt2), nil
}

// SPT builds the spin-parity coupling tensor of a vertex s → s1 + s2:
// the mother wavefunction contracted through the Clebsch–Gordan tensor
// with both daughter contravariant wavefunctions. Shape
// (RepDim(s), RepDim(s1), RepDim(s2)).
func SPT(s spin.Half, id0 int, s1 spin.Half, id1 int, s2 spin.Half, id2 int, m0, m1, m2 bool) (*tensor.Dense, error) {
	f0, err := SWF(s, id0, m0)
	if err != nil {
		return nil, err
	}
	cg, err := spin.CG(s1, s2, s)
	if err != nil {
		return nil, err
	}
	f1, err := SWFbar(s1, id1, m1)
	if err != nil {
		return nil, err
	}
	f2, err := SWFbar(s2, id2, m2)
	if err != nil {
		return nil, err
	}
	rep0, rep1, rep2 := f0.Dim(0), f1.Dim(1), f2.Dim(1)
	d1, d2 := s1.Dim(), s2.Dim()
	out, _ := tensor.NewDense(rep0, rep1, rep2)
	od := out.Data()
	for a := 0; a < d1; a++ {
		for b := 0; b < d2; b++ {
			for c := 0; c < s.Dim(); c++ {
				w := cg.At(a, b, c)
				if w == 0 {
					continue
				}
				for m := 0; m < rep0; m++ {
					v := w * f0.At(m, c)
					if v == 0 {
						continue
					}
					base := m * rep1 * rep2
					for p := 0; p < rep1; p++ {
						vp := v * f1.At(a, p)
						if vp == 0 {
							continue
						}
						row := base + p*rep2
						for q := 0; q < rep2; q++ {
							od[row+q] += vp * f2.At(b, q)
						}
					}
				}
			}
		}
	}
	return out, nil
}
