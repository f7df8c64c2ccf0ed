// SPDX-License-Identifier: MIT

package tensor

import (
	"gonum.org/v1/gonum/cmplxs"
)

// CDense is the complex counterpart of Dense: a row-major dense tensor of
// arbitrary rank. Batched matrices use shape [N, rows, cols].
type CDense struct {
	shape []int
	data  []complex128
}

// NewCDense allocates a zero complex tensor of the given shape.
func NewCDense(shape ...int) (*CDense, error) {
	n, err := sizeOf(shape)
	if err != nil {
		return nil, err
	}
	return &CDense{shape: cloneShape(shape), data: make([]complex128, n)}, nil
}

// CFromSlice wraps data (not copied) with the given shape.
func CFromSlice(data []complex128, shape ...int) (*CDense, error) {
	n, err := sizeOf(shape)
	if err != nil {
		return nil, err
	}
	if n != len(data) {
		return nil, ErrBadShape
	}
	return &CDense{shape: cloneShape(shape), data: data}, nil
}

// Complex promotes a real tensor to a complex one (copying).
func Complex(t *Dense) *CDense {
	d := make([]complex128, len(t.data))
	for i, v := range t.data {
		d[i] = complex(v, 0)
	}
	return &CDense{shape: cloneShape(t.shape), data: d}
}

// Shape returns a copy of the tensor shape.
func (t *CDense) Shape() []int { return cloneShape(t.shape) }

// Rank returns the number of axes.
func (t *CDense) Rank() int { return len(t.shape) }

// Dim returns the length of axis i.
func (t *CDense) Dim(i int) int { return t.shape[i] }

// Size returns the total element count.
func (t *CDense) Size() int { return len(t.data) }

// Data exposes the backing slice for contraction kernels.
func (t *CDense) Data() []complex128 { return t.data }

// At returns the element at the given multi-index (panics on misuse).
func (t *CDense) At(idx ...int) complex128 {
	return t.data[offsetIn(t.shape, idx)]
}

// Set assigns the element at the given multi-index.
func (t *CDense) Set(v complex128, idx ...int) {
	t.data[offsetIn(t.shape, idx)] = v
}

// Reshape returns a view over the same data with a new shape of equal size.
func (t *CDense) Reshape(shape ...int) (*CDense, error) {
	n, err := sizeOf(shape)
	if err != nil {
		return nil, err
	}
	if n != len(t.data) {
		return nil, ErrBadShape
	}
	return &CDense{shape: cloneShape(shape), data: t.data}, nil
}

// Clone returns a deep copy.
func (t *CDense) Clone() *CDense {
	d := make([]complex128, len(t.data))
	copy(d, t.data)
	return &CDense{shape: cloneShape(t.shape), data: d}
}

// Scale multiplies every element by c, in place, and returns t.
func (t *CDense) Scale(c complex128) *CDense {
	cmplxs.Scale(c, t.data)
	return t
}

// CMatMul returns the 2-D complex matrix product a·b.
func CMatMul(a, b *CDense) (*CDense, error) {
	if a.Rank() != 2 || b.Rank() != 2 {
		return nil, ErrRank
	}
	m, k, k2, n := a.shape[0], a.shape[1], b.shape[0], b.shape[1]
	if k != k2 {
		return nil, ErrDimensionMismatch
	}
	out, _ := NewCDense(m, n)
	for i := 0; i < m; i++ {
		for l := 0; l < k; l++ {
			c := a.data[i*k+l]
			if c == 0 {
				continue
			}
			cmplxs.AddScaled(out.data[i*n:(i+1)*n], c, b.data[l*n:(l+1)*n])
		}
	}
	return out, nil
}

// MulBatch multiplies two batches of matrices event by event:
// [N,r,k]·[N,k,c] → [N,r,c].
func MulBatch(a, b *CDense) (*CDense, error) {
	if a.Rank() != 3 || b.Rank() != 3 {
		return nil, ErrRank
	}
	n, r, k := a.shape[0], a.shape[1], a.shape[2]
	if b.shape[0] != n || b.shape[1] != k {
		return nil, ErrDimensionMismatch
	}
	c := b.shape[2]
	out, _ := NewCDense(n, r, c)
	for e := 0; e < n; e++ {
		ae := a.data[e*r*k : (e+1)*r*k]
		be := b.data[e*k*c : (e+1)*k*c]
		oe := out.data[e*r*c : (e+1)*r*c]
		for i := 0; i < r; i++ {
			for l := 0; l < k; l++ {
				v := ae[i*k+l]
				if v == 0 {
					continue
				}
				cmplxs.AddScaled(oe[i*c:(i+1)*c], v, be[l*c:(l+1)*c])
			}
		}
	}
	return out, nil
}

// TransposeBatch swaps the last two axes of a [N,r,c] batch.
func (t *CDense) TransposeBatch() (*CDense, error) {
	if t.Rank() != 3 {
		return nil, ErrRank
	}
	n, r, c := t.shape[0], t.shape[1], t.shape[2]
	out, _ := NewCDense(n, c, r)
	for e := 0; e < n; e++ {
		te := t.data[e*r*c : (e+1)*r*c]
		oe := out.data[e*r*c : (e+1)*r*c]
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				oe[j*r+i] = te[i*c+j]
			}
		}
	}
	return out, nil
}

// KronBatch builds the event-wise Kronecker product of two matrix batches:
// [N,ra,ca] ⊗ [N,rb,cb] → [N, ra·rb, ca·cb], row-major block layout.
func KronBatch(a, b *CDense) (*CDense, error) {
	if a.Rank() != 3 || b.Rank() != 3 {
		return nil, ErrRank
	}
	n := a.shape[0]
	if b.shape[0] != n {
		return nil, ErrDimensionMismatch
	}
	ra, ca := a.shape[1], a.shape[2]
	rb, cb := b.shape[1], b.shape[2]
	out, _ := NewCDense(n, ra*rb, ca*cb)
	cc := ca * cb
	for e := 0; e < n; e++ {
		ae := a.data[e*ra*ca : (e+1)*ra*ca]
		be := b.data[e*rb*cb : (e+1)*rb*cb]
		oe := out.data[e*ra*rb*ca*cb : (e+1)*ra*rb*ca*cb]
		for ia := 0; ia < ra; ia++ {
			for ib := 0; ib < rb; ib++ {
				row := ia*rb + ib
				for ja := 0; ja < ca; ja++ {
					av := ae[ia*ca+ja]
					for jb := 0; jb < cb; jb++ {
						oe[row*cc+ja*cb+jb] = av * be[ib*cb+jb]
					}
				}
			}
		}
	}
	return out, nil
}
