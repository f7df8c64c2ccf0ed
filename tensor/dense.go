// SPDX-License-Identifier: MIT

package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Dense is a row-major dense real tensor of arbitrary rank.
// The zero value is not usable; construct via NewDense or FromSlice.
type Dense struct {
	shape []int
	data  []float64
}

// NewDense allocates a zero tensor of the given shape.
// Complexity: O(prod(shape)).
func NewDense(shape ...int) (*Dense, error) {
	n, err := sizeOf(shape)
	if err != nil {
		return nil, err
	}
	return &Dense{shape: cloneShape(shape), data: make([]float64, n)}, nil
}

// FromSlice wraps data (not copied) with the given shape.
func FromSlice(data []float64, shape ...int) (*Dense, error) {
	n, err := sizeOf(shape)
	if err != nil {
		return nil, err
	}
	if n != len(data) {
		return nil, ErrBadShape
	}
	return &Dense{shape: cloneShape(shape), data: data}, nil
}

// Shape returns a copy of the tensor shape.
func (t *Dense) Shape() []int { return cloneShape(t.shape) }

// Rank returns the number of axes.
func (t *Dense) Rank() int { return len(t.shape) }

// Dim returns the length of axis i.
func (t *Dense) Dim(i int) int { return t.shape[i] }

// Size returns the total element count.
func (t *Dense) Size() int { return len(t.data) }

// Data exposes the backing slice for contraction kernels. Treat as
// read-only unless the tensor was built locally.
func (t *Dense) Data() []float64 { return t.data }

// At returns the element at the given multi-index.
// A wrong-rank or out-of-range index is a programmer error and panics.
func (t *Dense) At(idx ...int) float64 { return t.data[t.offset(idx)] }

// Set assigns the element at the given multi-index.
func (t *Dense) Set(v float64, idx ...int) { t.data[t.offset(idx)] = v }

// Reshape returns a view over the same data with a new shape of equal size.
func (t *Dense) Reshape(shape ...int) (*Dense, error) {
	n, err := sizeOf(shape)
	if err != nil {
		return nil, err
	}
	if n != len(t.data) {
		return nil, ErrBadShape
	}
	return &Dense{shape: cloneShape(shape), data: t.data}, nil
}

// Clone returns a deep copy.
func (t *Dense) Clone() *Dense {
	d := make([]float64, len(t.data))
	copy(d, t.data)
	return &Dense{shape: cloneShape(t.shape), data: d}
}

// Scale multiplies every element by c, in place, and returns t.
func (t *Dense) Scale(c float64) *Dense {
	floats.Scale(c, t.data)
	return t
}

// AddScaled accumulates c·o into t elementwise. Shapes must match.
func (t *Dense) AddScaled(c float64, o *Dense) error {
	if !sameShape(t.shape, o.shape) {
		return ErrDimensionMismatch
	}
	floats.AddScaled(t.data, c, o.data)
	return nil
}

// MatMul returns the 2-D matrix product a·b.
func MatMul(a, b *Dense) (*Dense, error) {
	if a.Rank() != 2 || b.Rank() != 2 {
		return nil, ErrRank
	}
	m, k, k2, n := a.shape[0], a.shape[1], b.shape[0], b.shape[1]
	if k != k2 {
		return nil, ErrDimensionMismatch
	}
	out, _ := NewDense(m, n)
	for i := 0; i < m; i++ {
		ar := a.data[i*k : (i+1)*k]
		or := out.data[i*n : (i+1)*n]
		for l := 0; l < k; l++ {
			floats.AddScaled(or, ar[l], b.data[l*n:(l+1)*n])
		}
	}
	return out, nil
}

// Transpose2 returns the transpose of a 2-D tensor.
func (t *Dense) Transpose2() (*Dense, error) {
	if t.Rank() != 2 {
		return nil, ErrRank
	}
	r, c := t.shape[0], t.shape[1]
	out, _ := NewDense(c, r)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[j*r+i] = t.data[i*c+j]
		}
	}
	return out, nil
}

func (t *Dense) offset(idx []int) int { return offsetIn(t.shape, idx) }

// offsetIn is the shared row-major index arithmetic for Dense and CDense.
func offsetIn(shape, idx []int) int {
	if len(idx) != len(shape) {
		panic(fmt.Sprintf("tensor: index rank %d for rank-%d tensor", len(idx), len(shape)))
	}
	off := 0
	for i, x := range idx {
		if x < 0 || x >= shape[i] {
			panic(fmt.Sprintf("tensor: index %d out of range on axis %d (dim %d)", x, i, shape[i]))
		}
		off = off*shape[i] + x
	}
	return off
}

func sizeOf(shape []int) (int, error) {
	if len(shape) == 0 {
		return 0, ErrBadShape
	}
	n := 1
	for _, d := range shape {
		if d <= 0 {
			return 0, ErrBadShape
		}
		n *= d
	}
	return n, nil
}

func cloneShape(s []int) []int {
	c := make([]int, len(s))
	copy(c, s)
	return c
}

func sameShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
