// SPDX-License-Identifier: MIT

// Package tensor implements small dense rank-N tensors, real and complex,
// used as the value carriers of the spin-algebra engine.
//
// Layout is row-major over an explicit shape; batched quantities put the
// event axis first (shape [N, d, d] for a batch of d×d matrices). The
// package deliberately stays minimal: construction, indexing, reshape,
// 2-D products, batched matrix products and Kronecker products — exactly
// the contractions the algebra needs, written as explicit loops.
//
// Error policy follows the house rules: constructors and shape-changing
// operations validate and return sentinel errors (ErrBadShape,
// ErrDimensionMismatch); element access with a malformed index is a
// programmer error and panics.
package tensor
