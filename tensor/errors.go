// SPDX-License-Identifier: MIT

package tensor

import "errors"

var (
	// ErrBadShape is returned when a requested shape has a non-positive
	// dimension or does not match the data length.
	ErrBadShape = errors.New("tensor: invalid shape")

	// ErrDimensionMismatch indicates incompatible operand shapes
	// (product inner dimensions, batch sizes, elementwise partners).
	ErrDimensionMismatch = errors.New("tensor: dimension mismatch")

	// ErrRank indicates an operation that requires a specific rank
	// (e.g. a 2-D matrix product) received a tensor of another rank.
	ErrRank = errors.New("tensor: wrong rank")
)
