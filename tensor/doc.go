// SPDX-License-Identifier: MIT

// Package tensor is the numeric backend of tnprep: a dense, row-major,
// real-valued N-dimensional array plus the handful of kernels the network
// layer needs.
//
// What is provided:
//   - Dense: shape + flat float64 storage (an empty shape is a scalar).
//   - Zeros / New / Random constructors with strict shape validation.
//   - Transpose (axis permutation) and Reshape (view over the same storage).
//   - TensorDot: contraction over paired axes, lowered onto a single
//     gonum mat.Dense multiplication.
//   - SplitSVD: truncated low-rank factorization over a left/right axis
//     bipartition, lowered onto gonum mat.SVD.
//
// Errors:
//
//	ErrBadShape          - a dimension is <= 0.
//	ErrDataLength        - data length differs from the product of the shape.
//	ErrOutOfRange        - an element index is outside its axis.
//	ErrAxis              - an axis list is invalid (out of range, duplicated, incomplete).
//	ErrDimensionMismatch - paired axes or operands disagree on extent.
//	ErrNilTensor         - a nil *Dense was passed.
//	ErrFactorization     - the SVD did not converge.
package tensor
