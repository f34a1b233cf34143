// SPDX-License-Identifier: MIT
// Package tensor: sentinel error set.
// Every message is prefixed with "tensor: ..." so it can be grepped in logs.
// Callers match with errors.Is; context is attached with errors.Wrapf.

package tensor

import "github.com/pkg/errors"

var (
	// ErrBadShape is returned when a requested shape has a non-positive dimension.
	ErrBadShape = errors.New("tensor: invalid shape")

	// ErrDataLength is returned when backing data does not match the shape volume.
	ErrDataLength = errors.New("tensor: data length does not match shape")

	// ErrOutOfRange indicates that an element index is outside valid bounds.
	ErrOutOfRange = errors.New("tensor: index out of range")

	// ErrAxis indicates an invalid axis list: out of range, duplicated,
	// or not covering every axis when a full permutation is required.
	ErrAxis = errors.New("tensor: invalid axis")

	// ErrDimensionMismatch indicates incompatible extents between operands,
	// e.g. contracting an axis of extent 2 against one of extent 3.
	ErrDimensionMismatch = errors.New("tensor: dimension mismatch")

	// ErrNilTensor indicates that a nil *Dense was used.
	ErrNilTensor = errors.New("tensor: nil tensor")

	// ErrFactorization indicates that the SVD routine failed to converge.
	ErrFactorization = errors.New("tensor: factorization failed")
)
