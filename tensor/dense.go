// SPDX-License-Identifier: MIT
// File: dense.go
// Role: Dense N-dimensional tensor: construction, element access, reshape, clone.
// Determinism:
//   - Storage is row-major (last axis varies fastest); iteration order is fixed.
// Concurrency:
//   - Dense has no internal locking; concurrent writers must synchronize externally.

package tensor

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Dense is a row-major tensor of float64 values.
// shape holds the axis extents; data holds Volume(shape) elements.
type Dense struct {
	shape []int     // axis extents, each > 0; empty for a scalar
	data  []float64 // flat backing storage, len == Volume(shape)
}

// Volume returns the product of dims (1 for an empty shape).
// Complexity: O(len(dims)).
func Volume(dims []int) int {
	v := 1
	var d int
	for _, d = range dims {
		v *= d
	}

	return v
}

// validateShape checks that every dimension is strictly positive.
func validateShape(shape []int) error {
	var i, d int
	for i, d = range shape {
		if d <= 0 {
			return errors.Wrapf(ErrBadShape, "axis %d has extent %d", i, d)
		}
	}

	return nil
}

// Zeros creates a tensor of the given shape filled with zeros.
// Stage 1 (Validate): every extent must be > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(Volume(shape)) time and memory.
func Zeros(shape ...int) (*Dense, error) {
	if err := validateShape(shape); err != nil {
		return nil, err
	}

	return &Dense{
		shape: append([]int(nil), shape...), // own the shape slice
		data:  make([]float64, Volume(shape)),
	}, nil
}

// New wraps data (row-major) in a tensor of the given shape.
// The data slice is copied; the caller keeps ownership of its argument.
// Complexity: O(len(data)).
func New(shape []int, data []float64) (*Dense, error) {
	if err := validateShape(shape); err != nil {
		return nil, err
	}
	if len(data) != Volume(shape) {
		return nil, errors.Wrapf(ErrDataLength, "shape %v needs %d elements, got %d", shape, Volume(shape), len(data))
	}

	return &Dense{
		shape: append([]int(nil), shape...),
		data:  append([]float64(nil), data...),
	}, nil
}

// Shape returns a copy of the axis extents.
func (t *Dense) Shape() []int {
	return append([]int(nil), t.shape...)
}

// Rank returns the number of axes.
func (t *Dense) Rank() int {
	return len(t.shape)
}

// Size returns the total number of elements.
func (t *Dense) Size() int {
	return len(t.data)
}

// Data exposes the row-major backing slice. Writes are visible to the tensor.
func (t *Dense) Data() []float64 {
	return t.data
}

// offset computes the flat index of idx or returns ErrOutOfRange.
// Complexity: O(Rank).
func (t *Dense) offset(idx []int) (int, error) {
	if len(idx) != len(t.shape) {
		return 0, errors.Wrapf(ErrOutOfRange, "got %d indices for rank %d", len(idx), len(t.shape))
	}
	off := 0
	var ax int
	for ax = range idx {
		if idx[ax] < 0 || idx[ax] >= t.shape[ax] {
			return 0, errors.Wrapf(ErrOutOfRange, "index %d on axis %d of extent %d", idx[ax], ax, t.shape[ax])
		}
		off = off*t.shape[ax] + idx[ax] // Horner form of the row-major offset
	}

	return off, nil
}

// At returns the element at idx.
func (t *Dense) At(idx ...int) (float64, error) {
	off, err := t.offset(idx)
	if err != nil {
		return 0, err
	}

	return t.data[off], nil
}

// Set stores v at idx.
func (t *Dense) Set(v float64, idx ...int) error {
	off, err := t.offset(idx)
	if err != nil {
		return err
	}
	t.data[off] = v

	return nil
}

// Clone returns a deep copy of the tensor.
// Complexity: O(Size).
func (t *Dense) Clone() *Dense {
	return &Dense{
		shape: append([]int(nil), t.shape...),
		data:  append([]float64(nil), t.data...),
	}
}

// Reshape returns a tensor sharing t's storage under a new shape of equal volume.
func (t *Dense) Reshape(shape ...int) (*Dense, error) {
	if err := validateShape(shape); err != nil {
		return nil, err
	}
	if Volume(shape) != len(t.data) {
		return nil, errors.Wrapf(ErrDataLength, "cannot reshape %v into %v", t.shape, shape)
	}

	return &Dense{shape: append([]int(nil), shape...), data: t.data}, nil
}

// String implements fmt.Stringer with a compact "Dense(shape)[values]" form.
func (t *Dense) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Dense%v[", t.shape)
	var i int
	for i = range t.data {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%g", t.data[i])
	}
	sb.WriteString("]")

	return sb.String()
}
