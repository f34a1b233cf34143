// SPDX-License-Identifier: MIT
// File: ops.go
// Role: Axis permutation and pairwise-axis contraction.
// Policy:
//   - Inputs are never mutated; every kernel allocates a fresh result.
//   - Contraction is lowered to one matrix product: free axes of a form the
//     rows, paired axes the inner dimension, free axes of b the columns.

package tensor

import (
	"math"
	"slices"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// rowMajorStrides returns the element stride of each axis.
func rowMajorStrides(shape []int) []int {
	strides := make([]int, len(shape))
	s := 1
	var ax int
	for ax = len(shape) - 1; ax >= 0; ax-- {
		strides[ax] = s
		s *= shape[ax]
	}

	return strides
}

// validateAxes checks that axes are in [0,rank) and pairwise distinct.
// When full is set the list must also be a permutation of all axes.
func validateAxes(axes []int, rank int, full bool) error {
	if full && len(axes) != rank {
		return errors.Wrapf(ErrAxis, "permutation %v does not cover rank %d", axes, rank)
	}
	seen := make([]bool, rank)
	var ax int
	for _, ax = range axes {
		if ax < 0 || ax >= rank {
			return errors.Wrapf(ErrAxis, "axis %d out of range for rank %d", ax, rank)
		}
		if seen[ax] {
			return errors.Wrapf(ErrAxis, "axis %d listed twice", ax)
		}
		seen[ax] = true
	}

	return nil
}

// complement returns the axes of [0,rank) not present in axes, ascending.
func complement(axes []int, rank int) []int {
	free := make([]int, 0, rank-len(axes))
	var ax int
	for ax = 0; ax < rank; ax++ {
		if !slices.Contains(axes, ax) {
			free = append(free, ax)
		}
	}

	return free
}

// dimsOf gathers shape[axes[i]] for each i.
func dimsOf(shape, axes []int) []int {
	dims := make([]int, len(axes))
	var i int
	for i = range axes {
		dims[i] = shape[axes[i]]
	}

	return dims
}

// Transpose returns a new tensor whose axis i is axis perm[i] of t.
// Stage 1 (Validate): perm must be a full permutation of t's axes.
// Stage 2 (Execute): walk the output in row-major order with an odometer,
// advancing the source offset by the permuted strides.
// Complexity: O(Size) time and memory.
func Transpose(t *Dense, perm []int) (*Dense, error) {
	if t == nil {
		return nil, ErrNilTensor
	}
	rank := len(t.shape)
	if err := validateAxes(perm, rank, true); err != nil {
		return nil, err
	}

	strides := rowMajorStrides(t.shape)
	outShape := dimsOf(t.shape, perm)
	steps := dimsOf(strides, perm) // source stride for each output axis
	out := &Dense{shape: outShape, data: make([]float64, len(t.data))}

	idx := make([]int, rank)
	src := 0
	var k, ax int
	for k = range out.data {
		out.data[k] = t.data[src]
		for ax = rank - 1; ax >= 0; ax-- { // odometer increment
			idx[ax]++
			src += steps[ax]
			if idx[ax] < outShape[ax] {
				break
			}
			src -= steps[ax] * outShape[ax] // wrap this axis, carry into the next
			idx[ax] = 0
		}
	}

	return out, nil
}

// matricize permutes t to (rows..., cols...) and returns the flat data
// together with the row and column volumes.
func matricize(t *Dense, rows, cols []int) ([]float64, int, int, error) {
	perm := make([]int, 0, len(rows)+len(cols))
	perm = append(perm, rows...)
	perm = append(perm, cols...)
	pt, err := Transpose(t, perm)
	if err != nil {
		return nil, 0, 0, err
	}

	return pt.data, Volume(dimsOf(t.shape, rows)), Volume(dimsOf(t.shape, cols)), nil
}

// TensorDot contracts axesA[i] of a with axesB[i] of b for every i.
// The result's axes are a's free axes (in order) followed by b's free axes.
//
// Implementation:
//   - Stage 1: validate pairing (equal lengths, distinct in-range axes, equal extents).
//   - Stage 2: matricize a as (freeA × paired) and b as (paired × freeB).
//   - Stage 3: one gonum mat.Dense.Mul writing straight into the result storage.
//
// Errors: ErrNilTensor, ErrAxis, ErrDimensionMismatch.
// Complexity: O(|freeA|·|paired|·|freeB|) time.
func TensorDot(a, b *Dense, axesA, axesB []int) (*Dense, error) {
	if a == nil || b == nil {
		return nil, ErrNilTensor
	}
	if len(axesA) != len(axesB) {
		return nil, errors.Wrapf(ErrAxis, "paired axis lists differ in length: %d vs %d", len(axesA), len(axesB))
	}
	if err := validateAxes(axesA, len(a.shape), false); err != nil {
		return nil, errors.WithMessage(err, "TensorDot: first operand")
	}
	if err := validateAxes(axesB, len(b.shape), false); err != nil {
		return nil, errors.WithMessage(err, "TensorDot: second operand")
	}
	var i int
	for i = range axesA {
		if a.shape[axesA[i]] != b.shape[axesB[i]] {
			return nil, errors.Wrapf(ErrDimensionMismatch, "axis %d (extent %d) against axis %d (extent %d)",
				axesA[i], a.shape[axesA[i]], axesB[i], b.shape[axesB[i]])
		}
	}

	freeA := complement(axesA, len(a.shape))
	freeB := complement(axesB, len(b.shape))
	dataA, m, k, err := matricize(a, freeA, axesA)
	if err != nil {
		return nil, err
	}
	dataB, _, n, err := matricize(b, axesB, freeB)
	if err != nil {
		return nil, err
	}

	out := &Dense{
		shape: append(dimsOf(a.shape, freeA), dimsOf(b.shape, freeB)...),
		data:  make([]float64, m*n),
	}
	// The receiver wraps out.data with stride n, so Mul fills it in place.
	mc := mat.NewDense(m, n, out.data)
	mc.Mul(mat.NewDense(m, k, dataA), mat.NewDense(k, n, dataB))

	return out, nil
}

// AllClose reports whether a and b have the same shape and every pair of
// elements differs by at most tol.
func AllClose(a, b *Dense, tol float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	if !slices.Equal(a.shape, b.shape) {
		return false
	}
	var i int
	for i = range a.data {
		if math.Abs(a.data[i]-b.data[i]) > tol {
			return false
		}
	}

	return true
}
