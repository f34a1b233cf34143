// SPDX-License-Identifier: MIT
package tensor_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tnprep/tensor"
)

// TestSplitSVDReconstruct checks u·v reproduces the permuted input when nothing is truncated.
func TestSplitSVDReconstruct(t *testing.T) {
	d, err := tensor.Random(rand.New(rand.NewSource(3)), 2, 3, 4)
	require.NoError(t, err)

	u, v, discarded, err := tensor.SplitSVD(d, []int{0, 2}, []int{1}, tensor.Truncation{})
	require.NoError(t, err)
	require.Empty(t, discarded)
	require.Equal(t, []int{2, 4, 3}, u.Shape()) // bond = min(8, 3)
	require.Equal(t, []int{3, 3}, v.Shape())

	back, err := tensor.TensorDot(u, v, []int{2}, []int{0})
	require.NoError(t, err)
	want, err := tensor.Transpose(d, []int{0, 2, 1})
	require.NoError(t, err)
	require.True(t, tensor.AllClose(want, back, 1e-10))
}

// TestSplitSVDMaxRank caps the bond and reports the dropped values.
func TestSplitSVDMaxRank(t *testing.T) {
	d, err := tensor.Random(rand.New(rand.NewSource(4)), 4, 4)
	require.NoError(t, err)

	u, v, discarded, err := tensor.SplitSVD(d, []int{0}, []int{1}, tensor.Truncation{MaxRank: 2})
	require.NoError(t, err)
	require.Equal(t, []int{4, 2}, u.Shape())
	require.Equal(t, []int{2, 4}, v.Shape())
	require.Len(t, discarded, 2)
	require.GreaterOrEqual(t, discarded[0], discarded[1]) // descending
}

// TestSplitSVDMaxErrDropsNullSpace truncates a rank-1 matrix down to its rank.
func TestSplitSVDMaxErrDropsNullSpace(t *testing.T) {
	// Outer product x yᵀ has exactly one non-zero singular value.
	x := []float64{1, 2, 3}
	y := []float64{4, 5, 6}
	data := make([]float64, 0, 9)
	var i, j int
	for i = range x {
		for j = range y {
			data = append(data, x[i]*y[j])
		}
	}
	d, err := tensor.New([]int{3, 3}, data)
	require.NoError(t, err)

	u, v, discarded, err := tensor.SplitSVD(d, []int{0}, []int{1}, tensor.Truncation{MaxErr: 1e-9, UseMaxErr: true})
	require.NoError(t, err)
	require.Equal(t, []int{3, 1}, u.Shape())
	require.Equal(t, []int{1, 3}, v.Shape())
	require.Len(t, discarded, 2)

	back, err := tensor.TensorDot(u, v, []int{1}, []int{0})
	require.NoError(t, err)
	require.True(t, tensor.AllClose(d, back, 1e-10))
}

// TestSplitSVDBadBipartition rejects overlapping or incomplete axis groups.
func TestSplitSVDBadBipartition(t *testing.T) {
	d, err := tensor.Zeros(2, 2, 2)
	require.NoError(t, err)

	_, _, _, err = tensor.SplitSVD(d, []int{0, 1}, []int{1}, tensor.Truncation{})
	require.ErrorIs(t, err, tensor.ErrAxis)
	_, _, _, err = tensor.SplitSVD(d, []int{0}, []int{1}, tensor.Truncation{})
	require.ErrorIs(t, err, tensor.ErrAxis)
	_, _, _, err = tensor.SplitSVD(nil, []int{0}, []int{1}, tensor.Truncation{})
	require.ErrorIs(t, err, tensor.ErrNilTensor)
}
