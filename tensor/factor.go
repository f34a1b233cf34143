// SPDX-License-Identifier: MIT
// File: factor.go
// Role: Truncated SVD split of a tensor over a left/right axis bipartition.
// Policy:
//   - Singular values are returned in descending order by gonum; the square
//     root of each kept value is absorbed into both factors.
//   - At least one singular value is always kept so the bond never vanishes.

package tensor

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Truncation bounds the rank kept by SplitSVD.
//
// MaxRank caps the number of kept singular values (0 means no cap).
// When UseMaxErr is set, the smallest singular values are discarded for as
// long as the Frobenius norm of everything discarded stays <= MaxErr.
// When both are set the stricter (smaller) rank wins.
type Truncation struct {
	MaxRank   int
	MaxErr    float64
	UseMaxErr bool
}

// keep returns how many of the descending singular values s survive.
// Complexity: O(len(s)).
func (tr Truncation) keep(s []float64) int {
	keep := len(s)
	if tr.MaxRank > 0 && tr.MaxRank < keep {
		keep = tr.MaxRank
	}
	if tr.UseMaxErr {
		// Count the ascending cumulative norms that exceed the budget; the
		// ones under budget correspond to values that can be dropped.
		over := 0
		acc := 0.0
		var i int
		for i = len(s) - 1; i >= 0; i-- {
			acc += s[i] * s[i]
			if math.Sqrt(acc) > tr.MaxErr {
				over++
			}
		}
		if over < keep {
			keep = over
		}
	}
	if keep < 1 {
		keep = 1
	}

	return keep
}

// SplitSVD factors t ≈ u·v over the bipartition (left | right).
//
// Implementation:
//   - Stage 1: left ++ right must be a permutation of t's axes.
//   - Stage 2: matricize t as (left volume × right volume) and run a thin gonum SVD.
//   - Stage 3: keep k singular values per Truncation; scale U and Vᵀ columns/rows by sqrt(s).
//
// Returns:
//   - u: shape (left dims..., k)
//   - v: shape (k, right dims...)
//   - discarded: the truncated singular values, descending.
//
// Errors: ErrNilTensor, ErrAxis, ErrFactorization.
// Complexity: O(min(m,n)·m·n) for the SVD of the m×n matricization.
func SplitSVD(t *Dense, left, right []int, tr Truncation) (*Dense, *Dense, []float64, error) {
	if t == nil {
		return nil, nil, nil, ErrNilTensor
	}
	all := make([]int, 0, len(left)+len(right))
	all = append(all, left...)
	all = append(all, right...)
	if err := validateAxes(all, len(t.shape), true); err != nil {
		return nil, nil, nil, errors.WithMessage(err, "SplitSVD: bipartition")
	}

	data, rows, cols, err := matricize(t, left, right)
	if err != nil {
		return nil, nil, nil, err
	}
	var svd mat.SVD
	if ok := svd.Factorize(mat.NewDense(rows, cols, data), mat.SVDThin); !ok {
		return nil, nil, nil, errors.Wrapf(ErrFactorization, "SVD of %d×%d matricization", rows, cols)
	}
	s := svd.Values(nil)
	k := tr.keep(s)

	var um, vm mat.Dense
	svd.UTo(&um) // rows × min(rows, cols)
	svd.VTo(&vm) // cols × min(rows, cols)

	uData := make([]float64, rows*k)
	vData := make([]float64, k*cols)
	var i, j int
	var sq float64
	for j = 0; j < k; j++ {
		sq = math.Sqrt(s[j])
		for i = 0; i < rows; i++ {
			uData[i*k+j] = um.At(i, j) * sq
		}
		for i = 0; i < cols; i++ {
			vData[j*cols+i] = vm.At(i, j) * sq // row j of Vᵀ
		}
	}

	u := &Dense{shape: append(dimsOf(t.shape, left), k), data: uData}
	v := &Dense{shape: append([]int{k}, dimsOf(t.shape, right)...), data: vData}

	return u, v, append([]float64(nil), s[k:]...), nil
}
