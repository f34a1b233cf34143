// File: split.go
// Role: SplitNode: replace one node by two joined by a new bond edge,
//       using the truncated SVD of the numeric backend.
// Invariants:
//   - Left node slots:  left edges (in the given order), then the bond.
//   - Right node slots: the bond, then right edges (in the given order).
//   - The original node is consumed; its edges now live on the two factors.

package network

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/tnprep/tensor"
)

// SplitOption configures SplitNode via functional arguments.
// An invalid option is recorded and surfaced as ErrOptionViolation.
type SplitOption func(*splitOptions)

// splitOptions holds truncation controls and naming for SplitNode.
type splitOptions struct {
	trunc     tensor.Truncation
	bondName  string
	leftName  string
	rightName string

	// internal error recorded during option parsing
	err error
}

// WithMaxSingularValues caps the bond dimension at n (n must be > 0).
func WithMaxSingularValues(n int) SplitOption {
	return func(o *splitOptions) {
		if n <= 0 {
			o.err = errors.Wrapf(ErrOptionViolation, "max singular values must be > 0 (got %d)", n)
			return
		}
		o.trunc.MaxRank = n
	}
}

// WithMaxTruncationErr discards the smallest singular values while the norm
// of everything discarded stays <= e (e must be >= 0).
func WithMaxTruncationErr(e float64) SplitOption {
	return func(o *splitOptions) {
		if e < 0 {
			o.err = errors.Wrapf(ErrOptionViolation, "max truncation error must be >= 0 (got %g)", e)
			return
		}
		o.trunc.MaxErr = e
		o.trunc.UseMaxErr = true
	}
}

// WithBondName labels the new bond edge.
func WithBondName(name string) SplitOption {
	return func(o *splitOptions) { o.bondName = name }
}

// WithFactorNames labels the left and right factor nodes.
func WithFactorNames(left, right string) SplitOption {
	return func(o *splitOptions) { o.leftName, o.rightName = left, right }
}

// SplitNode factors n over the slot bipartition (left | right).
//
// Implementation:
//   - Stage 1: parse options; reject invalid ones with ErrOptionViolation.
//   - Stage 2: tensor.SplitSVD over the same axes (validates the bipartition).
//   - Stage 3: move n's edges onto the factors, then Connect the bond.
//
// Returns the left node, the right node and the discarded singular values.
// The bond dimension is Right.Shape()[0].
func SplitNode(n *Node, left, right []int, opts ...SplitOption) (*Node, *Node, []float64, error) {
	if n == nil {
		return nil, nil, nil, ErrNilNode
	}
	var o splitOptions
	var opt SplitOption
	for _, opt = range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, nil, nil, o.err
	}

	u, v, discarded, err := tensor.SplitSVD(n.tensor, left, right, o.trunc)
	if err != nil {
		return nil, nil, nil, errors.WithMessagef(err, "split %s", n)
	}
	ln, err := NewNode(u, WithName(o.leftName))
	if err != nil {
		return nil, nil, nil, err
	}
	rn, err := NewNode(v, WithName(o.rightName))
	if err != nil {
		return nil, nil, nil, err
	}

	var i, ax int
	var e *Edge
	for i, ax = range left {
		e = n.edges[ax]
		e.rebind(slotRef{node: n, axis: ax}, slotRef{node: ln, axis: i})
		ln.edges[i] = e
	}
	for i, ax = range right {
		e = n.edges[ax]
		e.rebind(slotRef{node: n, axis: ax}, slotRef{node: rn, axis: i + 1})
		rn.edges[i+1] = e
	}
	bond, err := Connect(ln, len(left), rn, 0)
	if err != nil {
		return nil, nil, nil, err
	}
	bond.name = o.bondName
	n.edges = nil

	return ln, rn, discarded, nil
}
