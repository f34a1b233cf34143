// File: contract.go
// Role: Merging two adjacent nodes: Rewire (graph surgery only) and
//       ContractBetween (numeric contraction + Rewire).
// Invariants:
//   - The merged node's slots are a's unshared slots (in order) followed by b's.
//   - Exactly the shared edges between a and b disappear from the graph.
//   - a and b are consumed: their slot lists are cleared and must not be reused.

package network

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/tnprep/tensor"
)

// slotRef names one slot of one node.
type slotRef struct {
	node *Node
	axis int
}

// rebind moves the endpoint of e that sits at from onto to.
func (e *Edge) rebind(from, to slotRef) {
	if e.node1 == from.node && e.axis1 == from.axis {
		e.node1, e.axis1 = to.node, to.axis
		return
	}
	e.node2, e.axis2 = to.node, to.axis
}

// unsharedSlots lists the slots of a then b whose edges are not in shared.
func unsharedSlots(shared map[*Edge]struct{}, a, b *Node) []slotRef {
	out := make([]slotRef, 0, len(a.edges)+len(b.edges)-2*len(shared))
	var (
		n  *Node
		ax int
		ok bool
	)
	for _, n = range []*Node{a, b} {
		for ax = range n.edges {
			if _, ok = shared[n.edges[ax]]; !ok {
				out = append(out, slotRef{node: n, axis: ax})
			}
		}
	}

	return out
}

// Rewire removes the shared edges between a and b and makes replacement
// inherit every remaining slot of a, then of b, in order.
//
// Implementation:
//   - Stage 1: shared must be exactly the set of edges joining a and b.
//   - Stage 2: replacement's rank and slot dimensions must match the inherited slots.
//   - Stage 3: re-point each inherited edge's endpoint at replacement; detach shared edges.
//   - Stage 4: clear a and b.
//
// Replacement's own (dangling) edges are discarded.
//
// Errors: ErrNilNode, ErrSameNode, ErrNoSharedEdges, ErrRankMismatch, ErrDimensionMismatch.
// Complexity: O(rank(a) + rank(b)).
func Rewire(shared []*Edge, a, b, replacement *Node) error {
	if a == nil || b == nil || replacement == nil {
		return ErrNilNode
	}
	if a == b {
		return errors.Wrapf(ErrSameNode, "rewire %s", a)
	}
	set := make(map[*Edge]struct{}, len(shared))
	var e *Edge
	for _, e = range shared {
		if !e.joins(a, b) {
			return errors.Wrapf(ErrNoSharedEdges, "%s does not join %s and %s", e, a, b)
		}
		set[e] = struct{}{}
	}
	if len(set) == 0 || len(set) != len(SharedEdges(a, b)) {
		return errors.Wrapf(ErrNoSharedEdges, "need all %d edges between %s and %s, got %d",
			len(SharedEdges(a, b)), a, b, len(set))
	}

	inherited := unsharedSlots(set, a, b)
	if len(inherited) != replacement.Rank() {
		return errors.Wrapf(ErrRankMismatch, "%s has rank %d, %d slots to inherit", replacement, replacement.Rank(), len(inherited))
	}
	var (
		i   int
		ref slotRef
	)
	for i, ref = range inherited {
		if d := ref.node.edges[ref.axis].dim; d != replacement.edges[i].dim {
			return errors.Wrapf(ErrDimensionMismatch, "slot %d of %s has dimension %d, inherited %d",
				i, replacement, replacement.edges[i].dim, d)
		}
	}

	for i, ref = range inherited {
		e = ref.node.edges[ref.axis]
		e.rebind(ref, slotRef{node: replacement, axis: i})
		replacement.edges[i] = e
	}
	for e = range set {
		e.node1, e.node2 = nil, nil
	}
	a.edges, b.edges = nil, nil

	return nil
}

// ContractBetween contracts a and b over all of their shared edges and
// returns the merged node. Multi-edges are contracted in a single call.
//
// Steps:
//  1. Collect SharedEdges(a, b) and the axis pairing on each side.
//  2. tensor.TensorDot over the paired axes (result: a's free axes, then b's).
//  3. Wrap the result in a new Node and Rewire.
//
// Errors: ErrNilNode, ErrSameNode, ErrNoSharedEdges, plus tensor backend errors.
func ContractBetween(a, b *Node, opts ...NodeOption) (*Node, error) {
	if a == nil || b == nil {
		return nil, ErrNilNode
	}
	if a == b {
		return nil, errors.Wrapf(ErrSameNode, "contract %s", a)
	}
	shared := SharedEdges(a, b)
	if len(shared) == 0 {
		return nil, errors.Wrapf(ErrNoSharedEdges, "contract %s with %s", a, b)
	}
	axesA := make([]int, len(shared))
	axesB := make([]int, len(shared))
	var (
		i int
		e *Edge
	)
	for i, e = range shared {
		if e.node1 == a {
			axesA[i], axesB[i] = e.axis1, e.axis2
		} else {
			axesA[i], axesB[i] = e.axis2, e.axis1
		}
	}

	t, err := tensor.TensorDot(a.tensor, b.tensor, axesA, axesB)
	if err != nil {
		return nil, errors.WithMessagef(err, "contract %s with %s", a, b)
	}
	merged, err := NewNode(t, opts...)
	if err != nil {
		return nil, err
	}
	if err = Rewire(shared, a, b, merged); err != nil {
		return nil, err
	}

	return merged, nil
}
