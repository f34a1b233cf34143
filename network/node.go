// File: node.go
// Role: Node and Edge construction and read-only accessors.
// Determinism:
//   - Edges() returns slots in axis order.
// Concurrency:
//   - Nodes carry no locks. Only the ID counters are atomic, so nodes may be
//     created concurrently; a single network must be mutated by one goroutine.

package network

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/katalvlaran/tnprep/tensor"
)

// NewNode wraps t in a Node whose every slot is a fresh dangling edge.
//
// Steps:
//  1. Reject a nil tensor.
//  2. Draw a new node ID from the atomic counter.
//  3. Allocate one dangling edge per axis with the axis extent as dimension.
//  4. Apply options.
//
// Complexity: O(rank).
func NewNode(t *tensor.Dense, opts ...NodeOption) (*Node, error) {
	if t == nil {
		return nil, tensor.ErrNilTensor
	}
	n := &Node{id: nextNodeID.Add(1), tensor: t}
	shape := t.Shape()
	n.edges = make([]*Edge, len(shape))
	var ax int
	for ax = range shape {
		n.edges[ax] = newDangling(n, ax, shape[ax])
	}
	var opt NodeOption
	for _, opt = range opts {
		opt(n)
	}

	return n, nil
}

// ID returns the node's process-unique identity.
func (n *Node) ID() uint64 { return n.id }

// Tensor returns the backing tensor.
func (n *Node) Tensor() *tensor.Dense { return n.tensor }

// Edges returns a copy of the slot list in axis order.
func (n *Node) Edges() []*Edge {
	return append([]*Edge(nil), n.edges...)
}

// Edge returns the edge bound at slot axis.
func (n *Node) Edge(axis int) (*Edge, error) {
	if axis < 0 || axis >= len(n.edges) {
		return nil, errors.Wrapf(ErrAxisOutOfRange, "slot %d of %s (rank %d)", axis, n, len(n.edges))
	}

	return n.edges[axis], nil
}

// Rank returns the number of slots.
func (n *Node) Rank() int { return len(n.edges) }

// Shape returns the slot dimensions in axis order.
func (n *Node) Shape() []int {
	shape := make([]int, len(n.edges))
	var i int
	for i = range n.edges {
		shape[i] = n.edges[i].dim
	}

	return shape
}

// Size returns the product of all slot dimensions (the tensor's element count).
func (n *Node) Size() int {
	return tensor.Volume(n.Shape())
}

// String returns the name when set, otherwise "node#<id>".
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	if n.Name != "" {
		return n.Name
	}

	return fmt.Sprintf("node#%d", n.id)
}

// ID returns the edge's process-unique identity.
func (e *Edge) ID() uint64 { return e.id }

// Name returns the optional label given to the edge (bond edges created by SplitNode).
func (e *Edge) Name() string { return e.name }

// Dimension returns the extent carried by the edge.
func (e *Edge) Dimension() int { return e.dim }

// IsDangling reports whether the edge has a single endpoint.
func (e *Edge) IsDangling() bool { return e.node2 == nil }

// Node1 returns the first endpoint node.
func (e *Edge) Node1() *Node { return e.node1 }

// Axis1 returns the slot index on Node1.
func (e *Edge) Axis1() int { return e.axis1 }

// Node2 returns the second endpoint node, or nil for a dangling edge.
func (e *Edge) Node2() *Node { return e.node2 }

// Axis2 returns the slot index on Node2 (meaningless for a dangling edge).
func (e *Edge) Axis2() int { return e.axis2 }

// String renders "node[axis]" for a dangling edge and "a[i]-b[j]" otherwise.
func (e *Edge) String() string {
	if e.IsDangling() {
		return fmt.Sprintf("%s[%d]", e.node1, e.axis1)
	}

	return fmt.Sprintf("%s[%d]-%s[%d]", e.node1, e.axis1, e.node2, e.axis2)
}
