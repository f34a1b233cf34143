// File: edges.go
// Role: Edge lifecycle and queries: Connect, Disconnect, SharedEdges, Neighbors.
// Determinism:
//   - SharedEdges() and Neighbors() follow the first node's slot order.
// AI-HINT (file):
//   - Connect requires both slots to be dangling and of equal dimension.
//   - A node pair may share several edges (multi-edge); SharedEdges returns them all.

package network

import "github.com/pkg/errors"

// Connect binds slot axisA of a to slot axisB of b with a new shared edge,
// replacing the two dangling edges that occupied those slots.
//
// Steps:
//  1. Validate nodes (non-nil, distinct) and slot indices.
//  2. Both slots must currently be dangling (ErrSlotBound otherwise).
//  3. Both slot dimensions must agree (ErrDimensionMismatch otherwise).
//  4. Install one Edge at both slots with a as Node1.
//
// Complexity: O(1).
func Connect(a *Node, axisA int, b *Node, axisB int) (*Edge, error) {
	if a == nil || b == nil {
		return nil, ErrNilNode
	}
	if a == b {
		return nil, errors.Wrapf(ErrSameNode, "connect %s[%d] to itself", a, axisA)
	}
	ea, err := a.Edge(axisA)
	if err != nil {
		return nil, err
	}
	eb, err := b.Edge(axisB)
	if err != nil {
		return nil, err
	}
	if !ea.IsDangling() {
		return nil, errors.Wrapf(ErrSlotBound, "%s", ea)
	}
	if !eb.IsDangling() {
		return nil, errors.Wrapf(ErrSlotBound, "%s", eb)
	}
	if ea.dim != eb.dim {
		return nil, errors.Wrapf(ErrDimensionMismatch, "%s has dimension %d, %s has %d", ea, ea.dim, eb, eb.dim)
	}

	e := &Edge{
		id:    nextEdgeID.Add(1),
		dim:   ea.dim,
		node1: a,
		axis1: axisA,
		node2: b,
		axis2: axisB,
	}
	a.edges[axisA] = e
	b.edges[axisB] = e

	return e, nil
}

// Disconnect breaks a shared edge into two fresh dangling edges, one per
// former endpoint, and returns them in (Node1, Node2) order.
func Disconnect(e *Edge) (*Edge, *Edge, error) {
	if e.IsDangling() {
		return nil, nil, errors.Errorf("network: %s is already dangling", e)
	}
	d1 := newDangling(e.node1, e.axis1, e.dim)
	d2 := newDangling(e.node2, e.axis2, e.dim)
	e.node1.edges[e.axis1] = d1
	e.node2.edges[e.axis2] = d2
	e.node1, e.node2 = nil, nil // detached edge no longer names any node

	return d1, d2, nil
}

// joins reports whether e is a shared edge between a and b (either orientation).
func (e *Edge) joins(a, b *Node) bool {
	if e.node2 == nil {
		return false
	}

	return (e.node1 == a && e.node2 == b) || (e.node1 == b && e.node2 == a)
}

// Other returns the endpoint of e that is not n (nil for a dangling edge).
func (e *Edge) Other(n *Node) *Node {
	if e.node1 == n {
		return e.node2
	}

	return e.node1
}

// SharedEdges returns every edge joining a and b, in a's slot order.
// A node is never considered to share edges with itself.
// Complexity: O(rank(a)).
func SharedEdges(a, b *Node) []*Edge {
	if a == nil || b == nil || a == b {
		return nil
	}
	var shared []*Edge
	var e *Edge
	for _, e = range a.edges {
		if e.joins(a, b) {
			shared = append(shared, e)
		}
	}

	return shared
}

// Neighbors returns the distinct nodes bound to n by shared edges, in slot order.
// Complexity: O(rank(n)²) worst case; ranks are small in practice.
func Neighbors(n *Node) []*Node {
	var out []*Node
	var (
		e     *Edge
		other *Node
		seen  bool
		m     *Node
	)
	for _, e = range n.edges {
		if e.IsDangling() {
			continue
		}
		other = e.Other(n)
		if other == n {
			continue
		}
		seen = false
		for _, m = range out {
			if m == other {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, other)
		}
	}

	return out
}
