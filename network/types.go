// Package network: Node and Edge types of a tensor network and
// the sentinel errors shared by every graph operation.
//
// Errors:
//
//	ErrNilNode           - node pointer is nil.
//	ErrAxisOutOfRange    - slot index outside the node's rank.
//	ErrSlotBound         - Connect on a slot that already carries a shared edge.
//	ErrDimensionMismatch - Connect between slots of different dimension.
//	ErrSameNode          - contraction or connection of a node with itself.
//	ErrNoSharedEdges     - contraction between nodes that share no edge.
//	ErrRankMismatch      - replacement node rank differs from the inherited slot count.
//	ErrOptionViolation   - an invalid Option value was supplied.
package network

import (
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/katalvlaran/tnprep/tensor"
)

// Sentinel errors for network operations.
var (
	// ErrNilNode indicates that a nil *Node was passed.
	ErrNilNode = errors.New("network: node is nil")

	// ErrAxisOutOfRange indicates a slot index outside [0, rank).
	ErrAxisOutOfRange = errors.New("network: axis out of range")

	// ErrSlotBound indicates that a slot is already bound to a shared edge.
	ErrSlotBound = errors.New("network: slot already connected")

	// ErrDimensionMismatch indicates two slots of different dimension were joined.
	ErrDimensionMismatch = errors.New("network: dimension mismatch")

	// ErrSameNode indicates that an operation needing two distinct nodes got one node twice.
	ErrSameNode = errors.New("network: both endpoints are the same node")

	// ErrNoSharedEdges indicates a contraction between disconnected nodes.
	ErrNoSharedEdges = errors.New("network: nodes share no edges")

	// ErrRankMismatch indicates a replacement node whose rank cannot host the inherited slots.
	ErrRankMismatch = errors.New("network: replacement rank mismatch")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("network: invalid option supplied")
)

// Process-wide identity counters. IDs start at 1; 0 never names a live object.
var (
	nextNodeID atomic.Uint64
	nextEdgeID atomic.Uint64
)

// Node is a tensor together with its ordered connection slots.
//
// Slot i of edges corresponds to axis i of the tensor. Identity is the ID,
// never the tensor value: two nodes may hold equal data and still be
// distinct graph vertices.
type Node struct {
	id uint64

	// Name is an optional human-readable label used in logs and String().
	Name string

	tensor *tensor.Dense
	edges  []*Edge
}

// Edge joins a slot of Node1 with a slot of Node2, or dangles from Node1 alone.
//
// A dangling edge is an open leg of the network. A shared edge is bound at
// both endpoints, and its dimension equals the tensor extent at both slots.
type Edge struct {
	id   uint64
	name string
	dim  int

	node1 *Node
	axis1 int
	node2 *Node // nil when dangling
	axis2 int
}

// NodeOption configures a Node at construction time.
type NodeOption func(*Node)

// WithName sets the node's label.
func WithName(name string) NodeOption {
	return func(n *Node) { n.Name = name }
}

// newDangling allocates a fresh open edge at (n, axis).
func newDangling(n *Node, axis, dim int) *Edge {
	return &Edge{id: nextEdgeID.Add(1), dim: dim, node1: n, axis1: axis}
}
