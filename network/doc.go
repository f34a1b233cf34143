// Package network is the graph layer of tnprep: tensors as nodes, tensor
// axes as ordered slots, and edges joining slots of two nodes (or dangling
// from one).
//
// The network N = (V, E) supports:
//
//   - Multi-edges: a node pair may share any number of edges.
//   - Dangling edges: open legs, exactly one endpoint.
//   - O(1) identity: every Node and Edge carries a process-unique ID drawn
//     from an atomic counter; equal tensor values never make nodes equal.
//
// Core Functions:
//
//	// Construction
//	NewNode(t, opts...) (*Node, error)                 // O(rank)
//	Connect(a, i, b, j) (*Edge, error)                 // O(1)
//	Disconnect(e) (*Edge, *Edge, error)                // O(1)
//
//	// Queries
//	SharedEdges(a, b) []*Edge                          // O(rank(a)), a's slot order
//	Neighbors(n) []*Node                               // distinct, slot order
//	Summarize(nodes) Stats                             // O(Σ rank)
//	DanglingDimensions(nodes) []int                    // sorted
//	Components(nodes) [][]*Node                        // BFS over shared edges
//
//	// Surgery
//	Rewire(shared, a, b, replacement) error            // graph only, no numerics
//	ContractBetween(a, b, opts...) (*Node, error)      // TensorDot + Rewire
//	SplitNode(n, left, right, opts...) (l, r, s, err)  // truncated SVD
//	Copy(nodes) (nodeMap, edgeMap)                     // deep copy
//
// Nodes are not synchronized. A network is owned by one goroutine at a
// time; callers serialize access when sharing one.
package network
