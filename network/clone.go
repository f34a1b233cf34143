// File: clone.go
// Role: Deep copy of a set of nodes for non-destructive experimentation.
// Determinism:
//   - New IDs are drawn in input order, slot by slot.
// AI-HINT (file):
//   - Edges internal to the set are reproduced between the copies.
//   - Edges leaving the set become dangling on the copy; the originals are untouched.

package network

// Copy returns independent copies of nodes together with the mapping from
// each original edge to its copy.
//
// Determinism & Identity:
//   - Every copy gets a fresh ID and a cloned tensor; names are carried over.
//   - Duplicate entries in nodes are copied once.
//
// Complexity: O(Σ size(n) + Σ rank(n)).
func Copy(nodes []*Node) (map[*Node]*Node, map[*Edge]*Edge) {
	nodeMap := make(map[*Node]*Node, len(nodes))
	order := make([]*Node, 0, len(nodes))
	var n *Node
	for _, n = range nodes {
		if _, ok := nodeMap[n]; ok || n == nil {
			continue
		}
		nodeMap[n] = &Node{
			id:     nextNodeID.Add(1),
			Name:   n.Name,
			tensor: n.tensor.Clone(),
			edges:  make([]*Edge, len(n.edges)),
		}
		order = append(order, n)
	}

	edgeMap := make(map[*Edge]*Edge)
	var (
		ax       int
		e, ne    *Edge
		c1, c2   *Node
		in1, in2 bool
	)
	for _, n = range order {
		for ax, e = range n.edges {
			if ne = edgeMap[e]; ne != nil { // internal edge already built from the other side
				nodeMap[n].edges[ax] = ne
				continue
			}
			c1, in1 = nodeMap[e.node1]
			c2, in2 = nodeMap[e.node2]
			if e.IsDangling() || !in1 || !in2 {
				ne = newDangling(nodeMap[n], ax, e.dim)
			} else {
				ne = &Edge{id: nextEdgeID.Add(1), dim: e.dim, node1: c1, axis1: e.axis1, node2: c2, axis2: e.axis2}
			}
			ne.name = e.name
			edgeMap[e] = ne
			nodeMap[n].edges[ax] = ne
		}
	}

	return nodeMap, edgeMap
}

// CopyNode is the single-node form of Copy: every edge of the copy dangles.
func CopyNode(n *Node) *Node {
	nodeMap, _ := Copy([]*Node{n})

	return nodeMap[n]
}
