// File: stats.go
// Role: Read-only summaries of a node list: Summarize, DanglingDimensions, Components.
// Determinism:
//   - DanglingDimensions is sorted ascending.
//   - Components lists components in order of their first node in the input,
//     and nodes within a component in BFS order.

package network

import (
	"fmt"
	"sort"

	"github.com/dustin/go-humanize"
)

// Stats is a snapshot of a node list's size and connectivity.
type Stats struct {
	NodeCount     int // number of distinct nodes
	SharedEdges   int // edges with both endpoints in the list
	DanglingEdges int // open legs
	ExternalEdges int // shared edges whose other endpoint is outside the list
	TotalSize     int // Σ node sizes (elements)
	MaxNodeSize   int // largest single node size (elements)
}

// String renders a one-line human readable summary.
func (s Stats) String() string {
	return fmt.Sprintf("%d nodes, %d shared / %d dangling / %d external edges, %s elements (max %s)",
		s.NodeCount, s.SharedEdges, s.DanglingEdges, s.ExternalEdges,
		humanize.Comma(int64(s.TotalSize)), humanize.Comma(int64(s.MaxNodeSize)))
}

// Summarize computes Stats for nodes in one pass over their slots.
// Complexity: O(Σ rank(n)).
func Summarize(nodes []*Node) Stats {
	var s Stats
	in := make(map[*Node]struct{}, len(nodes))
	var n *Node
	for _, n = range nodes {
		in[n] = struct{}{}
	}
	s.NodeCount = len(in)

	seen := make(map[*Edge]struct{})
	var (
		e    *Edge
		size int
		ok   bool
	)
	for n = range in {
		size = n.Size()
		s.TotalSize += size
		if size > s.MaxNodeSize {
			s.MaxNodeSize = size
		}
		for _, e = range n.edges {
			if e.IsDangling() {
				s.DanglingEdges++
				continue
			}
			if _, ok = in[e.Other(n)]; !ok {
				s.ExternalEdges++
				continue
			}
			if _, ok = seen[e]; !ok { // count internal edges once
				seen[e] = struct{}{}
				s.SharedEdges++
			}
		}
	}

	return s
}

// DanglingDimensions returns the dimensions of every open leg of nodes, sorted.
// Two networks with equal results expose the same external legs.
func DanglingDimensions(nodes []*Node) []int {
	var dims []int
	var (
		n *Node
		e *Edge
	)
	for _, n = range nodes {
		for _, e = range n.edges {
			if e.IsDangling() {
				dims = append(dims, e.dim)
			}
		}
	}
	sort.Ints(dims)

	return dims
}

// Components partitions nodes into connected components by breadth-first
// search over shared edges. Neighbors outside the list are not followed.
// Complexity: O(V + E).
func Components(nodes []*Node) [][]*Node {
	in := make(map[*Node]struct{}, len(nodes))
	var n *Node
	for _, n = range nodes {
		in[n] = struct{}{}
	}

	visited := make(map[*Node]bool, len(nodes))
	var (
		out   [][]*Node
		queue []*Node
		comp  []*Node
		cur   *Node
		nbr   *Node
		ok    bool
	)
	for _, n = range nodes {
		if visited[n] {
			continue
		}
		// Seed queue with the first unvisited node
		visited[n] = true
		queue = append(queue[:0], n)
		comp = nil
		for len(queue) > 0 {
			cur = queue[0]
			queue = queue[1:]
			comp = append(comp, cur)
			for _, nbr = range Neighbors(cur) {
				if _, ok = in[nbr]; !ok || visited[nbr] {
					continue
				}
				visited[nbr] = true
				queue = append(queue, nbr)
			}
		}
		out = append(out, comp)
	}

	return out
}
