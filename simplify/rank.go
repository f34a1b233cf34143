// SPDX-License-Identifier: MIT
// File: rank.go
// Role: Greedy rank-non-increasing simplification of a node list.
// Determinism:
//   - Nodes are scanned by position and edges in slot order; the same input
//     list always yields the same merges in the same order.
// Invariants:
//   - A merge happens only if the merged size is <= the size of at least one operand.
//   - Each merge shortens the list by exactly one; at most len(nodes)-1 merges occur.

package simplify

import (
	"slices"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/tnprep/network"
)

// indexOf locates n in nodes by identity (node ID), never by tensor value.
func indexOf(nodes []*network.Node, n *network.Node) int {
	id := n.ID()

	return slices.IndexFunc(nodes, func(m *network.Node) bool { return m.ID() == id })
}

// simplifier carries the mutable state of one pass.
type simplifier struct {
	opts    Options
	pass    int
	nodes   []*network.Node
	changed bool
}

// RankSimplify runs a single simplification pass over nodes and reports
// whether any merge happened.
//
// For each position i still inside the (shrinking) list, the shared edges of
// nodes[i] are examined in slot order. The first edge whose endpoints can be
// merged without growing past both operands is contracted: the lower of the
// two list positions receives the result, the higher one is removed, and the
// scan moves on to position i+1.
//
// Edges whose other endpoint is not in the list are skipped.
// The input slice is not modified; merged nodes are consumed.
//
// Errors: ErrOptionViolation, or any Contractor / OnMerge error (wrapped).
func RankSimplify(nodes []*network.Node, opts ...Option) ([]*network.Node, bool, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, false, err
	}
	s := &simplifier{opts: o, pass: 1, nodes: slices.Clone(nodes)}
	if err = s.run(); err != nil {
		return nil, false, err
	}

	return s.nodes, s.changed, nil
}

// FullRankSimplify repeats RankSimplify until a pass makes no change and
// returns the resulting list. The external legs of the network are preserved;
// the result is at most as long as the input.
//
// Termination: every merge removes one list entry, so at most len(nodes)-1
// merges and len(nodes) passes occur.
func FullRankSimplify(nodes []*network.Node, opts ...Option) ([]*network.Node, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}
	s := &simplifier{opts: o, nodes: slices.Clone(nodes)}

	var before network.Stats
	if klog.V(1).Enabled() {
		before = network.Summarize(s.nodes)
	}
	for {
		s.pass++
		s.changed = false
		if err = s.run(); err != nil {
			return nil, err
		}
		klog.V(1).Infof("rank simplify: pass %d left %d nodes (changed=%t)", s.pass, len(s.nodes), s.changed)
		if !s.changed {
			break
		}
	}
	if klog.V(1).Enabled() {
		klog.Infof("rank simplify: %s -> %s", before, network.Summarize(s.nodes))
	}

	return s.nodes, nil
}

// run performs one pass over s.nodes.
// The bound is re-read on every iteration because merges shift later positions down.
func (s *simplifier) run() error {
	var i int
	for i = 0; i < len(s.nodes); i++ {
		if err := s.visit(i); err != nil {
			return err
		}
	}

	return nil
}

// visit examines the edges of the node at position i and performs at most one merge.
func (s *simplifier) visit(i int) error {
	cur := s.nodes[i]
	var (
		e                     *network.Edge
		n1, n2                *network.Node
		newSize, aSize, bSize int
		j1, j2                int
	)
	for _, e = range cur.Edges() {
		if e.IsDangling() {
			continue
		}
		n1, n2 = e.Node1(), e.Node2()
		newSize, aSize, bSize = InferNewSize(n1, n2)
		if newSize > aSize && newSize > bSize {
			continue
		}
		j1, j2 = indexOf(s.nodes, n1), indexOf(s.nodes, n2)
		if j1 < 0 || j2 < 0 {
			klog.V(3).Infof("rank simplify: skipping %s, endpoint outside the node list", e)
			continue
		}

		merged, err := s.opts.Contractor(n1, n2)
		if err != nil {
			return errors.WithMessagef(err, "rank simplify: merging %s and %s", n1, n2)
		}
		lo, hi := min(j1, j2), max(j1, j2)
		s.nodes[lo] = merged
		s.nodes = slices.Delete(s.nodes, hi, hi+1)
		s.changed = true

		klog.V(2).Infof("rank simplify: merged %s (%s) and %s (%s) into %s (%s)",
			n1, humanize.Comma(int64(aSize)), n2, humanize.Comma(int64(bSize)),
			merged, humanize.Comma(int64(newSize)))
		m := Merge{
			Pass:      s.pass,
			Position:  lo,
			Left:      n1,
			Right:     n2,
			Result:    merged,
			NewSize:   newSize,
			LeftSize:  aSize,
			RightSize: bSize,
		}
		if err = s.opts.OnMerge(m); err != nil {
			return errors.WithMessagef(err, "rank simplify: merge hook at pass %d", s.pass)
		}

		return nil // next scan position
	}

	return nil
}
