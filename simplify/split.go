// SPDX-License-Identifier: MIT
// File: split.go
// Role: Two-qubit gate splitting with bond-dimension-based pairing selection.
// Flow (linear, no retries):
//   unswapped factorization → [return if forced]
//   → swapped factorization → [return if forced]
//   → compare bonds → pick smaller (ties: unswapped) or report no split.

package simplify

import (
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/tnprep/network"
)

// Slot bipartitions of a 4-leg gate.
var (
	unswappedLeft, unswappedRight = []int{0, 2}, []int{1, 3}
	swappedLeft, swappedRight     = []int{0, 3}, []int{1, 2}
)

// GateSplit is a two-qubit gate factored into two 3-leg nodes.
//
// Unswapped: Left = (slot0, slot2, bond), Right = (bond, slot1, slot3).
// Swapped:   Left = (slot0, slot3, bond), Right = (bond, slot1, slot2).
// Callers reconnect the external legs according to Swapped.
type GateSplit struct {
	Left, Right *network.Node
	Swapped     bool
	Bond        int       // dimension of the new shared edge
	Discarded   []float64 // truncated singular values, descending
}

// SplitTwoQubitGate factors the 4-slot node n into two 3-slot nodes.
//
// Implementation:
//   - Stage 1: validate rank and options; count truncation without a fixed
//     pairing selects CountTruncationPairing.
//   - Stage 2: factor a private copy over the unswapped pairing; return it if forced.
//   - Stage 3: factor another private copy over the swapped pairing; return it if forced.
//   - Stage 4: if both bonds are >= NoSplitThreshold return (nil, nil);
//     otherwise return the smaller bond, preferring unswapped on ties.
//
// The caller's node and its edges are never modified. The factors' slots
// are all dangling except the bond; external legs are not carried over.
//
// A nil *GateSplit with a nil error means "no beneficial split": leave n as is.
//
// Errors: network.ErrNilNode, ErrNotFourLegged, ErrOptionViolation, or a
// factorization failure from the backend.
func SplitTwoQubitGate(n *network.Node, opts ...SplitOption) (*GateSplit, error) {
	if n == nil {
		return nil, network.ErrNilNode
	}
	if n.Rank() != 4 {
		return nil, errors.Wrapf(ErrNotFourLegged, "%s has rank %d", n, n.Rank())
	}
	o := DefaultSplitOptions()
	var opt SplitOption
	for _, opt = range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	choice := o.FixedChoice
	if o.MaxSingularValues > 0 && choice == PairingAuto {
		choice = CountTruncationPairing
	}

	unswapped, err := factorGate(n, PairingUnswapped, o)
	if err != nil {
		return nil, err
	}
	if choice == PairingUnswapped {
		return unswapped, nil
	}
	swapped, err := factorGate(n, PairingSwapped, o)
	if err != nil {
		return nil, err
	}
	if choice == PairingSwapped {
		return swapped, nil
	}

	klog.V(2).Infof("split %s: unswapped bond %d, swapped bond %d (threshold %d)",
		n, unswapped.Bond, swapped.Bond, o.NoSplitThreshold)
	if unswapped.Bond >= o.NoSplitThreshold && swapped.Bond >= o.NoSplitThreshold {
		return nil, nil
	}
	if unswapped.Bond <= swapped.Bond {
		return unswapped, nil
	}

	return swapped, nil
}

// factorSlot is one slot of one factor node.
type factorSlot struct {
	node *network.Node
	axis int
}

// gateSlots maps each gate slot to the factor slot that carries it.
func (s *GateSplit) gateSlots() [4]factorSlot {
	if s.Swapped {
		return [4]factorSlot{{s.Left, 0}, {s.Right, 1}, {s.Right, 2}, {s.Left, 1}}
	}

	return [4]factorSlot{{s.Left, 0}, {s.Right, 1}, {s.Left, 1}, {s.Right, 2}}
}

// ApplyGateSplit puts the factors of s in place of gate n: every shared edge
// of n is disconnected and its far end reconnected to the factor slot that
// carries the same gate slot. Dangling slots of n stay dangling on the factors.
//
// n is consumed (left fully dangling) and must not be used afterwards;
// s must come from SplitTwoQubitGate(n, ...) and must not have been applied.
//
// Errors: network.ErrNilNode, ErrNotFourLegged, ErrSplitMismatch, or a
// network.Connect failure.
func ApplyGateSplit(n *network.Node, s *GateSplit) error {
	if n == nil || s == nil || s.Left == nil || s.Right == nil {
		return network.ErrNilNode
	}
	if n.Rank() != 4 {
		return errors.Wrapf(ErrNotFourLegged, "%s has rank %d", n, n.Rank())
	}
	if s.Left.Rank() != 3 || s.Right.Rank() != 3 {
		return errors.Wrapf(ErrSplitMismatch, "factors of rank %d and %d", s.Left.Rank(), s.Right.Rank())
	}
	slots := s.gateSlots()
	edges := n.Edges()
	var (
		ax int
		e  *network.Edge
	)
	for ax, e = range edges {
		if e.Dimension() != slots[ax].node.Shape()[slots[ax].axis] {
			return errors.Wrapf(ErrSplitMismatch, "slot %d of %s has dimension %d, factor slot %d",
				ax, n, e.Dimension(), slots[ax].node.Shape()[slots[ax].axis])
		}
	}

	var (
		far     *network.Node
		farAxis int
		err     error
	)
	for ax, e = range edges {
		if e.IsDangling() {
			continue
		}
		far, farAxis = e.Node2(), e.Axis2()
		if far == n {
			far, farAxis = e.Node1(), e.Axis1()
		}
		if _, _, err = network.Disconnect(e); err != nil {
			return errors.WithMessagef(err, "apply split of %s", n)
		}
		if _, err = network.Connect(far, farAxis, slots[ax].node, slots[ax].axis); err != nil {
			return errors.WithMessagef(err, "apply split of %s: slot %d", n, ax)
		}
	}
	klog.V(2).Infof("applied split of %s (swapped=%t, bond %d)", n, s.Swapped, s.Bond)

	return nil
}

// factorGate splits a fresh copy of n over the bipartition of p.
func factorGate(n *network.Node, p Pairing, o SplitOptions) (*GateSplit, error) {
	left, right := unswappedLeft, unswappedRight
	if p == PairingSwapped {
		left, right = swappedLeft, swappedRight
	}
	work := network.CopyNode(n)
	l, r, discarded, err := network.SplitNode(work, left, right, o.networkOptions()...)
	if err != nil {
		return nil, errors.WithMessagef(err, "split %s (%s)", n, p)
	}

	return &GateSplit{
		Left:      l,
		Right:     r,
		Swapped:   p == PairingSwapped,
		Bond:      r.Shape()[0],
		Discarded: discarded,
	}, nil
}
