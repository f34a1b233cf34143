// SPDX-License-Identifier: MIT

// Package simplify prepares a tensor network for contraction-path search.
//
// 🚀 What is in here?
//
//   - InferNewSize / InferNewShape: the size and shape a pairwise contraction
//     would produce, without touching the graph.
//   - PseudoContractBetween: a shape-only contraction (zero tensor, exact
//     connectivity) for cost estimation.
//   - RankSimplify / FullRankSimplify: greedy merging of adjacent nodes
//     whenever the merged tensor is no larger than one of its operands,
//     repeated to a fixed point.
//   - SplitTwoQubitGate: factor a 4-leg gate into two 3-leg nodes over the
//     pairing with the smaller bond, or report that no split is worth it.
//   - ApplyGateSplit: put the two factors in place of the gate in its network.
//
// The graph and numeric work is delegated to package network (and through it
// to package tensor); this package only decides what to merge or split.
//
// Logging uses klog: per-pass summaries at V(1), individual merges and split
// decisions at V(2), skipped edges at V(3).
//
// Quick ASCII example (a and b absorbed into c, sizes never grow):
//
//	a──┐            ┌──
//	   c──  ==>  abc──
//	b──┘            └──
package simplify
