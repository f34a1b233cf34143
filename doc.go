// Package tnprep is a preprocessing toolkit for tensor networks: it shrinks
// and reshapes a network before the expensive contraction starts.
//
// 🚀 What is tnprep?
//
//	A small, deterministic library that brings together:
//		• Dense tensors: real N-d arrays, transpose, tensordot, truncated SVD
//		• Networks: nodes with ordered edge slots, connect, contract, split, copy
//		• Rank simplification: greedy merges that never grow the network
//		• Gate splitting: factor a two-qubit gate into two 3-leg nodes
//		• Pseudo-contraction: shape-only merges for cost estimation
//
// ✨ Why choose tnprep?
//
//   - Deterministic – same input list, same merges, same order
//   - Identity-based – nodes are tracked by ID, never by tensor value
//   - Observable – leveled klog output and an OnMerge hook on every merge
//
// Under the hood, everything is organized under three subpackages:
//
//	tensor/   dense row-major tensors backed by gonum for Mul and SVD
//	network/  Node, Edge, Connect, ContractBetween, Rewire, SplitNode, Stats
//	simplify/ InferNewShape, PseudoContractBetween, FullRankSimplify, SplitTwoQubitGate
//
// Quick ASCII example:
//
//	a ── c ── b        FullRankSimplify        (a·c·b)
//	     │          ─────────────────────▶        ││
//	     ┴                                       dangling legs kept
//
// See examples/ for a small circuit run through both passes.
//
//	go get github.com/katalvlaran/tnprep
package tnprep
