// SPDX-License-Identifier: MIT
// File: pseudo.go
// Role: Shape-only contraction for cost estimation.

package simplify

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/tnprep/network"
	"github.com/katalvlaran/tnprep/tensor"
)

// mergedName labels the result of merging a and b when both carry names.
func mergedName(a, b *network.Node) string {
	if a.Name == "" || b.Name == "" {
		return ""
	}

	return a.Name + "*" + b.Name
}

// PseudoContractBetween stands in for a contraction of a and b: the result
// has the exact shape and connectivity of the real contraction but is
// backed by a zero tensor, so no arithmetic is performed.
//
// Steps:
//  1. Infer the merged shape (a's unshared slots, then b's).
//  2. Allocate a zero tensor of that shape and wrap it in a node.
//  3. network.Rewire: drop the shared edges, move unshared slots onto the new node.
//
// a and b are consumed exactly as by network.ContractBetween.
func PseudoContractBetween(a, b *network.Node) (*network.Node, error) {
	if a == nil || b == nil {
		return nil, network.ErrNilNode
	}
	newShape, _, _ := InferNewShape(a, b)
	t, err := tensor.Zeros(newShape...)
	if err != nil {
		return nil, errors.WithMessagef(err, "pseudo contract %s with %s", a, b)
	}
	n, err := network.NewNode(t, network.WithName(mergedName(a, b)))
	if err != nil {
		return nil, err
	}
	if err = network.Rewire(network.SharedEdges(a, b), a, b, n); err != nil {
		return nil, errors.WithMessagef(err, "pseudo contract %s with %s", a, b)
	}

	return n, nil
}
