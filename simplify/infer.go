// SPDX-License-Identifier: MIT
// File: infer.go
// Role: Shape/size inference for a pairwise contraction. Pure; never mutates.

package simplify

import (
	"github.com/katalvlaran/tnprep/network"
	"github.com/katalvlaran/tnprep/tensor"
)

// InferNewShape returns the shape a contraction of a and b would produce,
// followed by the current shapes of a and b.
//
// newShape lists a's unshared slot dimensions in slot order, then b's.
//
//	a: (2,3,5), b: (3,5,7), a[1]–b[0], a[2]–b[1]  ⇒  (2,7), (2,3,5), (3,5,7)
//
// Complexity: O(rank(a) + rank(b)).
func InferNewShape(a, b *network.Node) (newShape, aShape, bShape []int) {
	shared := make(map[*network.Edge]struct{})
	var e *network.Edge
	for _, e = range network.SharedEdges(a, b) {
		shared[e] = struct{}{}
	}

	newShape = make([]int, 0, a.Rank()+b.Rank()-2*len(shared))
	var (
		n  *network.Node
		ok bool
	)
	for _, n = range []*network.Node{a, b} {
		for _, e = range n.Edges() {
			if _, ok = shared[e]; !ok {
				newShape = append(newShape, e.Dimension())
			}
		}
	}

	return newShape, a.Shape(), b.Shape()
}

// InferNewSize is InferNewShape reduced to element counts: the size of the
// would-be merged node and the current sizes of a and b (shared slots included).
func InferNewSize(a, b *network.Node) (newSize, aSize, bSize int) {
	newShape, aShape, bShape := InferNewShape(a, b)

	return tensor.Volume(newShape), tensor.Volume(aShape), tensor.Volume(bShape)
}
