package simplify_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tnprep/network"
	"github.com/katalvlaran/tnprep/tensor"
)

// onesNode builds a node over an all-ones tensor of the given shape.
func onesNode(t *testing.T, name string, shape ...int) *network.Node {
	t.Helper()
	d, err := tensor.Zeros(shape...)
	require.NoError(t, err)
	var i int
	for i = range d.Data() {
		d.Data()[i] = 1
	}
	n, err := network.NewNode(d, network.WithName(name))
	require.NoError(t, err)

	return n
}

// connect joins a[i] and b[j], failing the test on error.
func connect(t *testing.T, a *network.Node, i int, b *network.Node, j int) *network.Edge {
	t.Helper()
	e, err := network.Connect(a, i, b, j)
	require.NoError(t, err)

	return e
}

// fiveNodeNetwork is a, b → c → d ← e; it collapses to one node.
func fiveNodeNetwork(t *testing.T) []*network.Node {
	a := onesNode(t, "a", 2, 2)
	b := onesNode(t, "b", 2, 2)
	c := onesNode(t, "c", 2, 2, 2, 2)
	d := onesNode(t, "d", 2, 2, 2, 2, 2, 2)
	e := onesNode(t, "e", 2, 2)
	connect(t, a, 1, c, 0)
	connect(t, b, 1, c, 1)
	connect(t, c, 2, d, 0)
	connect(t, c, 3, d, 1)
	connect(t, d, 4, e, 0)

	return []*network.Node{a, b, c, d, e}
}

// threeNodeNetwork is f → g → h; only f can be absorbed.
func threeNodeNetwork(t *testing.T) []*network.Node {
	f := onesNode(t, "f", 2, 2)
	g := onesNode(t, "g", 2, 2, 2, 2)
	h := onesNode(t, "h", 2, 2, 2, 2)
	connect(t, f, 1, g, 0)
	connect(t, g, 2, h, 1)

	return []*network.Node{f, g, h}
}
