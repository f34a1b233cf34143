package network_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/tnprep/network"
	"github.com/katalvlaran/tnprep/tensor"
)

// newNode builds a node over a deterministic random tensor of the given shape.
func newNode(t *testing.T, rng *rand.Rand, name string, shape ...int) *network.Node {
	t.Helper()
	d, err := tensor.Random(rng, shape...)
	require.NoError(t, err)
	n, err := network.NewNode(d, network.WithName(name))
	require.NoError(t, err)

	return n
}

type NetworkSuite struct {
	suite.Suite
	rng *rand.Rand
}

func (s *NetworkSuite) SetupTest() {
	s.rng = rand.New(rand.NewSource(42))
}

func (s *NetworkSuite) TestNewNodeAllDangling() {
	require := require.New(s.T())
	n := newNode(s.T(), s.rng, "a", 2, 3, 4)

	require.Equal("a", n.String())
	require.Equal(3, n.Rank())
	require.Equal([]int{2, 3, 4}, n.Shape())
	require.Equal(24, n.Size())
	for i, e := range n.Edges() {
		require.True(e.IsDangling(), "fresh slot %d should dangle", i)
		require.Same(n, e.Node1())
		require.Equal(i, e.Axis1())
	}

	_, err := network.NewNode(nil)
	require.ErrorIs(err, tensor.ErrNilTensor)
}

func (s *NetworkSuite) TestIdentityNotValue() {
	require := require.New(s.T())
	d, err := tensor.Zeros(2)
	require.NoError(err)
	a, err := network.NewNode(d)
	require.NoError(err)
	b, err := network.NewNode(d.Clone())
	require.NoError(err)

	require.NotEqual(a.ID(), b.ID(), "equal tensors must still be distinct nodes")
}

func (s *NetworkSuite) TestConnectValidation() {
	require := require.New(s.T())
	a := newNode(s.T(), s.rng, "a", 2, 3)
	b := newNode(s.T(), s.rng, "b", 3, 2)

	e, err := network.Connect(a, 1, b, 0)
	require.NoError(err)
	require.False(e.IsDangling())
	require.Equal(3, e.Dimension())
	require.Same(b, e.Other(a))
	got, err := b.Edge(0)
	require.NoError(err)
	require.Same(e, got)

	_, err = network.Connect(a, 1, b, 0)
	require.ErrorIs(err, network.ErrSlotBound)
	_, err = network.Connect(a, 0, b, 0)
	require.ErrorIs(err, network.ErrSlotBound)
	_, err = network.Connect(a, 0, b, 1)
	require.NoError(err) // both extents are 2
	c := newNode(s.T(), s.rng, "c", 5)
	d := newNode(s.T(), s.rng, "d", 4)
	_, err = network.Connect(c, 0, d, 0)
	require.ErrorIs(err, network.ErrDimensionMismatch)
	_, err = network.Connect(c, 0, c, 0)
	require.ErrorIs(err, network.ErrSameNode)
	_, err = network.Connect(c, 3, d, 0)
	require.ErrorIs(err, network.ErrAxisOutOfRange)
}

func (s *NetworkSuite) TestSharedEdgesMultiEdge() {
	require := require.New(s.T())
	a := newNode(s.T(), s.rng, "a", 2, 3, 5)
	b := newNode(s.T(), s.rng, "b", 5, 3, 7)
	c := newNode(s.T(), s.rng, "c", 2)

	e1, err := network.Connect(a, 1, b, 1)
	require.NoError(err)
	e2, err := network.Connect(a, 2, b, 0)
	require.NoError(err)
	_, err = network.Connect(a, 0, c, 0)
	require.NoError(err)

	require.Equal([]*network.Edge{e1, e2}, network.SharedEdges(a, b)) // a's slot order
	require.Equal([]*network.Edge{e2, e1}, network.SharedEdges(b, a)) // b's slot order
	require.Empty(network.SharedEdges(b, c))
	require.Empty(network.SharedEdges(a, a))
	require.Equal([]*network.Node{c, b}, network.Neighbors(a))
}

func (s *NetworkSuite) TestDisconnect() {
	require := require.New(s.T())
	a := newNode(s.T(), s.rng, "a", 2)
	b := newNode(s.T(), s.rng, "b", 2)
	e, err := network.Connect(a, 0, b, 0)
	require.NoError(err)

	d1, d2, err := network.Disconnect(e)
	require.NoError(err)
	require.True(d1.IsDangling())
	require.True(d2.IsDangling())
	require.Same(a, d1.Node1())
	require.Same(b, d2.Node1())
	require.Empty(network.SharedEdges(a, b))

	_, _, err = network.Disconnect(d1)
	require.Error(err)
}

func (s *NetworkSuite) TestContractBetweenShapeAndRewire() {
	require := require.New(s.T())
	a := newNode(s.T(), s.rng, "a", 2, 3, 5)
	b := newNode(s.T(), s.rng, "b", 3, 5, 7)
	x := newNode(s.T(), s.rng, "x", 2)
	_, err := network.Connect(a, 1, b, 0)
	require.NoError(err)
	_, err = network.Connect(a, 2, b, 1)
	require.NoError(err)
	ext, err := network.Connect(x, 0, a, 0)
	require.NoError(err)

	m, err := network.ContractBetween(a, b, network.WithName("ab"))
	require.NoError(err)
	require.Equal([]int{2, 7}, m.Shape())
	require.Equal([]int{2, 7}, m.Tensor().Shape())

	// The external edge now ends on the merged node at slot 0.
	require.Same(m, ext.Node2())
	require.Equal(0, ext.Axis2())
	got, err := m.Edge(0)
	require.NoError(err)
	require.Same(ext, got)
	require.Equal([]*network.Node{m}, network.Neighbors(x))

	// Consumed operands expose no slots.
	require.Equal(0, a.Rank())
	require.Equal(0, b.Rank())
}

func (s *NetworkSuite) TestContractBetweenNumeric() {
	require := require.New(s.T())
	ta, _ := tensor.New([]int{2, 2}, []float64{1, 2, 3, 4})
	tb, _ := tensor.New([]int{2, 2}, []float64{5, 6, 7, 8})
	a, _ := network.NewNode(ta)
	b, _ := network.NewNode(tb)
	// b is Node1 of the edge but a must still come first in the result.
	_, err := network.Connect(b, 0, a, 1)
	require.NoError(err)

	m, err := network.ContractBetween(a, b)
	require.NoError(err)
	require.InDeltaSlice([]float64{19, 22, 43, 50}, m.Tensor().Data(), 1e-12)
}

func (s *NetworkSuite) TestContractBetweenErrors() {
	require := require.New(s.T())
	a := newNode(s.T(), s.rng, "a", 2)
	b := newNode(s.T(), s.rng, "b", 2)

	_, err := network.ContractBetween(a, b)
	require.ErrorIs(err, network.ErrNoSharedEdges)
	_, err = network.ContractBetween(a, a)
	require.ErrorIs(err, network.ErrSameNode)
	_, err = network.ContractBetween(nil, a)
	require.ErrorIs(err, network.ErrNilNode)
}

func (s *NetworkSuite) TestRewireValidation() {
	require := require.New(s.T())
	a := newNode(s.T(), s.rng, "a", 2, 3)
	b := newNode(s.T(), s.rng, "b", 3, 4)
	e, err := network.Connect(a, 1, b, 0)
	require.NoError(err)

	wrongRank := newNode(s.T(), s.rng, "r", 2)
	require.ErrorIs(network.Rewire([]*network.Edge{e}, a, b, wrongRank), network.ErrRankMismatch)
	wrongDims := newNode(s.T(), s.rng, "r", 4, 2)
	require.ErrorIs(network.Rewire([]*network.Edge{e}, a, b, wrongDims), network.ErrDimensionMismatch)
	require.ErrorIs(network.Rewire(nil, a, b, wrongDims), network.ErrNoSharedEdges)

	ok := newNode(s.T(), s.rng, "r", 2, 4)
	require.NoError(network.Rewire([]*network.Edge{e}, a, b, ok))
	require.Equal([]int{2, 4}, ok.Shape())
	require.Nil(e.Node1(), "removed edge is detached")
}

func (s *NetworkSuite) TestCopy() {
	require := require.New(s.T())
	a := newNode(s.T(), s.rng, "a", 2, 3)
	b := newNode(s.T(), s.rng, "b", 3, 4)
	c := newNode(s.T(), s.rng, "c", 4)
	inner, err := network.Connect(a, 1, b, 0)
	require.NoError(err)
	outer, err := network.Connect(b, 1, c, 0)
	require.NoError(err)

	nodeMap, edgeMap := network.Copy([]*network.Node{a, b, a})
	require.Len(nodeMap, 2)
	ca, cb := nodeMap[a], nodeMap[b]
	require.NotEqual(a.ID(), ca.ID())
	require.Equal("a", ca.Name)
	require.True(tensor.AllClose(a.Tensor(), ca.Tensor(), 0))

	// Internal edge reproduced between copies; outer edge dangles on the copy.
	require.Len(network.SharedEdges(ca, cb), 1)
	require.Same(edgeMap[inner], network.SharedEdges(ca, cb)[0])
	require.True(edgeMap[outer].IsDangling())

	// Mutating the copy leaves the original intact.
	require.NoError(ca.Tensor().Set(100, 0, 0))
	v, _ := a.Tensor().At(0, 0)
	require.NotEqual(100.0, v)
	require.Equal([]*network.Node{b}, network.Neighbors(c))

	single := network.CopyNode(b)
	for _, e := range single.Edges() {
		require.True(e.IsDangling())
	}
}

func (s *NetworkSuite) TestSplitNodeReconstructs() {
	require := require.New(s.T())
	n := newNode(s.T(), s.rng, "g", 2, 3, 4)
	x := newNode(s.T(), s.rng, "x", 3)
	ext, err := network.Connect(n, 1, x, 0)
	require.NoError(err)
	orig := n.Tensor().Clone()

	l, r, discarded, err := network.SplitNode(n, []int{0, 2}, []int{1},
		network.WithBondName("bond"), network.WithFactorNames("L", "R"))
	require.NoError(err)
	require.Empty(discarded)
	require.Equal([]int{2, 4, 3}, l.Shape())
	require.Equal([]int{3, 3}, r.Shape())
	require.Equal("L", l.Name)
	bond := network.SharedEdges(l, r)
	require.Len(bond, 1)
	require.Equal("bond", bond[0].Name())

	// The external edge moved to the right factor's slot 1.
	require.Same(r, ext.Node1())
	require.Equal(1, ext.Axis1())

	m, err := network.ContractBetween(l, r)
	require.NoError(err)
	want, err := tensor.Transpose(orig, []int{0, 2, 1})
	require.NoError(err)
	require.True(tensor.AllClose(want, m.Tensor(), 1e-10))
}

func (s *NetworkSuite) TestSplitNodeOptions() {
	require := require.New(s.T())
	n := newNode(s.T(), s.rng, "g", 4, 4)

	_, _, _, err := network.SplitNode(n, []int{0}, []int{1}, network.WithMaxSingularValues(0))
	require.ErrorIs(err, network.ErrOptionViolation)
	_, _, _, err = network.SplitNode(n, []int{0}, []int{1}, network.WithMaxTruncationErr(-1))
	require.ErrorIs(err, network.ErrOptionViolation)
	_, _, _, err = network.SplitNode(n, []int{0}, []int{0}, network.WithMaxSingularValues(1))
	require.ErrorIs(err, tensor.ErrAxis)

	l, r, discarded, err := network.SplitNode(n, []int{0}, []int{1}, network.WithMaxSingularValues(1))
	require.NoError(err)
	require.Equal([]int{4, 1}, l.Shape())
	require.Equal([]int{1, 4}, r.Shape())
	require.Len(discarded, 3)
}

func (s *NetworkSuite) TestSummarizeAndComponents() {
	require := require.New(s.T())
	a := newNode(s.T(), s.rng, "a", 2, 2)
	b := newNode(s.T(), s.rng, "b", 2, 3)
	c := newNode(s.T(), s.rng, "c", 3)
	d := newNode(s.T(), s.rng, "d", 5)
	_, err := network.Connect(a, 1, b, 0)
	require.NoError(err)
	_, err = network.Connect(b, 1, c, 0)
	require.NoError(err)

	st := network.Summarize([]*network.Node{a, b, d})
	require.Equal(3, st.NodeCount)
	require.Equal(1, st.SharedEdges)
	require.Equal(1, st.ExternalEdges) // b–c, c not listed
	require.Equal(2, st.DanglingEdges) // a[0], d[0]
	require.Equal(4+6+5, st.TotalSize)
	require.Equal(6, st.MaxNodeSize)
	require.Contains(st.String(), "3 nodes")

	require.Equal([]int{2, 5}, network.DanglingDimensions([]*network.Node{a, b, c, d}))

	comps := network.Components([]*network.Node{d, c, a, b})
	require.Len(comps, 2)
	require.Equal([]*network.Node{d}, comps[0])
	require.Equal([]*network.Node{c, b, a}, comps[1])
}

func TestNetworkSuite(t *testing.T) {
	suite.Run(t, new(NetworkSuite))
}
