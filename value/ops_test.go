package value_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/valgraph/value"
)

// samples is a small grid of finite inputs including signs, zero and fractions.
var samples = []float64{-10, -3, -2, -0.5, 0, 0.25, 1, 2, 10, 1e6}

func TestLeaf_Defaults(t *testing.T) {
	g := value.NewGraph()
	id := g.Leaf(2.5)

	n, err := g.Node(id)
	require.NoError(t, err)
	assert.Equal(t, 2.5, n.Data)
	assert.Empty(t, n.Deps)
	assert.True(t, n.IsLeaf())
	assert.Equal(t, value.OpNone, n.Op)
	assert.Equal(t, "", n.Label)
	assert.Zero(t, n.Grad)
}

func TestLeaf_WithLabel(t *testing.T) {
	g := value.NewGraph()
	id := g.Leaf(-3, value.WithLabel("b"))

	label, err := g.Label(id)
	require.NoError(t, err)
	assert.Equal(t, "b", label)
}

func TestAdd_ValueAndOrder(t *testing.T) {
	for _, x := range samples {
		for _, y := range samples {
			g := value.NewGraph()
			a, b := g.Leaf(x), g.Leaf(y)
			s, err := g.Add(a, b)
			require.NoError(t, err)

			n, err := g.Node(s)
			require.NoError(t, err)
			assert.Equal(t, x+y, n.Data)
			assert.Equal(t, []value.ID{a, b}, n.Deps)
			assert.Equal(t, value.OpAdd, n.Op)
		}
	}
}

func TestMul_ValueAndOrder(t *testing.T) {
	for _, x := range samples {
		for _, y := range samples {
			g := value.NewGraph()
			a, b := g.Leaf(x), g.Leaf(y)
			p, err := g.Mul(a, b)
			require.NoError(t, err)

			n, err := g.Node(p)
			require.NoError(t, err)
			assert.Equal(t, x*y, n.Data)
			assert.Equal(t, []value.ID{a, b}, n.Deps)
			assert.Equal(t, value.OpMul, n.Op)
		}
	}
}

func TestMul_OperandOrderIsKept(t *testing.T) {
	g := value.NewGraph()
	a, b := g.Leaf(1), g.Leaf(2)
	p, err := g.Mul(b, a)
	require.NoError(t, err)

	deps, err := g.Deps(p)
	require.NoError(t, err)
	assert.Equal(t, []value.ID{b, a}, deps)
}

func TestTanh_Formula(t *testing.T) {
	for x := -5.0; x <= 5.0; x += 0.25 {
		g := value.NewGraph()
		id, err := g.Tanh(g.Leaf(x))
		require.NoError(t, err)

		got, err := g.Data(id)
		require.NoError(t, err)
		exp := math.Exp(2 * x)
		assert.Equal(t, (exp-1)/(exp+1), got, "x=%v", x)
		assert.InDelta(t, math.Tanh(x), got, 1e-12, "x=%v", x)
		assert.Greater(t, got, -1.0)
		assert.Less(t, got, 1.0)
	}
}

func TestTanh_Saturates(t *testing.T) {
	g := value.NewGraph()
	hi, err := g.Tanh(g.Leaf(1000))
	require.NoError(t, err)
	lo, err := g.Tanh(g.Leaf(-1000))
	require.NoError(t, err)

	v, _ := g.Data(hi)
	assert.Equal(t, 1.0, v, "overflow must saturate, not NaN")
	v, _ = g.Data(lo)
	assert.Equal(t, -1.0, v)
}

func TestTanh_SingleDependency(t *testing.T) {
	g := value.NewGraph()
	x := g.Leaf(0.5)
	th, err := g.Tanh(x, value.WithLabel("o"))
	require.NoError(t, err)

	n, err := g.Node(th)
	require.NoError(t, err)
	assert.Equal(t, []value.ID{x}, n.Deps)
	assert.Equal(t, value.OpTanh, n.Op)
	assert.Equal(t, "o", n.Label)
}

func TestOperands_AreShared(t *testing.T) {
	g := value.NewGraph()
	a := g.Leaf(3)
	sq, err := g.Mul(a, a)
	require.NoError(t, err)
	sum, err := g.Add(sq, a)
	require.NoError(t, err)

	v, _ := g.Data(sum)
	assert.Equal(t, 12.0, v)
	// operands are not copied: only 3 nodes exist
	assert.Equal(t, 3, g.Len())
	n, _ := g.Node(a)
	assert.Equal(t, 3.0, n.Data, "operand must be left untouched")
}

func TestOperators_Acyclic(t *testing.T) {
	g := value.NewGraph()
	a, b := g.Leaf(1), g.Leaf(2)
	c, err := g.Add(a, b)
	require.NoError(t, err)
	d, err := g.Tanh(c)
	require.NoError(t, err)

	for _, id := range []value.ID{c, d} {
		deps, err := g.Deps(id)
		require.NoError(t, err)
		for _, dep := range deps {
			assert.Less(t, dep, id, "dependency must be created before its dependent")
		}
	}
}

func TestOperators_UnknownID(t *testing.T) {
	g := value.NewGraph()
	a := g.Leaf(1)

	_, err := g.Add(a, 7)
	assert.ErrorIs(t, err, value.ErrNodeNotFound)
	_, err = g.Mul(-1, a)
	assert.ErrorIs(t, err, value.ErrNodeNotFound)
	_, err = g.Tanh(42)
	assert.ErrorIs(t, err, value.ErrNodeNotFound)
	assert.Equal(t, 1, g.Len(), "failed operators must not append")
}

func TestOperators_ForeignID(t *testing.T) {
	g1, g2 := value.NewGraph(), value.NewGraph()
	g1.Leaf(1)
	other := g1.Leaf(2)

	_, err := g2.Add(other, other)
	assert.ErrorIs(t, err, value.ErrNodeNotFound)
}

func TestOperators_NilGraph(t *testing.T) {
	var g *value.Graph

	_, err := g.Add(0, 0)
	assert.ErrorIs(t, err, value.ErrGraphNil)
	_, err = g.Mul(0, 0)
	assert.ErrorIs(t, err, value.ErrGraphNil)
	_, err = g.Tanh(0)
	assert.ErrorIs(t, err, value.ErrGraphNil)
}

func TestOp_StringAndArity(t *testing.T) {
	cases := []struct {
		op     value.Op
		symbol string
		arity  int
	}{
		{value.OpNone, "", 0},
		{value.OpAdd, "+", 2},
		{value.OpMul, "*", 2},
		{value.OpTanh, "tanh", 1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.symbol, tc.op.String())
		assert.Equal(t, tc.arity, tc.op.Arity())
	}
	assert.Equal(t, "op(?)", value.Op(99).String())
}

func TestLeaf_NilGraphPanics(t *testing.T) {
	var g *value.Graph

	assert.Panics(t, func() { g.Leaf(1) })
}
