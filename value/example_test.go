package value_test

import (
	"fmt"

	"github.com/katalvlaran/valgraph/value"
)

// ExampleGraph builds e = a*b, d = e+c and inspects the result.
func ExampleGraph() {
	g := value.NewGraph()
	a := g.Leaf(2, value.WithLabel("a"))
	b := g.Leaf(-3, value.WithLabel("b"))
	c := g.Leaf(10, value.WithLabel("c"))

	e, _ := g.Mul(a, b, value.WithLabel("e"))
	d, _ := g.Add(e, c, value.WithLabel("d"))

	n, _ := g.Node(d)
	fmt.Println(n.Label, n.Data, n.Op, n.Deps)

	// Output:
	// d 4 + [3 2]
}

// ExampleGraph_Tanh applies the activation to a derived node.
func ExampleGraph_Tanh() {
	g := value.NewGraph()
	x := g.Leaf(0)
	o, _ := g.Tanh(x)

	v, _ := g.Data(o)
	fmt.Println(v)

	// Output:
	// 0
}
