// Package valgraph is a small scalar expression-graph toolkit: build
// expressions from leaves with +, * and tanh, keep them as a shared DAG, and
// print the DAG as an indented tree for debugging and teaching.
//
// Everything is organized under these subpackages:
//
//	value/    - Graph arena, node IDs, Leaf/Add/Mul/Tanh, label and grad slots
//	walk/     - pre-order tree walk (no dedup) and topological order
//	render/   - text rendering of a root and its dependencies
//	hclexpr/  - build nodes from an HCL arithmetic expression
//	cmd/valgraph - the example program
//
// Quick example:
//
//	g := value.NewGraph()
//	a := g.Leaf(2, value.WithLabel("a"))
//	b := g.Leaf(-3, value.WithLabel("b"))
//	e, _ := g.Mul(a, b, value.WithLabel("e"))
//	out, _ := render.Render(g, e)
//
//	(e=-6, '*', grad=0.000)
//	|----(a=2, grad=0.000)
//	|----(b=-3, grad=0.000)
//
// Gradients are stored, not computed: callers may seed Grad on a root, and
// walk.TopologicalSort provides the order a reverse pass would need.
package valgraph
