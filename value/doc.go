// Package value provides the scalar expression node model: a Graph arena
// that owns every node, and the operators that grow it.
//
// A node is either a leaf (an input scalar created with Leaf) or a derived
// node produced by Add, Mul or Tanh from one or two existing nodes. Nodes
// are addressed by ID, a stable index into the arena, so sharing an operand
// between several expressions is simply reusing its ID:
//
//	g := value.NewGraph()
//	a := g.Leaf(2, value.WithLabel("a"))
//	b := g.Leaf(-3, value.WithLabel("b"))
//	e, _ := g.Mul(a, b) // e = -6, deps [a b]
//	d, _ := g.Add(e, e) // e is referenced twice, never copied
//
// Guarantees:
//
//   - Acyclic by construction: operators only accept IDs that already exist,
//     and the new node always receives a larger ID than any operand.
//   - Data is computed once at construction and never changes.
//   - Label and Grad are the only mutable fields; writing them affects that
//     node only.
//   - Dependency order is the order operands were supplied (lhs, rhs).
//
// Gradient:
//
//	Grad is a storage slot. Nothing in this module computes it; callers seed
//	it (typically 1.0 on the root) for display purposes.
//
// Errors:
//
//	ErrGraphNil      - method called on a nil *Graph.
//	ErrNodeNotFound  - ID does not belong to this graph.
//
// Complexity:
//
//	Leaf, Add, Mul, Tanh and all accessors are O(1) amortized.
package value
