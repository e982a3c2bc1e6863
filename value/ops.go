// File: ops.go
// Role: Node constructors (Leaf) and operators (Add, Mul, Tanh).
//
// Policy:
//   - Operators reference operands by ID; operands are never copied or mutated.
//   - Operand validation happens under the same write lock as the append, so a
//     concurrent caller can never observe a node whose deps are missing.
package value

import (
	"fmt"
	"math"
)

// Leaf appends a node with no dependencies, OpNone and zero gradient.
//
// Leaf never fails. It panics if g is nil.
//
// Complexity: O(1) amortized.
func (g *Graph) Leaf(data float64, opts ...NodeOption) ID {
	e := entry{data: data}
	for _, opt := range opts {
		opt(&e)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	return g.appendLocked(e)
}

// Add appends a node holding lhs.Data + rhs.Data with deps [lhs, rhs] and
// OpAdd. The same ID may be passed for both operands.
//
// Errors:
//   - ErrGraphNil: g is nil.
//   - ErrNodeNotFound: lhs or rhs is not an ID of g.
func (g *Graph) Add(lhs, rhs ID, opts ...NodeOption) (ID, error) {
	return g.binary(OpAdd, lhs, rhs, opts, func(x, y float64) float64 { return x + y })
}

// Mul appends a node holding lhs.Data * rhs.Data with deps [lhs, rhs] and
// OpMul. Errors as for Add.
func (g *Graph) Mul(lhs, rhs ID, opts ...NodeOption) (ID, error) {
	return g.binary(OpMul, lhs, rhs, opts, func(x, y float64) float64 { return x * y })
}

// Tanh appends a node holding the hyperbolic tangent of x.Data, computed as
// (e^{2x} - 1) / (e^{2x} + 1), with deps [x] and OpTanh.
//
// When e^{2x} overflows the result is 1, the limit of the formula. Only the
// forward value is produced; no derivative rule is attached.
//
// Errors:
//   - ErrGraphNil: g is nil.
//   - ErrNodeNotFound: x is not an ID of g.
func (g *Graph) Tanh(x ID, opts ...NodeOption) (ID, error) {
	if g == nil {
		return -1, ErrGraphNil
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.hasLocked(x) {
		return -1, fmt.Errorf("value: Tanh(%d): %w", x, ErrNodeNotFound)
	}
	e := entry{
		data: tanh(g.nodes[x].data),
		deps: []ID{x},
		op:   OpTanh,
	}
	for _, opt := range opts {
		opt(&e)
	}

	return g.appendLocked(e), nil
}

// binary implements the two-operand operators.
func (g *Graph) binary(op Op, lhs, rhs ID, opts []NodeOption, fn func(x, y float64) float64) (ID, error) {
	// 1. Validate receiver
	if g == nil {
		return -1, ErrGraphNil
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2. Both operands must already live in this arena
	if !g.hasLocked(lhs) {
		return -1, fmt.Errorf("value: %s lhs %d: %w", op, lhs, ErrNodeNotFound)
	}
	if !g.hasLocked(rhs) {
		return -1, fmt.Errorf("value: %s rhs %d: %w", op, rhs, ErrNodeNotFound)
	}

	// 3. Compute once; deps keep operand order
	e := entry{
		data: fn(g.nodes[lhs].data, g.nodes[rhs].data),
		deps: []ID{lhs, rhs},
		op:   op,
	}
	for _, opt := range opts {
		opt(&e)
	}

	return g.appendLocked(e), nil
}

// appendLocked stores e and returns its ID. Caller holds mu for writing.
func (g *Graph) appendLocked(e entry) ID {
	g.nodes = append(g.nodes, e)

	return ID(len(g.nodes) - 1)
}

// hasLocked reports whether id addresses a stored node. Caller holds mu.
func (g *Graph) hasLocked(id ID) bool {
	return id >= 0 && int(id) < len(g.nodes)
}

// tanh evaluates (e^{2x}-1)/(e^{2x}+1).
func tanh(x float64) float64 {
	exp := math.Exp(2 * x)
	if math.IsInf(exp, 1) {
		return 1
	}

	return (exp - 1) / (exp + 1)
}
