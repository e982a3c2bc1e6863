// File: methods.go
// Role: Read accessors and the two mutable slots (label, grad).
//
// Concurrency:
//   - Readers take mu.RLock; SetLabel/SetGrad take mu.Lock.
package value

import "fmt"

// Len returns the number of nodes in the arena. A nil Graph has none.
func (g *Graph) Len() int {
	if g == nil {
		return 0
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// Has reports whether id addresses a node of g.
func (g *Graph) Has(id ID) bool {
	if g == nil {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasLocked(id)
}

// IDs returns every ID in creation order. Because operands always precede
// the nodes built from them, this is also a valid topological order.
func (g *Graph) IDs() []ID {
	n := g.Len()
	ids := make([]ID, n)
	for i := range ids {
		ids[i] = ID(i)
	}

	return ids
}

// Node returns a snapshot of the node addressed by id.
//
// Errors:
//   - ErrGraphNil, ErrNodeNotFound.
//
// Complexity: O(len(Deps)) for the copy of Deps.
func (g *Graph) Node(id ID) (Node, error) {
	if g == nil {
		return Node{}, ErrGraphNil
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasLocked(id) {
		return Node{}, fmt.Errorf("value: Node(%d): %w", id, ErrNodeNotFound)
	}
	e := g.nodes[id]
	deps := make([]ID, len(e.deps))
	copy(deps, e.deps)

	return Node{
		ID:    id,
		Data:  e.data,
		Deps:  deps,
		Label: e.label,
		Op:    e.op,
		Grad:  e.grad,
	}, nil
}

// Data returns the scalar value of id.
func (g *Graph) Data(id ID) (float64, error) {
	n, err := g.Node(id)
	if err != nil {
		return 0, err
	}

	return n.Data, nil
}

// Deps returns a copy of the dependency IDs of id, in operand order.
func (g *Graph) Deps(id ID) ([]ID, error) {
	n, err := g.Node(id)
	if err != nil {
		return nil, err
	}

	return n.Deps, nil
}

// OpOf returns the operator that produced id.
func (g *Graph) OpOf(id ID) (Op, error) {
	n, err := g.Node(id)
	if err != nil {
		return OpNone, err
	}

	return n.Op, nil
}

// Label returns the display label of id ("" when unset).
func (g *Graph) Label(id ID) (string, error) {
	n, err := g.Node(id)
	if err != nil {
		return "", err
	}

	return n.Label, nil
}

// SetLabel replaces the label of id. Dependencies and dependents are untouched.
func (g *Graph) SetLabel(id ID, label string) error {
	return g.update(id, func(e *entry) { e.label = label })
}

// Grad returns the gradient slot of id.
func (g *Graph) Grad(id ID) (float64, error) {
	n, err := g.Node(id)
	if err != nil {
		return 0, err
	}

	return n.Grad, nil
}

// SetGrad writes the gradient slot of id. The value does not propagate.
func (g *Graph) SetGrad(id ID, grad float64) error {
	return g.update(id, func(e *entry) { e.grad = grad })
}

// update applies fn to the entry of id under the write lock.
func (g *Graph) update(id ID, fn func(e *entry)) error {
	if g == nil {
		return ErrGraphNil
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.hasLocked(id) {
		return fmt.Errorf("value: update(%d): %w", id, ErrNodeNotFound)
	}
	fn(&g.nodes[id])

	return nil
}
