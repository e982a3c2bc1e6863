// TopologicalSort computes the set of nodes reachable from a root ordered so
// that every node follows all of its dependencies.
//
// Complexity:
//
//   - Time:   O(V + E) over the reachable subgraph
//   - Memory: O(V)
package walk

import (
	"fmt"

	"github.com/katalvlaran/valgraph/value"
)

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph   *value.Graph
	opts    Options
	visited map[value.ID]bool
	order   []value.ID
}

// TopologicalSort returns the nodes reachable from root, each once, with
// dependencies before dependents; root is always last. Dependencies are
// explored in operand order so the result is deterministic.
//
// Only WithContext is honored; hooks and MaxDepth are ignored.
func TopologicalSort(g *value.Graph, root value.ID, opts ...Option) ([]value.ID, error) {
	// 1. Validate graph and root
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Has(root) {
		return nil, fmt.Errorf("%w: %d", ErrRootNotFound, root)
	}

	// 2. Apply optional settings
	wopts := DefaultOptions()
	for _, fn := range opts {
		fn(&wopts)
	}

	// 3. Post-order DFS from root
	sorter := &topoSorter{
		graph:   g,
		opts:    wopts,
		visited: make(map[value.ID]bool),
	}
	if err := sorter.visit(root); err != nil {
		return nil, err
	}

	return sorter.order, nil
}

// visit marks id, visits its dependencies and then records id.
func (t *topoSorter) visit(id value.ID) error {
	// 1. Cancellation check at entry
	select {
	case <-t.opts.Ctx.Done():
		return t.opts.Ctx.Err()
	default:
	}
	// 2. Shared nodes are emitted once
	if t.visited[id] {
		return nil
	}
	t.visited[id] = true

	deps, err := t.graph.Deps(id)
	if err != nil {
		return fmt.Errorf("walk: Deps(%d): %w", id, err)
	}
	for _, dep := range deps {
		if err = t.visit(dep); err != nil {
			return err
		}
	}
	t.order = append(t.order, id)

	return nil
}
