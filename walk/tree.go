package walk

import (
	"fmt"

	"github.com/katalvlaran/valgraph/value"
)

// treeWalker carries the state of a single Tree call.
type treeWalker struct {
	graph *value.Graph
	opts  Options
	res   *Result
}

// Tree walks the dependency structure below root in pre-order, following
// dependencies in stored order and without deduplication.
//
// On error the partial Result collected so far is returned with it.
func Tree(g *value.Graph, root value.ID, opts ...Option) (*Result, error) {
	// 1. Validate input graph and root
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Has(root) {
		return nil, fmt.Errorf("%w: %d", ErrRootNotFound, root)
	}

	// 2. Apply options
	wopts := DefaultOptions()
	for _, fn := range opts {
		fn(&wopts)
	}

	// 3. Walk from root
	res := &Result{
		Visits: make([]Visit, 0, g.Len()),
		Count:  make(map[value.ID]int, g.Len()),
	}
	w := &treeWalker{graph: g, opts: wopts, res: res}
	if err := w.traverse(Visit{ID: root, Parent: NoParent}); err != nil {
		return res, err
	}

	return res, nil
}

// traverse records v, runs the hooks and recurses into every dependency.
func (w *treeWalker) traverse(v Visit) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Record the arrival
	w.res.Visits = append(w.res.Visits, v)
	w.res.Count[v.ID]++

	// 3. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			return fmt.Errorf("walk: OnVisit hook for %d: %w", v.ID, err)
		}
	}

	// 4. Dependencies, in operand order
	deps, err := w.graph.Deps(v.ID)
	if err != nil {
		return fmt.Errorf("walk: Deps(%d): %w", v.ID, err)
	}
	if w.opts.MaxDepth >= 0 && v.Depth >= w.opts.MaxDepth {
		w.res.Truncated += len(deps)
		deps = nil
	}
	for i, dep := range deps {
		child := Visit{ID: dep, Depth: v.Depth + 1, Parent: v.ID, Index: i}
		if err = w.traverse(child); err != nil {
			return err
		}
	}

	// 5. Post-order hook
	if w.opts.OnExit != nil {
		if err = w.opts.OnExit(v); err != nil {
			return fmt.Errorf("walk: OnExit hook for %d: %w", v.ID, err)
		}
	}

	return nil
}
