package walk

import (
	"context"
	"errors"

	"github.com/katalvlaran/valgraph/value"
)

var (
	// ErrGraphNil is returned when a nil *value.Graph is passed in.
	ErrGraphNil = errors.New("walk: graph is nil")

	// ErrRootNotFound indicates that the root ID is not in the graph.
	ErrRootNotFound = errors.New("walk: root node not found")
)

// NoParent is the Parent of the root visit.
const NoParent value.ID = -1

// Visit describes one arrival at a node during Tree.
type Visit struct {
	// ID is the node reached.
	ID value.ID

	// Depth is the number of edges from the root (root = 0).
	Depth int

	// Parent is the node this visit came from, NoParent for the root.
	Parent value.ID

	// Index is the position of ID in Parent's dependency list.
	Index int
}

// Option configures a traversal.
type Option func(*Options)

// Options holds the traversal parameters.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, runs when a node is reached (pre-order).
	OnVisit func(v Visit) error

	// OnExit, if non-nil, runs after all dependencies of the node were walked.
	OnExit func(v Visit) error

	// MaxDepth, if non-negative, stops descent below that depth. Default -1.
	MaxDepth int
}

// DefaultOptions returns Options with a background context, no hooks and
// no depth limit.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs a pre-order hook.
func WithOnVisit(fn func(v Visit) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithOnExit installs a post-order hook.
func WithOnExit(fn func(v Visit) error) Option {
	return func(o *Options) { o.OnExit = fn }
}

// WithMaxDepth limits descent; 0 visits only the root.
func WithMaxDepth(limit int) Option {
	return func(o *Options) { o.MaxDepth = limit }
}

// Result captures the outcome of Tree.
type Result struct {
	// Visits lists every arrival in pre-order.
	Visits []Visit

	// Count maps each node to how many times it was reached.
	Count map[value.ID]int

	// Truncated counts dependency edges not followed because of MaxDepth.
	Truncated int
}
