// Package value defines Graph, ID, Op, Node, the option types and sentinel
// errors of the expression arena.
package value

import (
	"errors"
	"sync"
)

// Sentinel errors for arena operations.
var (
	// ErrGraphNil indicates a method was invoked on a nil *Graph.
	ErrGraphNil = errors.New("value: graph is nil")

	// ErrNodeNotFound indicates an ID that is out of range for the graph.
	ErrNodeNotFound = errors.New("value: node not found")
)

// ID addresses a node inside the Graph that created it.
type ID int

// Op identifies which operator produced a node.
type Op uint8

const (
	// OpNone marks a leaf node.
	OpNone Op = iota
	// OpAdd marks a node produced by Add.
	OpAdd
	// OpMul marks a node produced by Mul.
	OpMul
	// OpTanh marks a node produced by Tanh.
	OpTanh
)

// String returns the display symbol of the operation; OpNone is "".
func (o Op) String() string {
	switch o {
	case OpNone:
		return ""
	case OpAdd:
		return "+"
	case OpMul:
		return "*"
	case OpTanh:
		return "tanh"
	default:
		return "op(?)"
	}
}

// Arity reports how many dependencies a node produced by o carries.
func (o Op) Arity() int {
	switch o {
	case OpAdd, OpMul:
		return 2
	case OpTanh:
		return 1
	default:
		return 0
	}
}

// Node is a read-only snapshot of one arena entry.
//
// Deps is a copy; mutating it does not affect the graph.
type Node struct {
	// ID is the handle of this node in its Graph.
	ID ID

	// Data is the scalar value, fixed at construction.
	Data float64

	// Deps lists the operands in the order they were supplied.
	Deps []ID

	// Label is the optional display name.
	Label string

	// Op is the producing operator, OpNone for leaves.
	Op Op

	// Grad is the caller-seeded gradient slot.
	Grad float64
}

// IsLeaf reports whether the node has no dependencies.
func (n Node) IsLeaf() bool { return len(n.Deps) == 0 }

// entry is the arena record behind a Node.
type entry struct {
	data  float64
	deps  []ID
	label string
	op    Op
	grad  float64
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithCapacity preallocates room for n nodes. Negative values are ignored.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.nodes = make([]entry, 0, n)
		}
	}
}

// NodeOption configures a node at creation time.
type NodeOption func(e *entry)

// WithLabel sets the display label of the node being created.
func WithLabel(label string) NodeOption {
	return func(e *entry) { e.label = label }
}

// Graph is the arena owning every node of an expression.
//
// Nodes are appended and never removed, so an ID stays valid for the
// lifetime of the Graph. mu guards nodes; the zero Graph is ready to use.
type Graph struct {
	mu    sync.RWMutex
	nodes []entry
}

// NewGraph creates an empty Graph with the given options applied in order.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
