package hclexpr

import (
	"errors"
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/katalvlaran/valgraph/value"
)

var (
	// ErrUnsupported marks an expression construct with no node operator.
	ErrUnsupported = errors.New("hclexpr: unsupported expression")

	// ErrUnknownVariable marks a name missing from the variable set.
	ErrUnknownVariable = errors.New("hclexpr: unknown variable")
)

// filename is reported in diagnostics for inline sources.
const filename = "<expr>"

// Parse compiles src into nodes of g and returns the root ID.
//
// vars maps variable names to existing IDs of g. Nodes created for
// intermediate results carry no label. On error, nodes already appended to g
// stay in the arena but are unreachable from any returned ID.
func Parse(g *value.Graph, src string, vars map[string]value.ID) (value.ID, error) {
	if g == nil {
		return -1, value.ErrGraphNil
	}

	expr, diags := hclsyntax.ParseExpression([]byte(src), filename, hcl.InitialPos)
	if diags.HasErrors() {
		return -1, diags
	}

	b := &builder{graph: g, vars: vars}

	return b.build(expr)
}

// Leaves creates one labeled leaf per entry of values and returns the name
// to ID mapping, ready to pass to Parse. Leaves are created in name order so
// IDs are deterministic.
func Leaves(g *value.Graph, values map[string]float64) map[string]value.ID {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	ids := make(map[string]value.ID, len(values))
	for _, name := range names {
		ids[name] = g.Leaf(values[name], value.WithLabel(name))
	}

	return ids
}

// builder walks an hclsyntax tree and emits nodes.
type builder struct {
	graph *value.Graph
	vars  map[string]value.ID
}

func (b *builder) build(expr hclsyntax.Expression) (value.ID, error) {
	switch e := expr.(type) {
	case *hclsyntax.ParenthesesExpr:
		return b.build(e.Expression)

	case *hclsyntax.LiteralValueExpr:
		f, err := number(e.Val, e.SrcRange)
		if err != nil {
			return -1, err
		}
		return b.graph.Leaf(f), nil

	case *hclsyntax.UnaryOpExpr:
		lit, ok := e.Val.(*hclsyntax.LiteralValueExpr)
		if e.Op != hclsyntax.OpNegate || !ok {
			return -1, unsupported("unary operator", e.SrcRange)
		}
		f, err := number(lit.Val, e.SrcRange)
		if err != nil {
			return -1, err
		}
		return b.graph.Leaf(-f), nil

	case *hclsyntax.ScopeTraversalExpr:
		if len(e.Traversal) != 1 {
			return -1, unsupported("attribute or index access", e.SrcRange)
		}
		name := e.Traversal.RootName()
		id, ok := b.vars[name]
		if !ok {
			return -1, fmt.Errorf("%w %q at %s", ErrUnknownVariable, name, e.SrcRange)
		}
		return id, nil

	case *hclsyntax.BinaryOpExpr:
		lhs, err := b.build(e.LHS)
		if err != nil {
			return -1, err
		}
		rhs, err := b.build(e.RHS)
		if err != nil {
			return -1, err
		}
		switch e.Op {
		case hclsyntax.OpAdd:
			return b.graph.Add(lhs, rhs)
		case hclsyntax.OpMultiply:
			return b.graph.Mul(lhs, rhs)
		}
		return -1, unsupported("binary operator", e.SrcRange)

	case *hclsyntax.FunctionCallExpr:
		if e.Name != "tanh" {
			return -1, unsupported(fmt.Sprintf("function %q", e.Name), e.NameRange)
		}
		if len(e.Args) != 1 || e.ExpandFinal {
			return -1, fmt.Errorf("%w: tanh takes exactly one argument at %s", ErrUnsupported, e.NameRange)
		}
		arg, err := b.build(e.Args[0])
		if err != nil {
			return -1, err
		}
		return b.graph.Tanh(arg)
	}

	return -1, unsupported(fmt.Sprintf("%T", expr), expr.Range())
}

// number decodes a numeric literal into a float64.
func number(v cty.Value, rng hcl.Range) (float64, error) {
	if !v.Type().Equals(cty.Number) || v.IsNull() || !v.IsKnown() {
		return 0, unsupported("non-numeric literal", rng)
	}
	var f float64
	if err := gocty.FromCtyValue(v, &f); err != nil {
		return 0, fmt.Errorf("hclexpr: literal at %s: %w", rng, err)
	}

	return f, nil
}

func unsupported(what string, rng hcl.Range) error {
	return fmt.Errorf("%w: %s at %s", ErrUnsupported, what, rng)
}
