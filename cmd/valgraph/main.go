// Command valgraph builds the example expression L = (a*b + c) * f, seeds
// L's gradient and prints the rendered graph. It takes no arguments.
//
// The L tree is printed first and is identical to the single-expression
// example. After one blank line a second graph, o = tanh(a*b + c), follows;
// it is compiled from source text by hclexpr and shows the tanh node. Readers
// comparing against the one-tree output should stop at the blank line.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/valgraph/hclexpr"
	"github.com/katalvlaran/valgraph/render"
	"github.com/katalvlaran/valgraph/value"
)

func main() {
	logger := newLogger(slog.LevelInfo, os.Stderr)
	if err := run(context.Background(), os.Stdout, logger); err != nil {
		logger.Error("valgraph failed", "error", err)
		os.Exit(1)
	}
}

// newLogger returns a text logger writing to w at the given level.
func newLogger(level slog.Level, w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// run writes both example graphs to w.
func run(ctx context.Context, w io.Writer, logger *slog.Logger) error {
	g, root, err := buildLoss()
	if err != nil {
		return fmt.Errorf("build loss: %w", err)
	}
	logger.Debug("graph built", "nodes", g.Len(), "root", root)
	if err = render.Write(w, g, root, render.WithContext(ctx)); err != nil {
		return err
	}

	if _, err = fmt.Fprintln(w); err != nil {
		return err
	}

	g, root, err = buildNeuron()
	if err != nil {
		return fmt.Errorf("build neuron: %w", err)
	}
	logger.Debug("graph built", "nodes", g.Len(), "root", root)

	return render.Write(w, g, root, render.WithContext(ctx))
}

// buildLoss constructs L = (a*b + c) * f with every node labeled and
// L.grad = 1.
func buildLoss() (*value.Graph, value.ID, error) {
	g := value.NewGraph(value.WithCapacity(7))
	a := g.Leaf(2, value.WithLabel("a"))
	b := g.Leaf(-3, value.WithLabel("b"))
	c := g.Leaf(10, value.WithLabel("c"))

	e, err := g.Mul(a, b, value.WithLabel("e"))
	if err != nil {
		return nil, -1, err
	}
	d, err := g.Add(e, c, value.WithLabel("d"))
	if err != nil {
		return nil, -1, err
	}
	f := g.Leaf(-2, value.WithLabel("f"))
	l, err := g.Mul(d, f, value.WithLabel("L"))
	if err != nil {
		return nil, -1, err
	}
	if err = g.SetGrad(l, 1); err != nil {
		return nil, -1, err
	}

	return g, l, nil
}

// buildNeuron compiles o = tanh(a*b + c) from text.
func buildNeuron() (*value.Graph, value.ID, error) {
	g := value.NewGraph()
	vars := hclexpr.Leaves(g, map[string]float64{"a": 2, "b": -3, "c": 10})

	o, err := hclexpr.Parse(g, "tanh(a*b + c)", vars)
	if err != nil {
		return nil, -1, err
	}
	if err = g.SetLabel(o, "o"); err != nil {
		return nil, -1, err
	}

	return g, o, nil
}
