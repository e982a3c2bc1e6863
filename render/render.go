package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/valgraph/value"
	"github.com/katalvlaran/valgraph/walk"
)

// Render returns the text tree of root.
//
// Errors:
//   - walk.ErrGraphNil, walk.ErrRootNotFound
//   - ErrBadIndentStep
//   - context errors from WithContext
func Render(g *value.Graph, root value.ID, opts ...Option) (string, error) {
	ropts := DefaultOptions()
	for _, fn := range opts {
		fn(&ropts)
	}
	if ropts.IndentStep < 0 {
		return "", fmt.Errorf("%w: %d", ErrBadIndentStep, ropts.IndentStep)
	}

	var sb strings.Builder
	_, err := walk.Tree(g, root,
		walk.WithContext(ropts.Ctx),
		walk.WithMaxDepth(ropts.MaxDepth),
		walk.WithOnVisit(func(v walk.Visit) error {
			n, err := g.Node(v.ID)
			if err != nil {
				return err
			}
			sb.WriteString(line(v.Depth, Describe(n, ropts.Style), ropts))

			return nil
		}),
	)
	if err != nil {
		return "", fmt.Errorf("render: %w", err)
	}

	return sb.String(), nil
}

// Write renders root and hands the complete text to w in a single Write.
// Nothing reaches w unless the whole walk succeeded. Errors are those of
// Render, or the writer's error wrapped as "render: ...".
func Write(w io.Writer, g *value.Graph, root value.ID, opts ...Option) error {
	text, err := Render(g, root, opts...)
	if err != nil {
		return err
	}
	if _, err = io.WriteString(w, text); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	return nil
}

// line lays out one description at depth.
func line(depth int, desc string, o Options) string {
	if depth == 0 {
		return desc + "\n"
	}

	return strings.Repeat(" ", o.IndentStep*(depth-1)) + o.Connector + desc + "\n"
}
