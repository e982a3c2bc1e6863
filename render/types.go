package render

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/katalvlaran/valgraph/value"
)

// ErrBadIndentStep is returned when WithIndentStep receives a negative step.
var ErrBadIndentStep = errors.New("render: indent step must be non-negative")

// Style selects the per-node description schema.
type Style int

const (
	// StyleFull prints label, value, operation and gradient.
	StyleFull Style = iota
	// StyleValue prints only the value.
	StyleValue
)

const (
	// DefaultConnector precedes every non-root description.
	DefaultConnector = "|----"
	// DefaultIndentStep is the number of spaces added per level below depth 1.
	DefaultIndentStep = 6
)

// Options holds rendering parameters.
type Options struct {
	Ctx        context.Context
	Style      Style
	Connector  string
	IndentStep int
	// MaxDepth, if non-negative, hides nodes deeper than the limit.
	MaxDepth int
}

// Option configures Render and Write.
type Option func(*Options)

// DefaultOptions returns StyleFull, "|----", step 6, no depth limit.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Style:      StyleFull,
		Connector:  DefaultConnector,
		IndentStep: DefaultIndentStep,
		MaxDepth:   -1,
	}
}

// WithStyle selects the description schema.
func WithStyle(s Style) Option {
	return func(o *Options) { o.Style = s }
}

// WithConnector replaces the connector token (e.g. "|--").
func WithConnector(c string) Option {
	return func(o *Options) { o.Connector = c }
}

// WithIndentStep sets the spaces per level. Negative values make Render
// fail with ErrBadIndentStep.
func WithIndentStep(step int) Option {
	return func(o *Options) { o.IndentStep = step }
}

// WithMaxDepth stops output below limit; 0 prints the root only.
func WithMaxDepth(limit int) Option {
	return func(o *Options) { o.MaxDepth = limit }
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// Describe returns the text of a single node in the given style.
func Describe(n value.Node, style Style) string {
	var sb strings.Builder
	sb.WriteByte('(')
	switch style {
	case StyleValue:
		sb.WriteString(formatData(n.Data))
	default:
		sb.WriteString(n.Label)
		sb.WriteByte('=')
		sb.WriteString(formatData(n.Data))
		if n.Op != value.OpNone {
			sb.WriteString(", '")
			sb.WriteString(n.Op.String())
			sb.WriteByte('\'')
		}
		sb.WriteString(", grad=")
		sb.WriteString(strconv.FormatFloat(n.Grad, 'f', 3, 64))
	}
	sb.WriteByte(')')

	return sb.String()
}

// formatData prints the shortest decimal that round-trips, without exponent.
func formatData(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
