package svg

import "github.com/matzehuels/svgkit/pkg/diag"

// Builder creates elements that report to a shared diagnostic sink.
// The zero value discards diagnostics.
type Builder struct {
	sink diag.Sink
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithSink sets where diagnostics go.
func WithSink(s diag.Sink) BuilderOption {
	return func(b *Builder) { b.sink = s }
}

// NewBuilder returns a builder configured by opts.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Sink returns the builder's diagnostic sink.
func (b *Builder) Sink() diag.Sink {
	if b == nil || b.sink == nil {
		return diag.Discard
	}
	return b.sink
}
