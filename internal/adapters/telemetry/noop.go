package telemetry

import (
	"context"

	"github.com/scribibble/dpnd/internal/core/ports"
)

// NoopTracer implements ports.Tracer without recording anything.
type NoopTracer struct{}

// NewNoopTracer creates a tracer that discards all spans.
func NewNoopTracer() *NoopTracer {
	return &NoopTracer{}
}

// Start returns the context unchanged and a span that does nothing.
func (t *NoopTracer) Start(ctx context.Context, _ string) (context.Context, ports.Span) {
	return ctx, noopSpan{}
}

type noopSpan struct{}

func (noopSpan) RecordError(error) {}
func (noopSpan) End()              {}
