package ports

import "context"

// Tracer emits spans around resolution steps.
//
//go:generate mockgen -source=tracer.go -destination=mocks/mock_tracer.go -package=mocks
type Tracer interface {
	// Start opens a span with the given name and returns the derived context.
	Start(ctx context.Context, name string) (context.Context, Span)
}

// Span is one traced unit of work.
type Span interface {
	// RecordError attaches an error to the span.
	RecordError(err error)

	// End closes the span.
	End()
}
