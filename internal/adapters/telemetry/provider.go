package telemetry

import (
	"context"
	"os"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// TraceEnvVar enables span recording when set to a truthy value.
const TraceEnvVar = "DPND_TRACE"

// Enabled reports whether span recording is requested for this invocation.
func Enabled() bool {
	v := os.Getenv(TraceEnvVar)
	return v == "1" || v == "true"
}

// Setup installs an SDK tracer provider as the global OTel provider and
// returns its shutdown function. Without Setup the global provider is a
// no-op and spans cost nothing.
func Setup() func(context.Context) error {
	provider := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(provider)
	return provider.Shutdown
}
