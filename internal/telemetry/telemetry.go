// Package telemetry sets up OpenTelemetry tracing for payment handlers.
package telemetry

import (
	"context"
	"fmt"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/yourorg/cafe-checkout/internal/adapter"
)

const tracerName = "github.com/yourorg/cafe-checkout"

// Provider owns the tracer provider and knows how to shut it down.
type Provider struct {
	tp       trace.TracerProvider
	shutdown func(context.Context) error
}

// Shutdown flushes pending spans.
func (p *Provider) Shutdown(ctx context.Context) error {
	return p.shutdown(ctx)
}

// Tracer returns the module tracer.
func (p *Provider) Tracer() trace.Tracer {
	return p.tp.Tracer(tracerName)
}

// NewNoopProvider returns a provider whose spans are discarded, and installs
// it as the global otel provider.
func NewNoopProvider() *Provider {
	tp := noop.NewTracerProvider()
	otel.SetTracerProvider(tp)
	return &Provider{tp: tp, shutdown: func(context.Context) error { return nil }}
}

// NewTracerProvider returns a provider that pretty-prints spans to w when
// enabled, and a no-op provider otherwise. The provider is installed as the
// global otel provider.
func NewTracerProvider(w io.Writer, enabled bool) (*Provider, error) {
	if !enabled {
		return NewNoopProvider(), nil
	}

	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w), stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, fmt.Errorf("create stdout trace exporter: %w", err)
	}
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)
	return &Provider{tp: tp, shutdown: tp.Shutdown}, nil
}

// Trace wraps p so every payment runs inside a span.
func Trace(p adapter.NamedProcessor, tracer trace.Tracer) adapter.NamedProcessor {
	return &traced{next: p, tracer: tracer}
}

type traced struct {
	next   adapter.NamedProcessor
	tracer trace.Tracer
}

func (t *traced) GetName() string { return t.next.GetName() }

func (t *traced) ProcessPayment(amount int64) {
	_, span := t.tracer.Start(context.Background(), "PaymentProcessor.ProcessPayment",
		trace.WithAttributes(
			attribute.String("payment.provider", t.next.GetName()),
			attribute.Int64("payment.amount", amount),
		))
	defer span.End()

	t.next.ProcessPayment(amount)
}
