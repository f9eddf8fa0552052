// Package otelbind wraps binding-graph operations in OpenTelemetry
// spans. A span around Set covers the whole synchronous propagation
// pass, including every eager dependent recomputation; a span around
// Read covers a deferred lazy recomputation.
package otelbind

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/bindwire-dev/bindwire/pkg/bind"
)

// Default tracer name for binding graphs.
const defaultTracerName = "bindwire"

// Config configures the tracer.
type Config struct {
	// TracerName is the name of the tracer (default: "bindwire").
	TracerName string

	// Attributes are added to every span.
	Attributes []attribute.KeyValue

	// tracer is the resolved tracer instance.
	tracer trace.Tracer
}

// Option configures the tracer.
type Option func(*Config)

// WithTracerName sets the tracer name.
func WithTracerName(name string) Option {
	return func(c *Config) {
		c.TracerName = name
	}
}

// WithAttributes sets attributes added to every span.
func WithAttributes(attrs ...attribute.KeyValue) Option {
	return func(c *Config) {
		c.Attributes = attrs
	}
}

// Tracer traces binding-graph mutations and reads.
type Tracer struct {
	cfg Config
}

// New creates a tracer resolved against the global tracer provider.
func New(opts ...Option) *Tracer {
	cfg := Config{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.tracer = otel.Tracer(cfg.TracerName)
	return &Tracer{cfg: cfg}
}

// Set writes x to v inside a span covering the full propagation pass.
// A panic raised by a dependent expression's function is recorded on
// the span and re-raised.
func Set[T any](ctx context.Context, t *Tracer, v *bind.Value[T], x T) {
	_, span := t.start(ctx, "bind.set", v.ID())
	defer span.End()
	defer recordPanic(span)

	v.Set(x)
}

// Read returns n's current value inside a span. For a stale lazy
// expression the span covers the deferred recomputation; a panic from
// the recomputation function is recorded and re-raised.
func Read[T any](ctx context.Context, t *Tracer, n bind.Node[T]) T {
	_, span := t.start(ctx, "bind.get", n.ID())
	defer span.End()
	defer recordPanic(span)

	return n.Get()
}

func (t *Tracer) start(ctx context.Context, name string, nodeID uint64) (context.Context, trace.Span) {
	attrs := append([]attribute.KeyValue{
		attribute.Int64("bind.node_id", int64(nodeID)),
	}, t.cfg.Attributes...)
	return t.cfg.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func recordPanic(span trace.Span) {
	if r := recover(); r != nil {
		err := fmt.Errorf("recomputation panic: %v", r)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		panic(r)
	}
}
