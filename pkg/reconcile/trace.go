package reconcile

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Default tracer name for gomorph.
const defaultTracerName = "gomorph"

// WithTracing enables OpenTelemetry spans around every Mount and Update.
// The tracer is resolved from the global tracer provider; configure the
// provider in main() before reconciling. An empty name uses "gomorph".
func WithTracing(tracerName string) Option {
	return func(r *Reconciler) {
		if tracerName == "" {
			tracerName = defaultTracerName
		}
		r.tracer = otel.Tracer(tracerName)
	}
}

func (r *Reconciler) startSpan(name, tag string) trace.Span {
	if r.tracer == nil {
		return nil
	}
	_, span := r.tracer.Start(context.Background(), name,
		trace.WithAttributes(attribute.String("gomorph.tag", tag)))
	return span
}

func (r *Reconciler) endSpan(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.SetAttributes(
		attribute.Int("gomorph.ops_total", r.ops.Total()),
		attribute.Int("gomorph.nodes_created", r.ops.Count(OpCreateElement)+r.ops.Count(OpCreateText)),
		attribute.Int("gomorph.nodes_moved", r.ops.Count(OpMoveNode)),
		attribute.Int("gomorph.nodes_removed", r.ops.Count(OpRemoveNode)),
	)
	span.End()
}
