// Package telemetry records tool invocations into OpenTelemetry.
package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentationName identifies the tracer and meter of this module.
const InstrumentationName = "github.com/germanamz/spoolman-mcp"

// Observer creates a span per tool call and records call counts and latency.
// A nil *Observer is valid and records nothing.
type Observer struct {
	tracer trace.Tracer

	invocations metric.Int64Counter
	failures    metric.Int64Counter
	latency     metric.Float64Histogram
}

// NewObserver creates an Observer bound to the provided meter and tracer.
func NewObserver(meter metric.Meter, tracer trace.Tracer) (*Observer, error) {
	invocations, err := meter.Int64Counter(
		"spoolman.tool.invocations",
		metric.WithDescription("Number of tool invocations"),
	)
	if err != nil {
		return nil, err
	}
	failures, err := meter.Int64Counter(
		"spoolman.tool.failures",
		metric.WithDescription("Number of failed tool invocations"),
	)
	if err != nil {
		return nil, err
	}
	latency, err := meter.Float64Histogram(
		"spoolman.tool.latency",
		metric.WithDescription("Tool latency in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &Observer{
		tracer:      tracer,
		invocations: invocations,
		failures:    failures,
		latency:     latency,
	}, nil
}

// NewGlobalObserver uses the globally registered meter and tracer providers.
func NewGlobalObserver() (*Observer, error) {
	return NewObserver(otel.Meter(InstrumentationName), otel.Tracer(InstrumentationName))
}

// Start opens a span for one invocation of tool. The returned function must
// be called with the invocation's outcome.
func (o *Observer) Start(ctx context.Context, tool string) (context.Context, func(error)) {
	if o == nil {
		return ctx, func(error) {}
	}

	start := time.Now()
	ctx, span := o.tracer.Start(ctx, "tool "+tool,
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(attribute.String("tool_name", tool)),
	)

	return ctx, func(err error) {
		attrs := []attribute.KeyValue{
			attribute.String("tool_name", tool),
			attribute.Bool("success", err == nil),
		}
		options := metric.WithAttributes(attrs...)

		o.invocations.Add(ctx, 1, options)
		o.latency.Record(ctx, time.Since(start).Seconds(), options)

		if err != nil {
			o.failures.Add(ctx, 1, metric.WithAttributes(attribute.String("tool_name", tool)))
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "")
		}
		span.End()
	}
}
