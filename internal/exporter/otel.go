package exporter

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"odooseed/internal/infrastructure"
)

const (
	TracerName = "odooseed.exporter"
)

// ExportTracer provides OpenTelemetry instrumentation for exports
type ExportTracer struct {
	tracer  trace.Tracer
	metrics *infrastructure.ExportMetrics
}

// NewExportTracer creates a tracer backed by the given providers
func NewExportTracer(providers *infrastructure.OTelProviders) (*ExportTracer, error) {
	if providers == nil {
		return NewNoopExportTracer(), nil
	}

	metrics, err := infrastructure.CreateExportMetrics(providers.Meter)
	if err != nil {
		return nil, fmt.Errorf("failed to create export metrics: %w", err)
	}

	return &ExportTracer{
		tracer:  providers.Tracer,
		metrics: metrics,
	}, nil
}

// NewNoopExportTracer returns a tracer that records nothing
func NewNoopExportTracer() *ExportTracer {
	return &ExportTracer{tracer: tracenoop.NewTracerProvider().Tracer(TracerName)}
}

// TraceExport starts the span covering one export
func (et *ExportTracer) TraceExport(ctx context.Context, dataset, path string) (context.Context, trace.Span) {
	return et.tracer.Start(ctx, "export."+dataset,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("export.dataset", dataset),
			attribute.String("export.path", path),
		),
	)
}

// RecordExport closes the span and records metrics for the outcome
func (et *ExportTracer) RecordExport(ctx context.Context, span trace.Span, dataset string, result *Result, err error, duration time.Duration) {
	defer span.End()

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if et.metrics != nil {
			et.metrics.ErrorsTotal.Add(ctx, 1,
				metric.WithAttributes(attribute.String("dataset", dataset)))
		}
		return
	}

	span.SetAttributes(
		attribute.String("export.format", string(result.Format)),
		attribute.Int("export.rows", result.Rows),
		attribute.Int("export.columns", result.Columns),
	)
	span.SetStatus(codes.Ok, "")

	if et.metrics != nil {
		attrs := metric.WithAttributes(
			attribute.String("dataset", dataset),
			attribute.String("format", string(result.Format)),
		)
		et.metrics.RowsTotal.Add(ctx, int64(result.Rows), attrs)
		et.metrics.Duration.Record(ctx, duration.Seconds(), attrs)
	}
}
