// Package observability wires structured logging, tracing, and metrics for
// the service. Every module receives its components from here rather than
// constructing its own.
package observability

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// Config configures the observability stack.
type Config struct {
	ServiceName    string
	Environment    string
	Version        string
	MetricsAddress string
	OTLPEndpoint   string
	OTLPInsecure   bool
	SampleRate     float64
}

// Observability bundles the logger, tracer, and metrics registry handed to
// modules at startup.
type Observability struct {
	Logger   *slog.Logger
	Registry *prometheus.Registry
	Metrics  OperationMetrics
	Tracer   trace.Tracer

	tracerProvider *sdktrace.TracerProvider
}

// Init builds the observability stack. Tracing is disabled (noop) when no
// OTLP endpoint is configured; metrics are always registered, the HTTP
// exposition is only started when a metrics address is set (see Server).
func Init(ctx context.Context, cfg Config) (*Observability, error) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})).With(
		slog.String("service", cfg.ServiceName),
		slog.String("env", cfg.Environment),
	)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics, err := NewPrometheusOperationMetrics(registry, cfg.ServiceName)
	if err != nil {
		return nil, fmt.Errorf("failed to build operation metrics: %w", err)
	}

	obs := &Observability{
		Logger:   logger,
		Registry: registry,
		Metrics:  metrics,
	}

	if cfg.OTLPEndpoint == "" {
		obs.Tracer = tracenoop.NewTracerProvider().Tracer(cfg.ServiceName)
		return obs, nil
	}

	opts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(cfg.OTLPEndpoint)}
	if cfg.OTLPInsecure {
		opts = append(opts, otlptracegrpc.WithInsecure())
	}
	exporter, err := otlptracegrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP trace exporter: %w", err)
	}

	res, err := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.ServiceVersion(cfg.Version),
		semconv.DeploymentEnvironment(cfg.Environment),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to build otel resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SampleRate))),
	)
	otel.SetTracerProvider(tp)

	obs.tracerProvider = tp
	obs.Tracer = tp.Tracer(cfg.ServiceName)
	return obs, nil
}

// Shutdown flushes and stops the tracer provider.
func (o *Observability) Shutdown(ctx context.Context) error {
	if o.tracerProvider == nil {
		return nil
	}
	return o.tracerProvider.Shutdown(ctx)
}
