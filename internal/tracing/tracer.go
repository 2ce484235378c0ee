// Package tracing wires the OpenTelemetry provider used across the UEX
// client and HTTP server.
package tracing

import (
	"context"
	"fmt"
	"path/filepath"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/corsair-sc/corsair/internal/config"
)

const defaultServiceName = "corsair"

// Provider manages the OpenTelemetry tracer provider lifecycle.
type Provider struct {
	provider *sdktrace.TracerProvider
	tracer   trace.Tracer
	enabled  bool
}

// NewProvider builds a trace provider from config. When tracing is disabled
// a no-op provider with zero overhead is returned.
func NewProvider(cfg config.TracingConfig) (*Provider, error) {
	if !cfg.Enabled {
		return &Provider{
			tracer:  noop.NewTracerProvider().Tracer("noop"),
			enabled: false,
		}, nil
	}

	exporter, err := newExporter(cfg)
	if err != nil {
		return nil, err
	}

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = defaultServiceName
	}

	sampleRate := cfg.SampleRate
	if sampleRate <= 0 {
		sampleRate = 1.0
	}

	// NewSchemaless avoids schema version conflicts with resource.Default().
	res := resource.NewSchemaless(attribute.String("service.name", serviceName))

	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(sampleRate))),
	}
	if exporter != nil {
		opts = append(opts, sdktrace.WithBatcher(exporter))
	}

	provider := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(provider)

	return &Provider{
		provider: provider,
		tracer:   provider.Tracer(serviceName),
		enabled:  true,
	}, nil
}

func newExporter(cfg config.TracingConfig) (sdktrace.SpanExporter, error) {
	switch cfg.Exporter {
	case "file":
		path := cfg.FilePath
		if path == "" {
			path = filepath.Join(config.UserConfigDir(), "traces", "traces.jsonl")
		}
		exporter, err := NewFileExporter(path)
		if err != nil {
			return nil, fmt.Errorf("create file exporter: %w", err)
		}
		return exporter, nil
	case "stdout":
		exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
		if err != nil {
			return nil, fmt.Errorf("create stdout exporter: %w", err)
		}
		return exporter, nil
	case "otlp":
		endpoint := cfg.OTLPEndpoint
		if endpoint == "" {
			endpoint = "localhost:4317"
		}
		exporter, err := otlptracegrpc.New(
			context.Background(),
			otlptracegrpc.WithEndpoint(endpoint),
			otlptracegrpc.WithInsecure(),
		)
		if err != nil {
			return nil, fmt.Errorf("create otlp exporter: %w", err)
		}
		return exporter, nil
	case "none", "":
		// Tracing stays enabled for internal correlation, nothing exported.
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported exporter type: %s", cfg.Exporter)
	}
}

// Tracer returns the configured tracer. Safe to use even when tracing is
// disabled (no-op tracer).
func (p *Provider) Tracer() trace.Tracer {
	return p.tracer
}

// Enabled reports whether spans are actually recorded.
func (p *Provider) Enabled() bool {
	return p.enabled
}

// Shutdown flushes pending spans. Call on application exit.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p.provider != nil {
		return p.provider.Shutdown(ctx)
	}
	return nil
}
