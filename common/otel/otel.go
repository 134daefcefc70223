// Package otel wires OTLP trace and log export for the server. Everything
// here is optional: with no collector endpoint configured, Setup returns
// nil and the process runs untraced.
package otel

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/propagation"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"taskboard.app/server/core/config"
)

// Telemetry owns the SDK providers created by Setup so main can flush
// them on shutdown.
type Telemetry struct {
	traces *sdktrace.TracerProvider
	logs   *sdklog.LoggerProvider
}

// Shutdown flushes both providers. Callers should bound ctx; exporters
// block until their queues drain.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	var errs []error
	if t.traces != nil {
		errs = append(errs, t.traces.Shutdown(ctx))
	}
	if t.logs != nil {
		errs = append(errs, t.logs.Shutdown(ctx))
	}
	return errors.Join(errs...)
}

// Setup installs global tracer and logger providers exporting over OTLP
// HTTP. It returns (nil, nil) when telemetry is not configured.
func Setup(ctx context.Context, cfg config.OTelConfig) (*Telemetry, error) {
	if !cfg.Enabled() {
		return nil, nil
	}

	res, err := newResource(cfg)
	if err != nil {
		return nil, err
	}
	headers := parseHeaders(cfg.Headers)

	traces, err := newTracerProvider(ctx, cfg, res, headers)
	if err != nil {
		return nil, err
	}
	otel.SetTracerProvider(traces)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	logs, err := newLoggerProvider(ctx, cfg, res, headers)
	if err != nil {
		return nil, err
	}
	global.SetLoggerProvider(logs)

	return &Telemetry{traces: traces, logs: logs}, nil
}

func newResource(cfg config.OTelConfig) (*resource.Resource, error) {
	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(cfg.ServiceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("building otel resource: %w", err)
	}
	return res, nil
}

func newTracerProvider(ctx context.Context, cfg config.OTelConfig, res *resource.Resource, headers map[string]string) (*sdktrace.TracerProvider, error) {
	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(cfg.Endpoint+"/v1/traces"),
		otlptracehttp.WithHeaders(headers),
	)
	if err != nil {
		return nil, fmt.Errorf("building trace exporter: %w", err)
	}
	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	), nil
}

func newLoggerProvider(ctx context.Context, cfg config.OTelConfig, res *resource.Resource, headers map[string]string) (*sdklog.LoggerProvider, error) {
	exporter, err := otlploghttp.New(ctx,
		otlploghttp.WithEndpointURL(cfg.Endpoint+"/v1/logs"),
		otlploghttp.WithHeaders(headers),
	)
	if err != nil {
		return nil, fmt.Errorf("building log exporter: %w", err)
	}
	return sdklog.NewLoggerProvider(
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter)),
		sdklog.WithResource(res),
	), nil
}

// parseHeaders reads the W3C-style "k1=v1,k2=v2" header list used by
// OTEL_EXPORTER_OTLP_HEADERS. Malformed pairs are skipped.
func parseHeaders(s string) map[string]string {
	headers := make(map[string]string)
	for _, pair := range strings.Split(s, ",") {
		if key, value, ok := strings.Cut(pair, "="); ok {
			headers[strings.TrimSpace(key)] = strings.TrimSpace(value)
		}
	}
	return headers
}
