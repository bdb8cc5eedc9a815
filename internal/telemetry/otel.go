package telemetry

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/blaisecz/sleep-analysis/internal/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const langfuseTracesPath = "/api/public/otel/v1/traces"

// Export is the resolved OTLP destination.
type Export struct {
	EndpointURL string
	Headers     map[string]string
	Attributes  []attribute.KeyValue
}

// ResolveExport picks the OTLP destination from cfg. An explicit endpoint
// wins over Langfuse credentials. ok is false when neither is configured.
func ResolveExport(cfg *config.Config) (Export, bool) {
	if cfg.OTLPEndpoint != "" {
		endpoint := strings.TrimRight(cfg.OTLPEndpoint, "/")
		if !strings.HasSuffix(endpoint, "/v1/traces") {
			endpoint += "/v1/traces"
		}
		return Export{EndpointURL: endpoint, Headers: cfg.OTLPHeaders}, true
	}

	if cfg.LangfuseBaseURL == "" || cfg.LangfusePublicKey == "" || cfg.LangfuseSecretKey == "" {
		return Export{}, false
	}

	// Basic auth header from Langfuse public/secret keys
	creds := cfg.LangfusePublicKey + ":" + cfg.LangfuseSecretKey
	return Export{
		EndpointURL: strings.TrimRight(cfg.LangfuseBaseURL, "/") + langfuseTracesPath,
		Headers: map[string]string{
			"Authorization": "Basic " + base64.StdEncoding.EncodeToString([]byte(creds)),
		},
		Attributes: []attribute.KeyValue{
			attribute.String("langfuse.environment", cfg.LangfuseEnv),
		},
	}, true
}

// InitTracer initializes the global OpenTelemetry tracer provider.
// Without an export destination this is a no-op.
func InitTracer(ctx context.Context, cfg *config.Config) (func(context.Context) error, error) {
	export, ok := ResolveExport(cfg)
	if !ok {
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := otlptracehttp.New(
		ctx,
		otlptracehttp.WithEndpointURL(export.EndpointURL),
		otlptracehttp.WithHeaders(export.Headers),
	)
	if err != nil {
		return nil, err
	}

	attrs := append([]attribute.KeyValue{attribute.String("service.name", cfg.OTelServiceName)}, export.Attributes...)
	res, err := resource.New(ctx, resource.WithAttributes(attrs...))
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)

	return tp.Shutdown, nil
}
