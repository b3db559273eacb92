package observability

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"
)

const (
	// envOTLPEndpoint is the standard OTel env var naming the collector.
	envOTLPEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"

	// envOTLPTracesEndpoint overrides envOTLPEndpoint for traces only.
	envOTLPTracesEndpoint = "OTEL_EXPORTER_OTLP_TRACES_ENDPOINT"

	defaultShutdownTimeout = 5 * time.Second
)

// Config holds tracing configuration.
type Config struct {
	// ServiceName is the OTel resource service name.
	ServiceName string

	// ServiceVersion is the version of the running binary.
	ServiceVersion string

	// OTLPEndpoint enables OTLP/gRPC export when non-empty. The exporter reads
	// the address, headers and TLS settings from the standard OTEL_EXPORTER_OTLP_* variables.
	OTLPEndpoint string

	// Exporter, when set, receives every span synchronously instead of OTLP.
	Exporter sdktrace.SpanExporter

	// ShutdownTimeout bounds the final flush. Zero uses a 5s default.
	ShutdownTimeout time.Duration
}

// ConfigFromEnv builds a Config from the standard OTel environment variables.
func ConfigFromEnv(serviceVersion string) Config {
	endpoint := os.Getenv(envOTLPTracesEndpoint)
	if endpoint == "" {
		endpoint = os.Getenv(envOTLPEndpoint)
	}

	return Config{
		ServiceName:    ServiceName,
		ServiceVersion: serviceVersion,
		OTLPEndpoint:   endpoint,
	}
}

// Providers holds the installed tracing providers.
type Providers struct {
	// TracerProvider is also installed as the otel global.
	TracerProvider trace.TracerProvider

	// Shutdown flushes pending spans and releases the exporter.
	// Must be called before process exit.
	Shutdown func(ctx context.Context) error
}

// Init installs the global tracer provider and propagator.
// Without an endpoint or exporter a no-op provider is used with zero export overhead.
func Init(cfg Config) (Providers, error) {
	if cfg.ServiceName == "" {
		cfg.ServiceName = ServiceName
	}

	tp, shutdown, err := buildTracerProvider(context.Background(), cfg)
	if err != nil {
		return Providers{}, err
	}

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	timeout := cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}

	return Providers{
		TracerProvider: tp,
		Shutdown: func(ctx context.Context) error {
			deadlineCtx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			return shutdown(deadlineCtx)
		},
	}, nil
}

func noopShutdown(_ context.Context) error { return nil }

func buildTracerProvider(
	ctx context.Context, cfg Config,
) (trace.TracerProvider, func(context.Context) error, error) {
	if cfg.OTLPEndpoint == "" && cfg.Exporter == nil {
		return nooptrace.NewTracerProvider(), noopShutdown, nil
	}

	res, err := buildResource(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// The sampler is left to the SDK so OTEL_TRACES_SAMPLER is honored.
	opts := []sdktrace.TracerProviderOption{sdktrace.WithResource(res)}

	if cfg.Exporter != nil {
		opts = append(opts, sdktrace.WithSyncer(cfg.Exporter))
	}

	if cfg.OTLPEndpoint != "" {
		exporter, expErr := otlptracegrpc.New(ctx)
		if expErr != nil {
			return nil, nil, fmt.Errorf("create trace exporter: %w", expErr)
		}

		opts = append(opts, sdktrace.WithBatcher(exporter))
	}

	tp := sdktrace.NewTracerProvider(opts...)

	return tp, tp.Shutdown, nil
}

func buildResource(ctx context.Context, cfg Config) (*resource.Resource, error) {
	attrs := []resource.Option{
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	}

	if cfg.ServiceVersion != "" {
		attrs = append(attrs, resource.WithAttributes(semconv.ServiceVersion(cfg.ServiceVersion)))
	}

	res, err := resource.New(ctx, attrs...)
	if err != nil && !errors.Is(err, resource.ErrPartialResource) {
		return nil, fmt.Errorf("build otel resource: %w", err)
	}

	return res, nil
}
