package observability_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/Sumatoshi-tech/depusage/pkg/observability"
)

// restoreGlobals puts back the otel globals Init replaces.
func restoreGlobals(t *testing.T) {
	t.Helper()

	prevProvider := otel.GetTracerProvider()
	prevPropagator := otel.GetTextMapPropagator()

	t.Cleanup(func() {
		otel.SetTracerProvider(prevProvider)
		otel.SetTextMapPropagator(prevPropagator)
	})
}

func TestInit_NoopWhenNoEndpoint(t *testing.T) {
	restoreGlobals(t)

	providers, err := observability.Init(observability.Config{})
	require.NoError(t, err)

	_, span := otel.Tracer("test").Start(context.Background(), "op")
	span.End()

	assert.False(t, span.SpanContext().IsValid())
	assert.NoError(t, providers.Shutdown(context.Background()))
}

func TestInit_ExporterRecordsSpans(t *testing.T) {
	restoreGlobals(t)

	exporter := tracetest.NewInMemoryExporter()

	providers, err := observability.Init(observability.Config{
		ServiceVersion: "1.2.3",
		Exporter:       exporter,
	})
	require.NoError(t, err)

	var buf bytes.Buffer

	logger := observability.NewLogger(&buf, observability.LoggerConfig{Level: slog.LevelInfo, JSON: true})

	ctx, span := otel.Tracer("test").Start(context.Background(), "depusage.op")
	logger.InfoContext(ctx, "inside span")
	span.End()

	require.NoError(t, providers.Shutdown(context.Background()))

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "depusage.op", spans[0].Name)
	assert.Contains(t, spans[0].Resource.Attributes(), attribute.String("service.name", "depusage"))
	assert.Contains(t, spans[0].Resource.Attributes(), attribute.String("service.version", "1.2.3"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, spans[0].SpanContext.TraceID().String(), record["trace_id"])
	assert.Equal(t, spans[0].SpanContext.SpanID().String(), record["span_id"])
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://collector:4317")
	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", "")

	cfg := observability.ConfigFromEnv("v0.1.0")

	assert.Equal(t, "http://collector:4317", cfg.OTLPEndpoint)
	assert.Equal(t, "depusage", cfg.ServiceName)
	assert.Equal(t, "v0.1.0", cfg.ServiceVersion)

	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", "http://traces:4317")

	assert.Equal(t, "http://traces:4317", observability.ConfigFromEnv("").OTLPEndpoint)
}

func TestConfigFromEnv_Unset(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", "")

	assert.Empty(t, observability.ConfigFromEnv("").OTLPEndpoint)
}
