package oteladapters_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/log/embedded"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/AntonStoeckl/library-backend/store/oteladapters"
)

func Test_SlogBridgeLogger_AddsTraceAndSpanIDs_WhenContextCarriesSpan(t *testing.T) {
	// arrange
	var buf bytes.Buffer
	logger := oteladapters.NewSlogBridgeLoggerWithHandler(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	provider := sdktrace.NewTracerProvider()
	defer func() { _ = provider.Shutdown(context.Background()) }()
	ctx, span := provider.Tracer("test").Start(context.Background(), "store.find_book")
	defer span.End()

	// act
	logger.InfoContext(ctx, "store operation: find_book", "duration_ms", 1.5)

	// assert
	output := buf.String()
	assert.Contains(t, output, `"trace_id":"`+span.SpanContext().TraceID().String()+`"`)
	assert.Contains(t, output, `"span_id":"`+span.SpanContext().SpanID().String()+`"`)
	assert.Contains(t, output, "store operation: find_book")
}

func Test_SlogBridgeLogger_OmitsTraceIDs_WhenContextHasNoSpan(t *testing.T) {
	// arrange
	var buf bytes.Buffer
	logger := oteladapters.NewSlogBridgeLoggerWithHandler(slog.NewJSONHandler(&buf, nil))

	// act
	logger.WarnContext(context.Background(), "rollback failed")

	// assert
	assert.Contains(t, buf.String(), "rollback failed")
	assert.NotContains(t, buf.String(), "trace_id")
}

func Test_SlogBridgeLogger_DoesNotPanic_WhenUsingGlobalLoggerProvider(t *testing.T) {
	// arrange
	logger := oteladapters.NewSlogBridgeLogger("library-backend")

	// act + assert
	assert.NotPanics(t, func() {
		logger.DebugContext(context.Background(), "executed sql for: find_book")
		logger.ErrorContext(context.Background(), "database query failed", "error", "boom")
	})
}

func Test_OTelLogger_EmitsRecordWithSeverityAndAttributes(t *testing.T) {
	// arrange
	recorder := &recordingLogger{}
	logger := oteladapters.NewOTelLogger(recorder)

	// act
	logger.ErrorContext(context.Background(), "database exec failed", "operation", "insert_book", "rows", 3, "dangling")

	// assert
	require.Len(t, recorder.records, 1)
	record := recorder.records[0]
	assert.Equal(t, log.SeverityError, record.Severity())
	assert.Equal(t, "database exec failed", record.Body().AsString())

	attrs := map[string]string{}
	record.WalkAttributes(func(kv log.KeyValue) bool {
		attrs[kv.Key] = kv.Value.AsString()
		return true
	})
	assert.Equal(t, map[string]string{"operation": "insert_book", "rows": "3"}, attrs)
}

type recordingLogger struct {
	embedded.Logger
	records []log.Record
}

func (l *recordingLogger) Emit(_ context.Context, record log.Record) {
	l.records = append(l.records, record)
}

func (l *recordingLogger) Enabled(_ context.Context, _ log.EnabledParameters) bool {
	return true
}
