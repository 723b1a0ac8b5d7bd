package shell_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/library-backend/library/core"
	. "github.com/AntonStoeckl/library-backend/library/shell" //nolint:revive
	"github.com/AntonStoeckl/library-backend/store"
	"github.com/AntonStoeckl/library-backend/testutil/helper"
)

func Test_StatusFromError_ClassifiesErrors(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "canceled", err: context.Canceled, expected: StatusCanceled},
		{name: "timeout", err: errors.Join(store.ErrQueryingFailed, context.DeadlineExceeded), expected: StatusTimeout},
		{name: "conflict", err: store.ErrConcurrencyConflict, expected: StatusConcurrencyConflict},
		{name: "domain error", err: core.InvalidState("copy is LOST"), expected: StatusRejected},
		{name: "technical error", err: store.ErrExecutingFailed, expected: StatusError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, StatusFromError(tc.err))
		})
	}
}

func Test_RecordCommandMetrics_RecordsRejection_WithErrorCode(t *testing.T) {
	// arrange
	metricsCollector := helper.NewMetricsCollectorSpy()

	// act
	RecordCommandMetrics(context.Background(), metricsCollector, "ReturnBookCopy", StatusRejected, time.Millisecond, "INVALID_STATE")

	// assert
	assert.True(t, metricsCollector.HasDurationRecordForMetric(CommandHandlerDurationMetric).
		WithStatus(StatusRejected).Assert())
	assert.True(t, metricsCollector.HasCounterRecordForMetric(CommandHandlerCallsMetric).
		WithLabel(LogAttrCommandType, "ReturnBookCopy").Assert())
	assert.True(t, metricsCollector.HasCounterRecordForMetric(CommandHandlerRejectedMetric).
		WithLabel(LogAttrErrorCode, "INVALID_STATE").Assert())
}

func Test_RecordQueryMetrics_IgnoresNilCollector(t *testing.T) {
	assert.NotPanics(t, func() {
		RecordQueryMetrics(context.Background(), nil, "BooksList", StatusSuccess, time.Millisecond)
	})
}

func Test_LogCommandError_LogsRejectionAtInfo(t *testing.T) {
	// arrange
	logger := helper.NewContextualLoggerSpy()

	// act
	LogCommandError(context.Background(), nil, logger, "AddBook", core.Conflict("book already exists"))
	LogCommandError(context.Background(), nil, logger, "AddBook", store.ErrExecutingFailed)

	// assert
	assert.True(t, logger.HasRecord("info", LogMsgCommandRejected))
	assert.True(t, logger.HasRecord("error", LogMsgCommandFailed))
}

func Test_FinishSpan_AddsErrorCode(t *testing.T) {
	// arrange
	tracer := helper.NewTracingCollectorSpy()
	_, span := StartCommandSpan(context.Background(), tracer, "MarkCopyLost")

	// act
	FinishSpan(tracer, span, StatusRejected, time.Millisecond, core.NotFound("copy not found"))

	// assert
	assert.True(t, tracer.HasSpanRecordForName(SpanNameCommandHandle).
		WithStatus(StatusRejected).
		WithStartAttribute(LogAttrCommandType, "MarkCopyLost").
		WithEndAttribute(LogAttrErrorCode, "NOT_FOUND").
		Assert())
}
