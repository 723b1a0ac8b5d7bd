package observable_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/library-backend/library/core"
	"github.com/AntonStoeckl/library-backend/library/shell"
	"github.com/AntonStoeckl/library-backend/library/shell/observable"
	"github.com/AntonStoeckl/library-backend/store"
	. "github.com/AntonStoeckl/library-backend/testutil/helper" //nolint:revive
)

type mockQuery struct{ Term string }

func (mockQuery) QueryType() string { return "TestQuery" }

type mockQueryHandler struct {
	result []string
	err    error
}

func (h mockQueryHandler) Handle(_ context.Context, _ mockQuery) ([]string, error) {
	return h.result, h.err
}

func Test_QueryWrapper_Handle_RecordsSuccess(t *testing.T) {
	// arrange
	metricsCollector := NewMetricsCollectorSpy()
	tracingCollector := NewTracingCollectorSpy()
	logger := NewContextualLoggerSpy()

	wrapper, err := observable.NewQueryWrapper[mockQuery, []string](
		mockQueryHandler{result: []string{"a", "b"}},
		observable.WithQueryMetrics[mockQuery, []string](metricsCollector),
		observable.WithQueryTracing[mockQuery, []string](tracingCollector),
		observable.WithQueryContextualLogging[mockQuery, []string](logger),
	)
	assert.NoError(t, err)

	// act
	result, err := wrapper.Handle(context.Background(), mockQuery{Term: "go"})

	// assert
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, result)
	assert.True(t, metricsCollector.HasDurationRecordForMetric(shell.QueryHandlerDurationMetric).
		WithLabel(shell.LogAttrQueryType, "TestQuery").
		WithStatus(shell.StatusSuccess).
		Assert())
	assert.True(t, tracingCollector.HasSpanRecordForName(shell.SpanNameQueryHandle).
		WithStatus(shell.StatusSuccess).
		Assert())
	assert.True(t, logger.HasRecord("info", shell.LogMsgQueryCompleted))
}

func Test_QueryWrapper_Handle_RecordsRejection_WhenNotFound(t *testing.T) {
	// arrange
	metricsCollector := NewMetricsCollectorSpy()
	logger := NewContextualLoggerSpy()

	wrapper, err := observable.NewQueryWrapper[mockQuery, []string](
		mockQueryHandler{err: core.NotFound("book not found")},
		observable.WithQueryMetrics[mockQuery, []string](metricsCollector),
		observable.WithQueryContextualLogging[mockQuery, []string](logger),
	)
	assert.NoError(t, err)

	// act
	_, err = wrapper.Handle(context.Background(), mockQuery{})

	// assert
	assert.ErrorIs(t, err, core.ErrNotFound)
	assert.True(t, metricsCollector.HasCounterRecordForMetric(shell.QueryHandlerCallsMetric).
		WithStatus(shell.StatusRejected).
		Assert())
	assert.True(t, logger.HasRecord("info", shell.LogMsgQueryRejected))
}

func Test_QueryWrapper_Handle_RecordsTimeout(t *testing.T) {
	// arrange
	metricsCollector := NewMetricsCollectorSpy()
	logger := NewContextualLoggerSpy()

	wrapper, err := observable.NewQueryWrapper[mockQuery, []string](
		mockQueryHandler{err: errors.Join(store.ErrQueryingFailed, context.DeadlineExceeded)},
		observable.WithQueryMetrics[mockQuery, []string](metricsCollector),
		observable.WithQueryContextualLogging[mockQuery, []string](logger),
	)
	assert.NoError(t, err)

	// act
	_, err = wrapper.Handle(context.Background(), mockQuery{})

	// assert
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.True(t, metricsCollector.HasCounterRecordForMetric(shell.QueryHandlerTimeoutMetric).Assert())
	assert.True(t, logger.HasRecord("error", shell.LogMsgQueryFailed))
}
