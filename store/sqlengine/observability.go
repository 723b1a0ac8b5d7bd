package sqlengine

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/AntonStoeckl/library-backend/store"
)

const (
	metricOperationDuration    = "library_store_operation_duration_seconds"
	metricDatabaseErrors       = "library_store_database_errors_total"
	metricConcurrencyConflicts = "library_store_concurrency_conflicts_total"
	metricRowsReturned         = "library_store_rows_returned"

	spanNamePrefix = "store."

	spanAttrOperation  = "operation"
	spanAttrErrorType  = "error_type"
	spanAttrDurationMS = "duration_ms"
	spanAttrDialect    = "db.dialect"

	labelStatus = "status"

	statusSuccess = "success"
	statusError   = "error"

	errorTypeConcurrencyConflict = "concurrency_conflict"
	errorTypeDuplicateKey        = "duplicate_key"
	errorTypeReferenceViolation  = "reference_violation"
	errorTypeBuildQuery          = "build_query"
	errorTypeRowScan             = "row_scan"
	errorTypeTransaction         = "transaction"
	errorTypeDatabase            = "database"
)

// Operation names, used as span suffix and metric label.
const (
	operationFindBook           = "find_book"
	operationSearchBooks        = "search_books"
	operationInsertBook         = "insert_book"
	operationReplaceBook        = "replace_book"
	operationDeleteBook         = "delete_book"
	operationCountCopies        = "count_copies"
	operationInsertCopies       = "insert_copies"
	operationFindCopy           = "find_copy"
	operationFirstAvailableCopy = "first_available_copy"
	operationListCopies         = "list_copies"
	operationCopiesHeldBy       = "copies_held_by"
	operationTransitionCopy     = "transition_copy"
	operationFindCustomer       = "find_customer"
	operationFindCustomerEmail  = "find_customer_by_email"
	operationListCustomers      = "list_customers"
	operationInsertCustomer     = "insert_customer"
	operationUpdateCustomer     = "update_customer"
	operationFindUser           = "find_user"
	operationFindUserByUsername = "find_user_by_username"
	operationInsertUser         = "insert_user"
	operationMigrate            = "migrate"
)

// observe starts the span and the timer of a repository operation.
// The returned function finishes both and records the outcome.
func (r *Repository) observe(ctx context.Context, operation string) (context.Context, func(err error)) {
	start := time.Now()
	ctx, span := r.startTraceSpan(ctx, operation)

	return ctx, func(err error) {
		duration := time.Since(start)

		if err != nil {
			errType := errorType(err)
			r.recordDurationMetrics(ctx, duration, operation, statusError)

			if errType == errorTypeConcurrencyConflict {
				r.recordConcurrencyConflictMetrics(ctx, operation)
			} else {
				r.recordErrorMetrics(ctx, operation, errType)
			}

			r.finishTraceSpan(span, statusError, map[string]string{
				spanAttrErrorType:  errType,
				spanAttrDurationMS: fmt.Sprintf("%.2f", r.toMilliseconds(duration)),
			})

			return
		}

		r.recordDurationMetrics(ctx, duration, operation, statusSuccess)
		r.finishTraceSpan(span, statusSuccess, map[string]string{
			spanAttrDurationMS: fmt.Sprintf("%.2f", r.toMilliseconds(duration)),
		})
		r.logOperation(ctx, operation, logAttrDurationMS, r.toMilliseconds(duration))
	}
}

// logQueryWithDuration logs SQL statements with execution time at debug level.
func (r *Repository) logQueryWithDuration(
	ctx context.Context,
	sqlQuery string,
	action string,
	duration time.Duration,
) {
	if r.logger != nil {
		r.logger.Debug(logMsgSQLExecuted+action, logAttrDurationMS, r.toMilliseconds(duration), logAttrQuery, sqlQuery)
	}

	if r.contextualLogger != nil {
		r.contextualLogger.DebugContext(ctx, logMsgSQLExecuted+action, logAttrDurationMS, r.toMilliseconds(duration), logAttrQuery, sqlQuery)
	}
}

// logOperation logs operational information at info level.
func (r *Repository) logOperation(ctx context.Context, action string, args ...any) {
	if r.logger != nil {
		r.logger.Info(logMsgOperation+action, args...)
	}

	if r.contextualLogger != nil {
		r.contextualLogger.InfoContext(ctx, logMsgOperation+action, args...)
	}
}

func (r *Repository) logWarn(message string, args ...any) {
	if r.logger != nil {
		r.logger.Warn(message, args...)
	}
}

// logErrorContext logs error information at error level.
func (r *Repository) logErrorContext(
	ctx context.Context,
	message string,
	err error,
	args ...any,
) {

	allArgs := []any{logAttrError, err.Error()}
	allArgs = append(allArgs, args...)

	if r.logger != nil {
		r.logger.Error(message, allArgs...)
	}

	if r.contextualLogger != nil {
		r.contextualLogger.ErrorContext(ctx, message, allArgs...)
	}
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func (r *Repository) toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}

func (r *Repository) recordDurationMetrics(
	ctx context.Context,
	duration time.Duration,
	operation, status string,
) {
	if r.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		spanAttrOperation: operation,
		labelStatus:       status,
	}

	if contextualCollector, ok := r.metricsCollector.(store.ContextualMetricsCollector); ok {
		contextualCollector.RecordDurationContext(ctx, metricOperationDuration, duration, labels)
		return
	}

	r.metricsCollector.RecordDuration(metricOperationDuration, duration, labels)
}

func (r *Repository) recordRowsReturned(ctx context.Context, operation string, rowCount int) {
	if r.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		spanAttrOperation: operation,
		labelStatus:       statusSuccess,
	}

	if contextualCollector, ok := r.metricsCollector.(store.ContextualMetricsCollector); ok {
		contextualCollector.RecordValueContext(ctx, metricRowsReturned, float64(rowCount), labels)
		return
	}

	r.metricsCollector.RecordValue(metricRowsReturned, float64(rowCount), labels)
}

func (r *Repository) recordErrorMetrics(ctx context.Context, operation, errType string) {
	if r.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		spanAttrOperation: operation,
		labelStatus:       statusError,
		spanAttrErrorType: errType,
	}

	if contextualCollector, ok := r.metricsCollector.(store.ContextualMetricsCollector); ok {
		contextualCollector.IncrementCounterContext(ctx, metricDatabaseErrors, labels)
		return
	}

	r.metricsCollector.IncrementCounter(metricDatabaseErrors, labels)
}

func (r *Repository) recordConcurrencyConflictMetrics(ctx context.Context, operation string) {
	if r.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		spanAttrOperation: operation,
		"conflict_type":   "concurrency",
	}

	if contextualCollector, ok := r.metricsCollector.(store.ContextualMetricsCollector); ok {
		contextualCollector.IncrementCounterContext(ctx, metricConcurrencyConflicts, labels)
		return
	}

	r.metricsCollector.IncrementCounter(metricConcurrencyConflicts, labels)
}

func (r *Repository) startTraceSpan(ctx context.Context, operation string) (context.Context, store.SpanContext) {
	if r.tracingCollector == nil {
		return ctx, nil
	}

	return r.tracingCollector.StartSpan(ctx, spanNamePrefix+operation, map[string]string{
		spanAttrOperation: operation,
		spanAttrDialect:   r.dialect,
	})
}

func (r *Repository) finishTraceSpan(span store.SpanContext, status string, attrs map[string]string) {
	if r.tracingCollector == nil || span == nil {
		return
	}

	r.tracingCollector.FinishSpan(span, status, attrs)
}
