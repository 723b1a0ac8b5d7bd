package shell

import "time"

// HandlerResult represents the outcome of a command handler execution.
// It carries the business outcome (idempotency), the entity the command created or changed,
// and the retry metadata, so the observable wrapper can report it without knowing the handler.
type HandlerResult struct {
	// Idempotent indicates that no state change was needed.
	Idempotent bool

	// Event is the domain event that was written, nil for idempotent and failed executions.
	Event DomainEvent

	// RetryAttempts is the total number of attempts made (1 for no retries, 2+ for retries).
	RetryAttempts int

	// TotalRetryDelay is the cumulative time spent in retry backoff delays.
	TotalRetryDelay time.Duration

	// LastErrorType describes the final error: "none", "concurrency_conflict",
	// "context_canceled", "context_deadline_exceeded" or "other".
	LastErrorType string

	// RetriesExhausted is true when all attempts failed with a concurrency conflict.
	RetriesExhausted bool
}

// NewSuccessResult creates a HandlerResult for an execution that wrote event.
func NewSuccessResult(retryMetrics RetryMetrics, event DomainEvent) HandlerResult {
	result := fromRetryMetrics(retryMetrics)
	result.Event = event

	return result
}

// NewIdempotentResult creates a HandlerResult for an execution that changed nothing.
func NewIdempotentResult(retryMetrics RetryMetrics) HandlerResult {
	result := fromRetryMetrics(retryMetrics)
	result.Idempotent = true

	return result
}

// NewErrorResult creates a HandlerResult for a failed execution.
func NewErrorResult(retryMetrics RetryMetrics) HandlerResult {
	return fromRetryMetrics(retryMetrics)
}

func fromRetryMetrics(retryMetrics RetryMetrics) HandlerResult {
	return HandlerResult{
		RetryAttempts:    retryMetrics.Attempts,
		TotalRetryDelay:  retryMetrics.TotalDelay,
		LastErrorType:    retryMetrics.LastErrorType,
		RetriesExhausted: retryMetrics.RetriesExhausted,
	}
}
