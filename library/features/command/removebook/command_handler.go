package removebook

import (
	"context"
	"errors"

	"github.com/AntonStoeckl/library-backend/library/core"
	"github.com/AntonStoeckl/library-backend/library/shell"
	"github.com/AntonStoeckl/library-backend/store"
)

// Store defines the store operations needed by the CommandHandler.
type Store interface {
	FindBook(ctx context.Context, isbn core.ISBNString) (core.Book, bool, error)
	CountCopies(ctx context.Context, isbn core.ISBNString) (int, error)
	DeleteBook(ctx context.Context, isbn core.ISBNString) error
}

// CommandHandler orchestrates the command processing workflow: Load -> Decide -> Write, with retry.
type CommandHandler struct {
	store        Store
	retryOptions []shell.RetryOption
}

// Option configures a CommandHandler.
type Option func(*CommandHandler)

// WithRetryOptions sets a custom retry configuration for the handler.
func WithRetryOptions(opts ...shell.RetryOption) Option {
	return func(h *CommandHandler) {
		h.retryOptions = opts
	}
}

// NewCommandHandler creates a new CommandHandler with optional configuration.
func NewCommandHandler(store Store, opts ...Option) CommandHandler {
	handler := CommandHandler{store: store}

	for _, opt := range opts {
		opt(&handler)
	}

	return handler
}

// Handle validates the command and executes it with retry on concurrency conflicts.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	if err := command.Validate(); err != nil {
		return shell.NewErrorResult(shell.RetryMetrics{}), err
	}

	var decision core.DecisionResult

	retryMetrics, err := shell.RetryWithExponentialBackoff(ctx, func(retryCtx context.Context) error {
		var execErr error
		decision, execErr = h.executeCommand(retryCtx, command)

		return execErr
	}, h.retryOptions...)

	if err != nil {
		return shell.NewErrorResult(retryMetrics), err
	}

	return shell.NewSuccessResult(retryMetrics, decision.Event), nil
}

func (h CommandHandler) executeCommand(ctx context.Context, command Command) (core.DecisionResult, error) {
	ctx = store.WithStrongConsistency(ctx)

	_, bookExists, err := h.store.FindBook(ctx, command.ISBN)
	if err != nil {
		return core.DecisionResult{}, err
	}

	copyCount := 0
	if bookExists {
		if copyCount, err = h.store.CountCopies(ctx, command.ISBN); err != nil {
			return core.DecisionResult{}, err
		}
	}

	result := Decide(State{BookExists: bookExists, CopyCount: copyCount}, command)
	if err = result.HasError(); err != nil {
		return result, err
	}

	err = h.store.DeleteBook(ctx, command.ISBN)
	if errors.Is(err, store.ErrReferenceViolation) {
		// copies were added after the count
		return result, core.Conflict("book %s still has copies", command.ISBN)
	}

	return result, err
}
