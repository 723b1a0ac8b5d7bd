package cancelreservation

import (
	"context"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-backend/library/core"
	"github.com/AntonStoeckl/library-backend/library/shell"
	"github.com/AntonStoeckl/library-backend/store"
)

// Store defines the store operations needed by the CommandHandler.
type Store interface {
	FindCopy(ctx context.Context, copyID uuid.UUID) (core.Copy, bool, error)
	TransitionCopy(ctx context.Context, current core.Copy, next core.Copy) error
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

	current, copyExists, err := h.store.FindCopy(ctx, command.CopyID)
	if err != nil {
		return core.DecisionResult{}, err
	}

	result := Decide(State{Copy: current, CopyExists: copyExists}, command)

	if err = result.HasError(); err != nil {
		return result, err
	}

	return result, h.store.TransitionCopy(ctx, current, core.EvolveCopy(current, result.Event))
}
