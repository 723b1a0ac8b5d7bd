package registercustomer

import (
	"context"
	"errors"

	"github.com/AntonStoeckl/library-backend/library/core"
	"github.com/AntonStoeckl/library-backend/library/shell"
	"github.com/AntonStoeckl/library-backend/store"
)

// Store defines the store operations needed by the CommandHandler.
type Store interface {
	FindCustomerByEmail(ctx context.Context, email core.EmailString) (core.Customer, bool, error)
	InsertCustomer(ctx context.Context, customer core.Customer) error
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

	emailTaken := false
	if command.Customer.Email != "" {
		_, found, err := h.store.FindCustomerByEmail(ctx, command.Customer.Email)
		if err != nil {
			return core.DecisionResult{}, err
		}

		emailTaken = found
	}

	result := Decide(State{EmailTaken: emailTaken}, command)
	if err := result.HasError(); err != nil {
		return result, err
	}

	err := h.store.InsertCustomer(ctx, command.Customer)
	if errors.Is(err, store.ErrDuplicateKey) {
		return result, EmailTaken(command.Customer.Email)
	}

	return result, err
}
