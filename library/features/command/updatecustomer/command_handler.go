package updatecustomer

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-backend/library/core"
	"github.com/AntonStoeckl/library-backend/library/features/command/registercustomer"
	"github.com/AntonStoeckl/library-backend/library/shell"
	"github.com/AntonStoeckl/library-backend/store"
)

// Store defines the store operations needed by the CommandHandler.
type Store interface {
	FindCustomer(ctx context.Context, customerID uuid.UUID) (core.Customer, bool, error)
	FindCustomerByEmail(ctx context.Context, email core.EmailString) (core.Customer, bool, error)
	UpdateCustomer(ctx context.Context, customer core.Customer) error
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

	switch {
	case err != nil:
		return shell.NewErrorResult(retryMetrics), err
	case decision.IsIdempotent():
		return shell.NewIdempotentResult(retryMetrics), nil
	default:
		return shell.NewSuccessResult(retryMetrics, decision.Event), nil
	}
}

func (h CommandHandler) executeCommand(ctx context.Context, command Command) (core.DecisionResult, error) {
	ctx = store.WithStrongConsistency(ctx)

	current, customerExists, err := h.store.FindCustomer(ctx, command.Customer.ID)
	if err != nil {
		return core.DecisionResult{}, err
	}

	emailTaken := false
	if command.Customer.Email != "" {
		owner, found, findErr := h.store.FindCustomerByEmail(ctx, command.Customer.Email)
		if findErr != nil {
			return core.DecisionResult{}, findErr
		}

		emailTaken = found && owner.ID != command.Customer.ID
	}

	result := Decide(State{Customer: current, CustomerExists: customerExists, EmailTaken: emailTaken}, command)

	if err = result.HasError(); err != nil || !result.HasEventToApply() {
		return result, err
	}

	err = h.store.UpdateCustomer(ctx, command.Customer)
	if errors.Is(err, store.ErrDuplicateKey) {
		return result, registercustomer.EmailTaken(command.Customer.Email)
	}

	return result, err
}
