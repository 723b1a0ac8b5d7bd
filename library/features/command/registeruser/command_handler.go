package registeruser

import (
	"context"
	"errors"

	"github.com/AntonStoeckl/library-backend/library/core"
	"github.com/AntonStoeckl/library-backend/library/shell"
	"github.com/AntonStoeckl/library-backend/store"
)

// Store defines the store operations needed by the CommandHandler.
type Store interface {
	FindUserByUsername(ctx context.Context, username string) (core.User, bool, error)
	FindCustomerByEmail(ctx context.Context, email core.EmailString) (core.Customer, bool, error)
	InsertUser(ctx context.Context, user core.User, customer *core.Customer) error
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

	_, usernameTaken, err := h.store.FindUserByUsername(ctx, command.User.Username)
	if err != nil {
		return core.DecisionResult{}, err
	}

	emailTaken := false
	if command.User.Role == core.RoleCustomer && command.Customer.Email != "" {
		if _, emailTaken, err = h.store.FindCustomerByEmail(ctx, command.Customer.Email); err != nil {
			return core.DecisionResult{}, err
		}
	}

	result := Decide(State{UsernameTaken: usernameTaken, EmailTaken: emailTaken}, command)
	if err = result.HasError(); err != nil {
		return result, err
	}

	var customer *core.Customer
	if command.User.CustomerID.Valid {
		customer = &command.Customer
	}

	err = h.store.InsertUser(ctx, command.User, customer)
	if errors.Is(err, store.ErrDuplicateKey) {
		// lost a race for the username or the email, load again to tell which
		return result, errors.Join(store.ErrConcurrencyConflict, err)
	}

	return result, err
}
