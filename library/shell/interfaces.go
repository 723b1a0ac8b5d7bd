package shell

import (
	"context"

	"github.com/AntonStoeckl/library-backend/library/core"
)

// DomainEvent is re-exported for the handler results.
type DomainEvent = core.DomainEvent

// Command is implemented by all command types. CommandType names the command in
// metrics, spans and logs and must work on the zero value.
type Command interface {
	CommandType() string
}

// Query is implemented by all query types. QueryType must work on the zero value.
type Query interface {
	QueryType() string
}

// CommandHandler processes a command: read the current state, decide, write conditionally.
// Implementations contain no observability code, the observable.CommandWrapper adds it.
type CommandHandler[C Command] interface {
	Handle(ctx context.Context, command C) (HandlerResult, error)
}

// QueryHandler answers a query with a read model.
type QueryHandler[Q Query, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}

// EventPublisher announces written domain events to other systems.
// Publishing happens after the write, a failure must not undo the command.
type EventPublisher interface {
	Publish(ctx context.Context, event core.DomainEvent) error
}
