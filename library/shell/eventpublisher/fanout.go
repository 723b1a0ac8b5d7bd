package eventpublisher

import (
	"context"
	"errors"

	"github.com/AntonStoeckl/library-backend/library/core"
	"github.com/AntonStoeckl/library-backend/library/shell"
)

// Noop discards all events. It is used when no broker is configured.
type Noop struct{}

// Publish does nothing.
func (Noop) Publish(context.Context, core.DomainEvent) error { return nil }

// Fanout forwards every event to all publishers, even if one of them fails.
type Fanout []shell.EventPublisher

// Publish forwards the event and joins the errors.
func (f Fanout) Publish(ctx context.Context, event core.DomainEvent) error {
	var errs []error

	for _, publisher := range f {
		if err := publisher.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
