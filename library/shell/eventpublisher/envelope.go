package eventpublisher

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/library-backend/library/core"
)

// ErrMarshalingEnvelopeFailed is returned when an event cannot be serialized.
var ErrMarshalingEnvelopeFailed = errors.New("marshaling event envelope failed")

// MessageID represents a unique message identifier.
type MessageID = string

// CausationID represents the ID of the message that caused this event.
type CausationID = string

// CorrelationID represents the ID correlating related messages, e.g. all events of one HTTP request.
type CorrelationID = string

// EventMetadata contains event tracking information.
type EventMetadata struct {
	MessageID     MessageID     `json:"messageId"`
	CausationID   CausationID   `json:"causationId"`
	CorrelationID CorrelationID `json:"correlationId"`
}

// Envelope combines a domain event with its metadata.
type Envelope struct {
	EventType  string           `json:"eventType"`
	OccurredAt time.Time        `json:"occurredAt"`
	Metadata   EventMetadata    `json:"metadata"`
	Payload    core.DomainEvent `json:"payload"`
}

type correlationIDKey struct{}

// WithCorrelationID stores the correlation id of the current request in the context.
func WithCorrelationID(ctx context.Context, correlationID CorrelationID) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, correlationID)
}

// CorrelationIDFrom returns the correlation id stored in the context, or an empty string.
func CorrelationIDFrom(ctx context.Context) CorrelationID {
	correlationID, _ := ctx.Value(correlationIDKey{}).(CorrelationID)
	return correlationID
}

// BuildEnvelope wraps the event. The message id is new, the correlation id comes from the context.
// Without a correlation id the event starts its own chain: message, causation and correlation id are equal.
func BuildEnvelope(ctx context.Context, event core.DomainEvent) Envelope {
	messageID := uuid.New().String()

	correlationID := CorrelationIDFrom(ctx)
	causationID := correlationID

	if correlationID == "" {
		correlationID = messageID
		causationID = messageID
	}

	return Envelope{
		EventType:  event.IsEventType(),
		OccurredAt: event.HasOccurredAt(),
		Metadata: EventMetadata{
			MessageID:     messageID,
			CausationID:   causationID,
			CorrelationID: correlationID,
		},
		Payload: event,
	}
}

// Marshal serializes the envelope as JSON.
func (e Envelope) Marshal() ([]byte, error) {
	body, err := jsoniter.ConfigFastest.Marshal(e)
	if err != nil {
		return nil, errors.Join(ErrMarshalingEnvelopeFailed, err)
	}

	return body, nil
}
