package core

import (
	"time"

	"github.com/google/uuid"
)

// UserRegisteredEventType is the event type identifier.
const UserRegisteredEventType = "UserRegistered"

// UserRegistered represents when a login account was created.
// CustomerID is set for customer accounts, which get a customer profile provisioned with them.
type UserRegistered struct {
	UserID     uuid.UUID
	Username   string
	Role       Role
	CustomerID uuid.NullUUID
	OccurredAt OccurredAt
}

// BuildUserRegistered creates a new UserRegistered event.
func BuildUserRegistered(user User, occurredAt time.Time) UserRegistered {
	return UserRegistered{
		UserID:     user.ID,
		Username:   user.Username,
		Role:       user.Role,
		CustomerID: user.CustomerID,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e UserRegistered) IsEventType() string {
	return UserRegisteredEventType
}

// HasOccurredAt returns when this event occurred.
func (e UserRegistered) HasOccurredAt() time.Time {
	return e.OccurredAt
}
