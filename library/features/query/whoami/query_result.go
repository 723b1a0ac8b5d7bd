package whoami

import (
	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-backend/library/core"
)

// Identity represents the answer to who the caller is.
type Identity struct {
	Authenticated bool       `json:"authenticated"`
	UserID        *uuid.UUID `json:"userId,omitempty"`
	Username      string     `json:"username,omitempty"`
	Role          core.Role  `json:"role,omitempty"`
	CustomerID    *uuid.UUID `json:"customerId,omitempty"`
}

// Anonymous is the identity of a caller without a valid session.
func Anonymous() Identity {
	return Identity{}
}
