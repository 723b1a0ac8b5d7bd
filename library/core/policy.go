package core

import (
	"github.com/google/uuid"
)

// Role is the access role of a User.
type Role string

const (
	// RoleLibrarian may administrate the catalog, the inventory and customers, and work the desk.
	RoleLibrarian Role = "LIBRARIAN"

	// RoleCustomer may reserve, borrow and return their own copies and manage their own profile.
	RoleCustomer Role = "CUSTOMER"
)

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	return r == RoleLibrarian || r == RoleCustomer
}

// Actor is the authenticated principal on whose behalf an operation runs.
// The zero value is the anonymous actor.
type Actor struct {
	UserID     uuid.UUID     `json:"userId"`
	Username   string        `json:"username"`
	Role       Role          `json:"role"`
	CustomerID uuid.NullUUID `json:"customerId"`
}

// ActorFromUser builds the Actor for a logged-in user.
func ActorFromUser(user User) Actor {
	return Actor{
		UserID:     user.ID,
		Username:   user.Username,
		Role:       user.Role,
		CustomerID: user.CustomerID,
	}
}

// IsAuthenticated reports whether the actor is logged in.
func (a Actor) IsAuthenticated() bool {
	return a.Role.IsValid()
}

// IsLibrarian reports whether the actor has the librarian role.
func (a Actor) IsLibrarian() bool {
	return a.Role == RoleLibrarian
}

// RequireAuthenticated allows any logged-in actor.
func RequireAuthenticated(actor Actor) error {
	if !actor.IsAuthenticated() {
		return Unauthenticated("authentication required")
	}

	return nil
}

// RequireLibrarian allows only librarians.
func RequireLibrarian(actor Actor) error {
	if err := RequireAuthenticated(actor); err != nil {
		return err
	}

	if !actor.IsLibrarian() {
		return Forbidden("librarian role required")
	}

	return nil
}

// RequireCustomerAccess allows librarians and the customer owning customerID.
func RequireCustomerAccess(actor Actor, customerID uuid.UUID) error {
	if err := RequireAuthenticated(actor); err != nil {
		return err
	}

	if actor.IsLibrarian() {
		return nil
	}

	if actor.CustomerID.Valid && actor.CustomerID.UUID == customerID {
		return nil
	}

	return Forbidden("customer %s is not accessible for user %s", customerID, actor.Username)
}

// OwnCustomerID returns the customer id of a customer actor.
// It fails for anonymous actors and for actors without a linked customer profile.
func OwnCustomerID(actor Actor) (uuid.UUID, error) {
	if err := RequireAuthenticated(actor); err != nil {
		return uuid.Nil, err
	}

	if !actor.CustomerID.Valid {
		return uuid.Nil, Forbidden("user %s has no customer profile", actor.Username)
	}

	return actor.CustomerID.UUID, nil
}
