package registeruser

import (
	"github.com/AntonStoeckl/library-backend/library/core"
	"github.com/AntonStoeckl/library-backend/library/features/command/registercustomer"
)

// State is the current state loaded for a decision.
type State struct {
	UsernameTaken bool
	EmailTaken    bool
}

// Decide implements the business logic to determine whether a user can be registered.
//
// Business Rules:
//
//	GIVEN: The username is free (and for customers, the email is free)
//	WHEN: RegisterUser command is received
//	THEN: UserRegistered event is generated, customers get a linked profile
//	ERROR: Forbidden if a LIBRARIAN account is requested by anyone but a librarian
//	ERROR: Conflict if the username is taken
//	ERROR: Conflict if the email belongs to another customer
func Decide(s State, command Command) core.DecisionResult {
	if command.User.Role == core.RoleLibrarian {
		if err := core.RequireLibrarian(command.Actor); err != nil {
			return core.ErrorDecision(err)
		}
	}

	if s.UsernameTaken {
		return core.ErrorDecision(core.Conflict("username %s is already taken", command.User.Username))
	}

	if s.EmailTaken {
		return core.ErrorDecision(registercustomer.EmailTaken(command.Customer.Email))
	}

	return core.SuccessDecision(core.BuildUserRegistered(command.User, command.OccurredAt))
}
