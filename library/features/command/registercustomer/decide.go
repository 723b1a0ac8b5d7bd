package registercustomer

import (
	"github.com/AntonStoeckl/library-backend/library/core"
)

// State is the current state loaded for a decision.
type State struct {
	EmailTaken bool
}

// Decide implements the business logic to determine whether a customer can be registered.
//
// Business Rules:
//
//	GIVEN: No customer uses the email (a customer without email never conflicts)
//	WHEN: RegisterCustomer command is received
//	THEN: CustomerRegistered event is generated
//	ERROR: Forbidden if the actor is not a librarian
//	ERROR: Conflict if another customer already uses the email
func Decide(s State, command Command) core.DecisionResult {
	if err := core.RequireLibrarian(command.Actor); err != nil {
		return core.ErrorDecision(err)
	}

	if s.EmailTaken {
		return core.ErrorDecision(EmailTaken(command.Customer.Email))
	}

	return core.SuccessDecision(core.BuildCustomerRegistered(command.Customer, command.OccurredAt))
}

// EmailTaken is the Conflict returned when an email belongs to another customer.
func EmailTaken(email core.EmailString) error {
	return core.Conflict("email %s is already used by another customer", email)
}
