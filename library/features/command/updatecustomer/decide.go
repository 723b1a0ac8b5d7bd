package updatecustomer

import (
	"github.com/AntonStoeckl/library-backend/library/core"
	"github.com/AntonStoeckl/library-backend/library/features/command/registercustomer"
)

// State is the current state loaded for a decision.
type State struct {
	Customer       core.Customer
	CustomerExists bool
	EmailTaken     bool // the email belongs to a different customer
}

// Decide implements the business logic to determine whether a customer can be updated.
//
// Business Rules:
//
//	GIVEN: A registered customer
//	WHEN: UpdateCustomerDetails command is received
//	THEN: CustomerDetailsUpdated event is generated
//	ERROR: Forbidden if the actor is neither a librarian nor the customer
//	ERROR: NotFound if the customer does not exist
//	ERROR: Conflict if the new email belongs to another customer
//	IDEMPOTENCY: If names and email are unchanged, no event is generated
func Decide(s State, command Command) core.DecisionResult {
	if err := core.RequireCustomerAccess(command.Actor, command.Customer.ID); err != nil {
		return core.ErrorDecision(err)
	}

	if !s.CustomerExists {
		return core.ErrorDecision(core.NotFound("customer %s not found", command.Customer.ID))
	}

	if s.EmailTaken {
		return core.ErrorDecision(registercustomer.EmailTaken(command.Customer.Email))
	}

	if s.Customer == command.Customer {
		return core.IdempotentDecision()
	}

	return core.SuccessDecision(core.BuildCustomerDetailsUpdated(command.Customer, command.OccurredAt))
}
