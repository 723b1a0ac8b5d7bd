package returnbookcopy

import (
	"github.com/AntonStoeckl/library-backend/library/core"
)

// State is the current state loaded for a decision.
type State struct {
	Copy       core.Copy
	CopyExists bool
}

// Decide implements the business logic to determine whether a copy can be returned.
// This is a pure function with no side effects.
//
// Business Rules:
//
//	GIVEN: A copy and the customer returning it
//	WHEN: ReturnBookCopy command is received
//	THEN: BookCopyReturned event is generated if the copy is BORROWED by this customer
//	ERROR: Forbidden if the actor is neither a librarian nor the customer
//	ERROR: NotFound if the copy does not exist
//	ERROR: InvalidState naming the current status if the copy is not BORROWED
//	ERROR: InvalidState naming the holder if the copy is BORROWED by another customer
func Decide(s State, command Command) core.DecisionResult {
	if err := core.RequireCustomerAccess(command.Actor, command.CustomerID); err != nil {
		return core.ErrorDecision(err)
	}

	if !s.CopyExists {
		return core.ErrorDecision(core.NotFound("copy %s not found", command.CopyID))
	}

	c := s.Copy

	if c.Status != core.CopyBorrowed {
		return core.ErrorDecision(core.InvalidState("copy %s is not borrowed, its status is %s", c.ID, c.Status))
	}

	if !c.IsHeldBy(command.CustomerID) {
		return core.ErrorDecision(core.InvalidState("copy %s is borrowed by customer %s", c.ID, c.CustomerID.UUID))
	}

	return core.SuccessDecision(core.BuildBookCopyReturned(c.ID, c.ISBN, command.CustomerID, command.OccurredAt))
}
