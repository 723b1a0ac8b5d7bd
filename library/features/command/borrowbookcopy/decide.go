package borrowbookcopy

import (
	"github.com/AntonStoeckl/library-backend/library/core"
)

// State is the current state loaded for a decision.
type State struct {
	CustomerExists     bool
	AvailableCopy      core.Copy
	HasAvailableCopies bool
}

// Decide implements the business logic to determine whether a copy can be borrowed.
// This is a pure function with no side effects.
//
// Business Rules:
//
//	GIVEN: A customer and a book ISBN
//	WHEN: BorrowBookCopy command is received
//	THEN: BookCopyBorrowed event is generated for the first AVAILABLE copy
//	ERROR: Unauthenticated/Forbidden if the actor is neither a librarian nor the customer
//	ERROR: NotFound if the customer does not exist
//	ERROR: NotFound if no copy of the ISBN is AVAILABLE
func Decide(s State, command Command) core.DecisionResult {
	if err := core.RequireCustomerAccess(command.Actor, command.CustomerID); err != nil {
		return core.ErrorDecision(err)
	}

	if !s.CustomerExists {
		return core.ErrorDecision(core.NotFound("customer %s not found", command.CustomerID))
	}

	if !s.HasAvailableCopies {
		return core.ErrorDecision(core.NotFound("no available copies for ISBN %s", command.ISBN))
	}

	return core.SuccessDecision(
		core.BuildBookCopyBorrowed(s.AvailableCopy.ID, s.AvailableCopy.ISBN, command.CustomerID, command.OccurredAt),
	)
}
