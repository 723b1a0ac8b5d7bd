package checkoutbookcopy

import (
	"github.com/AntonStoeckl/library-backend/library/core"
)

// State is the current state loaded for a decision.
type State struct {
	Copy           core.Copy
	CopyExists     bool
	CustomerExists bool
}

// Decide implements the business logic to determine whether a copy can be handed out.
// This is a pure function with no side effects.
//
// Business Rules:
//
//	GIVEN: A copy and a customer
//	WHEN: CheckoutBookCopy command is received
//	THEN: BookCopyCheckedOut event is generated if the copy is AVAILABLE or RESERVED by this customer
//	ERROR: Forbidden if the actor is not a librarian
//	ERROR: NotFound if the copy or the customer does not exist
//	ERROR: InvalidState if the copy is LOST
//	ERROR: InvalidState naming the holder if the copy is RESERVED or BORROWED by another customer
//	IDEMPOTENCY: If the copy is already BORROWED by this customer, no event is generated
func Decide(s State, command Command) core.DecisionResult {
	if err := core.RequireLibrarian(command.Actor); err != nil {
		return core.ErrorDecision(err)
	}

	if !s.CopyExists {
		return core.ErrorDecision(core.NotFound("copy %s not found", command.CopyID))
	}

	if !s.CustomerExists {
		return core.ErrorDecision(core.NotFound("customer %s not found", command.CustomerID))
	}

	c := s.Copy

	switch {
	case c.Status == core.CopyLost:
		return core.ErrorDecision(core.InvalidState("copy %s is LOST", c.ID))

	case c.Status == core.CopyBorrowed && c.IsHeldBy(command.CustomerID):
		return core.IdempotentDecision()

	case c.Status.HoldsCustomer() && !c.IsHeldBy(command.CustomerID):
		return core.ErrorDecision(core.InvalidState(
			"copy %s is %s by customer %s", c.ID, c.Status, c.CustomerID.UUID,
		))
	}

	return core.SuccessDecision(core.BuildBookCopyCheckedOut(
		c.ID,
		c.ISBN,
		command.CustomerID,
		c.Status == core.CopyReserved,
		command.OccurredAt,
	))
}
