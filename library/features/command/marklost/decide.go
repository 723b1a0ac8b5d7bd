package marklost

import (
	"github.com/AntonStoeckl/library-backend/library/core"
)

// State is the current state loaded for a decision.
type State struct {
	Copy       core.Copy
	CopyExists bool
}

// Decide implements the business logic to determine whether a copy can be marked lost.
//
// Business Rules:
//
//	GIVEN: A copy in any status
//	WHEN: MarkCopyLost command is received
//	THEN: BookCopyMarkedLost event is generated, the copy is unbound from its customer
//	ERROR: Forbidden if the actor is not a librarian
//	ERROR: NotFound if the copy does not exist
//	IDEMPOTENCY: If the copy is already LOST, no event is generated
func Decide(s State, command Command) core.DecisionResult {
	if err := core.RequireLibrarian(command.Actor); err != nil {
		return core.ErrorDecision(err)
	}

	if !s.CopyExists {
		return core.ErrorDecision(core.NotFound("copy %s not found", command.CopyID))
	}

	if s.Copy.Status == core.CopyLost {
		return core.IdempotentDecision()
	}

	return core.SuccessDecision(core.BuildBookCopyMarkedLost(s.Copy, command.OccurredAt))
}
