package removebook

import (
	"github.com/AntonStoeckl/library-backend/library/core"
)

// State is the current state loaded for a decision.
type State struct {
	BookExists bool
	CopyCount  int
}

// Decide implements the business logic to determine whether a book can be removed from the catalog.
//
// Business Rules:
//
//	GIVEN: A cataloged book without copies
//	WHEN: RemoveBookFromCatalog command is received
//	THEN: BookRemovedFromCatalog event is generated
//	ERROR: Forbidden if the actor is not a librarian
//	ERROR: NotFound if no book with the ISBN exists
//	ERROR: Conflict if the book still has copies, in any status
func Decide(s State, command Command) core.DecisionResult {
	if err := core.RequireLibrarian(command.Actor); err != nil {
		return core.ErrorDecision(err)
	}

	if !s.BookExists {
		return core.ErrorDecision(core.NotFound("book with ISBN %s not found", command.ISBN))
	}

	if s.CopyCount > 0 {
		return core.ErrorDecision(stillHasCopies(command.ISBN, s.CopyCount))
	}

	return core.SuccessDecision(core.BuildBookRemovedFromCatalog(command.ISBN, command.OccurredAt))
}

func stillHasCopies(isbn core.ISBNString, count int) error {
	return core.Conflict("book %s still has %d copies", isbn, count)
}
