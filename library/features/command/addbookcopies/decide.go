package addbookcopies

import (
	"github.com/AntonStoeckl/library-backend/library/core"
)

// State is the current state loaded for a decision.
type State struct {
	BookExists bool
}

// Decide implements the business logic to determine whether copies can be added.
//
// Business Rules:
//
//	GIVEN: A cataloged book
//	WHEN: AddBookCopies command is received
//	THEN: BookCopiesAddedToInventory event is generated, every new copy is AVAILABLE
//	ERROR: Forbidden if the actor is not a librarian
//	ERROR: NotFound if no book with the ISBN exists
func Decide(s State, command Command) core.DecisionResult {
	if err := core.RequireLibrarian(command.Actor); err != nil {
		return core.ErrorDecision(err)
	}

	if !s.BookExists {
		return core.ErrorDecision(unknownBook(command.ISBN))
	}

	return core.SuccessDecision(core.BuildBookCopiesAddedToInventory(command.ISBN, command.CopyIDs, command.OccurredAt))
}

func unknownBook(isbn core.ISBNString) error {
	return core.NotFound("book with ISBN %s not found", isbn)
}
