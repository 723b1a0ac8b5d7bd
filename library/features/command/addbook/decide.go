package addbook

import (
	"github.com/AntonStoeckl/library-backend/library/core"
)

// State is the current state loaded for a decision.
type State struct {
	BookExists bool
}

// Decide implements the business logic to determine whether a book can be added to the catalog.
//
// Business Rules:
//
//	GIVEN: No book with the ISBN exists
//	WHEN: AddBookToCatalog command is received
//	THEN: BookAddedToCatalog event is generated, unknown authors are created along the way
//	ERROR: Forbidden if the actor is not a librarian
//	ERROR: Conflict if a book with the ISBN already exists
func Decide(s State, command Command) core.DecisionResult {
	if err := core.RequireLibrarian(command.Actor); err != nil {
		return core.ErrorDecision(err)
	}

	if s.BookExists {
		return core.ErrorDecision(alreadyCataloged(command))
	}

	return core.SuccessDecision(core.BuildBookAddedToCatalog(command.Book, command.OccurredAt))
}

func alreadyCataloged(command Command) error {
	return core.Conflict("book with ISBN %s already exists", command.Book.ISBN)
}
