package updatebook

import (
	"slices"

	"github.com/AntonStoeckl/library-backend/library/core"
)

// State is the current state loaded for a decision.
type State struct {
	Book       core.Book
	BookExists bool
}

// Decide implements the business logic to determine whether a book can be updated.
//
// Business Rules:
//
//	GIVEN: A cataloged book
//	WHEN: UpdateBookInCatalog command is received
//	THEN: BookUpdatedInCatalog event is generated, unknown authors are created along the way
//	ERROR: Forbidden if the actor is not a librarian
//	ERROR: NotFound if no book with the ISBN exists
//	IDEMPOTENCY: If title, publication year and author set are unchanged, no event is generated
func Decide(s State, command Command) core.DecisionResult {
	if err := core.RequireLibrarian(command.Actor); err != nil {
		return core.ErrorDecision(err)
	}

	if !s.BookExists {
		return core.ErrorDecision(core.NotFound("book with ISBN %s not found", command.Book.ISBN))
	}

	if sameDetails(s.Book, command.Book) {
		return core.IdempotentDecision()
	}

	return core.SuccessDecision(core.BuildBookUpdatedInCatalog(command.Book, command.OccurredAt))
}

func sameDetails(current, wanted core.Book) bool {
	if current.Title != wanted.Title || current.PublicationYear != wanted.PublicationYear {
		return false
	}

	if len(current.Authors) != len(wanted.Authors) {
		return false
	}

	for _, name := range wanted.Authors {
		if !slices.Contains(current.Authors, name) {
			return false
		}
	}

	return true
}
