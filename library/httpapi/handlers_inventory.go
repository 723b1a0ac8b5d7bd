package httpapi

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-backend/library/core"
	"github.com/AntonStoeckl/library-backend/library/features/command/addbookcopies"
	"github.com/AntonStoeckl/library-backend/library/features/query/copydetails"
	"github.com/AntonStoeckl/library-backend/library/features/query/listcopies"
)

const msgInvalidUUID = "must be a valid UUID"

type addCopiesRequest struct {
	BookISBN string `json:"bookIsbn"`
	Quantity int    `json:"quantity"`
}

func (s *Server) handleAddCopies(w http.ResponseWriter, r *http.Request) {
	var body addCopiesRequest
	if err := decodeJSON(w, r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}

	command := addbookcopies.BuildCommand(s.actor(r.Context()), body.BookISBN, body.Quantity, s.now())

	result, err := s.addBookCopies.Handle(r.Context(), command)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	added, ok := result.Event.(core.BookCopiesAddedToInventory)
	if !ok {
		added = core.BuildBookCopiesAddedToInventory(command.ISBN, command.CopyIDs, command.OccurredAt)
	}

	writeJSON(w, http.StatusCreated, added.Copies())
}

// handleListCopies serves both the whole inventory and the copies of a single book.
func (s *Server) handleListCopies(w http.ResponseWriter, r *http.Request) {
	fieldErrors := core.FieldErrors{}
	number, size := pageParams(r, fieldErrors)

	if s.writeValidation(w, r, fieldErrors) {
		return
	}

	query := listcopies.BuildQuery(s.actor(r.Context()), r.PathValue("isbn"), number, size)

	page, err := s.listCopies.Handle(r.Context(), query)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

func (s *Server) handleGetCopy(w http.ResponseWriter, r *http.Request) {
	fieldErrors := core.FieldErrors{}
	copyID := parseID(fieldErrors, "id", r.PathValue("id"))

	if s.writeValidation(w, r, fieldErrors) {
		return
	}

	bookCopy, err := s.copyDetails.Handle(r.Context(), copydetails.BuildQuery(s.actor(r.Context()), copyID))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, bookCopy)
}

// parseID records a field error for a missing or malformed id.
func parseID(fieldErrors core.FieldErrors, field, raw string) uuid.UUID {
	if raw == "" {
		fieldErrors.Add(field, "must not be blank")
		return uuid.Nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		fieldErrors.Add(field, msgInvalidUUID)
		return uuid.Nil
	}

	return id
}
