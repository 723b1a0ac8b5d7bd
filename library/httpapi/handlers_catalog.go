package httpapi

import (
	"net/http"

	"github.com/AntonStoeckl/library-backend/library/core"
	"github.com/AntonStoeckl/library-backend/library/features/command/addbook"
	"github.com/AntonStoeckl/library-backend/library/features/command/removebook"
	"github.com/AntonStoeckl/library-backend/library/features/command/updatebook"
	"github.com/AntonStoeckl/library-backend/library/features/query/bookdetails"
	"github.com/AntonStoeckl/library-backend/library/features/query/listbooks"
)

type bookRequest struct {
	ISBN            string   `json:"isbn"`
	Title           string   `json:"title"`
	PublicationYear int      `json:"publicationYear"`
	Authors         []string `json:"authors"`
}

func (b bookRequest) toBook() core.Book {
	return core.Book{
		ISBN:            b.ISBN,
		Title:           b.Title,
		PublicationYear: b.PublicationYear,
		Authors:         b.Authors,
	}
}

func (s *Server) handleListBooks(w http.ResponseWriter, r *http.Request) {
	fieldErrors := core.FieldErrors{}
	number, size := pageParams(r, fieldErrors)
	params := r.URL.Query()

	criteria := core.BookSearchCriteria{
		Title:           params.Get("title"),
		AuthorName:      params.Get("authorName"),
		PublicationYear: intParam(r, "publicationYear", fieldErrors),
		ISBN:            params.Get("isbn"),
	}

	if s.writeValidation(w, r, fieldErrors) {
		return
	}

	page, err := s.listBooks.Handle(r.Context(), listbooks.BuildQuery(criteria, number, size))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

func (s *Server) handleGetBook(w http.ResponseWriter, r *http.Request) {
	book, err := s.bookDetails.Handle(r.Context(), bookdetails.BuildQuery(r.PathValue("isbn")))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, book)
}

func (s *Server) handleAddBook(w http.ResponseWriter, r *http.Request) {
	var body bookRequest
	if err := decodeJSON(w, r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}

	command := addbook.BuildCommand(s.actor(r.Context()), body.toBook(), s.now())

	if _, err := s.addBook.Handle(r.Context(), command); err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, command.Book)
}

func (s *Server) handleUpdateBook(w http.ResponseWriter, r *http.Request) {
	var body bookRequest
	if err := decodeJSON(w, r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}

	// the path names the book, an ISBN in the body is ignored
	body.ISBN = r.PathValue("isbn")
	command := updatebook.BuildCommand(s.actor(r.Context()), body.toBook(), s.now())

	if _, err := s.updateBook.Handle(r.Context(), command); err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, command.Book)
}

func (s *Server) handleRemoveBook(w http.ResponseWriter, r *http.Request) {
	command := removebook.BuildCommand(s.actor(r.Context()), r.PathValue("isbn"), s.now())

	if _, err := s.removeBook.Handle(r.Context(), command); err != nil {
		s.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
