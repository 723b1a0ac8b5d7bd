package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-backend/library/core"
	"github.com/AntonStoeckl/library-backend/library/features/command/borrowbookcopy"
	"github.com/AntonStoeckl/library-backend/library/features/command/cancelreservation"
	"github.com/AntonStoeckl/library-backend/library/features/command/checkoutbookcopy"
	"github.com/AntonStoeckl/library-backend/library/features/command/marklost"
	"github.com/AntonStoeckl/library-backend/library/features/command/reservebookcopy"
	"github.com/AntonStoeckl/library-backend/library/features/command/returnbookcopy"
	"github.com/AntonStoeckl/library-backend/library/shell"
)

type lendingRequest struct {
	BookISBN   string `json:"bookIsbn"`
	CustomerID string `json:"customerId"`
}

type deskRequest struct {
	CopyID     string `json:"copyId"`
	CustomerID string `json:"customerId"`
}

func (s *Server) handleReserve(w http.ResponseWriter, r *http.Request) {
	s.claimCopy(w, r, func(actor core.Actor, customerID uuid.UUID, isbn core.ISBNString) (shell.HandlerResult, error) {
		return s.reserveBookCopy.Handle(r.Context(), reservebookcopy.BuildCommand(actor, customerID, isbn, s.now()))
	})
}

func (s *Server) handleBorrow(w http.ResponseWriter, r *http.Request) {
	s.claimCopy(w, r, func(actor core.Actor, customerID uuid.UUID, isbn core.ISBNString) (shell.HandlerResult, error) {
		return s.borrowBookCopy.Handle(r.Context(), borrowbookcopy.BuildCommand(actor, customerID, isbn, s.now()))
	})
}

// claimCopy runs reserve or borrow, which pick any available copy of a book,
// and answers with the copy that was picked.
func (s *Server) claimCopy(
	w http.ResponseWriter,
	r *http.Request,
	claim func(actor core.Actor, customerID uuid.UUID, isbn core.ISBNString) (shell.HandlerResult, error),
) {

	var body lendingRequest
	if err := decodeJSON(w, r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}

	actor := s.actor(r.Context())
	fieldErrors := core.FieldErrors{}

	customerID, err := customerIDFor(actor, body.CustomerID, fieldErrors)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if s.writeValidation(w, r, fieldErrors) {
		return
	}

	result, err := claim(actor, customerID, body.BookISBN)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	copyID, err := claimedCopyID(result.Event)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeCopy(w, r, http.StatusCreated, copyID)
}

func (s *Server) handleCancelReservation(w http.ResponseWriter, r *http.Request) {
	actor := s.actor(r.Context())
	fieldErrors := core.FieldErrors{}
	copyID := parseID(fieldErrors, "copyId", r.PathValue("copyId"))

	customerID, err := customerIDFor(actor, r.URL.Query().Get("customerId"), fieldErrors)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if s.writeValidation(w, r, fieldErrors) {
		return
	}

	command := cancelreservation.BuildCommand(actor, copyID, customerID, s.now())

	if _, err := s.cancelReservation.Handle(r.Context(), command); err != nil {
		s.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSelfReturn(w http.ResponseWriter, r *http.Request) {
	actor := s.actor(r.Context())
	fieldErrors := core.FieldErrors{}
	copyID := parseID(fieldErrors, "id", r.PathValue("id"))

	customerID, err := customerIDFor(actor, r.URL.Query().Get("customerId"), fieldErrors)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if s.writeValidation(w, r, fieldErrors) {
		return
	}

	if _, err := s.returnBookCopy.Handle(r.Context(), returnbookcopy.BuildCommand(actor, copyID, customerID, s.now())); err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeCopy(w, r, http.StatusOK, copyID)
}

func (s *Server) handleDeskCheckout(w http.ResponseWriter, r *http.Request) {
	s.deskTransition(w, r, func(actor core.Actor, copyID, customerID uuid.UUID) error {
		_, err := s.checkoutBookCopy.Handle(r.Context(), checkoutbookcopy.BuildCommand(actor, copyID, customerID, s.now()))
		return err
	})
}

func (s *Server) handleDeskReturn(w http.ResponseWriter, r *http.Request) {
	s.deskTransition(w, r, func(actor core.Actor, copyID, customerID uuid.UUID) error {
		_, err := s.returnBookCopy.Handle(r.Context(), returnbookcopy.BuildCommand(actor, copyID, customerID, s.now()))
		return err
	})
}

// deskTransition runs a librarian transition on a named copy for a named customer.
func (s *Server) deskTransition(
	w http.ResponseWriter,
	r *http.Request,
	transition func(actor core.Actor, copyID, customerID uuid.UUID) error,
) {

	var body deskRequest
	if err := decodeJSON(w, r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}

	fieldErrors := core.FieldErrors{}
	copyID := parseID(fieldErrors, "copyId", body.CopyID)
	customerID := parseID(fieldErrors, "customerId", body.CustomerID)

	if s.writeValidation(w, r, fieldErrors) {
		return
	}

	if err := transition(s.actor(r.Context()), copyID, customerID); err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeCopy(w, r, http.StatusOK, copyID)
}

func (s *Server) handleDeskMarkLost(w http.ResponseWriter, r *http.Request) {
	var body deskRequest
	if err := decodeJSON(w, r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}

	fieldErrors := core.FieldErrors{}
	copyID := parseID(fieldErrors, "copyId", body.CopyID)

	if s.writeValidation(w, r, fieldErrors) {
		return
	}

	if _, err := s.markLost.Handle(r.Context(), marklost.BuildCommand(s.actor(r.Context()), copyID, s.now())); err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeCopy(w, r, http.StatusOK, copyID)
}

// writeCopy answers with the current state of a copy after a transition.
func (s *Server) writeCopy(w http.ResponseWriter, r *http.Request, status int, copyID uuid.UUID) {
	bookCopy, err := s.loadCopy(r.Context(), copyID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, status, bookCopy)
}

func (s *Server) loadCopy(ctx context.Context, copyID uuid.UUID) (core.Copy, error) {
	bookCopy, found, err := s.store.FindCopy(ctx, copyID)
	if err != nil {
		return core.Copy{}, err
	}

	if !found {
		return core.Copy{}, core.NotFound("copy %s not found", copyID)
	}

	return bookCopy, nil
}

// customerIDFor picks the customer a lending request acts for.
// Customers act for themselves unless they name a customer, librarians must always name one.
func customerIDFor(actor core.Actor, raw string, fieldErrors core.FieldErrors) (uuid.UUID, error) {
	if raw != "" {
		return parseID(fieldErrors, "customerId", raw), nil
	}

	if actor.IsLibrarian() {
		fieldErrors.Add("customerId", "must not be blank")
		return uuid.Nil, nil
	}

	return core.OwnCustomerID(actor)
}

func claimedCopyID(event core.DomainEvent) (uuid.UUID, error) {
	switch e := event.(type) {
	case core.BookCopyReserved:
		return e.CopyID, nil
	case core.BookCopyBorrowed:
		return e.CopyID, nil
	default:
		return uuid.Nil, fmt.Errorf("unexpected event %T for a claimed copy", event)
	}
}
