package httpapi

import (
	"net/http"

	"github.com/AntonStoeckl/library-backend/library/core"
	"github.com/AntonStoeckl/library-backend/library/features/command/registercustomer"
	"github.com/AntonStoeckl/library-backend/library/features/command/updatecustomer"
	"github.com/AntonStoeckl/library-backend/library/features/query/customerdetails"
	"github.com/AntonStoeckl/library-backend/library/features/query/customerholdings"
	"github.com/AntonStoeckl/library-backend/library/features/query/listcustomers"
)

type customerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

func (s *Server) handleRegisterCustomer(w http.ResponseWriter, r *http.Request) {
	var body customerRequest
	if err := decodeJSON(w, r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}

	command := registercustomer.BuildCommand(s.actor(r.Context()), body.FirstName, body.LastName, body.Email, s.now())

	if _, err := s.registerCustomer.Handle(r.Context(), command); err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, command.Customer)
}

func (s *Server) handleUpdateCustomer(w http.ResponseWriter, r *http.Request) {
	fieldErrors := core.FieldErrors{}
	customerID := parseID(fieldErrors, "id", r.PathValue("id"))

	if s.writeValidation(w, r, fieldErrors) {
		return
	}

	var body customerRequest
	if err := decodeJSON(w, r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}

	command := updatecustomer.BuildCommand(
		s.actor(r.Context()),
		customerID,
		body.FirstName,
		body.LastName,
		body.Email,
		s.now(),
	)

	if _, err := s.updateCustomer.Handle(r.Context(), command); err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, command.Customer)
}

func (s *Server) handleGetCustomer(w http.ResponseWriter, r *http.Request) {
	fieldErrors := core.FieldErrors{}
	customerID := parseID(fieldErrors, "id", r.PathValue("id"))

	if s.writeValidation(w, r, fieldErrors) {
		return
	}

	customer, err := s.customerDetails.Handle(r.Context(), customerdetails.BuildQuery(s.actor(r.Context()), customerID))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, customer)
}

func (s *Server) handleCustomerHoldings(w http.ResponseWriter, r *http.Request) {
	fieldErrors := core.FieldErrors{}
	customerID := parseID(fieldErrors, "id", r.PathValue("id"))

	if s.writeValidation(w, r, fieldErrors) {
		return
	}

	holdings, err := s.customerHoldings.Handle(r.Context(), customerholdings.BuildQuery(s.actor(r.Context()), customerID))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, holdings)
}

func (s *Server) handleListCustomers(w http.ResponseWriter, r *http.Request) {
	fieldErrors := core.FieldErrors{}
	number, size := pageParams(r, fieldErrors)

	if s.writeValidation(w, r, fieldErrors) {
		return
	}

	page, err := s.listCustomers.Handle(r.Context(), listcustomers.BuildQuery(s.actor(r.Context()), number, size))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, page)
}
