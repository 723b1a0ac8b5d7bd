package httpapi

import "net/http"

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	// catalog, public
	mux.HandleFunc("GET /books", s.handleListBooks)
	mux.HandleFunc("GET /books/search", s.handleListBooks)
	mux.HandleFunc("GET /books/{isbn}", s.handleGetBook)

	// catalog administration
	mux.HandleFunc("POST /admin/books", s.handleAddBook)
	mux.HandleFunc("PUT /admin/books/{isbn}", s.handleUpdateBook)
	mux.HandleFunc("DELETE /admin/books/{isbn}", s.handleRemoveBook)

	// inventory
	mux.HandleFunc("POST /admin/copies", s.handleAddCopies)
	mux.HandleFunc("GET /admin/copies", s.handleListCopies)
	mux.HandleFunc("GET /admin/copies/{id}", s.handleGetCopy)
	mux.HandleFunc("GET /admin/copies/book/{isbn}", s.handleListCopies)

	// lending, self-service
	mux.HandleFunc("POST /reservations", s.handleReserve)
	mux.HandleFunc("DELETE /reservations/{copyId}", s.handleCancelReservation)
	mux.HandleFunc("POST /borrowings", s.handleBorrow)
	mux.HandleFunc("POST /copies/{id}/return", s.handleSelfReturn)

	// lending, desk
	mux.HandleFunc("POST /desk/checkout", s.handleDeskCheckout)
	mux.HandleFunc("POST /desk/return", s.handleDeskReturn)
	mux.HandleFunc("POST /desk/lost", s.handleDeskMarkLost)

	// customers
	mux.HandleFunc("POST /customers", s.handleRegisterCustomer)
	mux.HandleFunc("GET /customers/{id}", s.handleGetCustomer)
	mux.HandleFunc("PUT /customers/{id}", s.handleUpdateCustomer)
	mux.HandleFunc("GET /customers/{id}/copies", s.handleCustomerHoldings)
	mux.HandleFunc("GET /admin/customers", s.handleListCustomers)

	// identity
	mux.HandleFunc("POST /register", s.handleRegister)
	mux.HandleFunc("POST /login", s.handleLogin)
	mux.HandleFunc("POST /logout", s.handleLogout)
	mux.HandleFunc("GET /whoami", s.handleWhoAmI)

	mux.HandleFunc("GET /healthz", s.handleHealth)

	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeText(w, http.StatusOK, "ok")
}
