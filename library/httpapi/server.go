package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/rs/cors"

	"github.com/AntonStoeckl/library-backend/library/core"
	"github.com/AntonStoeckl/library-backend/library/features/command/addbook"
	"github.com/AntonStoeckl/library-backend/library/features/command/addbookcopies"
	"github.com/AntonStoeckl/library-backend/library/features/command/borrowbookcopy"
	"github.com/AntonStoeckl/library-backend/library/features/command/cancelreservation"
	"github.com/AntonStoeckl/library-backend/library/features/command/checkoutbookcopy"
	"github.com/AntonStoeckl/library-backend/library/features/command/marklost"
	"github.com/AntonStoeckl/library-backend/library/features/command/registercustomer"
	"github.com/AntonStoeckl/library-backend/library/features/command/registeruser"
	"github.com/AntonStoeckl/library-backend/library/features/command/removebook"
	"github.com/AntonStoeckl/library-backend/library/features/command/reservebookcopy"
	"github.com/AntonStoeckl/library-backend/library/features/command/returnbookcopy"
	"github.com/AntonStoeckl/library-backend/library/features/command/updatebook"
	"github.com/AntonStoeckl/library-backend/library/features/command/updatecustomer"
	"github.com/AntonStoeckl/library-backend/library/features/query/authenticateuser"
	"github.com/AntonStoeckl/library-backend/library/features/query/bookdetails"
	"github.com/AntonStoeckl/library-backend/library/features/query/copydetails"
	"github.com/AntonStoeckl/library-backend/library/features/query/customerdetails"
	"github.com/AntonStoeckl/library-backend/library/features/query/customerholdings"
	"github.com/AntonStoeckl/library-backend/library/features/query/listbooks"
	"github.com/AntonStoeckl/library-backend/library/features/query/listcopies"
	"github.com/AntonStoeckl/library-backend/library/features/query/listcustomers"
	"github.com/AntonStoeckl/library-backend/library/features/query/whoami"
	"github.com/AntonStoeckl/library-backend/library/shell"
	"github.com/AntonStoeckl/library-backend/library/shell/catalogcache"
	"github.com/AntonStoeckl/library-backend/library/shell/eventpublisher"
	"github.com/AntonStoeckl/library-backend/library/shell/observable"
	"github.com/AntonStoeckl/library-backend/library/shell/passwords"
)

// Store is everything the features need from persistence. *sqlengine.Repository implements it.
type Store interface {
	addbook.Store
	updatebook.Store
	removebook.Store
	addbookcopies.Store
	reservebookcopy.Store
	borrowbookcopy.Store
	checkoutbookcopy.Store
	returnbookcopy.Store
	cancelreservation.Store
	marklost.Store
	registercustomer.Store
	updatecustomer.Store
	registeruser.Store
	listbooks.Store
	bookdetails.Store
	listcopies.Store
	copydetails.Store
	listcustomers.Store
	customerdetails.Store
	customerholdings.Store
	whoami.Store
	authenticateuser.Store
}

// Server is the http.Handler of the library API.
type Server struct {
	store    Store
	sessions *SessionManager
	hasher   passwords.Hasher
	now      func() time.Time

	logger           *slog.Logger
	contextualLogger shell.ContextualLogger
	metrics          shell.MetricsCollector
	tracing          shell.TracingCollector
	publisher        shell.EventPublisher
	cache            catalogcache.Cache
	corsOrigins      []string

	handler http.Handler

	addBook           shell.CommandHandler[addbook.Command]
	updateBook        shell.CommandHandler[updatebook.Command]
	removeBook        shell.CommandHandler[removebook.Command]
	addBookCopies     shell.CommandHandler[addbookcopies.Command]
	reserveBookCopy   shell.CommandHandler[reservebookcopy.Command]
	borrowBookCopy    shell.CommandHandler[borrowbookcopy.Command]
	checkoutBookCopy  shell.CommandHandler[checkoutbookcopy.Command]
	returnBookCopy    shell.CommandHandler[returnbookcopy.Command]
	cancelReservation shell.CommandHandler[cancelreservation.Command]
	markLost          shell.CommandHandler[marklost.Command]
	registerCustomer  shell.CommandHandler[registercustomer.Command]
	updateCustomer    shell.CommandHandler[updatecustomer.Command]
	registerUser      shell.CommandHandler[registeruser.Command]

	listBooks        shell.QueryHandler[listbooks.Query, core.Page[core.Book]]
	bookDetails      shell.QueryHandler[bookdetails.Query, core.Book]
	listCopies       shell.QueryHandler[listcopies.Query, core.Page[core.Copy]]
	copyDetails      shell.QueryHandler[copydetails.Query, core.Copy]
	listCustomers    shell.QueryHandler[listcustomers.Query, core.Page[core.Customer]]
	customerDetails  shell.QueryHandler[customerdetails.Query, core.Customer]
	customerHoldings shell.QueryHandler[customerholdings.Query, customerholdings.Holdings]
	whoAmI           shell.QueryHandler[whoami.Query, whoami.Identity]
	authenticateUser shell.QueryHandler[authenticateuser.Query, core.Actor]
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger for request logs and handler logs. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithContextualLogger sets a trace-correlating logger for the handler wrappers.
func WithContextualLogger(logger shell.ContextualLogger) Option {
	return func(s *Server) {
		s.contextualLogger = logger
	}
}

// WithMetrics sets the metrics collector for the handler wrappers.
func WithMetrics(collector shell.MetricsCollector) Option {
	return func(s *Server) {
		s.metrics = collector
	}
}

// WithTracing sets the tracing collector for the handler wrappers.
func WithTracing(collector shell.TracingCollector) Option {
	return func(s *Server) {
		s.tracing = collector
	}
}

// WithEventPublisher sets where the events of successful commands go.
func WithEventPublisher(publisher shell.EventPublisher) Option {
	return func(s *Server) {
		s.publisher = publisher
	}
}

// WithCatalogCache sets the cache for book lookups.
// A cache that is also a shell.EventPublisher is subscribed to the command events.
func WithCatalogCache(cache catalogcache.Cache) Option {
	return func(s *Server) {
		s.cache = cache
	}
}

// WithCORSAllowedOrigins enables CORS with credentials for the given origins.
func WithCORSAllowedOrigins(origins ...string) Option {
	return func(s *Server) {
		s.corsOrigins = origins
	}
}

// WithPasswordHasher replaces the bcrypt hasher, e.g. with a cheaper one in tests.
func WithPasswordHasher(hasher passwords.Hasher) Option {
	return func(s *Server) {
		s.hasher = hasher
	}
}

// WithClock replaces time.Now as the source of the event timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		s.now = now
	}
}

// NewServer wires all features onto the store and builds the middleware chain.
func NewServer(store Store, sessions *SessionManager, opts ...Option) (*Server, error) {
	s := &Server{
		store:     store,
		sessions:  sessions,
		hasher:    passwords.NewHasher(),
		now:       time.Now,
		logger:    slog.Default(),
		publisher: eventpublisher.Noop{},
		cache:     catalogcache.Noop{},
	}

	for _, opt := range opts {
		opt(s)
	}

	if subscriber, ok := s.cache.(shell.EventPublisher); ok {
		s.publisher = eventpublisher.Fanout{s.publisher, subscriber}
	}

	if err := s.buildCommandHandlers(); err != nil {
		return nil, err
	}

	if err := s.buildQueryHandlers(); err != nil {
		return nil, err
	}

	var handler http.Handler = s.routes()
	handler = s.withSession(handler)
	handler = s.withRequestLogging(handler)
	handler = s.withCorrelationID(handler)
	handler = s.withRecovery(handler)

	if len(s.corsOrigins) > 0 {
		handler = cors.New(cors.Options{
			AllowedOrigins:   s.corsOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
			AllowedHeaders:   []string{"Content-Type", CorrelationIDHeader},
			ExposedHeaders:   []string{CorrelationIDHeader},
			AllowCredentials: true,
		}).Handler(handler)
	}

	s.handler = handler

	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

//nolint:funlen
func (s *Server) buildCommandHandlers() error {
	var err error

	if s.addBook, err = wrapCommand[addbook.Command](s, addbook.NewCommandHandler(s.store)); err != nil {
		return err
	}

	if s.updateBook, err = wrapCommand[updatebook.Command](s, updatebook.NewCommandHandler(s.store)); err != nil {
		return err
	}

	if s.removeBook, err = wrapCommand[removebook.Command](s, removebook.NewCommandHandler(s.store)); err != nil {
		return err
	}

	if s.addBookCopies, err = wrapCommand[addbookcopies.Command](s, addbookcopies.NewCommandHandler(s.store)); err != nil {
		return err
	}

	if s.reserveBookCopy, err = wrapCommand[reservebookcopy.Command](s, reservebookcopy.NewCommandHandler(s.store)); err != nil {
		return err
	}

	if s.borrowBookCopy, err = wrapCommand[borrowbookcopy.Command](s, borrowbookcopy.NewCommandHandler(s.store)); err != nil {
		return err
	}

	if s.checkoutBookCopy, err = wrapCommand[checkoutbookcopy.Command](s, checkoutbookcopy.NewCommandHandler(s.store)); err != nil {
		return err
	}

	if s.returnBookCopy, err = wrapCommand[returnbookcopy.Command](s, returnbookcopy.NewCommandHandler(s.store)); err != nil {
		return err
	}

	if s.cancelReservation, err = wrapCommand[cancelreservation.Command](s, cancelreservation.NewCommandHandler(s.store)); err != nil {
		return err
	}

	if s.markLost, err = wrapCommand[marklost.Command](s, marklost.NewCommandHandler(s.store)); err != nil {
		return err
	}

	if s.registerCustomer, err = wrapCommand[registercustomer.Command](s, registercustomer.NewCommandHandler(s.store)); err != nil {
		return err
	}

	if s.updateCustomer, err = wrapCommand[updatecustomer.Command](s, updatecustomer.NewCommandHandler(s.store)); err != nil {
		return err
	}

	s.registerUser, err = wrapCommand[registeruser.Command](s, registeruser.NewCommandHandler(s.store))

	return err
}

func (s *Server) buildQueryHandlers() error {
	var err error

	if s.listBooks, err = wrapQuery[listbooks.Query, core.Page[core.Book]](s, listbooks.NewQueryHandler(s.store)); err != nil {
		return err
	}

	if s.bookDetails, err = wrapQuery[bookdetails.Query, core.Book](s,
		bookdetails.NewQueryHandler(s.store, bookdetails.WithCache(s.cache))); err != nil {
		return err
	}

	if s.listCopies, err = wrapQuery[listcopies.Query, core.Page[core.Copy]](s, listcopies.NewQueryHandler(s.store)); err != nil {
		return err
	}

	if s.copyDetails, err = wrapQuery[copydetails.Query, core.Copy](s, copydetails.NewQueryHandler(s.store)); err != nil {
		return err
	}

	if s.listCustomers, err = wrapQuery[listcustomers.Query, core.Page[core.Customer]](s, listcustomers.NewQueryHandler(s.store)); err != nil {
		return err
	}

	if s.customerDetails, err = wrapQuery[customerdetails.Query, core.Customer](s, customerdetails.NewQueryHandler(s.store)); err != nil {
		return err
	}

	if s.customerHoldings, err = wrapQuery[customerholdings.Query, customerholdings.Holdings](s,
		customerholdings.NewQueryHandler(s.store)); err != nil {
		return err
	}

	if s.whoAmI, err = wrapQuery[whoami.Query, whoami.Identity](s, whoami.NewQueryHandler(s.store)); err != nil {
		return err
	}

	s.authenticateUser, err = wrapQuery[authenticateuser.Query, core.Actor](s,
		authenticateuser.NewQueryHandler(s.store, s.hasher))

	return err
}

func wrapCommand[C shell.Command](s *Server, handler shell.CommandHandler[C]) (shell.CommandHandler[C], error) {
	opts := []observable.CommandOption[C]{
		observable.WithCommandLogging[C](s.logger),
		observable.WithEventPublisher[C](s.publisher),
	}

	if s.contextualLogger != nil {
		opts = append(opts, observable.WithCommandContextualLogging[C](s.contextualLogger))
	}

	if s.metrics != nil {
		opts = append(opts, observable.WithCommandMetrics[C](s.metrics))
	}

	if s.tracing != nil {
		opts = append(opts, observable.WithCommandTracing[C](s.tracing))
	}

	return observable.NewCommandWrapper(handler, opts...)
}

func wrapQuery[Q shell.Query, R any](s *Server, handler shell.QueryHandler[Q, R]) (shell.QueryHandler[Q, R], error) {
	opts := []observable.QueryOption[Q, R]{
		observable.WithQueryLogging[Q, R](s.logger),
	}

	if s.contextualLogger != nil {
		opts = append(opts, observable.WithQueryContextualLogging[Q, R](s.contextualLogger))
	}

	if s.metrics != nil {
		opts = append(opts, observable.WithQueryMetrics[Q, R](s.metrics))
	}

	if s.tracing != nil {
		opts = append(opts, observable.WithQueryTracing[Q, R](s.tracing))
	}

	return observable.NewQueryWrapper(handler, opts...)
}

func (s *Server) actor(ctx context.Context) core.Actor {
	return ActorFromContext(ctx)
}
