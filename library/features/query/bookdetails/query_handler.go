package bookdetails

import (
	"context"

	"github.com/AntonStoeckl/library-backend/library/core"
	"github.com/AntonStoeckl/library-backend/library/shell/catalogcache"
)

// Store defines the store operations needed by the QueryHandler.
type Store interface {
	FindBook(ctx context.Context, isbn core.ISBNString) (core.Book, bool, error)
}

// QueryHandler answers the Query from the cache, falling back to the store.
type QueryHandler struct {
	store Store
	cache catalogcache.Cache
}

// Option configures a QueryHandler.
type Option func(*QueryHandler)

// WithCache sets the read-through cache. Without it every lookup hits the store.
func WithCache(cache catalogcache.Cache) Option {
	return func(h *QueryHandler) {
		h.cache = cache
	}
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(store Store, opts ...Option) QueryHandler {
	handler := QueryHandler{store: store, cache: catalogcache.Noop{}}

	for _, opt := range opts {
		opt(&handler)
	}

	return handler
}

// Handle returns the book or a NotFound error.
func (h QueryHandler) Handle(ctx context.Context, query Query) (core.Book, error) {
	if book, ok := h.cache.Get(query.ISBN); ok {
		return book, nil
	}

	book, found, err := h.store.FindBook(ctx, query.ISBN)
	if err != nil {
		return core.Book{}, err
	}

	if !found {
		return core.Book{}, core.NotFound("book with ISBN %s not found", query.ISBN)
	}

	h.cache.Put(book)

	return book, nil
}
