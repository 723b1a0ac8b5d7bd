package catalogcache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/AntonStoeckl/library-backend/library/core"
)

const (
	// DefaultSize is the number of books kept when no size is configured.
	DefaultSize = 1024

	// DefaultTTL is the lifetime of an entry when no TTL is configured.
	DefaultTTL = 5 * time.Minute
)

// Cache is the explicit get/put/evict contract of the catalog lookup path.
type Cache interface {
	Get(isbn core.ISBNString) (core.Book, bool)
	Put(book core.Book)
	Evict(isbn core.ISBNString)
}

// BookCache caches books by ISBN in an expiring LRU.
type BookCache struct {
	lru *expirable.LRU[core.ISBNString, core.Book]
}

// New creates a BookCache. Non-positive values fall back to DefaultSize and DefaultTTL.
func New(size int, ttl time.Duration) *BookCache {
	if size <= 0 {
		size = DefaultSize
	}

	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &BookCache{lru: expirable.NewLRU[core.ISBNString, core.Book](size, nil, ttl)}
}

// Get returns the cached book.
func (c *BookCache) Get(isbn core.ISBNString) (core.Book, bool) {
	return c.lru.Get(isbn)
}

// Put stores a copy of the book, the authors slice is not shared with the caller.
func (c *BookCache) Put(book core.Book) {
	book.Authors = append([]core.AuthorNameString(nil), book.Authors...)
	c.lru.Add(book.ISBN, book)
}

// Evict drops the entry of the ISBN, if there is one.
func (c *BookCache) Evict(isbn core.ISBNString) {
	c.lru.Remove(isbn)
}

// Len returns the number of live entries.
func (c *BookCache) Len() int {
	return c.lru.Len()
}

// Publish evicts the books touched by catalog events, it never fails.
func (c *BookCache) Publish(_ context.Context, event core.DomainEvent) error {
	switch e := event.(type) {
	case core.BookAddedToCatalog:
		c.Evict(e.ISBN)
	case core.BookUpdatedInCatalog:
		c.Evict(e.ISBN)
	case core.BookRemovedFromCatalog:
		c.Evict(e.ISBN)
	}

	return nil
}

// Noop caches nothing.
type Noop struct{}

// Get always misses.
func (Noop) Get(core.ISBNString) (core.Book, bool) { return core.Book{}, false }

// Put does nothing.
func (Noop) Put(core.Book) {}

// Evict does nothing.
func (Noop) Evict(core.ISBNString) {}
