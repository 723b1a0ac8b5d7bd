// Package bookdetails implements the public single-book lookup by ISBN, served through the
// catalog cache.
package bookdetails
