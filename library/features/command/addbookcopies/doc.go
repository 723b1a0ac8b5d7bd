// Package addbookcopies implements the Add Book Copies use case: a librarian adds between 1 and 100
// AVAILABLE copies of a cataloged book.
package addbookcopies
