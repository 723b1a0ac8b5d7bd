// Package addbook implements the Add Book to Catalog use case.
package addbook
