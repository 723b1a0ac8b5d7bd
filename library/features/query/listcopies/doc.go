// Package listcopies implements the librarian inventory listing, for all books or for one ISBN.
package listcopies
