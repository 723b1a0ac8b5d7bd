// Package copydetails implements the librarian lookup of one copy.
package copydetails
