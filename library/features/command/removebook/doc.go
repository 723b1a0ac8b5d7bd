// Package removebook implements the Remove Book from Catalog use case.
//
// A book can only be removed while it has no copies. Authors of the removed book stay in place.
package removebook
