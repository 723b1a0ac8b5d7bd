// Package registeruser implements the Register User use case.
//
// A CUSTOMER account comes with a Customer profile, both are stored in one transaction.
// A LIBRARIAN account has no profile and may only be registered by another librarian.
package registeruser
