// Package registercustomer implements the Register Customer use case, performed by a librarian at
// the desk. Self-service sign-up goes through registeruser, which provisions the profile together
// with the login.
package registercustomer
