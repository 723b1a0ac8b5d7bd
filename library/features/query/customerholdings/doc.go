// Package customerholdings implements the "my reservations and loans" view: the copies a customer
// currently holds, split by status.
package customerholdings
