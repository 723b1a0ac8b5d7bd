// Package borrowbookcopy implements the self-service Borrow Book Copy use case.
//
// A customer borrows any AVAILABLE copy of a book by ISBN directly, without a prior reservation.
// Like reservebookcopy, a lost race for a copy is retried against the next AVAILABLE copy.
package borrowbookcopy
