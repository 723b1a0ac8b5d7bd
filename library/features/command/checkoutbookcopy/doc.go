// Package checkoutbookcopy implements the desk Checkout Book Copy use case.
//
// A librarian hands out a copy to a customer. A copy RESERVED by the same customer becomes BORROWED,
// an AVAILABLE copy is borrowed directly without a prior reservation.
package checkoutbookcopy
