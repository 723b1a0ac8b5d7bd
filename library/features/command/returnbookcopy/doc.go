// Package returnbookcopy implements the Return Book Copy use case.
//
// A BORROWED copy goes back to AVAILABLE and is unbound from its customer. Customers return
// their own copies, librarians return copies at the desk on behalf of a customer.
package returnbookcopy
