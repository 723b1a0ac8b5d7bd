// Package updatecustomer implements the Update Customer use case.
//
// Librarians may update any customer, customers only their own profile.
package updatecustomer
