// Package customerdetails implements the customer profile lookup. Customers see only their own
// profile, librarians see all.
package customerdetails
