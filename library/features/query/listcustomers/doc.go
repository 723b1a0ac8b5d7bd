// Package listcustomers implements the librarian customer listing, ordered by last name,
// first name and id.
package listcustomers
