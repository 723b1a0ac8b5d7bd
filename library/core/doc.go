// Package core contains the domain of the library backend:
// the book catalog, the physical inventory of book copies, customers and users.
//
// The copy lifecycle is the heart of this package. A copy is AVAILABLE, RESERVED, BORROWED or LOST,
// and it only changes its status through domain events like BookCopyReserved or BookCopyReturned.
// EvolveCopy applies such an event to a copy, so the pure Decide functions of the command features
// can express every state change as an event instead of mutating entities directly.
//
// The package also holds the error taxonomy (NotFound, Conflict, InvalidState, Validation,
// Forbidden, Unauthenticated), input validation for ISBNs, emails and names,
// and the access policy that maps an Actor to allowed operations.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'domain' layer.
package core
