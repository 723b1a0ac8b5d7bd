// Package marklost implements the Mark Copy Lost use case.
//
// A librarian declares a copy lost, from any status. LOST is terminal: there is no transition
// out of it, and marking a LOST copy again changes nothing.
package marklost
