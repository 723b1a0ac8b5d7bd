// Package reservebookcopy implements the Reserve Book Copy use case.
//
// A customer reserves any AVAILABLE copy of a book by ISBN. The copy with the lowest id is picked.
// It follows the Load-Decide-Write pattern with proper separation between infrastructure concerns
// (CommandHandler) and pure business logic (Decide function).
//
// Two concurrent reservations may pick the same copy. The conditional write lets only one of them win,
// the loser is retried and picks the next AVAILABLE copy, or fails with NotFound if none is left.
package reservebookcopy
