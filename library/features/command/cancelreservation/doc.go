// Package cancelreservation implements the Cancel Reservation use case (undo-reserve).
//
// A RESERVED copy goes back to AVAILABLE and is unbound from its customer. Only the reserving
// customer, or a librarian acting for them, may cancel. Another customer's attempt fails with
// InvalidState naming the rightful holder.
package cancelreservation
