package core

import (
	"github.com/google/uuid"
)

// EvolveCopy applies a copy lifecycle event to the copy and returns the resulting state.
// Events that don't belong to the lifecycle of this copy leave it unchanged.
//
//	AVAILABLE --BookCopyReserved-------------> RESERVED
//	AVAILABLE --BookCopyBorrowed-------------> BORROWED
//	AVAILABLE --BookCopyCheckedOut-----------> BORROWED
//	RESERVED  --BookCopyCheckedOut-----------> BORROWED
//	RESERVED  --BookCopyReservationCanceled--> AVAILABLE
//	BORROWED  --BookCopyReturned-------------> AVAILABLE
//	any       --BookCopyMarkedLost-----------> LOST
//
// The customer reference is set exactly when the resulting status is RESERVED or BORROWED.
func EvolveCopy(c Copy, event DomainEvent) Copy {
	switch e := event.(type) {
	case BookCopyReserved:
		if e.CopyID == c.ID {
			c.Status = CopyReserved
			c.CustomerID = NullableID(e.CustomerID)
		}

	case BookCopyBorrowed:
		if e.CopyID == c.ID {
			c.Status = CopyBorrowed
			c.CustomerID = NullableID(e.CustomerID)
		}

	case BookCopyCheckedOut:
		if e.CopyID == c.ID {
			c.Status = CopyBorrowed
			c.CustomerID = NullableID(e.CustomerID)
		}

	case BookCopyReturned:
		if e.CopyID == c.ID {
			c.Status = CopyAvailable
			c.CustomerID = uuid.NullUUID{}
		}

	case BookCopyReservationCanceled:
		if e.CopyID == c.ID {
			c.Status = CopyAvailable
			c.CustomerID = uuid.NullUUID{}
		}

	case BookCopyMarkedLost:
		if e.CopyID == c.ID {
			c.Status = CopyLost
			c.CustomerID = uuid.NullUUID{}
		}
	}

	return c
}
