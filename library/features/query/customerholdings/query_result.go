package customerholdings

import (
	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-backend/library/core"
)

// Holdings represents the copies a customer currently holds.
type Holdings struct {
	CustomerID uuid.UUID   `json:"customerId"`
	Reserved   []core.Copy `json:"reserved"`
	Borrowed   []core.Copy `json:"borrowed"`
	Count      int         `json:"count"`
}

// ProjectHoldings splits copies by status. Copies in other statuses are ignored.
func ProjectHoldings(customerID uuid.UUID, copies []core.Copy) Holdings {
	holdings := Holdings{
		CustomerID: customerID,
		Reserved:   []core.Copy{},
		Borrowed:   []core.Copy{},
	}

	for _, c := range copies {
		switch c.Status {
		case core.CopyReserved:
			holdings.Reserved = append(holdings.Reserved, c)
		case core.CopyBorrowed:
			holdings.Borrowed = append(holdings.Borrowed, c)
		default:
			continue
		}

		holdings.Count++
	}

	return holdings
}
