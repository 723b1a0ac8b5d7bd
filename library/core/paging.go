package core

const (
	// DefaultPageSize is used when a request does not ask for a page size.
	DefaultPageSize = 20

	// MaxPageSize caps the page size of every listing.
	MaxPageSize = 100
)

// PageRequest selects a zero-based page of a listing.
type PageRequest struct {
	Number int
	Size   int
}

// NewPageRequest clamps number and size into the supported range.
func NewPageRequest(number, size int) PageRequest {
	if number < 0 {
		number = 0
	}

	switch {
	case size <= 0:
		size = DefaultPageSize
	case size > MaxPageSize:
		size = MaxPageSize
	}

	return PageRequest{Number: number, Size: size}
}

// Offset returns the number of rows to skip.
func (p PageRequest) Offset() int {
	return p.Number * p.Size
}

// Page is one page of a listing plus the total number of matching items.
type Page[T any] struct {
	Items      []T `json:"content"`
	Number     int `json:"number"`
	Size       int `json:"size"`
	TotalItems int `json:"totalElements"`
}

// NewPage assembles a Page from the request and the store result.
func NewPage[T any](request PageRequest, items []T, total int) Page[T] {
	if items == nil {
		items = []T{}
	}

	return Page[T]{
		Items:      items,
		Number:     request.Number,
		Size:       request.Size,
		TotalItems: total,
	}
}
