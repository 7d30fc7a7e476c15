// internal/api/types/response.go
package types

// PaginatedResponse is the envelope for list endpoints: one page of rows
// plus the paging inputs and the total row count behind them.
type PaginatedResponse[T any] struct {
	Data       []T   `json:"data"`
	Limit      int   `json:"limit"`
	Offset     int   `json:"offset"`
	TotalCount int64 `json:"total_count"`
}

// NewPaginatedResponse wraps one page of rows. A nil page is normalized to
// an empty slice so the data field always serializes as a JSON array.
func NewPaginatedResponse[T any](data []T, limit, offset int, totalCount int64) PaginatedResponse[T] {
	if data == nil {
		data = []T{}
	}
	return PaginatedResponse[T]{
		Data:       data,
		Limit:      limit,
		Offset:     offset,
		TotalCount: totalCount,
	}
}
