package types

// Filter represents query parameters for filtering and pagination.
type Filter struct {
	Search         string                 `json:"search,omitempty"`
	Sort           map[string]string      `json:"sort,omitempty"`
	Filter         map[string]interface{} `json:"filter,omitempty"`
	Limit          int                    `json:"limit"`
	Offset         int                    `json:"offset"`
	Page           int                    `json:"page"`
	WithPagination bool                   `json:"with_pagination"`
}

// Pagination represents pagination metadata.
type Pagination struct {
	TotalCount uint64 `json:"total_count"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	TotalPages int    `json:"total_pages"`
}

// NewPagination считает количество страниц округлением вверх.
func NewPagination(totalCount uint64, page, limit int) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = int((totalCount + uint64(limit) - 1) / uint64(limit))
	}
	return Pagination{
		TotalCount: totalCount,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}

// http://localhost:8080/api/employees?search=ivanov&filter[role]=Employee&filter[manager_id]=3&page=2&limit=10
