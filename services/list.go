package services

import (
	"daily-delivery-api/config"
)

// ListQuery carries the pagination and sort parameters shared by every
// list endpoint. Values arrive already parsed by the HTTP layer.
type ListQuery struct {
	Page    int
	Limit   int
	SortBy  string
	SortDir string
}

// Pagination is the metadata block attached to every paginated response.
type Pagination struct {
	Page         int   `json:"page"`
	Limit        int   `json:"limit"`
	TotalRecords int64 `json:"totalRecords"`
	TotalPages   int64 `json:"totalPages"`
}

func newPagination(page, limit int, total int64) Pagination {
	return Pagination{
		Page:         page,
		Limit:        limit,
		TotalRecords: total,
		TotalPages:   (total + int64(limit) - 1) / int64(limit),
	}
}

// normalize clamps page/limit and resolves the sort clause against the
// resource's whitelist. An unknown sortBy silently falls back to the
// default field rather than erroring.
func (q ListQuery) normalize(sortable map[string]string) (page, limit int, order string) {
	page = q.Page
	if page < 1 {
		page = 1
	}
	limit = q.Limit
	if limit < 1 {
		limit = config.DefaultPageSize
	}
	if limit > config.MaxPageSize {
		limit = config.MaxPageSize
	}
	column, ok := sortable[q.SortBy]
	if !ok {
		column = sortable[config.DefaultSortField]
	}
	dir := "DESC"
	if q.SortDir == "asc" {
		dir = "ASC"
	}
	return page, limit, column + " " + dir
}
