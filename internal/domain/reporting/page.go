package reporting

import "github.com/erp/odoo-dashboard/internal/domain/shared"

// Pagination defaults applied by Normalize.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// PageRequest describes a date-bounded, optionally filtered page of
// records. Page and PageSize are always positive after Normalize.
type PageRequest struct {
	DateFrom  string
	DateTo    string
	State     string // invoice lifecycle state filter ("" = all)
	RepStatus string // payment REP status filter ("" = all)
	Page      int
	PageSize  int
}

// Normalize applies the page/pageSize defaults.
func (r *PageRequest) Normalize() {
	if r.Page < 1 {
		r.Page = DefaultPage
	}
	if r.PageSize < 1 {
		r.PageSize = DefaultPageSize
	}
}

// Validate checks that the date range is present.
func (r PageRequest) Validate() error {
	if r.DateFrom == "" || r.DateTo == "" {
		return shared.NewDomainError(shared.ErrValidation.Code, "dateFrom and dateTo are required")
	}
	return nil
}

// Offset returns the upstream query offset for the requested page.
func (r PageRequest) Offset() int {
	return (r.Page - 1) * r.PageSize
}

// Pagination describes the position of a page within the full result set.
type Pagination struct {
	Page         int  `json:"page"`
	PageSize     int  `json:"pageSize"`
	TotalRecords int  `json:"totalRecords"`
	TotalPages   int  `json:"totalPages"`
	HasNext      bool `json:"hasNext"`
	HasPrev      bool `json:"hasPrev"`
}

// NewPagination computes pagination metadata. TotalPages is never below 1,
// so an empty result set still reports a single (empty) page.
func NewPagination(page, pageSize, totalRecords int) Pagination {
	totalPages := totalRecords / pageSize
	if totalRecords%pageSize > 0 {
		totalPages++
	}
	if totalPages < 1 {
		totalPages = 1
	}
	return Pagination{
		Page:         page,
		PageSize:     pageSize,
		TotalRecords: totalRecords,
		TotalPages:   totalPages,
		HasNext:      page < totalPages,
		HasPrev:      page > 1,
	}
}
