package domain

// Pagination selects a page of a list endpoint. The url tags are the
// wire query-parameter names; zero values are omitted.
type Pagination struct {
	Page      int    `url:"page,omitempty" json:"page,omitempty"`
	Limit     int    `url:"limit,omitempty" json:"limit,omitempty"`
	SortBy    string `url:"sort,omitempty" json:"sortBy,omitempty"`
	SortOrder string `url:"order,omitempty" json:"sortOrder,omitempty"` // "asc" or "desc"
}

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Normalized returns the pagination with defaults applied.
func (p Pagination) Normalized() Pagination {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	return p
}

// Paginated is one page of a list result.
type Paginated[T any] struct {
	Items      []T  `json:"items"`
	Total      int  `json:"total"`
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// NewPage slices items into the requested page and fills in the
// envelope bookkeeping.
func NewPage[T any](items []T, p Pagination) Paginated[T] {
	p = p.Normalized()

	total := len(items)
	start := (p.Page - 1) * p.Limit
	end := start + p.Limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	totalPages := (total + p.Limit - 1) / p.Limit

	return Paginated[T]{
		Items:      items[start:end],
		Total:      total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: totalPages,
		HasNext:    (p.Page-1)*p.Limit+p.Limit < total,
		HasPrev:    p.Page > 1,
	}
}

// SinglePage wraps a flat list into a one-page envelope, used when a
// list endpoint returns a bare array instead of a paginated response.
func SinglePage[T any](items []T) Paginated[T] {
	return Paginated[T]{
		Items:      items,
		Total:      len(items),
		Page:       1,
		Limit:      len(items),
		TotalPages: 1,
	}
}
