package models

const (
	DefaultPageSize = 100
	MaxPageSize     = 500
)

type Pagination struct {
	Page     int
	PageSize int
}

func (p Pagination) WithDefaults() Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}
