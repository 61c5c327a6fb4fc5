package query

// Meta carries page metadata for list responses
type Meta struct {
	Page      int   `json:"page"`
	Limit     int   `json:"limit"`
	Total     int64 `json:"total"`
	TotalPage int   `json:"totalPage"`
}

// Page is one page of records plus its metadata
type Page[T any] struct {
	Data []T `json:"data"`
	Meta Meta `json:"meta"`
}

// NewPage builds a page result. data is never nil so it always encodes as a JSON array.
func NewPage[T any](data []T, total int64, p Pagination) Page[T] {
	if data == nil {
		data = []T{}
	}
	return Page[T]{
		Data: data,
		Meta: Meta{
			Page:      p.Page,
			Limit:     p.Limit,
			Total:     total,
			TotalPage: TotalPages(total, p.Limit),
		},
	}
}

// TotalPages returns ceil(total/limit)
func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := total / int64(limit)
	if total%int64(limit) > 0 {
		pages++
	}
	return int(pages)
}
