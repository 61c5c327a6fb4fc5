package query

import (
	"math"
	"strconv"
	"strings"
)

// Pagination defaults
const (
	DefaultPage      = 1
	DefaultLimit     = 10
	MaxLimit         = 100
	DefaultSortBy    = "createdAt"
	DefaultSortOrder = SortDesc
)

// Sort directions
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// RawPagination holds pagination inputs exactly as they arrived in the query string
type RawPagination struct {
	Page      string
	Limit     string
	SortBy    string
	SortOrder string
}

// Pagination is a normalized pagination descriptor
type Pagination struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// Skip returns the number of records before the current page
func (p Pagination) Skip() int {
	return (p.Page - 1) * p.Limit
}

// Descending reports whether the sort direction is descending
func (p Pagination) Descending() bool {
	return p.SortOrder == SortDesc
}

// ResolvePagination clamps raw inputs to defaults; it never fails.
// Limit is capped at MaxLimit and page at the last page whose skip fits in an int.
func ResolvePagination(raw RawPagination) Pagination {
	p := Pagination{
		Page:      positiveOr(raw.Page, DefaultPage),
		Limit:     min(positiveOr(raw.Limit, DefaultLimit), MaxLimit),
		SortBy:    strings.TrimSpace(raw.SortBy),
		SortOrder: strings.ToLower(strings.TrimSpace(raw.SortOrder)),
	}
	p.Page = min(p.Page, math.MaxInt/p.Limit+1)
	if p.SortBy == "" {
		p.SortBy = DefaultSortBy
	}
	if p.SortOrder != SortAsc && p.SortOrder != SortDesc {
		p.SortOrder = DefaultSortOrder
	}
	return p
}

func positiveOr(raw string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return def
	}
	return n
}
