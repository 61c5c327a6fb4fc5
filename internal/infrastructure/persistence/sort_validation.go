package persistence

import (
	"strings"

	"github.com/erp/backoffice/internal/domain/shared/query"
	"gorm.io/gorm/clause"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// orderBy resolves the ORDER BY of a page against the kind's sort whitelist.
// The id column breaks ties so repeated queries return rows in the same order.
func orderBy(p query.Pagination, schema *query.Schema) clause.OrderBy {
	field := ValidateSortField(p.SortBy, schema.SortFields(), query.DefaultSortBy)
	col, _ := schema.Column(field)
	desc := ValidateSortOrder(p.SortOrder) == "DESC"

	columns := []clause.OrderByColumn{
		{Column: clause.Column{Table: clause.CurrentTable, Name: col}, Desc: desc},
	}
	if col != "id" {
		columns = append(columns, clause.OrderByColumn{
			Column: clause.Column{Table: clause.CurrentTable, Name: "id"}, Desc: desc,
		})
	}
	return clause.OrderBy{Columns: columns}
}
