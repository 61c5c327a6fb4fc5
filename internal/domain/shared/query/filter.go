package query

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/erp/backoffice/internal/domain/shared"
)

// Reserved filter keys
const (
	KeySearchTerm = "searchTerm"
	KeyStartDate  = "startDate"
	KeyEndDate    = "endDate"
)

// DefaultDateField is used for date ranges when a kind declares no date field
const DefaultDateField = "createdAt"

// Descriptor maps filter keys to raw query values
type Descriptor map[string]string

// FilterConfig declares which fields of a record kind take part in filtering
type FilterConfig struct {
	Searchable []string
	Filterable []string
	DateField  string
}

// dateField returns the field used for startDate/endDate bounds
func (c FilterConfig) dateField() string {
	if c.DateField == "" {
		return DefaultDateField
	}
	return c.DateField
}

// Keys returns every query key the config recognizes
func (c FilterConfig) Keys() []string {
	keys := []string{KeySearchTerm, KeyStartDate, KeyEndDate}
	return append(keys, c.Filterable...)
}

// Select keeps only the keys the config recognizes. get returns the raw value of a key.
func (c FilterConfig) Select(get func(key string) string) Descriptor {
	d := Descriptor{}
	for _, key := range c.Keys() {
		if v := get(key); v != "" {
			d[key] = v
		}
	}
	return d
}

// Coerce normalizes a raw filter value: "true" and "false" become booleans,
// everything else is kept as the given string.
func Coerce(raw string) any {
	switch raw {
	case "true":
		return true
	case "false":
		return false
	default:
		return raw
	}
}

// BuildPredicate turns a filter descriptor into a predicate tree.
// Search, date range and equality terms are ANDed; an empty descriptor yields True.
func BuildPredicate(d Descriptor, cfg FilterConfig) (Predicate, error) {
	var terms And

	if term := strings.TrimSpace(d[KeySearchTerm]); term != "" && len(cfg.Searchable) > 0 {
		group := make(Or, 0, len(cfg.Searchable))
		for _, field := range cfg.Searchable {
			group = append(group, Contains(field, term))
		}
		terms = append(terms, group)
	}

	if raw := d[KeyStartDate]; raw != "" {
		day, err := ParseDate(raw)
		if err != nil {
			return nil, shared.NewInvalidInputError(fmt.Sprintf("invalid %s: %s", KeyStartDate, raw))
		}
		terms = append(terms, Gte(cfg.dateField(), StartOfDay(day)))
	}
	if raw := d[KeyEndDate]; raw != "" {
		day, err := ParseDate(raw)
		if err != nil {
			return nil, shared.NewInvalidInputError(fmt.Sprintf("invalid %s: %s", KeyEndDate, raw))
		}
		terms = append(terms, Lte(cfg.dateField(), EndOfDay(day)))
	}

	// sorted so identical descriptors build identical trees
	filterable := append([]string(nil), cfg.Filterable...)
	sort.Strings(filterable)
	for _, field := range filterable {
		raw, ok := d[field]
		if !ok || raw == "" {
			continue
		}
		terms = append(terms, Eq(field, Coerce(raw)))
	}

	if len(terms) == 0 {
		return True{}, nil
	}
	return terms, nil
}

// ParseDate accepts YYYY-MM-DD (local time) or RFC3339
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.ParseInLocation(time.DateOnly, raw, time.Local); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(time.Local), nil
}

// StartOfDay returns 00:00:00 of t's local calendar day
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.In(time.Local).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// EndOfDay returns the last instant of t's local calendar day (23:59:59.999)
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.In(time.Local).Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), time.Local)
}
