package query

import "sort"

// Trait marks what a field may be used for
type Trait uint8

// Field traits
const (
	Searchable Trait = 1 << iota
	Filterable
	Sortable
	Writable
)

// Field maps a JSON field name to its column
type Field struct {
	Name   string
	Column string
	Traits Trait
}

// Has reports whether the field carries trait t
func (f Field) Has(t Trait) bool {
	return f.Traits&t != 0
}

// F declares a field
func F(name, column string, traits ...Trait) Field {
	f := Field{Name: name, Column: column}
	for _, t := range traits {
		f.Traits |= t
	}
	return f
}

// baseFields are present on every record kind
var baseFields = []Field{
	F("id", "id", Sortable),
	F("createdAt", "created_at", Sortable),
	F("updatedAt", "updated_at", Sortable),
}

// Schema is the field registry of one record kind
type Schema struct {
	fields    []Field
	byName    map[string]Field
	dateField string
}

// NewSchema registers the fields of a record kind. dateField names the field
// startDate/endDate apply to; empty means createdAt.
func NewSchema(dateField string, fields ...Field) *Schema {
	s := &Schema{byName: make(map[string]Field), dateField: dateField}
	for _, f := range append(append([]Field(nil), baseFields...), fields...) {
		if _, dup := s.byName[f.Name]; dup {
			panic("query: duplicate field " + f.Name)
		}
		s.fields = append(s.fields, f)
		s.byName[f.Name] = f
	}
	return s
}

// Lookup returns the field registered under name
func (s *Schema) Lookup(name string) (Field, bool) {
	f, ok := s.byName[name]
	return f, ok
}

// Column returns the column of a registered field
func (s *Schema) Column(name string) (string, bool) {
	f, ok := s.byName[name]
	return f.Column, ok
}

// Names returns the field names carrying trait t, in declaration order
func (s *Schema) Names(t Trait) []string {
	var names []string
	for _, f := range s.fields {
		if f.Has(t) {
			names = append(names, f.Name)
		}
	}
	return names
}

// SortFields returns the sort whitelist keyed by field name
func (s *Schema) SortFields() map[string]bool {
	allowed := make(map[string]bool)
	for _, name := range s.Names(Sortable) {
		allowed[name] = true
	}
	return allowed
}

// FilterConfig returns the filter configuration of the kind
func (s *Schema) FilterConfig() FilterConfig {
	return FilterConfig{
		Searchable: s.Names(Searchable),
		Filterable: s.Names(Filterable),
		DateField:  s.dateField,
	}
}

// Writable keeps the writable field names among keys and returns them with
// their columns, sorted by name. Unknown and read-only names are dropped.
func (s *Schema) Writable(keys []string) (names, columns []string) {
	sorted := append([]string(nil), keys...)
	sort.Strings(sorted)
	for _, name := range sorted {
		f, ok := s.byName[name]
		if !ok || !f.Has(Writable) {
			continue
		}
		names = append(names, f.Name)
		columns = append(columns, f.Column)
	}
	return names, columns
}
