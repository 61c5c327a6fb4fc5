package crud

import (
	"github.com/erp/backoffice/internal/domain/shared/query"
)

// Dependent is a child table whose rows block deletion of a parent
type Dependent struct {
	Name   string // display name used in conflict messages
	Table  string
	Column string // foreign key column referencing the parent id
}

// Sequence issues prefix + zero-padded codes to new records
type Sequence[T any] struct {
	Prefix string
	Width  int
	Field  string // field holding the code
	Assign func(record *T, code string)
}

// Kind is the configuration of one record kind
type Kind[T any] struct {
	Name       string
	Schema     *query.Schema
	Dependents []Dependent
	Sequence   *Sequence[T]
}

// Validator is implemented by records with invariants beyond struct tags
type Validator interface {
	Validate() error
}
