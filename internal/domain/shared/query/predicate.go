package query

// Op is a field comparison operator
type Op string

// Supported comparison operators
const (
	OpEquals   Op = "equals"
	OpContains Op = "contains" // case-insensitive substring
	OpGTE      Op = "gte"
	OpLTE      Op = "lte"
)

// Predicate is a node of a composable boolean filter expression.
// The concrete node types are Condition, And, Or and True.
type Predicate interface {
	isPredicate()
}

// Condition compares one field against a value
type Condition struct {
	Field string
	Op    Op
	Value any
}

// And matches when every child matches
type And []Predicate

// Or matches when at least one child matches
type Or []Predicate

// True matches every record
type True struct{}

func (Condition) isPredicate() {}
func (And) isPredicate()       {}
func (Or) isPredicate()        {}
func (True) isPredicate()      {}

// Eq builds an equality condition
func Eq(field string, value any) Condition {
	return Condition{Field: field, Op: OpEquals, Value: value}
}

// Contains builds a case-insensitive substring condition
func Contains(field, value string) Condition {
	return Condition{Field: field, Op: OpContains, Value: value}
}

// Gte builds an inclusive lower bound condition
func Gte(field string, value any) Condition {
	return Condition{Field: field, Op: OpGTE, Value: value}
}

// Lte builds an inclusive upper bound condition
func Lte(field string, value any) Condition {
	return Condition{Field: field, Op: OpLTE, Value: value}
}
