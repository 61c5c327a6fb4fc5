package crud

import (
	"context"
	"errors"

	"github.com/erp/backoffice/internal/domain/shared/query"
	"github.com/google/uuid"
)

// ErrDuplicateKey is wrapped by stores when an insert or update violates a unique constraint
var ErrDuplicateKey = errors.New("duplicate key")

// Store is the record store the service runs against.
//
// Absence is reported as a nil record with a nil error; every other failure
// is returned as an error and propagated unchanged by the service.
type Store[T any] interface {
	// Create inserts record and returns the stored row
	Create(ctx context.Context, record *T) (*T, error)
	// FindMany returns the page selected by p. A Limit of 0 returns every match.
	FindMany(ctx context.Context, pred query.Predicate, p query.Pagination) ([]T, error)
	// Count returns the number of records matching pred
	Count(ctx context.Context, pred query.Predicate) (int64, error)
	// FindOne returns the record with the given id
	FindOne(ctx context.Context, id uuid.UUID) (*T, error)
	// Update writes the listed columns of record and returns the stored row,
	// nil when no row was changed
	Update(ctx context.Context, id uuid.UUID, record *T, columns []string) (*T, error)
	// Delete removes the record and returns it, nil when it no longer exists
	Delete(ctx context.Context, id uuid.UUID) (*T, error)
	// CountReferences counts rows of a dependent table that reference id
	CountReferences(ctx context.Context, dep Dependent, id uuid.UUID) (int64, error)
	// LatestValue returns a field of the most recently created record, "" when there is none
	LatestValue(ctx context.Context, field string) (string, error)
	// GroupSum sums measure fields of the records matching pred, grouped by groupField.
	// measures maps output measure names to field names.
	GroupSum(ctx context.Context, groupField string, measures map[string]string, pred query.Predicate) ([]query.AggregationRow, error)
	// Transaction runs fn against a store bound to one transaction
	Transaction(ctx context.Context, fn func(tx Store[T]) error) error
}

// Locker serializes work under a key across callers
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}
