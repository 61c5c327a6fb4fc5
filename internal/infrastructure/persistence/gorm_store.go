package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/erp/backoffice/internal/application/crud"
	"github.com/erp/backoffice/internal/domain/shared/query"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore implements crud.Store for one record kind using GORM
type GormStore[T any] struct {
	db     *gorm.DB
	schema *query.Schema
}

// NewGormStore creates a store for the records of type T described by schema
func NewGormStore[T any](db *gorm.DB, schema *query.Schema) *GormStore[T] {
	return &GormStore[T]{db: db, schema: schema}
}

// translate marks unique constraint violations so callers can retry
func translate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %w", crud.ErrDuplicateKey, err)
	}
	return err
}

// Create inserts record and returns it with store-assigned fields populated
func (s *GormStore[T]) Create(ctx context.Context, record *T) (*T, error) {
	result := s.db.WithContext(ctx).Create(record)
	if result.Error != nil {
		return nil, translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return record, nil
}

// FindMany returns one page of matching records
func (s *GormStore[T]) FindMany(ctx context.Context, pred query.Predicate, p query.Pagination) ([]T, error) {
	db, err := applyPredicate(s.db.WithContext(ctx).Model(new(T)), pred, s.schema)
	if err != nil {
		return nil, err
	}
	db = db.Clauses(orderBy(p, s.schema))
	if p.Limit > 0 {
		db = db.Offset(p.Skip()).Limit(p.Limit)
	}

	var records []T
	if err := db.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Count returns the number of matching records
func (s *GormStore[T]) Count(ctx context.Context, pred query.Predicate) (int64, error) {
	db, err := applyPredicate(s.db.WithContext(ctx).Model(new(T)), pred, s.schema)
	if err != nil {
		return 0, err
	}
	var total int64
	if err := db.Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// FindOne returns the record with the given id, nil if absent
func (s *GormStore[T]) FindOne(ctx context.Context, id uuid.UUID) (*T, error) {
	var record T
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Update writes the given columns of record to the row with id.
// Returns nil when the row no longer exists.
func (s *GormStore[T]) Update(ctx context.Context, id uuid.UUID, record *T, columns []string) (*T, error) {
	selected := append(append([]string(nil), columns...), "updated_at")
	result := s.db.WithContext(ctx).
		Model(new(T)).
		Where("id = ?", id).
		Select(selected).
		Updates(record)
	if result.Error != nil {
		return nil, translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return s.FindOne(ctx, id)
}

// Delete removes the row with id and returns it; nil when it is already gone
func (s *GormStore[T]) Delete(ctx context.Context, id uuid.UUID) (*T, error) {
	existing, err := s.FindOne(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return existing, nil
}

// CountReferences counts rows of dep.Table whose dep.Column equals id
func (s *GormStore[T]) CountReferences(ctx context.Context, dep crud.Dependent, id uuid.UUID) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).
		Table(dep.Table).
		Where(clause.Eq{Column: clause.Column{Name: dep.Column}, Value: id}).
		Count(&n).Error
	if err != nil {
		return 0, err
	}
	return n, nil
}

// LatestValue returns field of the most recently created record
func (s *GormStore[T]) LatestValue(ctx context.Context, field string) (string, error) {
	col, ok := s.schema.Column(field)
	if !ok {
		return "", fmt.Errorf("unknown field %q", field)
	}

	var values []string
	err := s.db.WithContext(ctx).
		Model(new(T)).
		Order(clause.OrderBy{Columns: []clause.OrderByColumn{
			{Column: clause.Column{Name: "created_at"}, Desc: true},
			{Column: clause.Column{Name: col}, Desc: true},
		}}).
		Limit(1).
		Pluck(col, &values).Error
	if err != nil {
		return "", err
	}
	if len(values) == 0 {
		return "", nil
	}
	return values[0], nil
}

// GroupSum sums the measure fields of matching records per non-null group key
func (s *GormStore[T]) GroupSum(ctx context.Context, groupField string, measures map[string]string, pred query.Predicate) ([]query.AggregationRow, error) {
	groupCol, ok := s.schema.Column(groupField)
	if !ok {
		return nil, fmt.Errorf("unknown group field %q", groupField)
	}

	names := make([]string, 0, len(measures))
	for name := range measures {
		names = append(names, name)
	}
	sort.Strings(names)

	selects := []string{"? AS group_key"}
	vars := []any{clause.Column{Name: groupCol}}
	for i, name := range names {
		col, ok := s.schema.Column(measures[name])
		if !ok {
			return nil, fmt.Errorf("unknown measure field %q", measures[name])
		}
		selects = append(selects, fmt.Sprintf("COALESCE(SUM(?), 0) AS m%d", i))
		vars = append(vars, clause.Column{Name: col})
	}

	db, err := applyPredicate(s.db.WithContext(ctx).Model(new(T)), pred, s.schema)
	if err != nil {
		return nil, err
	}
	rows, err := db.
		Select(strings.Join(selects, ", "), vars...).
		Where(clause.Neq{Column: clause.Column{Name: groupCol}, Value: nil}).
		Group(groupCol).
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []query.AggregationRow
	for rows.Next() {
		var key sql.NullString
		sums := make([]decimal.NullDecimal, len(names))
		dest := make([]any, 0, len(names)+1)
		dest = append(dest, &key)
		for i := range sums {
			dest = append(dest, &sums[i])
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}

		row := query.AggregationRow{GroupKey: key.String, Sums: make(map[string]decimal.Decimal, len(names))}
		for i, name := range names {
			row.Sums[name] = sums[i].Decimal
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// Transaction runs fn with a store bound to a single database transaction
func (s *GormStore[T]) Transaction(ctx context.Context, fn func(tx crud.Store[T]) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore[T]{db: tx, schema: s.schema})
	})
}

var _ crud.Store[struct{}] = (*GormStore[struct{}])(nil)
