package crud

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/erp/backoffice/internal/domain/shared"
	"github.com/erp/backoffice/internal/domain/shared/query"
	"github.com/erp/backoffice/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

// DefaultMaxAttempts bounds code assignment retries on duplicate keys
const DefaultMaxAttempts = 3

// Patch is a partial update keyed by JSON field name
type Patch map[string]json.RawMessage

// Service is the generic create/list/get/update/delete service of one record kind
type Service[T any] struct {
	kind        Kind[T]
	store       Store[T]
	locker      Locker
	validate    func(any) error
	maxAttempts int
}

// Option configures a Service
type Option func(*serviceOptions)

type serviceOptions struct {
	locker      Locker
	validate    func(any) error
	maxAttempts int
}

// WithLocker serializes code assignment through l
func WithLocker(l Locker) Option {
	return func(o *serviceOptions) { o.locker = l }
}

// WithValidator sets the struct validator run on patched records
func WithValidator(v func(any) error) Option {
	return func(o *serviceOptions) { o.validate = v }
}

// WithMaxAttempts sets how many times code assignment is tried
func WithMaxAttempts(n int) Option {
	return func(o *serviceOptions) {
		if n > 0 {
			o.maxAttempts = n
		}
	}
}

// NewService creates a service for kind backed by store
func NewService[T any](kind Kind[T], store Store[T], opts ...Option) *Service[T] {
	o := serviceOptions{maxAttempts: DefaultMaxAttempts}
	for _, opt := range opts {
		opt(&o)
	}
	return &Service[T]{
		kind:        kind,
		store:       store,
		locker:      o.locker,
		validate:    o.validate,
		maxAttempts: o.maxAttempts,
	}
}

// Kind returns the kind configuration
func (s *Service[T]) Kind() Kind[T] {
	return s.kind
}

// List returns one page of records matching the filter descriptor
func (s *Service[T]) List(ctx context.Context, d query.Descriptor, raw query.RawPagination) (query.Page[T], error) {
	pred, err := query.BuildPredicate(d, s.kind.Schema.FilterConfig())
	if err != nil {
		return query.Page[T]{}, err
	}
	p := query.ResolvePagination(raw)

	data, err := s.store.FindMany(ctx, pred, p)
	if err != nil {
		return query.Page[T]{}, err
	}
	total, err := s.store.Count(ctx, pred)
	if err != nil {
		return query.Page[T]{}, err
	}
	return query.NewPage(data, total, p), nil
}

// All returns every record matching the filter descriptor in default order
func (s *Service[T]) All(ctx context.Context, d query.Descriptor) ([]T, error) {
	pred, err := query.BuildPredicate(d, s.kind.Schema.FilterConfig())
	if err != nil {
		return nil, err
	}
	p := query.ResolvePagination(query.RawPagination{})
	p.Limit = 0
	return s.store.FindMany(ctx, pred, p)
}

// Get returns the record with the given id
func (s *Service[T]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	record, err := s.store.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, shared.NewNotFoundError(s.kind.Name)
	}
	return record, nil
}

// Create stores a new record, issuing its code when the kind has a sequence
func (s *Service[T]) Create(ctx context.Context, record *T) (created *T, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "crud", "create",
		telemetry.WithAttribute(telemetry.SpanAttrKind, s.kind.Name))
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
	}()

	if r, ok := any(record).(interface{ ResetIdentity() }); ok {
		r.ResetIdentity()
	}
	if err := s.check(record); err != nil {
		return nil, err
	}
	if s.kind.Sequence != nil {
		return s.createWithCode(ctx, record)
	}

	created, err = s.store.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, shared.ErrCreationOrUpdateFailed
	}
	return created, nil
}

// createWithCode reads the last issued code and inserts in one transaction,
// under the kind's lock, retrying when a concurrent writer took the code first.
func (s *Service[T]) createWithCode(ctx context.Context, record *T) (*T, error) {
	seq := s.kind.Sequence
	if s.locker != nil {
		unlock, err := s.locker.Lock(ctx, "sequence:"+s.kind.Name)
		if err != nil {
			return nil, err
		}
		defer unlock()
	}

	var (
		created *T
		err     error
	)
	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		err = s.store.Transaction(ctx, func(tx Store[T]) error {
			last, err := tx.LatestValue(ctx, seq.Field)
			if err != nil {
				return err
			}
			code, err := query.NextCode(last, seq.Prefix, seq.Width)
			if err != nil {
				return err
			}
			seq.Assign(record, code)
			telemetry.SetAttribute(trace.SpanFromContext(ctx), telemetry.SpanAttrRecordCode, code)
			created, err = tx.Create(ctx, record)
			return err
		})
		if !errors.Is(err, ErrDuplicateKey) {
			break
		}
		if r, ok := any(record).(interface{ ResetIdentity() }); ok {
			r.ResetIdentity()
		}
	}
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, shared.ErrCreationOrUpdateFailed
	}
	return created, nil
}

// Update applies the writable fields of patch to an existing record.
// An empty or fully read-only patch returns the record unchanged.
func (s *Service[T]) Update(ctx context.Context, id uuid.UUID, patch Patch) (_ *T, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "crud", "update",
		telemetry.WithAttribute(telemetry.SpanAttrKind, s.kind.Name),
		telemetry.WithAttribute(telemetry.SpanAttrRecordID, id.String()))
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
	}()

	keys := make([]string, 0, len(patch))
	for k := range patch {
		keys = append(keys, k)
	}
	names, columns := s.kind.Schema.Writable(keys)

	var updated *T
	err = s.store.Transaction(ctx, func(tx Store[T]) error {
		existing, err := tx.FindOne(ctx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return shared.NewNotFoundError(s.kind.Name)
		}
		if len(names) == 0 {
			updated = existing
			return nil
		}

		if err := applyPatch(existing, patch, names); err != nil {
			return err
		}
		if err := s.check(existing); err != nil {
			return err
		}

		updated, err = tx.Update(ctx, id, existing, columns)
		if err != nil {
			return err
		}
		if updated == nil {
			return shared.ErrCreationOrUpdateFailed
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a record that no dependent record references and returns it
func (s *Service[T]) Delete(ctx context.Context, id uuid.UUID) (_ *T, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "crud", "delete",
		telemetry.WithAttribute(telemetry.SpanAttrKind, s.kind.Name),
		telemetry.WithAttribute(telemetry.SpanAttrRecordID, id.String()))
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
	}()

	var removed *T
	err = s.store.Transaction(ctx, func(tx Store[T]) error {
		existing, err := tx.FindOne(ctx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return shared.NewNotFoundError(s.kind.Name)
		}

		var refs []shared.Reference
		for _, dep := range s.kind.Dependents {
			n, err := tx.CountReferences(ctx, dep, id)
			if err != nil {
				return err
			}
			if n > 0 {
				refs = append(refs, shared.Reference{Kind: dep.Name, Count: n})
			}
		}
		if len(refs) > 0 {
			return shared.NewConflictError(s.kind.Name, refs...)
		}

		removed, err = tx.Delete(ctx, id)
		if err != nil {
			return err
		}
		if removed == nil {
			return shared.NewNotFoundError(s.kind.Name)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}

// GroupSum sums measures of the records matching d, grouped by groupField
func (s *Service[T]) GroupSum(ctx context.Context, groupField string, measures map[string]string, d query.Descriptor) ([]query.AggregationRow, error) {
	pred, err := query.BuildPredicate(d, s.kind.Schema.FilterConfig())
	if err != nil {
		return nil, err
	}
	return s.store.GroupSum(ctx, groupField, measures, pred)
}

func (s *Service[T]) check(record *T) error {
	if s.validate != nil {
		if err := s.validate(record); err != nil {
			return err
		}
	}
	if v, ok := any(record).(Validator); ok {
		return v.Validate()
	}
	return nil
}

// applyPatch decodes the named patch fields onto record
func applyPatch[T any](record *T, patch Patch, names []string) error {
	subset := make(map[string]json.RawMessage, len(names))
	for _, name := range names {
		subset[name] = patch[name]
	}
	raw, err := json.Marshal(subset)
	if err != nil {
		return shared.NewInvalidInputError("invalid patch")
	}
	if err := json.Unmarshal(raw, record); err != nil {
		return shared.NewInvalidInputError("invalid patch: " + err.Error())
	}
	return nil
}
