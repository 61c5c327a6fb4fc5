// Package report merges grouped sums of child records onto their parent records.
package report

import (
	"context"

	"github.com/erp/backoffice/internal/application/backoffice"
	"github.com/erp/backoffice/internal/domain/finance"
	"github.com/erp/backoffice/internal/domain/fleet"
	"github.com/erp/backoffice/internal/domain/shared/query"
	"github.com/erp/backoffice/internal/infrastructure/telemetry"
	"golang.org/x/sync/errgroup"
)

// Measure names
const (
	TotalDeposit   = "totalDeposit"
	TotalExpense   = "totalExpense"
	CurrentBalance = "currentBalance"
)

// Lister returns every record matching a filter descriptor
type Lister[T any] interface {
	All(ctx context.Context, d query.Descriptor) ([]T, error)
}

// Summer sums measure fields of records grouped by a field
type Summer interface {
	GroupSum(ctx context.Context, groupField string, measures map[string]string, d query.Descriptor) ([]query.AggregationRow, error)
}

// DateRange narrows the child records that are summed
type DateRange struct {
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}

func (r DateRange) descriptor() query.Descriptor {
	d := query.Descriptor{}
	if r.StartDate != "" {
		d[query.KeyStartDate] = r.StartDate
	}
	if r.EndDate != "" {
		d[query.KeyEndDate] = r.EndDate
	}
	return d
}

// Service computes the aggregated reports
type Service struct {
	paymentSources Lister[finance.PaymentSource]
	vehicles       Lister[fleet.Vehicle]
	expenseHeads   Lister[finance.ExpenseHead]
	balances       Summer
	expenses       Summer
}

// NewService creates a report service
func NewService(
	paymentSources Lister[finance.PaymentSource],
	vehicles Lister[fleet.Vehicle],
	expenseHeads Lister[finance.ExpenseHead],
	balances Summer,
	expenses Summer,
) *Service {
	return &Service{
		paymentSources: paymentSources,
		vehicles:       vehicles,
		expenseHeads:   expenseHeads,
		balances:       balances,
		expenses:       expenses,
	}
}

// NewServiceFrom wires a report service to the CRUD services
func NewServiceFrom(svc *backoffice.Services) *Service {
	return NewService(svc.PaymentSources, svc.Vehicles, svc.ExpenseHeads, svc.Balances, svc.Expenses)
}

// sumQuery is one grouped-sum request against a child kind
type sumQuery struct {
	source     Summer
	groupField string
	measures   map[string]string
}

// merge loads parents and every child sum concurrently, then merges them
func merge[T any](ctx context.Context, name string, parents Lister[T], key func(T) string, measures []string, r DateRange, queries ...sumQuery) (_ []query.Merged[T], err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "report", name,
		telemetry.WithAttribute(telemetry.SpanAttrReport, name))
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
	}()

	var records []T
	rowSets := make([][]query.AggregationRow, len(queries))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = parents.All(gctx, nil)
		return err
	})
	for i, q := range queries {
		g.Go(func() error {
			rows, err := q.source.GroupSum(gctx, q.groupField, q.measures, r.descriptor())
			rowSets[i] = rows
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	telemetry.SetAttribute(span, telemetry.SpanAttrRows, len(records))
	return query.Merge(records, key, measures, rowSets...), nil
}

// PaymentSourceBalances returns every payment source with its deposits,
// expenses and the resulting current balance
func (s *Service) PaymentSourceBalances(ctx context.Context, r DateRange) ([]query.Merged[finance.PaymentSource], error) {
	merged, err := merge(ctx, "payment_source_balances", s.paymentSources,
		func(p finance.PaymentSource) string { return p.ID.String() },
		[]string{TotalDeposit, TotalExpense},
		r,
		sumQuery{source: s.balances, groupField: "paymentSourceId", measures: map[string]string{TotalDeposit: "amount"}},
		sumQuery{source: s.expenses, groupField: "paymentSourceId", measures: map[string]string{TotalExpense: "amount"}},
	)
	if err != nil {
		return nil, err
	}
	for i := range merged {
		merged[i].Sums[CurrentBalance] = merged[i].Sum(TotalDeposit).Sub(merged[i].Sum(TotalExpense))
	}
	return merged, nil
}

// VehicleExpenses returns every vehicle with the total of its expenses
func (s *Service) VehicleExpenses(ctx context.Context, r DateRange) ([]query.Merged[fleet.Vehicle], error) {
	return merge(ctx, "vehicle_expenses", s.vehicles,
		func(v fleet.Vehicle) string { return v.ID.String() },
		[]string{TotalExpense},
		r,
		sumQuery{source: s.expenses, groupField: "vehicleId", measures: map[string]string{TotalExpense: "amount"}},
	)
}

// ExpenseHeadExpenses returns every expense head with the total of its expenses
func (s *Service) ExpenseHeadExpenses(ctx context.Context, r DateRange) ([]query.Merged[finance.ExpenseHead], error) {
	return merge(ctx, "expense_head_expenses", s.expenseHeads,
		func(h finance.ExpenseHead) string { return h.ID.String() },
		[]string{TotalExpense},
		r,
		sumQuery{source: s.expenses, groupField: "expenseHeadId", measures: map[string]string{TotalExpense: "amount"}},
	)
}
