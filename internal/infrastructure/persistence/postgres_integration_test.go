//go:build integration

package persistence_test

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/erp/backoffice/internal/application/backoffice"
	"github.com/erp/backoffice/internal/application/crud"
	"github.com/erp/backoffice/internal/application/report"
	"github.com/erp/backoffice/internal/domain/finance"
	"github.com/erp/backoffice/internal/domain/partner"
	"github.com/erp/backoffice/internal/domain/shared"
	"github.com/erp/backoffice/internal/infrastructure/config"
	"github.com/erp/backoffice/internal/infrastructure/migration"
	"github.com/erp/backoffice/internal/infrastructure/persistence"
	"github.com/erp/backoffice/migrations"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap/zaptest"
)

func newPostgresDatabase(t *testing.T) *persistence.Database {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("backoffice_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("admin123"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "Failed to start PostgreSQL container")
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)
	portNum, err := strconv.Atoi(port.Port())
	require.NoError(t, err)

	db, err := persistence.NewDatabase(&config.DatabaseConfig{
		Driver:       config.DriverPostgres,
		Host:         host,
		Port:         portNum,
		User:         "postgres",
		Password:     "admin123",
		DBName:       "backoffice_test",
		SSLMode:      "disable",
		MaxOpenConns: 10,
		MaxIdleConns: 5,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	sqlDB, err := db.DB.DB()
	require.NoError(t, err)
	m, err := migration.NewFromFS(sqlDB, migrations.FS, zaptest.NewLogger(t))
	require.NoError(t, err)
	require.NoError(t, m.Up())
	return db
}

func TestPostgres_Integration(t *testing.T) {
	db := newPostgresDatabase(t)
	ctx := context.Background()
	stores := persistence.NewStores(db.DB)

	t.Run("concurrent vendor codes stay unique without a lock", func(t *testing.T) {
		// two service sets share only the database, like two processes
		a := backoffice.NewServices(stores, crud.WithMaxAttempts(20))
		b := backoffice.NewServices(stores, crud.WithMaxAttempts(20))

		var wg sync.WaitGroup
		codes := make(chan string, 20)
		for i := 0; i < 20; i++ {
			svc := a
			if i%2 == 1 {
				svc = b
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				v, err := svc.Vendors.Create(ctx, &partner.Vendor{Name: "Vendor"})
				if assert.NoError(t, err) {
					codes <- v.VendorID
				}
			}()
		}
		wg.Wait()
		close(codes)

		seen := map[string]bool{}
		for c := range codes {
			assert.False(t, seen[c], "duplicate code %s", c)
			seen[c] = true
		}
		assert.Len(t, seen, 20)
	})

	t.Run("payment source balance report", func(t *testing.T) {
		svc := backoffice.NewServices(stores)

		method, err := svc.PaymentMethods.Create(ctx, &finance.PaymentMethod{Label: "Bank transfer", IsActive: true})
		require.NoError(t, err)
		source, err := svc.PaymentSources.Create(ctx, &finance.PaymentSource{Label: "Main account", PaymentMethodID: method.ID})
		require.NoError(t, err)
		account, err := svc.AccountHeads.Create(ctx, &finance.AccountHead{Label: "Operations"})
		require.NoError(t, err)
		head, err := svc.ExpenseHeads.Create(ctx, &finance.ExpenseHead{Label: "Fuel", AccountHeadID: account.ID})
		require.NoError(t, err)

		day := time.Date(2024, 3, 10, 12, 0, 0, 0, time.Local)
		_, err = svc.Balances.Create(ctx, &finance.Balance{PaymentSourceID: source.ID, Amount: decimal.NewFromInt(1000), Date: day})
		require.NoError(t, err)
		_, err = svc.Expenses.Create(ctx, &finance.Expense{
			ExpenseHeadID: head.ID, PaymentSourceID: source.ID, Amount: decimal.RequireFromString("250.50"), Date: day,
		})
		require.NoError(t, err)

		rows, err := report.NewServiceFrom(svc).PaymentSourceBalances(ctx, report.DateRange{StartDate: "2024-03-10", EndDate: "2024-03-10"})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.True(t, decimal.RequireFromString("749.50").Equal(rows[0].Sum(report.CurrentBalance)))

		_, err = svc.PaymentSources.Delete(ctx, source.ID)
		assert.ErrorIs(t, err, shared.ErrConflict)
	})
}
