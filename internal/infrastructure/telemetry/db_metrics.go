package telemetry

import (
	"context"
	"database/sql"

	"go.opentelemetry.io/otel/metric"
)

// RegisterDBPoolMetrics observes the connection pool of db, labelled with
// name, on every collection. Unregister the result to stop observing.
func RegisterDBPoolMetrics(meter metric.Meter, db *sql.DB, name string) (metric.Registration, error) {
	connections, err := meter.Int64ObservableGauge("db_pool_connections",
		metric.WithDescription("Number of connections in the pool by state"),
		metric.WithUnit("{connection}"))
	if err != nil {
		return nil, err
	}
	maxOpen, err := meter.Int64ObservableGauge("db_pool_connections_max",
		metric.WithDescription("Maximum number of open connections"),
		metric.WithUnit("{connection}"))
	if err != nil {
		return nil, err
	}
	waits, err := meter.Int64ObservableCounter("db_pool_wait_total",
		metric.WithDescription("Total number of connections waited for"),
		metric.WithUnit("{wait}"))
	if err != nil {
		return nil, err
	}

	dbName := AttrDBName.String(name)
	return meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		stats := db.Stats()
		o.ObserveInt64(connections, int64(stats.Idle),
			metric.WithAttributes(dbName, AttrDBPoolState.String("idle")))
		o.ObserveInt64(connections, int64(stats.InUse),
			metric.WithAttributes(dbName, AttrDBPoolState.String("in_use")))
		o.ObserveInt64(maxOpen, int64(stats.MaxOpenConnections), metric.WithAttributes(dbName))
		o.ObserveInt64(waits, stats.WaitCount, metric.WithAttributes(dbName))
		return nil
	}, connections, maxOpen, waits)
}
