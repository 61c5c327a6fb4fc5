package telemetry

import (
	"context"
	"errors"
	"time"

	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DBTracingConfig holds configuration for database tracing.
type DBTracingConfig struct {
	Enabled         bool
	LogFullSQL      bool          // include bound query variables in spans
	SlowQueryThresh time.Duration // queries above this get db.slow_query
	DBSystem        string        // postgresql, sqlite
	TracerProvider  trace.TracerProvider
}

// DefaultDBTracingConfig returns the disabled configuration with a 200ms threshold.
func DefaultDBTracingConfig() DBTracingConfig {
	return DBTracingConfig{
		SlowQueryThresh: 200 * time.Millisecond,
		DBSystem:        "postgresql",
	}
}

// DBTracingPlugin registers otelgorm plus callbacks adding row counts, table
// names, errors and slow-query markers to the statement span.
type DBTracingPlugin struct {
	config DBTracingConfig
	logger *zap.Logger
}

// NewDBTracingPlugin creates a database tracing plugin.
func NewDBTracingPlugin(cfg DBTracingConfig, logger *zap.Logger) *DBTracingPlugin {
	return &DBTracingPlugin{config: cfg, logger: logger}
}

// RegisterOtelGorm installs the plugin on db. It is a no-op when disabled.
func (p *DBTracingPlugin) RegisterOtelGorm(db *gorm.DB) error {
	if !p.config.Enabled {
		p.logger.Debug("Database tracing disabled, skipping otelgorm registration")
		return nil
	}

	opts := []otelgorm.Option{otelgorm.WithDBName(p.config.DBSystem)}
	if !p.config.LogFullSQL {
		opts = append(opts, otelgorm.WithoutQueryVariables())
	}
	if p.config.TracerProvider != nil {
		opts = append(opts, otelgorm.WithTracerProvider(p.config.TracerProvider))
	}
	if err := db.Use(otelgorm.NewPlugin(opts...)); err != nil {
		return err
	}
	if err := p.registerCallbacks(db); err != nil {
		return err
	}

	p.logger.Info("Database tracing enabled",
		zap.Bool("log_full_sql", p.config.LogFullSQL),
		zap.Duration("slow_query_threshold", p.config.SlowQueryThresh),
		zap.String("db_system", p.config.DBSystem),
	)
	return nil
}

func (p *DBTracingPlugin) registerCallbacks(db *gorm.DB) error {
	cb := db.Callback()
	steps := []func() error{
		func() error { return cb.Create().Before("gorm:create").Register("otel_timing:before_create", markStart) },
		func() error { return cb.Query().Before("gorm:query").Register("otel_timing:before_query", markStart) },
		func() error { return cb.Update().Before("gorm:update").Register("otel_timing:before_update", markStart) },
		func() error { return cb.Delete().Before("gorm:delete").Register("otel_timing:before_delete", markStart) },
		func() error { return cb.Row().Before("gorm:row").Register("otel_timing:before_row", markStart) },
		func() error { return cb.Raw().Before("gorm:raw").Register("otel_timing:before_raw", markStart) },
		func() error { return cb.Create().After("gorm:create").Register("otel_slow_query:create", p.annotate) },
		func() error { return cb.Query().After("gorm:query").Register("otel_slow_query:query", p.annotate) },
		func() error { return cb.Update().After("gorm:update").Register("otel_slow_query:update", p.annotate) },
		func() error { return cb.Delete().After("gorm:delete").Register("otel_slow_query:delete", p.annotate) },
		func() error { return cb.Row().After("gorm:row").Register("otel_slow_query:row", p.annotate) },
		func() error { return cb.Raw().After("gorm:raw").Register("otel_slow_query:raw", p.annotate) },
	}
	for _, register := range steps {
		if err := register(); err != nil {
			return err
		}
	}
	return nil
}

func markStart(db *gorm.DB) {
	if db.Statement.Context != nil {
		db.Statement.Context = WithQueryStartTime(db.Statement.Context)
	}
}

func (p *DBTracingPlugin) annotate(db *gorm.DB) {
	ctx := db.Statement.Context
	if ctx == nil {
		return
	}
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	if db.Statement.RowsAffected >= 0 {
		span.SetAttributes(attribute.Int64("db.rows_affected", db.Statement.RowsAffected))
	}
	if db.Statement.Table != "" {
		span.SetAttributes(attribute.String("db.sql.table", db.Statement.Table))
	}
	if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
		span.SetStatus(codes.Error, db.Error.Error())
		span.RecordError(db.Error)
	}

	start, ok := ctx.Value(queryStartTimeKey).(time.Time)
	if !ok {
		return
	}
	if elapsed := time.Since(start); elapsed > p.config.SlowQueryThresh {
		span.SetAttributes(
			attribute.Bool("db.slow_query", true),
			attribute.Int64("db.query_duration_ms", elapsed.Milliseconds()),
		)
		span.AddEvent("slow_query_warning", trace.WithAttributes(
			attribute.Int64("duration_ms", elapsed.Milliseconds()),
			attribute.Int64("threshold_ms", p.config.SlowQueryThresh.Milliseconds()),
		))
	}
}

type contextKey string

const queryStartTimeKey contextKey = "otel_query_start_time"

// WithQueryStartTime returns a context recording now as the query start time.
func WithQueryStartTime(ctx context.Context) context.Context {
	return context.WithValue(ctx, queryStartTimeKey, time.Now())
}
