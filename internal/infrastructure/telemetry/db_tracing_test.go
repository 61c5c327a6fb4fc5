package telemetry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type tracedRow struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:100"`
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&tracedRow{}))
	return db
}

func setupRecorder(t *testing.T) (*sdktrace.TracerProvider, *tracetest.SpanRecorder) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return tp, sr
}

func spanAttrs(s sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	out := make(map[attribute.Key]attribute.Value)
	for _, kv := range s.Attributes() {
		out[kv.Key] = kv.Value
	}
	return out
}

func TestDefaultDBTracingConfig(t *testing.T) {
	cfg := DefaultDBTracingConfig()

	assert.False(t, cfg.Enabled)
	assert.False(t, cfg.LogFullSQL)
	assert.Equal(t, 200*time.Millisecond, cfg.SlowQueryThresh)
	assert.Equal(t, "postgresql", cfg.DBSystem)
}

func TestRegisterOtelGorm_Disabled(t *testing.T) {
	db := setupTestDB(t)
	plugin := NewDBTracingPlugin(DefaultDBTracingConfig(), zap.NewNop())

	require.NoError(t, plugin.RegisterOtelGorm(db))
	assert.Nil(t, db.Callback().Query().Get("otel_slow_query:query"))
}

func TestRegisterOtelGorm_RecordsStatementSpans(t *testing.T) {
	db := setupTestDB(t)
	tp, sr := setupRecorder(t)

	plugin := NewDBTracingPlugin(DBTracingConfig{
		Enabled:         true,
		SlowQueryThresh: time.Second,
		DBSystem:        "sqlite",
		TracerProvider:  tp,
	}, zap.NewNop())
	require.NoError(t, plugin.RegisterOtelGorm(db))
	assert.NotNil(t, db.Callback().Query().Get("otel_slow_query:query"))

	ctx, parent := tp.Tracer("test").Start(context.Background(), "request")
	require.NoError(t, db.WithContext(ctx).Create(&tracedRow{Name: "a"}).Error)
	var found tracedRow
	require.NoError(t, db.WithContext(ctx).First(&found, "name = ?", "a").Error)
	parent.End()

	spans := sr.Ended()
	assert.Greater(t, len(spans), 1)
	for _, s := range spans[:len(spans)-1] {
		assert.Equal(t, parent.SpanContext().TraceID(), s.SpanContext().TraceID())
	}
}

func TestRegisterOtelGorm_DoubleRegistration(t *testing.T) {
	db := setupTestDB(t)
	plugin := NewDBTracingPlugin(DBTracingConfig{Enabled: true, DBSystem: "sqlite"}, zap.NewNop())

	require.NoError(t, plugin.RegisterOtelGorm(db))
	assert.Error(t, plugin.RegisterOtelGorm(db))
}

func annotated(t *testing.T, thresh time.Duration, prepare func(tx *gorm.DB)) sdktrace.ReadOnlySpan {
	t.Helper()
	db := setupTestDB(t)
	tp, sr := setupRecorder(t)
	plugin := NewDBTracingPlugin(DBTracingConfig{Enabled: true, SlowQueryThresh: thresh}, zap.NewNop())

	ctx, span := tp.Tracer("test").Start(context.Background(), "stmt")
	tx := db.WithContext(ctx)
	prepare(tx)
	plugin.annotate(tx)
	span.End()

	require.Len(t, sr.Ended(), 1)
	return sr.Ended()[0]
}

func TestAnnotate_RowsAndTable(t *testing.T) {
	s := annotated(t, time.Hour, func(tx *gorm.DB) {
		tx.Statement.Table = "flats"
		tx.Statement.RowsAffected = 3
	})

	got := spanAttrs(s)
	assert.Equal(t, int64(3), got["db.rows_affected"].AsInt64())
	assert.Equal(t, "flats", got["db.sql.table"].AsString())
	assert.NotContains(t, got, attribute.Key("db.slow_query"))
	assert.Equal(t, codes.Unset, s.Status().Code)
}

func TestAnnotate_Error(t *testing.T) {
	s := annotated(t, time.Hour, func(tx *gorm.DB) {
		tx.Error = errors.New("constraint failed")
	})

	assert.Equal(t, codes.Error, s.Status().Code)
	assert.Equal(t, "constraint failed", s.Status().Description)
}

func TestAnnotate_RecordNotFoundIsNotAnError(t *testing.T) {
	s := annotated(t, time.Hour, func(tx *gorm.DB) {
		tx.Error = gorm.ErrRecordNotFound
	})

	assert.Equal(t, codes.Unset, s.Status().Code)
}

func TestAnnotate_SlowQuery(t *testing.T) {
	s := annotated(t, time.Millisecond, func(tx *gorm.DB) {
		tx.Statement.Context = context.WithValue(tx.Statement.Context, queryStartTimeKey, time.Now().Add(-50*time.Millisecond))
	})

	got := spanAttrs(s)
	assert.True(t, got["db.slow_query"].AsBool())
	assert.GreaterOrEqual(t, got["db.query_duration_ms"].AsInt64(), int64(50))
	require.Len(t, s.Events(), 1)
	assert.Equal(t, "slow_query_warning", s.Events()[0].Name)
}

func TestAnnotate_NonRecordingSpan(t *testing.T) {
	db := setupTestDB(t)
	plugin := NewDBTracingPlugin(DBTracingConfig{Enabled: true}, zap.NewNop())

	assert.NotPanics(t, func() {
		plugin.annotate(db.WithContext(context.Background()))
	})
}

func TestWithQueryStartTime(t *testing.T) {
	ctx := WithQueryStartTime(context.Background())
	start, ok := ctx.Value(queryStartTimeKey).(time.Time)
	require.True(t, ok)
	assert.WithinDuration(t, time.Now(), start, time.Second)
}
