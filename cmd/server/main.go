package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/erp/backoffice/internal/application/backoffice"
	"github.com/erp/backoffice/internal/application/crud"
	"github.com/erp/backoffice/internal/application/report"
	"github.com/erp/backoffice/internal/infrastructure/cache"
	"github.com/erp/backoffice/internal/infrastructure/config"
	"github.com/erp/backoffice/internal/infrastructure/logger"
	"github.com/erp/backoffice/internal/infrastructure/persistence"
	"github.com/erp/backoffice/internal/infrastructure/telemetry"
	"github.com/erp/backoffice/internal/interfaces/http/router"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting back-office API",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("driver", cfg.Database.Driver),
	)

	ctx := context.Background()

	tp, err := telemetry.NewTracerProvider(ctx, telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		ServiceVersion:    cfg.App.Version,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	if tp.IsEnabled() {
		log.Info("Tracing enabled", zap.String("collector", cfg.Telemetry.CollectorEndpoint))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.ForceFlush(shutdownCtx); err != nil {
			log.Warn("Failed to flush pending spans", zap.Error(err))
		}
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	gormLog := logger.NewGormLogger(log, logger.GormLevel(cfg.Log.Level), cfg.Telemetry.DBSlowQueryThresh)
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	dbSystem := "postgresql"
	if cfg.Database.Driver == config.DriverSQLite {
		dbSystem = "sqlite"
	}
	dbTracing := telemetry.NewDBTracingPlugin(telemetry.DBTracingConfig{
		Enabled:         cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled,
		LogFullSQL:      cfg.Telemetry.DBLogFullSQL,
		SlowQueryThresh: cfg.Telemetry.DBSlowQueryThresh,
		DBSystem:        dbSystem,
	}, log)
	if err := dbTracing.RegisterOtelGorm(db.DB); err != nil {
		log.Fatal("Failed to register database tracing", zap.Error(err))
	}

	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(); err != nil {
			log.Fatal("Failed to auto-migrate schema", zap.Error(err))
		}
		log.Info("Schema auto-migrated")
	}

	locker, closeLocker, err := cache.NewSequenceLocker(cfg.Sequence, cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to create sequence locker", zap.Error(err))
	}
	defer func() {
		if err := closeLocker(); err != nil {
			log.Error("Error closing sequence locker", zap.Error(err))
		}
	}()

	services := backoffice.NewServices(persistence.NewStores(db.DB),
		crud.WithLocker(locker),
		crud.WithValidator(binding.Validator.ValidateStruct),
		crud.WithMaxAttempts(cfg.Sequence.MaxAttempts),
	)

	mp, err := telemetry.NewMeterProvider(ctx, telemetry.MetricsConfig{
		Enabled:           cfg.Metrics.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ExportInterval:    cfg.Metrics.ExportInterval,
		ServiceName:       cfg.Telemetry.ServiceName,
		ServiceVersion:    cfg.App.Version,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize meter provider", zap.Error(err))
	}
	defer func() {
		if err := mp.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down meter provider", zap.Error(err))
		}
	}()
	if mp.IsEnabled() {
		sqlDB, err := db.DB.DB()
		if err != nil {
			log.Fatal("Failed to get database handle", zap.Error(err))
		}
		poolMetrics, err := telemetry.RegisterDBPoolMetrics(mp.Meter("db.pool"), sqlDB, cfg.Database.DBName)
		if err != nil {
			log.Fatal("Failed to register database pool metrics", zap.Error(err))
		}
		defer func() { _ = poolMetrics.Unregister() }()
		log.Info("Metrics enabled", zap.Duration("export_interval", cfg.Metrics.ExportInterval))
	}

	engine, err := router.NewEngine(router.Deps{
		Config:         cfg,
		Logger:         log,
		Services:       services,
		Reports:        report.NewServiceFrom(services),
		DB:             db,
		TracerProvider: tp.Provider(),
		Metrics:        mp,
	})
	if err != nil {
		log.Fatal("Failed to build HTTP engine", zap.Error(err))
	}

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-quit:
		log.Info("Shutting down server", zap.String("signal", sig.String()))
	case err := <-serveErr:
		log.Error("Server failed", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
		return
	}
	log.Info("Server exited gracefully")
}
