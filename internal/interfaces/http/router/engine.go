package router

import (
	"github.com/erp/backoffice/internal/application/backoffice"
	"github.com/erp/backoffice/internal/application/report"
	"github.com/erp/backoffice/internal/infrastructure/config"
	"github.com/erp/backoffice/internal/infrastructure/logger"
	"github.com/erp/backoffice/internal/infrastructure/telemetry"
	"github.com/erp/backoffice/internal/interfaces/http/handler"
	"github.com/erp/backoffice/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Deps are the components the HTTP API is built on
type Deps struct {
	Config         *config.Config
	Logger         *zap.Logger
	Services       *backoffice.Services
	Reports        *report.Service
	DB             handler.Pinger
	TracerProvider trace.TracerProvider      // nil uses the global provider
	Metrics        *telemetry.MeterProvider // nil records no HTTP metrics
}

// NewEngine returns a gin engine with the middleware chain, /health and
// every /api/v1 route mounted
func NewEngine(d Deps) (*gin.Engine, error) {
	cfg := d.Config
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		return nil, err
	}

	tracingCfg := middleware.DefaultTracingConfig()
	tracingCfg.Enabled = cfg.Telemetry.Enabled
	tracingCfg.ServiceName = cfg.Telemetry.ServiceName
	tracingCfg.TracerProvider = d.TracerProvider

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsCfg.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsCfg.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}

	secureCfg := middleware.DefaultSecurityConfig()
	secureCfg.HSTSEnabled = cfg.IsProduction()

	chain := []gin.HandlerFunc{
		middleware.RequestID(),
		logger.Recovery(d.Logger),
		middleware.TracingWithConfig(tracingCfg),
		middleware.SpanErrorMarker(),
		logger.GinMiddleware(d.Logger),
		middleware.SecureWithConfig(secureCfg),
		middleware.CORSWithConfig(corsCfg),
		middleware.BodyLimit(cfg.HTTP.MaxBodySize),
		middleware.Timeout(cfg.HTTP.RequestTimeout),
	}
	if d.Metrics != nil {
		chain = append(chain, middleware.HTTPMetrics(d.Metrics, "/health"))
	}
	engine.Use(chain...)

	system := handler.NewSystemHandler(cfg.App.Name, cfg.App.Version, d.DB)
	engine.GET("/health", system.Health)

	NewRouter(engine, WithAPIVersion("v1")).
		Register(
			NewDomainGroup("system", "/system").
				GET("/ping", system.Ping).
				GET("/info", system.GetSystemInfo),
		).
		Register(ResourceGroups(d.Services)...).
		Register(ReportGroup(handler.NewReportHandler(d.Reports))).
		Setup()

	return engine, nil
}

// ResourceGroups returns the record routes of every kind
func ResourceGroups(svc *backoffice.Services) []RouteRegistrar {
	return []RouteRegistrar{
		Resource("account heads", "/account-heads", handler.NewResourceHandler(svc.AccountHeads)),
		Resource("expense heads", "/expense-heads", handler.NewResourceHandler(svc.ExpenseHeads)),
		Resource("payment methods", "/payment-methods", handler.NewResourceHandler(svc.PaymentMethods)),
		Resource("payment sources", "/payment-sources", handler.NewResourceHandler(svc.PaymentSources)),
		Resource("balances", "/balances", handler.NewResourceHandler(svc.Balances)),
		Resource("expenses", "/expenses", handler.NewResourceHandler(svc.Expenses)),
		Resource("vendors", "/vendors", handler.NewResourceHandler(svc.Vendors)),
		Resource("assets", "/assets", handler.NewResourceHandler(svc.Assets)),
		Resource("carats", "/carats", handler.NewResourceHandler(svc.Carats)),
		Resource("jewelleries", "/jewelleries", handler.NewResourceHandler(svc.Jewelleries)),
		Resource("vehicles", "/vehicles", handler.NewResourceHandler(svc.Vehicles)),
		Resource("buildings", "/buildings", handler.NewResourceHandler(svc.Buildings)),
		Resource("flats", "/flats", handler.NewResourceHandler(svc.Flats)),
	}
}

// ReportGroup returns the report routes
func ReportGroup(h *handler.ReportHandler) *DomainGroup {
	g := NewDomainGroup("reports", "/reports")
	g.Group("payment sources", "/payment-sources").GET("/balance", h.PaymentSourceBalances)
	g.Group("vehicles", "/vehicles").GET("/expenses", h.VehicleExpenses)
	g.Group("expense heads", "/expense-heads").GET("/expenses", h.ExpenseHeadExpenses)
	return g
}
