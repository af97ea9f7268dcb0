package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/nysp/correction-notices/internal/api/handler"
	"github.com/nysp/correction-notices/internal/api/middleware"
	"github.com/nysp/correction-notices/internal/core/ports"
	"github.com/nysp/correction-notices/internal/core/security"
)

// Deps is everything the router wires into handlers.
type Deps struct {
	Log      zerolog.Logger
	Auth     ports.Authenticator
	Sessions ports.SessionResolver
	Policy   *security.Policy

	Drivers          ports.DriverService
	Officers         ports.OfficerService
	VehicleOwners    ports.VehicleOwnerService
	Vehicles         ports.VehicleService
	ViolationTypes   ports.ViolationTypeService
	Notices          ports.CorrectionNoticeService
	NoticeViolations ports.NoticeViolationService

	HealthChecks map[string]handler.HealthCheck

	// Registry receives the HTTP request metrics. Nil uses the Prometheus
	// default registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Log))
	e.Use(prometheusMiddleware(d.Registry))

	policy := d.Policy
	if policy == nil {
		policy = security.NewPolicy()
	}
	authenticate := middleware.Authenticate(d.Sessions)

	// guard returns the middleware chain the policy demands for op on res.
	guard := func(res security.Resource, op security.Operation) []echo.MiddlewareFunc {
		if policy.IsPublic(res, op) {
			return nil
		}
		return []echo.MiddlewareFunc{authenticate, middleware.Authorize(policy, res, op)}
	}

	// --- Token (refresh and logout re-authenticate) ---
	tokens := handler.NewTokenHandler(d.Auth)
	e.POST("/token", tokens.Issue)
	e.PUT("/token", tokens.Issue)
	e.DELETE("/token", tokens.Issue)

	// --- Records ---
	drivers := handler.NewDriverHandler(d.Drivers)
	e.GET("/drivers/frequent-offenders", drivers.FrequentOffenders, guard(security.ResourceDriver, security.OpRead)...)
	e.GET("/drivers/:id", drivers.Get, guard(security.ResourceDriver, security.OpRead)...)
	e.POST("/drivers", drivers.Create, guard(security.ResourceDriver, security.OpCreate)...)
	e.PUT("/drivers/:id", drivers.Update, guard(security.ResourceDriver, security.OpUpdate)...)
	e.DELETE("/drivers/:id", drivers.Delete, guard(security.ResourceDriver, security.OpDelete)...)

	officers := handler.NewOfficerHandler(d.Officers)
	e.GET("/officers/:id", officers.Get, guard(security.ResourceOfficer, security.OpRead)...)
	e.POST("/officers", officers.Create, guard(security.ResourceOfficer, security.OpCreate)...)

	owners := handler.NewVehicleOwnerHandler(d.VehicleOwners)
	e.GET("/vehicle-owners/:id", owners.Get, guard(security.ResourceVehicleOwner, security.OpRead)...)
	e.POST("/vehicle-owners", owners.Create, guard(security.ResourceVehicleOwner, security.OpCreate)...)

	vehicles := handler.NewVehicleHandler(d.Vehicles)
	e.GET("/vehicles/:id", vehicles.Get, guard(security.ResourceVehicle, security.OpRead)...)
	e.POST("/vehicles", vehicles.Create, guard(security.ResourceVehicle, security.OpCreate)...)
	e.PUT("/vehicles/:id", vehicles.Update, guard(security.ResourceVehicle, security.OpUpdate)...)
	e.DELETE("/vehicles/:id", vehicles.Delete, guard(security.ResourceVehicle, security.OpDelete)...)

	notices := handler.NewNoticeHandler(d.Notices, d.NoticeViolations, d.ViolationTypes)
	e.GET("/violation-types", notices.ListViolationTypes, guard(security.ResourceViolationType, security.OpRead)...)
	e.GET("/correction-notices/:id", notices.Get, guard(security.ResourceCorrectionNotice, security.OpRead)...)
	e.GET("/correction-notices/:id/violations", notices.Violations, guard(security.ResourceNoticeViolation, security.OpRead)...)
	e.POST("/correction-notices", notices.Create, guard(security.ResourceCorrectionNotice, security.OpCreate)...)
	e.PUT("/correction-notices/:id", notices.Update, guard(security.ResourceCorrectionNotice, security.OpUpdate)...)
	e.DELETE("/correction-notices/:id", notices.Delete, guard(security.ResourceCorrectionNotice, security.OpDelete)...)
	e.GET("/notice-violations/:id", notices.GetViolation, guard(security.ResourceNoticeViolation, security.OpRead)...)
	e.POST("/notice-violations", notices.CreateViolation, guard(security.ResourceNoticeViolation, security.OpCreate)...)
	e.DELETE("/notice-violations/:id", notices.DeleteViolation, guard(security.ResourceNoticeViolation, security.OpDelete)...)

	// --- Health probes, metrics and docs (no auth required) ---
	health := handler.NewHealthHandler(d.HealthChecks)
	e.GET("/health", health.Liveness)
	e.GET("/health/ready", health.Readiness)
	e.GET("/metrics", metricsHandler(d.Registry))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

func prometheusMiddleware(reg *prometheus.Registry) echo.MiddlewareFunc {
	cfg := echoprometheus.MiddlewareConfig{
		Subsystem: "http",
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}
	if reg != nil {
		cfg.Registerer = reg
	}
	return echoprometheus.NewMiddlewareWithConfig(cfg)
}

func metricsHandler(reg *prometheus.Registry) echo.HandlerFunc {
	if reg == nil {
		return echoprometheus.NewHandler()
	}
	return echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: reg})
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Status >= 500 {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
