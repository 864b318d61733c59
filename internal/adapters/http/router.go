package http

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-calculator/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quote-calculator/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quote-calculator/internal/platform/config"
	"github.com/jsamuelsen/quote-calculator/internal/platform/telemetry"
)

// DefaultRequestTimeout bounds quote handling when the caller does not
// pick a timeout of their own.
const DefaultRequestTimeout = 30 * time.Second

// RouterConfig carries everything SetupRouter mounts onto the engine.
type RouterConfig struct {
	// Logger receives request and panic records.
	Logger *slog.Logger

	// AppConfig names the service for traces.
	AppConfig *config.AppConfig

	// CORS contains cross-origin settings. The quote endpoint serves
	// browser callers from any origin when enabled.
	CORS *config.CORSConfig

	// QuoteHandler serves the premium calculation endpoint.
	QuoteHandler *handlers.QuoteHandler

	// HealthHandler serves the /-/ probe endpoints.
	HealthHandler *handlers.HealthHandler

	// Timeout is the per-request deadline for the quote route.
	Timeout time.Duration
}

// SetupRouter mounts the middleware chain and both route planes.
//
// Order matters: recovery wraps everything after it, the identity
// middlewares run before anything that logs, CORS answers preflights
// before tracing and logging see them, and the timeout applies only to
// the quote route so probes never inherit a deadline.
//
// The health plane lives under /-/; the quote endpoint is POST at the
// service root.
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	// A wrong verb on the quote endpoint must answer 405, not 404.
	engine.HandleMethodNotAllowed = true

	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
	)

	if cfg.CORS == nil || cfg.CORS.Enabled {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowAllOrigins = true
		engine.Use(cors.New(corsCfg))
	}

	engine.Use(
		telemetry.Middleware(cfg.AppConfig.Name),
		middleware.Logging(cfg.Logger),
	)

	engine.NoRoute(NotFoundHandler)
	engine.NoMethod(MethodNotAllowedHandler)

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	// Quote route group, deadline attached.
	root := engine.Group("")
	if cfg.Timeout > 0 {
		root.Use(middleware.SimpleTimeout(cfg.Timeout))
	}

	if cfg.QuoteHandler != nil {
		cfg.QuoteHandler.RegisterQuoteRoutes(root)
	}
}

// SetupMinimalRouter wires only recovery, request IDs, and the health
// plane, for deployments or tests that need nothing else.
func SetupMinimalRouter(engine *gin.Engine, logger *slog.Logger, healthHandler *handlers.HealthHandler) {
	engine.Use(
		middleware.Recovery(logger),
		middleware.RequestID(),
	)

	if healthHandler != nil {
		healthHandler.RegisterHealthRoutesOnEngine(engine)
	}
}

// NewDefaultRouterConfig assembles a RouterConfig with the stock
// timeout.
func NewDefaultRouterConfig(
	logger *slog.Logger,
	appCfg *config.AppConfig,
	corsCfg *config.CORSConfig,
	quoteHandler *handlers.QuoteHandler,
	healthHandler *handlers.HealthHandler,
) RouterConfig {
	return RouterConfig{
		Logger:        logger,
		AppConfig:     appCfg,
		CORS:          corsCfg,
		QuoteHandler:  quoteHandler,
		HealthHandler: healthHandler,
		Timeout:       DefaultRequestTimeout,
	}
}
