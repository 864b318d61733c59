// Package main boots the quote-calculator HTTP service.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jsamuelsen/quote-calculator/internal/adapters/http"
	"github.com/jsamuelsen/quote-calculator/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quote-calculator/internal/adapters/idgen"
	"github.com/jsamuelsen/quote-calculator/internal/app"
	"github.com/jsamuelsen/quote-calculator/internal/platform/config"
	"github.com/jsamuelsen/quote-calculator/internal/platform/logging"
	"github.com/jsamuelsen/quote-calculator/internal/platform/telemetry"
	"github.com/jsamuelsen/quote-calculator/internal/ports"
)

// Injected at build time:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// The /-/build endpoint reports these values verbatim.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := newLogger(cfg)
	logger.Info("service starting",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(ctx); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	server := assembleServer(cfg, logger)
	serverErr := server.Start()

	return waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)
}

// loadConfig resolves the profile from APP_ENVIRONMENT and returns a
// validated configuration. A broken config never gets past this point.
func loadConfig() (*config.Config, error) {
	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// newLogger builds the service logger and installs it as the process
// default, so context fallbacks resolve to the configured sinks.
func newLogger(cfg *config.Config) *slog.Logger {
	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logging.SetDefault(logger)

	return logger
}

// assembleServer wires the domain service, handlers, and middleware
// chain onto a configured HTTP server.
func assembleServer(cfg *config.Config, logger *slog.Logger) *http.Server {
	quoteService := app.NewQuoteService(app.QuoteServiceConfig{
		IDGenerator: idgen.New(),
		Logger:      logger,
	})

	buildInfo := handlers.NewBuildInfo(Version, Commit, BuildTime)
	healthRegistry := ports.NewHealthRegistry()

	server := http.New(&cfg.Server, logger)
	http.SetupRouter(server.Engine(), http.RouterConfig{
		Logger:        logger,
		AppConfig:     &cfg.App,
		CORS:          &cfg.CORS,
		HealthHandler: handlers.NewHealthHandler(healthRegistry, buildInfo),
		QuoteHandler:  handlers.NewQuoteHandler(quoteService),
		Timeout:       cfg.Server.RequestTimeout,
	})

	return server
}

// waitForShutdown blocks until SIGINT/SIGTERM or a server failure, then
// drains in-flight requests within the configured timeout.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	timeout time.Duration,
) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)

	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	logger.Info("draining requests", slog.Duration("timeout", timeout))

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
