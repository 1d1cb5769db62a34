package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nocodesaarthi/leads-api/config"
	"github.com/nocodesaarthi/leads-api/internal/handlers"
	"github.com/nocodesaarthi/leads-api/internal/notify"
	"github.com/nocodesaarthi/leads-api/internal/repository"
	"github.com/nocodesaarthi/leads-api/internal/services"
	"github.com/nocodesaarthi/leads-api/pkg/logger"
	"github.com/nocodesaarthi/leads-api/pkg/profiling"
	"github.com/nocodesaarthi/leads-api/pkg/tracing"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.Server.AppEnv,
		ServiceName: cfg.Observability.ServiceName,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting leads API",
		zap.String("app", cfg.Server.AppName),
		zap.String("version", cfg.Observability.ServiceVersion),
		zap.String("environment", cfg.Server.AppEnv),
		zap.String("database_driver", cfg.Database.Driver),
		zap.String("notify_provider", cfg.Notify.Provider),
	)

	// Initialize distributed tracing
	tracerShutdown, err := tracing.InitTracer(tracing.Options{
		ServiceName:       cfg.Observability.ServiceName,
		ServiceNamespace:  cfg.Observability.ServiceNamespace,
		ServiceVersion:    cfg.Observability.ServiceVersion,
		ServiceInstanceID: cfg.Observability.ServiceInstanceID,
		Environment:       cfg.Server.AppEnv,
		ExporterEndpoint:  cfg.Observability.ExporterEndpoint,
	})
	if err != nil {
		logger.Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tracerShutdown(ctx); shutdownErr != nil {
			logger.Error("Failed to shutdown tracer", zap.Error(shutdownErr))
		}
	}()

	stopProfiler, err := profiling.InitProfiler(cfg.Profiling, cfg.Observability, cfg.Server.AppEnv)
	if err != nil {
		logger.Fatal("Failed to initialize profiler", zap.Error(err))
	}
	defer stopProfiler()

	// Document store: an unconfigured target still starts so /test can report it
	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 15*time.Second)
	store, err := repository.Open(connectCtx, cfg)
	cancelConnect()
	if err != nil {
		logger.Fatal("Failed to open document store", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if closeErr := store.Close(ctx); closeErr != nil {
			logger.Error("Failed to close document store", zap.Error(closeErr))
		}
	}()

	notifier, err := notify.New(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize notifier", zap.Error(err))
	}

	// Initialize services
	leadService := services.NewLeadService(store, notifier)
	diagnosticService := services.NewDiagnosticService(store)

	// Initialize handlers
	leadHandler := handlers.NewLeadHandler(leadService)
	diagnosticHandler := handlers.NewDiagnosticHandler(diagnosticService)

	gin.SetMode(cfg.Server.GinMode)
	router := newRouter(cfg, leadHandler, diagnosticHandler)

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		logger.Info("Server started", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	// Let queued notifications finish before the store and tracer go away
	notifier.Wait()

	logger.Info("Server exited")
}
