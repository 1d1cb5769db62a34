package main

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/nocodesaarthi/leads-api/config"
	"github.com/nocodesaarthi/leads-api/internal/handlers"
	"github.com/nocodesaarthi/leads-api/internal/middleware"
	"github.com/nocodesaarthi/leads-api/pkg/metrics"
)

// newRouter wires middleware and routes onto a fresh gin engine
func newRouter(cfg *config.Config, leadHandler *handlers.LeadHandler, diagnosticHandler *handlers.DiagnosticHandler) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(cfg.Observability.ServiceName))
	router.Use(middleware.ObservabilityMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	if cfg.AllowsAllOrigins() {
		router.Use(middleware.PreflightEchoMiddleware())
	}
	router.Use(cors.New(corsConfig(cfg)))

	router.GET("/", diagnosticHandler.Root)
	router.GET("/test", diagnosticHandler.Test)
	router.POST("/leads", middleware.BodySizeLimitMiddleware(middleware.DefaultMaxBodySize), leadHandler.CreateLead)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	return router
}

// corsConfig allows any origin when ALLOWED_CORS_ORIGINS contains "*".
// The origin is reflected rather than sent as "*" so credentialed requests still work,
// and methods and headers are left to PreflightEchoMiddleware.
func corsConfig(cfg *config.Config) cors.Config {
	c := cors.Config{
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if cfg.AllowsAllOrigins() {
		c.AllowOriginFunc = func(string) bool { return true }
		return c
	}

	c.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	c.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "traceparent", "tracestate"}

	origins := cfg.Server.AllowedOrigins
	if cfg.IsDevelopment() {
		origins = append(origins, "http://localhost:3000", "http://127.0.0.1:3000")
	}
	c.AllowOrigins = origins
	return c
}
