package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Registry is served on /metrics. A dedicated registry keeps test binaries
	// free of duplicate-registration panics from the default one.
	Registry = newRegistry()

	factory = promauto.With(Registry)

	// Buckets cover fast local inserts up to slow SMTP handshakes
	CustomAPIBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 3, 5, 8, 13}

	// HTTP Metrics
	HTTPRequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_server_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"http_request_method", "http_route", "http_response_status_code"},
	)

	HTTPRequestTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_server_request_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"http_request_method", "http_route", "http_response_status_code"},
	)

	ActiveRequests = factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "http_server_active_requests",
			Help: "Number of active HTTP requests",
		},
		[]string{"http_request_method"},
	)

	// Document store metrics
	StoreOperationDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_client_operation_duration_seconds",
			Help:    "Document store operation duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"driver", "operation", "status"},
	)

	StoreOperationTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_client_operation_total",
			Help: "Total number of document store operations",
		},
		[]string{"driver", "operation", "status"},
	)

	// Business Metrics
	LeadSubmissions = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leads_submissions_total",
			Help: "Total number of lead form submissions",
		},
		[]string{"status"},
	)

	Notifications = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leads_notifications_total",
			Help: "Lead notification attempts by relay and outcome",
		},
		[]string{"provider", "status"},
	)

	NotificationDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "leads_notification_duration_seconds",
			Help:    "Lead notification relay call duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"provider"},
	)

	// CircuitBreakerState follows gobreaker.State: 0 closed, 1 half-open, 2 open
	CircuitBreakerState = factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Current circuit breaker state per relay",
		},
		[]string{"breaker"},
	)
)

func newRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// MeasureDuration measures the duration of an operation
func MeasureDuration(start time.Time) float64 {
	return time.Since(start).Seconds()
}

// ObserveStoreOperation records one document store call
func ObserveStoreOperation(driver, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	StoreOperationDuration.WithLabelValues(driver, operation, status).Observe(MeasureDuration(start))
	StoreOperationTotal.WithLabelValues(driver, operation, status).Inc()
}
