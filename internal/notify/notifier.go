package notify

import (
	"context"
	"sync"
	"time"

	"github.com/nocodesaarthi/leads-api/internal/models"
	"github.com/nocodesaarthi/leads-api/pkg/circuitbreaker"
	"github.com/nocodesaarthi/leads-api/pkg/logger"
	"github.com/nocodesaarthi/leads-api/pkg/metrics"
	"github.com/nocodesaarthi/leads-api/pkg/tracing"
	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// Status is the outcome of one notification attempt
type Status string

const (
	StatusSent    Status = "sent"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
	StatusQueued  Status = "queued"
)

// Result describes what happened to a notification. It is informational only.
type Result struct {
	Status   Status
	Provider string
	Err      error
}

// Notifier tells someone a lead arrived. Notify never fails the caller.
type Notifier interface {
	Notify(ctx context.Context, lead *models.Lead) Result
}

// Options configures a Dispatcher
type Options struct {
	From    string
	To      string
	Timeout time.Duration
	Async   bool
}

// Dispatcher sends lead notifications through one relay behind a circuit breaker
type Dispatcher struct {
	sender  Sender
	breaker *gobreaker.CircuitBreaker
	opts    Options
	wg      sync.WaitGroup
}

var _ Notifier = (*Dispatcher)(nil)

// NewDispatcher creates a Dispatcher for sender
func NewDispatcher(sender Sender, opts Options) *Dispatcher {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	return &Dispatcher{
		sender:  sender,
		breaker: circuitbreaker.NewCircuitBreaker(circuitbreaker.DefaultConfig("notify-" + sender.Name())),
		opts:    opts,
	}
}

// Notify attempts delivery. Unconfigured relays are skipped without any network call.
// In async mode delivery continues after the request returns and the result is Queued.
func (d *Dispatcher) Notify(ctx context.Context, lead *models.Lead) Result {
	provider := d.sender.Name()
	if !d.sender.Configured() {
		return Result{Status: StatusSkipped, Provider: provider}
	}

	msg := NewLeadMessage(lead, d.opts.From, d.opts.To)

	if !d.opts.Async {
		return d.deliver(ctx, msg)
	}

	detached := context.WithoutCancel(ctx)
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		Record(d.deliver(detached, msg), zap.Bool("async", true))
	}()

	return Result{Status: StatusQueued, Provider: provider}
}

// Wait blocks until in-flight async deliveries finish
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

func (d *Dispatcher) deliver(ctx context.Context, msg Message) Result {
	provider := d.sender.Name()
	ctx, cancel := context.WithTimeout(ctx, d.opts.Timeout)
	defer cancel()

	ctx, span := tracing.StartSpan(ctx, "notify.Send", attribute.String("notify.provider", provider))
	start := time.Now()

	err := circuitbreaker.Run(d.breaker, func() error {
		return d.sender.Send(ctx, msg)
	})

	metrics.NotificationDuration.WithLabelValues(provider).Observe(metrics.MeasureDuration(start))
	tracing.EndSpan(span, err)

	if err != nil {
		return Result{Status: StatusFailed, Provider: provider, Err: err}
	}
	return Result{Status: StatusSent, Provider: provider}
}

// Record counts and logs a notification result
func Record(res Result, fields ...zap.Field) {
	metrics.Notifications.WithLabelValues(res.Provider, string(res.Status)).Inc()

	fields = append(fields,
		zap.String("provider", res.Provider),
		zap.String("status", string(res.Status)),
	)
	switch res.Status {
	case StatusFailed:
		logger.Warn("Lead notification failed", append(fields, zap.Error(res.Err))...)
	case StatusSkipped:
		logger.Debug("Lead notification skipped: relay not configured", fields...)
	default:
		logger.Info("Lead notification dispatched", fields...)
	}
}
