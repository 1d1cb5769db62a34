package services

import (
	"context"

	"github.com/nocodesaarthi/leads-api/internal/models"
	"github.com/nocodesaarthi/leads-api/internal/notify"
	"github.com/nocodesaarthi/leads-api/internal/repository"
	"github.com/nocodesaarthi/leads-api/pkg/logger"
	"github.com/nocodesaarthi/leads-api/pkg/metrics"
	"github.com/nocodesaarthi/leads-api/pkg/tracing"
	"go.uber.org/zap"
)

// LeadService validates, persists and announces contact form submissions
type LeadService struct {
	store    repository.DocumentStore
	notifier notify.Notifier
}

// NewLeadService creates a new lead service instance
func NewLeadService(store repository.DocumentStore, notifier notify.Notifier) *LeadService {
	return &LeadService{
		store:    store,
		notifier: notifier,
	}
}

// SubmitLead stores the lead and then attempts a notification.
// Validation and persistence errors are returned; notification outcomes never are.
func (s *LeadService) SubmitLead(ctx context.Context, req *models.LeadRequest) (*models.LeadResponse, error) {
	ctx, span := tracing.StartSpan(ctx, "LeadService.SubmitLead")
	var err error
	defer func() { tracing.EndSpan(span, err) }()

	lead, err := req.ToLead()
	if err != nil {
		metrics.LeadSubmissions.WithLabelValues("invalid").Inc()
		return nil, err
	}

	id, err := s.store.CreateDocument(ctx, models.LeadCollection, lead.Document())
	if err != nil {
		metrics.LeadSubmissions.WithLabelValues("error").Inc()
		logger.Error("Failed to persist lead", zap.Error(err))
		return nil, err
	}

	metrics.LeadSubmissions.WithLabelValues("success").Inc()
	logger.Info("Lead persisted",
		zap.String("lead_id", id),
		zap.String("service", lead.ServiceLabel()))

	// Best effort; the outcome is only observed, never returned
	notify.Record(s.notifier.Notify(ctx, lead), zap.String("lead_id", id))

	return &models.LeadResponse{
		Status: "ok",
		ID:     id,
	}, nil
}
