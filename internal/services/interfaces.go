package services

import (
	"context"

	"github.com/nocodesaarthi/leads-api/internal/models"
)

// LeadServiceInterface defines the interface for lead intake operations
type LeadServiceInterface interface {
	SubmitLead(ctx context.Context, req *models.LeadRequest) (*models.LeadResponse, error)
}

// DiagnosticServiceInterface defines the interface for the persistence probe
type DiagnosticServiceInterface interface {
	Probe(ctx context.Context) *models.ProbeResult
}

var (
	_ LeadServiceInterface       = (*LeadService)(nil)
	_ DiagnosticServiceInterface = (*DiagnosticService)(nil)
)
