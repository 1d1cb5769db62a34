package services

import (
	"context"
	"time"

	"github.com/nocodesaarthi/leads-api/internal/models"
	"github.com/nocodesaarthi/leads-api/internal/repository"
	apperrors "github.com/nocodesaarthi/leads-api/pkg/errors"
	"github.com/nocodesaarthi/leads-api/pkg/logger"
	"go.uber.org/zap"
)

const (
	probeTimeout     = 5 * time.Second
	maxProbeErrorLen = 80
)

// DiagnosticService reports whether the document store answers
type DiagnosticService struct {
	store repository.DocumentStore
}

// NewDiagnosticService creates a new diagnostic service instance
func NewDiagnosticService(store repository.DocumentStore) *DiagnosticService {
	return &DiagnosticService{store: store}
}

// Probe lists collections as a read-only reachability check
func (s *DiagnosticService) Probe(ctx context.Context) *models.ProbeResult {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	names, err := s.store.ListCollections(ctx)
	switch {
	case err == nil:
		if names == nil {
			names = []string{}
		}
		return &models.ProbeResult{
			Backend:     models.BackendRunning,
			Database:    models.DatabaseConnected,
			Collections: names,
		}
	case apperrors.Is(err, apperrors.ErrNotConfigured):
		return &models.ProbeResult{
			Backend:  models.BackendRunning,
			Database: models.DatabaseNotConfigured,
		}
	default:
		logger.Warn("Database probe failed", zap.Error(err))
		return &models.ProbeResult{
			Backend:  models.BackendRunning,
			Database: "Error: " + truncate(err.Error(), maxProbeErrorLen),
		}
	}
}

// truncate cuts s to at most n runes
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
