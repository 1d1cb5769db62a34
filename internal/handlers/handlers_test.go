package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nocodesaarthi/leads-api/internal/models"
	"github.com/stretchr/testify/mock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type MockLeadService struct {
	mock.Mock
}

func (m *MockLeadService) SubmitLead(ctx context.Context, req *models.LeadRequest) (*models.LeadResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LeadResponse), args.Error(1)
}

type MockDiagnosticService struct {
	mock.Mock
}

func (m *MockDiagnosticService) Probe(ctx context.Context) *models.ProbeResult {
	args := m.Called(ctx)
	return args.Get(0).(*models.ProbeResult)
}

func serve(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, http.NoBody)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	router.ServeHTTP(w, req)
	return w
}
