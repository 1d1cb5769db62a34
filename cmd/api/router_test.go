package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nocodesaarthi/leads-api/config"
	"github.com/nocodesaarthi/leads-api/internal/handlers"
	"github.com/nocodesaarthi/leads-api/internal/models"
	"github.com/nocodesaarthi/leads-api/internal/notify"
	"github.com/nocodesaarthi/leads-api/internal/repository"
	"github.com/nocodesaarthi/leads-api/internal/services"
	"github.com/nocodesaarthi/leads-api/pkg/db"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: "8000", AllowedOrigins: []string{"*"}},
		Database: config.DatabaseConfig{
			Driver: config.DriverSQLite,
		},
		Notify: config.NotifyConfig{
			Provider:       config.ProviderSMTP,
			FromEmail:      "no-reply@nocodesaarthi.com",
			ToEmail:        "leads@nocodesaarthi.com",
			TimeoutSeconds: 1,
		},
		SMTP:          config.SMTPConfig{Port: 587},
		Observability: config.ObservabilityConfig{ServiceName: "leads-api-test"},
	}
}

func buildRouter(t *testing.T, cfg *config.Config, store repository.DocumentStore) *gin.Engine {
	t.Helper()
	notifier, err := notify.New(cfg)
	require.NoError(t, err)

	return newRouter(cfg,
		handlers.NewLeadHandler(services.NewLeadService(store, notifier)),
		handlers.NewDiagnosticHandler(services.NewDiagnosticService(store)),
	)
}

func do(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRouter_LeadRoundTrip(t *testing.T) {
	sqlDB, err := db.OpenSQLite(filepath.Join(t.TempDir(), "leads.db"))
	require.NoError(t, err)
	store := repository.NewSQLiteStore(sqlDB)
	defer store.Close(context.Background())

	router := buildRouter(t, testConfig(), repository.Instrument(store, config.DriverSQLite))

	req := httptest.NewRequest(http.MethodPost, "/leads",
		strings.NewReader(`{"name":"Asha","email":"asha@example.com","description":"Need a site"}`))
	req.Header.Set("Content-Type", "application/json")
	w := do(router, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.LeadResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)

	doc, err := store.GetDocument(context.Background(), models.LeadCollection, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "Asha", doc["name"])
	assert.Equal(t, "No", doc["branding"])
	assert.Nil(t, doc["phone"])
	assert.Nil(t, doc["service"])

	w = do(router, httptest.NewRequest(http.MethodGet, "/test", http.NoBody))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"backend":"Running","database":"Connected","collections":["lead"]}`, w.Body.String())
}

func TestRouter_UnconfiguredStore(t *testing.T) {
	router := buildRouter(t, testConfig(), repository.NewUnconfiguredStore())

	req := httptest.NewRequest(http.MethodPost, "/leads",
		strings.NewReader(`{"name":"Asha","email":"asha@example.com","description":"Need a site"}`))
	req.Header.Set("Content-Type", "application/json")
	w := do(router, req)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"detail":"database not configured"}`, w.Body.String())

	w = do(router, httptest.NewRequest(http.MethodGet, "/test", http.NoBody))
	assert.JSONEq(t, `{"backend":"Running","database":"Not Configured"}`, w.Body.String())

	w = do(router, httptest.NewRequest(http.MethodGet, "/", http.NoBody))
	assert.JSONEq(t, `{"message":"Nocode Saarthi Backend Running"}`, w.Body.String())
}

func TestRouter_OversizeBody(t *testing.T) {
	router := buildRouter(t, testConfig(), repository.NewUnconfiguredStore())

	big := `{"name":"Asha","email":"asha@example.com","description":"` + strings.Repeat("a", 200<<10) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/leads", strings.NewReader(big))
	req.Header.Set("Content-Type", "application/json")

	w := do(router, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestRouter_CORSAllowsAnyOrigin(t *testing.T) {
	router := buildRouter(t, testConfig(), repository.NewUnconfiguredStore())

	req := httptest.NewRequest(http.MethodOptions, "/leads", http.NoBody)
	req.Header.Set("Origin", "https://landing.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")

	w := do(router, req)
	assert.Less(t, w.Code, 300)
	assert.Equal(t, "https://landing.example", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_CORSAllowsAnyHeader(t *testing.T) {
	router := buildRouter(t, testConfig(), repository.NewUnconfiguredStore())

	req := httptest.NewRequest(http.MethodOptions, "/leads", http.NoBody)
	req.Header.Set("Origin", "https://landing.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "x-requested-with, x-client-version")

	w := do(router, req)
	assert.Less(t, w.Code, 300)
	assert.Equal(t, "https://landing.example", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "x-requested-with")
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "x-client-version")
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestRouter_CORSRestrictedOriginsKeepHeaderList(t *testing.T) {
	cfg := testConfig()
	cfg.Server.AllowedOrigins = []string{"https://nocodesaarthi.com"}
	router := buildRouter(t, cfg, repository.NewUnconfiguredStore())

	req := httptest.NewRequest(http.MethodOptions, "/leads", http.NoBody)
	req.Header.Set("Origin", "https://nocodesaarthi.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "x-client-version")

	w := do(router, req)
	assert.Less(t, w.Code, 300)
	assert.Equal(t, "https://nocodesaarthi.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.NotContains(t, w.Header().Get("Access-Control-Allow-Headers"), "x-client-version")
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Content-Type")
}

func TestRouter_CORSRestrictedOrigins(t *testing.T) {
	cfg := testConfig()
	cfg.Server.AllowedOrigins = []string{"https://nocodesaarthi.com"}
	router := buildRouter(t, cfg, repository.NewUnconfiguredStore())

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.Header.Set("Origin", "https://evil.example")

	w := do(router, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRouter_Metrics(t *testing.T) {
	router := buildRouter(t, testConfig(), repository.NewUnconfiguredStore())

	w := do(router, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}
