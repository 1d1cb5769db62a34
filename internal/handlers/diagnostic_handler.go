package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nocodesaarthi/leads-api/internal/models"
	"github.com/nocodesaarthi/leads-api/internal/services"
)

type DiagnosticHandler struct {
	service services.DiagnosticServiceInterface
}

func NewDiagnosticHandler(service services.DiagnosticServiceInterface) *DiagnosticHandler {
	return &DiagnosticHandler{service: service}
}

// Root handles GET /
func (h *DiagnosticHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": models.RootMessage})
}

// Test handles GET /test. It always answers 200; store trouble is reported in the body.
func (h *DiagnosticHandler) Test(c *gin.Context) {
	c.Header("Cache-Control", "no-cache, no-store, max-age=0, must-revalidate")

	res := h.service.Probe(c.Request.Context())

	body := gin.H{
		"backend":  res.Backend,
		"database": res.Database,
	}
	if res.Collections != nil {
		body["collections"] = res.Collections
	}

	c.JSON(http.StatusOK, body)
}
