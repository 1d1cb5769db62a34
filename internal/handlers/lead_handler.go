package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nocodesaarthi/leads-api/internal/models"
	"github.com/nocodesaarthi/leads-api/internal/services"
	apperrors "github.com/nocodesaarthi/leads-api/pkg/errors"
)

type LeadHandler struct {
	service services.LeadServiceInterface
}

func NewLeadHandler(service services.LeadServiceInterface) *LeadHandler {
	return &LeadHandler{service: service}
}

// CreateLead handles POST /leads
func (h *LeadHandler) CreateLead(c *gin.Context) {
	var req models.LeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondDetail(c, http.StatusRequestEntityTooLarge, "Request body too large", err)
			return
		}
		respondDetail(c, http.StatusUnprocessableEntity, ParseValidationErrors(err), err)
		return
	}

	resp, err := h.service.SubmitLead(c.Request.Context(), &req)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrInvalidInput) {
			respondDetail(c, http.StatusUnprocessableEntity, ParseValidationErrors(err), err)
			return
		}
		respondDetail(c, http.StatusInternalServerError, err.Error(), err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
