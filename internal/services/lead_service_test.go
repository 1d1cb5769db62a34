package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/nocodesaarthi/leads-api/internal/models"
	"github.com/nocodesaarthi/leads-api/internal/notify"
	"github.com/nocodesaarthi/leads-api/internal/services"
	apperrors "github.com/nocodesaarthi/leads-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func ashaRequest() *models.LeadRequest {
	return &models.LeadRequest{
		Name:        "Asha",
		Email:       "asha@example.com",
		Description: "Need a site",
	}
}

func TestLeadService_SubmitLead_PersistsWithDefaults(t *testing.T) {
	store := new(MockDocumentStore)
	notifier := new(MockNotifier)
	service := services.NewLeadService(store, notifier)
	ctx := context.Background()

	expectedDoc := models.Document{
		"name":        "Asha",
		"email":       "asha@example.com",
		"phone":       nil,
		"description": "Need a site",
		"branding":    "No",
		"service":     nil,
	}
	store.On("CreateDocument", mock.Anything, models.LeadCollection, expectedDoc).Return("665f1c2e9b1d4a0012345678", nil).Once()
	notifier.On("Notify", mock.Anything, mock.AnythingOfType("*models.Lead")).
		Return(notify.Result{Status: notify.StatusSkipped, Provider: "smtp"}).Once()

	resp, err := service.SubmitLead(ctx, ashaRequest())
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "665f1c2e9b1d4a0012345678", resp.ID)

	store.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestLeadService_SubmitLead_KeepsSuppliedValues(t *testing.T) {
	store := new(MockDocumentStore)
	notifier := new(MockNotifier)
	service := services.NewLeadService(store, notifier)

	req := ashaRequest()
	req.Phone = strPtr("+91 98765 43210")
	req.Branding = strPtr("Maybe later")
	req.Service = strPtr("Web App")

	store.On("CreateDocument", mock.Anything, models.LeadCollection, mock.MatchedBy(func(doc models.Document) bool {
		return doc["phone"] == "+91 98765 43210" && doc["branding"] == "Maybe later" && doc["service"] == "Web App"
	})).Return("id-1", nil).Once()
	notifier.On("Notify", mock.Anything, mock.MatchedBy(func(lead *models.Lead) bool {
		return lead.ServiceLabel() == "Web App"
	})).Return(notify.Result{Status: notify.StatusSent, Provider: "smtp"}).Once()

	resp, err := service.SubmitLead(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "id-1", resp.ID)
	store.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestLeadService_SubmitLead_NotificationFailureIsInvisible(t *testing.T) {
	statuses := []notify.Status{notify.StatusFailed, notify.StatusSkipped, notify.StatusQueued}

	for _, status := range statuses {
		t.Run(string(status), func(t *testing.T) {
			store := new(MockDocumentStore)
			notifier := new(MockNotifier)
			service := services.NewLeadService(store, notifier)

			store.On("CreateDocument", mock.Anything, models.LeadCollection, mock.Anything).Return("id-2", nil).Once()
			notifier.On("Notify", mock.Anything, mock.Anything).
				Return(notify.Result{Status: status, Provider: "smtp", Err: errors.New("relay down")}).Once()

			resp, err := service.SubmitLead(context.Background(), ashaRequest())
			require.NoError(t, err)
			assert.Equal(t, "ok", resp.Status)
			assert.Equal(t, "id-2", resp.ID)
		})
	}
}

func TestLeadService_SubmitLead_InvalidInput(t *testing.T) {
	store := new(MockDocumentStore)
	notifier := new(MockNotifier)
	service := services.NewLeadService(store, notifier)

	req := ashaRequest()
	req.Email = "not-an-email"

	resp, err := service.SubmitLead(context.Background(), req)
	assert.Nil(t, resp)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "email", verrs[0].Field())

	store.AssertNotCalled(t, "CreateDocument", mock.Anything, mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestLeadService_SubmitLead_StoreFailureSkipsNotification(t *testing.T) {
	store := new(MockDocumentStore)
	notifier := new(MockNotifier)
	service := services.NewLeadService(store, notifier)

	store.On("CreateDocument", mock.Anything, models.LeadCollection, mock.Anything).
		Return("", apperrors.NotConfiguredError("database")).Once()

	resp, err := service.SubmitLead(context.Background(), ashaRequest())
	assert.Nil(t, resp)
	require.Error(t, err)
	assert.Equal(t, "database not configured", err.Error())

	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
	store.AssertExpectations(t)
}
