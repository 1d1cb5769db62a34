package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/nocodesaarthi/leads-api/internal/models"
	apperrors "github.com/nocodesaarthi/leads-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const ashaJSON = `{"name":"Asha","email":"asha@example.com","description":"Need a site"}`

func newLeadRouter(service *MockLeadService) *gin.Engine {
	router := gin.New()
	router.POST("/leads", NewLeadHandler(service).CreateLead)
	return router
}

type detailBody struct {
	Detail []ValidationError `json:"detail"`
}

func TestLeadHandler_CreateLead_Success(t *testing.T) {
	service := new(MockLeadService)
	service.On("SubmitLead", mock.Anything, mock.MatchedBy(func(req *models.LeadRequest) bool {
		return req.Name == "Asha" && req.Phone == nil && req.Branding == nil && req.Service == nil
	})).Return(&models.LeadResponse{Status: "ok", ID: "665f1c2e9b1d4a0012345678"}, nil).Once()

	w := serve(newLeadRouter(service), http.MethodPost, "/leads", ashaJSON)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","id":"665f1c2e9b1d4a0012345678"}`, w.Body.String())
	service.AssertExpectations(t)
}

func TestLeadHandler_CreateLead_ValidationErrors(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{
			name:      "invalid email",
			body:      `{"name":"Asha","email":"not-an-email","description":"Need a site"}`,
			wantField: "email",
		},
		{
			name:      "missing name",
			body:      `{"email":"asha@example.com","description":"Need a site"}`,
			wantField: "name",
		},
		{
			name:      "empty description",
			body:      `{"name":"Asha","email":"asha@example.com","description":""}`,
			wantField: "description",
		},
		{
			name:      "wrong type",
			body:      `{"name":"Asha","email":"asha@example.com","description":"x","phone":12345}`,
			wantField: "phone",
		},
		{
			name:      "malformed json",
			body:      `{"name":`,
			wantField: "body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(MockLeadService)

			w := serve(newLeadRouter(service), "POST", "/leads", tt.body)

			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
			var body detailBody
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			require.NotEmpty(t, body.Detail)
			assert.Equal(t, tt.wantField, body.Detail[0].Field)
			assert.NotEmpty(t, body.Detail[0].Message)
			service.AssertNotCalled(t, "SubmitLead", mock.Anything, mock.Anything)
		})
	}
}

func TestLeadHandler_CreateLead_InvalidEmailMessage(t *testing.T) {
	service := new(MockLeadService)

	w := serve(newLeadRouter(service), "POST", "/leads",
		`{"name":"Asha","email":"not-an-email","description":"Need a site"}`)

	assert.JSONEq(t, `{"detail":[{"field":"email","message":"Invalid email format"}]}`, w.Body.String())
}

func TestLeadHandler_CreateLead_TypeErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "array body",
			body: `[]`,
			want: `{"detail":[{"field":"body","message":"body must be a JSON object"}]}`,
		},
		{
			name: "string body",
			body: `"Asha"`,
			want: `{"detail":[{"field":"body","message":"body must be a JSON object"}]}`,
		},
		{
			name: "numeric phone",
			body: `{"name":"Asha","email":"asha@example.com","description":"x","phone":12345}`,
			want: `{"detail":[{"field":"phone","message":"phone must be a string"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(newLeadRouter(new(MockLeadService)), http.MethodPost, "/leads", tt.body)

			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
			assert.JSONEq(t, tt.want, w.Body.String())
			assert.NotContains(t, w.Body.String(), "models.")
		})
	}
}

func TestLeadHandler_CreateLead_ServiceValidationError(t *testing.T) {
	service := new(MockLeadService)
	service.On("SubmitLead", mock.Anything, mock.Anything).
		Return(nil, apperrors.InvalidInputError("email", "bad")).Once()

	w := serve(newLeadRouter(service), "POST", "/leads", ashaJSON)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestLeadHandler_CreateLead_StoreFailure(t *testing.T) {
	cases := []error{
		apperrors.NotConfiguredError("database"),
		errors.New("connection refused"),
	}

	for _, storeErr := range cases {
		t.Run(storeErr.Error(), func(t *testing.T) {
			service := new(MockLeadService)
			service.On("SubmitLead", mock.Anything, mock.Anything).Return(nil, storeErr).Once()

			w := serve(newLeadRouter(service), "POST", "/leads", ashaJSON)

			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.JSONEq(t, fmt.Sprintf(`{"detail":%q}`, storeErr.Error()), w.Body.String())
		})
	}
}
