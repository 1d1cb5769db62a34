package models

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	apperrors "github.com/nocodesaarthi/leads-api/pkg/errors"
)

// LeadCollection is the document collection leads are written to
const LeadCollection = "lead"

// LeadDefaults is the default-value table applied to optional lead fields
var LeadDefaults = struct {
	Branding string
}{
	Branding: "No",
}

// Document is a schemaless record handed to the document store
type Document map[string]any

// LeadRequest represents a contact form submission.
// Pointer fields are optional; absent and null are treated the same.
type LeadRequest struct {
	Name        string  `json:"name" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	Phone       *string `json:"phone"`
	Description string  `json:"description" binding:"required"`
	Branding    *string `json:"branding"`
	Service     *string `json:"service"`
}

// LeadResponse acknowledges a persisted lead
type LeadResponse struct {
	Status string `json:"status"`
	ID     string `json:"id"`
}

// Lead is a validated submission with defaults applied. Immutable once built.
type Lead struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       *string `json:"phone"`
	Description string  `json:"description"`
	Branding    string  `json:"branding"`
	Service     *string `json:"service"`
}

var leadValidator = newLeadValidator()

func newLeadValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	RegisterJSONFieldNames(v)
	return v
}

// RegisterJSONFieldNames makes validation errors report JSON field names
func RegisterJSONFieldNames(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
}

// ToLead validates the request and applies LeadDefaults.
// Validation errors wrap both ErrInvalidInput and validator.ValidationErrors.
func (r *LeadRequest) ToLead() (*Lead, error) {
	if err := leadValidator.Struct(r); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrInvalidInput, err)
	}

	branding := LeadDefaults.Branding
	if r.Branding != nil {
		branding = *r.Branding
	}

	return &Lead{
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		Description: r.Description,
		Branding:    branding,
		Service:     r.Service,
	}, nil
}

// ServiceLabel names the offering that prompted the inquiry
func (l *Lead) ServiceLabel() string {
	if l.Service == nil || *l.Service == "" {
		return "General Inquiry"
	}
	return *l.Service
}

// Document renders the lead as a store record. Absent optionals stay null.
func (l *Lead) Document() Document {
	return Document{
		"name":        l.Name,
		"email":       l.Email,
		"phone":       optional(l.Phone),
		"description": l.Description,
		"branding":    l.Branding,
		"service":     optional(l.Service),
	}
}

func optional(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
