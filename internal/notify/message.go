package notify

import (
	"fmt"
	"strings"

	"github.com/nocodesaarthi/leads-api/internal/models"
)

// LeadSubject is the subject line of every lead notification
const LeadSubject = "New Lead - Nocode Saarthi"

// Message is a plain-text email ready for a relay
type Message struct {
	From    string
	To      string
	Subject string
	Body    string
}

// NewLeadMessage renders the notification for lead
func NewLeadMessage(lead *models.Lead, from, to string) Message {
	phone := "-"
	if lead.Phone != nil && *lead.Phone != "" {
		phone = *lead.Phone
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Service: %s\n", lead.ServiceLabel())
	fmt.Fprintf(&b, "Name: %s\n", lead.Name)
	fmt.Fprintf(&b, "Email: %s\n", lead.Email)
	fmt.Fprintf(&b, "Phone: %s\n\n", phone)
	fmt.Fprintf(&b, "Description:\n%s\n\n", lead.Description)

	return Message{
		From:    from,
		To:      to,
		Subject: LeadSubject,
		Body:    b.String(),
	}
}
