package notify

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridSender sends mail through the SendGrid v3 API
type SendGridSender struct {
	apiKey   string
	endpoint string
}

// NewSendGridSender creates a SendGrid sender. An empty key leaves it unconfigured.
func NewSendGridSender(apiKey string) *SendGridSender {
	return &SendGridSender{apiKey: apiKey}
}

func (s *SendGridSender) Name() string { return "sendgrid" }

func (s *SendGridSender) Configured() bool { return s.apiKey != "" }

func (s *SendGridSender) Send(ctx context.Context, msg Message) error {
	client := sendgrid.NewSendClient(s.apiKey)
	if s.endpoint != "" {
		client.Request.BaseURL = s.endpoint
	}

	from := sgmail.NewEmail("", msg.From)
	to := sgmail.NewEmail("", msg.To)
	message := sgmail.NewSingleEmailPlainText(from, msg.Subject, to, msg.Body)

	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d", response.StatusCode)
	}
	return nil
}
