package notify

import (
	"fmt"
	"time"

	"github.com/nocodesaarthi/leads-api/config"
	"github.com/nocodesaarthi/leads-api/pkg/logger"
	"go.uber.org/zap"
)

// New builds the Dispatcher for the configured relay
func New(cfg *config.Config) (*Dispatcher, error) {
	timeout := time.Duration(cfg.Notify.TimeoutSeconds) * time.Second

	var sender Sender
	switch cfg.Notify.Provider {
	case config.ProviderSMTP:
		sender = NewSMTPSender(SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			User:     cfg.SMTP.User,
			Password: cfg.SMTP.Password,
			Timeout:  timeout,
		})
	case config.ProviderSendGrid:
		sender = NewSendGridSender(cfg.SendGrid.APIKey)
	case config.ProviderSES:
		sender = NewSESSender(SESConfig{
			Region:          cfg.SES.Region,
			AccessKeyID:     cfg.SES.AccessKeyID,
			SecretAccessKey: cfg.SES.SecretAccessKey,
		})
	default:
		return nil, fmt.Errorf("unsupported notification provider %q", cfg.Notify.Provider)
	}

	if !sender.Configured() {
		logger.Warn("Notification relay not configured; lead emails will be skipped",
			zap.String("provider", sender.Name()))
	}

	return NewDispatcher(sender, Options{
		From:    cfg.Notify.FromEmail,
		To:      cfg.Notify.ToEmail,
		Timeout: timeout,
		Async:   cfg.Notify.Async,
	}), nil
}
