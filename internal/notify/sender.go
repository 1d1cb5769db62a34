package notify

import "context"

// Sender delivers one message through a specific relay
type Sender interface {
	// Name identifies the relay in logs and metrics
	Name() string

	// Configured reports whether credentials are present. Unconfigured
	// senders are never asked to send.
	Configured() bool

	Send(ctx context.Context, msg Message) error
}

var (
	_ Sender = (*SMTPSender)(nil)
	_ Sender = (*SendGridSender)(nil)
	_ Sender = (*SESSender)(nil)
)
