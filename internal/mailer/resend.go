package mailer

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// ResendMailer sends messages through the Resend transactional email API.
type ResendMailer struct {
	client *resend.Client
}

// NewResend creates a mailer for the given API key.
func NewResend(apiKey string) *ResendMailer {
	return &ResendMailer{client: resend.NewClient(apiKey)}
}

// Send delivers one message.
func (m *ResendMailer) Send(ctx context.Context, msg Message) error {
	params := &resend.SendEmailRequest{
		From:    msg.From,
		To:      msg.To,
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		Text:    msg.Text,
		Html:    msg.HTML,
	}
	if _, err := m.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("mailer: send %q: %w", msg.Subject, err)
	}
	return nil
}
