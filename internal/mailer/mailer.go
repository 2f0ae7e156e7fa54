package mailer

import "context"

// Message is one outbound transactional email with both body forms.
type Message struct {
	From    string
	To      []string
	ReplyTo string
	Subject string
	Text    string
	HTML    string
}

// Mailer delivers a message through the external email provider. Delivery
// failures are returned to the caller; no retries happen at this layer.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
