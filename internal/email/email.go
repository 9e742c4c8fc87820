package email

import "context"

// Message is one outbound email as the delivery provider accepts it.
type Message struct {
	From    string
	To      []string
	Subject string
	HTML    string
}

// Sender is the email-delivery capability. Implementations hide the provider;
// tests substitute a double.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
