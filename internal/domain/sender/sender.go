package sender

import "context"

// Message is a single outbound text addressed from one identifier to another.
// The identifiers are channel-specific: E.164 phone numbers for SMS, a chat ID for Telegram.
type Message struct {
	To   string
	From string
	Body string
}

// Sender transmits a message through an external messaging API and returns the
// provider's message identifier.
// This keeps the reminder flow independent of any specific provider SDK.
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}
