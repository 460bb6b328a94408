// Package notifier defines the SMS notification client used to announce
// finished reports.
package notifier

import "context"

// SMS is a single message fanned out to every recipient.
type SMS struct {
	Recipients []string
	Sender     string
	Message    string
}

// Client delivers SMS messages through a gateway.
//
//go:generate mockgen -package mocknotifier -source=interface.go -destination=mock/mocknotifier.go *
type Client interface {
	// SendSMS hands msg to the gateway. A nil error means the gateway accepted it.
	SendSMS(ctx context.Context, msg SMS) error
}
