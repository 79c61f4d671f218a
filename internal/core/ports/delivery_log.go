package ports

import (
	"context"
	"time"
)

// DeliveryLog records which (event, channel) pairs have already been
// delivered. The dispatcher consults it before every send, so re-delivery of
// an event after a crash never double-sends to a channel that already
// accepted it. Implementations must make MarkDelivered idempotent under
// concurrent dispatchers.
type DeliveryLog interface {
	// WasDelivered reports whether the channel already accepted the event.
	WasDelivered(ctx context.Context, eventID string, channel string) (bool, error)

	// MarkDelivered records a successful delivery. Recording the same
	// (event, channel) pair twice is a no-op.
	MarkDelivered(ctx context.Context, eventID string, channel string, deliveredAt time.Time) error
}

// NotificationChannel is one downstream delivery mechanism (email, SMS).
// Channels are attempted independently of each other: one channel failing
// never blocks another, and never reaches back into the transition engine.
type NotificationChannel interface {
	// Name identifies the channel in the delivery log ("email", "sms").
	Name() string

	// Send delivers the serialized transition event. A non-nil error marks
	// the attempt as failed; the dispatcher owns retry policy.
	Send(ctx context.Context, payload []byte) error
}
