package ports

import (
	"context"
	"time"

	"atelier/internal/core/domain/model/event"
)

// QueuedEvent is one durable outbox entry awaiting dispatch. Payload holds
// the serialized TransitionEvent; Attempts counts completed dispatch cycles
// that left at least one channel undelivered.
type QueuedEvent struct {
	EventID  string
	OrderID  string
	Payload  []byte
	Attempts int
}

// OutboxRepository defines the durable transition-event queue.
//
// Enqueue runs inside the engine's commit transaction, so an event exists iff
// its transition committed. The queue is FIFO per order: FetchDue never
// returns an event while an earlier event for the same order is still
// pending, which preserves per-order notification order without any global
// ordering guarantee.
type OutboxRepository interface {
	// Enqueue appends a committed transition event to the queue. Enqueueing
	// the same event id twice is a no-op, absorbing ambiguous retries.
	Enqueue(ctx context.Context, e event.TransitionEvent) error

	// FetchDue returns up to limit pending events whose next attempt is due,
	// oldest first, skipping events blocked behind an earlier pending event
	// of the same order.
	FetchDue(ctx context.Context, now time.Time, limit int) ([]QueuedEvent, error)

	// MarkProcessed finalizes an event after every channel accepted it.
	MarkProcessed(ctx context.Context, eventID string) error

	// Reschedule records a failed dispatch cycle and defers the event until
	// nextAttemptAt.
	Reschedule(ctx context.Context, eventID string, nextAttemptAt time.Time) error

	// MarkFailed finalizes an event whose dispatch exhausted the attempt
	// budget. Failed events stay in the table for manual re-drive; they are
	// no longer returned by FetchDue and no longer block their order's queue.
	MarkFailed(ctx context.Context, eventID string) error
}
