// Package notifications drains the transition-event outbox and delivers each
// event to the configured downstream channels. Dispatch is decoupled from the
// transition engine: a committed transition succeeds whatever happens here,
// and each event produces at most one delivery per channel.
package notifications

import (
	"context"
	"log/slog"
	"time"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/ports"

	"github.com/cenkalti/backoff/v4"
)

const (
	// DefaultBatchSize caps how many due events one dispatch cycle consumes.
	DefaultBatchSize = 50

	// DefaultMaxAttempts is the dispatch cycle budget per event. An event
	// still undelivered on some channel after this many cycles is marked
	// failed and logged.
	DefaultMaxAttempts = 5

	// rescheduleBase is the delay after the first failed cycle; it doubles
	// with every further cycle.
	rescheduleBase = 10 * time.Second

	// sendRetries is how many immediate in-process retries each channel send
	// gets within one cycle, before the cycle counts as failed for that
	// channel.
	sendRetries = 2
)

// Dispatcher delivers queued transition events to notification channels.
//
// Channels are attempted independently: a channel that already accepted the
// event (per the delivery log) is skipped, a failing channel does not block
// the others. Only when every channel has accepted the event is it marked
// processed; otherwise the event is rescheduled with exponential delay until
// the attempt budget runs out.
type Dispatcher struct {
	outbox      ports.OutboxRepository
	deliveryLog ports.DeliveryLog
	channels    []ports.NotificationChannel
	clock       commands.Clock
	maxAttempts int
	logger      *slog.Logger
}

// NewDispatcher creates a dispatcher over the given outbox, delivery log, and
// channel set.
func NewDispatcher(
	outbox ports.OutboxRepository,
	deliveryLog ports.DeliveryLog,
	channels []ports.NotificationChannel,
	clock commands.Clock,
	logger *slog.Logger,
) *Dispatcher {
	return &Dispatcher{
		outbox:      outbox,
		deliveryLog: deliveryLog,
		channels:    channels,
		clock:       clock,
		maxAttempts: DefaultMaxAttempts,
		logger:      logger.With("component", "notification_dispatcher"),
	}
}

// DispatchDue consumes one batch of due events and attempts delivery of each.
// Per-event failures are absorbed into reschedules; the returned error covers
// only the fetch itself.
func (d *Dispatcher) DispatchDue(ctx context.Context) error {
	now := d.clock()

	events, err := d.outbox.FetchDue(ctx, now, DefaultBatchSize)
	if err != nil {
		return err
	}

	for _, queued := range events {
		d.dispatchOne(ctx, queued)
	}

	return nil
}

// dispatchOne runs one delivery cycle for one event.
func (d *Dispatcher) dispatchOne(ctx context.Context, queued ports.QueuedEvent) {
	allDelivered := true

	for _, channel := range d.channels {
		delivered, err := d.deliveryLog.WasDelivered(ctx, queued.EventID, channel.Name())
		if err != nil {
			d.logger.ErrorContext(ctx, "Delivery log lookup failed",
				"event_id", queued.EventID, "channel", channel.Name(), "error", err)
			allDelivered = false
			continue
		}
		if delivered {
			continue
		}

		if err = d.send(ctx, channel, queued.Payload); err != nil {
			d.logger.WarnContext(ctx, "Channel send failed",
				"event_id", queued.EventID, "order_id", queued.OrderID,
				"channel", channel.Name(), "error", err)
			allDelivered = false
			continue
		}

		if err = d.deliveryLog.MarkDelivered(ctx, queued.EventID, channel.Name(), d.clock()); err != nil {
			// The channel accepted the send but the log write failed, so the
			// next cycle may send again. This is the at-least-once edge of
			// the delivery guarantee.
			d.logger.ErrorContext(ctx, "Recording delivery failed",
				"event_id", queued.EventID, "channel", channel.Name(), "error", err)
			allDelivered = false
			continue
		}
	}

	if allDelivered {
		if err := d.outbox.MarkProcessed(ctx, queued.EventID); err != nil {
			d.logger.ErrorContext(ctx, "Finalizing event failed",
				"event_id", queued.EventID, "error", err)
		}
		return
	}

	d.recordFailedCycle(ctx, queued)
}

// send attempts the channel with bounded in-process retries.
func (d *Dispatcher) send(ctx context.Context, channel ports.NotificationChannel, payload []byte) error {
	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), sendRetries),
		ctx,
	)

	return backoff.Retry(func() error {
		return channel.Send(ctx, payload)
	}, policy)
}

// recordFailedCycle either reschedules the event or, when the cycle budget is
// spent, marks it failed. Order state is never touched in either case.
func (d *Dispatcher) recordFailedCycle(ctx context.Context, queued ports.QueuedEvent) {
	if queued.Attempts+1 >= d.maxAttempts {
		if err := d.outbox.MarkFailed(ctx, queued.EventID); err != nil {
			d.logger.ErrorContext(ctx, "Marking event failed errored",
				"event_id", queued.EventID, "error", err)
			return
		}

		d.logger.ErrorContext(ctx, "Notification delivery failed permanently",
			"event_id", queued.EventID, "order_id", queued.OrderID,
			"attempts", queued.Attempts+1)
		return
	}

	delay := rescheduleBase << queued.Attempts
	nextAttemptAt := d.clock().Add(delay)

	if err := d.outbox.Reschedule(ctx, queued.EventID, nextAttemptAt); err != nil {
		d.logger.ErrorContext(ctx, "Rescheduling event failed",
			"event_id", queued.EventID, "error", err)
		return
	}

	d.logger.WarnContext(ctx, "Notification delivery rescheduled",
		"event_id", queued.EventID, "order_id", queued.OrderID,
		"attempts", queued.Attempts+1, "next_attempt_at", nextAttemptAt)
}
