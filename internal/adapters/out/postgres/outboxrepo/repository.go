package outboxrepo

import (
	"context"
	"encoding/json"
	"time"

	"atelier/internal/core/domain/model/event"
	"atelier/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOutboxRepository implements OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

// NewGormOutboxRepository creates a new GORM outbox repository.
func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Enqueue appends a committed transition event to the queue. The insert is
// conflict-tolerant on the event id: a replayed commit with the same
// deterministic id leaves the existing entry untouched.
func (r *GormOutboxRepository) Enqueue(ctx context.Context, e event.TransitionEvent) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return err
	}

	orderID, err := uuid.Parse(e.OrderID)
	if err != nil {
		return err
	}

	dto := EventDTO{
		ID:            e.ID,
		OrderID:       orderID,
		Payload:       payload,
		Status:        StatusPending,
		Attempts:      0,
		NextAttemptAt: e.Timestamp,
		CreatedAt:     e.Timestamp,
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(&dto).Error
}

// FetchDue returns up to limit pending events whose next attempt is due,
// oldest first. An event stays invisible while an earlier pending event of
// the same order exists, whatever that event's own due time, which keeps
// per-order delivery order intact across reschedules.
func (r *GormOutboxRepository) FetchDue(ctx context.Context, now time.Time, limit int) ([]ports.QueuedEvent, error) {
	events := make([]ports.QueuedEvent, 0)

	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT id, order_id, payload, attempts
		FROM transition_outbox o
		WHERE status = ?
		  AND next_attempt_at <= ?
		  AND NOT EXISTS (
			SELECT 1 FROM transition_outbox e
			WHERE e.order_id = o.order_id
			  AND e.status = ?
			  AND e.seq < o.seq
		  )
		ORDER BY seq
		LIMIT ?
	`, StatusPending, now, StatusPending, limit).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var queued ports.QueuedEvent
		var orderID uuid.UUID

		if err = rows.Scan(&queued.EventID, &orderID, &queued.Payload, &queued.Attempts); err != nil {
			return nil, err
		}

		queued.OrderID = orderID.String()
		events = append(events, queued)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// MarkProcessed finalizes an event after every channel accepted it.
func (r *GormOutboxRepository) MarkProcessed(ctx context.Context, eventID string) error {
	return r.db.WithContext(ctx).
		Model(&EventDTO{}).
		Where("id = ?", eventID).
		Update("status", StatusProcessed).Error
}

// Reschedule records a failed dispatch cycle and defers the event until
// nextAttemptAt.
func (r *GormOutboxRepository) Reschedule(ctx context.Context, eventID string, nextAttemptAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&EventDTO{}).
		Where("id = ?", eventID).
		Updates(map[string]any{
			"attempts":        gorm.Expr("attempts + 1"),
			"next_attempt_at": nextAttemptAt,
		}).Error
}

// MarkFailed finalizes an event whose dispatch exhausted the attempt budget.
// The row stays in the table for manual re-drive.
func (r *GormOutboxRepository) MarkFailed(ctx context.Context, eventID string) error {
	return r.db.WithContext(ctx).
		Model(&EventDTO{}).
		Where("id = ?", eventID).
		Updates(map[string]any{
			"attempts": gorm.Expr("attempts + 1"),
			"status":   StatusFailed,
		}).Error
}
