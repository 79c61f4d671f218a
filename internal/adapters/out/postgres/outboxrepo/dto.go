// Package outboxrepo persists the durable transition-event queue. Events are
// enqueued in the engine's commit transaction and drained by the notification
// dispatch job, FIFO per order.
package outboxrepo

import (
	"time"

	"github.com/google/uuid"
)

// Queue entry states. Pending entries are eligible for dispatch; processed
// and failed entries are finished and no longer block their order's queue.
const (
	StatusPending = iota + 1
	StatusProcessed
	StatusFailed
)

// EventDTO represents one durable outbox entry. The deterministic event id is
// the primary key, so enqueueing a replayed commit collides instead of
// duplicating. Seq assigns a global arrival order used for per-order FIFO.
type EventDTO struct {
	ID            string    `gorm:"primaryKey"`
	Seq           int64     `gorm:"autoIncrement;uniqueIndex"`
	OrderID       uuid.UUID `gorm:"type:uuid;index"`
	Payload       []byte    `gorm:"type:jsonb"`
	Status        int       `gorm:"index"`
	Attempts      int
	NextAttemptAt time.Time
	CreatedAt     time.Time
}

// TableName specifies the database table name for outbox entries.
func (EventDTO) TableName() string {
	return "transition_outbox"
}
