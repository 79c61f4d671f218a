// Package deliverylog persists which (event, channel) pairs have been
// delivered. The unique index on the pair is what makes notification
// delivery exactly-once-per-channel across dispatcher restarts.
package deliverylog

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DeliveryDTO represents one successful delivery of an event to a channel.
type DeliveryDTO struct {
	EventID     string `gorm:"primaryKey"`
	Channel     string `gorm:"primaryKey"`
	DeliveredAt time.Time
}

// TableName specifies the database table name for delivery entries.
func (DeliveryDTO) TableName() string {
	return "notification_deliveries"
}

// GormDeliveryLog implements DeliveryLog using GORM.
type GormDeliveryLog struct {
	db *gorm.DB
}

// NewGormDeliveryLog creates a new GORM delivery log.
func NewGormDeliveryLog(db *gorm.DB) *GormDeliveryLog {
	return &GormDeliveryLog{db: db}
}

// WasDelivered reports whether the channel already accepted the event.
func (l *GormDeliveryLog) WasDelivered(ctx context.Context, eventID string, channel string) (bool, error) {
	var count int64
	err := l.db.WithContext(ctx).
		Model(&DeliveryDTO{}).
		Where("event_id = ? AND channel = ?", eventID, channel).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// MarkDelivered records a successful delivery. The insert is
// conflict-tolerant, so concurrent dispatchers recording the same pair both
// succeed with one row.
func (l *GormDeliveryLog) MarkDelivered(ctx context.Context, eventID string, channel string, deliveredAt time.Time) error {
	dto := DeliveryDTO{
		EventID:     eventID,
		Channel:     channel,
		DeliveredAt: deliveredAt,
	}

	return l.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dto).Error
}
