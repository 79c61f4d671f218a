package historyrepo

import (
	"context"

	"atelier/internal/core/domain/model/history"
	"atelier/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormHistoryRepository implements HistoryRepository using GORM.
type GormHistoryRepository struct {
	db *gorm.DB
}

// NewGormHistoryRepository creates a new GORM history repository.
func NewGormHistoryRepository(db *gorm.DB) *GormHistoryRepository {
	return &GormHistoryRepository{db: db}
}

// Append persists one audit record. The table has no update path: a record
// that fails domain validation is rejected before it reaches storage.
func (r *GormHistoryRepository) Append(ctx context.Context, record history.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetByOrder retrieves the full audit trail of an order, ordered by the time
// each stage was entered.
func (r *GormHistoryRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]history.Record, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []RecordDTO
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("entered_at, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	records := make([]history.Record, 0, len(dtos))
	for _, dto := range dtos {
		record, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}
