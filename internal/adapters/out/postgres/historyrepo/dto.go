// Package historyrepo persists the append-only audit trail of stage
// transitions. Rows are written once by the transition engine and never
// updated or deleted afterwards.
package historyrepo

import (
	"time"

	"atelier/internal/core/domain/model/history"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/stage"

	"github.com/google/uuid"
)

// RecordDTO represents the database structure for one audit trail entry.
type RecordDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID          uuid.UUID `gorm:"type:uuid;index"`
	Stage            int
	EnteredAt        time.Time `gorm:"index"`
	ActorID          uuid.UUID `gorm:"type:uuid"`
	Notes            string
	IsCorrection     bool
	PreviousShipDate *time.Time
	NewShipDate      *time.Time
	ChangeReason     string
}

// TableName specifies the database table name for audit trail entries.
func (RecordDTO) TableName() string {
	return "stage_history"
}

func fromDomain(record history.Record) RecordDTO {
	return RecordDTO{
		ID:               record.ID().Bytes(),
		OrderID:          record.OrderID().Bytes(),
		Stage:            int(record.Stage()),
		EnteredAt:        record.EnteredAt(),
		ActorID:          record.ActorID().Bytes(),
		Notes:            record.Notes(),
		IsCorrection:     record.IsCorrection(),
		PreviousShipDate: record.PreviousShipDate(),
		NewShipDate:      record.NewShipDate(),
		ChangeReason:     record.ChangeReason(),
	}
}

func toDomain(dto RecordDTO) (history.Record, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return history.Record{}, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return history.Record{}, err
	}

	actorID, err := kernel.UUIDFromBytes(dto.ActorID[:])
	if err != nil {
		return history.Record{}, err
	}

	record, err := history.NewRecord(
		id,
		orderID,
		stage.Stage(dto.Stage),
		dto.EnteredAt,
		actorID,
		dto.Notes,
		dto.IsCorrection,
	)
	if err != nil {
		return history.Record{}, err
	}

	if dto.PreviousShipDate != nil && dto.NewShipDate != nil {
		return record.WithShipDateRevision(*dto.PreviousShipDate, *dto.NewShipDate, dto.ChangeReason)
	}

	return record, nil
}
