// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// order domain aggregate, handling the conversion between domain entities and
// database representations.
package orderrepo

import (
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/stage"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The version column drives optimistic concurrency: every committed mutation
// increments it, and updates are conditional on the version the caller read.
type OrderDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrganizationID   uuid.UUID `gorm:"type:uuid;index"`
	CurrentStage     int
	OriginalShipDate time.Time
	CurrentShipDate  time.Time
	Status           int `gorm:"index"`
	Version          int64
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:               o.ID().Bytes(),
		OrganizationID:   o.OrganizationID().Bytes(),
		CurrentStage:     int(o.CurrentStage()),
		OriginalShipDate: o.OriginalShipDate(),
		CurrentShipDate:  o.CurrentShipDate(),
		Status:           int(o.Status()),
		Version:          o.Version(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate, including its version, using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	organizationID, err := kernel.UUIDFromBytes(dto.OrganizationID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		organizationID,
		stage.Stage(dto.CurrentStage),
		dto.OriginalShipDate,
		dto.CurrentShipDate,
		order.Status(dto.Status),
		dto.Version,
	)
}
