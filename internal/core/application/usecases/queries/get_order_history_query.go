package queries

import (
	"errors"
	"time"

	"atelier/internal/core/domain/model/actor"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

var (
	ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
		"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
	)
)

// GetOrderHistoryQuery retrieves the full audit trail of one order, oldest
// entry first. The trail includes the initial stage record written at order
// registration, so replaying it reconstructs the complete stage path.
type GetOrderHistoryQuery struct {
	orderID     kernel.UUID
	requestedBy actor.Actor

	guard guard.ConstructorGuard
}

// NewGetOrderHistoryQuery creates a history query with validation.
func NewGetOrderHistoryQuery(orderID kernel.UUID, requestedBy actor.Actor) (GetOrderHistoryQuery, error) {
	if err := errors.Join(orderID.Validate(), requestedBy.Validate()); err != nil {
		return GetOrderHistoryQuery{}, err
	}

	return GetOrderHistoryQuery{
		orderID:     orderID,
		requestedBy: requestedBy,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

// OrderID returns the order the query targets.
func (q GetOrderHistoryQuery) OrderID() kernel.UUID {
	return q.orderID
}

// RequestedBy returns the actor context of the read.
func (q GetOrderHistoryQuery) RequestedBy() actor.Actor {
	return q.requestedBy
}

// GetOrderHistoryQueryResponse is one audit trail entry in the read model.
type GetOrderHistoryQueryResponse struct {
	Stage            string
	EnteredAt        time.Time
	ActorID          kernel.UUID
	Notes            string
	IsCorrection     bool
	PreviousShipDate *time.Time
	NewShipDate      *time.Time
	ChangeReason     string
}
