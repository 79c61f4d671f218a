// Package queries contains read-only operations for retrieving workflow state.
// Implements the Query side of the CQRS architecture: handlers read rows
// directly via SQL and never load full aggregates.
package queries

import (
	"errors"
	"time"

	"atelier/internal/core/domain/model/actor"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

var (
	ErrGetOrderStateQueryIsNotConstructed = errors.New(
		"GetOrderStateQuery must be created via NewGetOrderStateQuery constructor",
	)

	// ErrViewForbidden is returned when a client actor asks for an order owned
	// by a different organization.
	ErrViewForbidden = errors.New("actor is not allowed to view this order")
)

// GetOrderStateQuery retrieves the current state of one order: its stage, ship
// dates, lifecycle status, and version.
//
// Example:
//
//	query, _ := NewGetOrderStateQuery(orderID, requester)
//	handler := NewGetOrderStateQueryHandler(db)
//
//	state, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order state: %w", err)
//	}
//	fmt.Printf("Order %s is at %s\n", state.ID, state.CurrentStage)
type GetOrderStateQuery struct {
	orderID     kernel.UUID
	requestedBy actor.Actor

	guard guard.ConstructorGuard
}

// NewGetOrderStateQuery creates a state query with validation.
// The requesting actor scopes the read: manufacturing actors see every order,
// client actors only their own organization's.
func NewGetOrderStateQuery(orderID kernel.UUID, requestedBy actor.Actor) (GetOrderStateQuery, error) {
	if err := errors.Join(orderID.Validate(), requestedBy.Validate()); err != nil {
		return GetOrderStateQuery{}, err
	}

	return GetOrderStateQuery{
		orderID:     orderID,
		requestedBy: requestedBy,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStateQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStateQueryIsNotConstructed)
}

// OrderID returns the order the query targets.
func (q GetOrderStateQuery) OrderID() kernel.UUID {
	return q.orderID
}

// RequestedBy returns the actor context of the read.
func (q GetOrderStateQuery) RequestedBy() actor.Actor {
	return q.requestedBy
}

// GetOrderStateQueryResponse is the read model of one order's current state.
// Stage and status carry their catalog names, not storage codes.
type GetOrderStateQueryResponse struct {
	ID               kernel.UUID
	OrganizationID   kernel.UUID
	CurrentStage     string
	OriginalShipDate time.Time
	CurrentShipDate  time.Time
	Status           string
	Version          int64
}
