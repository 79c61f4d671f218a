package commands

import (
	"errors"
	"time"

	"atelier/internal/core/domain/model/actor"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to register a new manufacturing
// order with its promised ship date.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	organizationID kernel.UUID
	shipDate       time.Time
	createdBy      actor.Actor

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates an order registration request with validation.
// The ship date is the client-facing promise recorded as both the original and
// the current ship date of the new order.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	organizationID kernel.UUID,
	shipDate time.Time,
	createdBy actor.Actor,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOrganizationID(organizationID),
		cmd.setShipDate(shipDate),
		cmd.setCreatedBy(createdBy),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OrganizationID returns the client organization the order belongs to.
func (c CreateOrderCommand) OrganizationID() kernel.UUID {
	return c.organizationID
}

// ShipDate returns the promised ship date.
func (c CreateOrderCommand) ShipDate() time.Time {
	return c.shipDate
}

// CreatedBy returns the actor registering the order.
func (c CreateOrderCommand) CreatedBy() actor.Actor {
	return c.createdBy
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setOrganizationID(organizationID kernel.UUID) error {
	if err := organizationID.Validate(); err != nil {
		return err
	}

	c.organizationID = organizationID
	return nil
}

func (c *CreateOrderCommand) setShipDate(shipDate time.Time) error {
	if shipDate.IsZero() {
		return errs.NewValueIsRequiredError("shipDate")
	}

	c.shipDate = shipDate
	return nil
}

func (c *CreateOrderCommand) setCreatedBy(createdBy actor.Actor) error {
	if err := createdBy.Validate(); err != nil {
		return err
	}

	c.createdBy = createdBy
	return nil
}
