package commands

import (
	"errors"
	"time"

	"atelier/internal/core/domain/model/actor"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/stage"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var (
	ErrTransitionOrderCommandIsNotConstructed = errors.New(
		"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
	)
)

// TransitionOrderCommand represents a request to move an order to a target
// stage, optionally revising the ship date in the same step. The command is
// ephemeral input: consumed by the engine, never persisted.
//
// Example:
//
//	cmd, err := NewTransitionOrderCommand(
//	    orderID, stage.ProductionPlanning, requester,
//	    WithNewShipDate(revised, "material-delay"),
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid transition request: %w", err)
//	}
//	result, err := handler.Handle(ctx, cmd)
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	targetStage  stage.Stage
	requestedBy  actor.Actor
	newShipDate  *time.Time
	reason       string
	notes        string
	isCorrection bool

	guard guard.ConstructorGuard
}

// TransitionOption customizes the optional parts of a transition request.
type TransitionOption func(*TransitionOrderCommand) error

// WithNewShipDate attaches a ship-date revision with its reason code.
func WithNewShipDate(newShipDate time.Time, reason string) TransitionOption {
	return func(c *TransitionOrderCommand) error {
		if newShipDate.IsZero() {
			return errs.NewValueIsRequiredError("newShipDate")
		}
		c.newShipDate = &newShipDate
		c.reason = reason
		return nil
	}
}

// WithNotes attaches a free-text note to the transition.
func WithNotes(notes string) TransitionOption {
	return func(c *TransitionOrderCommand) error {
		c.notes = notes
		return nil
	}
}

// AsCorrection flags the request as an explicit backward correction.
// Without this flag any backward move is rejected by the engine.
func AsCorrection() TransitionOption {
	return func(c *TransitionOrderCommand) error {
		c.isCorrection = true
		return nil
	}
}

// NewTransitionOrderCommand creates a transition request with validation.
// The order id, target stage, and requesting actor are mandatory; the ship
// date revision, notes, and correction flag come in as options.
func NewTransitionOrderCommand(
	orderID kernel.UUID,
	targetStage stage.Stage,
	requestedBy actor.Actor,
	opts ...TransitionOption,
) (TransitionOrderCommand, error) {
	cmd := TransitionOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTargetStage(targetStage),
		cmd.setRequestedBy(requestedBy),
	); err != nil {
		return TransitionOrderCommand{}, err
	}

	for _, opt := range opts {
		if err := opt(&cmd); err != nil {
			return TransitionOrderCommand{}, err
		}
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

// OrderID returns the order the transition targets.
func (c TransitionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TargetStage returns the requested catalog stage.
func (c TransitionOrderCommand) TargetStage() stage.Stage {
	return c.targetStage
}

// RequestedBy returns the actor context of the request.
func (c TransitionOrderCommand) RequestedBy() actor.Actor {
	return c.requestedBy
}

// NewShipDate returns the requested ship-date revision, or nil when the
// request carries no date change.
func (c TransitionOrderCommand) NewShipDate() *time.Time {
	return c.newShipDate
}

// Reason returns the stated cause of the ship-date revision.
func (c TransitionOrderCommand) Reason() string {
	return c.reason
}

// Notes returns the free-text note of the request.
func (c TransitionOrderCommand) Notes() string {
	return c.notes
}

// IsCorrection reports whether the request is an explicit backward correction.
func (c TransitionOrderCommand) IsCorrection() bool {
	return c.isCorrection
}

// HasAmendment reports whether the request carries a ship-date revision or
// note. Only amendments are accepted as same-stage transitions.
func (c TransitionOrderCommand) HasAmendment() bool {
	return c.newShipDate != nil || c.notes != ""
}

func (c *TransitionOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *TransitionOrderCommand) setTargetStage(targetStage stage.Stage) error {
	if err := targetStage.Validate(); err != nil {
		return err
	}

	c.targetStage = targetStage
	return nil
}

func (c *TransitionOrderCommand) setRequestedBy(requestedBy actor.Actor) error {
	if err := requestedBy.Validate(); err != nil {
		return err
	}

	c.requestedBy = requestedBy
	return nil
}
