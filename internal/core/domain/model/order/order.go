package order

import (
	"errors"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/stage"
	"atelier/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderClosed is returned when a mutation is requested on an order whose
	// lifecycle status is Completed or Cancelled.
	ErrOrderClosed = errors.New("order is closed and accepts no further transitions")

	// ErrNoOpTransition is returned for a same-stage transition that carries no
	// ship-date revision and no note. A same-stage request is only meaningful as
	// an amendment.
	ErrNoOpTransition = errors.New("transition to the current stage requires a ship-date revision or note")

	// ErrInvalidTransition is returned for a backward transition that was not
	// explicitly flagged as a correction.
	ErrInvalidTransition = errors.New("backward transition requires the correction flag")
)

// Order represents a custom-manufacturing order in the workflow. It is the
// aggregate root that carries the current stage, the ship dates, and the
// lifecycle status.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and owning organization
//   - Current stage is always a member of the stage catalog
//   - The original ship date never changes once set
//   - A Completed or Cancelled order accepts no further transitions
//   - Can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// organizationID is the client organization that owns the order
	organizationID kernel.UUID

	// currentStage is the order's position in the stage catalog
	currentStage stage.Stage

	// originalShipDate is the ship date promised at creation (immutable)
	originalShipDate time.Time

	// currentShipDate is the ship date as last revised
	currentShipDate time.Time

	// status is the lifecycle state of the order
	status Status

	// version supports optimistic concurrency at the persistence layer
	version int64

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order instance with validation. The order starts at
// the first catalog stage (DesignProposal) in Active status, with the original
// and current ship dates both set to shipDate.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - organizationID: Owning client organization (must be valid UUID)
//   - shipDate: The promised ship date (must not be zero)
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
func NewOrder(id kernel.UUID, organizationID kernel.UUID, shipDate time.Time) (*Order, error) {
	o := &Order{
		currentStage:  stage.DesignProposal,
		status:        Active,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrganizationID(organizationID),
		o.setShipDates(shipDate, shipDate),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persisted state. Unlike NewOrder it
// accepts any catalog stage, lifecycle status, and version, but still validates
// every field so corrupt rows cannot produce an invalid aggregate.
func RestoreOrder(
	id kernel.UUID,
	organizationID kernel.UUID,
	currentStage stage.Stage,
	originalShipDate time.Time,
	currentShipDate time.Time,
	status Status,
	version int64,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrganizationID(organizationID),
		o.setCurrentStage(currentStage),
		o.setShipDates(originalShipDate, currentShipDate),
		o.setStatus(status),
		o.setVersion(version),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a factory.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrganizationID returns the client organization that owns the order.
func (o *Order) OrganizationID() kernel.UUID {
	return o.organizationID
}

// CurrentStage returns the order's position in the stage catalog.
func (o *Order) CurrentStage() stage.Stage {
	return o.currentStage
}

// OriginalShipDate returns the ship date promised at creation.
// This value never changes after the order is created.
func (o *Order) OriginalShipDate() time.Time {
	return o.originalShipDate
}

// CurrentShipDate returns the ship date as last revised.
func (o *Order) CurrentShipDate() time.Time {
	return o.currentShipDate
}

// Status returns the lifecycle status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Version returns the optimistic-concurrency version of the order.
// The persistence layer increments it once per committed mutation.
func (o *Order) Version() int64 {
	return o.version
}

// TransitionTo moves the order to the target stage, enforcing the catalog's
// ordering rules:
//
//   - Forward transitions (later catalog position) succeed unconditionally,
//     including jumps over intermediate stages.
//   - Same-stage transitions succeed only when hasAmendment is true, i.e. the
//     request carries a ship-date revision or note; otherwise ErrNoOpTransition.
//   - Backward transitions succeed only when isCorrection is true; otherwise
//     ErrInvalidTransition.
//
// A closed order (Completed or Cancelled) rejects every transition with
// ErrOrderClosed.
func (o *Order) TransitionTo(target stage.Stage, isCorrection bool, hasAmendment bool) error {
	if o.status.IsClosed() {
		return ErrOrderClosed
	}

	if err := target.Validate(); err != nil {
		return err
	}

	switch {
	case stage.IsForwardTransition(o.currentStage, target):
		// Forward moves, including stage skips, are always allowed.
	case target == o.currentStage:
		if !hasAmendment {
			return ErrNoOpTransition
		}
	default:
		if !isCorrection {
			return ErrInvalidTransition
		}
	}

	o.currentStage = target
	return nil
}

// ReviseShipDate updates the current ship date. The original ship date is
// never touched. Closed orders reject the revision with ErrOrderClosed.
func (o *Order) ReviseShipDate(newShipDate time.Time) error {
	if o.status.IsClosed() {
		return ErrOrderClosed
	}
	if newShipDate.IsZero() {
		return errs.NewValueIsRequiredError("newShipDate")
	}

	o.currentShipDate = newShipDate
	return nil
}

// Complete marks the order as completed. Completion is only accepted once the
// order has reached the terminal catalog stage.
func (o *Order) Complete() error {
	if !stage.IsTerminal(o.currentStage) {
		return errs.NewValueIsInvalidErrorWithCause(
			"stage is invalid",
			errors.New(o.currentStage.String()+" is not the terminal stage"),
		)
	}

	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel withdraws the order. Allowed from any stage while the order is Active.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setOrganizationID validates and sets the owning organization.
func (o *Order) setOrganizationID(organizationID kernel.UUID) error {
	if err := organizationID.Validate(); err != nil {
		return err
	}
	o.organizationID = organizationID
	return nil
}

// setCurrentStage validates and sets the order's catalog stage.
func (o *Order) setCurrentStage(s stage.Stage) error {
	if err := s.Validate(); err != nil {
		return err
	}
	o.currentStage = s
	return nil
}

// setShipDates validates and sets both ship dates.
func (o *Order) setShipDates(original, current time.Time) error {
	if original.IsZero() {
		return errs.NewValueIsRequiredError("originalShipDate")
	}
	if current.IsZero() {
		return errs.NewValueIsRequiredError("currentShipDate")
	}
	o.originalShipDate = original
	o.currentShipDate = current
	return nil
}

// setStatus validates and sets the lifecycle status.
func (o *Order) setStatus(s Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	o.status = s
	return nil
}

// setVersion validates and sets the concurrency version.
func (o *Order) setVersion(version int64) error {
	if version < 1 {
		return errs.NewVersionIsInvalidError("version", errors.New("version must be at least 1"))
	}
	o.version = version
	return nil
}
